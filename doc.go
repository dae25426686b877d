// Command tilesched is a predictive prefetch scheduler for a tile-based
// gallery/stream client.
//
// # Reading Guide
//
// Start with these packages to understand the scheduling kernel:
//   - prob/: the lazy probability oracle (keyframes, interpolation, integration)
//   - gallery/: tile-space geometry and user-state decoding
//   - planner/: the greedy and BFS planners that consume an oracle and emit a plan
//   - timemanager/: the shared clock contract planners read under a lock
//
// # Architecture
//
// Per scheduling round: a client user-state payload is decoded by
// gallery.Layout.DecodeDist into a prob.Oracle; a planner.Planner
// consumes that oracle plus the current cache state and emits an
// ordered list of tile indices for the next batch of cache slots.
//
// The network transport, session shell, tile datastore, client
// renderer, and the time manager's own clock source are external
// collaborators and out of scope for this module.
package main
