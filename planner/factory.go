package planner

import "fmt"

// NewPlanner constructs a Planner by name: "greedy" (default) or "bfs".
// Mirrors this codebase's lineage name-dispatch factories (NewScheduler,
// NewPriorityPolicy), adapted to return an error instead of panicking so
// the CLI boundary can log and exit cleanly rather than crash.
func NewPlanner(name string, cfg Config, bfsNumQueriesSearched int, metrics *Metrics) (Planner, error) {
	switch name {
	case "", "greedy":
		return NewGreedyPlanner(cfg, metrics), nil
	case "bfs":
		return NewBFSPlanner(cfg, bfsNumQueriesSearched, metrics), nil
	default:
		return nil, fmt.Errorf("planner: unknown planner %q", name)
	}
}
