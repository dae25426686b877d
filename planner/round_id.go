package planner

import "github.com/google/uuid"

// RoundID is an opaque correlation identifier attached to one
// RunScheduler call, for tying log lines and metrics back to a single
// scheduling round across the session layer's own logging.
type RoundID string

// NewRoundID mints a fresh round identifier.
func NewRoundID() RoundID {
	return RoundID(uuid.NewString())
}
