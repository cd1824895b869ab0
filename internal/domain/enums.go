package domain

import "time"

// SolveState is the solve loop's terminal (or in-flight) condition.
type SolveState int

const (
	Running  SolveState = iota // another round may make progress
	Stalled                    // a round changed nothing; singles are exhausted
	Complete                   // no unknown cells remain
)

func (s SolveState) String() string {
	switch s {
	case Stalled:
		return "stalled"
	case Complete:
		return "complete"
	default:
		return "running"
	}
}

// SolveReport captures the outcome of a solve: the terminal state and the
// number of completed rounds. An already-complete input reports 0 rounds.
type SolveReport struct {
	State    SolveState    `json:"state"`
	Rounds   int           `json:"rounds"`
	Duration time.Duration `json:"duration"`
}
