// Package solver implements the constraint-propagation engine: repeated
// candidate elimination and hidden-single detection until the grid is
// complete or a round makes no progress. There is no search or guessing, so
// puzzles needing deeper techniques legitimately finish stalled.
package solver

import (
	"context"
	"time"

	"github.com/jonswain/sudsolve/internal/candidates"
	"github.com/jonswain/sudsolve/internal/domain"
)

// Propagation is the singles-only solver.
type Propagation struct{}

// NewPropagation returns a solver applying naked and hidden singles.
func NewPropagation() *Propagation { return &Propagation{} }

// Solve runs elimination + hidden-single rounds on a copy of g until the
// grid completes or stalls. Each round either resolves at least one cell or
// stalls, so the loop runs at most 81 rounds; no explicit cap is needed.
// A pruned-to-empty candidate set aborts with candidates.ErrUnsatisfiable.
func (s *Propagation) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, domain.SolveReport, error) {
	start := time.Now()
	work := g.Clone()
	store := candidates.NewStore(work)

	rep := domain.SolveReport{State: domain.Running}
	for !work.IsComplete() {
		if err := ctx.Err(); err != nil {
			rep.Duration = time.Since(start)
			return work, rep, err
		}
		before := work.Clone()

		if err := eliminationPass(work, store); err != nil {
			rep.Duration = time.Since(start)
			return work, rep, err
		}
		hiddenSinglePass(work, store)

		rep.Rounds++
		if work.Equal(before) {
			rep.State = domain.Stalled
			rep.Duration = time.Since(start)
			return work, rep, nil
		}
	}
	rep.State = domain.Complete
	rep.Duration = time.Since(start)
	return work, rep, nil
}
