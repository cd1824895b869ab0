// Package ports defines the collaborator contracts between the solving core
// and its peripheral I/O.
package ports

import (
	"context"

	"github.com/jonswain/sudsolve/internal/domain"
)

// Solver runs the deduction loop over a grid and reports the outcome.
// Implementations must not mutate the input grid.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, domain.SolveReport, error)
}

// Verifier checks a finished grid against the full solution rules.
type Verifier interface {
	Verify(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical single, if one exists.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
