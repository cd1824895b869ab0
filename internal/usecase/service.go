package usecase

import (
	"context"
	"errors"

	"github.com/jonswain/sudsolve/internal/domain"
	"github.com/jonswain/sudsolve/internal/ports"
)

// Service wires the solving core and its collaborators behind one façade.
type Service struct {
	Solver   ports.Solver
	Verifier ports.Verifier
	Hinter   ports.Hinter
	Storage  ports.Storage
}

func NewService(s ports.Solver, v ports.Verifier, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Verifier: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, domain.SolveReport, error) {
	if u.Solver == nil {
		return nil, domain.SolveReport{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Verify(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Verifier == nil {
		return false, nil, errNotConfigured
	}
	return u.Verifier.Verify(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
