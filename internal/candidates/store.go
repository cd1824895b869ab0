package candidates

import (
	"errors"
	"fmt"

	"github.com/jonswain/sudsolve/internal/domain"
)

// ErrUnsatisfiable reports a candidate set pruned to empty: the puzzle is
// contradictory (or the caller's elimination logic is broken).
var ErrUnsatisfiable = errors.New("no candidate remains for cell")

// Store owns the candidate set of every cell that was unknown when solving
// started. A cell resolved mid-solve keeps its singleton set and stays
// tracked, so it still contributes to hidden-single unions over its groups;
// the solver simply stops visiting it once the grid reports it resolved.
// Cells fixed from the start (givens) are never tracked.
type Store struct {
	sets    [domain.Size][domain.Size]Set
	tracked [domain.Size][domain.Size]bool
}

// NewStore initializes a full nine-symbol set for every unknown cell of g.
func NewStore(g *domain.Grid) *Store {
	s := &Store{}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if !g.At(r, c).IsResolved() {
				s.sets[r][c] = Full()
				s.tracked[r][c] = true
			}
		}
	}
	return s
}

// Tracked reports whether the cell was unknown at solve start.
func (s *Store) Tracked(r, c int) bool { return s.tracked[r][c] }

// At returns the cell's current candidate set. Untracked cells (givens)
// report the empty set.
func (s *Store) At(r, c int) Set { return s.sets[r][c] }

// Prune removes excluded from the cell's set. It returns the remaining
// sole symbol when the prune leaves exactly one, and ErrUnsatisfiable when
// it leaves none.
func (s *Store) Prune(at domain.CellCoord, excluded Set) (domain.Symbol, bool, error) {
	rest := s.sets[at.Row][at.Col].Without(excluded)
	s.sets[at.Row][at.Col] = rest
	if rest.IsEmpty() {
		return 0, false, fmt.Errorf("cell (%d,%d): %w", at.Row, at.Col, ErrUnsatisfiable)
	}
	if v, ok := rest.Sole(); ok {
		return v, true, nil
	}
	return 0, false, nil
}

// Fix collapses the cell's set to the singleton {v}. Used when a hidden
// single forces a value that elimination alone had not isolated.
func (s *Store) Fix(r, c int, v domain.Symbol) { s.sets[r][c] = Of(v) }
