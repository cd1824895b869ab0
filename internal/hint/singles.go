// Package hint suggests the next logical single for interactive use. It
// shares the solver's deduction rules but never mutates the grid.
package hint

import (
	"context"
	"fmt"

	"github.com/jonswain/sudsolve/internal/candidates"
	"github.com/jonswain/sudsolve/internal/domain"
	"github.com/jonswain/sudsolve/internal/groups"
)

// Singles finds naked singles first, then hidden singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in reading order, falling back to the
// first hidden single.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}

	var sets [domain.Size][domain.Size]candidates.Set
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if !g.At(r, c).IsResolved() {
				sets[r][c] = possible(g, domain.CellCoord{Row: r, Col: c})
			}
		}
	}

	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if g.At(r, c).IsResolved() {
				continue
			}
			if v, ok := sets[r][c].Sole(); ok {
				return domain.Hint{
					Message: fmt.Sprintf("only %d fits at row %d, column %d", v, r+1, c+1),
					Cell:    domain.CellCoord{Row: r, Col: c},
					Value:   v,
					Rule:    "naked-single",
				}, true, nil
			}
		}
	}

	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if g.At(r, c).IsResolved() {
				continue
			}
			at := domain.CellCoord{Row: r, Col: c}
			for _, v := range sets[r][c].Symbols() {
				if lastHome(g, &sets, at, v) {
					return domain.Hint{
						Message: fmt.Sprintf("%d has no other home in one of this cell's groups (row %d, column %d)", v, r+1, c+1),
						Cell:    at,
						Value:   v,
						Rule:    "hidden-single",
					}, true, nil
				}
			}
		}
	}
	return domain.Hint{}, false, nil
}

// possible returns the symbols not already resolved in at's groups.
func possible(g *domain.Grid, at domain.CellCoord) candidates.Set {
	var excluded candidates.Set
	for _, unit := range groups.UnitsOf(at) {
		for _, o := range unit {
			if v, ok := g.At(o.Row, o.Col).Value(); ok {
				excluded = excluded.Union(candidates.Of(v))
			}
		}
	}
	return candidates.Full().Without(excluded)
}

// lastHome reports whether no other unresolved cell in one of at's groups
// can still hold v.
func lastHome(g *domain.Grid, sets *[domain.Size][domain.Size]candidates.Set, at domain.CellCoord, v domain.Symbol) bool {
	for _, unit := range groups.UnitsOf(at) {
		var union candidates.Set
		for _, o := range unit {
			if o == at || g.At(o.Row, o.Col).IsResolved() {
				continue
			}
			union = union.Union(sets[o.Row][o.Col])
		}
		if !union.Has(v) {
			return true
		}
	}
	return false
}
