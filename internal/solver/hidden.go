package solver

import (
	"github.com/jonswain/sudsolve/internal/candidates"
	"github.com/jonswain/sudsolve/internal/domain"
	"github.com/jonswain/sudsolve/internal/groups"
)

// hiddenSinglePass forces a cell to a candidate that no other cell in one
// of its groups can still hold. The check is a union over the other tracked
// cells' candidate sets; if any single group's union lacks the candidate,
// the cell is the only home left for it there. The first qualifying
// candidate (ascending) wins and evaluation moves to the next cell, even
// when another group would force a different value.
func hiddenSinglePass(g *domain.Grid, store *candidates.Store) {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if g.At(r, c).IsResolved() {
				continue
			}
			at := domain.CellCoord{Row: r, Col: c}
			for _, v := range store.At(r, c).Symbols() {
				if onlyPlaceFor(store, at, v) {
					g.Resolve(r, c, v)
					store.Fix(r, c, v)
					break
				}
			}
		}
	}
}

// onlyPlaceFor reports whether v is absent from the union of the other
// cells' candidate sets in at least one of at's groups. Givens are
// untracked and contribute nothing; elimination already removed their
// symbols from every neighbor.
func onlyPlaceFor(store *candidates.Store, at domain.CellCoord, v domain.Symbol) bool {
	for _, unit := range groups.UnitsOf(at) {
		var union candidates.Set
		for _, o := range unit {
			if o == at {
				continue
			}
			union = union.Union(store.At(o.Row, o.Col))
		}
		if !union.Has(v) {
			return true
		}
	}
	return false
}
