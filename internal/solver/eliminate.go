package solver

import (
	"github.com/jonswain/sudsolve/internal/candidates"
	"github.com/jonswain/sudsolve/internal/domain"
	"github.com/jonswain/sudsolve/internal/groups"
)

// eliminationPass prunes, for every unknown cell in row-major order, the
// symbols already resolved in its row, column, and box. A cell whose set
// shrinks to a single symbol is written to the grid immediately, so cells
// visited later in the same pass see the update and the rule chains.
func eliminationPass(g *domain.Grid, store *candidates.Store) error {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if g.At(r, c).IsResolved() {
				continue
			}
			at := domain.CellCoord{Row: r, Col: c}
			v, sole, err := store.Prune(at, resolvedIn(g, at))
			if err != nil {
				return err
			}
			if sole {
				g.Resolve(r, c, v)
			}
		}
	}
	return nil
}

// resolvedIn unions the resolved symbols present in at's three groups. The
// cell itself is unknown here, so it never contributes.
func resolvedIn(g *domain.Grid, at domain.CellCoord) candidates.Set {
	var excluded candidates.Set
	for _, unit := range groups.UnitsOf(at) {
		for _, o := range unit {
			if v, ok := g.At(o.Row, o.Col).Value(); ok {
				excluded = excluded.Union(candidates.Of(v))
			}
		}
	}
	return excluded
}
