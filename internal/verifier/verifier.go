// Package verifier checks a finished grid against the full solution rules.
// It never mutates the grid and attempts no repair.
package verifier

import (
	"context"

	"github.com/jonswain/sudsolve/internal/domain"
	"github.com/jonswain/sudsolve/internal/groups"
)

// checksum is the sum of 81 cells in any valid solution: 45 per group, nine
// rows. Redundant given distinctness, kept for defense in depth.
const checksum = 405

type Verifier struct{}

func New() *Verifier { return &Verifier{} }

// Verify reports whether g is a valid complete solution: every row, column,
// and box holds nine distinct symbols, no cell is unknown, and the total is
// 405. Conflicts lists unknown cells and duplicate-holding cells.
func (v *Verifier) Verify(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.CellCoord, 0, 8)

	sum := 0
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			val, ok := g.At(r, c).Value()
			if !ok {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			// Grid.Set performs no symbol validation, so the range check
			// must happen here; distinctness alone accepts any value.
			if val < 1 || val > domain.Size {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			sum += int(val)
		}
	}

	units := [][domain.Size]groups.Unit{groups.Rows(), groups.Cols(), groups.Boxes()}
	for _, set := range units {
		for _, unit := range set {
			m := 0
			for _, at := range unit {
				val, ok := g.At(at.Row, at.Col).Value()
				if !ok {
					continue
				}
				bit := 1 << val
				if m&bit != 0 {
					conf = append(conf, at)
				}
				m |= bit
			}
		}
	}

	ok := len(conf) == 0 && sum == checksum
	return ok, conf, nil
}
