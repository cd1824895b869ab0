// Package groups provides the fixed row/column/box membership of each cell.
// The 27 groups are a property of the puzzle's structure and never depend on
// grid contents.
package groups

import "github.com/jonswain/sudsolve/internal/domain"

// Unit is the 9 coordinates of one group, in reading order.
type Unit [domain.Size]domain.CellCoord

var (
	rows  [domain.Size]Unit
	cols  [domain.Size]Unit
	boxes [domain.Size]Unit
)

func init() {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			rows[r][c] = domain.CellCoord{Row: r, Col: c}
			cols[c][r] = domain.CellCoord{Row: r, Col: c}
			b := BoxIndex(r, c)
			i := (r%3)*3 + c%3
			boxes[b][i] = domain.CellCoord{Row: r, Col: c}
		}
	}
}

// BoxIndex returns the index 0..8 of the 3x3 box containing (r,c).
func BoxIndex(r, c int) int { return (r/3)*3 + c/3 }

// RowOf returns the 9 coordinates sharing at's row, including at itself.
func RowOf(at domain.CellCoord) Unit { return rows[at.Row] }

// ColumnOf returns the 9 coordinates sharing at's column, including at itself.
func ColumnOf(at domain.CellCoord) Unit { return cols[at.Col] }

// BoxOf returns the 9 coordinates sharing at's 3x3 box, including at itself.
func BoxOf(at domain.CellCoord) Unit { return boxes[BoxIndex(at.Row, at.Col)] }

// UnitsOf returns at's row, column, and box, in that order.
func UnitsOf(at domain.CellCoord) [3]Unit {
	return [3]Unit{RowOf(at), ColumnOf(at), BoxOf(at)}
}

// Rows returns the nine row groups.
func Rows() [domain.Size]Unit { return rows }

// Cols returns the nine column groups.
func Cols() [domain.Size]Unit { return cols }

// Boxes returns the nine box groups.
func Boxes() [domain.Size]Unit { return boxes }
