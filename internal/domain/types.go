package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Size is the edge length of the puzzle grid.
const Size = 9

// Symbol is one of the nine puzzle values 1..9. The unknown marker is not a
// Symbol; unknown cells are represented by the Cell tag instead.
type Symbol uint8

// ErrOutOfRange reports a coordinate outside the 9x9 bounds. Given a
// validated grid this is a programming error, not a puzzle condition.
var ErrOutOfRange = errors.New("cell coordinate out of range")

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the coordinate lies inside the grid.
func (at CellCoord) InBounds() bool {
	return at.Row >= 0 && at.Row < Size && at.Col >= 0 && at.Col < Size
}

// Cell is a tagged grid value: either a resolved Symbol or unknown.
type Cell struct {
	value    Symbol
	resolved bool
}

// ResolvedCell builds a cell holding v.
func ResolvedCell(v Symbol) Cell { return Cell{value: v, resolved: true} }

// UnknownCell builds an unresolved cell.
func UnknownCell() Cell { return Cell{} }

// Value returns the symbol and whether the cell is resolved.
func (c Cell) Value() (Symbol, bool) { return c.value, c.resolved }

// IsResolved reports whether the cell holds a concrete symbol.
func (c Cell) IsResolved() bool { return c.resolved }

// Grid is the 9x9 matrix of cells. Resolution is monotonic during solving:
// once a cell is resolved the solver never reassigns it.
type Grid struct {
	cells [Size][Size]Cell
}

// NewGrid returns a grid with every cell unknown.
func NewGrid() *Grid { return &Grid{} }

// FromValues builds a grid from a plain value matrix, 0 meaning unknown.
func FromValues(vals [Size][Size]uint8) (*Grid, error) {
	g := &Grid{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := vals[r][c]
			if v == 0 {
				continue
			}
			if v > Size {
				return nil, fmt.Errorf("invalid symbol %d at row %d col %d", v, r, c)
			}
			g.cells[r][c] = ResolvedCell(Symbol(v))
		}
	}
	return g, nil
}

// Values returns the grid as a plain value matrix, 0 meaning unknown.
func (g *Grid) Values() [Size][Size]uint8 {
	var out [Size][Size]uint8
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v, ok := g.cells[r][c].Value(); ok {
				out[r][c] = uint8(v)
			}
		}
	}
	return out
}

// Get returns the cell at the coordinate, or ErrOutOfRange.
func (g *Grid) Get(at CellCoord) (Cell, error) {
	if !at.InBounds() {
		return Cell{}, fmt.Errorf("get (%d,%d): %w", at.Row, at.Col, ErrOutOfRange)
	}
	return g.cells[at.Row][at.Col], nil
}

// Set resolves the cell at the coordinate to v, or returns ErrOutOfRange.
// It performs no legality check against the rest of the grid; that is the
// verifier's job.
func (g *Grid) Set(at CellCoord, v Symbol) error {
	if !at.InBounds() {
		return fmt.Errorf("set (%d,%d): %w", at.Row, at.Col, ErrOutOfRange)
	}
	g.cells[at.Row][at.Col] = ResolvedCell(v)
	return nil
}

// At is the unchecked accessor for loops over [0,Size). Out-of-range
// indices panic via the native array bounds check.
func (g *Grid) At(r, c int) Cell { return g.cells[r][c] }

// Resolve is the unchecked writer used by the solver's inner loops.
func (g *Grid) Resolve(r, c int, v Symbol) { g.cells[r][c] = ResolvedCell(v) }

// IsComplete reports whether no cell is unknown.
func (g *Grid) IsComplete() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !g.cells[r][c].resolved {
				return false
			}
		}
	}
	return true
}

// Equal compares all 81 cells. Used by the solve loop to detect a round
// that made no progress.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil {
		return false
	}
	return g.cells == o.cells
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cp := *g
	return &cp
}

// UnknownCount returns the number of unresolved cells.
func (g *Grid) UnknownCount() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !g.cells[r][c].resolved {
				n++
			}
		}
	}
	return n
}

// MarshalJSON encodes the grid as a 9x9 matrix of 0..9, 0 meaning unknown.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Values())
}

// UnmarshalJSON decodes the matrix form, rejecting symbols outside 0..9.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var vals [Size][Size]uint8
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	parsed, err := FromValues(vals)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}

// Puzzle is a persisted grid with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Grid      *Grid  `json:"grid"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// Hint describes the next logical deduction for interactive use.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   Symbol    `json:"value"`
	Rule    string    `json:"rule,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
