package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestGetSetBounds(t *testing.T) {
	g := NewGrid()
	bad := []CellCoord{{Row: -1, Col: 0}, {Row: 0, Col: 9}, {Row: 9, Col: 9}, {Row: 4, Col: -3}}
	for _, at := range bad {
		if _, err := g.Get(at); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Get(%+v): err = %v, want ErrOutOfRange", at, err)
		}
		if err := g.Set(at, 1); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Set(%+v): err = %v, want ErrOutOfRange", at, err)
		}
	}
	at := CellCoord{Row: 3, Col: 7}
	if err := g.Set(at, 6); err != nil {
		t.Fatalf("Set: %v", err)
	}
	cell, err := g.Get(at)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v, ok := cell.Value(); !ok || v != 6 {
		t.Fatalf("cell = %d,%v, want 6", v, ok)
	}
}

func TestEqualComparesAllCells(t *testing.T) {
	a := NewGrid()
	b := NewGrid()
	if !a.Equal(b) {
		t.Fatal("empty grids should be equal")
	}
	if err := b.Set(CellCoord{Row: 8, Col: 8}, 9); err != nil {
		t.Fatal(err)
	}
	if a.Equal(b) {
		t.Fatal("grids differing in one cell reported equal")
	}
	if a.Equal(nil) {
		t.Fatal("nil comparison should be false")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewGrid()
	cp := a.Clone()
	if err := cp.Set(CellCoord{Row: 0, Col: 0}, 1); err != nil {
		t.Fatal(err)
	}
	if a.At(0, 0).IsResolved() {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestFromValuesRejectsBadSymbols(t *testing.T) {
	vals := [Size][Size]uint8{}
	vals[2][3] = 10
	if _, err := FromValues(vals); err == nil {
		t.Fatal("symbol 10 accepted")
	}
}

func TestGridJSONRoundTrip(t *testing.T) {
	g := NewGrid()
	if err := g.Set(CellCoord{Row: 1, Col: 2}, 7); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Grid
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(g) {
		t.Fatal("JSON round trip changed the grid")
	}
	var reject Grid
	if err := json.Unmarshal([]byte(`[[10,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0]]`), &reject); err == nil {
		t.Fatal("symbol 10 accepted via JSON")
	}
}

func TestIsCompleteAndUnknownCount(t *testing.T) {
	g := NewGrid()
	if g.IsComplete() {
		t.Fatal("empty grid reported complete")
	}
	if g.UnknownCount() != 81 {
		t.Fatalf("unknowns = %d, want 81", g.UnknownCount())
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g.Resolve(r, c, Symbol(1+(r+c)%9))
		}
	}
	if !g.IsComplete() || g.UnknownCount() != 0 {
		t.Fatal("fully resolved grid not reported complete")
	}
}
