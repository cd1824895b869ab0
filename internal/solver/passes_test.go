package solver

import (
	"testing"

	"github.com/jonswain/sudsolve/internal/candidates"
	"github.com/jonswain/sudsolve/internal/domain"
)

// hiddenSingleFixture pins value 1 to (0,0) through its box: the 1s at
// (1,4) and (2,7) exclude rows 1-2 of the box, and the 1s at (4,1) and
// (5,2) exclude columns 1-2. Elimination alone learns nothing about (0,0).
func hiddenSingleFixture(t *testing.T) *domain.Grid {
	t.Helper()
	g := domain.NewGrid()
	for _, p := range []struct{ r, c int }{{1, 4}, {2, 7}, {4, 1}, {5, 2}} {
		if err := g.Set(domain.CellCoord{Row: p.r, Col: p.c}, 1); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestHiddenSingleResolvesWhatEliminationCannot(t *testing.T) {
	g := hiddenSingleFixture(t)
	store := candidates.NewStore(g)

	if err := eliminationPass(g, store); err != nil {
		t.Fatalf("eliminationPass: %v", err)
	}
	if g.At(0, 0).IsResolved() {
		t.Fatal("elimination alone should not resolve (0,0)")
	}
	if n := store.At(0, 0).Count(); n != 9 {
		t.Fatalf("(0,0) has %d candidates after elimination, want 9", n)
	}

	hiddenSinglePass(g, store)
	v, ok := g.At(0, 0).Value()
	if !ok || v != 1 {
		t.Fatalf("(0,0) = %d (resolved=%v), want hidden single 1", v, ok)
	}
	if got, ok := store.At(0, 0).Sole(); !ok || got != 1 {
		t.Fatalf("store not collapsed to {1}: %v", store.At(0, 0).Symbols())
	}
}

func TestEliminationChainsWithinOnePass(t *testing.T) {
	// Row 0 holds 1..7; an 8 at (4,7) forces (0,7)=9, and once that lands,
	// (0,8)=8 follows later in the very same pass.
	g := domain.NewGrid()
	for c := 0; c < 7; c++ {
		if err := g.Set(domain.CellCoord{Row: 0, Col: c}, domain.Symbol(c+1)); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Set(domain.CellCoord{Row: 4, Col: 7}, 8); err != nil {
		t.Fatal(err)
	}
	store := candidates.NewStore(g)
	if err := eliminationPass(g, store); err != nil {
		t.Fatalf("eliminationPass: %v", err)
	}
	if v, ok := g.At(0, 7).Value(); !ok || v != 9 {
		t.Fatalf("(0,7) = %d (resolved=%v), want 9", v, ok)
	}
	if v, ok := g.At(0, 8).Value(); !ok || v != 8 {
		t.Fatalf("(0,8) = %d (resolved=%v), want 8 in the same pass", v, ok)
	}
}

func TestCandidateSetsShrinkMonotonically(t *testing.T) {
	g := mustParse(t, hardPuzzle)
	store := candidates.NewStore(g)

	var prev [domain.Size][domain.Size]int
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			prev[r][c] = store.At(r, c).Count()
		}
	}
	for round := 0; round < 5; round++ {
		if err := eliminationPass(g, store); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		hiddenSinglePass(g, store)
		for r := 0; r < domain.Size; r++ {
			for c := 0; c < domain.Size; c++ {
				n := store.At(r, c).Count()
				if n > prev[r][c] {
					t.Fatalf("round %d: (%d,%d) grew from %d to %d candidates", round, r, c, prev[r][c], n)
				}
				prev[r][c] = n
			}
		}
	}
}

func TestResolvedCellsNeverRegress(t *testing.T) {
	g := mustParse(t, classicPuzzle)
	store := candidates.NewStore(g)

	var pinned [domain.Size][domain.Size]domain.Symbol
	for round := 0; round < 81 && !g.IsComplete(); round++ {
		if err := eliminationPass(g, store); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		hiddenSinglePass(g, store)
		for r := 0; r < domain.Size; r++ {
			for c := 0; c < domain.Size; c++ {
				v, ok := g.At(r, c).Value()
				if !ok {
					continue
				}
				if pinned[r][c] != 0 && pinned[r][c] != v {
					t.Fatalf("round %d: (%d,%d) changed from %d to %d", round, r, c, pinned[r][c], v)
				}
				pinned[r][c] = v
			}
		}
	}
	if !g.IsComplete() {
		t.Fatal("classic puzzle did not complete")
	}
}

func TestPassesIdempotentOnStalledGrid(t *testing.T) {
	g := mustParse(t, hardPuzzle)
	store := candidates.NewStore(g)

	// run to the fixed point
	for {
		before := g.Clone()
		if err := eliminationPass(g, store); err != nil {
			t.Fatalf("eliminationPass: %v", err)
		}
		hiddenSinglePass(g, store)
		if g.Equal(before) {
			break
		}
	}

	stable := g.Clone()
	if err := eliminationPass(g, store); err != nil {
		t.Fatalf("eliminationPass on stable grid: %v", err)
	}
	hiddenSinglePass(g, store)
	if !g.Equal(stable) {
		t.Fatal("passes changed a grid that had already stabilized")
	}
}
