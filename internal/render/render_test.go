package render

import (
	"strings"
	"testing"

	"github.com/jonswain/sudsolve/internal/loader"
)

func TestTextLayout(t *testing.T) {
	g, err := loader.FromString("534678912672195348198342567859761423426853791713924856961537284287419635345286179")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"5 3 4 | 6 7 8 | 9 1 2",
		"6 7 2 | 1 9 5 | 3 4 8",
		"1 9 8 | 3 4 2 | 5 6 7",
		"------+-------+------",
		"8 5 9 | 7 6 1 | 4 2 3",
		"4 2 6 | 8 5 3 | 7 9 1",
		"7 1 3 | 9 2 4 | 8 5 6",
		"------+-------+------",
		"9 6 1 | 5 3 7 | 2 8 4",
		"2 8 7 | 4 1 9 | 6 3 5",
		"3 4 5 | 2 8 6 | 1 7 9",
		"",
	}, "\n")
	if got := Text(g); got != want {
		t.Fatalf("layout mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestUnknownCellsRenderAsX(t *testing.T) {
	g, err := loader.FromString(strings.Repeat(".", 81))
	if err != nil {
		t.Fatal(err)
	}
	out := Text(g)
	if strings.Count(out, "X") != 81 {
		t.Fatalf("expected 81 X markers, got %d", strings.Count(out, "X"))
	}
	if !strings.Contains(out, "X X X | X X X | X X X") {
		t.Fatalf("unexpected row format:\n%s", out)
	}
}
