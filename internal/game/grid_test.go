package game

import (
	"testing"
)

func TestWordFromRowSkipsInaccessible(t *testing.T) {
	g := gridOf([]Cell{cell("C", false, nil), open("A"), open("T"), cell("X", false, nil)})
	if got := WordFromRow(g, 0); got != "AT" {
		t.Fatalf("WordFromRow = %q, want %q", got, "AT")
	}
}

func TestWordFromRowPartial(t *testing.T) {
	g := gridOf(row("C_T"))
	if got := WordFromRow(g, 0); got != "CT" {
		t.Fatalf("WordFromRow = %q, want %q", got, "CT")
	}
}

func TestIsRowComplete(t *testing.T) {
	tests := []struct {
		name string
		row  []Cell
		want bool
	}{
		{"all filled", row("CAT"), true},
		{"one empty", row("C_T"), false},
		{"empty inaccessible ignored", []Cell{wall(), open("A"), open("T"), wall()}, true},
		{"all inaccessible", []Cell{wall(), wall()}, true},
		{"no cells", []Cell{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRowComplete(gridOf(tt.row), 0); got != tt.want {
				t.Errorf("IsRowComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridFromConfigMatchesSlots(t *testing.T) {
	cfg := PuzzleConfig{
		Rows: 4,
		Cols: 6,
		WordSlots: []WordSlot{
			{Row: 1, Length: 3, StartCol: 1, EndCol: 3},
			{Row: 2, Length: 4, StartCol: 2, EndCol: 5},
		},
	}
	g := GridFromConfig(cfg)
	if g.Rows != 4 || g.Cols != 6 || len(g.Cells) != 4 {
		t.Fatalf("unexpected dimensions %dx%d", g.Rows, g.Cols)
	}
	for r := range g.Cells {
		if len(g.Cells[r]) != 6 {
			t.Fatalf("row %d has %d cells", r, len(g.Cells[r]))
		}
		for c, cl := range g.Cells[r] {
			want := (r == 1 && c >= 1 && c <= 3) || (r == 2 && c >= 2 && c <= 5)
			if cl.Accessible != want {
				t.Errorf("cell (%d,%d) accessible = %v, want %v", r, c, cl.Accessible, want)
			}
			if cl.State != CellEmpty || cl.Validation != ValidationNone || cl.RuleTile != nil {
				t.Errorf("cell (%d,%d) not blank: %+v", r, c, cl)
			}
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := gridOf(row("AB"))
	c := g.Clone()
	c.Cells[0][0].Letter = "Z"
	if g.Cells[0][0].Letter != "A" {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestFindFirstAccessibleCell(t *testing.T) {
	g := gridOf([]Cell{wall(), wall()}, []Cell{wall(), open("")})
	pos, ok := FindFirstAccessibleCell(g)
	if !ok || pos != (Position{Row: 1, Col: 1}) {
		t.Fatalf("got %+v %v, want (1,1) true", pos, ok)
	}
	if _, ok := FindFirstAccessibleCell(gridOf([]Cell{wall()})); ok {
		t.Fatal("expected no accessible cell")
	}
}

func TestFindNextAccessibleRow(t *testing.T) {
	g := gridOf(row("A"), []Cell{wall()}, row("_"))
	if r, ok := FindNextAccessibleRow(g, 0); !ok || r != 2 {
		t.Fatalf("got %d %v, want 2 true", r, ok)
	}
	if _, ok := FindNextAccessibleRow(g, 2); ok {
		t.Fatal("expected no row after the last")
	}
}

func TestCanEditRow(t *testing.T) {
	g := gridOf(row("AB"))
	g.Cells[0][0].Validation = ValidationIncorrect
	if !CanEditRow(g, 0, ModePuzzle) {
		t.Error("puzzle mode rows stay editable")
	}
	if CanEditRow(g, 0, ModeAction) {
		t.Error("action mode rows freeze once validated")
	}
}

func TestSyncPairedCell(t *testing.T) {
	g := pairGrid("", "")
	out := SyncPairedCell(g, 0, 0, "Q")
	if got := out.Cells[1][0]; got.Letter != "Q" || got.State != CellFilled {
		t.Fatalf("paired cell = %+v, want Q filled", got)
	}
	if g.Cells[1][0].Letter != "" {
		t.Fatal("input grid was mutated")
	}

	plain := gridOf(row("AB"), row("CD"))
	if out := SyncPairedCell(plain, 0, 1, "Q"); out.Cells[1][1].Letter != "D" {
		t.Fatal("cell without a pair must not propagate")
	}
}

func TestGridString(t *testing.T) {
	g := gridOf(
		[]Cell{wall(), cell("A", true, topPair), cell("", true, SoftMatch{NextRow: 1})},
		[]Cell{wall(), cell("", true, bottomPair), cell("", true, ForbiddenMatch{NextRow: 2})},
	)
	want := "# A^_+\n# _v_!"
	if got := g.String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
}
