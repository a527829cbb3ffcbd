package game

import (
	"errors"
	"testing"
)

// sessionGrid is two 3-letter rows with a hard pair in column 0 and a
// padding column on the right.
func sessionGrid() Grid {
	return gridOf(
		[]Cell{cell("", true, topPair), open(""), open(""), wall()},
		[]Cell{cell("", true, bottomPair), open(""), open(""), wall()},
	)
}

func place(t *testing.T, s *Session, r int, word string) []RowResult {
	t.Helper()
	var last []RowResult
	for i, ch := range word {
		res, err := s.PlaceLetter(r, i, string(ch))
		if err != nil {
			t.Fatalf("PlaceLetter(%d,%d,%q): %v", r, i, ch, err)
		}
		last = res
	}
	return last
}

func TestSessionPuzzleFlow(t *testing.T) {
	e := NewEngine(dict("cat", "cow", "dog"), true)
	s := NewSession(e, ModePuzzle, sessionGrid())
	if s.ID == "" {
		t.Fatal("session needs an ID")
	}

	res := place(t, s, 0, "cat")
	if len(res) != 1 || !res[0].Valid || res[0].Word != "CAT" {
		t.Fatalf("row 0 results = %+v", res)
	}
	if got := s.Grid.Cells[1][0]; got.Letter != "C" || got.State != CellFilled {
		t.Fatalf("hard pair not synced: %+v", got)
	}
	if s.Score != 3 || s.Complete {
		t.Fatalf("score=%d complete=%v", s.Score, s.Complete)
	}

	if _, err := s.PlaceLetter(1, 1, "o"); err != nil {
		t.Fatal(err)
	}
	res, err := s.PlaceLetter(1, 2, "w")
	if err != nil {
		t.Fatal(err)
	}
	// Row 0 is re-checked against its now complete hard-match partner.
	if len(res) != 2 || res[0].Row != 1 || !res[0].Valid || res[1].Row != 0 || !res[1].Valid {
		t.Fatalf("results = %+v", res)
	}
	if !s.Complete || !s.Success || s.Score != 6 {
		t.Fatalf("complete=%v success=%v score=%d", s.Complete, s.Success, s.Score)
	}
	if _, err := s.PlaceLetter(0, 1, "x"); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("err = %v, want ErrSessionFinished", err)
	}
}

func TestSessionPuzzleModeAllowsFixingRows(t *testing.T) {
	e := NewEngine(dict("cat", "cot"), true)
	s := NewSession(e, ModePuzzle, sessionGrid())

	res := place(t, s, 0, "cxt")
	if len(res) != 1 || res[0].Valid || res[0].Message != "Not in word list" {
		t.Fatalf("row 0 results = %+v", res)
	}
	res, err := s.PlaceLetter(0, 1, "a")
	if err != nil {
		t.Fatalf("puzzle mode must allow edits: %v", err)
	}
	if len(res) != 1 || !res[0].Valid {
		t.Fatalf("row 0 results after fix = %+v", res)
	}
	if s.Grid.Cells[0][1].Validation != ValidationCorrect {
		t.Fatal("row should be repainted correct")
	}
}

func TestSessionActionModeLocksRows(t *testing.T) {
	e := NewEngine(dict("cat"), true)
	s := NewSession(e, ModeAction, sessionGrid())

	res := place(t, s, 0, "cxt")
	if len(res) != 1 || res[0].Valid {
		t.Fatalf("row 0 results = %+v", res)
	}
	if s.Grid.Cells[0][0].State != CellLocked {
		t.Fatal("action mode locks validated rows")
	}
	if _, err := s.PlaceLetter(0, 1, "a"); !errors.Is(err, ErrRowLocked) {
		t.Fatalf("err = %v, want ErrRowLocked", err)
	}

	// Editing the bottom of the pair must not overwrite the locked top.
	if _, err := s.PlaceLetter(1, 0, "z"); err != nil {
		t.Fatal(err)
	}
	if s.Grid.Cells[0][0].Letter != "C" {
		t.Fatal("locked partner was overwritten")
	}
}

func TestSessionRejectsBadEdits(t *testing.T) {
	s := NewSession(NewEngine(nil, false), ModePuzzle, sessionGrid())
	tests := []struct {
		name     string
		row, col int
		letter   string
		want     error
	}{
		{"out of bounds", 5, 0, "a", ErrOutOfBounds},
		{"inaccessible", 0, 3, "a", ErrInaccessible},
		{"not a letter", 0, 1, "7", ErrInvalidLetter},
		{"two letters", 0, 1, "ab", ErrInvalidLetter},
		{"empty", 0, 1, "", ErrInvalidLetter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.PlaceLetter(tt.row, tt.col, tt.letter); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSessionClearLetter(t *testing.T) {
	s := NewSession(NewEngine(dict("cat"), true), ModePuzzle, sessionGrid())
	place(t, s, 0, "cat")
	if err := s.ClearLetter(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := s.Grid.Cells[0][2]; got.Letter != "" || got.State != CellEmpty {
		t.Fatalf("cell not cleared: %+v", got)
	}
	if s.Grid.Cells[0][0].Validation != ValidationNone {
		t.Fatal("clearing a letter drops the row verdict")
	}
	if IsRowComplete(s.Grid, 0) {
		t.Fatal("row should be incomplete")
	}
}

func TestSessionRevalidatesTargetRow(t *testing.T) {
	e := NewEngine(dict("tap", "dog"), true)
	g := gridOf([]Cell{cell("", true, SoftMatch{NextRow: 1}), open(""), open("")}, row("___"))
	s := NewSession(e, ModePuzzle, g)

	res := place(t, s, 1, "dog")
	if len(res) != 1 || !res[0].Valid {
		t.Fatalf("row 1 results = %+v", res)
	}

	// Completing the source row makes its T a requirement on DOG.
	res = place(t, s, 0, "tap")
	if len(res) != 2 {
		t.Fatalf("want both rows re-validated, got %+v", res)
	}
	if !res[0].Valid || res[1].Row != 1 || res[1].Valid || res[1].Message != "Missing required letter" {
		t.Fatalf("results = %+v", res)
	}
	if s.Complete || s.Score != 6 {
		t.Fatalf("complete=%v score=%d", s.Complete, s.Score)
	}
}

// syncGrid is row0 [C^ B] / row1 [Cv A+] / row2 [X Y]: the soft tile on row 1
// targets row 2, and row 1 can be completed by a sync from row 0.
func syncGrid() Grid {
	return gridOf(
		[]Cell{cell("", true, topPair), open("")},
		[]Cell{cell("", true, bottomPair), cell("", true, SoftMatch{NextRow: 2})},
		row("__"),
	)
}

func TestSessionSyncCompletingSourceRevalidatesTarget(t *testing.T) {
	s := NewSession(NewEngine(nil, false), ModePuzzle, syncGrid())
	place(t, s, 2, "xy")
	if s.Grid.Cells[2][0].Validation != ValidationCorrect {
		t.Fatal("row 2 should pass while row 1 is incomplete")
	}
	if _, err := s.PlaceLetter(1, 1, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.PlaceLetter(0, 1, "b"); err != nil {
		t.Fatal(err)
	}
	// C syncs into row 1, completing it; its A is now required in row 2.
	res, err := s.PlaceLetter(0, 0, "c")
	if err != nil {
		t.Fatal(err)
	}
	var row2 *RowResult
	for i := range res {
		if res[i].Row == 2 {
			row2 = &res[i]
		}
	}
	if row2 == nil || row2.Valid || row2.Message != "Missing required letter" {
		t.Fatalf("results = %+v", res)
	}
	if s.Grid.Cells[2][0].Validation != ValidationIncorrect {
		t.Fatal("row 2 kept a stale verdict")
	}
	if s.Complete || s.Success {
		t.Fatalf("complete=%v success=%v on a broken grid", s.Complete, s.Success)
	}
}

func TestSessionClearLetterRevalidatesTarget(t *testing.T) {
	s := NewSession(NewEngine(nil, false), ModePuzzle, syncGrid())
	place(t, s, 2, "xy")
	place(t, s, 0, "cb")
	if _, err := s.PlaceLetter(1, 1, "a"); err != nil {
		t.Fatal(err)
	}
	if s.Grid.Cells[2][0].Validation != ValidationIncorrect {
		t.Fatal("row 2 should fail once row 1 is complete")
	}

	if err := s.ClearLetter(1, 1); err != nil {
		t.Fatal(err)
	}
	if s.Grid.Cells[2][0].Validation != ValidationCorrect {
		t.Fatalf("row 2 = %v, want correct once the source is incomplete", s.Grid.Cells[2][0].Validation)
	}
}
