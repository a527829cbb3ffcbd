// internal/game/session.go
//
// Session drives one game: it owns the current grid, applies letter entry,
// keeps hard-match partners in sync and re-validates rows as they complete.
//
// State transitions:
//   - puzzle mode: Complete once every word row is validated correct.
//   - action mode: Complete once every word row carries a verdict
//     (rows lock on validation, pass or fail).
//   - Success when every word row validated correct.
//
// Score: each row adds its word length the first time it validates correct.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSessionFinished = errors.New("session finished")
	ErrOutOfBounds     = errors.New("cell out of bounds")
	ErrInaccessible    = errors.New("cell is not part of a word")
	ErrRowLocked       = errors.New("row is locked")
	ErrInvalidLetter   = errors.New("letter must be a single alphabetic character")
)

// RowResult reports the verdict for a row validated after an edit.
type RowResult struct {
	Row     int
	Word    string
	Valid   bool
	State   RowValidationState
	Message string // "" when valid
}

// Session holds the state of a single game.
type Session struct {
	ID       string
	Mode     Mode
	Grid     Grid
	Score    int
	Complete bool
	Success  bool

	engine *Engine
	scored map[int]bool
}

// NewSession starts a session over g.
func NewSession(e *Engine, mode Mode, g Grid) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Mode:   mode,
		Grid:   g,
		engine: e,
		scored: make(map[int]bool),
	}
}

// PlaceLetter writes letter at (row, col), syncs the hard-match partner and
// validates every affected row that is now complete.
func (s *Session) PlaceLetter(row, col int, letter string) ([]RowResult, error) {
	if err := s.checkEditable(row, col); err != nil {
		return nil, err
	}
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if r, size := utf8.DecodeRuneInString(letter); size == 0 || size != len(letter) || !unicode.IsLetter(r) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}

	g := s.Grid.Clone()
	s.resetRow(&g, row)
	cell := &g.Cells[row][col]
	cell.Letter = letter
	cell.State = CellFilled

	affected := append([]int{row}, dependents(g, row)...)
	if hm, ok := cell.RuleTile.(HardMatch); ok && g.InBounds(hm.PairedRow, hm.PairedCol) {
		if g.Cells[hm.PairedRow][hm.PairedCol].State != CellLocked {
			g = SyncPairedCell(g, row, col, letter)
			s.resetRow(&g, hm.PairedRow)
			affected = append(affected, hm.PairedRow)
			affected = append(affected, dependents(g, hm.PairedRow)...)
		}
	}
	s.Grid = g
	return s.validateRows(affected), nil
}

// ClearLetter empties (row, col) and clears the verdicts of its row.
func (s *Session) ClearLetter(row, col int) error {
	if err := s.checkEditable(row, col); err != nil {
		return err
	}
	g := s.Grid.Clone()
	s.resetRow(&g, row)
	g.Cells[row][col].Letter = ""
	g.Cells[row][col].State = CellEmpty
	// Rows constrained by this one lose those constraints until it is refilled.
	deps := dependents(g, row)
	for _, r := range deps {
		s.resetRow(&g, r)
	}
	s.Grid = g
	s.validateRows(deps)
	return nil
}

// dependents lists the rows whose verdict depends on row's letters: targets of
// its soft/forbidden tiles and partners of its hard-match tiles.
func dependents(g Grid, row int) []int {
	var out []int
	for _, c := range g.Cells[row] {
		if !c.Accessible || c.RuleTile == nil {
			continue
		}
		next, ok := targetRow(c.RuleTile)
		if hm, isHard := c.RuleTile.(HardMatch); isHard {
			next, ok = hm.PairedRow, true
		}
		if ok && next >= 0 && next < len(g.Cells) {
			out = append(out, next)
		}
	}
	return out
}

// RowState evaluates row without changing the session.
func (s *Session) RowState(row int) RowValidationState {
	return s.engine.RowValidationState(s.Grid, row)
}

func (s *Session) checkEditable(row, col int) error {
	if s.Complete {
		return ErrSessionFinished
	}
	if !s.Grid.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	cell := s.Grid.Cells[row][col]
	if !cell.Accessible {
		return fmt.Errorf("%w: (%d,%d)", ErrInaccessible, row, col)
	}
	if cell.State == CellLocked || !CanEditRow(s.Grid, row, s.Mode) {
		return fmt.Errorf("%w: row %d", ErrRowLocked, row)
	}
	return nil
}

// resetRow drops verdicts of row so it is re-validated on completion.
// Locked rows keep theirs.
func (s *Session) resetRow(g *Grid, row int) {
	for c := range g.Cells[row] {
		cell := &g.Cells[row][c]
		if cell.State != CellLocked {
			cell.Validation = ValidationNone
		}
	}
}

func (s *Session) validateRows(rows []int) []RowResult {
	var results []RowResult
	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		if seen[row] || !s.Grid.InBounds(row, 0) || !HasAccessibleCells(s.Grid, row) || !IsRowComplete(s.Grid, row) {
			continue
		}
		seen[row] = true
		if s.Grid.Cells[row][accessibleCols(s.Grid, row)[0]].State == CellLocked {
			continue
		}

		state := s.engine.RowValidationState(s.Grid, row)
		g, valid := s.engine.ValidateAndUpdateRow(s.Grid, row, s.Mode)
		s.Grid = g

		res := RowResult{
			Row:     row,
			Word:    WordFromRow(g, row),
			Valid:   valid,
			State:   state,
			Message: ErrorMessage(state),
		}
		if valid && !s.scored[row] {
			s.scored[row] = true
			s.Score += len(accessibleCols(g, row))
		}
		log.Debug().
			Str("session", s.ID).
			Int("row", row).
			Str("word", res.Word).
			Bool("valid", valid).
			Str("reason", res.Message).
			Msg("row validated")
		results = append(results, res)
	}
	s.refreshStatus()
	return results
}

// refreshStatus recomputes Complete and Success from the grid.
func (s *Session) refreshStatus() {
	allValidated, allCorrect, hasRows := true, true, false
	for r := range s.Grid.Cells {
		cols := accessibleCols(s.Grid, r)
		if len(cols) == 0 {
			continue
		}
		hasRows = true
		switch s.Grid.Cells[r][cols[0]].Validation {
		case ValidationCorrect:
		case ValidationIncorrect:
			allCorrect = false
		default:
			allValidated, allCorrect = false, false
		}
	}
	s.Success = hasRows && allCorrect
	if s.Mode == ModeAction {
		s.Complete = hasRows && allValidated
	} else {
		s.Complete = s.Success
	}
}
