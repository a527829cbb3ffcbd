// internal/game/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - Cell, Grid: the letter grid every other component reads and writes.
//   - RuleTile: the closed set of cross-row constraints (hard/soft/forbidden).
//   - WordSlot, PuzzleConfig: the generator's declarative layout.
//   - RowValidationState: per-row verdicts for every rule family.

package game

// Mode selects how validated rows behave.
//   - "puzzle": rows may be re-edited after validation.
//   - "action": a validated row is locked regardless of the verdict.
type Mode string

const (
	ModePuzzle Mode = "puzzle"
	ModeAction Mode = "action"
)

// CellState tracks whether a cell holds a letter and whether it may change.
type CellState string

const (
	CellEmpty  CellState = "empty"
	CellFilled CellState = "filled"
	CellLocked CellState = "locked"
)

// Validation is the verdict painted on a cell after its row was checked.
type Validation string

const (
	ValidationNone      Validation = "none"
	ValidationCorrect   Validation = "correct"
	ValidationIncorrect Validation = "incorrect"
)

// Cell is a single square of the grid.
// Inaccessible cells sit outside every word slot and are never validated or edited.
type Cell struct {
	Letter     string     // "" when empty; otherwise a single character
	State      CellState  // empty/filled/locked
	Accessible bool       // true if the cell belongs to a word slot
	Validation Validation // none/correct/incorrect
	RuleTile   RuleTile   // nil when the cell carries no constraint
}

// Grid is a rows × cols matrix of cells.
// Invariant: len(Cells) == Rows and every inner slice has length Cols.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// Position identifies a cell.
type Position struct {
	Row int
	Col int
}

// TileKind discriminates RuleTile implementations.
type TileKind string

const (
	KindHardMatch      TileKind = "hardMatch"
	KindSoftMatch      TileKind = "softMatch"
	KindForbiddenMatch TileKind = "forbiddenMatch"
)

// RuleTile is a constraint attached to a cell. The set of implementations is
// closed: HardMatch, SoftMatch and ForbiddenMatch.
type RuleTile interface {
	Kind() TileKind
	ruleTile()
}

// PairPosition says which member of a hard-match pair sits above the other.
type PairPosition string

const (
	PairTop    PairPosition = "top"
	PairBottom PairPosition = "bottom"
)

// HardMatch requires the cell and its paired cell to hold the same letter.
// Pairs are symmetric: each member references the other.
type HardMatch struct {
	PairedRow int
	PairedCol int
	Position  PairPosition
}

// SoftMatch requires the source cell's letter to appear somewhere in NextRow.
type SoftMatch struct {
	NextRow int
}

// ForbiddenMatch requires the source cell's letter to be absent from NextRow.
type ForbiddenMatch struct {
	NextRow int
}

func (HardMatch) Kind() TileKind      { return KindHardMatch }
func (SoftMatch) Kind() TileKind      { return KindSoftMatch }
func (ForbiddenMatch) Kind() TileKind { return KindForbiddenMatch }

func (HardMatch) ruleTile()      {}
func (SoftMatch) ruleTile()      {}
func (ForbiddenMatch) ruleTile() {}

// WordSlot declares the accessible column span of one row.
// Invariant: EndCol - StartCol + 1 == Length.
type WordSlot struct {
	Row      int `json:"row"`
	Length   int `json:"length"`
	StartCol int `json:"startCol"`
	EndCol   int `json:"endCol"`
}

// PuzzleConfig is the generator's declarative layout, materialized into a Grid.
type PuzzleConfig struct {
	WordSlots []WordSlot `json:"wordSlots"`
	Rows      int        `json:"rows"`
	Cols      int        `json:"cols"`
}

// RowValidationState holds every rule verdict for one row plus flags telling
// which constraint families actually apply to it.
type RowValidationState struct {
	Spelling       bool
	HardMatch      bool
	SoftMatch      bool
	ForbiddenMatch bool
	NoConflict     bool
	UniqueWords    bool

	HasHardMatchTile      bool // the row holds a hard-match tile
	HasSoftMatchTile      bool // some soft-match tile targets the row
	HasForbiddenMatchTile bool // some forbidden-match tile targets the row
}

// Valid reports whether every rule passed.
func (s RowValidationState) Valid() bool {
	return s.Spelling && s.HardMatch && s.SoftMatch && s.ForbiddenMatch &&
		s.NoConflict && s.UniqueWords
}
