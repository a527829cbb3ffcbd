// internal/game/engine.go
//
// Dictionary-backed part of the puzzle engine.
// Responsibilities:
//   - Spelling check of a completed row (policy can switch it off).
//   - Aggregating every rule into a RowValidationState.
//   - Painting verdicts onto a copy of the grid (validateAndUpdateRow).
//   - Counting / listing dictionary words that satisfy every constraint
//     currently knowable for a row.
//
// Notes:
//   - The dictionary is a collaborator behind the Dictionary interface;
//     words.Dictionary satisfies it.
//   - Nothing here mutates its input grid.

package game

import (
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

// MinCheckableLength is the shortest word the spelling rule looks at.
const MinCheckableLength = 3

// Dictionary is the subset of the word list contract the engine consumes.
type Dictionary interface {
	IsValidWord(word string) bool
	WordsOfLength(length int) []string
}

// Engine binds the rule set to a dictionary and a spelling policy.
type Engine struct {
	dict       Dictionary
	spellCheck bool
}

// NewEngine returns an engine. With spellCheck false (or a nil dictionary)
// every row passes the spelling rule.
func NewEngine(dict Dictionary, spellCheck bool) *Engine {
	return &Engine{dict: dict, spellCheck: spellCheck}
}

// ValidateSpelling accepts the row when the policy is off, when the word is
// shorter than MinCheckableLength, or when the dictionary knows the word.
func (e *Engine) ValidateSpelling(g Grid, row int) bool {
	if !e.spellCheck || e.dict == nil {
		return true
	}
	word := WordFromRow(g, row)
	if utf8.RuneCountInString(word) < MinCheckableLength {
		return true
	}
	return e.dict.IsValidWord(word)
}

// RowValidationState evaluates every rule for row.
func (e *Engine) RowValidationState(g Grid, row int) RowValidationState {
	return RowValidationState{
		Spelling:       e.ValidateSpelling(g, row),
		HardMatch:      ValidateHardMatchTiles(g, row),
		SoftMatch:      ValidateSoftMatchTiles(g, row),
		ForbiddenMatch: ValidateForbiddenMatchTiles(g, row),
		NoConflict:     ValidateNoHardMatchForbiddenConflict(g, row),
		UniqueWords:    ValidateUniqueWords(g, row),

		HasHardMatchTile:      rowHasTile(g, row, KindHardMatch),
		HasSoftMatchTile:      len(sourcesTargeting(g, row, KindSoftMatch)) > 0,
		HasForbiddenMatchTile: len(sourcesTargeting(g, row, KindForbiddenMatch)) > 0,
	}
}

// ValidateAndUpdateRow returns a copy of g where every accessible cell of row
// carries the aggregate verdict. In action mode those cells are also locked,
// pass or fail.
func (e *Engine) ValidateAndUpdateRow(g Grid, row int, mode Mode) (Grid, bool) {
	valid := e.RowValidationState(g, row).Valid()
	verdict := ValidationIncorrect
	if valid {
		verdict = ValidationCorrect
	}
	out := g.Clone()
	for c := range out.Cells[row] {
		cell := &out.Cells[row][c]
		if !cell.Accessible {
			continue
		}
		cell.Validation = verdict
		if mode == ModeAction {
			cell.State = CellLocked
		}
	}
	return out, valid
}

// ErrorMessage picks the single message shown for a failed row.
// Priority: spelling, uniqueness, hard match, soft match, forbidden match.
// A valid state yields "".
func ErrorMessage(s RowValidationState) string {
	switch {
	case s.Valid():
		return ""
	case !s.Spelling:
		return "Not in word list"
	case !s.UniqueWords:
		return "Word already used"
	case !s.HardMatch:
		return "Matched letters differ"
	case !s.SoftMatch:
		return "Missing required letter"
	case !s.ForbiddenMatch:
		return "Contains forbidden letter"
	default:
		return "Invalid"
	}
}

// rowConstraints is everything currently known about the word for a row.
type rowConstraints struct {
	length    int
	used      mapset.Set[string] // lowercase words of other complete rows
	positions map[int]string     // word index -> required lowercase letter
	required  mapset.Set[string] // letters the word must contain
	forbidden mapset.Set[string] // letters the word must not contain
}

func (rc rowConstraints) active() bool {
	return len(rc.positions) > 0 || rc.required.Size() > 0 || rc.forbidden.Size() > 0
}

func (rc rowConstraints) accepts(word string) bool {
	if len(word) != rc.length || rc.used.Has(word) {
		return false
	}
	for i, letter := range rc.positions {
		if word[i:i+1] != letter {
			return false
		}
	}
	ok := true
	rc.forbidden.Each(func(letter string) {
		if ok && strings.Contains(word, letter) {
			ok = false
		}
	})
	rc.required.Each(func(letter string) {
		if ok && !strings.Contains(word, letter) {
			ok = false
		}
	})
	return ok
}

// collectConstraints gathers the constraints on an incomplete target row.
// ok is false when the row is complete or has no accessible cells.
func collectConstraints(g Grid, target int) (rc rowConstraints, ok bool) {
	if IsRowComplete(g, target) {
		return rc, false
	}
	cols := accessibleCols(g, target)
	if len(cols) == 0 {
		return rc, false
	}
	rc = rowConstraints{
		length:    len(cols),
		used:      mapset.New[string](),
		positions: make(map[int]string),
		required:  mapset.New[string](),
		forbidden: mapset.New[string](),
	}

	for r := range g.Cells {
		if r == target || !IsRowComplete(g, r) {
			continue
		}
		if w := WordFromRow(g, r); w != "" {
			rc.used.Put(strings.ToLower(w))
		}
	}

	for i, c := range cols {
		hm, isHard := g.Cells[target][c].RuleTile.(HardMatch)
		if !isHard || !g.InBounds(hm.PairedRow, hm.PairedCol) || !IsRowComplete(g, hm.PairedRow) {
			continue
		}
		if letter := g.Cells[hm.PairedRow][hm.PairedCol].Letter; letter != "" {
			rc.positions[i] = strings.ToLower(letter)
		}
	}

	for r := range g.Cells {
		if !IsRowComplete(g, r) {
			continue
		}
		for _, cell := range g.Cells[r] {
			if cell.Letter == "" {
				continue
			}
			switch t := cell.RuleTile.(type) {
			case SoftMatch:
				if t.NextRow == target {
					rc.required.Put(strings.ToLower(cell.Letter))
				}
			case ForbiddenMatch:
				if t.NextRow == target {
					rc.forbidden.Put(strings.ToLower(cell.Letter))
				}
			case HardMatch, nil:
			}
		}
	}
	return rc, true
}

// CountValidNextWords counts dictionary words that could complete targetRow
// under every active constraint. It returns 0 when the row is complete, has no
// accessible cells, or no hard/soft/forbidden constraint currently applies.
func (e *Engine) CountValidNextWords(g Grid, targetRow int) int {
	rc, ok := collectConstraints(g, targetRow)
	if !ok || !rc.active() || e.dict == nil {
		return 0
	}
	n := 0
	for _, w := range e.dict.WordsOfLength(rc.length) {
		if rc.accepts(strings.ToLower(w)) {
			n++
		}
	}
	return n
}

// SuggestWords lists dictionary words that fit targetRow right now, including
// rows with no active constraint (then only length and uniqueness apply).
func (e *Engine) SuggestWords(g Grid, targetRow int) []string {
	rc, ok := collectConstraints(g, targetRow)
	if !ok || e.dict == nil {
		return nil
	}
	var out []string
	for _, w := range e.dict.WordsOfLength(rc.length) {
		if lw := strings.ToLower(w); rc.accepts(lw) {
			out = append(out, lw)
		}
	}
	return out
}
