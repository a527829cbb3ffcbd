// internal/game/rules.go
//
// Dictionary-free rule validators. Each is a pure predicate over (grid, row).
//
// A constraint only fails once every row it depends on is complete; until then
// it is treated as "not yet applicable" and passes.
//
// Letter comparisons for hard/soft/forbidden tiles are raw equality. Letters
// are canonicalized upstream (the Session stores uppercase). Word uniqueness
// compares case-insensitively.

package game

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// ValidateHardMatchTiles checks every hard-match tile in row against its
// partner. Pairs whose partner row is incomplete are skipped.
func ValidateHardMatchTiles(g Grid, row int) bool {
	for _, cell := range g.Cells[row] {
		if !cell.Accessible {
			continue
		}
		hm, ok := cell.RuleTile.(HardMatch)
		if !ok || !g.InBounds(hm.PairedRow, hm.PairedCol) {
			continue
		}
		if !IsRowComplete(g, hm.PairedRow) {
			continue
		}
		if cell.Letter != g.Cells[hm.PairedRow][hm.PairedCol].Letter {
			return false
		}
	}
	return true
}

// ValidateSoftMatchTiles requires the letter of every soft-match source that
// targets row (and whose own row is complete) to appear in row.
// The source row itself is never failed by its own tile.
func ValidateSoftMatchTiles(g Grid, row int) bool {
	for _, src := range sourcesTargeting(g, row, KindSoftMatch) {
		if !IsRowComplete(g, src.Row) {
			continue
		}
		letter := g.Cells[src.Row][src.Col].Letter
		if letter == "" || !rowContainsLetter(g, row, letter) {
			return false
		}
	}
	return true
}

// ValidateForbiddenMatchTiles requires the letter of every forbidden-match
// source that targets row (and whose own row is complete) to be absent from row.
func ValidateForbiddenMatchTiles(g Grid, row int) bool {
	for _, src := range sourcesTargeting(g, row, KindForbiddenMatch) {
		if !IsRowComplete(g, src.Row) {
			continue
		}
		letter := g.Cells[src.Row][src.Col].Letter
		if letter != "" && rowContainsLetter(g, row, letter) {
			return false
		}
	}
	return true
}

// ValidateNoHardMatchForbiddenConflict fails when the same letter sits on
// both a hard-match tile and a forbidden-match tile in row.
func ValidateNoHardMatchForbiddenConflict(g Grid, row int) bool {
	hard := mapset.New[string]()
	forbidden := mapset.New[string]()
	for _, cell := range g.Cells[row] {
		if !cell.Accessible || cell.Letter == "" || cell.RuleTile == nil {
			continue
		}
		switch cell.RuleTile.Kind() {
		case KindHardMatch:
			hard.Put(cell.Letter)
		case KindForbiddenMatch:
			forbidden.Put(cell.Letter)
		case KindSoftMatch:
		}
	}
	conflict := false
	hard.Each(func(letter string) {
		if forbidden.Has(letter) {
			conflict = true
		}
	})
	return !conflict
}

// ValidateUniqueWords fails when row's word equals (case-insensitively) the
// word of another complete row. An empty word always passes.
func ValidateUniqueWords(g Grid, row int) bool {
	word := strings.ToLower(WordFromRow(g, row))
	if word == "" {
		return true
	}
	for r := range g.Cells {
		if r == row || !IsRowComplete(g, r) {
			continue
		}
		if other := WordFromRow(g, r); other != "" && strings.ToLower(other) == word {
			return false
		}
	}
	return true
}

// rowHasTile reports whether row holds an accessible cell with a tile of kind.
func rowHasTile(g Grid, row int, kind TileKind) bool {
	for _, cell := range g.Cells[row] {
		if cell.Accessible && cell.RuleTile != nil && cell.RuleTile.Kind() == kind {
			return true
		}
	}
	return false
}

// sourcesTargeting scans the whole grid for single-sided tiles of kind whose
// NextRow is row.
func sourcesTargeting(g Grid, row int, kind TileKind) []Position {
	var out []Position
	for r, cells := range g.Cells {
		for c, cell := range cells {
			if cell.RuleTile == nil || cell.RuleTile.Kind() != kind {
				continue
			}
			if next, ok := targetRow(cell.RuleTile); ok && next == row {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// targetRow returns the row a single-sided tile points at.
func targetRow(t RuleTile) (int, bool) {
	switch t := t.(type) {
	case SoftMatch:
		return t.NextRow, true
	case ForbiddenMatch:
		return t.NextRow, true
	case HardMatch, nil:
		return 0, false
	default:
		panic("game: unknown rule tile kind " + string(t.Kind()))
	}
}

// rowContainsLetter reports whether any accessible cell of row holds letter.
func rowContainsLetter(g Grid, row int, letter string) bool {
	for _, cell := range g.Cells[row] {
		if cell.Accessible && cell.Letter == letter {
			return true
		}
	}
	return false
}
