// internal/game/grid.go
//
// Grid construction, copying and row helpers.
// Every helper that changes a grid returns a new copy; the input is never
// mutated. Row and column arguments are assumed to be in range.

package game

import (
	"strings"
)

// NewGrid returns a rows × cols grid of empty, inaccessible cells.
func NewGrid(rows, cols int) Grid {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Cell{State: CellEmpty, Validation: ValidationNone}
		}
	}
	return Grid{Rows: rows, Cols: cols, Cells: cells}
}

// GridFromConfig materializes a PuzzleConfig: a cell is accessible iff its
// row has a word slot and its column lies inside the slot's span.
// No rule tiles are placed.
func GridFromConfig(cfg PuzzleConfig) Grid {
	g := NewGrid(cfg.Rows, cfg.Cols)
	for _, slot := range cfg.WordSlots {
		if slot.Row < 0 || slot.Row >= cfg.Rows {
			continue
		}
		for c := max(slot.StartCol, 0); c <= slot.EndCol && c < cfg.Cols; c++ {
			g.Cells[slot.Row][c].Accessible = true
		}
	}
	return g
}

// Clone deep-copies the cell matrix. Rule tiles are values and are shared safely.
func (g Grid) Clone() Grid {
	cells := make([][]Cell, len(g.Cells))
	for r, row := range g.Cells {
		cells[r] = make([]Cell, len(row))
		copy(cells[r], row)
	}
	return Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// InBounds reports whether (row, col) addresses a cell of g.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.Cells) && col >= 0 && col < len(g.Cells[row])
}

// WordFromRow concatenates the letters of the accessible cells in row,
// left to right. Inaccessible and empty cells are skipped, so an incomplete
// row yields a partial string.
func WordFromRow(g Grid, row int) string {
	var sb strings.Builder
	for _, cell := range g.Cells[row] {
		if cell.Accessible && cell.Letter != "" {
			sb.WriteString(cell.Letter)
		}
	}
	return sb.String()
}

// IsRowComplete reports whether every accessible cell in row has a letter.
// A row without accessible cells is vacuously complete.
func IsRowComplete(g Grid, row int) bool {
	for _, cell := range g.Cells[row] {
		if cell.Accessible && cell.Letter == "" {
			return false
		}
	}
	return true
}

// accessibleCols lists the accessible column indices of row in order.
func accessibleCols(g Grid, row int) []int {
	var cols []int
	for c, cell := range g.Cells[row] {
		if cell.Accessible {
			cols = append(cols, c)
		}
	}
	return cols
}

// HasAccessibleCells reports whether row exists and has an accessible cell.
func HasAccessibleCells(g Grid, row int) bool {
	if row < 0 || row >= len(g.Cells) {
		return false
	}
	for _, cell := range g.Cells[row] {
		if cell.Accessible {
			return true
		}
	}
	return false
}

// FindFirstAccessibleCell scans row-major for the first accessible cell.
// ok is false when the grid has none.
func FindFirstAccessibleCell(g Grid) (pos Position, ok bool) {
	for r, row := range g.Cells {
		for c, cell := range row {
			if cell.Accessible {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// FindNextAccessibleRow returns the first row below current that has an
// accessible cell.
func FindNextAccessibleRow(g Grid, current int) (int, bool) {
	for r := current + 1; r < len(g.Cells); r++ {
		if HasAccessibleCells(g, r) {
			return r, true
		}
	}
	return 0, false
}

// CanEditRow reports whether letters in row may still change.
// In action mode a row is frozen once any of its cells carries a verdict.
func CanEditRow(g Grid, row int, mode Mode) bool {
	if mode != ModeAction {
		return true
	}
	for _, cell := range g.Cells[row] {
		if cell.Validation != ValidationNone {
			return false
		}
	}
	return true
}

// SyncPairedCell copies letter into the partner of a hard-match cell and
// marks the partner filled. Cells without a hard-match tile return g as is.
func SyncPairedCell(g Grid, row, col int, letter string) Grid {
	hm, ok := g.Cells[row][col].RuleTile.(HardMatch)
	if !ok || !g.InBounds(hm.PairedRow, hm.PairedCol) {
		return g
	}
	out := g.Clone()
	paired := &out.Cells[hm.PairedRow][hm.PairedCol]
	paired.Letter = letter
	paired.State = CellFilled
	return out
}

// String renders the grid one row per line for debugging:
// '#' inaccessible, '_' empty, otherwise the letter, followed by a tile marker
// ('^' top pair, 'v' bottom pair, '+' soft, '!' forbidden, ' ' none).
func (g Grid) String() string {
	lines := make([]string, len(g.Cells))
	for r, row := range g.Cells {
		var sb strings.Builder
		for _, cell := range row {
			switch {
			case !cell.Accessible:
				sb.WriteByte('#')
			case cell.Letter == "":
				sb.WriteByte('_')
			default:
				sb.WriteString(cell.Letter)
			}
			sb.WriteByte(tileMarker(cell.RuleTile))
		}
		lines[r] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func tileMarker(t RuleTile) byte {
	switch t := t.(type) {
	case nil:
		return ' '
	case HardMatch:
		if t.Position == PairTop {
			return '^'
		}
		return 'v'
	case SoftMatch:
		return '+'
	case ForbiddenMatch:
		return '!'
	default:
		return '?'
	}
}
