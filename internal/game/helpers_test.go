package game

// cell builds an accessible (or not) cell with an optional rule tile.
func cell(letter string, accessible bool, tile RuleTile) Cell {
	state := CellEmpty
	if letter != "" {
		state = CellFilled
	}
	return Cell{
		Letter:     letter,
		State:      state,
		Accessible: accessible,
		Validation: ValidationNone,
		RuleTile:   tile,
	}
}

// open is an accessible cell without a tile.
func open(letter string) Cell { return cell(letter, true, nil) }

// wall is an inaccessible cell.
func wall() Cell { return cell("", false, nil) }

func gridOf(rows ...[]Cell) Grid {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	return Grid{Rows: len(rows), Cols: cols, Cells: rows}
}

// row builds a row of accessible untiled cells from a word ('_' = empty).
func row(word string) []Cell {
	out := make([]Cell, 0, len(word))
	for _, r := range word {
		if r == '_' {
			out = append(out, open(""))
			continue
		}
		out = append(out, open(string(r)))
	}
	return out
}

var (
	topPair    = HardMatch{PairedRow: 1, PairedCol: 0, Position: PairTop}
	bottomPair = HardMatch{PairedRow: 0, PairedCol: 0, Position: PairBottom}
)

// pairGrid is row0 [A^ B] over row1 [x v, C] with a hard-match pair in column 0.
func pairGrid(top, bottom string) Grid {
	return gridOf(
		[]Cell{cell(top, true, topPair), open("B")},
		[]Cell{cell(bottom, true, bottomPair), open("C")},
	)
}
