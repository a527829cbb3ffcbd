// internal/generator/generator.go
//
// Procedural puzzle generator.
//
// A single call sequence per puzzle:
//   1. GeneratePuzzleConfig lays out one word slot per word row, each
//      covering CenterCol, with padding rows above and below.
//   2. CreateGridFromConfig materializes the cells and places rule tiles:
//      hard-match pairs, soft-match tiles, forbidden-match tiles, then a
//      per-row backfill up to MinRuleTilesPerWord.
//
// Placement is best effort: each random phase stops after
// MaxPlacementAttempts samples even if its target was not reached.
// Only the backfill scans deterministically.

package generator

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wordtravel/engine/internal/game"
)

// Generator builds puzzles from a Config and a random source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New returns a generator. A nil rng gets a time-seeded source.
// cfg is used as given; callers should run cfg.Validate first. A word length
// range with min above max collapses to min.
func New(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		now := time.Now()
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Nanosecond())))
	}
	return &Generator{cfg: cfg, rng: rng}
}

// NewSeeded returns a generator whose output is fully determined by seed.
func NewSeeded(cfg Config, seed uint64) *Generator {
	return New(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Config returns the generator's settings.
func (g *Generator) Config() Config { return g.cfg }

// GeneratePuzzleConfig picks a random length and centered placement for each
// word row. Word rows start after paddingTop; paddingBottom empty rows follow.
func (g *Generator) GeneratePuzzleConfig(paddingTop, paddingBottom int) game.PuzzleConfig {
	paddingTop, paddingBottom = max(paddingTop, 0), max(paddingBottom, 0)
	slots := make([]game.WordSlot, 0, g.cfg.WordRows)
	for i := range g.cfg.WordRows {
		length := g.randomWordLength()
		start := g.wordStart(length)
		slots = append(slots, game.WordSlot{
			Row:      paddingTop + i,
			Length:   length,
			StartCol: start,
			EndCol:   start + length - 1,
		})
	}
	return game.PuzzleConfig{
		WordSlots: slots,
		Rows:      g.cfg.WordRows + paddingTop + paddingBottom,
		Cols:      g.cfg.GridCols,
	}
}

// CreateGridFromConfig materializes cfg and places rule tiles on it.
func (g *Generator) CreateGridFromConfig(cfg game.PuzzleConfig) game.Grid {
	grid := game.GridFromConfig(cfg)
	wordRows := len(cfg.WordSlots)

	g.placeHardMatches(&grid, target(wordRows, g.cfg.HardMatchRatio))
	g.placeSingleSided(&grid, game.KindSoftMatch, target(wordRows, g.cfg.SoftMatchRatio))
	g.placeSingleSided(&grid, game.KindForbiddenMatch, target(wordRows, g.cfg.ForbiddenMatchRatio))
	g.backfill(&grid, cfg.WordSlots)
	return grid
}

// Generate is GeneratePuzzleConfig followed by CreateGridFromConfig.
func (g *Generator) Generate(paddingTop, paddingBottom int) (game.PuzzleConfig, game.Grid) {
	cfg := g.GeneratePuzzleConfig(paddingTop, paddingBottom)
	return cfg, g.CreateGridFromConfig(cfg)
}

func target(wordRows int, ratio float64) int {
	return int(math.Round(float64(wordRows) * ratio))
}

func (g *Generator) randomWordLength() int {
	lo, hi := g.cfg.MinWordLength, g.cfg.MaxWordLength
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

// wordStart picks uniformly among start columns whose span stays inside the
// word window and covers CenterCol.
func (g *Generator) wordStart(length int) int {
	lo, hi := g.cfg.window()
	center := g.cfg.CenterCol
	var starts []int
	for start := lo; start+length-1 <= hi; start++ {
		if start <= center && start+length-1 >= center {
			starts = append(starts, start)
		}
	}
	if len(starts) == 0 {
		return max(center-length/2, 0)
	}
	return starts[g.rng.IntN(len(starts))]
}

// sample returns a random (row, col) with row above the last row.
func (g *Generator) sample(grid game.Grid) (int, int, bool) {
	if grid.Rows < 2 || grid.Cols < 1 {
		return 0, 0, false
	}
	return g.rng.IntN(grid.Rows - 1), g.rng.IntN(grid.Cols), true
}

func free(grid game.Grid, row, col int) bool {
	cell := grid.Cells[row][col]
	return cell.Accessible && cell.RuleTile == nil
}

func installPair(grid *game.Grid, row, col int) {
	grid.Cells[row][col].RuleTile = game.HardMatch{PairedRow: row + 1, PairedCol: col, Position: game.PairTop}
	grid.Cells[row+1][col].RuleTile = game.HardMatch{PairedRow: row, PairedCol: col, Position: game.PairBottom}
}

func (g *Generator) placeHardMatches(grid *game.Grid, want int) {
	placed := 0
	for attempt := 0; placed < want && attempt < g.cfg.MaxPlacementAttempts; attempt++ {
		row, col, ok := g.sample(*grid)
		if !ok {
			break
		}
		if free(*grid, row, col) && free(*grid, row+1, col) {
			installPair(grid, row, col)
			placed++
		}
	}
	log.Debug().Str("kind", string(game.KindHardMatch)).Int("target", want).Int("placed", placed).Msg("rule tiles placed")
}

func (g *Generator) placeSingleSided(grid *game.Grid, kind game.TileKind, want int) {
	placed := 0
	for attempt := 0; placed < want && attempt < g.cfg.MaxPlacementAttempts; attempt++ {
		row, col, ok := g.sample(*grid)
		if !ok {
			break
		}
		if !free(*grid, row, col) || !game.HasAccessibleCells(*grid, row+1) {
			continue
		}
		if kind == game.KindForbiddenMatch && pairsInto(*grid, row, row+1) {
			continue
		}
		grid.Cells[row][col].RuleTile = singleSided(kind, row+1)
		placed++
	}
	log.Debug().Str("kind", string(kind)).Int("target", want).Int("placed", placed).Msg("rule tiles placed")
}

func singleSided(kind game.TileKind, next int) game.RuleTile {
	switch kind {
	case game.KindSoftMatch:
		return game.SoftMatch{NextRow: next}
	case game.KindForbiddenMatch:
		return game.ForbiddenMatch{NextRow: next}
	default:
		panic("generator: " + string(kind) + " is not single-sided")
	}
}

// pairsInto reports whether row holds a hard-match tile paired into next.
// A forbidden tile on such a row could contradict the pair.
func pairsInto(grid game.Grid, row, next int) bool {
	for _, cell := range grid.Cells[row] {
		if hm, ok := cell.RuleTile.(game.HardMatch); ok && hm.PairedRow == next {
			return true
		}
	}
	return false
}

// forbidsInto reports whether row holds a forbidden tile targeting next.
func forbidsInto(grid game.Grid, row, next int) bool {
	for _, cell := range grid.Cells[row] {
		if fm, ok := cell.RuleTile.(game.ForbiddenMatch); ok && fm.NextRow == next {
			return true
		}
	}
	return false
}

func tilesInRow(grid game.Grid, row int) int {
	n := 0
	for _, cell := range grid.Cells[row] {
		if cell.Accessible && cell.RuleTile != nil {
			n++
		}
	}
	return n
}

// backfill tops up every word row to MinRuleTilesPerWord, scanning left to
// right: a hard pair with the row below where possible, a soft tile otherwise.
func (g *Generator) backfill(grid *game.Grid, slots []game.WordSlot) {
	added := 0
	for _, slot := range slots {
		row := slot.Row
		if row < 0 || row >= grid.Rows {
			continue
		}
		count := tilesInRow(*grid, row)
		for col := 0; col < grid.Cols && count < g.cfg.MinRuleTilesPerWord; col++ {
			if !free(*grid, row, col) {
				continue
			}
			switch {
			case row+1 < grid.Rows && free(*grid, row+1, col) && !forbidsInto(*grid, row, row+1):
				installPair(grid, row, col)
			case game.HasAccessibleCells(*grid, row+1):
				grid.Cells[row][col].RuleTile = game.SoftMatch{NextRow: row + 1}
			default:
				continue
			}
			count++
			added++
		}
	}
	log.Debug().Int("added", added).Int("min_per_word", g.cfg.MinRuleTilesPerWord).Msg("rule tiles backfilled")
}
