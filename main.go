package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordtravel/engine/internal/config"
	"github.com/wordtravel/engine/internal/daily"
	"github.com/wordtravel/engine/internal/game"
	"github.com/wordtravel/engine/internal/generator"
	"github.com/wordtravel/engine/internal/store"
	"github.com/wordtravel/engine/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	setupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	top := flag.Int("top", cfg.PaddingTop, "Padding rows above the words")
	bottom := flag.Int("bottom", cfg.PaddingBottom, "Padding rows below the words")
	seed := flag.Uint64("seed", cfg.Seed, "Generator seed (0 = random)")
	useDaily := flag.Bool("daily", false, "Use today's daily seed")
	mode := flag.String("mode", string(game.ModePuzzle), "Game mode: puzzle or action")
	autoplay := flag.Bool("autoplay", false, "Fill the puzzle with suggested words")
	flag.Parse()

	if *mode != string(game.ModePuzzle) && *mode != string(game.ModeAction) {
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	if *useDaily {
		*seed = daily.Seed(time.Now(), cfg.DailySalt)
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("using daily seed")
	}
	var gen *generator.Generator
	if *seed != 0 {
		gen = generator.NewSeeded(cfg.Generator, *seed)
	} else {
		gen = generator.New(cfg.Generator, nil)
	}

	puzzle, grid := gen.Generate(*top, *bottom)
	log.Info().Int("rows", puzzle.Rows).Int("cols", puzzle.Cols).Int("words", len(puzzle.WordSlots)).Msg("puzzle generated")
	fmt.Println(grid.String())
	fmt.Println()

	engine := game.NewEngine(words.Default, cfg.SpellCheck)
	if !*autoplay {
		for _, slot := range puzzle.WordSlots {
			fmt.Printf("row %d: %d letters at columns %d-%d\n", slot.Row, slot.Length, slot.StartCol, slot.EndCol)
		}
		return
	}

	rng := rand.New(rand.NewPCG(*seed, uint64(time.Now().UnixNano())))
	ctx := context.Background()
	sessions := store.NewMemoryStore()
	sess := game.NewSession(engine, game.Mode(*mode), grid)
	if err := sessions.Save(ctx, sess); err != nil {
		log.Fatal().Err(err).Msg("failed to register session")
	}
	log.Info().Str("session", sess.ID).Str("mode", *mode).Msg("session started")
	if err := play(sess, engine, puzzle, rng); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("autoplay stopped")
	}
	if sess, err = sessions.Get(ctx, sess.ID); err != nil {
		log.Fatal().Err(err).Msg("session lookup failed")
	}
	fmt.Println()
	fmt.Println(sess.Grid.String())
	fmt.Printf("\nscore=%d complete=%t success=%t\n", sess.Score, sess.Complete, sess.Success)
}

// play fills word rows top to bottom with a random suggested word each.
func play(sess *game.Session, engine *game.Engine, puzzle game.PuzzleConfig, rng *rand.Rand) error {
	for _, slot := range puzzle.WordSlots {
		if game.IsRowComplete(sess.Grid, slot.Row) {
			continue
		}
		count := engine.CountValidNextWords(sess.Grid, slot.Row)
		options := engine.SuggestWords(sess.Grid, slot.Row)
		if len(options) == 0 {
			return fmt.Errorf("no word fits row %d", slot.Row)
		}
		word := strings.ToUpper(options[rng.IntN(len(options))])
		fmt.Printf("row %d: %d constrained candidates, playing %s\n", slot.Row, count, word)

		for i, col := 0, slot.StartCol; col <= slot.EndCol; i, col = i+1, col+1 {
			letter := word[i : i+1]
			if sess.Grid.Cells[slot.Row][col].Letter == letter {
				continue
			}
			results, err := sess.PlaceLetter(slot.Row, col, letter)
			if err != nil {
				return err
			}
			for _, res := range results {
				verdict := "ok"
				if !res.Valid {
					verdict = res.Message
				}
				fmt.Printf("  row %d %q: %s\n", res.Row, res.Word, verdict)
			}
		}
	}
	return nil
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
