package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid generator config")

// Config holds the generator constants. YAML keys match the tuning file.
type Config struct {
	WordRows             int     `yaml:"word_rows"`
	MinWordLength        int     `yaml:"min_word_length"`
	MaxWordLength        int     `yaml:"max_word_length"`
	GridCols             int     `yaml:"grid_cols"`
	CenterCol            int     `yaml:"center_col"`
	MinRuleTilesPerWord  int     `yaml:"min_rule_tiles_per_word"`
	HardMatchRatio       float64 `yaml:"hard_match_ratio"`
	SoftMatchRatio       float64 `yaml:"soft_match_ratio"`
	ForbiddenMatchRatio  float64 `yaml:"forbidden_match_ratio"`
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"`
}

// DefaultConfig matches the shipped game: seven rows of 3–5 letter words
// centered on column 4 of a 9-column grid.
func DefaultConfig() Config {
	return Config{
		WordRows:             7,
		MinWordLength:        3,
		MaxWordLength:        5,
		GridCols:             9,
		CenterCol:            4,
		MinRuleTilesPerWord:  1,
		HardMatchRatio:       0.5,
		SoftMatchRatio:       0.5,
		ForbiddenMatchRatio:  0.25,
		MaxPlacementAttempts: 100,
	}
}

// window is the column range every word must fit in. For the default
// config it is [CenterCol-2, CenterCol+2].
func (c Config) window() (lo, hi int) {
	return c.CenterCol - (c.MaxWordLength-1)/2, c.CenterCol + c.MaxWordLength/2
}

// Validate checks that every word length can be placed over CenterCol.
func (c Config) Validate() error {
	lo, hi := c.window()
	switch {
	case c.WordRows < 1:
		return fmt.Errorf("%w: word_rows must be positive, got %d", ErrInvalidConfig, c.WordRows)
	case c.MinWordLength < 1 || c.MinWordLength > c.MaxWordLength:
		return fmt.Errorf("%w: word lengths %d..%d", ErrInvalidConfig, c.MinWordLength, c.MaxWordLength)
	case c.CenterCol < 0 || c.CenterCol >= c.GridCols:
		return fmt.Errorf("%w: center_col %d outside %d columns", ErrInvalidConfig, c.CenterCol, c.GridCols)
	case lo < 0 || hi >= c.GridCols:
		return fmt.Errorf("%w: word window [%d,%d] outside %d columns", ErrInvalidConfig, lo, hi, c.GridCols)
	case c.MinRuleTilesPerWord < 0 || c.MaxPlacementAttempts < 0:
		return fmt.Errorf("%w: negative tile bounds", ErrInvalidConfig)
	case c.HardMatchRatio < 0 || c.SoftMatchRatio < 0 || c.ForbiddenMatchRatio < 0:
		return fmt.Errorf("%w: negative tile ratio", ErrInvalidConfig)
	}
	return nil
}
