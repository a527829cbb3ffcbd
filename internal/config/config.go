// internal/config/config.go
//
// Process configuration read from the environment (after godotenv has loaded
// any .env file) plus an optional YAML file tuning the puzzle generator.
//
// Environment variables:
//   LOG_LEVEL=info            zerolog level
//   LOG_FORMAT=json           json | console
//   PUZZLE_CONFIG_FILE=       YAML file overriding generator.DefaultConfig
//   PUZZLE_SEED=0             non-zero makes generation deterministic
//   DAILY_SALT=local_dev_salt salt for daily seeds
//   SPELL_CHECK=true          dictionary check on completed rows
//   PADDING_TOP=1, PADDING_BOTTOM=1
//
// The word list directory (WORDS_DIR) is read by the words package itself.

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wordtravel/engine/internal/generator"
)

// Config is the resolved process configuration.
type Config struct {
	LogLevel      string
	LogFormat     string
	PuzzleFile    string
	Seed          uint64
	DailySalt     string
	SpellCheck    bool
	PaddingTop    int
	PaddingBottom int
	Generator     generator.Config
}

// Load reads the environment and, if PUZZLE_CONFIG_FILE is set, the YAML file.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),
		PuzzleFile: os.Getenv("PUZZLE_CONFIG_FILE"),
		DailySalt:  getEnv("DAILY_SALT", "local_dev_salt"),
		Generator:  generator.DefaultConfig(),
	}

	var err error
	if cfg.Seed, err = envUint("PUZZLE_SEED", 0); err != nil {
		return cfg, err
	}
	if cfg.SpellCheck, err = envBool("SPELL_CHECK", true); err != nil {
		return cfg, err
	}
	if cfg.PaddingTop, err = envInt("PADDING_TOP", 1); err != nil {
		return cfg, err
	}
	if cfg.PaddingBottom, err = envInt("PADDING_BOTTOM", 1); err != nil {
		return cfg, err
	}

	if cfg.PuzzleFile != "" {
		if cfg.Generator, err = LoadGeneratorFile(cfg.PuzzleFile, cfg.Generator); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Generator.Validate()
}

// LoadGeneratorFile overlays the YAML file at path onto base. Keys absent
// from the file keep base's values.
func LoadGeneratorFile(path string, base generator.Config) (generator.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseGenerator(data, base)
}

// ParseGenerator overlays YAML data onto base.
func ParseGenerator(data []byte, base generator.Config) (generator.Config, error) {
	out := base
	if err := yaml.Unmarshal(data, &out); err != nil {
		return base, fmt.Errorf("parse generator config: %w", err)
	}
	return out, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envUint(k string, def uint64) (uint64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
