// internal/words/words.go
//
// Length-indexed dictionary consumed by the puzzle engine.
//
// Responsibilities:
//   - Load word lists partitioned strictly by letter count (3..6).
//   - Membership lookup, random sampling and bulk listing per length.
//
// Word Lists:
//   - Embedded defaults live in the assets package (words_<n>.txt).
//   - A directory holding words_<n>.txt files may replace them per length;
//     a length whose file is missing keeps the embedded list.
//
// Failure semantics:
//   - Lookups never fail: missing data yields false / empty / zero.
//   - Initialize is idempotent once it has succeeded; a failed load leaves
//     the dictionary empty so a later call may retry.
//   - After initialization the sets are read-only and safe for concurrent readers.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/wordtravel/engine/assets"
)

const (
	MinLength = 3
	MaxLength = 6
)

// Loader produces the raw word lists keyed by length.
type Loader func() (map[int][]string, error)

// Dictionary is a set of words per length.
type Dictionary struct {
	load Loader

	mu    sync.Mutex
	ready bool
	sets  map[int]map[string]struct{}
	lists map[int][]string
}

// New returns an uninitialized dictionary that will call load on Initialize.
func New(load Loader) *Dictionary {
	return &Dictionary{load: load}
}

// FromWords builds an initialized dictionary from an explicit word list.
func FromWords(list ...string) *Dictionary {
	d := New(func() (map[int][]string, error) {
		byLen := make(map[int][]string)
		for _, w := range list {
			byLen[len(w)] = append(byLen[len(w)], w)
		}
		return byLen, nil
	})
	_ = d.Initialize()
	return d
}

// Default is the process-wide dictionary, loaded by Init.
var Default = New(LoadFromEnv)

// Init initializes Default.
func Init() error { return Default.Initialize() }

// Initialize loads the word lists once. Further calls after a successful
// load are no-ops.
func (d *Dictionary) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ready {
		return nil
	}
	if d.load == nil {
		return errors.New("words: no loader configured")
	}
	raw, err := d.load()
	if err != nil {
		return err
	}

	sets := make(map[int]map[string]struct{})
	lists := make(map[int][]string)
	for length, list := range raw {
		for _, w := range normalize(list) {
			if len(w) != length {
				continue
			}
			if sets[length] == nil {
				sets[length] = make(map[string]struct{})
			}
			if _, dup := sets[length][w]; dup {
				continue
			}
			sets[length][w] = struct{}{}
			lists[length] = append(lists[length], w)
		}
	}
	d.sets, d.lists = sets, lists
	d.ready = true

	ev := log.Info()
	for _, n := range d.AvailableLengths() {
		ev = ev.Int(fmt.Sprintf("len%d", n), len(lists[n]))
	}
	ev.Int("total", d.WordCount(0)).Msg("dictionary loaded")
	return nil
}

// IsValidWord reports whether word (any case) is loaded for its length.
func (d *Dictionary) IsValidWord(word string) bool {
	w := strings.ToLower(word)
	set, ok := d.sets[len(w)]
	if !ok {
		return false
	}
	_, ok = set[w]
	return ok
}

// RandomWord returns a uniformly random word of the given length.
// ok is false if the length is unsupported or empty.
func (d *Dictionary) RandomWord(length int) (word string, ok bool) {
	list := d.lists[length]
	if len(list) == 0 {
		return "", false
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return list[0], true
	}
	return list[nBig.Int64()], true
}

// WordsOfLength returns every word of the given length. Order is unspecified;
// callers must not modify the returned slice.
func (d *Dictionary) WordsOfLength(length int) []string {
	return d.lists[length]
}

// WordCount returns the number of words of the given length, or the total
// across all lengths when length <= 0.
func (d *Dictionary) WordCount(length int) int {
	if length > 0 {
		return len(d.lists[length])
	}
	total := 0
	for _, l := range d.lists {
		total += len(l)
	}
	return total
}

// AvailableLengths lists the loaded lengths in ascending order.
func (d *Dictionary) AvailableLengths() []int {
	out := make([]int, 0, len(d.lists))
	for n, l := range d.lists {
		if len(l) > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// LoadEmbedded reads the embedded word lists for MinLength..MaxLength.
func LoadEmbedded() (map[int][]string, error) {
	out := make(map[int][]string)
	for n := MinLength; n <= MaxLength; n++ {
		list, err := assets.WordList(n)
		if err != nil {
			return nil, fmt.Errorf("words: embedded %s: %w", assets.WordFileName(n), err)
		}
		out[n] = list
	}
	return out, nil
}

// LoadDir returns a loader reading words_<n>.txt from dir. Lengths without a
// file fall back to the embedded list.
func LoadDir(dir string) Loader {
	return func() (map[int][]string, error) {
		out, err := LoadEmbedded()
		if err != nil {
			return nil, err
		}
		for n := MinLength; n <= MaxLength; n++ {
			path := filepath.Join(dir, assets.WordFileName(n))
			list, err := readWordFile(path)
			if errors.Is(err, os.ErrNotExist) {
				log.Warn().Str("path", path).Msg("word file missing, using embedded list")
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("words: read %s: %w", path, err)
			}
			out[n] = list
		}
		return out, nil
	}
}

// LoadFromEnv uses WORDS_DIR when set, the embedded lists otherwise.
func LoadFromEnv() (map[int][]string, error) {
	if dir := os.Getenv("WORDS_DIR"); dir != "" {
		return LoadDir(dir)()
	}
	return LoadEmbedded()
}

// readWordFile loads a word list file from disk.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// normalize lowercases and trims, keeping only alphabetic a–z words.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
