package assets

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
)

//go:embed words_3.txt words_4.txt words_5.txt words_6.txt
var FS embed.FS

// WordFileName is the file holding the words of the given length.
func WordFileName(length int) string {
	return fmt.Sprintf("words_%d.txt", length)
}

// ReadLines reads a word list: one word per line, lowercased, with blank
// lines and # comments skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded words of the given length (lowercase).
func WordList(length int) ([]string, error) {
	f, err := FS.Open(WordFileName(length))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
