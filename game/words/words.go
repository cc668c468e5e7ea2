// Package words holds the target-word corpus, bucketed by word length.
//
// The default corpus is embedded in the binary. A replacement list can be
// loaded from a file (one word per line, '#' starts a comment line). Every
// length in [types.MinWordLength, types.MaxWordLength] must have at least one
// word, otherwise the bank is rejected at load time; lookups after that never
// fail for lengths the engine asks for.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"

	"word-snake/game/types"
)

//go:embed default_words.txt
var embeddedWords string

var (
	defaultOnce sync.Once
	defaultBank *Bank
	defaultErr  error
)

// Bank is an immutable word corpus indexed by length.
type Bank struct {
	byLength map[int][]string
}

// New builds a bank from a raw word list. Words are trimmed and upper-cased;
// entries that are not purely alphabetic or fall outside the supported length
// range are skipped. Duplicates are kept once.
func New(list []string) (*Bank, error) {
	b := &Bank{byLength: make(map[int][]string)}
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		w := normalize(raw)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		b.byLength[len(w)] = append(b.byLength[len(w)], w)
	}

	var missing []string
	for n := types.MinWordLength; n <= types.MaxWordLength; n++ {
		if len(b.byLength[n]) == 0 {
			missing = append(missing, fmt.Sprint(n))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("words: no words of length %s", strings.Join(missing, ", "))
	}
	return b, nil
}

// Default returns the bank built from the embedded corpus. It is built once.
func Default() (*Bank, error) {
	defaultOnce.Do(func() {
		defaultBank, defaultErr = Parse(strings.NewReader(embeddedWords))
	})
	return defaultBank, defaultErr
}

// Open loads the bank from path, or returns the embedded default when path is empty.
func Open(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Parse reads one word per line from r and builds a bank.
func Parse(r io.Reader) (*Bank, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.New("words: list is empty")
	}
	return New(list)
}

// WordsOfLength returns the words with exactly n letters.
// n outside [MinWordLength, MaxWordLength] is a caller bug and panics.
func (b *Bank) WordsOfLength(n int) []string {
	checkLength(n)
	out := make([]string, len(b.byLength[n]))
	copy(out, b.byLength[n])
	return out
}

// PickRandom returns a uniformly chosen word of length n.
func (b *Bank) PickRandom(rng *rand.Rand, n int) string {
	checkLength(n)
	list := b.byLength[n]
	return list[rng.Intn(len(list))]
}

// Stats returns the number of words per length.
func (b *Bank) Stats() map[int]int {
	out := make(map[int]int, len(b.byLength))
	for n, list := range b.byLength {
		out[n] = len(list)
	}
	return out
}

// LengthForLevel maps a level to its target word length: 3 letters at level 1,
// one more per level, never above MaxWordLength.
func LengthForLevel(level int) int {
	if level < types.MinLevel {
		level = types.MinLevel
	}
	return min(types.MinWordLength+level-1, types.MaxWordLength)
}

func checkLength(n int) {
	if n < types.MinWordLength || n > types.MaxWordLength {
		panic(fmt.Sprintf("words: length %d outside [%d,%d]", n, types.MinWordLength, types.MaxWordLength))
	}
}

// normalize upper-cases w and returns "" if it is not a usable word.
func normalize(w string) string {
	w = strings.ToUpper(strings.TrimSpace(w))
	if len(w) < types.MinWordLength || len(w) > types.MaxWordLength {
		return ""
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return w
}
