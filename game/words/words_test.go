package words

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"word-snake/game/types"
)

func TestDefaultCoversEveryLength(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for n := types.MinWordLength; n <= types.MaxWordLength; n++ {
		list := b.WordsOfLength(n)
		if len(list) == 0 {
			t.Errorf("no words of length %d", n)
		}
		for _, w := range list {
			if len(w) != n {
				t.Errorf("word %q filed under length %d", w, n)
			}
			if w != strings.ToUpper(w) {
				t.Errorf("word %q is not upper case", w)
			}
		}
	}
}

func TestMisfiledWordsLandInTheirOwnBucket(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if !contains(b.WordsOfLength(5), "FORCE") {
		t.Error("FORCE should be a 5-letter word")
	}
	if !contains(b.WordsOfLength(8), "CALCULUS") {
		t.Error("CALCULUS should be an 8-letter word")
	}
}

func TestPickRandomReturnsRequestedLength(t *testing.T) {
	b, _ := Default()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		n := types.MinWordLength + i%(types.MaxWordLength-types.MinWordLength+1)
		if w := b.PickRandom(rng, n); len(w) != n {
			t.Fatalf("PickRandom(%d) = %q", n, w)
		}
	}
}

func TestPickRandomCoversBucket(t *testing.T) {
	b, err := New(fillAllLengths("CAT", "DOG", "EEL"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[b.PickRandom(rng, 3)] = true
	}
	for _, w := range []string{"CAT", "DOG", "EEL"} {
		if !seen[w] {
			t.Errorf("%s never picked", w)
		}
	}
}

func TestNewRejectsMissingLengths(t *testing.T) {
	_, err := New([]string{"cat", "dogs"})
	if err == nil {
		t.Fatal("expected error for incomplete corpus")
	}
	if !strings.Contains(err.Error(), "5") {
		t.Errorf("error should name missing length 5: %v", err)
	}
}

func TestNewNormalizesAndFilters(t *testing.T) {
	b, err := New(fillAllLengths(" cat ", "c4t", "cat", "ab"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := b.WordsOfLength(3)
	if len(got) != 2 || !contains(got, "CAT") {
		t.Errorf("WordsOfLength(3) = %v", got)
	}
}

func TestWordsOfLengthPanicsOutOfRange(t *testing.T) {
	b, _ := Default()
	for _, n := range []int{0, 2, 11} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WordsOfLength(%d) did not panic", n)
				}
			}()
			b.WordsOfLength(n)
		}()
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := "# custom\n" + strings.Join(fillAllLengths("zip"), "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := b.WordsOfLength(3); len(got) != 2 || !contains(got, "ZIP") {
		t.Errorf("WordsOfLength(3) = %v", got)
	}

	if _, err := Open(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLengthForLevel(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{0, 3},
		{1, 3},
		{2, 4},
		{5, 7},
		{8, 10},
		{12, 10},
	}
	for _, tt := range tests {
		if got := LengthForLevel(tt.level); got != tt.want {
			t.Errorf("LengthForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

// fillAllLengths appends one filler word for every supported length.
func fillAllLengths(extra ...string) []string {
	out := append([]string{}, extra...)
	for n := types.MinWordLength; n <= types.MaxWordLength; n++ {
		out = append(out, strings.Repeat("Q", n))
	}
	return out
}

func contains(list []string, w string) bool {
	for _, x := range list {
		if x == w {
			return true
		}
	}
	return false
}
