package typoutil

import (
	"fmt"
	"math/rand"
	"testing"
)

// Generate test data for benchmarks
func generateTestTexts(count int, rng *rand.Rand) []string {
	words := []string{
		"introduction", "advanced", "biology", "chemistry", "physics", "calculus",
		"history", "literature", "programming", "laboratory", "seminar", "workshop",
		"algebra", "geometry", "statistics", "economics", "philosophy", "psychology",
		"the", "and", "for", "to", "of", "with", "part", "ii", "iii", "honors",
	}

	texts := make([]string, count)
	for i := 0; i < count; i++ {
		n := 2 + rng.Intn(5)
		text := ""
		for j := 0; j < n; j++ {
			if j > 0 {
				text += " "
			}
			text += words[rng.Intn(len(words))]
		}
		texts[i] = text
	}
	return texts
}

func BenchmarkBitapMinEdits(b *testing.B) {
	texts := generateTestTexts(1000, rand.New(rand.NewSource(42)))
	runeTexts := make([][]rune, len(texts))
	for i, text := range texts {
		runeTexts[i] = []rune(text)
	}

	for _, pattern := range []string{"bio", "chemsitry", "programing"} {
		masks := masksFor(pattern)
		patternLen := len([]rune(pattern))
		b.Run(pattern, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, text := range runeTexts {
					_, _ = BitapMinEdits(text, masks, patternLen, patternLen*4/10)
				}
			}
		})
	}
}

func BenchmarkBestAlignment(b *testing.B) {
	texts := generateTestTexts(1000, rand.New(rand.NewSource(42)))
	runeTexts := make([][]rune, len(texts))
	for i, text := range texts {
		runeTexts[i] = []rune(text)
	}

	for _, maxEdits := range []int{1, 2, 3} {
		pattern := []rune("chemsitry")
		b.Run(fmt.Sprintf("maxEdits=%d", maxEdits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, text := range runeTexts {
					_, _ = BestAlignment(text, pattern, maxEdits, editsOnly)
				}
			}
		})
	}
}
