package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-fuzzy-search/internal/pattern"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

func defaultOptions() Options {
	return Options{Threshold: 0.4, DistanceWeight: 1.0, PositionWeight: 0.1}
}

func compile(query string) pattern.Pattern {
	return pattern.Compile(query, pattern.Options{MaxPatternLength: 32, MinTermLength: 1})
}

func TestMaxEdits(t *testing.T) {
	tests := []struct {
		threshold float64
		termLen   int
		want      int
	}{
		{0.4, 7, 2},
		{0.4, 5, 2},
		{0.4, 3, 1},
		{0.4, 2, 0},
		{0.6, 5, 2},
		{1.0, 5, 2}, // at most half the term
		{1.0, 6, 3},
		{1.0, 1, 0},
		{0.8, 10, 5},
		{0.4, 0, 0},
		{0, 10, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxEdits(tt.threshold, tt.termLen), "MaxEdits(%g, %d)", tt.threshold, tt.termLen)
	}
}

func TestMatch_Exact(t *testing.T) {
	t.Run("identical strings score zero", func(t *testing.T) {
		for _, text := range []string{"Biology", "Intro to Biology", "a", "Überblick Chemie"} {
			result, ok := Match(text, compile(text), defaultOptions())
			require.True(t, ok, text)
			assert.Equal(t, 0.0, result.Score, text)
		}
	})

	t.Run("substring at start scores zero", func(t *testing.T) {
		result, ok := Match("Biology Lab", compile("biology"), defaultOptions())
		require.True(t, ok)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, []services.Range{{Start: 0, End: 6}}, result.Ranges)
	})

	t.Run("later substring carries a small position penalty", func(t *testing.T) {
		result, ok := Match("Intro to Biology", compile("biology"), defaultOptions())
		require.True(t, ok)
		assert.Greater(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 0.1)
		assert.InDelta(t, 0.1*9.0/16.0, result.Score, 1e-9)
		assert.Equal(t, []services.Range{{Start: 9, End: 15}}, result.Ranges)
	})

	t.Run("case insensitive", func(t *testing.T) {
		result, ok := Match("ADVANCED CHEMISTRY", compile("Chemistry"), defaultOptions())
		require.True(t, ok)
		assert.InDelta(t, 0.1*9.0/18.0, result.Score, 1e-9)
	})

	t.Run("ignored location removes the position penalty", func(t *testing.T) {
		opts := defaultOptions()
		opts.PositionWeight = 0
		result, ok := Match("Intro to Biology", compile("biology"), opts)
		require.True(t, ok)
		assert.Equal(t, 0.0, result.Score)
	})
}

func TestMatch_Approximate(t *testing.T) {
	t.Run("one typo", func(t *testing.T) {
		result, ok := Match("Biology Lab", compile("biolgy"), defaultOptions())
		require.True(t, ok)
		// one edit over six characters, at the start of the text
		assert.InDelta(t, 1.0/6.0, result.Score, 1e-9)
		require.Len(t, result.Ranges, 1)
		assert.Equal(t, 0, result.Ranges[0].Start)
	})

	t.Run("pattern longer than text", func(t *testing.T) {
		result, ok := Match("Biology", compile("biologyy"), defaultOptions())
		require.True(t, ok)
		assert.InDelta(t, 1.0/8.0, result.Score, 1e-9)
		assert.Equal(t, []services.Range{{Start: 0, End: 6}}, result.Ranges)
	})

	t.Run("too many edits", func(t *testing.T) {
		_, ok := Match("Biology Lab", compile("bxoxogx"), defaultOptions())
		assert.False(t, ok)
	})

	t.Run("short terms must match exactly", func(t *testing.T) {
		// a two character term has no edit budget at threshold 0.4
		_, ok := Match("Biology Lab", compile("bx"), defaultOptions())
		assert.False(t, ok)
	})

	t.Run("one shared character is not enough", func(t *testing.T) {
		for _, threshold := range []float64{0.6, 0.8, 1.0} {
			opts := defaultOptions()
			opts.Threshold = threshold
			for _, text := range []string{"Intro to Biology", "Advanced Chemistry", "Biology Lab"} {
				_, ok := Match(text, compile("xyzzy"), opts)
				assert.False(t, ok, "text=%q threshold=%g", text, threshold)
			}
		}
	})

	t.Run("disjoint strings never match", func(t *testing.T) {
		opts := defaultOptions()
		opts.Threshold = 1.0
		_, ok := Match("abc", compile("xyz"), opts)
		assert.False(t, ok)
	})

	t.Run("long terms fall back to the unaccelerated scan", func(t *testing.T) {
		accelerated := compile("chemistyr")
		plain := pattern.Compile("chemistyr", pattern.Options{MaxPatternLength: 4, MinTermLength: 1})
		require.True(t, accelerated.Terms[0].Accelerated())
		require.False(t, plain.Terms[0].Accelerated())

		fast, ok := Match("Advanced Chemistry", accelerated, defaultOptions())
		require.True(t, ok)
		slow, ok := Match("Advanced Chemistry", plain, defaultOptions())
		require.True(t, ok)

		assert.Equal(t, fast, slow)
	})
}

func TestMatch_NoMatchCases(t *testing.T) {
	_, ok := Match("", compile("biology"), defaultOptions())
	assert.False(t, ok, "empty text")

	_, ok = Match("Biology", pattern.Empty, defaultOptions())
	assert.False(t, ok, "empty pattern")

	_, ok = Match("", pattern.Empty, defaultOptions())
	assert.False(t, ok, "both empty")

	_, ok = Match("Biology", compile("   "), defaultOptions())
	assert.False(t, ok, "whitespace query")
}

func TestMatch_MultiTerm(t *testing.T) {
	t.Run("whole pattern verbatim", func(t *testing.T) {
		result, ok := Match("Intro to Biology", compile("intro to biology"), defaultOptions())
		require.True(t, ok)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, []services.Range{{Start: 0, End: 15}}, result.Ranges)
	})

	t.Run("terms matched independently", func(t *testing.T) {
		result, ok := Match("Intro to Biology", compile("intro biology"), defaultOptions())
		require.True(t, ok)
		assert.InDelta(t, (0+0.1*9.0/16.0)/2, result.Score, 1e-9)
		assert.Equal(t, []services.Range{{Start: 0, End: 4}, {Start: 9, End: 15}}, result.Ranges)
	})

	t.Run("unmatched term counts as worst score", func(t *testing.T) {
		result, ok := Match("Biology Lab", compile("biology xyzzy"), defaultOptions())
		require.True(t, ok)
		assert.InDelta(t, 0.5, result.Score, 1e-9)
		assert.Equal(t, []services.Range{{Start: 0, End: 6}}, result.Ranges)
	})

	t.Run("no term matches", func(t *testing.T) {
		_, ok := Match("Biology Lab", compile("xyzzy qwvv"), defaultOptions())
		assert.False(t, ok)
	})

	t.Run("ranges are sorted", func(t *testing.T) {
		result, ok := Match("Biology Lab", compile("lab biology"), defaultOptions())
		require.True(t, ok)
		assert.Equal(t, []services.Range{{Start: 0, End: 6}, {Start: 8, End: 10}}, result.Ranges)
	})

	t.Run("overlapping ranges are merged", func(t *testing.T) {
		result, ok := Match("Biology Lab", compile("bio biology"), defaultOptions())
		require.True(t, ok)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, []services.Range{{Start: 0, End: 6}}, result.Ranges)
	})
}

func TestMatch_ThresholdMonotonic(t *testing.T) {
	texts := []string{"Intro to Biology", "Advanced Chemistry", "Biology Lab", "World History", "Calculus II"}
	queries := []string{"biolgy", "chemstry", "histroy", "calc", "bio lab", "xyzzy"}
	thresholds := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.8, 1.0}

	for _, text := range texts {
		for _, query := range queries {
			p := compile(query)
			previous := 2.0
			for _, threshold := range thresholds {
				opts := defaultOptions()
				opts.Threshold = threshold
				result, ok := Match(text, p, opts)
				if !ok {
					assert.Equal(t, 2.0, previous, "text=%q query=%q lost a match when threshold rose to %g", text, query, threshold)
					continue
				}
				assert.LessOrEqual(t, result.Score, previous, "text=%q query=%q threshold=%g", text, query, threshold)
				assert.Less(t, result.Score, 1.0)
				previous = result.Score
			}
		}
	}
}
