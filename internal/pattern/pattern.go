// Package pattern compiles raw query strings into a matcher-ready form.
//
// Compilation case-folds the query, splits it on whitespace into terms and
// precomputes, for every term short enough to fit a 64-bit word, the
// per-character bitmasks used by the bitap scan. Field values must be folded
// with the same Fold function so that scores are comparable across records.
package pattern

import (
	"strings"
	"unicode/utf8"
)

// Term is one whitespace-separated part of a compiled query.
type Term struct {
	Text  string
	Runes []rune
	// Masks maps each rune to the set of positions it occupies in the term.
	// It is nil when the term is longer than the configured maximum, in which
	// case matching falls back to the plain edit-distance scan.
	Masks map[rune]uint64
}

// Len returns the term length in runes.
func (t Term) Len() int {
	return len(t.Runes)
}

// Accelerated reports whether bitmasks were computed for the term.
func (t Term) Accelerated() bool {
	return t.Masks != nil
}

// Pattern is an immutable compiled query.
type Pattern struct {
	Text  string // Folded terms joined by a single space
	Terms []Term
}

// Empty is returned for queries that contain no usable term.
var Empty = Pattern{}

// IsEmpty reports whether the pattern can match anything at all.
func (p Pattern) IsEmpty() bool {
	return len(p.Terms) == 0
}

// Len returns the length of the whole normalized pattern in runes.
func (p Pattern) Len() int {
	return utf8.RuneCountInString(p.Text)
}

// Options bounds the compiled pattern.
type Options struct {
	MaxPatternLength int // Terms longer than this get no bitmasks; must be <= 64
	MinTermLength    int // Shorter terms are dropped
}

// Fold applies the case folding used for both queries and field values.
// It maps rune by rune, so rune offsets in the folded string are valid
// offsets into the original.
func Fold(s string) string {
	return strings.ToLower(s)
}

// Compile turns a raw query into a Pattern. Queries that are empty after
// trimming, or whose terms are all shorter than MinTermLength, yield Empty.
func Compile(query string, opts Options) Pattern {
	folded := Fold(strings.TrimSpace(query))
	if folded == "" {
		return Empty
	}

	maxLen := opts.MaxPatternLength
	if maxLen <= 0 || maxLen > 64 {
		maxLen = 64
	}

	fields := strings.Fields(folded)
	terms := make([]Term, 0, len(fields))
	texts := make([]string, 0, len(fields))
	for _, field := range fields {
		runes := []rune(field)
		if len(runes) < opts.MinTermLength {
			continue
		}
		term := Term{Text: field, Runes: runes}
		if len(runes) <= maxLen {
			term.Masks = buildMasks(runes)
		}
		terms = append(terms, term)
		texts = append(texts, field)
	}

	if len(terms) == 0 {
		return Empty
	}

	return Pattern{
		Text:  strings.Join(texts, " "),
		Terms: terms,
	}
}

// Whole returns the full normalized pattern as a single term, used for the
// verbatim fast path on multi-term queries.
func (p Pattern) Whole() Term {
	if len(p.Terms) == 1 {
		return p.Terms[0]
	}
	return Term{Text: p.Text, Runes: []rune(p.Text)}
}

func buildMasks(runes []rune) map[rune]uint64 {
	masks := make(map[rune]uint64, len(runes))
	for i, r := range runes {
		masks[r] |= 1 << uint(i)
	}
	return masks
}
