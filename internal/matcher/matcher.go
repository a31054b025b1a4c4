// Package matcher scores how closely a field value matches a compiled pattern.
//
// A score is in [0,1): 0 is a perfect match at the start of the text and
// lower is always better. A text that cannot be aligned with the pattern
// within the edit budget yields no match at all rather than a score of 1.
package matcher

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gcbaptista/go-fuzzy-search/internal/pattern"
	"github.com/gcbaptista/go-fuzzy-search/internal/typoutil"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// Options holds the scoring configuration shared by every match of a search.
type Options struct {
	Threshold      float64 // Edit budget per term is floor(Threshold * term length)
	DistanceWeight float64 // Weight of edits / term length
	PositionWeight float64 // Weight of match start / text length
}

// Result is a successful match.
type Result struct {
	Score  float64
	Ranges []services.Range
}

// MaxEdits returns the edit budget for a term of the given length.
// At most half of a term's characters may be edited, so at least half must
// occur in the text whatever the threshold: a single shared character
// never makes an unrelated term match.
func MaxEdits(threshold float64, termLen int) int {
	if termLen <= 0 || threshold <= 0 {
		return 0
	}
	edits := int(math.Floor(threshold*float64(termLen) + 1e-9))
	if edits > termLen/2 {
		edits = termLen / 2
	}
	return edits
}

// Match scores text against p. The boolean is false when there is no match;
// an empty pattern or an empty text never matches.
//
// The whole normalized pattern is first looked up verbatim. Otherwise each
// term is matched on its own and the term scores are averaged, with terms
// that do not match contributing the worst score of 1.
func Match(text string, p pattern.Pattern, opts Options) (Result, bool) {
	if p.IsEmpty() || text == "" {
		return Result{}, false
	}

	folded := pattern.Fold(text)
	runes := []rune(folded)

	if len(p.Terms) > 1 {
		whole := p.Whole()
		if result, ok := exactMatch(folded, len(runes), whole.Text, whole.Len(), opts); ok {
			return result, true
		}
	}

	total := 0.0
	matched := false
	var ranges []services.Range
	for _, term := range p.Terms {
		result, ok := matchTerm(folded, runes, term, opts)
		if !ok {
			total += 1
			continue
		}
		matched = true
		total += result.Score
		ranges = append(ranges, result.Ranges...)
	}

	if !matched {
		return Result{}, false
	}

	return Result{
		Score:  total / float64(len(p.Terms)),
		Ranges: mergeRanges(ranges),
	}, true
}

func matchTerm(folded string, runes []rune, term pattern.Term, opts Options) (Result, bool) {
	termLen := term.Len()
	if termLen == 0 {
		return Result{}, false
	}

	if result, ok := exactMatch(folded, len(runes), term.Text, termLen, opts); ok {
		return result, true
	}

	maxEdits := MaxEdits(opts.Threshold, termLen)
	if maxEdits == 0 {
		return Result{}, false
	}

	// cheap rejection before locating the alignment
	if term.Accelerated() {
		if _, ok := typoutil.BitapMinEdits(runes, term.Masks, termLen, maxEdits); !ok {
			return Result{}, false
		}
	}

	textLen := len(runes)
	cost := func(a typoutil.Alignment) float64 {
		return score(a.Edits, termLen, a.Start, textLen, opts)
	}

	alignment, ok := typoutil.BestAlignment(runes, term.Runes, maxEdits, cost)
	if !ok {
		return Result{}, false
	}

	s := cost(alignment)
	if s >= 1 {
		return Result{}, false
	}

	return Result{
		Score:  s,
		Ranges: []services.Range{{Start: alignment.Start, End: alignment.End - 1}},
	}, true
}

// exactMatch is the verbatim fast path. The score only carries the position
// penalty, so a match at the very start of the text scores 0.
func exactMatch(folded string, textLen int, needle string, needleLen int, opts Options) (Result, bool) {
	idx := strings.Index(folded, needle)
	if idx < 0 {
		return Result{}, false
	}
	start := utf8.RuneCountInString(folded[:idx])
	s := score(0, needleLen, start, textLen, opts)
	if s >= 1 {
		return Result{}, false
	}
	return Result{
		Score:  s,
		Ranges: []services.Range{{Start: start, End: start + needleLen - 1}},
	}, true
}

func score(edits, patternLen, start, textLen int, opts Options) float64 {
	s := 0.0
	if patternLen > 0 {
		s += opts.DistanceWeight * float64(edits) / float64(patternLen)
	}
	if textLen > 0 {
		s += opts.PositionWeight * float64(start) / float64(textLen)
	}
	return math.Max(0, math.Min(1, s))
}

// mergeRanges sorts ranges and unions the overlapping or adjacent ones.
func mergeRanges(ranges []services.Range) []services.Range {
	if len(ranges) < 2 {
		return ranges
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})

	merged := []services.Range{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End+1 {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
