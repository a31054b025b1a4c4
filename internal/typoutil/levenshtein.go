package typoutil

// Alignment is an approximate occurrence of a pattern inside a text.
// Start is inclusive and End exclusive, both rune offsets into the text.
type Alignment struct {
	Edits int
	Start int
	End   int
}

// BestAlignment finds the substring of text that can be turned into pattern
// with at most maxEdits insertions, deletions or substitutions, and among all
// such candidates returns the one with the lowest cost.
//
// The scan is Sellers' dynamic program (free start and end in the text) with
// Ukkonen's cutoff: only the pattern rows whose running edit count is still
// within maxEdits are computed, so work stops early once every alignment
// ending at the current text position has exceeded the budget. Cells beyond
// the budget are saturated at maxEdits+1.
func BestAlignment(text, pattern []rune, maxEdits int, cost func(Alignment) float64) (Alignment, bool) {
	m := len(pattern)
	n := len(text)
	if m == 0 || n == 0 || maxEdits < 0 {
		return Alignment{}, false
	}

	limit := maxEdits + 1
	prev := make([]int, m+1)
	prevStart := make([]int, m+1)
	curr := make([]int, m+1)
	currStart := make([]int, m+1)

	// lastActive is the deepest pattern row still within budget
	lastActive := maxEdits
	if lastActive > m {
		lastActive = m
	}
	for i := 0; i <= m; i++ {
		if i <= lastActive {
			prev[i] = i
		} else {
			prev[i] = limit
		}
	}

	var best Alignment
	bestCost := 0.0
	found := false

	for j := 1; j <= n; j++ {
		// an empty pattern prefix matches for free, with its window opening after text[j-1]
		curr[0] = 0
		currStart[0] = j

		top := lastActive + 1
		if top > m {
			top = m
		}

		for i := 1; i <= top; i++ {
			v := prev[i-1]
			if pattern[i-1] != text[j-1] {
				v++
			}
			start := prevStart[i-1]

			// pattern character skipped
			if d := curr[i-1] + 1; d < v {
				v, start = d, currStart[i-1]
			}
			// text character skipped
			if ins := prev[i] + 1; ins < v {
				v, start = ins, prevStart[i]
			}

			if v > limit {
				v = limit
			}
			curr[i] = v
			currStart[i] = start
		}
		if top < m {
			curr[top+1] = limit
		}

		lastActive = top
		for lastActive > 0 && curr[lastActive] > maxEdits {
			lastActive--
		}

		if lastActive == m {
			candidate := Alignment{Edits: curr[m], Start: currStart[m], End: j}
			c := cost(candidate)
			if !found || c < bestCost {
				best, bestCost, found = candidate, c, true
			}
		}

		prev, curr = curr, prev
		prevStart, currStart = currStart, prevStart
	}

	return best, found
}
