package typoutil

// MaxBitapPatternLength is the longest pattern the bitap scan can handle.
const MaxBitapPatternLength = 64

// BitapMinEdits scans text with the Wu-Manber extension of the shift-and
// algorithm and returns the smallest number of edits, at most maxEdits, with
// which the pattern occurs as a substring of text. masks must map every rune
// of the pattern to the bit set of the positions it occupies.
//
// It is a cheap filter: one pass over text with maxEdits+1 machine words of
// state, no allocation proportional to the text length.
func BitapMinEdits(text []rune, masks map[rune]uint64, patternLen, maxEdits int) (int, bool) {
	if patternLen <= 0 || patternLen > MaxBitapPatternLength || maxEdits < 0 || len(text) == 0 {
		return 0, false
	}
	if maxEdits >= patternLen {
		maxEdits = patternLen - 1
	}

	accept := uint64(1) << uint(patternLen-1)

	// state[d] has bit i set when pattern[0..i] matches a suffix of the text
	// read so far with at most d edits
	state := make([]uint64, maxEdits+1)
	for d := range state {
		state[d] = (uint64(1) << uint(d)) - 1
	}

	best := maxEdits + 1
	for _, r := range text {
		mask := masks[r]

		prevOld := state[0]
		state[0] = ((state[0] << 1) | 1) & mask
		for d := 1; d <= maxEdits; d++ {
			old := state[d]
			state[d] = (((old << 1) | 1) & mask) | // match
				((prevOld << 1) | 1) | // substitution
				prevOld | // text rune inserted
				((state[d-1] << 1) | 1) // pattern rune deleted
			prevOld = old
		}

		for d := 0; d < best; d++ {
			if state[d]&accept != 0 {
				best = d
				break
			}
		}
		if best == 0 {
			return 0, true
		}
	}

	if best > maxEdits {
		return 0, false
	}
	return best, true
}
