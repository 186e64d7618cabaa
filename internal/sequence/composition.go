package sequence

import "strings"

// BaseCounts holds the occurrence count of each DNA base.
type BaseCounts struct {
	A int
	T int
	G int
	C int
}

// Total returns the total number of counted bases.
func (bc BaseCounts) Total() int {
	return bc.A + bc.T + bc.G + bc.C
}

// Percent returns the percentage of the given base, rounded behavior
// left to the caller. Returns 0 for an empty count set.
func (bc BaseCounts) Percent(base rune) float64 {
	total := bc.Total()
	if total == 0 {
		return 0.0
	}

	var n int
	switch base {
	case 'A':
		n = bc.A
	case 'T':
		n = bc.T
	case 'G':
		n = bc.G
	case 'C':
		n = bc.C
	}
	return float64(n) / float64(total) * 100
}

// BaseCounts counts each base in the sequence.
func (s *Sequence) BaseCounts() BaseCounts {
	counts := BaseCounts{}
	for _, b := range s.Bases {
		switch b {
		case 'A':
			counts.A++
		case 'T':
			counts.T++
		case 'G':
			counts.G++
		case 'C':
			counts.C++
		}
	}
	return counts
}

// CleanResult reports the outcome of stripping invalid characters from
// raw input.
type CleanResult struct {
	Cleaned      string
	InvalidChars map[rune]int
	InvalidCount int
}

// Clean uppercases raw and drops every character outside the alphabet,
// counting what was removed per character. This permissive path exists
// for base-composition reporting only; validation for k-mer counting
// must reject invalid characters instead (see NewWithAlphabet).
func Clean(raw string, alphabet Alphabet) CleanResult {
	result := CleanResult{InvalidChars: make(map[rune]int)}

	var kept strings.Builder
	for _, c := range strings.ToUpper(raw) {
		switch {
		case alphabet.Contains(c):
			kept.WriteRune(c)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			// incidental whitespace is not an invalid character
		default:
			result.InvalidChars[c]++
			result.InvalidCount++
		}
	}

	result.Cleaned = kept.String()
	return result
}
