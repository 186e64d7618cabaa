package kmer

import (
	"fmt"
	"sort"
	"strings"
)

// SortMode selects the presentation order of counting results. It is a
// closed enumeration: every mode maps to one comparator, and unknown
// mode names are rejected at parse time.
type SortMode int

const (
	// SortAppearance emits k-mers in the order each was first seen
	// during the scan. This is the default.
	SortAppearance SortMode = iota
	// SortFrequency emits k-mers by descending count; ties keep their
	// first-appearance order.
	SortFrequency
	// SortKMer emits k-mers in ascending lexicographic order.
	SortKMer
)

var sortModeNames = [...]string{
	SortAppearance: "appearance",
	SortFrequency:  "frequency",
	SortKMer:       "kmer",
}

// SortModeNames returns the accepted mode names in declaration order.
func SortModeNames() []string {
	names := make([]string, len(sortModeNames))
	copy(names, sortModeNames[:])
	return names
}

func (m SortMode) String() string {
	if m < 0 || int(m) >= len(sortModeNames) {
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
	return sortModeNames[m]
}

// ParseSortMode maps a mode name to its SortMode. The empty string
// selects the default appearance order.
func ParseSortMode(name string) (SortMode, error) {
	switch name {
	case "", "appearance":
		return SortAppearance, nil
	case "frequency":
		return SortFrequency, nil
	case "kmer":
		return SortKMer, nil
	default:
		return 0, &InvalidSortModeError{Mode: name}
	}
}

// Ordered returns the counting results as (k-mer, count) pairs in the
// requested order. It is a read-only projection: the Counter is never
// mutated, and repeated calls with different modes stay consistent.
func (c *Counter) Ordered(mode SortMode) ([]Entry, error) {
	entries := c.Entries()

	switch mode {
	case SortAppearance:
		// Entries already come in first-appearance order.
	case SortFrequency:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count > entries[j].Count
		})
	case SortKMer:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].KMer < entries[j].KMer
		})
	default:
		return nil, &InvalidSortModeError{Mode: mode.String()}
	}

	return entries, nil
}

// MostFrequent returns the n most frequent k-mers, ties in
// first-appearance order.
func (c *Counter) MostFrequent(n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n must be positive")
	}

	entries, err := c.Ordered(SortFrequency)
	if err != nil {
		return nil, err
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n], nil
}

// FormatEntries renders entries as tab-separated lines under a
// "# kmer<TAB>frequency" header, the tool's standard output contract.
func FormatEntries(entries []Entry) string {
	var sb strings.Builder
	sb.WriteString("# kmer\tfrequency")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("\n%s\t%d", e.KMer, e.Count))
	}
	return sb.String()
}
