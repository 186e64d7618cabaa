// Package kmer implements sliding-window k-mer counting with
// deterministic, first-appearance iteration order.
//
// A k-mer is a contiguous substring of length k. Counting slides a
// window of length k across a validated sequence with stride 1, so the
// number of windows examined is len(sequence) - k + 1.
package kmer

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/genomica-lab/kmerfreq/internal/sequence"
)

// Entry is a k-mer together with its occurrence count.
type Entry struct {
	KMer  string `json:"kmer"`
	Count int    `json:"count"`
}

// Counter holds the frequency mapping of one counting run. The map
// gives O(1) lookup; order records each distinct k-mer in the order it
// was first seen, since Go map iteration is randomized. A Counter is
// immutable once Count returns.
type Counter struct {
	K      int
	Total  int
	counts map[string]int
	order  []string
}

// Count tallies every overlapping substring of length k in the
// sequence. The sequence must already be validated; k is checked here.
func Count(seq *sequence.Sequence, k int) (*Counter, error) {
	if k <= 0 {
		return nil, &NonPositiveKError{K: k}
	}
	if k > seq.Len() {
		return nil, &KExceedsLengthError{K: k, Length: seq.Len()}
	}

	c := &Counter{K: k, counts: make(map[string]int)}
	bases := seq.Bases
	for i := 0; i <= len(bases)-k; i++ {
		c.add(bases[i : i+k])
	}
	return c, nil
}

// CountRaw validates k from a dynamically typed value before counting.
// It is the entry point for callers at dynamic boundaries such as
// JSON request handling.
func CountRaw(seq *sequence.Sequence, k any) (*Counter, error) {
	kv, err := KFromValue(k)
	if err != nil {
		return nil, err
	}
	return Count(seq, kv)
}

func (c *Counter) add(kmer string) {
	if _, seen := c.counts[kmer]; !seen {
		c.order = append(c.order, kmer)
	}
	c.counts[kmer]++
	c.Total++
}

// GetCount returns the count for a specific k-mer, zero if absent.
func (c *Counter) GetCount(kmer string) int {
	return c.counts[kmer]
}

// UniqueCount returns the number of distinct k-mers.
func (c *Counter) UniqueCount() int {
	return len(c.counts)
}

// Entries returns the (k-mer, count) pairs in first-appearance order.
// The returned slice is a copy; mutating it does not affect the
// Counter.
func (c *Counter) Entries() []Entry {
	entries := make([]Entry, len(c.order))
	for i, kmer := range c.order {
		entries[i] = Entry{KMer: kmer, Count: c.counts[kmer]}
	}
	return entries
}

func (c *Counter) String() string {
	return fmt.Sprintf("Counter { k: %d, unique: %d, total: %d }", c.K, c.UniqueCount(), c.Total)
}

// KFromValue converts a dynamically typed value into a window length.
// Booleans are rejected before anything else: in ecosystems where bool
// is structurally an integer, true must never be accepted as k=1.
// Floats are accepted only when integral, which is how JSON numbers
// arrive from encoding/json.
func KFromValue(v any) (int, error) {
	switch k := v.(type) {
	case bool:
		return 0, &InvalidKTypeError{Value: v}
	case int:
		return k, nil
	case int8:
		return int(k), nil
	case int16:
		return int(k), nil
	case int32:
		return int(k), nil
	case int64:
		return int(k), nil
	case uint:
		return int(k), nil
	case uint8:
		return int(k), nil
	case uint16:
		return int(k), nil
	case uint32:
		return int(k), nil
	case uint64:
		return int(k), nil
	case float64:
		if k != math.Trunc(k) {
			return 0, &InvalidKTypeError{Value: v}
		}
		return int(k), nil
	case json.Number:
		n, err := k.Int64()
		if err != nil {
			return 0, &InvalidKTypeError{Value: v}
		}
		return int(n), nil
	default:
		return 0, &InvalidKTypeError{Value: v}
	}
}
