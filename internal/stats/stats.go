// Package stats derives summary statistics for sequences and counting
// runs. Everything here is a pure projection over already-validated
// values.
package stats

import (
	"github.com/genomica-lab/kmerfreq/internal/kmer"
	"github.com/genomica-lab/kmerfreq/internal/sequence"
)

// SequenceStats summarizes a single validated sequence.
type SequenceStats struct {
	Length    int
	GCContent float64
	ATContent float64
	Bases     sequence.BaseCounts
}

// FromSequence calculates statistics for one sequence.
func FromSequence(seq *sequence.Sequence) *SequenceStats {
	return &SequenceStats{
		Length:    seq.Len(),
		GCContent: seq.GCContent(),
		ATContent: seq.ATContent(),
		Bases:     seq.BaseCounts(),
	}
}

// KMerStats summarizes one counting run: how many windows were
// examined, how many distinct k-mers were seen, and which k-mer was
// most frequent (ties resolve to the first seen).
type KMerStats struct {
	K        int
	Total    int
	Unique   int
	TopKMer  string
	TopCount int
}

// FromCounter calculates summary statistics for a counting run.
func FromCounter(c *kmer.Counter) *KMerStats {
	s := &KMerStats{
		K:      c.K,
		Total:  c.Total,
		Unique: c.UniqueCount(),
	}

	// A strict > keeps the first-seen k-mer on ties.
	for _, e := range c.Entries() {
		if e.Count > s.TopCount {
			s.TopKMer = e.KMer
			s.TopCount = e.Count
		}
	}
	return s
}
