// Package kmerfreq provides a high-level API for k-mer frequency
// analysis.
//
// Example usage:
//
//	counter, err := kmerfreq.Analyze("atcgatcg", 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entries, _ := counter.Ordered(kmerfreq.SortFrequency)
//	fmt.Println(kmerfreq.Format(entries))
package kmerfreq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/genomica-lab/kmerfreq/internal/kmer"
	"github.com/genomica-lab/kmerfreq/internal/sequence"
	"github.com/genomica-lab/kmerfreq/internal/stats"
)

// Re-export types for convenience
type (
	Sequence      = sequence.Sequence
	Alphabet      = sequence.Alphabet
	BaseCounts    = sequence.BaseCounts
	CleanResult   = sequence.CleanResult
	Counter       = kmer.Counter
	Entry         = kmer.Entry
	SortMode      = kmer.SortMode
	SequenceStats = stats.SequenceStats
	KMerStats     = stats.KMerStats
)

// Sort modes
const (
	SortAppearance = kmer.SortAppearance
	SortFrequency  = kmer.SortFrequency
	SortKMer       = kmer.SortKMer
)

// DNA is the standard nucleotide alphabet {A, C, G, T}.
var DNA = sequence.DNA

// NewSequence creates a validated DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// ValidateSequence checks a raw value claimed to be a sequence,
// rejecting non-textual input before any content checks.
func ValidateSequence(raw any) (*Sequence, error) {
	return sequence.Validate(raw)
}

// CountKMers counts k-mers in a validated sequence.
func CountKMers(seq *Sequence, k int) (*Counter, error) {
	return kmer.Count(seq, k)
}

// Analyze validates raw input and counts its k-mers in one call. It is
// the validate -> count pipeline without any I/O.
func Analyze(raw string, k int) (*Counter, error) {
	seq, err := sequence.New(raw)
	if err != nil {
		return nil, err
	}
	return kmer.Count(seq, k)
}

// ParseSortMode maps a mode name to its SortMode.
func ParseSortMode(name string) (SortMode, error) {
	return kmer.ParseSortMode(name)
}

// Format renders entries in the tool's tab-separated output contract.
func Format(entries []Entry) string {
	return kmer.FormatEntries(entries)
}

// SequenceSummary calculates statistics for a sequence.
func SequenceSummary(seq *Sequence) *SequenceStats {
	return stats.FromSequence(seq)
}

// CounterSummary calculates statistics for a counting run.
func CounterSummary(c *Counter) *KMerStats {
	return stats.FromCounter(c)
}

// Clean strips invalid characters from raw input, for composition
// reporting. The k-mer path never cleans; it validates strictly.
func Clean(raw string) CleanResult {
	return sequence.Clean(raw, sequence.DNA)
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(filename string) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses FASTA format from a reader. Every record is
// validated; one invalid record fails the whole parse.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)

	var currentID, currentDesc string
	var currentBases strings.Builder

	flushSequence := func() error {
		if currentBases.Len() > 0 {
			seq, err := sequence.WithMetadata(currentBases.String(), currentID, currentDesc)
			if err != nil {
				return err
			}
			sequences = append(sequences, seq)
			currentBases.Reset()
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if err := flushSequence(); err != nil {
				return nil, err
			}

			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentBases.WriteString(line)
		}
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return sequences, nil
}

// Version returns the kmerfreq version.
func Version() string {
	return "1.0.0"
}

// Info returns information about kmerfreq.
func Info() string {
	return fmt.Sprintf(`kmerfreq v%s - k-mer frequency analysis toolkit

Features:
  - DNA sequence validation with a fixed nucleotide alphabet
  - Sliding-window k-mer counting with deterministic ordering
  - Appearance, frequency and lexicographic output orders
  - Base composition and AT/GC content
  - Gene-expression threshold filtering
  - FASTA input
`, Version())
}
