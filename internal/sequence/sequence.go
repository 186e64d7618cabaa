// Package sequence provides a validated DNA sequence type.
//
// A Sequence can only be obtained through validation: construction
// normalizes case and checks every character against a fixed nucleotide
// alphabet, so downstream code can rely on the invariant that all bases
// are valid and the sequence is non-empty.
package sequence

import (
	"fmt"
	"sort"
	"strings"
)

// Alphabet is an immutable set of allowed nucleotide symbols. It is
// passed by value; callers cannot alter the symbol set of a sequence
// after construction.
type Alphabet struct {
	name    string
	symbols string // uppercase, sorted
}

// DNA is the standard DNA alphabet {A, C, G, T}.
var DNA = Alphabet{name: "DNA", symbols: "ACGT"}

// Contains reports whether c belongs to the alphabet.
func (a Alphabet) Contains(c rune) bool {
	return strings.ContainsRune(a.symbols, c)
}

// Symbols returns the alphabet members in sorted order.
func (a Alphabet) Symbols() string {
	return a.symbols
}

// List returns the alphabet members as a comma-separated list, for use
// in error messages and help text.
func (a Alphabet) List() string {
	parts := make([]string, 0, len(a.symbols))
	for _, c := range a.symbols {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}

func (a Alphabet) String() string {
	return a.name
}

// Sequence represents a validated nucleotide sequence. Bases is always
// uppercase and contains only symbols from Alphabet.
type Sequence struct {
	Bases       string
	ID          string
	Description string
	Alphabet    Alphabet
}

// New creates a validated Sequence against the DNA alphabet.
func New(bases string) (*Sequence, error) {
	return NewWithAlphabet(bases, DNA)
}

// NewWithAlphabet validates bases against the given alphabet. The input
// is trimmed of incidental whitespace and normalized to uppercase; any
// character outside the alphabet fails validation outright. There is no
// partial success: invalid characters are reported, never dropped.
func NewWithAlphabet(bases string, alphabet Alphabet) (*Sequence, error) {
	trimmed := strings.TrimSpace(bases)
	if len(trimmed) == 0 {
		return nil, &EmptySequenceError{}
	}

	normalized := strings.ToUpper(trimmed)

	if invalid := invalidChars(normalized, alphabet); len(invalid) > 0 {
		return nil, &InvalidCharactersError{Chars: invalid, Alphabet: alphabet}
	}

	return &Sequence{Bases: normalized, Alphabet: alphabet}, nil
}

// Validate checks a raw value claimed to be a sequence. Values that are
// not text fail with InvalidTypeError before any content checks run;
// booleans in particular must never be coerced to text.
func Validate(raw any) (*Sequence, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, &InvalidTypeError{Value: raw}
	}
	return New(s)
}

// WithMetadata creates a validated sequence carrying an identifier and
// description, typically from a FASTA header.
func WithMetadata(bases, id, description string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}
	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the number of bases in the sequence.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// GCContent returns the proportion of G and C bases, in [0, 1].
func (s *Sequence) GCContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}

	gc := 0
	for _, b := range s.Bases {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s.Bases))
}

// ATContent returns the proportion of A and T bases, in [0, 1].
func (s *Sequence) ATContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}

	at := 0
	for _, b := range s.Bases {
		if b == 'A' || b == 'T' {
			at++
		}
	}
	return float64(at) / float64(len(s.Bases))
}

// String returns the sequence in a compact printable form.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}

// Equal checks value equality with another sequence.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Bases == other.Bases && s.Alphabet == other.Alphabet
}

// invalidChars returns the distinct characters of bases that are not in
// the alphabet, sorted ascending.
func invalidChars(bases string, alphabet Alphabet) []rune {
	seen := make(map[rune]bool)
	for _, c := range bases {
		if !alphabet.Contains(c) {
			seen[c] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	invalid := make([]rune, 0, len(seen))
	for c := range seen {
		invalid = append(invalid, c)
	}
	sort.Slice(invalid, func(i, j int) bool { return invalid[i] < invalid[j] })
	return invalid
}
