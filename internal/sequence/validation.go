package sequence

import (
	"fmt"
	"strings"
)

// ValidationError is the common type of all sequence validation
// failures. Every error is raised at the point of detection and
// propagates unchanged; none is retryable.
type ValidationError interface {
	error
	IsValidationError()
}

// InvalidTypeError is returned when the raw input is not textual data.
type InvalidTypeError struct {
	Value any
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("sequence must be a string, got %T", e.Value)
}

func (e *InvalidTypeError) IsValidationError() {}

// EmptySequenceError is returned when a sequence has no content after
// trimming whitespace.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsValidationError() {}

// InvalidCharactersError is returned when a sequence contains symbols
// outside the alphabet. Chars holds the offending characters, sorted
// and deduplicated, so callers can report them.
type InvalidCharactersError struct {
	Chars    []rune
	Alphabet Alphabet
}

func (e *InvalidCharactersError) Error() string {
	parts := make([]string, len(e.Chars))
	for i, c := range e.Chars {
		parts[i] = string(c)
	}
	return fmt.Sprintf("sequence contains invalid characters: %s (allowed: %s)",
		strings.Join(parts, ", "), e.Alphabet.List())
}

func (e *InvalidCharactersError) IsValidationError() {}
