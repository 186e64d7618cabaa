package kmer

import (
	"fmt"
	"strings"
)

// CountError is the common type of k-mer counting parameter failures.
// All are caller-correctable input errors; none is retryable.
type CountError interface {
	error
	IsCountError()
}

// InvalidKTypeError is returned when k is not a true integer. Boolean
// values are rejected explicitly even where they could masquerade as
// integers.
type InvalidKTypeError struct {
	Value any
}

func (e *InvalidKTypeError) Error() string {
	return fmt.Sprintf("k must be an integer, got %T", e.Value)
}

func (e *InvalidKTypeError) IsCountError() {}

// NonPositiveKError is returned when k <= 0.
type NonPositiveKError struct {
	K int
}

func (e *NonPositiveKError) Error() string {
	return fmt.Sprintf("k must be greater than 0, got %d", e.K)
}

func (e *NonPositiveKError) IsCountError() {}

// KExceedsLengthError is returned when k is larger than the sequence.
// It carries both values for diagnostics.
type KExceedsLengthError struct {
	K      int
	Length int
}

func (e *KExceedsLengthError) Error() string {
	return fmt.Sprintf("k (%d) cannot exceed sequence length (%d)", e.K, e.Length)
}

func (e *KExceedsLengthError) IsCountError() {}

// InvalidSortModeError is returned for an unrecognized ordering mode.
type InvalidSortModeError struct {
	Mode string
}

func (e *InvalidSortModeError) Error() string {
	return fmt.Sprintf("unsupported sort mode %q (accepted: %s)",
		e.Mode, strings.Join(SortModeNames(), ", "))
}

func (e *InvalidSortModeError) IsCountError() {}
