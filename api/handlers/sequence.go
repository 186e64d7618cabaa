package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/genomica-lab/kmerfreq/internal/sequence"
)

// ValidateRequest represents a sequence validation request. The
// sequence field is decoded as a dynamic value so non-textual JSON
// (numbers, booleans, arrays) hits the validator's type check.
type ValidateRequest struct {
	Sequence any `json:"sequence"`
}

// ValidateResponse represents the response for sequence validation.
type ValidateResponse struct {
	Sequence string `json:"sequence"`
	Length   int    `json:"length"`
	Alphabet string `json:"alphabet"`
}

// ValidateHandler normalizes and validates a raw sequence.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	seq, err := sequence.Validate(req.Sequence)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, ValidateResponse{
		Sequence: seq.Bases,
		Length:   seq.Len(),
		Alphabet: seq.Alphabet.String(),
	})
}

// CompositionRequest represents a base composition request.
type CompositionRequest struct {
	Sequence string `json:"sequence"`
}

// CompositionResponse represents the response for base composition.
// Unlike validation, composition cleans its input: invalid characters
// are dropped and reported rather than failing the request.
type CompositionResponse struct {
	Length       int                `json:"length"`
	Counts       map[string]int     `json:"counts"`
	Percentages  map[string]float64 `json:"percentages"`
	InvalidChars map[string]int     `json:"invalid_chars,omitempty"`
	InvalidCount int                `json:"invalid_count"`
}

// CompositionHandler reports base composition of a cleaned sequence.
func CompositionHandler(w http.ResponseWriter, r *http.Request) {
	var req CompositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cleaned := sequence.Clean(req.Sequence, sequence.DNA)
	if len(cleaned.Cleaned) == 0 {
		writeError(w, "sequence has no valid bases", http.StatusBadRequest)
		return
	}

	seq, err := sequence.New(cleaned.Cleaned)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	bc := seq.BaseCounts()
	invalid := make(map[string]int, len(cleaned.InvalidChars))
	for c, n := range cleaned.InvalidChars {
		invalid[string(c)] = n
	}
	if len(invalid) == 0 {
		invalid = nil
	}

	writeJSON(w, CompositionResponse{
		Length: seq.Len(),
		Counts: map[string]int{
			"A": bc.A, "T": bc.T, "G": bc.G, "C": bc.C,
		},
		Percentages: map[string]float64{
			"A": bc.Percent('A'), "T": bc.Percent('T'),
			"G": bc.Percent('G'), "C": bc.Percent('C'),
		},
		InvalidChars: invalid,
		InvalidCount: cleaned.InvalidCount,
	})
}
