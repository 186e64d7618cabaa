package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/genomica-lab/kmerfreq/internal/kmer"
	"github.com/genomica-lab/kmerfreq/internal/sequence"
)

// CountRequest represents a k-mer count request. K is decoded as a
// dynamic value so that JSON booleans and non-integral numbers are
// rejected by the counter's own type check instead of being coerced.
type CountRequest struct {
	Sequence string `json:"sequence"`
	K        any    `json:"k"`
	Sort     string `json:"sort,omitempty"`
}

// CountResponse represents the response for k-mer counting.
type CountResponse struct {
	K       int          `json:"k"`
	Unique  int          `json:"unique_count"`
	Total   int          `json:"total_count"`
	Sort    string       `json:"sort"`
	Entries []kmer.Entry `json:"entries"`
}

// CountHandler handles k-mer counting requests.
func CountHandler(w http.ResponseWriter, r *http.Request) {
	var req CountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	mode, err := kmer.ParseSortMode(req.Sort)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	seq, err := sequence.New(req.Sequence)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	counter, err := kmer.CountRaw(seq, req.K)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := counter.Ordered(mode)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, CountResponse{
		K:       counter.K,
		Unique:  counter.UniqueCount(),
		Total:   counter.Total,
		Sort:    mode.String(),
		Entries: entries,
	})
}

// TopRequest represents a most-frequent k-mers request.
type TopRequest struct {
	Sequence string `json:"sequence"`
	K        any    `json:"k"`
	N        int    `json:"n"`
}

// TopResponse represents the response for most-frequent k-mers.
type TopResponse struct {
	K       int          `json:"k"`
	Entries []kmer.Entry `json:"entries"`
}

// TopHandler handles most-frequent k-mers requests.
func TopHandler(w http.ResponseWriter, r *http.Request) {
	var req TopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.N <= 0 {
		writeError(w, "n must be positive", http.StatusBadRequest)
		return
	}

	seq, err := sequence.New(req.Sequence)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	counter, err := kmer.CountRaw(seq, req.K)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := counter.MostFrequent(req.N)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, TopResponse{K: counter.K, Entries: entries})
}
