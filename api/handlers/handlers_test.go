package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCountHandler(t *testing.T) {
	rec := post(t, CountHandler, `{"sequence": "atcgatcg", "k": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.K)
	assert.Equal(t, 4, resp.Unique)
	assert.Equal(t, 7, resp.Total)
	assert.Equal(t, "appearance", resp.Sort)
	require.Len(t, resp.Entries, 4)
	assert.Equal(t, "AT", resp.Entries[0].KMer)
	assert.Equal(t, 2, resp.Entries[0].Count)
}

func TestCountHandlerFrequencySort(t *testing.T) {
	rec := post(t, CountHandler, `{"sequence": "ATCGATCG", "k": 2, "sort": "frequency"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	kmers := make([]string, len(resp.Entries))
	for i, e := range resp.Entries {
		kmers[i] = e.KMer
	}
	assert.Equal(t, []string{"AT", "TC", "CG", "GA"}, kmers)
}

func TestCountHandlerRejectsBooleanK(t *testing.T) {
	rec := post(t, CountHandler, `{"sequence": "ATCG", "k": true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "integer")
}

func TestCountHandlerRejectsFractionalK(t *testing.T) {
	rec := post(t, CountHandler, `{"sequence": "ATCG", "k": 2.5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCountHandlerRejectsInvalidSort(t *testing.T) {
	rec := post(t, CountHandler, `{"sequence": "ATCG", "k": 2, "sort": "alphabetical"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "alphabetical")
}

func TestCountHandlerRejectsInvalidSequence(t *testing.T) {
	rec := post(t, CountHandler, `{"sequence": "ATCGX", "k": 2}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "X")
}

func TestCountHandlerKExceedsLength(t *testing.T) {
	rec := post(t, CountHandler, `{"sequence": "AT", "k": 10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "10")
	assert.Contains(t, resp["error"], "2")
}

func TestTopHandler(t *testing.T) {
	rec := post(t, TopHandler, `{"sequence": "ATATAT", "k": 2, "n": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TopResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "AT", resp.Entries[0].KMer)
	assert.Equal(t, 3, resp.Entries[0].Count)
}

func TestTopHandlerRequiresPositiveN(t *testing.T) {
	rec := post(t, TopHandler, `{"sequence": "ATCG", "k": 2, "n": 0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateHandler(t *testing.T) {
	rec := post(t, ValidateHandler, `{"sequence": "atcg"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ATCG", resp.Sequence)
	assert.Equal(t, 4, resp.Length)
	assert.Equal(t, "DNA", resp.Alphabet)
}

func TestValidateHandlerRejectsNonText(t *testing.T) {
	for _, body := range []string{
		`{"sequence": true}`,
		`{"sequence": 42}`,
		`{"sequence": ["A", "T"]}`,
	} {
		rec := post(t, ValidateHandler, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestCompositionHandler(t *testing.T) {
	rec := post(t, CompositionHandler, `{"sequence": "AATNXG"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CompositionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Length)
	assert.Equal(t, 2, resp.Counts["A"])
	assert.Equal(t, 2, resp.InvalidCount)
	assert.Equal(t, 1, resp.InvalidChars["N"])
	assert.Equal(t, 1, resp.InvalidChars["X"])
}

func TestCompositionHandlerNoValidBases(t *testing.T) {
	rec := post(t, CompositionHandler, `{"sequence": "123"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
