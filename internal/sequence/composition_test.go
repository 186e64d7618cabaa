package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseCounts(t *testing.T) {
	seq, err := New("AATTTGGGGC")
	require.NoError(t, err)

	bc := seq.BaseCounts()
	assert.Equal(t, 2, bc.A)
	assert.Equal(t, 3, bc.T)
	assert.Equal(t, 4, bc.G)
	assert.Equal(t, 1, bc.C)
	assert.Equal(t, 10, bc.Total())
}

func TestBaseCountsPercent(t *testing.T) {
	seq, err := New("ATGC")
	require.NoError(t, err)

	bc := seq.BaseCounts()
	assert.InDelta(t, 25.0, bc.Percent('A'), 0.0001)
	assert.InDelta(t, 25.0, bc.Percent('T'), 0.0001)
	assert.InDelta(t, 25.0, bc.Percent('G'), 0.0001)
	assert.InDelta(t, 25.0, bc.Percent('C'), 0.0001)
}

func TestPercentEmptyCounts(t *testing.T) {
	bc := BaseCounts{}
	assert.Equal(t, 0.0, bc.Percent('A'))
}

func TestClean(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantCleaned  string
		wantInvalid  int
		invalidChars map[rune]int
	}{
		{
			name:        "already clean",
			raw:         "ATCG",
			wantCleaned: "ATCG",
			wantInvalid: 0,
		},
		{
			name:        "lowercase normalized",
			raw:         "atcg",
			wantCleaned: "ATCG",
			wantInvalid: 0,
		},
		{
			name:         "invalid characters dropped and counted",
			raw:          "ATNCGXNX",
			wantCleaned:  "ATCG",
			wantInvalid:  4,
			invalidChars: map[rune]int{'N': 2, 'X': 2},
		},
		{
			name:        "whitespace ignored silently",
			raw:         "AT CG\nAT",
			wantCleaned: "ATCGAT",
			wantInvalid: 0,
		},
		{
			name:        "nothing valid",
			raw:         "123",
			wantCleaned: "",
			wantInvalid: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clean(tt.raw, DNA)
			assert.Equal(t, tt.wantCleaned, result.Cleaned)
			assert.Equal(t, tt.wantInvalid, result.InvalidCount)
			if tt.invalidChars != nil {
				assert.Equal(t, tt.invalidChars, result.InvalidChars)
			}
		})
	}
}
