package expression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = "gene\texpression\n" +
	"TP53\t12.5\n" +
	"BRCA1\t30.1\n" +
	"GAPDH\t5.0\n" +
	"MYC\t12.5\n"

func TestReadTable(t *testing.T) {
	records, skipped, err := ReadTable(strings.NewReader(sampleTable))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 4)
	assert.Equal(t, Record{Gene: "TP53", Expression: 12.5}, records[0])
}

func TestReadTableSkipsInvalidRows(t *testing.T) {
	table := "gene\texpression\n" +
		"TP53\t12.5\n" +
		"BADROW\tnot-a-number\n" +
		"\t3.0\n" +
		"BRCA1\t30.1\n"

	records, skipped, err := ReadTable(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	assert.Len(t, records, 2)
}

func TestReadTableExtraColumns(t *testing.T) {
	table := "id\tgene\texpression\n" +
		"1\tTP53\t12.5\n"

	records, _, err := ReadTable(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "TP53", records[0].Gene)
}

func TestReadTableMissingColumns(t *testing.T) {
	table := "gene\tvalue\nTP53\t12.5\n"

	_, _, err := ReadTable(strings.NewReader(table))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expression")
}

func TestReadTableEmpty(t *testing.T) {
	_, _, err := ReadTable(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadTableNoValidRows(t *testing.T) {
	table := "gene\texpression\nTP53\tnope\n"

	_, skipped, err := ReadTable(strings.NewReader(table))
	require.Error(t, err)
	assert.Equal(t, 1, skipped)
}

func TestFilterByThreshold(t *testing.T) {
	records := []Record{
		{Gene: "TP53", Expression: 12.5},
		{Gene: "BRCA1", Expression: 30.1},
		{Gene: "GAPDH", Expression: 5.0},
		{Gene: "MYC", Expression: 12.5},
	}

	tests := []struct {
		name      string
		threshold float64
		want      []string
	}{
		{"mid threshold", 10.0, []string{"BRCA1", "MYC", "TP53"}},
		{"boundary is inclusive", 12.5, []string{"BRCA1", "MYC", "TP53"}},
		{"everything passes", 0.0, []string{"BRCA1", "GAPDH", "MYC", "TP53"}},
		{"nothing passes", 100.0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByThreshold(records, tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}
