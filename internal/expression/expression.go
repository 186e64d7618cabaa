// Package expression filters gene-expression tables by a minimum
// expression threshold.
//
// Input is a tab-separated table with a header row containing at least
// the columns "gene" and "expression". Rows whose expression value is
// missing or non-numeric are skipped and counted rather than failing
// the whole run.
package expression

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Record is one row of a gene-expression table.
type Record struct {
	Gene       string
	Expression float64
}

// ReadTable parses a TSV from r. It returns the valid records and the
// number of rows skipped for missing or non-numeric expression values.
func ReadTable(r io.Reader) ([]Record, int, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, fmt.Errorf("expression table is empty")
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}

	geneCol, exprCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "gene":
			geneCol = i
		case "expression":
			exprCol = i
		}
	}
	if geneCol < 0 || exprCol < 0 {
		return nil, 0, fmt.Errorf("expression table must have 'gene' and 'expression' columns, got: %s",
			strings.Join(header, ", "))
	}

	var records []Record
	skipped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading row: %w", err)
		}
		if geneCol >= len(row) || exprCol >= len(row) {
			skipped++
			continue
		}

		gene := strings.TrimSpace(row[geneCol])
		value, convErr := strconv.ParseFloat(strings.TrimSpace(row[exprCol]), 64)
		if gene == "" || convErr != nil {
			skipped++
			continue
		}

		records = append(records, Record{Gene: gene, Expression: value})
	}

	if len(records) == 0 {
		return nil, skipped, fmt.Errorf("expression table has no valid data rows")
	}
	return records, skipped, nil
}

// ReadTableFile parses a TSV file by path.
func ReadTableFile(path string) ([]Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadTable(f)
}

// FilterByThreshold returns the names of genes whose expression is at
// least threshold, sorted alphabetically.
func FilterByThreshold(records []Record, threshold float64) []string {
	var genes []string
	for _, rec := range records {
		if rec.Expression >= threshold {
			genes = append(genes, rec.Gene)
		}
	}
	sort.Strings(genes)
	return genes
}
