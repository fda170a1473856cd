package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseTableFile reads an uploaded CSV or XLSX file into a TableSpec. The
// first row is the header row; at least one data row is required. Trailing
// blank rows are dropped, and alignments default to center.
func ParseTableFile(file io.Reader, fileName string) (TableSpec, error) {
	var (
		headers []string
		rows    [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		headers, rows, err = parseCSV(file)
	case ".xlsx":
		headers, rows, err = parseExcel(file)
	default:
		return TableSpec{}, fmt.Errorf("unsupported file type %q: upload a .csv or .xlsx file", filepath.Ext(fileName))
	}
	if err != nil {
		return TableSpec{}, err
	}

	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return TableSpec{}, fmt.Errorf("file must contain a header row and at least one data row")
	}

	alignments := make([]Alignment, len(headers))
	for i := range alignments {
		alignments[i] = AlignCenter
	}

	return TableSpec{Headers: headers, Rows: rows, Alignments: alignments}, nil
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, r := range rows {
		if strings.TrimSpace(strings.Join(r, "")) == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
