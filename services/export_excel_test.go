package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateInvoiceExcel_MultiPage(t *testing.T) {
	pages := composeSample(t, 25)

	result, err := GenerateInvoiceExcel(pages)
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoiceExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	// Slashes in the invoice number are not allowed in sheet names
	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "INV-25-26-001" {
		t.Fatalf("expected single sheet 'INV-25-26-001', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Fervid Smart Solutions" {
		t.Errorf("expected company name in A1, got %q", title)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	var headerRows, words int
	for _, r := range rows {
		if len(r) > 1 && r[0] == "S.No" && r[1] == "Item Description" {
			headerRows++
		}
		if len(r) > 0 && strings.HasPrefix(r[0], "Amount in Words:") {
			words++
			if !strings.HasSuffix(r[0], "Rupees Only") {
				t.Errorf("words line = %q", r[0])
			}
		}
	}
	if headerRows != 3 {
		t.Errorf("expected column headers repeated on 3 pages, got %d", headerRows)
	}
	if words != 1 {
		t.Errorf("expected the footer exactly once, got %d", words)
	}
}

func TestGenerateInvoiceExcel_FormulaInjection(t *testing.T) {
	spec := TableSpec{
		Headers: []string{"Item", "Quantity", "Price"},
		Rows:    [][]string{{"=HYPERLINK(\"http://evil\")", "1", "10"}},
	}
	pages, err := Compose(InvoiceDocument{Table: spec}, DefaultLayoutOptions())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	result, err := GenerateInvoiceExcel(pages)
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("Invoice")
	for _, r := range rows {
		for _, c := range r {
			if strings.HasPrefix(c, "=") {
				t.Errorf("cell %q was written as a formula", c)
			}
		}
	}
}

func TestGenerateInvoiceExcel_NoPages(t *testing.T) {
	result, err := GenerateInvoiceExcel([]PrintPage{})
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoiceExcel() returned empty bytes")
	}
}

func TestExcelSheetName(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"INV/25-26/001", "INV-25-26-001"},
		{"", "Invoice"},
		{"a[b]c:d*e?f\\g", "a-b-c-d-e-f-g"},
		{strings.Repeat("x", 40), strings.Repeat("x", 31)},
	}
	for _, tt := range tests {
		if got := excelSheetName(tt.input); got != tt.expect {
			t.Errorf("excelSheetName(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+1", "'+1"},
		{"@cmd", "'@cmd"},
		{"Bolt", "Bolt"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestGenerateInvoiceExcel_TotalsRowSanitisedOnEveryPage(t *testing.T) {
	spec := TableSpec{
		Headers:      []string{"Item", "Remarks", "Discount"},
		TotalColumns: []string{"Discount"},
		Rows:         [][]string{{"Bolt", "", "-5"}, {"Nut", "", "-3"}},
	}
	opts := DefaultLayoutOptions()
	opts.RowsPerPage = 1
	pages, err := Compose(InvoiceDocument{Table: spec}, opts)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	result, err := GenerateInvoiceExcel(pages)
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("Invoice")
	var totals int
	for _, r := range rows {
		if len(r) == 3 && r[1] == "Total" {
			totals++
			if r[2] != "'-8.00" {
				t.Errorf("totals cell = %q, want '-8.00", r[2])
			}
		}
	}
	if totals != 2 {
		t.Errorf("expected a totals row on both pages, got %d", totals)
	}
}
