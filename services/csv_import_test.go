package services

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSV_Valid(t *testing.T) {
	input := "Item,Quantity,Price\nBolt,2,50\nNut,10,5\n"
	headers, rows, err := parseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseCSV() error = %v", err)
	}
	if len(headers) != 3 {
		t.Errorf("expected 3 headers, got %d", len(headers))
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 data rows, got %d", len(rows))
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	input := "Item,Quantity,Price\n"
	_, _, err := parseCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for header-only file")
	}
	if !strings.Contains(err.Error(), "at least one data row") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	_, _, err := parseCSV(strings.NewReader(""))
	if err == nil {
		t.Error("expected error for empty file")
	}
}

func TestParseTableFile_CSV(t *testing.T) {
	input := " Item , Quantity,Price\nBolt,2,\"1,250.00\"\nNut,10\n,,\n"
	spec, err := ParseTableFile(strings.NewReader(input), "items.CSV")
	if err != nil {
		t.Fatalf("ParseTableFile() error = %v", err)
	}

	wantHeaders := []string{"Item", "Quantity", "Price"}
	if !reflect.DeepEqual(spec.Headers, wantHeaders) {
		t.Errorf("headers = %q, want %q", spec.Headers, wantHeaders)
	}
	if len(spec.Rows) != 2 {
		t.Fatalf("expected blank row dropped leaving 2 rows, got %d", len(spec.Rows))
	}
	if len(spec.Rows[1]) != 2 {
		t.Errorf("short row should be kept as-is, got %v", spec.Rows[1])
	}
	if len(spec.Alignments) != 3 || spec.AlignmentAt(0) != AlignCenter {
		t.Errorf("alignments = %v, want three centered", spec.Alignments)
	}

	agg := aggregateSpec(spec, TaxRates{})
	if agg.TotalAmount != 2500 {
		t.Errorf("TotalAmount = %v, want 2500", agg.TotalAmount)
	}
}

func TestParseTableFile_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]any{
		{"S.No", "Item", "Quantity", "Amount"},
		{"1", "Pen", "20", "100"},
	}
	for i, r := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("SetSheetRow() error = %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	f.Close()

	spec, err := ParseTableFile(&buf, "items.xlsx")
	if err != nil {
		t.Fatalf("ParseTableFile() error = %v", err)
	}
	if len(spec.Headers) != 4 || len(spec.Rows) != 1 {
		t.Fatalf("got %d headers and %d rows", len(spec.Headers), len(spec.Rows))
	}

	rows := ComputeRows(spec, ClassifyColumns(spec.Headers))
	if got := rows[0].Cells[4]; got != "2000.00" {
		t.Errorf("derived total = %q, want 2000.00", got)
	}
}

func TestParseTableFile_ImportTemplateRoundTrip(t *testing.T) {
	template, err := GenerateImportTemplate()
	if err != nil {
		t.Fatalf("GenerateImportTemplate() error = %v", err)
	}

	// The bare template has no data rows.
	if _, err := ParseTableFile(bytesReader(template), "template.xlsx"); err == nil {
		t.Error("expected error for template without data rows")
	}
}

func TestParseTableFile_UnsupportedType(t *testing.T) {
	_, err := ParseTableFile(strings.NewReader("x"), "items.pdf")
	if err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("expected unsupported file type error, got %v", err)
	}
}
