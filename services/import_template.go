package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateField describes one column in the invoice import Excel template.
type TemplateField struct {
	Label        string // header text, drives column classification
	Description  string // shown on the Instructions sheet
	FormatRule   string // e.g. "Number", ""
	ExampleValue string
	Required     bool
}

// InvoiceTemplateFields returns the ordered columns of the import template.
// The labels are chosen so the default classifier recognises quantity, price
// and amount.
func InvoiceTemplateFields() []TemplateField {
	return []TemplateField{
		{Label: "Sr", Description: "Serial number", ExampleValue: "1"},
		{Label: "Item Description", Description: "Goods or service description", ExampleValue: "Galvanised steel bracket 40mm", Required: true},
		{Label: "HSN/SAC", Description: "HSN or SAC code", FormatRule: "4-8 digits", ExampleValue: "7308"},
		{Label: "Quantity", Description: "Billed quantity", FormatRule: "Number", ExampleValue: "20", Required: true},
		{Label: "Unit", Description: "Unit of measurement (select from dropdown)", ExampleValue: "Nos"},
		{Label: "Price", Description: "Rate per unit", FormatRule: "Number, ₹ and commas allowed", ExampleValue: "100.00"},
		{Label: "Amount", Description: "Unit amount; takes precedence over Price", FormatRule: "Number, ₹ and commas allowed", ExampleValue: ""},
	}
}

// GenerateImportTemplate creates a downloadable .xlsx template that
// ParseTableFile accepts unchanged.
func GenerateImportTemplate() ([]byte, error) {
	fields := InvoiceTemplateFields()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Items"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	// --- Styles ---
	requiredHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})

	optionalHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})

	// Header labels must stay exactly as listed: a "*" suffix would survive
	// into the imported headers.
	columns := columnLetters(len(fields))
	for i, field := range fields {
		cell := fmt.Sprintf("%s1", columns[i])
		f.SetCellValue(sheetName, cell, field.Label)
		if field.Required {
			f.SetCellStyle(sheetName, cell, cell, requiredHeaderStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, optionalHeaderStyle)
		}

		width := float64(len(field.Label)) * 1.3
		if width < 12 {
			width = 12
		}
		if field.Label == "Item Description" {
			width = 45
		}
		f.SetColWidth(sheetName, columns[i], columns[i], width)
	}

	for i, field := range fields {
		if field.Label != "Unit" {
			continue
		}
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s1048576", columns[i], columns[i])
		dv.SetDropList(UOMOptions)
		f.AddDataValidation(sheetName, dv)
	}

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	addInstructionsSheet(f, fields)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel template: %w", err)
	}
	return buf.Bytes(), nil
}

// addInstructionsSheet creates a hidden sheet with column descriptions.
func addInstructionsSheet(f *excelize.File, fields []TemplateField) {
	instSheet := "Instructions"
	f.NewSheet(instSheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})

	f.SetCellValue(instSheet, "A1", "Invoice Item Import - Instructions")
	f.SetCellStyle(instSheet, "A1", "A1", titleStyle)

	instructionHeaders := []string{"Column", "Required?", "Format Rule", "Description", "Example"}
	cols := columnLetters(len(instructionHeaders))
	for i, h := range instructionHeaders {
		cell := fmt.Sprintf("%s3", cols[i])
		f.SetCellValue(instSheet, cell, h)
		f.SetCellStyle(instSheet, cell, cell, headerStyle)
	}

	for i, field := range fields {
		row := fmt.Sprintf("%d", i+4)
		reqLabel := "Optional"
		if field.Required {
			reqLabel = "Required"
		}
		f.SetCellValue(instSheet, cols[0]+row, field.Label)
		f.SetCellValue(instSheet, cols[1]+row, reqLabel)
		f.SetCellValue(instSheet, cols[2]+row, field.FormatRule)
		f.SetCellValue(instSheet, cols[3]+row, field.Description)
		f.SetCellValue(instSheet, cols[4]+row, field.ExampleValue)
	}

	widths := []float64{20, 12, 30, 45, 25}
	for i, w := range widths {
		f.SetColWidth(instSheet, cols[i], cols[i], w)
	}

	f.SetSheetVisible(instSheet, false)
}

// columnLetters returns Excel column letters for n columns: A, B, ... Z, AA, AB ...
func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		cols[i] = name
	}
	return cols
}
