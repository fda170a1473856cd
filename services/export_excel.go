package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateInvoiceExcel writes composed pages to a single-sheet workbook. Each
// page repeats the header block and column headers, and a manual page break
// separates pages so the sheet prints exactly like the PDF.
func GenerateInvoiceExcel(pages []PrintPage) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Invoice"
	if len(pages) > 0 {
		if n := pages[0].Header.Meta.Invoice.Number; n != "" {
			sheetName = excelSheetName(n)
		}
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	width := 1
	if len(pages) > 0 && len(pages[0].Header.Columns) > 0 {
		width = len(pages[0].Header.Columns)
	}
	lastCol, err := excelize.ColumnNumberToName(width)
	if err != nil {
		return nil, fmt.Errorf("last column name: %w", err)
	}

	styles, err := newInvoiceExcelStyles(f)
	if err != nil {
		return nil, err
	}

	if len(pages) > 0 {
		for i, c := range pages[0].Header.Columns {
			name, _ := excelize.ColumnNumberToName(i + 1)
			w := 12.0
			if c.Item {
				w = 36
			}
			if err := f.SetColWidth(sheetName, name, name, w); err != nil {
				return nil, fmt.Errorf("set col width %s: %w", name, err)
			}
		}
	}

	w := &invoiceSheetWriter{f: f, sheet: sheetName, lastCol: lastCol, styles: styles, row: 1}
	for i, p := range pages {
		if i > 0 {
			if err := f.InsertPageBreak(sheetName, fmt.Sprintf("A%d", w.row)); err != nil {
				return nil, fmt.Errorf("insert page break: %w", err)
			}
		}
		if err := w.writePage(p); err != nil {
			return nil, fmt.Errorf("write page %d: %w", p.Number, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

type invoiceExcelStyles struct {
	title, label, header, body, filler, totals, summaryLabel, summaryValue int
	align                                                                 map[Alignment]int
}

func newInvoiceExcelStyles(f *excelize.File) (invoiceExcelStyles, error) {
	var s invoiceExcelStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}
	if s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}}); err != nil {
		return s, fmt.Errorf("create label style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	s.align = make(map[Alignment]int, 3)
	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		id, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Alignment: &excelize.Alignment{Horizontal: string(a), Vertical: "top", WrapText: true},
			Border:    thinBorders(),
		})
		if err != nil {
			return s, fmt.Errorf("create %s body style: %w", a, err)
		}
		s.align[a] = id
	}
	s.body = s.align[AlignCenter]

	if s.filler, err = f.NewStyle(&excelize.Style{Border: thinBorders()}); err != nil {
		return s, fmt.Errorf("create filler style: %w", err)
	}
	if s.totals, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F5F5F5"}, Pattern: 1},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create totals style: %w", err)
	}

	// Summary label style: bold, right-aligned.
	if s.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}
	if s.summaryValue, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}
	return s, nil
}

type invoiceSheetWriter struct {
	f       *excelize.File
	sheet   string
	lastCol string
	styles  invoiceExcelStyles
	row     int
}

func (w *invoiceSheetWriter) cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// mergedLine writes value across the full sheet width on the current row.
func (w *invoiceSheetWriter) mergedLine(value string, style int) error {
	first := fmt.Sprintf("A%d", w.row)
	last := fmt.Sprintf("%s%d", w.lastCol, w.row)
	if first != last {
		if err := w.f.MergeCell(w.sheet, first, last); err != nil {
			return fmt.Errorf("merge %s:%s: %w", first, last, err)
		}
	}
	w.f.SetCellValue(w.sheet, first, sanitizeExcelCell(value))
	w.f.SetCellStyle(w.sheet, first, last, style)
	w.row++
	return nil
}

func (w *invoiceSheetWriter) writePage(p PrintPage) error {
	meta := p.Header.Meta

	lines := []struct {
		value string
		style int
	}{
		{meta.Company.Name, w.styles.title},
		{joinNonEmpty([]string{meta.Company.Address, fmtField("GSTIN", meta.Company.GSTIN)}, " | "), w.styles.label},
		{fmt.Sprintf("TAX INVOICE  %s  (Page %d of %d)", meta.Invoice.Number, p.Number, p.Count), w.styles.label},
		{joinNonEmpty([]string{fmtField("Date", meta.Invoice.Date), fmtField("Transport", meta.Invoice.Transport),
			fmtField("Vehicle No", meta.Invoice.VehicleNo), fmtField("IRN", meta.Invoice.IRN)}, " | "), w.styles.label},
		{joinNonEmpty([]string{fmtField("Bill To", firstNonEmpty(meta.BillAddress.Name, meta.Client.Name)), meta.BillAddress.Lines,
			fmtField("GSTIN", firstNonEmpty(meta.BillAddress.GSTIN, meta.Client.GSTIN))}, " | "), w.styles.label},
		{joinNonEmpty([]string{fmtField("Ship To", meta.ShipAddress.Name), meta.ShipAddress.Lines}, " | "), w.styles.label},
	}
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		if err := w.mergedLine(l.value, l.style); err != nil {
			return err
		}
	}
	w.row++

	for i, c := range p.Header.Columns {
		w.f.SetCellValue(w.sheet, w.cell(i+1, w.row), sanitizeExcelCell(c.Header))
	}
	w.f.SetCellStyle(w.sheet, w.cell(1, w.row), fmt.Sprintf("%s%d", w.lastCol, w.row), w.styles.header)
	w.row++

	for _, r := range p.Rows {
		for i, c := range p.Header.Columns {
			ref := w.cell(i+1, w.row)
			if r.Filler {
				w.f.SetCellStyle(w.sheet, ref, ref, w.styles.filler)
				continue
			}
			w.f.SetCellValue(w.sheet, ref, sanitizeExcelCell(CellAt(r.Cells, i)))
			w.f.SetCellStyle(w.sheet, ref, ref, w.styles.align[c.Align])
		}
		if err := w.f.SetRowHeight(w.sheet, w.row, 15*float64(r.Lines)); err != nil {
			return fmt.Errorf("set row height: %w", err)
		}
		w.row++
	}

	if len(p.Totals) > 0 {
		for i := range p.Header.Columns {
			w.f.SetCellValue(w.sheet, w.cell(i+1, w.row), sanitizeExcelCell(CellAt(p.Totals, i)))
		}
		w.f.SetCellStyle(w.sheet, w.cell(1, w.row), fmt.Sprintf("%s%d", w.lastCol, w.row), w.styles.totals)
		w.row++
	}

	if p.Footer != nil {
		return w.writeFooter(p.Footer, len(p.Header.Columns))
	}
	w.row++
	return nil
}

func (w *invoiceSheetWriter) writeFooter(f *PageFooter, width int) error {
	agg := f.Aggregates
	w.row++

	labelCol, valueCol := width-1, width
	if labelCol < 1 {
		labelCol, valueCol = 1, 2
	}

	summary := []struct {
		label string
		value string
	}{
		{"Total Quantity:", FormatQuantity(agg.TotalQuantity)},
		{"Taxable Amount:", FormatINR(agg.TotalAmount)},
		{fmt.Sprintf("CGST %s%%:", formatRate(agg.Rates.CGST)), FormatINR(agg.CGST)},
		{fmt.Sprintf("SGST %s%%:", formatRate(agg.Rates.SGST)), FormatINR(agg.SGST)},
		{"Total GST:", FormatINR(agg.TotalGST)},
		{"Round Off:", formatSignedINR(agg.RoundOff)},
		{"Grand Total:", FormatINR(float64(agg.RoundedTotal))},
	}
	for _, s := range summary {
		label, value := w.cell(labelCol, w.row), w.cell(valueCol, w.row)
		w.f.SetCellValue(w.sheet, label, s.label)
		w.f.SetCellStyle(w.sheet, label, label, w.styles.summaryLabel)
		w.f.SetCellValue(w.sheet, value, s.value)
		w.f.SetCellStyle(w.sheet, value, value, w.styles.summaryValue)
		w.row++
	}
	w.row++

	footerLines := []string{
		"Amount in Words: " + agg.GrandTotalInWords,
		joinNonEmpty([]string{fmtField("Bank", f.Bank.BankName), fmtField("A/c No", f.Bank.AccountNo),
			fmtField("IFSC", f.Bank.IFSC), fmtField("Branch", f.Bank.Branch)}, " | "),
		joinNonEmpty([]string{fmtField("Transport", f.Transport), fmtField("Freight", f.Freight)}, " | "),
		"Declaration: " + f.Declaration,
	}
	for _, l := range footerLines {
		if l == "" {
			continue
		}
		if err := w.mergedLine(l, w.styles.label); err != nil {
			return err
		}
	}
	w.row++
	return w.mergedLine(joinNonEmpty(f.Signatures, "    |    "), w.styles.label)
}

// excelSheetName trims s to Excel's 31 character limit and removes the
// characters Excel rejects in sheet names.
func excelSheetName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '/', '\\', '?', '*', '[', ']', ':':
			r = '-'
		}
		out = append(out, r)
		if len(out) == 31 {
			break
		}
	}
	if len(out) == 0 {
		return "Invoice"
	}
	return string(out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
