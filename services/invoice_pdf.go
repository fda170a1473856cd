package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfGrey      = &props.Color{Red: 100, Green: 100, Blue: 100}
	pdfCharcoal  = &props.Color{Red: 33, Green: 37, Blue: 41}
	pdfWhite     = &props.Color{Red: 255, Green: 255, Blue: 255}
	pdfSummaryBg = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// pdfGrid sizes maroto's grid to the table: the item column is three units
// wide, every other column one, and each unit is two grid cells so the page
// can always be split in half.
type pdfGrid struct {
	widths []int
	size   int
}

func newPDFGrid(columns []PageColumn) pdfGrid {
	g := pdfGrid{widths: make([]int, len(columns))}
	for i, c := range columns {
		w := 2
		if c.Item {
			w = 6
		}
		g.widths[i] = w
		g.size += w
	}
	if g.size < 12 {
		g.size = 12
		if len(columns) > 0 {
			// Stretch the last column so the table spans the page.
			used := 0
			for _, w := range g.widths[:len(g.widths)-1] {
				used += w
			}
			g.widths[len(g.widths)-1] = 12 - used
		}
	}
	return g
}

func (g pdfGrid) half() int { return g.size / 2 }

// A4 portrait with maroto's default bottom margin. pdfSlack absorbs rounding
// in maroto's row placement so a full page never spills onto a new sheet.
const (
	pdfPageHeight   = 297.0
	pdfTopMargin    = 10.0
	pdfBottomMargin = 20.0025
	pdfSlack        = 4.0

	pdfUsableHeight = pdfPageHeight - pdfTopMargin - pdfBottomMargin - pdfSlack
)

// pdfBlock collects maroto rows together with their total height in mm.
type pdfBlock struct {
	rows   []core.Row
	height float64
}

func (b *pdfBlock) add(height float64, cols ...core.Col) {
	r := row.New(height)
	if len(cols) > 0 {
		r.Add(cols...)
	}
	b.rows = append(b.rows, r)
	b.height += height
}

func (b *pdfBlock) addBlock(o pdfBlock) {
	b.rows = append(b.rows, o.rows...)
	b.height += o.height
}

// GenerateInvoicePDF renders composed pages into a PDF, exactly one physical
// A4 page per PrintPage. Header, table chrome and footer heights are fixed
// per document; table rows share what is left and shrink when their natural
// heights do not fit. It returns the raw PDF bytes or an error.
func GenerateInvoicePDF(pages []PrintPage) ([]byte, error) {
	var columns []PageColumn
	if len(pages) > 0 {
		columns = pages[0].Header.Columns
	}
	grid := newPDFGrid(columns)

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(pdfTopMargin).
		WithRightMargin(10).
		WithMaxGridSize(grid.size).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	scale := tableRowScale(grid, pages)
	for _, p := range pages {
		var content pdfBlock
		content.addBlock(invoiceHeaderRows(grid, p))
		content.addBlock(invoiceTableRows(grid, p, scale))
		if p.Footer != nil {
			content.addBlock(invoiceFooterRows(grid, p.Footer))
		}

		pg := page.New()
		pg.Add(content.rows...)
		m.AddPages(pg)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// tableRowScale returns the factor applied to every table row height so the
// tallest page, with the footer reserved on all of them, fits on one sheet.
func tableRowScale(g pdfGrid, pages []PrintPage) float64 {
	scale := 1.0
	for _, p := range pages {
		fixed := invoiceHeaderRows(g, p).height + tableChromeHeight(p)
		if p.Footer != nil {
			fixed += invoiceFooterRows(g, p.Footer).height
		} else if last := pages[len(pages)-1]; last.Footer != nil {
			fixed += invoiceFooterRows(g, last.Footer).height
		}

		natural := 0.0
		for _, r := range p.Rows {
			natural += rowHeight(r.Lines)
		}
		if natural <= 0 {
			continue
		}
		if s := (pdfUsableHeight - fixed) / natural; s < scale {
			scale = s
		}
	}
	if scale <= 0 {
		scale = 0.05
	}
	return scale
}

// invoiceHeaderRows builds the identity block repeated on every page.
func invoiceHeaderRows(g pdfGrid, p PrintPage) pdfBlock {
	meta := p.Header.Meta
	half := g.half()

	labelStyle := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: pdfGrey, Top: 1}
	valueStyle := props.Text{Size: 7, Align: align.Left}
	rightValue := props.Text{Size: 7, Align: align.Right}

	var b pdfBlock

	// Logo + company (left), title (right)
	titleCol := col.New(half).Add(text.New("TAX INVOICE", props.Text{
		Size: 13, Style: fontstyle.Bold, Align: align.Right, Color: pdfCharcoal,
	}))
	companyStyle := props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Left}
	if meta.Logo != nil && len(meta.Logo.Data) > 0 {
		logoW := g.size / 6
		b.add(12,
			col.New(logoW).Add(image.NewFromBytes(meta.Logo.Data, logoExtension(meta.Logo.Extension), props.Rect{
				Center: true, Percent: 90,
			})),
			col.New(half-logoW).Add(text.New(meta.Company.Name, companyStyle)),
			titleCol,
		)
	} else {
		b.add(12,
			col.New(half).Add(text.New(meta.Company.Name, companyStyle)),
			titleCol,
		)
	}

	companyLine := joinNonEmpty([]string{meta.Company.Address, fmtField("GSTIN", meta.Company.GSTIN), meta.Company.Email}, " | ")
	b.add(6,
		col.New(half).Add(text.New(companyLine, props.Text{Size: 7, Align: align.Left, Color: pdfGrey})),
		col.New(half).Add(text.New(fmt.Sprintf("Invoice #: %s", meta.Invoice.Number), props.Text{
			Size: 9, Style: fontstyle.Bold, Align: align.Right,
		})),
	)

	// IRN block with QR, only for e-invoices
	if meta.Invoice.IRN != "" {
		qrW := g.size / 6
		b.add(18,
			col.New(g.size-qrW).Add(
				text.New(fmtField("IRN", meta.Invoice.IRN), props.Text{Size: 7, Align: align.Left, Top: 2}),
				text.New(joinNonEmpty([]string{fmtField("Ack No", meta.Invoice.AckNo), fmtField("Ack Date", meta.Invoice.AckDate)}, " | "),
					props.Text{Size: 7, Align: align.Left, Top: 8}),
			),
			code.NewQrCol(qrW, meta.Invoice.IRN, props.Rect{Center: true, Percent: 95}),
		)
	}

	// Invoice details
	details := []struct{ label, value string }{
		{"Invoice Date", meta.Invoice.Date},
		{"Transport", meta.Invoice.Transport},
		{"Vehicle No", meta.Invoice.VehicleNo},
		{"E-Way Bill", meta.Invoice.EWayBill},
		{"PO Reference", meta.Invoice.POReference},
		{"Payment Terms", meta.Invoice.PaymentTerms},
	}
	for i := 0; i < len(details); i += 2 {
		left, right := details[i], details[i+1]
		if left.value == "" && right.value == "" {
			continue
		}
		b.add(5,
			col.New(half).Add(text.New(fmtField(left.label, left.value), valueStyle)),
			col.New(half).Add(text.New(fmtField(right.label, right.value), rightValue)),
		)
	}

	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 243, Blue: 239}}
	b.add(5,
		col.New(half).Add(text.New("BILL TO", labelStyle)).WithStyle(headerCell),
		col.New(half).Add(text.New("SHIP TO", labelStyle)).WithStyle(headerCell),
	)

	bill, ship := meta.BillAddress, meta.ShipAddress
	if bill.Name == "" {
		bill.Name = meta.Client.Name
	}
	if bill.GSTIN == "" {
		bill.GSTIN = meta.Client.GSTIN
	}
	if ship.Name == "" {
		ship.Name = bill.Name
	}
	boldValue := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Top: 1}
	b.add(5,
		col.New(half).Add(text.New(bill.Name, boldValue)),
		col.New(half).Add(text.New(ship.Name, boldValue)),
	)
	b.add(9,
		col.New(half).Add(text.New(bill.Lines, valueStyle)),
		col.New(half).Add(text.New(ship.Lines, valueStyle)),
	)
	if bill.GSTIN != "" || ship.GSTIN != "" || bill.State != "" || ship.State != "" {
		b.add(5,
			col.New(half).Add(text.New(joinNonEmpty([]string{fmtField("GSTIN", bill.GSTIN), stateLine(bill)}, " | "), valueStyle)),
			col.New(half).Add(text.New(joinNonEmpty([]string{fmtField("GSTIN", ship.GSTIN), stateLine(ship)}, " | "), valueStyle)),
		)
	}

	b.add(2)
	return b
}

// tableChromeHeight is the table height that does not depend on the rows:
// column header, optional totals row and the trailing gap.
func tableChromeHeight(p PrintPage) float64 {
	h := 7.0 + 2.0
	if len(p.Totals) > 0 {
		h += 6
	}
	return h
}

// invoiceTableRows builds the column header, the real and filler rows scaled
// by scale, and the inline totals row.
func invoiceTableRows(g pdfGrid, p PrintPage, scale float64) pdfBlock {
	headerCell := &props.Cell{BackgroundColor: pdfCharcoal}
	bodyCell := &props.Cell{BorderType: border.Full, BorderColor: &props.Color{Red: 200, Green: 200, Blue: 200}, BorderThickness: 0.1}

	var b pdfBlock

	var headerCols []core.Col
	for i, c := range p.Header.Columns {
		headerCols = append(headerCols, col.New(g.widths[i]).Add(text.New(c.Header, props.Text{
			Size: 7, Style: fontstyle.Bold, Align: pdfAlign(c.Align), Color: pdfWhite, Top: 1,
		})).WithStyle(headerCell))
	}
	b.add(7, headerCols...)

	for _, r := range p.Rows {
		var cols []core.Col
		for i, c := range p.Header.Columns {
			cols = append(cols, col.New(g.widths[i]).Add(text.New(CellAt(r.Cells, i), props.Text{
				Size: 7, Align: pdfAlign(c.Align), Top: 1, Left: 1, Right: 1,
			})).WithStyle(bodyCell))
		}
		b.add(rowHeight(r.Lines)*scale, cols...)
	}

	if len(p.Totals) > 0 {
		totalCell := &props.Cell{BackgroundColor: pdfSummaryBg, BorderType: border.Full, BorderThickness: 0.1}
		var cols []core.Col
		for i, c := range p.Header.Columns {
			cols = append(cols, col.New(g.widths[i]).Add(text.New(CellAt(p.Totals, i), props.Text{
				Size: 7, Style: fontstyle.Bold, Align: pdfAlign(c.Align), Top: 1,
			})).WithStyle(totalCell))
		}
		b.add(6, cols...)
	}

	b.add(2)
	return b
}

// invoiceFooterRows builds the last-page block: bank and dispatch details
// beside the tax breakdown, the amount in words, then the declaration and
// signatures on one band.
func invoiceFooterRows(g pdfGrid, f *PageFooter) pdfBlock {
	agg := f.Aggregates
	half := g.half()
	leftLabelW := max(half/3, 1)
	leftValueW := half - leftLabelW
	rightValueW := (g.size - half) / 2
	rightLabelW := g.size - half - rightValueW

	summaryCell := &props.Cell{BackgroundColor: pdfSummaryBg}
	sumLabel := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Right, Top: 1, Right: 1}
	sumValue := props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1}
	sectionLabel := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: pdfCharcoal, Top: 1}
	fieldLabel := props.Text{Size: 6, Style: fontstyle.Bold, Align: align.Left, Color: pdfGrey, Top: 1}
	fieldValue := props.Text{Size: 7, Align: align.Left, Top: 1}

	summary := []struct{ label, value string }{
		{"Total Quantity", FormatQuantity(agg.TotalQuantity)},
		{"Taxable Amount", FormatINR(agg.TotalAmount)},
		{fmt.Sprintf("CGST %s%%", formatRate(agg.Rates.CGST)), FormatINR(agg.CGST)},
		{fmt.Sprintf("SGST %s%%", formatRate(agg.Rates.SGST)), FormatINR(agg.SGST)},
		{"Total GST", FormatINR(agg.TotalGST)},
		{"Round Off", formatSignedINR(agg.RoundOff)},
	}

	type detail struct{ label, value string }
	var details []detail
	for _, d := range []detail{
		{"Bank Name", f.Bank.BankName},
		{"Account No", f.Bank.AccountNo},
		{"IFSC Code", f.Bank.IFSC},
		{"Branch", f.Bank.Branch},
		{"Transport", f.Transport},
		{"Freight", f.Freight},
	} {
		if d.value != "" {
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		details = append([]detail{{label: "BANK & DISPATCH DETAILS"}}, details...)
	}

	var b pdfBlock
	for i, s := range summary {
		left := []core.Col{col.New(half)}
		if i < len(details) {
			d := details[i]
			if d.value == "" {
				left = []core.Col{col.New(half).Add(text.New(d.label, sectionLabel))}
			} else {
				left = []core.Col{
					col.New(leftLabelW).Add(text.New(d.label, fieldLabel)),
					col.New(leftValueW).Add(text.New(d.value, fieldValue)),
				}
			}
		}
		b.add(5, append(left,
			col.New(rightLabelW).Add(text.New(s.label, sumLabel)).WithStyle(summaryCell),
			col.New(rightValueW).Add(text.New(s.value, sumValue)).WithStyle(summaryCell),
		)...)
	}

	grandCell := &props.Cell{BackgroundColor: pdfCharcoal}
	grandStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: pdfWhite, Top: 1.5, Right: 1}
	b.add(7,
		col.New(half),
		col.New(rightLabelW).Add(text.New("Grand Total", grandStyle)).WithStyle(grandCell),
		col.New(rightValueW).Add(text.New(FormatINR(float64(agg.RoundedTotal)), grandStyle)).WithStyle(grandCell),
	)

	b.add(7, col.New(g.size).Add(text.New(fmt.Sprintf("Amount in Words: %s", agg.GrandTotalInWords), props.Text{
		Size: 8, Style: fontstyle.BoldItalic, Align: align.Left, Top: 2,
	})))

	// Declaration on the left half, the three signatures across the right.
	band := []core.Col{col.New(half).Add(
		text.New("Declaration", sectionLabel),
		text.New(f.Declaration, props.Text{Size: 6, Align: align.Left, Top: 5}),
	)}
	lineStyle := props.Text{Size: 7, Align: align.Center, Color: pdfGrey, Top: 12}
	sigStyle := props.Text{Size: 6, Style: fontstyle.Bold, Align: align.Center, Color: pdfGrey, Top: 16}
	rest := g.size - half
	sigW := rest / 3
	widths := []int{sigW, sigW, rest - 2*sigW}
	for i, label := range f.Signatures {
		if i >= len(widths) {
			break
		}
		band = append(band, col.New(widths[i]).Add(
			text.New("________________", lineStyle),
			text.New(strings.ReplaceAll(label, "\n", " - "), sigStyle),
		))
	}
	b.add(2)
	b.add(22, band...)

	return b
}

// rowHeight turns a line estimate into a maroto row height in mm.
func rowHeight(lines int) float64 {
	if lines < 1 {
		lines = 1
	}
	return float64(lines)*4 + 2
}

func pdfAlign(a Alignment) align.Type {
	switch a {
	case AlignLeft:
		return align.Left
	case AlignRight:
		return align.Right
	default:
		return align.Center
	}
}

func logoExtension(ext string) extension.Type {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return extension.Jpg
	default:
		return extension.Png
	}
}

func stateLine(a Address) string {
	if a.State == "" {
		return ""
	}
	if a.StateCode == "" {
		return fmtField("State", a.State)
	}
	return fmt.Sprintf("State: %s (%s)", a.State, a.StateCode)
}

// formatRate renders a 0.09 style fraction as a percentage without trailing
// zeros ("9", "2.5").
func formatRate(r float64) string {
	s := FormatFixed2(r * 100)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

// fmtField returns "label: value" if value is non-empty, otherwise empty string.
func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}
