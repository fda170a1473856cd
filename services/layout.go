package services

import (
	"fmt"
	"unicode/utf8"
)

// DefaultDeclaration is the legal declaration printed above the signatures.
const DefaultDeclaration = "We declare that this invoice shows the actual price of the goods described " +
	"and that all particulars are true and correct."

const (
	lineEstimateWidth = 30
	maxEstimatedLines = 3
)

// LayoutOptions configures Compose.
type LayoutOptions struct {
	RowsPerPage int
	Rates       TaxRates
	Words       WordsConverter
	WordsSuffix string
	Empty       EmptyPolicy
	Declaration string

	// Rules classifies headers when Roles is nil. Nil means the defaults.
	Rules *ClassifierRules
	// Roles is an explicit, caller-supplied role mapping.
	Roles *ColumnRoles
}

// DefaultLayoutOptions returns 12 rows per page, 9% + 9% GST, Indian words
// and a blank page for empty invoices.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		RowsPerPage: DefaultRowsPerPage,
		Rates:       DefaultTaxRates(),
		Words:       IndianWords{},
		WordsSuffix: DefaultWordsSuffix,
		Empty:       EmptyBlankPage,
		Declaration: DefaultDeclaration,
	}
}

// PageColumn describes one printed table column.
type PageColumn struct {
	Header  string    `json:"header"`
	Align   Alignment `json:"align"`
	Derived bool      `json:"derived,omitempty"`
	Item    bool      `json:"item,omitempty"`
}

// PageHeader is repeated unchanged on every page.
type PageHeader struct {
	Meta    InvoiceMeta  `json:"meta"`
	Columns []PageColumn `json:"columns"`
}

// PrintRow is one table row on a page. Filler rows have blank cells.
type PrintRow struct {
	Cells  []string `json:"cells"`
	Filler bool     `json:"filler,omitempty"`
	Lines  int      `json:"lines"`
}

// PageFooter is printed once, on the last page.
type PageFooter struct {
	Aggregates  Aggregates `json:"aggregates"`
	Bank        BankInfo   `json:"bank"`
	Freight     string     `json:"freight,omitempty"`
	Transport   string     `json:"transport,omitempty"`
	Declaration string     `json:"declaration"`
	Signatures  []string   `json:"signatures"`
}

// PrintPage is one renderable page.
type PrintPage struct {
	Number int         `json:"number"`
	Count  int         `json:"count"`
	Header PageHeader  `json:"header"`
	Rows   []PrintRow  `json:"rows"`
	Totals []string    `json:"totals,omitempty"`
	Footer *PageFooter `json:"footer,omitempty"`
}

// IsLast reports whether p carries the footer.
func (p PrintPage) IsLast() bool { return p.Footer != nil }

// RealRows counts the non-filler rows on p.
func (p PrintPage) RealRows() int {
	n := 0
	for _, r := range p.Rows {
		if !r.Filler {
			n++
		}
	}
	return n
}

// EstimateLines guesses how many printed lines text wraps to in the item
// column: one per 30 characters, at least 1 and at most 3.
func EstimateLines(text string) int {
	n := utf8.RuneCountInString(text)
	lines := (n + lineEstimateWidth - 1) / lineEstimateWidth
	if lines < 1 {
		return 1
	}
	if lines > maxEstimatedLines {
		return maxEstimatedLines
	}
	return lines
}

// Compose runs the whole print pipeline for doc: classify columns, derive
// row totals, aggregate, paginate and lay out pages. Every page holds exactly
// RowsPerPage rows and repeats the document's inline totals row; only the
// last carries the footer. The only error is an explicit Roles mapping that
// does not fit the headers.
func Compose(doc InvoiceDocument, opts LayoutOptions) ([]PrintPage, error) {
	spec := doc.Table
	capacity := opts.RowsPerPage
	if capacity < 1 {
		capacity = DefaultRowsPerPage
	}

	var roles ColumnRoles
	switch {
	case opts.Roles != nil:
		if err := opts.Roles.Validate(len(spec.Headers)); err != nil {
			return nil, fmt.Errorf("compose: %w", err)
		}
		roles = *opts.Roles
	case opts.Rules != nil:
		roles = opts.Rules.Classify(spec.Headers)
	default:
		roles = ClassifyColumns(spec.Headers)
	}

	computed := ComputeRows(spec, roles)
	agg := Aggregate(spec, roles, computed, AggregateOptions{
		Rates:       opts.Rates,
		Words:       opts.Words,
		WordsSuffix: opts.WordsSuffix,
	})

	chunks := Paginate(computed, capacity)
	if len(chunks) == 0 {
		if opts.Empty == EmptyNoPages {
			return []PrintPage{}, nil
		}
		chunks = [][]ComputedRow{nil}
	}

	header := PageHeader{Meta: doc.Meta, Columns: pageColumns(spec, roles)}
	width := len(header.Columns)
	itemIdx := spec.itemColumnIndex()

	totals := inlineTotalsRow(spec, agg, width)

	pages := make([]PrintPage, len(chunks))
	for i, chunk := range chunks {
		rows := make([]PrintRow, 0, capacity)
		for _, r := range chunk {
			rows = append(rows, PrintRow{
				Cells: padCells(r.Cells, width),
				Lines: EstimateLines(CellAt(r.Cells, itemIdx)),
			})
		}
		for len(rows) < capacity {
			rows = append(rows, PrintRow{Cells: make([]string, width), Filler: true, Lines: 1})
		}
		pages[i] = PrintPage{
			Number: i + 1,
			Count:  len(chunks),
			Header: header,
			Rows:   rows,
			Totals: totals,
		}
	}

	last := &pages[len(pages)-1]
	last.Footer = &PageFooter{
		Aggregates:  agg,
		Bank:        doc.Meta.Bank,
		Freight:     doc.Meta.Freight,
		Transport:   doc.Meta.Invoice.Transport,
		Declaration: declarationOrDefault(opts.Declaration),
		Signatures:  signatureLabels(doc.Meta),
	}
	return pages, nil
}

func pageColumns(spec TableSpec, roles ColumnRoles) []PageColumn {
	headers := ComputedHeaders(spec, roles)
	itemIdx := spec.itemColumnIndex()
	cols := make([]PageColumn, len(headers))
	for i, h := range headers {
		cols[i] = PageColumn{Header: h, Align: spec.AlignmentAt(i), Item: i == itemIdx}
		if i >= len(spec.Headers) {
			cols[i].Derived = true
			cols[i].Align = AlignRight
		}
	}
	return cols
}

// inlineTotalsRow places "Total" in the column just before the first total
// column and each total column's sum in its own cell. It returns nil when no
// label position exists.
func inlineTotalsRow(spec TableSpec, agg Aggregates, width int) []string {
	idx := totalColumnIndexes(spec)
	if len(idx) == 0 {
		return nil
	}
	first := width
	for _, i := range idx {
		if i < first {
			first = i
		}
	}
	if first < 1 {
		return nil
	}

	row := make([]string, width)
	row[first-1] = "Total"
	for name, i := range idx {
		row[i] = FormatFixed2(agg.PerColumnTotals[name])
	}
	return row
}

// padCells returns cells sized to exactly width.
func padCells(cells []string, width int) []string {
	if len(cells) == width {
		return cells
	}
	out := make([]string, width)
	copy(out, cells)
	return out
}

func declarationOrDefault(s string) string {
	if s == "" {
		return DefaultDeclaration
	}
	return s
}

func signatureLabels(meta InvoiceMeta) []string {
	signer := meta.Company.Name
	if signer == "" {
		signer = meta.Client.Name
	}
	authorised := "Authorised Signatory"
	if signer != "" {
		authorised = fmt.Sprintf("For %s\nAuthorised Signatory", signer)
	}
	return []string{"Customer's Signature", "Checked By", authorised}
}
