package services

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCompose_TwentyFiveRowsThreePages(t *testing.T) {
	doc := InvoiceDocument{Table: goodsTable(25), Meta: sampleMeta()}
	opts := DefaultLayoutOptions()
	opts.RowsPerPage = 12

	pages, err := Compose(doc, opts)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}

	wantReal := []int{12, 12, 1}
	for i, p := range pages {
		if p.Number != i+1 || p.Count != 3 {
			t.Errorf("page %d numbered %d of %d", i, p.Number, p.Count)
		}
		if len(p.Rows) != 12 {
			t.Errorf("page %d has %d rows, want 12", p.Number, len(p.Rows))
		}
		if p.RealRows() != wantReal[i] {
			t.Errorf("page %d has %d real rows, want %d", p.Number, p.RealRows(), wantReal[i])
		}
		if fillers := len(p.Rows) - p.RealRows(); fillers != 12-wantReal[i] {
			t.Errorf("page %d has %d filler rows, want %d", p.Number, fillers, 12-wantReal[i])
		}
		if p.IsLast() != (i == 2) {
			t.Errorf("page %d IsLast() = %v", p.Number, p.IsLast())
		}
	}

	footer := pages[2].Footer
	if footer.Aggregates.TotalAmount != 2500 {
		t.Errorf("TotalAmount = %v, want 2500", footer.Aggregates.TotalAmount)
	}
	if footer.Aggregates.RoundedTotal != 2950 {
		t.Errorf("RoundedTotal = %d, want 2950", footer.Aggregates.RoundedTotal)
	}
	if footer.Bank != doc.Meta.Bank || footer.Freight != "Paid" || footer.Transport != "Road" {
		t.Errorf("footer metadata not carried: %+v", footer)
	}
	if footer.Declaration != DefaultDeclaration {
		t.Errorf("Declaration = %q", footer.Declaration)
	}
}

func TestCompose_RoundTripRealRows(t *testing.T) {
	spec := goodsTable(30)
	opts := DefaultLayoutOptions()
	opts.RowsPerPage = 8

	pages, err := Compose(InvoiceDocument{Table: spec}, opts)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	var got []string
	for _, p := range pages {
		for _, r := range p.Rows {
			if !r.Filler {
				got = append(got, r.Cells[0])
			}
		}
	}
	if len(got) != 30 {
		t.Fatalf("expected 30 real rows, got %d", len(got))
	}
	for i, sn := range got {
		if sn != spec.Rows[i][0] {
			t.Errorf("real row %d has S.No %q, want %q", i, sn, spec.Rows[i][0])
		}
	}
}

func TestCompose_HeaderRepeatsOnEveryPage(t *testing.T) {
	pages, err := Compose(InvoiceDocument{Table: goodsTable(20), Meta: sampleMeta()}, DefaultLayoutOptions())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	first := pages[0].Header
	for _, p := range pages[1:] {
		if !reflect.DeepEqual(p.Header, first) {
			t.Errorf("page %d header differs from page 1", p.Number)
		}
	}

	cols := first.Columns
	last := cols[len(cols)-1]
	if last.Header != DerivedTotalHeader || !last.Derived || last.Align != AlignRight {
		t.Errorf("derived column = %+v", last)
	}
	if !cols[1].Item || cols[1].Align != AlignLeft {
		t.Errorf("item column = %+v", cols[1])
	}
}

func TestCompose_EmptyBlankPage(t *testing.T) {
	doc := InvoiceDocument{Table: TableSpec{Headers: []string{"Item", "Quantity", "Price"}}, Meta: sampleMeta()}
	opts := DefaultLayoutOptions()
	opts.Empty = EmptyBlankPage

	pages, err := Compose(doc, opts)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	p := pages[0]
	if p.RealRows() != 0 || len(p.Rows) != DefaultRowsPerPage {
		t.Errorf("blank page has %d real of %d rows", p.RealRows(), len(p.Rows))
	}
	if p.Footer == nil {
		t.Fatal("blank page must carry the footer")
	}
	if p.Footer.Aggregates.RoundedTotal != 0 || p.Footer.Aggregates.GrandTotalInWords != "Zero Rupees Only" {
		t.Errorf("aggregates = %+v", p.Footer.Aggregates)
	}
}

func TestCompose_EmptyNoPages(t *testing.T) {
	opts := DefaultLayoutOptions()
	opts.Empty = EmptyNoPages

	pages, err := Compose(InvoiceDocument{Table: TableSpec{Headers: []string{"Item"}}}, opts)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if pages == nil || len(pages) != 0 {
		t.Errorf("expected an empty, non-nil page list, got %v", pages)
	}
}

func TestCompose_InlineTotalsRow(t *testing.T) {
	spec := TableSpec{
		Headers:      []string{"S.No", "Item Name", "Qty", "Rate", "CGST", "SGST", "Sub Total"},
		TotalColumns: []string{"CGST", "SGST", "Sub Total"},
		Rows: [][]string{
			{"1", "Bolt", "2", "50", "9", "9", "118"},
			{"2", "Nut", "1", "50", "4.5", "4.5", "59"},
		},
	}
	opts := DefaultLayoutOptions()
	opts.RowsPerPage = 1

	pages, err := Compose(InvoiceDocument{Table: spec}, opts)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	// Every page repeats the whole-document totals, not a page subtotal.
	want := []string{"", "", "", "Total", "13.50", "13.50", "177.00"}
	for _, p := range pages {
		if !reflect.DeepEqual(p.Totals, want) {
			t.Errorf("page %d Totals = %q, want %q", p.Number, p.Totals, want)
		}
	}
	if pages[0].Footer != nil {
		t.Error("first page must not carry the footer")
	}
}

func TestCompose_LongRowKeepsDerivedTotalInColumn(t *testing.T) {
	spec := TableSpec{
		Headers: []string{"Item", "Quantity", "Price"},
		Rows:    [][]string{{"Pen", "2", "5", "note"}},
	}
	pages, err := Compose(InvoiceDocument{Table: spec}, DefaultLayoutOptions())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	cols := pages[0].Header.Columns
	if len(cols) != 4 || cols[3].Header != DerivedTotalHeader {
		t.Fatalf("columns = %+v, want derived Total as 4th column", cols)
	}
	cells := pages[0].Rows[0].Cells
	want := []string{"Pen", "2", "5", "10.00"}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("cells = %q, want %q", cells, want)
	}
}

func TestCompose_NoLabelPositionForLeadingTotalColumn(t *testing.T) {
	spec := TableSpec{
		Headers:      []string{"Amount Paid", "Remarks"},
		TotalColumns: []string{"Amount Paid"},
		Rows:         [][]string{{"10", "x"}},
	}
	pages, err := Compose(InvoiceDocument{Table: spec}, DefaultLayoutOptions())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if pages[0].Totals != nil {
		t.Errorf("Totals = %v, want none", pages[0].Totals)
	}
	if pages[0].Footer.Aggregates.PerColumnTotals["Amount Paid"] != 10 {
		t.Errorf("PerColumnTotals = %v", pages[0].Footer.Aggregates.PerColumnTotals)
	}
}

func TestCompose_ExplicitRoles(t *testing.T) {
	spec := TableSpec{
		Headers: []string{"Item", "Qty", "Rate"},
		Rows:    [][]string{{"Bolt", "3", "10"}},
	}
	roles, err := NewColumnRoles(len(spec.Headers), map[ColumnRole]int{RoleQuantity: 1, RolePrice: 2})
	if err != nil {
		t.Fatalf("NewColumnRoles() error = %v", err)
	}
	opts := DefaultLayoutOptions()
	opts.Roles = &roles

	pages, err := Compose(InvoiceDocument{Table: spec}, opts)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if got := pages[0].Rows[0].Cells; got[len(got)-1] != "30.00" {
		t.Errorf("derived cell = %q, want 30.00", got[len(got)-1])
	}

	bad := ColumnRoles{Quantity: 5, Price: -1, Amount: -1, Total: -1}
	opts.Roles = &bad
	if _, err := Compose(InvoiceDocument{Table: spec}, opts); !errors.Is(err, ErrInvalidColumnRoles) {
		t.Errorf("Compose() error = %v, want ErrInvalidColumnRoles", err)
	}
}

func TestCompose_RowLineEstimate(t *testing.T) {
	spec := TableSpec{
		Headers: []string{"S.No", "Item Name"},
		Rows: [][]string{
			{"1", "Bolt"},
			{"2", strings.Repeat("x", 45)},
			{"3", strings.Repeat("x", 200)},
		},
	}
	pages, err := Compose(InvoiceDocument{Table: spec}, DefaultLayoutOptions())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		if got := pages[0].Rows[i].Lines; got != want {
			t.Errorf("row %d Lines = %d, want %d", i, got, want)
		}
	}
}

func TestEstimateLines(t *testing.T) {
	tests := []struct {
		input  string
		expect int
	}{
		{"", 1},
		{strings.Repeat("a", 30), 1},
		{strings.Repeat("a", 31), 2},
		{strings.Repeat("a", 60), 2},
		{strings.Repeat("a", 61), 3},
		{strings.Repeat("a", 500), 3},
		{strings.Repeat("é", 30), 1},
	}
	for _, tt := range tests {
		if got := EstimateLines(tt.input); got != tt.expect {
			t.Errorf("EstimateLines(%d chars) = %d, want %d", len(tt.input), got, tt.expect)
		}
	}
}

func TestSignatureLabels(t *testing.T) {
	got := signatureLabels(sampleMeta())
	want := []string{"Customer's Signature", "Checked By", "For Fervid Smart Solutions\nAuthorised Signatory"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("signatureLabels() = %q, want %q", got, want)
	}

	if got := signatureLabels(InvoiceMeta{}); got[2] != "Authorised Signatory" {
		t.Errorf("unnamed signatory = %q", got[2])
	}
}
