package views

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"invoiceprint/services"
)

func composePages(t *testing.T, rows int) []services.PrintPage {
	t.Helper()
	doc := services.InvoiceDocument{
		Table: services.TableSpec{
			Headers:    []string{"S.No", "Item Description", "Quantity", "Price"},
			Alignments: []services.Alignment{services.AlignCenter, services.AlignLeft, services.AlignRight, services.AlignRight},
		},
		Meta: services.InvoiceMeta{
			Company: services.CompanyInfo{Name: "Fervid Smart Solutions"},
			Client:  services.ClientInfo{Name: "Acme <Corp>"},
			Invoice: services.InvoiceInfo{Number: "INV/25-26/007", Date: "2025-07-01", Transport: "Road"},
			Bank:    services.BankInfo{BankName: "HDFC Bank", IFSC: "HDFC0000123"},
		},
	}
	for i := 0; i < rows; i++ {
		doc.Table.Rows = append(doc.Table.Rows, []string{fmt.Sprint(i + 1), fmt.Sprintf("Widget %d", i+1), "2", "50"})
	}
	pages, err := services.Compose(doc, services.DefaultLayoutOptions())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return pages
}

func render(t *testing.T, pages []services.PrintPage) string {
	t.Helper()
	var buf bytes.Buffer
	if err := InvoicePrint("Invoice INV/25-26/007", pages).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestInvoicePrint_OneSectionPerPage(t *testing.T) {
	tests := []struct {
		rows      int
		wantPages int
	}{
		{rows: 1, wantPages: 1},
		{rows: 12, wantPages: 1},
		{rows: 13, wantPages: 2},
		{rows: 25, wantPages: 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows", tt.rows), func(t *testing.T) {
			html := render(t, composePages(t, tt.rows))
			if got := strings.Count(html, `<section class="sheet"`); got != tt.wantPages {
				t.Errorf("got %d page sections, want %d", got, tt.wantPages)
			}
			if got := strings.Count(html, "Amount in Words"); got != 1 {
				t.Errorf("footer rendered %d times, want once", got)
			}
			if got := strings.Count(html, "INV/25-26/007"); got < tt.wantPages {
				t.Errorf("invoice number appears %d times, want at least once per page", got)
			}
			last := fmt.Sprintf("Page %d of %d", tt.wantPages, tt.wantPages)
			if !strings.Contains(html, last) {
				t.Errorf("missing %q", last)
			}
		})
	}
}

func TestInvoicePrint_FixedRowsPerPage(t *testing.T) {
	html := render(t, composePages(t, 3))
	body := html[strings.Index(html, "<tbody>"):strings.Index(html, "</tbody>")]
	if got := strings.Count(body, `<tr style=`); got != 12 {
		t.Errorf("got %d item rows, want 12", got)
	}
	if !strings.Contains(body, `<tr class="totals">`) {
		t.Error("totals row missing")
	}
}

func TestInvoicePrint_AlignmentAndDerivedColumn(t *testing.T) {
	html := render(t, composePages(t, 1))
	for _, want := range []string{
		`<th class="left" style="width:30%">Item Description</th>`,
		`<th class="right">Total</th>`,
		`<td class="right">100.00</td>`,
		"CGST @ 9%",
		"One Hundred And Eighteen Rupees Only",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestInvoicePrint_EscapesText(t *testing.T) {
	html := render(t, composePages(t, 1))
	if strings.Contains(html, "Acme <Corp>") {
		t.Error("client name was not escaped")
	}
	if !strings.Contains(html, "Acme &lt;Corp&gt;") {
		t.Error("escaped client name missing")
	}
}

func TestInvoicePrint_NoPages(t *testing.T) {
	html := render(t, []services.PrintPage{})
	if !strings.Contains(html, "no rows to print") {
		t.Error("expected empty-invoice notice")
	}
	if strings.Contains(html, `<section class="sheet"`) {
		t.Error("expected no page sections")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0.09, "9%"},
		{0.025, "2.5%"},
		{0.14, "14%"},
		{0, "0%"},
	}
	for _, tt := range tests {
		if got := percent(tt.rate); got != tt.want {
			t.Errorf("percent(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestInvoicePrint_WholeQuantityHasNoDecimals(t *testing.T) {
	html := render(t, composePages(t, 1))
	want := `<td class="right">Total Quantity</td><td class="right">2</td>`
	if !strings.Contains(html, want) {
		t.Errorf("rendered HTML missing %q", want)
	}
}

func TestInvoicePrint_TotalsRowOnEveryPage(t *testing.T) {
	html := render(t, composePages(t, 25))
	if got := strings.Count(html, `<tr class="totals">`); got != 3 {
		t.Errorf("got %d totals rows, want one per page (3)", got)
	}
}
