package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"invoiceprint/config"
	"invoiceprint/views"
)

// HandleInvoicePrint renders the printable HTML preview of an invoice.
// Route: GET /invoices/{id}/print
func HandleInvoicePrint(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, pages, err := composeInvoice(app, cfg, e)
		if err != nil {
			return respondInvoiceError(e, "invoice_print", err)
		}

		title := fmt.Sprintf("Invoice %s", doc.Meta.Invoice.Number)
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return views.InvoicePrint(title, pages).Render(e.Request.Context(), e.Response)
	}
}
