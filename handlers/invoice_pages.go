package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"invoiceprint/config"
	"invoiceprint/services"
)

// invoicePagesResponse is the JSON body of the pages API.
type invoicePagesResponse struct {
	InvoiceID string               `json:"invoiceId"`
	PageCount int                  `json:"pageCount"`
	Pages     []services.PrintPage `json:"pages"`
}

// HandleInvoicePages returns the composed pages of an invoice as JSON.
// Route: GET /api/invoices/{id}/pages
func HandleInvoicePages(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, pages, err := composeInvoice(app, cfg, e)
		if err != nil {
			return respondInvoiceError(e, "invoice_pages", err)
		}
		return e.JSON(http.StatusOK, invoicePagesResponse{
			InvoiceID: e.Request.PathValue("id"),
			PageCount: len(pages),
			Pages:     pages,
		})
	}
}
