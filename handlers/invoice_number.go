package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"invoiceprint/config"
	"invoiceprint/services"
)

// HandleNextInvoiceNumber returns the next free invoice number for the
// current fiscal year. A "prefix" form value overrides the configured one.
// Route: POST /invoices/number
func HandleNextInvoiceNumber(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		prefix := strings.TrimSpace(e.Request.FormValue("prefix"))
		if prefix == "" {
			prefix = cfg.Invoice.NumberPrefix
		}

		number, err := services.GenerateInvoiceNumber(app, prefix, time.Now())
		if err != nil {
			log.Printf("invoice_number: %v", err)
			return e.String(http.StatusBadRequest, "Could not generate invoice number")
		}
		return e.JSON(http.StatusOK, map[string]string{"invoiceNumber": number})
	}
}
