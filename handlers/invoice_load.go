package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"invoiceprint/config"
	"invoiceprint/services"
)

// invoiceError carries the HTTP status and user-facing message for a failed
// invoice lookup or composition.
type invoiceError struct {
	status int
	msg    string
	err    error
}

func (e *invoiceError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *invoiceError) Unwrap() error { return e.err }

// composeInvoice loads the invoice named by the "id" path value and runs it
// through the print pipeline. The page capacity comes from ?rows=N, then the
// invoice record, then configuration.
func composeInvoice(app *pocketbase.PocketBase, cfg *config.Config, e *core.RequestEvent) (*services.InvoiceDocument, []services.PrintPage, error) {
	id := e.Request.PathValue("id")
	if id == "" {
		return nil, nil, &invoiceError{status: http.StatusBadRequest, msg: "Missing invoice ID"}
	}

	override := 0
	if raw := e.Request.URL.Query().Get("rows"); raw != "" {
		n, err := cast.ToIntE(raw)
		if err != nil || n < 1 {
			return nil, nil, &invoiceError{status: http.StatusBadRequest, msg: "Invalid rows parameter", err: err}
		}
		override = n
	}

	if _, err := app.FindRecordById("invoices", id); err != nil {
		return nil, nil, &invoiceError{status: http.StatusNotFound, msg: "Invoice not found", err: err}
	}

	doc, err := services.BuildInvoiceDocument(app, id, cfg.CompanyInfo(), cfg.Logo())
	if err != nil {
		return nil, nil, &invoiceError{status: http.StatusInternalServerError, msg: "Failed to build invoice data", err: err}
	}

	opts := cfg.LayoutOptions()
	opts.RowsPerPage = services.RowsPerPageFor(app, id, opts.RowsPerPage)
	if override > 0 {
		opts.RowsPerPage = override
	}

	pages, err := services.Compose(*doc, opts)
	if err != nil {
		return nil, nil, &invoiceError{status: http.StatusInternalServerError, msg: "Failed to compose invoice pages", err: err}
	}
	return doc, pages, nil
}

// respondInvoiceError logs err under component and writes its status and
// message.
func respondInvoiceError(e *core.RequestEvent, component string, err error) error {
	var ie *invoiceError
	if !errors.As(err, &ie) {
		ie = &invoiceError{status: http.StatusInternalServerError, msg: "Internal error", err: err}
	}
	log.Printf("%s: %s %s: %v", component, e.Request.Method, e.Request.URL.Path, ie)
	return e.String(ie.status, ie.msg)
}
