package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"invoiceprint/config"
	"invoiceprint/services"
)

// sanitizeFilename replaces characters that are unsafe in download file names.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

func invoiceFilename(doc *services.InvoiceDocument, ext string) string {
	name := doc.Meta.Invoice.Number
	if name == "" {
		name = "invoice"
	}
	return fmt.Sprintf("%s.%s", sanitizeFilename(name), ext)
}

func writeDownload(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, err := e.Response.Write(body)
	return err
}

// HandleInvoiceExportPDF returns a handler that generates and downloads the
// paginated invoice as a PDF.
// Route: GET /invoices/{id}/export/pdf
func HandleInvoiceExportPDF(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, pages, err := composeInvoice(app, cfg, e)
		if err != nil {
			return respondInvoiceError(e, "invoice_export", err)
		}
		if len(pages) == 0 {
			return e.String(http.StatusUnprocessableEntity, "Invoice has no rows to export")
		}

		pdfBytes, err := services.GenerateInvoicePDF(pages)
		if err != nil {
			log.Printf("invoice_export: failed to generate PDF for %s: %v", doc.Meta.Invoice.Number, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		return writeDownload(e, "application/pdf", invoiceFilename(doc, "pdf"), pdfBytes)
	}
}

// HandleInvoiceExportExcel returns a handler that generates and downloads the
// paginated invoice as an Excel workbook.
// Route: GET /invoices/{id}/export/xlsx
func HandleInvoiceExportExcel(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, pages, err := composeInvoice(app, cfg, e)
		if err != nil {
			return respondInvoiceError(e, "invoice_export", err)
		}
		if len(pages) == 0 {
			return e.String(http.StatusUnprocessableEntity, "Invoice has no rows to export")
		}

		xlsxBytes, err := services.GenerateInvoiceExcel(pages)
		if err != nil {
			log.Printf("invoice_export: failed to generate Excel for %s: %v", doc.Meta.Invoice.Number, err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		return writeDownload(e,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			invoiceFilename(doc, "xlsx"), xlsxBytes)
	}
}
