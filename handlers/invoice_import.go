package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"invoiceprint/config"
	"invoiceprint/services"
)

const maxImportSize = 10 << 20

type invoiceImportResponse struct {
	ID            string   `json:"id"`
	InvoiceNumber string   `json:"invoiceNumber"`
	Headers       []string `json:"headers"`
	RowCount      int      `json:"rowCount"`
}

// HandleInvoiceImport creates an invoice from an uploaded CSV or XLSX table.
// The first row of the file becomes the headers. Optional form fields:
// client, invoice_number (generated when blank), invoice_date (today when
// blank) and rows_per_page.
// Route: POST /invoices/import
func HandleInvoiceImport(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxImportSize); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		spec, err := services.ParseTableFile(file, header.Filename)
		if err != nil {
			log.Printf("invoice_import: %s: %v", header.Filename, err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		clientID := strings.TrimSpace(e.Request.FormValue("client"))
		if clientID != "" {
			if _, err := app.FindRecordById("clients", clientID); err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Selected client does not exist")
			}
		}

		now := time.Now()
		number := strings.TrimSpace(e.Request.FormValue("invoice_number"))
		if number == "" {
			number, err = services.GenerateInvoiceNumber(app, cfg.Invoice.NumberPrefix, now)
			if err != nil {
				log.Printf("invoice_import: failed to generate invoice number: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Failed to generate invoice number")
			}
		}
		date := strings.TrimSpace(e.Request.FormValue("invoice_date"))
		if date == "" {
			date = now.Format("2006-01-02")
		}

		col, err := app.FindCollectionByNameOrId("invoices")
		if err != nil {
			log.Printf("invoice_import: invoices collection missing: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Invoices collection not found")
		}

		record := core.NewRecord(col)
		record.Set("client", clientID)
		record.Set("invoice_number", number)
		record.Set("invoice_date", date)
		record.Set("headers", spec.Headers)
		record.Set("rows", spec.Rows)
		record.Set("alignments", spec.Alignments)
		record.Set("rows_per_page", e.Request.FormValue("rows_per_page"))
		if err := app.Save(record); err != nil {
			log.Printf("invoice_import: failed to save invoice %s: %v", number, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save invoice")
		}

		log.Printf("invoice_import: created invoice %s (%s) with %d rows from %s",
			number, record.Id, len(spec.Rows), header.Filename)
		SetToast(e, "success", fmt.Sprintf("Imported %d rows into %s", len(spec.Rows), number))

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", fmt.Sprintf("/invoices/%s/print", record.Id))
		}
		return e.JSON(http.StatusCreated, invoiceImportResponse{
			ID:            record.Id,
			InvoiceNumber: number,
			Headers:       spec.Headers,
			RowCount:      len(spec.Rows),
		})
	}
}

// HandleImportTemplate downloads the blank item-table workbook used for
// imports.
// Route: GET /invoices/import/template
func HandleImportTemplate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.GenerateImportTemplate()
		if err != nil {
			log.Printf("import_template: failed to generate template: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}
		return writeDownload(e,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"invoice-items-template.xlsx", data)
	}
}
