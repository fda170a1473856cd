package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"invoiceprint/collections"
	"invoiceprint/config"
	"invoiceprint/handlers"
	"invoiceprint/services"
)

func main() {
	cfg := config.Load()
	app := pocketbase.New()

	services.BindClientValidation(app)

	// Create collections, seed demo data and backfill alignments on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateInvoiceDefaults(app); err != nil {
			log.Printf("Warning: invoice defaults migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Print & export ───────────────────────────────────────
		se.Router.GET("/invoices/{id}/print", handlers.HandleInvoicePrint(app, cfg))
		se.Router.GET("/invoices/{id}/export/pdf", handlers.HandleInvoiceExportPDF(app, cfg))
		se.Router.GET("/invoices/{id}/export/xlsx", handlers.HandleInvoiceExportExcel(app, cfg))
		se.Router.GET("/api/invoices/{id}/pages", handlers.HandleInvoicePages(app, cfg))

		// ── Import & numbering ───────────────────────────────────
		se.Router.GET("/invoices/import/template", handlers.HandleImportTemplate())
		se.Router.POST("/invoices/import", handlers.HandleInvoiceImport(app, cfg))
		se.Router.POST("/invoices/number", handlers.HandleNextInvoiceNumber(app, cfg))

		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/api/health")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
