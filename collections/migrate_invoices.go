package collections

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
)

// MigrateInvoiceDefaults backfills alignments on invoices saved before they
// existed: one "center" per header. rows_per_page is left untouched so a zero
// keeps following the configured default. Safe to call on every startup.
func MigrateInvoiceDefaults(app *pocketbase.PocketBase) error {
	invoicesCol, err := app.FindCollectionByNameOrId("invoices")
	if err != nil {
		return fmt.Errorf("migrate: could not find invoices collection: %w", err)
	}

	invoices, err := app.FindAllRecords(invoicesCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query invoices: %w", err)
	}

	updated := 0
	for _, inv := range invoices {
		changed := false

		if raw := strings.TrimSpace(inv.GetString("alignments")); raw == "" || raw == "null" || raw == "[]" {
			var headers []string
			if h := strings.TrimSpace(inv.GetString("headers")); h != "" && h != "null" {
				if err := json.Unmarshal([]byte(h), &headers); err != nil {
					log.Printf("migrate: invoice %s has unreadable headers: %v\n", inv.Id, err)
				}
			}
			if len(headers) > 0 {
				alignments := make([]string, len(headers))
				for i := range alignments {
					alignments[i] = "center"
				}
				inv.Set("alignments", alignments)
				changed = true
			}
		}

		if !changed {
			continue
		}
		if err := app.Save(inv); err != nil {
			log.Printf("migrate: failed to update invoice %s: %v\n", inv.Id, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("migrate: backfilled alignments on %d invoice(s).\n", updated)
	}
	return nil
}
