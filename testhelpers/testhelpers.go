// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"invoiceprint/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestClient creates a client record with billing and shipping
// addresses and returns it.
func CreateTestClient(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		t.Fatalf("failed to find clients collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("gstin", "27AADCB2230M1ZV")
	record.Set("state", "Maharashtra")
	record.Set("state_code", "27")
	record.Set("contact_name", "Test Contact")
	record.Set("phone", "9876543210")
	record.Set("address_line_1", "123 MG Road")
	record.Set("city", "Mumbai")
	record.Set("pin_code", "400001")
	record.Set("ship_name", name+" Warehouse")
	record.Set("ship_address_line_1", "Plot 7, MIDC")
	record.Set("ship_city", "Pune")
	record.Set("ship_state", "Maharashtra")
	record.Set("ship_pin_code", "411019")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test client: %v", err)
	}

	return record
}

// CreateTestInvoice creates an invoice record holding the given table. An
// empty clientID leaves the invoice without a client.
func CreateTestInvoice(t *testing.T, app *pocketbase.PocketBase, clientID string, headers []string, rows [][]string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("invoices")
	if err != nil {
		t.Fatalf("failed to find invoices collection: %v", err)
	}

	record := core.NewRecord(col)
	if clientID != "" {
		record.Set("client", clientID)
	}
	record.Set("invoice_number", "INV/25-26/001")
	record.Set("invoice_date", "2025-06-01")
	record.Set("transport", "By Road")
	record.Set("headers", headers)
	record.Set("rows", rows)
	record.Set("rows_per_page", 12)
	record.Set("bank_name", "HDFC Bank")
	record.Set("bank_account_no", "50200012345678")
	record.Set("bank_ifsc", "HDFC0000123")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test invoice: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
