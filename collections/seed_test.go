package collections_test

import (
	"testing"

	"invoiceprint/collections"
	"invoiceprint/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	clientsCol, _ := app.FindCollectionByNameOrId("clients")
	clients, err := app.FindAllRecords(clientsCol)
	if err != nil {
		t.Fatalf("query clients error: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}

	invoicesCol, _ := app.FindCollectionByNameOrId("invoices")
	invoices, _ := app.FindAllRecords(invoicesCol)
	if len(invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(invoices))
	}
	inv := invoices[0]
	if inv.GetString("client") != clients[0].Id {
		t.Errorf("invoice client = %q, want %q", inv.GetString("client"), clients[0].Id)
	}

	var rows [][]string
	if err := inv.UnmarshalJSONField("rows", &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if len(rows) != 25 {
		t.Errorf("expected 25 seeded rows, got %d", len(rows))
	}
	if inv.GetInt("rows_per_page") != 12 {
		t.Errorf("rows_per_page = %d, want 12", inv.GetInt("rows_per_page"))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	invoicesCol, _ := app.FindCollectionByNameOrId("invoices")
	invoices, _ := app.FindAllRecords(invoicesCol)
	if len(invoices) != 1 {
		t.Errorf("expected 1 invoice after seeding twice, got %d", len(invoices))
	}
}
