package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the clients and invoices
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	clients := ensureCollection(app, "clients", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "gstin", Required: false})
		c.Fields.Add(&core.TextField{Name: "state", Required: false})
		c.Fields.Add(&core.TextField{Name: "state_code", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "address_line_1", Required: false})
		c.Fields.Add(&core.TextField{Name: "address_line_2", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "pin_code", Required: false})
		// Shipping address; blank means ship to the billing address.
		c.Fields.Add(&core.TextField{Name: "ship_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "ship_address_line_1", Required: false})
		c.Fields.Add(&core.TextField{Name: "ship_address_line_2", Required: false})
		c.Fields.Add(&core.TextField{Name: "ship_city", Required: false})
		c.Fields.Add(&core.TextField{Name: "ship_state", Required: false})
		c.Fields.Add(&core.TextField{Name: "ship_pin_code", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "invoices", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "client",
			Required:      false,
			CollectionId:  clients.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "invoice_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "invoice_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "transport", Required: false})
		c.Fields.Add(&core.TextField{Name: "vehicle_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "eway_bill", Required: false})
		c.Fields.Add(&core.TextField{Name: "irn", Required: false})
		c.Fields.Add(&core.TextField{Name: "ack_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "ack_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "payment_terms", Required: false})
		c.Fields.Add(&core.TextField{Name: "po_reference", Required: false})
		c.Fields.Add(&core.TextField{Name: "freight", Required: false})

		// Table contents as JSON: headers []string, rows [][]string,
		// alignments []string, total_columns []string.
		c.Fields.Add(&core.JSONField{Name: "headers", Required: false})
		c.Fields.Add(&core.JSONField{Name: "rows", Required: false, MaxSize: 5 << 20})
		c.Fields.Add(&core.JSONField{Name: "alignments", Required: false})
		c.Fields.Add(&core.JSONField{Name: "total_columns", Required: false})
		c.Fields.Add(&core.TextField{Name: "item_column", Required: false})
		c.Fields.Add(&core.NumberField{Name: "rows_per_page", Required: false, OnlyInt: true})

		c.Fields.Add(&core.TextField{Name: "bank_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "bank_account_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "bank_ifsc", Required: false})
		c.Fields.Add(&core.TextField{Name: "bank_branch", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
