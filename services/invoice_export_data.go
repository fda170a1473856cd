package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// BuildInvoiceDocument assembles the print input for an invoice record: the
// stored table (headers, rows, alignments, total columns) plus client, address,
// transport and bank metadata. A missing client is logged and left blank.
func BuildInvoiceDocument(app *pocketbase.PocketBase, invoiceID string, company CompanyInfo, logo *Logo) (*InvoiceDocument, error) {
	inv, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}

	table, err := tableSpecFromRecord(inv)
	if err != nil {
		return nil, err
	}

	meta := InvoiceMeta{
		Company: company,
		Invoice: InvoiceInfo{
			Number:       inv.GetString("invoice_number"),
			Date:         inv.GetString("invoice_date"),
			Transport:    inv.GetString("transport"),
			VehicleNo:    inv.GetString("vehicle_no"),
			EWayBill:     inv.GetString("eway_bill"),
			PaymentTerms: inv.GetString("payment_terms"),
			POReference:  inv.GetString("po_reference"),
			IRN:          inv.GetString("irn"),
			AckNo:        inv.GetString("ack_no"),
			AckDate:      inv.GetString("ack_date"),
		},
		Bank: BankInfo{
			BankName:  inv.GetString("bank_name"),
			AccountNo: inv.GetString("bank_account_no"),
			IFSC:      inv.GetString("bank_ifsc"),
			Branch:    inv.GetString("bank_branch"),
		},
		Freight:      inv.GetString("freight"),
		CustomerName: inv.GetString("customer_name"),
		Logo:         logo,
	}

	if clientID := inv.GetString("client"); clientID != "" {
		c, err := app.FindRecordById("clients", clientID)
		if err != nil {
			log.Printf("invoice_export: could not find client %s: %v", clientID, err)
		} else {
			meta.Client = ClientInfo{
				Name:        c.GetString("name"),
				GSTIN:       c.GetString("gstin"),
				State:       c.GetString("state"),
				ContactName: c.GetString("contact_name"),
				Phone:       c.GetString("phone"),
				Email:       c.GetString("email"),
			}
			meta.BillAddress = buildClientAddress(c, "")
			meta.ShipAddress = buildClientAddress(c, "ship_")
			if meta.ShipAddress.Lines == "" {
				meta.ShipAddress = meta.BillAddress
			}
		}
	}
	if meta.CustomerName == "" {
		meta.CustomerName = meta.Client.Name
	}

	return &InvoiceDocument{Table: table, Meta: meta}, nil
}

// RowsPerPageFor returns the invoice's own page capacity, or fallback when
// the record leaves it unset.
func RowsPerPageFor(app *pocketbase.PocketBase, invoiceID string, fallback int) int {
	inv, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return fallback
	}
	if n := inv.GetInt("rows_per_page"); n > 0 {
		return n
	}
	return fallback
}

// tableSpecFromRecord decodes the JSON table fields of an invoice record.
func tableSpecFromRecord(inv *core.Record) (TableSpec, error) {
	var spec TableSpec

	if err := decodeJSONField(inv, "headers", &spec.Headers); err != nil {
		return TableSpec{}, fmt.Errorf("invoice %s: decode headers: %w", inv.Id, err)
	}
	if err := decodeJSONField(inv, "rows", &spec.Rows); err != nil {
		return TableSpec{}, fmt.Errorf("invoice %s: decode rows: %w", inv.Id, err)
	}

	// Hints are optional; a malformed hint is logged and ignored.
	var alignments []string
	if err := decodeJSONField(inv, "alignments", &alignments); err != nil {
		log.Printf("invoice_export: invoice %s has unreadable alignments: %v", inv.Id, err)
	}
	for _, a := range alignments {
		spec.Alignments = append(spec.Alignments, ParseAlignment(a))
	}
	if err := decodeJSONField(inv, "total_columns", &spec.TotalColumns); err != nil {
		log.Printf("invoice_export: invoice %s has unreadable total_columns: %v", inv.Id, err)
		spec.TotalColumns = nil
	}
	spec.ItemColumn = inv.GetString("item_column")

	return spec, nil
}

// decodeJSONField unmarshals a JSON record field into dst. Unset and null
// fields leave dst untouched.
func decodeJSONField(r *core.Record, key string, dst any) error {
	raw := strings.TrimSpace(r.GetString(key))
	if raw == "" || raw == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

// buildClientAddress creates an Address from a client record. prefix selects
// the billing ("") or shipping ("ship_") field set.
func buildClientAddress(c *core.Record, prefix string) Address {
	addrParts := []string{}
	if line1 := c.GetString(prefix + "address_line_1"); line1 != "" {
		addrParts = append(addrParts, line1)
	}
	if line2 := c.GetString(prefix + "address_line_2"); line2 != "" {
		addrParts = append(addrParts, line2)
	}
	cityStateParts := []string{}
	if city := c.GetString(prefix + "city"); city != "" {
		cityStateParts = append(cityStateParts, city)
	}
	if state := c.GetString(prefix + "state"); state != "" {
		cityStateParts = append(cityStateParts, state)
	}
	if pin := c.GetString(prefix + "pin_code"); pin != "" {
		cityStateParts = append(cityStateParts, pin)
	}
	if len(cityStateParts) > 0 {
		addrParts = append(addrParts, strings.Join(cityStateParts, ", "))
	}

	name := c.GetString(prefix + "name")
	if name == "" {
		name = c.GetString("name")
	}

	return Address{
		Name:      name,
		Lines:     strings.Join(addrParts, "\n"),
		GSTIN:     c.GetString("gstin"),
		State:     c.GetString(prefix + "state"),
		StateCode: c.GetString("state_code"),
		Phone:     c.GetString("phone"),
	}
}
