package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type seedItem struct {
	description string
	hsn         string
	qty         string
	uom         string
	price       string
}

// seedItems are the 25 demo line items; enough to spill onto a third page at
// the default of 12 rows per page.
var seedItems = []seedItem{
	{"Interactive Flat Panel 75\" 4K", "8528", "2", "Nos", "1,45,000"},
	{"Wall Mount Bracket for IFP", "8302", "2", "Nos", "3,500"},
	{"OPS Module i5 / 8GB / 256GB SSD", "8471", "2", "Nos", "38,000"},
	{"Document Visualiser 13MP", "8525", "2", "Nos", "18,500"},
	{"Wireless Presentation System", "8517", "2", "Set", "22,000"},
	{"Ceiling Speaker 6.5\" 20W", "8518", "8", "Nos", "2,400"},
	{"Mixer Amplifier 120W", "8518", "2", "Nos", "14,500"},
	{"Gooseneck Microphone", "8518", "2", "Nos", "4,200"},
	{"Wireless Handheld Microphone", "8518", "2", "Set", "9,800"},
	{"HDMI Cable 10m", "8544", "4", "Nos", "1,150"},
	{"CAT6 Cable (305m box)", "8544", "3", "Box", "9,200"},
	{"RJ45 Connectors (pack of 100)", "8536", "2", "Box", "850"},
	{"PVC Conduit 25mm", "3917", "120", "Rmt", "38"},
	{"Modular Switch Board 6M", "8537", "6", "Nos", "640"},
	{"UPS 2kVA Online", "8504", "2", "Nos", "32,500"},
	{"Network Switch 24-port PoE", "8517", "1", "Nos", "41,000"},
	{"Wi-Fi Access Point (ceiling)", "8517", "4", "Nos", "11,200"},
	{"Rack 9U Wall Mount", "9403", "1", "Nos", "7,800"},
	{"Student Desk Dual Seater", "9403", "30", "Nos", "6,400"},
	{"Teacher Table with Drawer", "9403", "2", "Nos", "12,500"},
	{"Ergonomic Chair", "9401", "2", "Nos", "8,900"},
	{"Green Chalk Board 8x4", "9610", "2", "Nos", "5,200"},
	{"LED Panel Light 36W", "9405", "12", "Nos", "1,450"},
	{"Installation & Commissioning", "9987", "1", "Lot", "35,000"},
	{"Training (2 days on-site)", "9992", "1", "Lot", "12,000"},
}

// Seed inserts one demo client and a 25-row invoice. It is safe to call on
// every startup because it returns early if any client records already exist.
func Seed(app *pocketbase.PocketBase) error {
	clientsCol, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return fmt.Errorf("seed: could not find clients collection: %w", err)
	}
	existing, err := app.FindAllRecords(clientsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query clients: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: clients collection is empty – inserting seed data …")

	invoicesCol, err := app.FindCollectionByNameOrId("invoices")
	if err != nil {
		return fmt.Errorf("seed: could not find invoices collection: %w", err)
	}

	client := core.NewRecord(clientsCol)
	client.Set("name", "Odisha Adarsha Vidyalaya Sangathan")
	client.Set("gstin", "21AAATO2368E1ZB")
	client.Set("state", "Odisha")
	client.Set("state_code", "21")
	client.Set("contact_name", "Suresh Mohanty")
	client.Set("phone", "9437012345")
	client.Set("email", "procurement@oavs.example.in")
	client.Set("address_line_1", "N-1/9, Nayapalli")
	client.Set("address_line_2", "Near Doordarshan Kendra")
	client.Set("city", "Bhubaneswar")
	client.Set("pin_code", "751015")
	client.Set("ship_name", "OAVS Khordha Campus")
	client.Set("ship_address_line_1", "Plot 14, Jatni Road")
	client.Set("ship_city", "Khordha")
	client.Set("ship_state", "Odisha")
	client.Set("ship_pin_code", "752055")
	if err := app.Save(client); err != nil {
		return fmt.Errorf("seed: save client: %w", err)
	}

	rows := make([][]string, len(seedItems))
	for i, it := range seedItems {
		rows[i] = []string{fmt.Sprintf("%d", i+1), it.description, it.hsn, it.qty, it.uom, it.price}
	}

	invoice := core.NewRecord(invoicesCol)
	invoice.Set("client", client.Id)
	invoice.Set("invoice_number", "INV/25-26/001")
	invoice.Set("invoice_date", "2025-06-02")
	invoice.Set("transport", "By Road")
	invoice.Set("vehicle_no", "OD02AB4521")
	invoice.Set("eway_bill", "381004219876")
	invoice.Set("payment_terms", "30 days from delivery")
	invoice.Set("po_reference", "OAVS/SC/2025/114")
	invoice.Set("freight", "Paid")
	invoice.Set("headers", []string{"S.No", "Item Description", "HSN", "Quantity", "Unit", "Price"})
	invoice.Set("rows", rows)
	invoice.Set("alignments", []string{"center", "left", "center", "right", "center", "right"})
	invoice.Set("rows_per_page", 12)
	invoice.Set("bank_name", "State Bank of India")
	invoice.Set("bank_account_no", "39012345678")
	invoice.Set("bank_ifsc", "SBIN0010234")
	invoice.Set("bank_branch", "Saheed Nagar, Bhubaneswar")
	if err := app.Save(invoice); err != nil {
		return fmt.Errorf("seed: save invoice: %w", err)
	}

	log.Printf("seed: created client %s and invoice %s with %d rows", client.Id, invoice.Id, len(rows))
	return nil
}
