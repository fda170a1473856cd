// Package views renders the print preview of composed invoice pages as HTML
// templ components.
package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"invoiceprint/services"
)

const printCSS = `
@page { size: A4; margin: 10mm; }
body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 11px; color: #212529; margin: 0; }
.sheet { width: 190mm; min-height: 277mm; margin: 0 auto 12px; box-sizing: border-box; padding: 4mm; border: 1px solid #ddd; }
.sheet { page-break-after: always; break-after: page; }
.sheet:last-of-type { page-break-after: auto; break-after: auto; }
.head { display: flex; justify-content: space-between; align-items: flex-start; }
.head h1 { font-size: 18px; margin: 0; }
.title { font-size: 16px; font-weight: bold; text-align: right; }
.muted { color: #646464; }
.logo { max-height: 48px; margin-right: 8px; }
.addr { display: flex; gap: 8px; margin: 6px 0; }
.addr > div { flex: 1; border: 1px solid #ccc; padding: 4px; white-space: pre-line; }
.addr .label { background: #f5f3ef; font-weight: bold; font-size: 9px; color: #646464; margin: -4px -4px 4px; padding: 2px 4px; }
table.items { width: 100%; border-collapse: collapse; table-layout: fixed; }
table.items th { background: #212529; color: #fff; font-size: 10px; padding: 3px; }
table.items td { border: 1px solid #c8c8c8; padding: 2px 3px; vertical-align: top; overflow-wrap: anywhere; }
table.items tr.totals td { background: #f5f5f5; font-weight: bold; }
.left { text-align: left; } .center { text-align: center; } .right { text-align: right; }
.summary { width: 45%; margin-left: auto; border-collapse: collapse; margin-top: 6px; }
.summary td { padding: 2px 6px; background: #f5f5f5; }
.summary tr.grand td { background: #212529; color: #fff; font-weight: bold; }
.words { font-weight: bold; font-style: italic; margin: 6px 0; }
.signs { display: flex; justify-content: space-between; margin-top: 40px; }
.signs div { flex: 1; text-align: center; border-top: 1px solid #999; margin: 0 12px; padding-top: 2px; white-space: pre-line; font-weight: bold; color: #646464; }
.pageno { text-align: right; font-size: 9px; color: #787878; margin-top: 4px; }
@media print { .sheet { border: none; margin: 0; } .noprint { display: none; } }
`

// columnAttrs aligns a header cell; the item column gets the widest share.
func columnAttrs(c services.PageColumn) templ.Attributes {
	attrs := templ.Attributes{"class": string(c.Align)}
	if c.Item {
		attrs["style"] = "width:30%"
	}
	return attrs
}

// rowAttrs sizes a body row to its estimated line count.
func rowAttrs(r services.PrintRow) templ.Attributes {
	return templ.Attributes{"style": fmt.Sprintf("height:%.1fem", float64(r.Lines)*1.4)}
}

func rowCell(r services.PrintRow, i int) string {
	if r.Filler {
		return ""
	}
	return services.CellAt(r.Cells, i)
}

type party struct {
	label string
	addr  services.Address
}

// partyAddresses fills the bill-to block from the client when the invoice
// has no explicit billing address, and ships to the billed party by default.
func partyAddresses(meta services.InvoiceMeta) []party {
	bill, ship := meta.BillAddress, meta.ShipAddress
	if bill.Name == "" {
		bill.Name = meta.Client.Name
	}
	if bill.GSTIN == "" {
		bill.GSTIN = meta.Client.GSTIN
	}
	if ship.Name == "" {
		ship.Name = bill.Name
	}
	return []party{{"BILL TO", bill}, {"SHIP TO", ship}}
}

func companyLine(c services.CompanyInfo) string {
	return joinNonEmpty(" | ", c.Address, field("GSTIN", c.GSTIN), c.Email)
}

func irnLine(inv services.InvoiceInfo) string {
	return joinNonEmpty(" | ", field("IRN", inv.IRN), field("Ack No", inv.AckNo), field("Ack Date", inv.AckDate))
}

func dispatchLine(inv services.InvoiceInfo) string {
	return joinNonEmpty(" | ",
		field("Transport", inv.Transport), field("Vehicle No", inv.VehicleNo),
		field("E-Way Bill", inv.EWayBill), field("PO Reference", inv.POReference),
		field("Payment Terms", inv.PaymentTerms))
}

func bankLine(b services.BankInfo) string {
	return joinNonEmpty(" | ", field("Bank", b.BankName), field("A/c No", b.AccountNo),
		field("IFSC", b.IFSC), field("Branch", b.Branch))
}

type summaryLine struct {
	label string
	value string
}

func summaryLines(agg services.Aggregates) []summaryLine {
	return []summaryLine{
		{"Total Quantity", services.FormatQuantity(agg.TotalQuantity)},
		{"Taxable Amount", services.FormatINR(agg.TotalAmount)},
		{fmt.Sprintf("CGST @ %s", percent(agg.Rates.CGST)), services.FormatINR(agg.CGST)},
		{fmt.Sprintf("SGST @ %s", percent(agg.Rates.SGST)), services.FormatINR(agg.SGST)},
		{"Total GST", services.FormatINR(agg.TotalGST)},
		{"Round Off", services.FormatFixed2(agg.RoundOff)},
	}
}

func field(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func prefixNewline(s string) string {
	if s == "" {
		return ""
	}
	return "\n" + s
}

func percent(rate float64) string {
	s := strings.TrimRight(services.FormatFixed2(rate*100), "0")
	return strings.TrimSuffix(s, ".") + "%"
}
