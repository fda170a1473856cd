package services

import (
	"bytes"
	"fmt"
	"math"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

// goodsTable returns a quantity × price table with n rows of quantity 2 at
// price 50, so every derived row total is 100.00.
func goodsTable(n int) TableSpec {
	spec := TableSpec{
		Headers:    []string{"S.No", "Item Description", "HSN", "Quantity", "Unit", "Price"},
		Alignments: []Alignment{AlignCenter, AlignLeft, AlignCenter, AlignRight, AlignCenter, AlignRight},
	}
	for i := 0; i < n; i++ {
		spec.Rows = append(spec.Rows, []string{
			fmt.Sprintf("%d", i+1), fmt.Sprintf("Item %d", i+1), "7308", "2", "Nos", "50",
		})
	}
	return spec
}

func sampleMeta() InvoiceMeta {
	return InvoiceMeta{
		Company: CompanyInfo{Name: "Fervid Smart Solutions", Address: "Plot 12, MIDC, Pune", GSTIN: "27AAPFU0939F1ZV"},
		Client:  ClientInfo{Name: "Acme Corp", GSTIN: "29AAPFU0939F1ZW", State: "Karnataka"},
		BillAddress: Address{
			Name: "Acme Corp", Lines: "12 MG Road\nBengaluru, Karnataka, 560001", State: "Karnataka", StateCode: "29",
		},
		ShipAddress: Address{Name: "Acme Warehouse", Lines: "Hosur Road\nBengaluru"},
		Invoice: InvoiceInfo{
			Number: "INV/25-26/001", Date: "2025-06-01", Transport: "Road", VehicleNo: "MH12AB1234",
			IRN: "a1b2c3d4e5", AckNo: "112233", AckDate: "2025-06-01",
		},
		Bank:    BankInfo{BankName: "HDFC Bank", AccountNo: "50200012345678", IFSC: "HDFC0000123", Branch: "Pune"},
		Freight: "Paid",
	}
}
