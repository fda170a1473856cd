// Package services implements the invoice print engine: column classification,
// derived row totals, GST aggregation, pagination and page composition, plus
// the PDF, Excel and table-import surfaces built on top of it.
package services

import "strings"

// Alignment is the horizontal alignment of a table column.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ParseAlignment maps user input onto an Alignment, defaulting to center.
func ParseAlignment(s string) Alignment {
	switch Alignment(strings.ToLower(strings.TrimSpace(s))) {
	case AlignLeft:
		return AlignLeft
	case AlignRight:
		return AlignRight
	default:
		return AlignCenter
	}
}

// TableSpec is the tabular input of an invoice: ordered headers, string cells
// aligned to the headers by index, and optional rendering hints.
type TableSpec struct {
	Headers      []string    `json:"headers"`
	Rows         [][]string  `json:"rows"`
	Alignments   []Alignment `json:"alignments,omitempty"`
	TotalColumns []string    `json:"totalColumns,omitempty"`
	// ItemColumn names the column whose text drives the row height estimate.
	// Empty means the first header containing "item".
	ItemColumn string `json:"itemColumn,omitempty"`
}

// AlignmentAt returns the alignment of column i, center when unspecified.
func (s TableSpec) AlignmentAt(i int) Alignment {
	if i < 0 || i >= len(s.Alignments) {
		return AlignCenter
	}
	return ParseAlignment(string(s.Alignments[i]))
}

// HeaderIndex returns the index of the first header equal to name
// (case-insensitive, trimmed), or -1.
func (s TableSpec) HeaderIndex(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, h := range s.Headers {
		if strings.ToLower(strings.TrimSpace(h)) == name {
			return i
		}
	}
	return -1
}

// itemColumnIndex resolves ItemColumn, falling back to the first header that
// mentions "item".
func (s TableSpec) itemColumnIndex() int {
	if s.ItemColumn != "" {
		return s.HeaderIndex(s.ItemColumn)
	}
	for i, h := range s.Headers {
		if strings.Contains(strings.ToLower(h), "item") {
			return i
		}
	}
	return -1
}

// Address is a printable postal address block.
type Address struct {
	Name      string `json:"name,omitempty"`
	Lines     string `json:"lines,omitempty"` // formatted multi-line
	GSTIN     string `json:"gstin,omitempty"`
	State     string `json:"state,omitempty"`
	StateCode string `json:"stateCode,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ClientInfo identifies the billed party.
type ClientInfo struct {
	Name        string `json:"name"`
	GSTIN       string `json:"gstin,omitempty"`
	State       string `json:"state,omitempty"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// CompanyInfo identifies the issuing company.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	Email   string `json:"email,omitempty"`
}

// InvoiceInfo holds invoice identity and transport metadata.
type InvoiceInfo struct {
	Number       string `json:"number"`
	Date         string `json:"date,omitempty"`
	Transport    string `json:"transport,omitempty"`
	VehicleNo    string `json:"vehicleNo,omitempty"`
	EWayBill     string `json:"ewayBill,omitempty"`
	PaymentTerms string `json:"paymentTerms,omitempty"`
	POReference  string `json:"poReference,omitempty"`
	IRN          string `json:"irn,omitempty"`
	AckNo        string `json:"ackNo,omitempty"`
	AckDate      string `json:"ackDate,omitempty"`
}

// BankInfo is printed on the last page for remittance.
type BankInfo struct {
	BankName  string `json:"bankName,omitempty"`
	AccountNo string `json:"accountNo,omitempty"`
	IFSC      string `json:"ifsc,omitempty"`
	Branch    string `json:"branch,omitempty"`
}

// IsZero reports whether no bank field is set.
func (b BankInfo) IsZero() bool {
	return b.BankName == "" && b.AccountNo == "" && b.IFSC == "" && b.Branch == ""
}

// Logo is an embedded image printed in the page header.
type Logo struct {
	Data      []byte `json:"-"`
	Extension string `json:"extension,omitempty"` // png, jpg
}

// InvoiceMeta is display metadata passed through to every page unchanged.
type InvoiceMeta struct {
	Company      CompanyInfo `json:"company"`
	Client       ClientInfo  `json:"client"`
	BillAddress  Address     `json:"billAddress"`
	ShipAddress  Address     `json:"shipAddress"`
	Invoice      InvoiceInfo `json:"invoice"`
	Bank         BankInfo    `json:"bank"`
	Freight      string      `json:"freight,omitempty"`
	CustomerName string      `json:"customerName,omitempty"`
	Logo         *Logo       `json:"-"`
}

// InvoiceDocument is everything the composer needs for one invoice.
type InvoiceDocument struct {
	Table TableSpec   `json:"table"`
	Meta  InvoiceMeta `json:"meta"`
}
