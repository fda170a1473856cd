package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
)

// GetFiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%02d-%02d", startYear%100, (startYear+1)%100)
}

// formatInvoiceNumber constructs the invoice number from its parts.
func formatInvoiceNumber(prefix, fiscalYear string, sequence int) string {
	return fmt.Sprintf("%s/%s/%03d", prefix, fiscalYear, sequence)
}

// GenerateInvoiceNumber returns the next invoice number for prefix in the
// fiscal year containing now.
// Format: {prefix}/{fiscal_year}/{sequence}, sequence 3-digit zero-padded and
// restarting every fiscal year.
func GenerateInvoiceNumber(app *pocketbase.PocketBase, prefix string, now time.Time) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("invoice number prefix is empty")
	}

	fiscalYear := GetFiscalYear(now)
	like := fmt.Sprintf("%s/%s/", prefix, fiscalYear)

	existing, err := app.FindRecordsByFilter(
		"invoices",
		"invoice_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": like + "%"},
	)
	if err != nil {
		// A missing collection or an empty result both start the sequence at 1.
		existing = nil
	}

	highest := 0
	for _, r := range existing {
		seq, err := strconv.Atoi(strings.TrimPrefix(r.GetString("invoice_number"), like))
		if err == nil && seq > highest {
			highest = seq
		}
	}

	return formatInvoiceNumber(prefix, fiscalYear, highest+1), nil
}
