package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR formats an amount in Indian Rupee notation: after the rightmost
// three digits, digits are grouped in pairs (₹1,23,45,678.90).
func FormatINR(amount float64) string {
	s := FormatIndian(amount)
	if strings.HasPrefix(s, "-") {
		return "-₹" + s[1:]
	}
	return "₹" + s
}

// FormatIndian is FormatINR without the currency sign. Negative amounts keep
// the minus sign in front of the symbol-less digits.
func FormatIndian(amount float64) string {
	raw := FormatFixed2(amount)

	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	intPart, decPart, _ := strings.Cut(raw, ".")
	result := applyIndianGrouping(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// formatSignedINR renders a round-off style delta with an explicit sign.
func formatSignedINR(amount float64) string {
	s := FormatINR(amount)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}

// FormatQuantity prints whole quantities without decimals and others to two
// places.
func FormatQuantity(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
