package services

// TaxRates are the CGST and SGST fractions applied to the taxable total.
type TaxRates struct {
	CGST float64 `json:"cgst"`
	SGST float64 `json:"sgst"`
}

// DefaultTaxRates is the 9% + 9% intra-state split.
func DefaultTaxRates() TaxRates {
	return TaxRates{CGST: 0.09, SGST: 0.09}
}

// Aggregates are the whole-document totals printed on the last page.
type Aggregates struct {
	TotalQuantity     float64            `json:"totalQuantity"`
	TotalAmount       float64            `json:"totalAmount"`
	CGST              float64            `json:"cgst"`
	SGST              float64            `json:"sgst"`
	TotalGST          float64            `json:"totalGST"`
	GrandTotal        float64            `json:"grandTotal"`
	RoundedTotal      int64              `json:"roundedTotal"`
	RoundOff          float64            `json:"roundOff"`
	GrandTotalInWords string             `json:"grandTotalInWords"`
	PerColumnTotals   map[string]float64 `json:"perColumnTotals"`
	Rates             TaxRates           `json:"rates"`
}

// AggregateOptions carries the configurable parts of aggregation.
type AggregateOptions struct {
	Rates       TaxRates
	Words       WordsConverter
	WordsSuffix string
}

// Aggregate sums quantities and amounts over the computed rows, applies the
// tax rates and rounds the grand total to whole rupees. Caller-declared total
// columns are summed over the raw spec rows.
func Aggregate(spec TableSpec, roles ColumnRoles, rows []ComputedRow, opts AggregateOptions) Aggregates {
	agg := Aggregates{
		Rates:           opts.Rates,
		PerColumnTotals: make(map[string]float64),
	}

	for _, r := range rows {
		if roles.HasQuantity() {
			agg.TotalQuantity += ParseNumber(CellAt(r.Cells, roles.Quantity))
		}
		switch {
		case roles.HasTotal():
			agg.TotalAmount += ParseNumber(CellAt(r.Cells, roles.Total))
		case r.Derived:
			agg.TotalAmount += ParseNumber(r.Cells[len(r.Cells)-1])
		}
	}

	agg.CGST = agg.TotalAmount * opts.Rates.CGST
	agg.SGST = agg.TotalAmount * opts.Rates.SGST
	agg.TotalGST = agg.CGST + agg.SGST
	agg.GrandTotal = agg.TotalAmount + agg.CGST + agg.SGST
	agg.RoundedTotal = roundHalfUp(agg.GrandTotal)
	agg.RoundOff = Round2(float64(agg.RoundedTotal) - agg.GrandTotal)

	suffix := opts.WordsSuffix
	if suffix == "" {
		suffix = DefaultWordsSuffix
	}
	agg.GrandTotalInWords = GrandTotalWords(agg.RoundedTotal, opts.Words, suffix)

	for name, idx := range totalColumnIndexes(spec) {
		var sum float64
		for _, raw := range spec.Rows {
			sum += ParseNumber(CellAt(raw, idx))
		}
		agg.PerColumnTotals[name] = sum
	}

	return agg
}

// totalColumnIndexes resolves spec.TotalColumns to header indexes, keyed by
// the header text as written in spec.Headers. Unknown names are dropped.
func totalColumnIndexes(spec TableSpec) map[string]int {
	out := make(map[string]int, len(spec.TotalColumns))
	for _, name := range spec.TotalColumns {
		idx := spec.HeaderIndex(name)
		if idx == -1 {
			continue
		}
		out[spec.Headers[idx]] = idx
	}
	return out
}
