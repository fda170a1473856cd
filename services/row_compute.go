package services

// ComputedRow is a table row, optionally extended with a derived total cell.
type ComputedRow struct {
	Cells   []string `json:"cells"`
	Derived bool     `json:"derived"`
}

// DerivedTotalHeader names the appended per-row total column.
const DerivedTotalHeader = "Total"

// ComputeRows returns a copy of every row in spec. When roles.ShouldShowTotal
// holds, each row gains a trailing quantity × unit cell in two-decimal form.
// The input rows are never modified.
func ComputeRows(spec TableSpec, roles ColumnRoles) []ComputedRow {
	out := make([]ComputedRow, 0, len(spec.Rows))
	show := roles.ShouldShowTotal()
	unit := roles.UnitIndex()

	for _, raw := range spec.Rows {
		cells := make([]string, len(raw), len(raw)+1)
		copy(cells, raw)

		if !show {
			out = append(out, ComputedRow{Cells: cells})
			continue
		}

		rowTotal := ParseNumber(CellAt(raw, roles.Quantity)) * ParseNumber(CellAt(raw, unit))

		// The derived cell always lands in the column after the last header:
		// short rows are padded and cells past the headers are dropped.
		if len(cells) > len(spec.Headers) {
			cells = cells[:len(spec.Headers)]
		}
		for len(cells) < len(spec.Headers) {
			cells = append(cells, "")
		}
		cells = append(cells, FormatFixed2(rowTotal))
		out = append(out, ComputedRow{Cells: cells, Derived: true})
	}
	return out
}

// ComputedHeaders returns the column headers matching ComputeRows' output.
func ComputedHeaders(spec TableSpec, roles ColumnRoles) []string {
	headers := make([]string, len(spec.Headers), len(spec.Headers)+1)
	copy(headers, spec.Headers)
	if !roles.ShouldShowTotal() {
		return headers
	}
	name := DerivedTotalHeader
	if roles.HasTotal() {
		name = "Line Total"
	}
	return append(headers, name)
}
