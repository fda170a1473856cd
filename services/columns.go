package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColumnRoles is returned when a caller-supplied role mapping does
// not fit the header row.
var ErrInvalidColumnRoles = errors.New("invalid column roles")

// ColumnRole is the semantic meaning of a table column.
type ColumnRole string

const (
	RoleQuantity ColumnRole = "quantity"
	RolePrice    ColumnRole = "price"
	RoleAmount   ColumnRole = "amount"
	RoleTotal    ColumnRole = "total"
)

// ColumnRoles maps each semantic role to a header index; -1 means absent.
type ColumnRoles struct {
	Quantity int `json:"quantity"`
	Price    int `json:"price"`
	Amount   int `json:"amount"`
	Total    int `json:"total"`
}

// NoColumnRoles returns a mapping with every role absent.
func NoColumnRoles() ColumnRoles {
	return ColumnRoles{Quantity: -1, Price: -1, Amount: -1, Total: -1}
}

// NewColumnRoles builds an explicit mapping and validates it against a header
// row of the given width. Roles missing from the map are absent.
func NewColumnRoles(width int, byRole map[ColumnRole]int) (ColumnRoles, error) {
	roles := NoColumnRoles()
	for role, idx := range byRole {
		switch role {
		case RoleQuantity:
			roles.Quantity = idx
		case RolePrice:
			roles.Price = idx
		case RoleAmount:
			roles.Amount = idx
		case RoleTotal:
			roles.Total = idx
		default:
			return NoColumnRoles(), fmt.Errorf("%w: unknown role %q", ErrInvalidColumnRoles, role)
		}
	}
	if err := roles.Validate(width); err != nil {
		return NoColumnRoles(), err
	}
	return roles, nil
}

// Validate checks every present index is inside the header row and that no
// header carries two roles.
func (r ColumnRoles) Validate(width int) error {
	seen := make(map[int]ColumnRole, 4)
	for _, rc := range []struct {
		role ColumnRole
		idx  int
	}{
		{RoleQuantity, r.Quantity},
		{RolePrice, r.Price},
		{RoleAmount, r.Amount},
		{RoleTotal, r.Total},
	} {
		if rc.idx == -1 {
			continue
		}
		if rc.idx < -1 || rc.idx >= width {
			return fmt.Errorf("%w: %s index %d out of range [0,%d)", ErrInvalidColumnRoles, rc.role, rc.idx, width)
		}
		if other, ok := seen[rc.idx]; ok {
			return fmt.Errorf("%w: column %d is both %s and %s", ErrInvalidColumnRoles, rc.idx, other, rc.role)
		}
		seen[rc.idx] = rc.role
	}
	return nil
}

func (r ColumnRoles) HasQuantity() bool { return r.Quantity != -1 }
func (r ColumnRoles) HasPrice() bool    { return r.Price != -1 }
func (r ColumnRoles) HasAmount() bool   { return r.Amount != -1 }
func (r ColumnRoles) HasTotal() bool    { return r.Total != -1 }

// ShouldShowTotal reports whether a derived per-row total is appended.
func (r ColumnRoles) ShouldShowTotal() bool {
	return r.HasQuantity() && (r.HasAmount() || r.HasPrice())
}

// UnitIndex is the column multiplied by quantity: amount when present,
// otherwise price.
func (r ColumnRoles) UnitIndex() int {
	if r.HasAmount() {
		return r.Amount
	}
	return r.Price
}

// ClassifierRules lists the header fragments that identify each role.
// Quantity, price and amount match by case-insensitive substring; total
// matches the whole trimmed header case-insensitively.
type ClassifierRules struct {
	Quantity []string
	Price    []string
	Amount   []string
	Total    []string
}

// DefaultClassifierRules matches "quantity", "price", "amount" and a header
// named exactly "total".
func DefaultClassifierRules() ClassifierRules {
	return ClassifierRules{
		Quantity: []string{"quantity"},
		Price:    []string{"price"},
		Amount:   []string{"amount"},
		Total:    []string{"total"},
	}
}

// ClassifyColumns derives roles with the default rules.
func ClassifyColumns(headers []string) ColumnRoles {
	return DefaultClassifierRules().Classify(headers)
}

// Classify derives the role mapping for headers. When several headers match
// a role the first one wins.
func (c ClassifierRules) Classify(headers []string) ColumnRoles {
	roles := NoColumnRoles()
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		switch {
		case roles.Total == -1 && equalsAny(norm, c.Total):
			roles.Total = i
		case roles.Quantity == -1 && containsAny(norm, c.Quantity):
			roles.Quantity = i
		case roles.Amount == -1 && containsAny(norm, c.Amount):
			roles.Amount = i
		case roles.Price == -1 && containsAny(norm, c.Price):
			roles.Price = i
		}
	}
	return roles
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func equalsAny(s string, names []string) bool {
	for _, n := range names {
		if s == strings.ToLower(strings.TrimSpace(n)) {
			return true
		}
	}
	return false
}
