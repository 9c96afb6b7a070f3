// Package reqgroup provides the requisition group catalog. A group is the
// organizational scope a requisition belongs to; each group may carry its
// own trading currency.
package reqgroup

import (
	"context"

	"procompare/internal/core/entity"
	"procompare/internal/core/types"
)

// Group represents one requisition group.
type Group struct {
	entity.Catalog

	// Currency is the group's trading currency; nil means the system default
	Currency    *string `db:"currency" json:"currency,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
}

// NewGroup creates a new Group with required fields.
func NewGroup(code, name string) *Group {
	return &Group{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (g *Group) Validate(ctx context.Context) error {
	return g.Catalog.Validate(ctx)
}

// ResolveCurrency returns the group currency, falling back to the system
// default when none is configured. The fallback applies per group, never
// across groups.
func (g *Group) ResolveCurrency() string {
	if g.Currency == nil || *g.Currency == "" {
		return types.DefaultCurrency
	}
	return *g.Currency
}
