// Package prodtype provides the two-level product classification catalog.
// Level 1 is the broad product class; level 2 entries refine a level 1 parent.
package prodtype

import (
	"context"

	"procompare/internal/core/apperror"
	"procompare/internal/core/entity"
	"procompare/internal/core/id"
)

// UnknownName is returned by name lookups when the classification is missing.
const UnknownName = "Unknown"

// Classification levels.
const (
	LevelOne = 1
	LevelTwo = 2
)

// ProductType represents one node of the two-level product classification.
type ProductType struct {
	entity.Catalog

	// Level is 1 for top-level classes, 2 for refinements
	Level int `db:"level" json:"level"`

	// ParentID references the level 1 parent; required for level 2
	ParentID *id.ID `db:"parent_id" json:"parentId,omitempty"`
}

// NewProductType creates a new ProductType with required fields.
func NewProductType(code, name string, level int) *ProductType {
	return &ProductType{
		Catalog: entity.NewCatalog(code, name),
		Level:   level,
	}
}

// Validate implements entity.Validatable interface.
func (p *ProductType) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Level != LevelOne && p.Level != LevelTwo {
		return apperror.NewValidation("level must be 1 or 2").
			WithDetail("field", "level").
			WithDetail("value", p.Level)
	}

	if p.Level == LevelTwo && (p.ParentID == nil || id.IsNil(*p.ParentID)) {
		return apperror.NewValidation("level 2 classification requires a parent").
			WithDetail("field", "parentId")
	}

	if p.Level == LevelOne && p.ParentID != nil {
		return apperror.NewValidation("level 1 classification cannot have a parent").
			WithDetail("field", "parentId")
	}

	return nil
}
