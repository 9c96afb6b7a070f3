// Package entity provides base types shared by all reference catalogs.
package entity

import (
	"context"
	"time"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Catalog is the base type for reference data: departments, product types,
// suppliers, requisition groups.
type Catalog struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// Code is a human-readable identifier, unique per catalog
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// DeletionMark indicates soft-deleted entity
	DeletionMark bool `db:"deletion_mark" json:"deletionMark"`

	// Version for optimistic locking (incremented on each update)
	Version int `db:"version" json:"version"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewCatalog creates a new Catalog with generated ID and timestamps.
func NewCatalog(code, name string) Catalog {
	now := time.Now().UTC()
	return Catalog{
		ID:        id.New(),
		Code:      code,
		Name:      name,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	// Code can be auto-generated, so it is optional at creation
	// but required at save time.

	return nil
}

// GetID returns the entity ID.
func (c *Catalog) GetID() id.ID {
	return c.ID
}

// Touch updates the UpdatedAt timestamp and increments version.
func (c *Catalog) Touch() {
	c.UpdatedAt = time.Now().UTC()
	c.Version++
}

// MarkDeleted sets the deletion mark.
func (c *Catalog) MarkDeleted() {
	c.DeletionMark = true
}
