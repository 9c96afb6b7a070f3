// Package department provides the Department reference catalog.
// Departments submit requisitions and appear in per-line demand breakdowns.
package department

import (
	"procompare/internal/core/entity"
)

// UnknownName is returned by name lookups when the department is missing.
const UnknownName = "Unknown"

// Department represents a requesting department.
type Department struct {
	entity.Catalog

	// NameEN is the English display name (Name holds the Vietnamese one)
	NameEN *string `db:"name_en" json:"nameEn,omitempty"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewDepartment creates a new Department with required fields.
func NewDepartment(code, name string) *Department {
	return &Department{
		Catalog: entity.NewCatalog(code, name),
	}
}
