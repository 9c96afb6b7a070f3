package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"procompare/internal/core/id"
)

func TestSearchFilter_Match(t *testing.T) {
	supplierID := id.New()

	view := &LineView{
		TypeLevel1Name: "Consumables",
		TypeLevel2Name: "Safety Equipment",
		NameVN:         "Găng tay cao su",
		NameEN:         "Rubber Gloves",
		OldCode:        "SAP-001",
		NewCode:        "ERP-100",
		Unit:           "PC",
		SupplierID:     &supplierID,
		SupplierName:   "Acme Trading",
		Departments: []DepartmentView{
			{DepartmentID: id.New(), DepartmentName: "Maintenance"},
			{DepartmentID: id.New(), DepartmentName: "Production"},
		},
	}

	tests := []struct {
		name   string
		filter SearchFilter
		want   bool
	}{
		{
			name:   "no active filter passes everything",
			filter: SearchFilter{HasFilter: true},
			want:   true,
		},
		{
			name:   "case-insensitive substring",
			filter: SearchFilter{NameEN: "rubber", HasFilter: true},
			want:   true,
		},
		{
			name:   "all supplied filters must match",
			filter: SearchFilter{NameEN: "Gloves", OldCode: "SAP-999", HasFilter: true},
			want:   false,
		},
		{
			name:   "supplier name substring",
			filter: SearchFilter{SupplierName: "acme", HasFilter: true},
			want:   true,
		},
		{
			name:   "department matches any breakdown entry",
			filter: SearchFilter{DepartmentName: "product", HasFilter: true},
			want:   true,
		},
		{
			name:   "department with no matching entry",
			filter: SearchFilter{DepartmentName: "Finance", HasFilter: true},
			want:   false,
		},
		{
			name:   "classification names",
			filter: SearchFilter{TypeLevel1Name: "consum", TypeLevel2Name: "safety", HasFilter: true},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(view))
		})
	}
}

func TestSearchFilter_SupplierFilterRequiresSupplier(t *testing.T) {
	view := &LineView{NameEN: "Gloves"}

	f := SearchFilter{SupplierName: "Acme", HasFilter: true}
	assert.False(t, f.Match(view), "line without a supplier reference fails a supplier filter")
}

func TestSearchFilter_HasFilterShortCircuit(t *testing.T) {
	// With HasFilter unset the predicate is a no-op even when filter
	// fields carry values that would not match.
	view := &LineView{NameEN: "Gloves"}

	f := SearchFilter{NameEN: "nonexistent", OldCode: "XYZ", HasFilter: false}
	assert.True(t, f.Match(view))
}
