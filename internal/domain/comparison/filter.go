package comparison

import (
	"strings"
)

// SearchFilter is the set of optional, independent field filters. All
// non-blank filters must match for a line to pass (logical AND). String
// matching is case-insensitive substring containment.
type SearchFilter struct {
	TypeLevel1Name string `json:"typeLevel1Name,omitempty" form:"typeLevel1Name"`
	TypeLevel2Name string `json:"typeLevel2Name,omitempty" form:"typeLevel2Name"`
	NameVN         string `json:"nameVn,omitempty" form:"nameVn"`
	NameEN         string `json:"nameEn,omitempty" form:"nameEn"`
	OldCode        string `json:"oldCode,omitempty" form:"oldCode"`
	NewCode        string `json:"newCode,omitempty" form:"newCode"`
	Unit           string `json:"unit,omitempty" form:"unit"`
	SupplierName   string `json:"supplierName,omitempty" form:"supplierName"`
	DepartmentName string `json:"departmentName,omitempty" form:"departmentName"`

	// HasFilter gates predicate evaluation entirely; when false every line
	// passes regardless of the fields above, letting all-groups scans skip
	// per-line matching.
	HasFilter bool `json:"hasFilter" form:"hasFilter"`
}

func contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Match reports whether the view satisfies every supplied filter.
func (f SearchFilter) Match(v *LineView) bool {
	if !f.HasFilter {
		return true
	}

	if !contains(v.TypeLevel1Name, f.TypeLevel1Name) ||
		!contains(v.TypeLevel2Name, f.TypeLevel2Name) ||
		!contains(v.NameVN, f.NameVN) ||
		!contains(v.NameEN, f.NameEN) ||
		!contains(v.OldCode, f.OldCode) ||
		!contains(v.NewCode, f.NewCode) ||
		!contains(v.Unit, f.Unit) {
		return false
	}

	if f.SupplierName != "" {
		// A line with no supplier reference cannot satisfy a supplier filter.
		if v.SupplierID == nil || !contains(v.SupplierName, f.SupplierName) {
			return false
		}
	}

	if f.DepartmentName != "" {
		matched := false
		for _, d := range v.Departments {
			if contains(d.DepartmentName, f.DepartmentName) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
