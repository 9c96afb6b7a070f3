package dto

import (
	"procompare/internal/domain/comparison"
)

// SearchQuery holds the requisition search parameters. GroupID accepts a
// concrete group UUID or "all" (blank means all).
type SearchQuery struct {
	GroupID  string `form:"groupId"`
	DataType string `form:"dataType" binding:"required"`

	TypeLevel1Name string `form:"typeLevel1Name"`
	TypeLevel2Name string `form:"typeLevel2Name"`
	NameVN         string `form:"nameVn"`
	NameEN         string `form:"nameEn"`
	OldCode        string `form:"oldCode"`
	NewCode        string `form:"newCode"`
	Unit           string `form:"unit"`
	SupplierName   string `form:"supplierName"`
	DepartmentName string `form:"departmentName"`
	HasFilter      bool   `form:"hasFilter"`

	DisablePagination bool `form:"disablePagination"`
	Page              int  `form:"page"`
	Size              int  `form:"size"`
}

// ToRequest maps the query to the engine's request shape.
func (q SearchQuery) ToRequest() comparison.SearchRequest {
	size := q.Size
	if size == 0 && !q.DisablePagination {
		size = 20
	}

	return comparison.SearchRequest{
		GroupID:  q.GroupID,
		DataType: comparison.DataType(q.DataType),
		Filter: comparison.SearchFilter{
			TypeLevel1Name: q.TypeLevel1Name,
			TypeLevel2Name: q.TypeLevel2Name,
			NameVN:         q.NameVN,
			NameEN:         q.NameEN,
			OldCode:        q.OldCode,
			NewCode:        q.NewCode,
			Unit:           q.Unit,
			SupplierName:   q.SupplierName,
			DepartmentName: q.DepartmentName,
			HasFilter:      q.HasFilter,
		},
		DisablePagination: q.DisablePagination,
		Page:              q.Page,
		Size:              size,
	}
}

// DuplicateCheckQuery holds the key-tier existence check parameters.
type DuplicateCheckQuery struct {
	GroupID   string `form:"groupId" binding:"required"`
	Source    string `form:"source" binding:"required"` // MONTHLY or SUMMARY
	Unit      string `form:"unit"`
	OldCode   string `form:"oldCode"`
	NewCode   string `form:"newCode"`
	NameVN    string `form:"nameVn"`
	NameEN    string `form:"nameEn"`
	ExcludeID string `form:"excludeId"`
}
