// Package comparison implements the price comparison and search aggregation
// engine: it loads requisition lines from the monthly and summary sources
// across a group scope, filters them, enriches monthly lines with price
// comparison metrics against the supplier offer catalog, and produces
// sorted, paginated unified results.
package comparison

import (
	"context"
	"strings"
	"time"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
	"procompare/internal/core/types"
	"procompare/internal/domain/catalogs/reqgroup"
	"procompare/internal/domain/catalogs/supplier"
	"procompare/internal/domain/requisition"
)

// DataType selects which requisition source(s) a search runs against.
type DataType string

const (
	DataTypeSummary DataType = "SUMMARY"
	DataTypeMonthly DataType = "MONTHLY"
	DataTypeAll     DataType = "ALL"
)

// ParseDataType validates a caller-supplied data type before any loading
// occurs. Matching is case-insensitive; the returned value is canonical.
func ParseDataType(v string) (DataType, error) {
	switch dt := DataType(strings.ToUpper(v)); dt {
	case DataTypeSummary, DataTypeMonthly, DataTypeAll:
		return dt, nil
	}
	return "", apperror.NewInvalidDataType(v)
}

// Line source labels carried on every unified view.
const (
	SourceMonthly = "MONTHLY"
	SourceSummary = "SUMMARY"
)

// ScopeAll is the group scope wildcard resolving to every known group.
const ScopeAll = "all"

// --- Collaborator contracts ---

// GroupDirectory resolves the group scope and per-group currency context.
type GroupDirectory interface {
	ListGroupIDs(ctx context.Context) ([]id.ID, error)
	GetGroup(ctx context.Context, groupID id.ID) (*reqgroup.Group, error)
}

// MonthlyRepository loads monthly requisition lines per group.
type MonthlyRepository interface {
	FindByGroupID(ctx context.Context, groupID id.ID) ([]*requisition.MonthlyLine, error)
}

// SummaryRepository loads summary requisition lines per group.
type SummaryRepository interface {
	FindByGroupID(ctx context.Context, groupID id.ID) ([]*requisition.SummaryLine, error)
}

// OfferRepository finds candidate supplier offers and resolves supplier
// references for display and filtering.
type OfferRepository interface {
	FindOffers(ctx context.Context, itemCode, currency string) ([]*supplier.Offer, error)
	GetSupplier(ctx context.Context, supplierID id.ID) (*supplier.Supplier, error)
}

// TypeNameResolver resolves classification names. Implementations return
// "Unknown" for missing references and never error.
type TypeNameResolver interface {
	TypeName(ctx context.Context, typeID *id.ID) string
}

// DeptNameResolver resolves department names, defaulting to "Unknown".
type DeptNameResolver interface {
	DepartmentName(ctx context.Context, deptID id.ID) string
}

// --- Result shapes ---

// ComparisonResult holds the price metrics computed for one monthly line.
// Highest-price variance and the best-price flag are independent concepts:
// the selected supplier may be neither the cheapest nor the priciest.
type ComparisonResult struct {
	SelectedPrice    *types.Money `json:"selectedPrice,omitempty"`
	HighestPrice     *types.Money `json:"highestPrice,omitempty"`
	Amount           *types.Money `json:"amount,omitempty"`
	AmountDifference *types.Money `json:"amountDifference,omitempty"`
	Percentage       types.Money  `json:"percentage"`
	IsBestPrice      bool         `json:"isBestPrice"`
}

// DepartmentView is one resolved per-department breakdown entry.
type DepartmentView struct {
	DepartmentID   id.ID        `json:"departmentId"`
	DepartmentName string       `json:"departmentName"`
	RequestQty     *types.Money `json:"requestQty,omitempty"`
	BuyQty         *types.Money `json:"buyQty,omitempty"`
}

// LineView is the unified line shape both sources map into. Monthly lines
// carry the comparison metrics; summary lines carry the precomputed totals.
type LineView struct {
	Source         string           `json:"source"`
	ID             id.ID            `json:"id"`
	GroupID        id.ID            `json:"groupId"`
	TypeLevel1Name string           `json:"typeLevel1Name"`
	TypeLevel2Name string           `json:"typeLevel2Name"`
	OldCode        string           `json:"oldCode"`
	NewCode        string           `json:"newCode"`
	NameVN         string           `json:"nameVn"`
	NameEN         string           `json:"nameEn"`
	Unit           string           `json:"unit"`
	RequestQty     *types.Money     `json:"requestQty,omitempty"`
	BuyQty         *types.Money     `json:"buyQty,omitempty"`
	SafeStock      *types.Money     `json:"safeStock,omitempty"`
	Inventory      *types.Money     `json:"inventory,omitempty"`
	OrderQty       *types.Money     `json:"orderQty,omitempty"`
	Departments    []DepartmentView `json:"departments,omitempty"`
	SupplierID     *id.ID           `json:"supplierId,omitempty"`
	SupplierName   string           `json:"supplierName,omitempty"`
	Currency       string           `json:"currency"`

	Comparison *ComparisonResult `json:"comparison,omitempty"`

	// Summary-source totals
	TotalBuyQty *types.Money `json:"totalBuyQty,omitempty"`
	TotalPrice  *types.Money `json:"totalPrice,omitempty"`

	Remark *string `json:"remark,omitempty"`
	Note   *string `json:"note,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// RecencyAt returns the view's sort timestamp: UpdatedAt when present, else
// CreatedAt; nil when neither is recorded.
func (v *LineView) RecencyAt() *time.Time {
	if v.UpdatedAt != nil {
		return v.UpdatedAt
	}
	if v.CreatedAt.IsZero() {
		return nil
	}
	t := v.CreatedAt
	return &t
}

// PageMeta describes the slice of results returned relative to the full
// matching set.
type PageMeta struct {
	Disabled         bool `json:"disabled"`
	Page             int  `json:"page"`
	Size             int  `json:"size"`
	TotalPages       int  `json:"totalPages"`
	TotalElements    int  `json:"totalElements"`
	NumberOfElements int  `json:"numberOfElements"`
	HasNext          bool `json:"hasNext"`
	HasPrevious      bool `json:"hasPrevious"`
}

// UnifiedResult is one source's sorted, paginated result set.
type UnifiedResult struct {
	DataType      DataType    `json:"dataType"`
	Requisitions  []*LineView `json:"requisitions"`
	TotalElements int         `json:"totalElements"`
	Pagination    PageMeta    `json:"pagination"`
}

// SearchResult is the engine's response. Single-source searches populate
// exactly one sub-result; ALL populates both, each computed independently
// with the same filters and pagination.
type SearchResult struct {
	DataType DataType       `json:"dataType"`
	Summary  *UnifiedResult `json:"summary,omitempty"`
	Monthly  *UnifiedResult `json:"monthly,omitempty"`
}

// SearchRequest carries the caller's scope, filters and pagination.
type SearchRequest struct {
	GroupID           string
	DataType          DataType
	Filter            SearchFilter
	DisablePagination bool
	Page              int
	Size              int
}
