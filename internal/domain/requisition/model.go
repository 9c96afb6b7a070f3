// Package requisition holds the two requisition line variants loaded by the
// search engine and the canonical key resolution used to match lines across
// inconsistent code fields.
package requisition

import (
	"time"

	"procompare/internal/core/id"
	"procompare/internal/core/types"
)

// DepartmentDemand is one department's share of a monthly line, carried
// inline in source order.
type DepartmentDemand struct {
	DepartmentID   id.ID        `db:"department_id" json:"departmentId"`
	DepartmentName string       `db:"department_name" json:"departmentName"`
	RequestQty     *types.Money `db:"request_qty" json:"requestQty,omitempty"`
	BuyQty         *types.Money `db:"buy_qty" json:"buyQty,omitempty"`
}

// DepartmentQty is a summary line's per-department quantity pair. Summary
// lines store only department IDs; names are resolved at read time.
type DepartmentQty struct {
	Qty *types.Money `json:"qty,omitempty"`
	Buy *types.Money `json:"buy,omitempty"`
}

// MonthlyLine is a requisition line from the monthly purchasing cycle. The
// supplier is not yet settled; price comparison runs against the offer
// catalog at read time.
type MonthlyLine struct {
	ID           id.ID        `db:"id" json:"id"`
	GroupID      id.ID        `db:"group_id" json:"groupId"`
	TypeLevel1ID *id.ID       `db:"type_level1_id" json:"typeLevel1Id,omitempty"`
	TypeLevel2ID *id.ID       `db:"type_level2_id" json:"typeLevel2Id,omitempty"`
	OldCode      string       `db:"old_code" json:"oldCode"`
	NewCode      string       `db:"new_code" json:"newCode"`
	NameVN       string       `db:"name_vn" json:"nameVn"`
	NameEN       string       `db:"name_en" json:"nameEn"`
	Unit         string       `db:"unit" json:"unit"`
	RequestQty   *types.Money `db:"request_qty" json:"requestQty,omitempty"`
	BuyQty       *types.Money `db:"buy_qty" json:"buyQty,omitempty"`
	SafeStock    *types.Money `db:"safe_stock" json:"safeStock,omitempty"`
	Inventory    *types.Money `db:"inventory" json:"inventory,omitempty"`
	OrderQty     *types.Money `db:"order_qty" json:"orderQty,omitempty"`
	SupplierID   *id.ID       `db:"supplier_id" json:"supplierId,omitempty"`
	Remark       *string      `db:"remark" json:"remark,omitempty"`
	Note         *string      `db:"note" json:"note,omitempty"`

	Departments []DepartmentDemand `db:"-" json:"departments"`

	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// SummaryLine is a consolidated requisition line with a pre-selected
// supplier and unit price; no comparison runs for this variant.
type SummaryLine struct {
	ID           id.ID        `db:"id" json:"id"`
	GroupID      id.ID        `db:"group_id" json:"groupId"`
	TypeLevel1ID *id.ID       `db:"type_level1_id" json:"typeLevel1Id,omitempty"`
	TypeLevel2ID *id.ID       `db:"type_level2_id" json:"typeLevel2Id,omitempty"`
	OldCode      string       `db:"old_code" json:"oldCode"`
	NewCode      string       `db:"new_code" json:"newCode"`
	NameVN       string       `db:"name_vn" json:"nameVn"`
	NameEN       string       `db:"name_en" json:"nameEn"`
	Unit         string       `db:"unit" json:"unit"`
	OrderQty     *types.Money `db:"order_qty" json:"orderQty,omitempty"`
	SupplierID   *id.ID       `db:"supplier_id" json:"supplierId,omitempty"`
	Price        *types.Money `db:"price" json:"price,omitempty"`
	Remark       *string      `db:"remark" json:"remark,omitempty"`

	Departments map[id.ID]DepartmentQty `db:"-" json:"departments"`

	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// Recency returns the line's most recent activity timestamp: UpdatedAt when
// present, CreatedAt otherwise. Nil when neither is recorded; such lines
// sort after every timestamped line.
func (m *MonthlyLine) Recency() *time.Time {
	return recency(m.UpdatedAt, m.CreatedAt)
}

// Recency returns the line's most recent activity timestamp.
func (s *SummaryLine) Recency() *time.Time {
	return recency(s.UpdatedAt, s.CreatedAt)
}

func recency(updated *time.Time, created time.Time) *time.Time {
	if updated != nil {
		return updated
	}
	if created.IsZero() {
		return nil
	}
	return &created
}

// TotalBuyQty sums the per-department buy quantities of a summary line.
func (s *SummaryLine) TotalBuyQty() types.Money {
	total := types.Zero()
	for _, d := range s.Departments {
		total = total.Add(types.ValueOrZero(d.Buy))
	}
	return total
}

// TotalPrice is the selected supplier's unit price times the order quantity,
// or nil when no price is recorded.
func (s *SummaryLine) TotalPrice() *types.Money {
	if s.Price == nil {
		return nil
	}
	total := s.Price.Mul(types.ValueOrZero(s.OrderQty))
	return &total
}
