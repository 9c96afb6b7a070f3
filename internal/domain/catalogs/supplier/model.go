// Package supplier provides the supplier catalog and the supplier offer
// read model used by price comparison.
package supplier

import (
	"context"
	"time"

	"procompare/internal/core/entity"
	"procompare/internal/core/id"
	"procompare/internal/core/types"
)

// UnknownName is returned by name lookups when the supplier is missing.
const UnknownName = "Unknown"

// Supplier represents a vendor that publishes price offers.
type Supplier struct {
	entity.Catalog

	TaxCode       *string `db:"tax_code" json:"taxCode,omitempty"`
	ContactEmail  *string `db:"contact_email" json:"contactEmail,omitempty"`
	ContactPhone  *string `db:"contact_phone" json:"contactPhone,omitempty"`
	PaymentTerms  *string `db:"payment_terms" json:"paymentTerms,omitempty"`
	DeliveryTerms *string `db:"delivery_terms" json:"deliveryTerms,omitempty"`
}

// NewSupplier creates a new Supplier with required fields.
func NewSupplier(code, name string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	return s.Catalog.Validate(ctx)
}

// Offer is one supplier price quote for an item code in a given currency.
// Offers are read-mostly: they are loaded in bulk during comparison and
// written only by the ingest path.
type Offer struct {
	ID           id.ID        `db:"id" json:"id"`
	SupplierID   id.ID        `db:"supplier_id" json:"supplierId"`
	SupplierName string       `db:"supplier_name" json:"supplierName"`
	ItemCode     string       `db:"item_code" json:"itemCode"`
	Currency     string       `db:"currency" json:"currency"`
	Unit         *string      `db:"unit" json:"unit,omitempty"`
	Price        *types.Money `db:"price" json:"price,omitempty"`
	ValidFrom    *time.Time   `db:"valid_from" json:"validFrom,omitempty"`
	ValidTo      *time.Time   `db:"valid_to" json:"validTo,omitempty"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time   `db:"updated_at" json:"updatedAt,omitempty"`
}

// HasPrice reports whether the offer carries a usable price.
func (o *Offer) HasPrice() bool {
	return o.Price != nil
}
