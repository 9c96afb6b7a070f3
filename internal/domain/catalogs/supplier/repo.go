package supplier

import (
	"context"

	"procompare/internal/domain"
)

// Repository defines persistence operations for suppliers.
type Repository interface {
	domain.CatalogRepository[*Supplier]
}

// OfferRepository loads supplier offers for comparison. FindOffers matches
// by exact item code and currency; an empty slice means no offers exist.
type OfferRepository interface {
	FindOffers(ctx context.Context, itemCode, currency string) ([]*Offer, error)
}
