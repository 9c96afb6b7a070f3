package prodtype

import (
	"context"

	"procompare/internal/core/id"
	"procompare/internal/domain"
)

// Repository defines persistence operations for product classifications.
type Repository interface {
	domain.CatalogRepository[*ProductType]

	// ListByParent returns level 2 entries under a level 1 parent.
	ListByParent(ctx context.Context, parentID id.ID) ([]*ProductType, error)
}
