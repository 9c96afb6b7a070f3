package reqgroup

import (
	"context"

	"procompare/internal/core/id"
	"procompare/internal/domain"
)

// Repository defines persistence operations for requisition groups.
type Repository interface {
	domain.CatalogRepository[*Group]

	// ListIDs returns the IDs of all non-deleted groups.
	ListIDs(ctx context.Context) ([]id.ID, error)
}
