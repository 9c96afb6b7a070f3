package department

import (
	"procompare/internal/domain"
)

// Repository defines persistence operations for departments.
type Repository interface {
	domain.CatalogRepository[*Department]
}
