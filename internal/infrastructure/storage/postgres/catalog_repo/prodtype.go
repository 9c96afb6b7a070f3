package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"procompare/internal/core/id"
	"procompare/internal/domain/catalogs/prodtype"
	"procompare/internal/infrastructure/storage/postgres"
)

const prodTypeTable = "cat_product_types"

// ProductTypeRepo implements prodtype.Repository.
type ProductTypeRepo struct {
	*BaseCatalogRepo[*prodtype.ProductType]
}

// NewProductTypeRepo creates a new product type repository.
func NewProductTypeRepo(txm *postgres.TxManager, audit *postgres.AuditService) *ProductTypeRepo {
	return &ProductTypeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			prodTypeTable,
			postgres.ExtractDBColumns[prodtype.ProductType](),
			func() *prodtype.ProductType { return &prodtype.ProductType{} },
			txm,
			audit,
		),
	}
}

// ListByParent retrieves level 2 classifications under a level 1 parent.
func (r *ProductTypeRepo) ListByParent(ctx context.Context, parentID id.ID) ([]*prodtype.ProductType, error) {
	return r.FindAll(ctx, func(q squirrel.SelectBuilder) squirrel.SelectBuilder {
		return q.
			Where(squirrel.Eq{"parent_id": parentID}).
			Where(squirrel.Eq{"deletion_mark": false}).
			OrderBy("name ASC")
	})
}
