package catalog_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"procompare/internal/domain/catalogs/supplier"
	"procompare/internal/infrastructure/storage/postgres"
)

const (
	supplierTable = "cat_suppliers"
	offerTable    = "supplier_offers"
)

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *postgres.TxManager, audit *postgres.AuditService) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			supplierTable,
			postgres.ExtractDBColumns[supplier.Supplier](),
			func() *supplier.Supplier { return &supplier.Supplier{} },
			txm,
			audit,
		),
	}
}

// OfferRepo implements supplier.OfferRepository. Offers are written by the
// catalog import process; this repo only reads them.
type OfferRepo struct {
	txManager *postgres.TxManager
}

// NewOfferRepo creates a new offer repository.
func NewOfferRepo(txm *postgres.TxManager) *OfferRepo {
	return &OfferRepo{txManager: txm}
}

// FindOffers returns all offers for an item code in the given currency,
// joined with the supplier display name. A blank code yields no offers.
func (r *OfferRepo) FindOffers(ctx context.Context, itemCode, currency string) ([]*supplier.Offer, error) {
	if strings.TrimSpace(itemCode) == "" {
		return nil, nil
	}

	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(
			"o.id", "o.supplier_id", "s.name AS supplier_name",
			"o.item_code", "o.currency", "o.unit", "o.price",
			"o.valid_from", "o.valid_to", "o.created_at", "o.updated_at",
		).
		From(offerTable + " o").
		Join(supplierTable + " s ON s.id = o.supplier_id").
		Where(squirrel.Eq{"o.item_code": itemCode}).
		Where(squirrel.Eq{"o.currency": currency}).
		Where(squirrel.Eq{"s.deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var offers []*supplier.Offer
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &offers, sql, args...); err != nil {
		return nil, fmt.Errorf("find offers: %w", err)
	}

	return offers, nil
}
