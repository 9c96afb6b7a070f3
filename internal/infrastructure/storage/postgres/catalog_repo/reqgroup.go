package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"procompare/internal/core/id"
	"procompare/internal/domain/catalogs/reqgroup"
	"procompare/internal/infrastructure/storage/postgres"
)

const reqGroupTable = "cat_requisition_groups"

// ReqGroupRepo implements reqgroup.Repository.
type ReqGroupRepo struct {
	*BaseCatalogRepo[*reqgroup.Group]
}

// NewReqGroupRepo creates a new requisition group repository.
func NewReqGroupRepo(txm *postgres.TxManager, audit *postgres.AuditService) *ReqGroupRepo {
	return &ReqGroupRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			reqGroupTable,
			postgres.ExtractDBColumns[reqgroup.Group](),
			func() *reqgroup.Group { return &reqgroup.Group{} },
			txm,
			audit,
		),
	}
}

// ListIDs returns the IDs of all non-deleted groups.
func (r *ReqGroupRepo) ListIDs(ctx context.Context) ([]id.ID, error) {
	q := r.Builder().
		Select("id").
		From(reqGroupTable).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list group ids: %w", err)
	}
	defer rows.Close()

	var ids []id.ID
	for rows.Next() {
		var gid id.ID
		if err := rows.Scan(&gid); err != nil {
			return nil, fmt.Errorf("scan group id: %w", err)
		}
		ids = append(ids, gid)
	}

	return ids, rows.Err()
}
