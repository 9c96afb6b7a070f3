package requisition_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"procompare/internal/core/id"
	"procompare/internal/core/types"
	"procompare/internal/domain/requisition"
	"procompare/internal/infrastructure/storage/postgres"
)

const (
	summaryTable     = "req_summary_lines"
	summaryDeptTable = "req_summary_departments"
)

// SummaryRepo implements requisition.SummaryRepository.
type SummaryRepo struct {
	txManager *postgres.TxManager
}

// NewSummaryRepo creates a new summary line repository.
func NewSummaryRepo(txm *postgres.TxManager) *SummaryRepo {
	return &SummaryRepo{txManager: txm}
}

// FindByGroupID loads all summary lines of a group. The per-department
// quantity map holds only department IDs; names are resolved by the engine.
func (r *SummaryRepo) FindByGroupID(ctx context.Context, groupID id.ID) ([]*requisition.SummaryLine, error) {
	q := builder().
		Select(postgres.ExtractDBColumns[requisition.SummaryLine]()...).
		From(summaryTable).
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)

	var lines []*requisition.SummaryLine
	if err := pgxscan.Select(ctx, querier, &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("select summary lines: %w", err)
	}
	if len(lines) == 0 {
		return lines, nil
	}

	if err := r.attachDepartments(ctx, groupID, lines); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *SummaryRepo) attachDepartments(ctx context.Context, groupID id.ID, lines []*requisition.SummaryLine) error {
	q := builder().
		Select("d.line_id", "d.department_id", "d.qty", "d.buy").
		From(summaryDeptTable + " d").
		Join(summaryTable + " l ON l.id = d.line_id").
		Where(squirrel.Eq{"l.group_id": groupID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build breakdown query: %w", err)
	}

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("select breakdown: %w", err)
	}
	defer rows.Close()

	byLine := make(map[id.ID]map[id.ID]requisition.DepartmentQty, len(lines))
	for rows.Next() {
		var lineID, deptID id.ID
		var qty, buy *types.Money
		if err := rows.Scan(&lineID, &deptID, &qty, &buy); err != nil {
			return fmt.Errorf("scan breakdown: %w", err)
		}
		if byLine[lineID] == nil {
			byLine[lineID] = make(map[id.ID]requisition.DepartmentQty)
		}
		byLine[lineID][deptID] = requisition.DepartmentQty{Qty: qty, Buy: buy}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, line := range lines {
		line.Departments = byLine[line.ID]
	}
	return nil
}

// ExistsByField reports whether another line in the group with the same unit
// carries the given identifying value.
func (r *SummaryRepo) ExistsByField(ctx context.Context, groupID id.ID, unit, field, value string, excludeID *id.ID) (bool, error) {
	return existsByField(ctx, r.txManager, summaryTable, groupID, unit, field, value, excludeID)
}
