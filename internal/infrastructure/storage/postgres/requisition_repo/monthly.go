// Package requisition_repo provides PostgreSQL access to the two
// requisition line sources.
package requisition_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
	"procompare/internal/domain/requisition"
	"procompare/internal/infrastructure/storage/postgres"
)

const (
	monthlyTable     = "req_monthly_lines"
	monthlyDeptTable = "req_monthly_departments"
)

// identityColumns whitelists the fields a duplicate check may query.
var identityColumns = map[string]struct{}{
	requisition.FieldOldCode: {},
	requisition.FieldNewCode: {},
	requisition.FieldNameVN:  {},
	requisition.FieldNameEN:  {},
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// MonthlyRepo implements requisition.MonthlyRepository.
type MonthlyRepo struct {
	txManager *postgres.TxManager
}

// NewMonthlyRepo creates a new monthly line repository.
func NewMonthlyRepo(txm *postgres.TxManager) *MonthlyRepo {
	return &MonthlyRepo{txManager: txm}
}

// FindByGroupID loads all monthly lines of a group with their per-department
// breakdown. The breakdown is fetched in one query for the whole group and
// attached in source order.
func (r *MonthlyRepo) FindByGroupID(ctx context.Context, groupID id.ID) ([]*requisition.MonthlyLine, error) {
	q := builder().
		Select(postgres.ExtractDBColumns[requisition.MonthlyLine]()...).
		From(monthlyTable).
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)

	var lines []*requisition.MonthlyLine
	if err := pgxscan.Select(ctx, querier, &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("select monthly lines: %w", err)
	}
	if len(lines) == 0 {
		return lines, nil
	}

	if err := r.attachDepartments(ctx, groupID, lines); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *MonthlyRepo) attachDepartments(ctx context.Context, groupID id.ID, lines []*requisition.MonthlyLine) error {
	q := builder().
		Select("d.line_id", "d.department_id", "d.department_name", "d.request_qty", "d.buy_qty").
		From(monthlyDeptTable + " d").
		Join(monthlyTable + " l ON l.id = d.line_id").
		Where(squirrel.Eq{"l.group_id": groupID}).
		OrderBy("d.line_id", "d.position")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build breakdown query: %w", err)
	}

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("select breakdown: %w", err)
	}
	defer rows.Close()

	byLine := make(map[id.ID][]requisition.DepartmentDemand, len(lines))
	for rows.Next() {
		var lineID id.ID
		var d requisition.DepartmentDemand
		if err := rows.Scan(&lineID, &d.DepartmentID, &d.DepartmentName, &d.RequestQty, &d.BuyQty); err != nil {
			return fmt.Errorf("scan breakdown: %w", err)
		}
		byLine[lineID] = append(byLine[lineID], d)
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
// carries the given identifying value. Matching is case-insensitive on both
// unit and value; the field must be one of the identity columns.
func (r *MonthlyRepo) ExistsByField(ctx context.Context, groupID id.ID, unit, field, value string, excludeID *id.ID) (bool, error) {
	return existsByField(ctx, r.txManager, monthlyTable, groupID, unit, field, value, excludeID)
}

func existsByField(ctx context.Context, txm *postgres.TxManager, table string, groupID id.ID, unit, field, value string, excludeID *id.ID) (bool, error) {
	if _, ok := identityColumns[field]; !ok {
		return false, apperror.NewValidation("invalid identity field").
			WithDetail("field", field)
	}

	q := builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"group_id": groupID}).
		Where(squirrel.Expr("LOWER(unit) = LOWER(?)", unit)).
		Where(squirrel.Expr("LOWER("+field+") = LOWER(?)", value)).
		Limit(1)

	if excludeID != nil {
		q = q.Where(squirrel.NotEq{"id": *excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists int
	err = txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists by field: %w", err)
	}

	return true, nil
}
