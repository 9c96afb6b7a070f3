// Package numerator generates sequential human-readable codes for catalogs,
// e.g. "SUP-2026-00042". Sequences are stored per prefix and year so numbering
// restarts every year.
package numerator

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Querier is the minimal database interface the numerator needs.
// Satisfied by pgxpool.Pool and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Service issues sequential codes backed by the sys_sequences table.
type Service struct {
	q Querier
}

// New creates a numerator service.
func New(q Querier) *Service {
	return &Service{q: q}
}

// NextCode returns the next code for prefix, formatted "PREFIX-YYYY-NNNNN".
// The increment is atomic: concurrent callers never receive the same number.
func (s *Service) NextCode(ctx context.Context, prefix string, at time.Time) (string, error) {
	year := at.Year()
	key := fmt.Sprintf("%s-%d", prefix, year)

	const query = `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, 1)
		ON CONFLICT (key)
		DO UPDATE SET current_val = sys_sequences.current_val + 1
		RETURNING current_val`

	var current int64
	if err := s.q.QueryRow(ctx, query, key).Scan(&current); err != nil {
		return "", fmt.Errorf("next sequence value for %s: %w", key, err)
	}

	return fmt.Sprintf("%s-%d-%05d", prefix, year, current), nil
}
