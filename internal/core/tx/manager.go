// Package tx defines the transaction manager abstraction used by domain services.
package tx

import "context"

// Manager runs functions within a database transaction.
// The postgres implementation lives in internal/infrastructure/storage/postgres.
type Manager interface {
	// RunInTransaction executes fn within a transaction. If a transaction is
	// already active in ctx it is reused.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
