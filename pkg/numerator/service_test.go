package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

type mockQuerier struct {
	mu           sync.Mutex
	currentValue int64
	lastKey      string
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(args) > 0 {
		if key, ok := args[0].(string); ok {
			m.lastKey = key
		}
	}

	m.currentValue++
	return &mockRow{val: m.currentValue}
}

func TestNextCode_Sequential(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	code, err := svc.NextCode(ctx, "SUP", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "SUP-2026-00001" {
		t.Errorf("expected SUP-2026-00001, got %s", code)
	}

	code, err = svc.NextCode(ctx, "SUP", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "SUP-2026-00002" {
		t.Errorf("expected SUP-2026-00002, got %s", code)
	}
}

func TestNextCode_KeyIncludesYear(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)

	_, err := svc.NextCode(context.Background(), "RG", time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.lastKey != "RG-2025" {
		t.Errorf("expected sequence key RG-2025, got %s", q.lastKey)
	}
}
