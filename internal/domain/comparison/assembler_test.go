package comparison

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/id"
)

func viewAt(created time.Time, updated *time.Time) *LineView {
	return &LineView{ID: id.New(), CreatedAt: created, UpdatedAt: updated}
}

func TestAssemble_PaginationBoundary(t *testing.T) {
	items := make([]*LineView, 7)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := range items {
		items[i] = viewAt(base.Add(time.Duration(i)*time.Hour), nil)
	}

	res := Assemble(DataTypeMonthly, items, false, 1, 5)

	assert.Len(t, res.Requisitions, 2)
	assert.Equal(t, 7, res.TotalElements)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.Equal(t, 2, res.Pagination.NumberOfElements)
	assert.False(t, res.Pagination.HasNext)
	assert.True(t, res.Pagination.HasPrevious)
	assert.False(t, res.Pagination.Disabled)
}

func TestAssemble_PageBeyondTotal(t *testing.T) {
	items := []*LineView{viewAt(time.Now(), nil)}

	res := Assemble(DataTypeMonthly, items, false, 5, 10)

	assert.Empty(t, res.Requisitions)
	assert.Equal(t, 1, res.TotalElements)
	assert.False(t, res.Pagination.HasNext)
}

func TestAssemble_DisabledPagination(t *testing.T) {
	items := make([]*LineView, 7)
	for i := range items {
		items[i] = viewAt(time.Now(), nil)
	}

	res := Assemble(DataTypeSummary, items, true, 0, 0)

	assert.Len(t, res.Requisitions, 7)
	assert.Equal(t, 7, res.TotalElements)
	assert.True(t, res.Pagination.Disabled)
	assert.Equal(t, 7, res.Pagination.TotalElements)
	assert.Equal(t, 7, res.Pagination.NumberOfElements)
}

func TestAssemble_SortRecencyDescNullsLast(t *testing.T) {
	t1 := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	noRecency := viewAt(time.Time{}, nil)
	older := viewAt(t1, nil)
	newer := viewAt(time.Time{}, &t2)

	res := Assemble(DataTypeMonthly, []*LineView{noRecency, newer, older}, true, 0, 0)

	require.Len(t, res.Requisitions, 3)
	assert.Equal(t, newer.ID, res.Requisitions[0].ID)
	assert.Equal(t, older.ID, res.Requisitions[1].ID)
	assert.Equal(t, noRecency.ID, res.Requisitions[2].ID)
}

func TestAssemble_UpdatedAtWinsOverCreatedAt(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	touched := viewAt(created, &updated)
	fresh := viewAt(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), nil)

	res := Assemble(DataTypeMonthly, []*LineView{fresh, touched}, true, 0, 0)

	require.Len(t, res.Requisitions, 2)
	assert.Equal(t, touched.ID, res.Requisitions[0].ID, "updated timestamp outranks a later created timestamp")
}
