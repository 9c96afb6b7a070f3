package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"procompare/internal/core/entity"
	"procompare/internal/core/id"
)

type MockCatalog struct {
	entity.Catalog
	Symbol string  `db:"symbol" json:"symbol"`
	Rate   *string `db:"rate" json:"rate,omitempty"`
	Skip   string  `db:"-" json:"-"`
}

func TestExtractDBColumns_EmbeddedCatalog(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{
		"id", "code", "name", "deletion_mark", "version", "created_at", "updated_at",
		"symbol", "rate",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
}

func TestStructToMap_EmbeddedCatalog(t *testing.T) {
	now := time.Now().UTC()
	cat := MockCatalog{
		Catalog: entity.Catalog{
			ID:           id.New(),
			Code:         "TEST",
			Name:         "Test Name",
			DeletionMark: true,
			Version:      5,
			CreatedAt:    now,
		},
		Symbol: "T",
		Skip:   "never persisted",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, now, m["created_at"])
	assert.Equal(t, "T", m["symbol"])
	assert.NotContains(t, m, "-")
	assert.NotContains(t, m, "Skip")
}

func TestStructToMap_PointerInput(t *testing.T) {
	cat := &MockCatalog{Symbol: "P"}
	m := StructToMap(cat)
	assert.Equal(t, "P", m["symbol"])
}
