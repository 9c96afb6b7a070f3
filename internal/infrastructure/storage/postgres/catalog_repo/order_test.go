package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo[any]("test_table", []string{"id", "code", "name", "currency"}, func() any { return nil }, nil, nil)
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{name: "default", orderBy: "", want: "name ASC"},
		{name: "plain field", orderBy: "code", want: "code ASC"},
		{name: "descending", orderBy: "-created_at", want: "created_at DESC"},
		{name: "explicit ascending", orderBy: "+currency", want: "currency ASC"},
		{name: "unknown column rejected", orderBy: "password", wantErr: true},
		{name: "injection rejected", orderBy: "name; DROP TABLE test_table", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseSelect_SQL(t *testing.T) {
	repo := newTestRepo()

	sql, args, err := repo.baseSelect().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, code, name, currency FROM test_table", sql)
	assert.Empty(t, args)
}
