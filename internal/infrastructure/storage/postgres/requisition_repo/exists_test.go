package requisition_repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
	"procompare/internal/domain/requisition"
)

func TestExistsByField_RejectsUnknownColumn(t *testing.T) {
	repo := NewMonthlyRepo(nil)

	// The whitelist check fails before any query is issued, so a nil
	// transaction manager never gets touched.
	_, err := repo.ExistsByField(context.Background(), id.New(), "pc", "remark", "x", nil)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestIdentityColumns_CoverAllTiers(t *testing.T) {
	for _, field := range []string{
		requisition.FieldOldCode,
		requisition.FieldNewCode,
		requisition.FieldNameVN,
		requisition.FieldNameEN,
	} {
		_, ok := identityColumns[field]
		assert.True(t, ok, field)
	}
}
