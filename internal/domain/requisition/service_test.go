package requisition

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
)

type fakeExistenceRepo struct {
	queriedUnit  string
	queriedField string
	queriedValue string

	// existingUnit, when set, makes the fake report a match only for that
	// unit, mimicking the unit predicate of the real query.
	existingUnit string

	exists bool
	err    error
}

func (f *fakeExistenceRepo) FindByGroupID(ctx context.Context, groupID id.ID) ([]*MonthlyLine, error) {
	return nil, nil
}

func (f *fakeExistenceRepo) ExistsByField(ctx context.Context, groupID id.ID, unit, field, value string, excludeID *id.ID) (bool, error) {
	f.queriedUnit = unit
	f.queriedField = field
	f.queriedValue = value
	if f.existingUnit != "" && !strings.EqualFold(unit, f.existingUnit) {
		return false, f.err
	}
	return f.exists, f.err
}

type fakeSummaryRepo struct {
	fakeExistenceRepo
}

func (f *fakeSummaryRepo) FindByGroupID(ctx context.Context, groupID id.ID) ([]*SummaryLine, error) {
	return nil, nil
}

func TestCheckDuplicate_QueriesOnlyFirstUsableTier(t *testing.T) {
	monthly := &fakeExistenceRepo{exists: false}
	svc := NewService(monthly, &fakeSummaryRepo{})

	// Old code is the sentinel, new code is usable: only new_code may be
	// queried even though the lookup will find no match.
	res, err := svc.CheckDuplicateMonthly(context.Background(), id.New(), KeyFields{
		Unit:    "PC",
		OldCode: "NEW",
		NewCode: "B-200",
		NameVN:  "Gloves",
	}, nil)
	require.NoError(t, err)

	assert.False(t, res.Exists)
	assert.Equal(t, FieldNewCode, monthly.queriedField)
	assert.Equal(t, "B-200", monthly.queriedValue)
}

func TestCheckDuplicate_ExistingValue(t *testing.T) {
	monthly := &fakeExistenceRepo{exists: true}
	svc := NewService(monthly, &fakeSummaryRepo{})

	res, err := svc.CheckDuplicateMonthly(context.Background(), id.New(), KeyFields{
		Unit:    "PC",
		OldCode: "A-100",
	}, nil)
	require.NoError(t, err)

	assert.True(t, res.Exists)
	assert.Equal(t, FieldOldCode, res.Field)
	assert.Equal(t, "A-100", res.Value)
	assert.Equal(t, "PC", monthly.queriedUnit)
}

func TestCheckDuplicate_DifferentUnitDoesNotCollide(t *testing.T) {
	// The group already has an "A-100" line in unit PC. The same code in
	// unit BOX names a different item and must not be reported as a
	// duplicate.
	monthly := &fakeExistenceRepo{exists: true, existingUnit: "PC"}
	svc := NewService(monthly, &fakeSummaryRepo{})

	res, err := svc.CheckDuplicateMonthly(context.Background(), id.New(), KeyFields{
		Unit:    "BOX",
		OldCode: "A-100",
	}, nil)
	require.NoError(t, err)

	assert.False(t, res.Exists)
	assert.Equal(t, "BOX", monthly.queriedUnit)
}

func TestCheckDuplicate_BlankUnit(t *testing.T) {
	monthly := &fakeExistenceRepo{exists: true}
	svc := NewService(monthly, &fakeSummaryRepo{})

	res, err := svc.CheckDuplicateMonthly(context.Background(), id.New(), KeyFields{
		Unit:    "   ",
		OldCode: "A-100",
	}, nil)
	require.NoError(t, err)

	assert.False(t, res.Exists)
	assert.Empty(t, monthly.queriedField, "repository must not be queried")
}

func TestCheckDuplicate_UnidentifiableLine(t *testing.T) {
	monthly := &fakeExistenceRepo{}
	svc := NewService(monthly, &fakeSummaryRepo{})

	res, err := svc.CheckDuplicateMonthly(context.Background(), id.New(), KeyFields{
		Unit:    "PC",
		OldCode: "NEW",
		NewCode: "new",
	}, nil)
	require.NoError(t, err)

	assert.False(t, res.Exists)
	assert.Empty(t, monthly.queriedField, "repository must not be queried")
}

func TestCheckDuplicate_RepoError(t *testing.T) {
	summary := &fakeSummaryRepo{}
	summary.err = errors.New("connection refused")
	svc := NewService(&fakeExistenceRepo{}, summary)

	_, err := svc.CheckDuplicateSummary(context.Background(), id.New(), KeyFields{
		Unit:    "PC",
		OldCode: "A-100",
	}, nil)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInternal, appErr.Code)
}
