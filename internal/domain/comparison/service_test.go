package comparison

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
	"procompare/internal/core/types"
	"procompare/internal/domain/catalogs/reqgroup"
	"procompare/internal/domain/catalogs/supplier"
	"procompare/internal/domain/requisition"
	"procompare/pkg/config"
)

// --- Fakes ---

type fakeDirectory struct {
	ids     []id.ID
	groups  map[id.ID]*reqgroup.Group
	listErr error
}

func (f *fakeDirectory) ListGroupIDs(ctx context.Context) ([]id.ID, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ids, nil
}

func (f *fakeDirectory) GetGroup(ctx context.Context, groupID id.ID) (*reqgroup.Group, error) {
	g, ok := f.groups[groupID]
	if !ok {
		return nil, errors.New("group not found")
	}
	return g, nil
}

type fakeMonthly struct {
	byGroup map[id.ID][]*requisition.MonthlyLine
	errFor  map[id.ID]error
}

func (f *fakeMonthly) FindByGroupID(ctx context.Context, groupID id.ID) ([]*requisition.MonthlyLine, error) {
	if err := f.errFor[groupID]; err != nil {
		return nil, err
	}
	return f.byGroup[groupID], nil
}

type fakeSummary struct {
	byGroup map[id.ID][]*requisition.SummaryLine
	errFor  map[id.ID]error
}

func (f *fakeSummary) FindByGroupID(ctx context.Context, groupID id.ID) ([]*requisition.SummaryLine, error) {
	if err := f.errFor[groupID]; err != nil {
		return nil, err
	}
	return f.byGroup[groupID], nil
}

type fakeOffers struct {
	mu        sync.Mutex
	offers    map[string][]*supplier.Offer // itemCode|currency
	suppliers map[id.ID]*supplier.Supplier
	requested []string
}

func (f *fakeOffers) FindOffers(ctx context.Context, itemCode, currency string) ([]*supplier.Offer, error) {
	f.mu.Lock()
	f.requested = append(f.requested, itemCode+"|"+currency)
	f.mu.Unlock()
	return f.offers[itemCode+"|"+currency], nil
}

func (f *fakeOffers) GetSupplier(ctx context.Context, supplierID id.ID) (*supplier.Supplier, error) {
	sup, ok := f.suppliers[supplierID]
	if !ok {
		return nil, errors.New("supplier not found")
	}
	return sup, nil
}

type fakeNames struct{}

func (fakeNames) TypeName(ctx context.Context, typeID *id.ID) string { return "Unknown" }

func (fakeNames) DepartmentName(ctx context.Context, deptID id.ID) string { return "Unknown" }

// --- Fixtures ---

func group(currency string) *reqgroup.Group {
	g := reqgroup.NewGroup("RG-2026-00001", "August cycle")
	g.ID = id.New()
	if currency != "" {
		g.Currency = &currency
	}
	return g
}

func monthlyLine(groupID id.ID, oldCode string) *requisition.MonthlyLine {
	return &requisition.MonthlyLine{
		ID:        id.New(),
		GroupID:   groupID,
		OldCode:   oldCode,
		Unit:      "PC",
		OrderQty:  types.MustMoneyPtr("10"),
		CreatedAt: time.Now(),
	}
}

func newEngine(dir *fakeDirectory, monthly *fakeMonthly, summary *fakeSummary, offers *fakeOffers) *Service {
	return NewService(ServiceConfig{
		Groups:    dir,
		Monthly:   monthly,
		Summary:   summary,
		Offers:    offers,
		TypeNames: fakeNames{},
		DeptNames: fakeNames{},
		Search:    config.SearchConfig{GroupLoadWorkers: 2, LineWorkers: 4},
	})
}

// --- Tests ---

func TestSearch_InvalidDataType(t *testing.T) {
	svc := newEngine(&fakeDirectory{}, &fakeMonthly{}, &fakeSummary{}, &fakeOffers{})

	_, err := svc.Search(context.Background(), SearchRequest{
		GroupID:  ScopeAll,
		DataType: DataType("WEEKLY"),
		Size:     10,
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidDataType, appErr.Code)
}

func TestSearch_ScopeResolutionFailure(t *testing.T) {
	dir := &fakeDirectory{listErr: errors.New("directory down")}
	svc := newEngine(dir, &fakeMonthly{}, &fakeSummary{}, &fakeOffers{})

	_, err := svc.Search(context.Background(), SearchRequest{
		GroupID:  ScopeAll,
		DataType: DataTypeMonthly,
		Size:     10,
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeScopeResolution, appErr.Code)
}

func TestSearch_PartialGroupFailureIsolated(t *testing.T) {
	groupA := group("")
	groupB := group("")

	dir := &fakeDirectory{
		ids:    []id.ID{groupA.ID, groupB.ID},
		groups: map[id.ID]*reqgroup.Group{groupA.ID: groupA, groupB.ID: groupB},
	}
	monthly := &fakeMonthly{
		byGroup: map[id.ID][]*requisition.MonthlyLine{
			groupA.ID: {monthlyLine(groupA.ID, "SAP-001"), monthlyLine(groupA.ID, "SAP-002")},
		},
		errFor: map[id.ID]error{groupB.ID: errors.New("backend error")},
	}

	svc := newEngine(dir, monthly, &fakeSummary{}, &fakeOffers{})

	res, err := svc.Search(context.Background(), SearchRequest{
		GroupID:           ScopeAll,
		DataType:          DataTypeMonthly,
		DisablePagination: true,
	})
	require.NoError(t, err, "one failing group must not abort the call")

	require.NotNil(t, res.Monthly)
	assert.Equal(t, 2, res.Monthly.TotalElements, "totals reflect only loaded groups")
	for _, v := range res.Monthly.Requisitions {
		assert.Equal(t, groupA.ID, v.GroupID)
	}
}

func TestSearch_PerGroupCurrency(t *testing.T) {
	vndGroup := group("")
	usdGroup := group("USD")

	dir := &fakeDirectory{
		ids:    []id.ID{vndGroup.ID, usdGroup.ID},
		groups: map[id.ID]*reqgroup.Group{vndGroup.ID: vndGroup, usdGroup.ID: usdGroup},
	}
	monthly := &fakeMonthly{
		byGroup: map[id.ID][]*requisition.MonthlyLine{
			vndGroup.ID: {monthlyLine(vndGroup.ID, "SAP-001")},
			usdGroup.ID: {monthlyLine(usdGroup.ID, "SAP-001")},
		},
	}
	offers := &fakeOffers{}

	svc := newEngine(dir, monthly, &fakeSummary{}, offers)

	res, err := svc.Search(context.Background(), SearchRequest{
		GroupID:           ScopeAll,
		DataType:          DataTypeMonthly,
		DisablePagination: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Monthly)
	require.Len(t, res.Monthly.Requisitions, 2)

	// Each group's lines compare in that group's currency; currencies are
	// never globalized across the batch.
	currencies := map[id.ID]string{}
	for _, v := range res.Monthly.Requisitions {
		currencies[v.GroupID] = v.Currency
	}
	assert.Equal(t, types.DefaultCurrency, currencies[vndGroup.ID])
	assert.Equal(t, "USD", currencies[usdGroup.ID])

	assert.ElementsMatch(t, []string{"SAP-001|VND", "SAP-001|USD"}, offers.requested)
}

func TestSearch_AllModeRunsBothSourcesIndependently(t *testing.T) {
	g := group("")

	dir := &fakeDirectory{
		ids:    []id.ID{g.ID},
		groups: map[id.ID]*reqgroup.Group{g.ID: g},
	}
	monthly := &fakeMonthly{
		byGroup: map[id.ID][]*requisition.MonthlyLine{
			g.ID: {monthlyLine(g.ID, "SAP-001")},
		},
	}
	summary := &fakeSummary{
		byGroup: map[id.ID][]*requisition.SummaryLine{
			g.ID: {
				{ID: id.New(), GroupID: g.ID, OldCode: "SAP-001", Unit: "PC", CreatedAt: time.Now()},
				{ID: id.New(), GroupID: g.ID, OldCode: "SAP-002", Unit: "PC", CreatedAt: time.Now()},
			},
		},
	}

	svc := newEngine(dir, monthly, summary, &fakeOffers{})

	res, err := svc.Search(context.Background(), SearchRequest{
		GroupID:  g.ID.String(),
		DataType: DataTypeAll,
		Page:     0,
		Size:     10,
	})
	require.NoError(t, err)

	require.NotNil(t, res.Summary)
	require.NotNil(t, res.Monthly)
	assert.Equal(t, DataTypeAll, res.DataType)
	assert.Equal(t, 2, res.Summary.TotalElements)
	assert.Equal(t, 1, res.Monthly.TotalElements)
	assert.Equal(t, DataTypeSummary, res.Summary.DataType)
	assert.Equal(t, DataTypeMonthly, res.Monthly.DataType)
}

func TestSearch_SummaryTotals(t *testing.T) {
	g := group("")
	deptA, deptB := id.New(), id.New()

	dir := &fakeDirectory{
		ids:    []id.ID{g.ID},
		groups: map[id.ID]*reqgroup.Group{g.ID: g},
	}
	summary := &fakeSummary{
		byGroup: map[id.ID][]*requisition.SummaryLine{
			g.ID: {{
				ID:       id.New(),
				GroupID:  g.ID,
				OldCode:  "SAP-001",
				Unit:     "PC",
				OrderQty: types.MustMoneyPtr("10"),
				Price:    types.MustMoneyPtr("2.5"),
				Departments: map[id.ID]requisition.DepartmentQty{
					deptA: {Buy: types.MustMoneyPtr("4")},
					deptB: {Buy: types.MustMoneyPtr("6")},
				},
				CreatedAt: time.Now(),
			}},
		},
	}

	svc := newEngine(dir, &fakeMonthly{}, summary, &fakeOffers{})

	res, err := svc.Search(context.Background(), SearchRequest{
		GroupID:           g.ID.String(),
		DataType:          DataTypeSummary,
		DisablePagination: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Summary)
	require.Len(t, res.Summary.Requisitions, 1)

	v := res.Summary.Requisitions[0]
	require.NotNil(t, v.TotalBuyQty)
	assert.Equal(t, "10", v.TotalBuyQty.String())
	require.NotNil(t, v.TotalPrice)
	assert.Equal(t, "25", v.TotalPrice.String())
	assert.Nil(t, v.Comparison, "summary lines skip price comparison")
}

func TestSearch_FilterAppliedOnlyWhenFlagged(t *testing.T) {
	g := group("")

	dir := &fakeDirectory{
		ids:    []id.ID{g.ID},
		groups: map[id.ID]*reqgroup.Group{g.ID: g},
	}

	matching := monthlyLine(g.ID, "SAP-001")
	matching.NameEN = "Rubber Gloves"
	other := monthlyLine(g.ID, "SAP-002")
	other.NameEN = "Helmet"

	monthly := &fakeMonthly{
		byGroup: map[id.ID][]*requisition.MonthlyLine{g.ID: {matching, other}},
	}

	svc := newEngine(dir, monthly, &fakeSummary{}, &fakeOffers{})

	res, err := svc.Search(context.Background(), SearchRequest{
		GroupID:           g.ID.String(),
		DataType:          DataTypeMonthly,
		Filter:            SearchFilter{NameEN: "gloves", HasFilter: true},
		DisablePagination: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Monthly)
	require.Len(t, res.Monthly.Requisitions, 1)
	assert.Equal(t, matching.ID, res.Monthly.Requisitions[0].ID)

	// Same filter fields with the flag off: predicate is skipped entirely.
	res, err = svc.Search(context.Background(), SearchRequest{
		GroupID:           g.ID.String(),
		DataType:          DataTypeMonthly,
		Filter:            SearchFilter{NameEN: "gloves", HasFilter: false},
		DisablePagination: true,
	})
	require.NoError(t, err)
	assert.Len(t, res.Monthly.Requisitions, 2)
}

func TestSearch_InvalidGroupID(t *testing.T) {
	svc := newEngine(&fakeDirectory{}, &fakeMonthly{}, &fakeSummary{}, &fakeOffers{})

	_, err := svc.Search(context.Background(), SearchRequest{
		GroupID:  "not-a-uuid",
		DataType: DataTypeMonthly,
		Size:     10,
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestSearch_PaginationValidation(t *testing.T) {
	svc := newEngine(&fakeDirectory{}, &fakeMonthly{}, &fakeSummary{}, &fakeOffers{})

	_, err := svc.Search(context.Background(), SearchRequest{
		GroupID:  ScopeAll,
		DataType: DataTypeMonthly,
		Page:     -1,
		Size:     10,
	})
	require.Error(t, err)

	_, err = svc.Search(context.Background(), SearchRequest{
		GroupID:  ScopeAll,
		DataType: DataTypeMonthly,
		Page:     0,
		Size:     0,
	})
	require.Error(t, err)
}
