package comparison

import (
	"context"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
	"procompare/internal/domain/catalogs/supplier"
	"procompare/internal/domain/requisition"
	"procompare/pkg/config"
	"procompare/pkg/logger"
)

const (
	defaultGroupWorkers = 4
	defaultLineWorkers  = 8
)

// Service is the search aggregation engine. It is stateless between calls;
// all inputs are read-only snapshots for the duration of one search.
type Service struct {
	groups    GroupDirectory
	monthly   MonthlyRepository
	summary   SummaryRepository
	offers    OfferRepository
	typeNames TypeNameResolver
	deptNames DeptNameResolver

	groupWorkers int
	lineWorkers  int

	log    *logger.Logger
	tracer trace.Tracer
}

// ServiceConfig wires the engine's collaborators.
type ServiceConfig struct {
	Groups    GroupDirectory
	Monthly   MonthlyRepository
	Summary   SummaryRepository
	Offers    OfferRepository
	TypeNames TypeNameResolver
	DeptNames DeptNameResolver
	Search    config.SearchConfig
	Logger    *logger.Logger
}

// NewService creates the comparison engine.
func NewService(cfg ServiceConfig) *Service {
	groupWorkers := cfg.Search.GroupLoadWorkers
	if groupWorkers <= 0 {
		groupWorkers = defaultGroupWorkers
	}
	lineWorkers := cfg.Search.LineWorkers
	if lineWorkers <= 0 {
		lineWorkers = defaultLineWorkers
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Service{
		groups:       cfg.Groups,
		monthly:      cfg.Monthly,
		summary:      cfg.Summary,
		offers:       cfg.Offers,
		typeNames:    cfg.TypeNames,
		deptNames:    cfg.DeptNames,
		groupWorkers: groupWorkers,
		lineWorkers:  lineWorkers,
		log:          log.WithComponent("comparison"),
		tracer:       otel.Tracer("procompare/comparison"),
	}
}

// Search runs the unified requisition search. Invalid input fails before
// any loading; scope resolution failure is the only hard load-phase error.
// Per-group and per-line failures are logged and skipped.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "comparison.Search",
		trace.WithAttributes(
			attribute.String("search.data_type", string(req.DataType)),
			attribute.String("search.group_id", req.GroupID),
		))
	defer span.End()

	dataType, err := ParseDataType(string(req.DataType))
	if err != nil {
		return nil, err
	}

	if !req.DisablePagination {
		if req.Page < 0 {
			return nil, apperror.NewValidation("page must not be negative").
				WithDetail("page", req.Page)
		}
		if req.Size <= 0 {
			return nil, apperror.NewValidation("size must be positive").
				WithDetail("size", req.Size)
		}
	}

	groupIDs, err := s.resolveScope(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	cache := newLookupCache(s.typeNames, s.deptNames, s.offers)

	result := &SearchResult{DataType: dataType}

	if dataType == DataTypeSummary || dataType == DataTypeAll {
		result.Summary = s.searchSummary(ctx, groupIDs, req, cache)
	}
	if dataType == DataTypeMonthly || dataType == DataTypeAll {
		result.Monthly = s.searchMonthly(ctx, groupIDs, req, cache)
	}

	return result, nil
}

// resolveScope maps the caller's group parameter to a concrete ID list.
// "all", blank or whitespace resolves to every known group; anything else
// must be a single valid group ID.
func (s *Service) resolveScope(ctx context.Context, groupID string) ([]id.ID, error) {
	scope := strings.TrimSpace(groupID)
	if scope == "" || strings.EqualFold(scope, ScopeAll) {
		ids, err := s.groups.ListGroupIDs(ctx)
		if err != nil {
			return nil, apperror.NewScopeResolution(err)
		}
		return ids, nil
	}

	gid, err := id.Parse(scope)
	if err != nil {
		return nil, apperror.NewValidation("invalid group id").
			WithDetail("groupId", scope)
	}
	return []id.ID{gid}, nil
}

// forEachGroup fans out fn over the group scope with bounded concurrency.
// A failing group is logged and contributes nothing; the remaining groups
// proceed.
func (s *Service) forEachGroup(ctx context.Context, groupIDs []id.ID, fn func(ctx context.Context, groupID id.ID) error) {
	sem := make(chan struct{}, s.groupWorkers)
	var wg sync.WaitGroup

	for _, gid := range groupIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(gid id.ID) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := fn(ctx, gid); err != nil {
				s.log.WithContext(ctx).Warnw("group load failed, skipping",
					"group_id", gid, "error", err)
			}
		}(gid)
	}

	wg.Wait()
}

func (s *Service) searchSummary(ctx context.Context, groupIDs []id.ID, req SearchRequest, cache *lookupCache) *UnifiedResult {
	ctx, span := s.tracer.Start(ctx, "comparison.searchSummary")
	defer span.End()

	var mu sync.Mutex
	items := make([]*LineView, 0)

	s.forEachGroup(ctx, groupIDs, func(ctx context.Context, gid id.ID) error {
		group, err := s.groups.GetGroup(ctx, gid)
		if err != nil {
			return err
		}
		currency := group.ResolveCurrency()

		lines, err := s.summary.FindByGroupID(ctx, gid)
		if err != nil {
			return err
		}

		views := make([]*LineView, 0, len(lines))
		for _, line := range lines {
			view := s.summaryView(ctx, line, currency, cache)
			if view == nil {
				continue
			}
			if !req.Filter.Match(view) {
				continue
			}
			views = append(views, view)
		}

		mu.Lock()
		items = append(items, views...)
		mu.Unlock()
		return nil
	})

	return Assemble(DataTypeSummary, items, req.DisablePagination, req.Page, req.Size)
}

func (s *Service) searchMonthly(ctx context.Context, groupIDs []id.ID, req SearchRequest, cache *lookupCache) *UnifiedResult {
	ctx, span := s.tracer.Start(ctx, "comparison.searchMonthly")
	defer span.End()

	type monthlyItem struct {
		view     *LineView
		line     *requisition.MonthlyLine
		currency string
	}

	var mu sync.Mutex
	collected := make([]monthlyItem, 0)

	s.forEachGroup(ctx, groupIDs, func(ctx context.Context, gid id.ID) error {
		// Currency is resolved per group before comparison; lines from
		// different groups in one call may compare in different currencies.
		group, err := s.groups.GetGroup(ctx, gid)
		if err != nil {
			return err
		}
		currency := group.ResolveCurrency()

		lines, err := s.monthly.FindByGroupID(ctx, gid)
		if err != nil {
			return err
		}

		matched := make([]monthlyItem, 0, len(lines))
		for _, line := range lines {
			view := s.monthlyView(ctx, line, currency, cache)
			if view == nil {
				continue
			}
			if !req.Filter.Match(view) {
				continue
			}
			matched = append(matched, monthlyItem{view: view, line: line, currency: currency})
		}

		mu.Lock()
		collected = append(collected, matched...)
		mu.Unlock()
		return nil
	})

	// Enrich surviving lines concurrently; each computation is pure given
	// its inputs. A line whose offer lookup fails is dropped, not fatal.
	sem := make(chan struct{}, s.lineWorkers)
	var wg sync.WaitGroup
	ok := make([]bool, len(collected))

	for i := range collected {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			item := collected[i]

			found, err := s.findOffers(ctx, item.line.OldCode, item.currency)
			if err != nil {
				s.log.WithContext(ctx).Warnw("offer lookup failed, dropping line",
					"line_id", item.line.ID, "item_code", item.line.OldCode, "error", err)
				return
			}

			cmp := Compare(found, item.line.SupplierID, item.line.OrderQty)
			item.view.Comparison = &cmp
			ok[i] = true
		}(i)
	}
	wg.Wait()

	items := make([]*LineView, 0, len(collected))
	for i, item := range collected {
		if ok[i] {
			items = append(items, item.view)
		}
	}

	return Assemble(DataTypeMonthly, items, req.DisablePagination, req.Page, req.Size)
}

// findOffers guards the blank-code case; no code means no candidates, not
// an error.
func (s *Service) findOffers(ctx context.Context, itemCode, currency string) ([]*supplier.Offer, error) {
	code := strings.TrimSpace(itemCode)
	if code == "" {
		return nil, nil
	}
	return s.offers.FindOffers(ctx, code, currency)
}

func (s *Service) monthlyView(ctx context.Context, line *requisition.MonthlyLine, currency string, cache *lookupCache) *LineView {
	if line == nil {
		return nil
	}

	view := &LineView{
		Source:         SourceMonthly,
		ID:             line.ID,
		GroupID:        line.GroupID,
		TypeLevel1Name: cache.typeName(ctx, line.TypeLevel1ID),
		TypeLevel2Name: cache.typeName(ctx, line.TypeLevel2ID),
		OldCode:        line.OldCode,
		NewCode:        line.NewCode,
		NameVN:         line.NameVN,
		NameEN:         line.NameEN,
		Unit:           line.Unit,
		RequestQty:     line.RequestQty,
		BuyQty:         line.BuyQty,
		SafeStock:      line.SafeStock,
		Inventory:      line.Inventory,
		OrderQty:       line.OrderQty,
		SupplierID:     line.SupplierID,
		Currency:       currency,
		Remark:         line.Remark,
		Note:           line.Note,
		CreatedAt:      line.CreatedAt,
		UpdatedAt:      line.UpdatedAt,
	}

	if line.SupplierID != nil {
		view.SupplierName = cache.supplierName(ctx, *line.SupplierID)
	}

	view.Departments = make([]DepartmentView, 0, len(line.Departments))
	for _, d := range line.Departments {
		name := d.DepartmentName
		if name == "" {
			name = cache.departmentName(ctx, d.DepartmentID)
		}
		view.Departments = append(view.Departments, DepartmentView{
			DepartmentID:   d.DepartmentID,
			DepartmentName: name,
			RequestQty:     d.RequestQty,
			BuyQty:         d.BuyQty,
		})
	}

	return view
}

func (s *Service) summaryView(ctx context.Context, line *requisition.SummaryLine, currency string, cache *lookupCache) *LineView {
	if line == nil {
		return nil
	}

	totalBuy := line.TotalBuyQty()

	view := &LineView{
		Source:         SourceSummary,
		ID:             line.ID,
		GroupID:        line.GroupID,
		TypeLevel1Name: cache.typeName(ctx, line.TypeLevel1ID),
		TypeLevel2Name: cache.typeName(ctx, line.TypeLevel2ID),
		OldCode:        line.OldCode,
		NewCode:        line.NewCode,
		NameVN:         line.NameVN,
		NameEN:         line.NameEN,
		Unit:           line.Unit,
		OrderQty:       line.OrderQty,
		SupplierID:     line.SupplierID,
		Currency:       currency,
		TotalBuyQty:    &totalBuy,
		TotalPrice:     line.TotalPrice(),
		Remark:         line.Remark,
		CreatedAt:      line.CreatedAt,
		UpdatedAt:      line.UpdatedAt,
	}

	if line.SupplierID != nil {
		view.SupplierName = cache.supplierName(ctx, *line.SupplierID)
	}

	// Summary lines store only department IDs; names come from the lookup.
	view.Departments = make([]DepartmentView, 0, len(line.Departments))
	for deptID, qty := range line.Departments {
		view.Departments = append(view.Departments, DepartmentView{
			DepartmentID:   deptID,
			DepartmentName: cache.departmentName(ctx, deptID),
			RequestQty:     qty.Qty,
			BuyQty:         qty.Buy,
		})
	}

	return view
}
