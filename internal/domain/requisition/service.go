package requisition

import (
	"context"
	"strings"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
)

// existenceChecker is the slice of the repositories the duplicate check needs.
type existenceChecker interface {
	ExistsByField(ctx context.Context, groupID id.ID, unit, field, value string, excludeID *id.ID) (bool, error)
}

// Service provides the key-based duplicate check over both line variants.
type Service struct {
	monthly existenceChecker
	summary existenceChecker
}

// NewService creates a requisition service.
func NewService(monthly MonthlyRepository, summary SummaryRepository) *Service {
	return &Service{monthly: monthly, summary: summary}
}

// DuplicateCheck is the result of a scoped existence check.
type DuplicateCheck struct {
	Exists bool   `json:"exists"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
}

// CheckDuplicateMonthly checks whether another monthly line in the group
// with the same unit carries the same identifying value. Only the first
// usable tier's field is queried; later tiers are never consulted once an
// earlier tier resolves.
func (s *Service) CheckDuplicateMonthly(ctx context.Context, groupID id.ID, f KeyFields, excludeID *id.ID) (*DuplicateCheck, error) {
	return s.check(ctx, s.monthly, groupID, f, excludeID)
}

// CheckDuplicateSummary is the summary-variant counterpart.
func (s *Service) CheckDuplicateSummary(ctx context.Context, groupID id.ID, f KeyFields, excludeID *id.ID) (*DuplicateCheck, error) {
	return s.check(ctx, s.summary, groupID, f, excludeID)
}

func (s *Service) check(ctx context.Context, repo existenceChecker, groupID id.ID, f KeyFields, excludeID *id.ID) (*DuplicateCheck, error) {
	// Unit scopes the check: the same value under different units names
	// different items. A blank unit makes the line unidentifiable, the same
	// rule ResolveKey applies.
	unit := strings.TrimSpace(f.Unit)
	if unit == "" {
		return &DuplicateCheck{Exists: false}, nil
	}

	field, value, ok := ResolveField(f)
	if !ok {
		// Unidentifiable lines cannot collide with anything.
		return &DuplicateCheck{Exists: false}, nil
	}

	exists, err := repo.ExistsByField(ctx, groupID, unit, field, value, excludeID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &DuplicateCheck{Exists: exists, Field: field, Value: value}, nil
}
