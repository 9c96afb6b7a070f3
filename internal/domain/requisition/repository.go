package requisition

import (
	"context"

	"procompare/internal/core/id"
)

// MonthlyRepository loads monthly requisition lines.
type MonthlyRepository interface {
	FindByGroupID(ctx context.Context, groupID id.ID) ([]*MonthlyLine, error)

	// ExistsByField reports whether any line in the group with the given
	// unit has the identifying field equal (case-insensitive) to value,
	// excluding the line with excludeID when non-nil. Lines sharing a value
	// under a different unit are distinct items, not duplicates.
	ExistsByField(ctx context.Context, groupID id.ID, unit, field, value string, excludeID *id.ID) (bool, error)
}

// SummaryRepository loads summary requisition lines.
type SummaryRepository interface {
	FindByGroupID(ctx context.Context, groupID id.ID) ([]*SummaryLine, error)
	ExistsByField(ctx context.Context, groupID id.ID, unit, field, value string, excludeID *id.ID) (bool, error)
}
