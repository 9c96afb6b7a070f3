package requisition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKey_TierPriority(t *testing.T) {
	tests := []struct {
		name   string
		fields KeyFields
		want   string
		wantOK bool
	}{
		{
			name:   "old code wins over everything",
			fields: KeyFields{Unit: "PC", OldCode: "a-100", NewCode: "B-200", NameVN: "găng tay", NameEN: "Gloves"},
			want:   "UNIT|pc|OLD|A-100",
			wantOK: true,
		},
		{
			name:   "new code when old code absent",
			fields: KeyFields{Unit: "PC", NewCode: "b-200", NameVN: "găng tay"},
			want:   "UNIT|pc|NEW|B-200",
			wantOK: true,
		},
		{
			name:   "vn name when both codes are sentinels",
			fields: KeyFields{Unit: "PC", OldCode: "NEW", NewCode: "NEW", NameVN: "Gloves"},
			want:   "UNIT|pc|VN|gloves",
			wantOK: true,
		},
		{
			name:   "en name as last resort",
			fields: KeyFields{Unit: "Box", NameEN: "Safety Helmet"},
			want:   "UNIT|box|EN|safety helmet",
			wantOK: true,
		},
		{
			name:   "sentinel is case-insensitive",
			fields: KeyFields{Unit: "PC", OldCode: "new", NameEN: "Tape"},
			want:   "UNIT|pc|EN|tape",
			wantOK: true,
		},
		{
			name:   "whitespace-only code is absent",
			fields: KeyFields{Unit: "PC", OldCode: "   ", NameVN: "Keo"},
			want:   "UNIT|pc|VN|keo",
			wantOK: true,
		},
		{
			name:   "nothing identifiable",
			fields: KeyFields{Unit: "PC"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ResolveKey(tt.fields)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestResolveKey_UnitRequired(t *testing.T) {
	for _, unit := range []string{"", "   "} {
		key, ok := ResolveKey(KeyFields{Unit: unit, OldCode: "A-100", NameVN: "Gloves"})
		assert.False(t, ok)
		assert.Empty(t, key)
	}
}

func TestResolveKey_UnitLowercased(t *testing.T) {
	key, ok := ResolveKey(KeyFields{Unit: "  BOX  ", OldCode: "x1"})
	require.True(t, ok)
	assert.Equal(t, "UNIT|box|OLD|X1", key)
}

func TestResolveField_StopsAtFirstUsableTier(t *testing.T) {
	// Once a tier yields a usable value it is final; later tiers never
	// participate, even for the existence lookup.
	field, value, ok := ResolveField(KeyFields{Unit: "PC", OldCode: "A-100", NewCode: "B-200", NameVN: "Gloves"})
	require.True(t, ok)
	assert.Equal(t, FieldOldCode, field)
	assert.Equal(t, "A-100", value)

	field, value, ok = ResolveField(KeyFields{Unit: "PC", OldCode: "NEW", NewCode: "B-200"})
	require.True(t, ok)
	assert.Equal(t, FieldNewCode, field)
	assert.Equal(t, "B-200", value)

	field, value, ok = ResolveField(KeyFields{OldCode: "NEW", NewCode: "new", NameVN: " Gloves "})
	require.True(t, ok)
	assert.Equal(t, FieldNameVN, field)
	assert.Equal(t, "Gloves", value)

	_, _, ok = ResolveField(KeyFields{Unit: "PC", OldCode: "NEW", NewCode: ""})
	assert.False(t, ok)
}
