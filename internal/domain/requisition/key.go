package requisition

import (
	"strings"
)

// codeSentinel marks a code field whose value has not been assigned yet.
// Such fields are skipped during key resolution and duplicate checks.
const codeSentinel = "NEW"

// Tier tags, in resolution priority order.
const (
	TierOld = "OLD"
	TierNew = "NEW"
	TierVN  = "VN"
	TierEN  = "EN"
)

// Field names the tiers map to for scoped existence checks.
const (
	FieldOldCode = "old_code"
	FieldNewCode = "new_code"
	FieldNameVN  = "name_vn"
	FieldNameEN  = "name_en"
)

// KeyFields carries the identifying fields of a line, in the shape both
// variants share.
type KeyFields struct {
	Unit    string
	OldCode string
	NewCode string
	NameVN  string
	NameEN  string
}

type keyTier struct {
	tag       string
	field     string
	value     func(KeyFields) string
	usable    func(string) bool
	normalize func(string) string
}

// tiers is evaluated in order with early exit; the first satisfied tier
// determines both the tag and the value. Order matters and must not change.
var tiers = []keyTier{
	{TierOld, FieldOldCode, func(f KeyFields) string { return f.OldCode }, usableCode, strings.ToUpper},
	{TierNew, FieldNewCode, func(f KeyFields) string { return f.NewCode }, usableCode, strings.ToUpper},
	{TierVN, FieldNameVN, func(f KeyFields) string { return f.NameVN }, present, strings.ToLower},
	{TierEN, FieldNameEN, func(f KeyFields) string { return f.NameEN }, present, strings.ToLower},
}

func present(v string) bool {
	return v != ""
}

// usableCode reports whether a code value identifies anything: non-blank and
// not the unassigned-code sentinel.
func usableCode(v string) bool {
	return v != "" && !strings.EqualFold(v, codeSentinel)
}

// ResolveKey builds the canonical matching key for a line. Unit is
// mandatory; without it no key exists. Code tiers win over description
// tiers, and code values are upper-cased while descriptions are lower-cased
// so that equal keys mean case-insensitively equal values.
//
// Returns ok=false when the line is unidentifiable.
func ResolveKey(f KeyFields) (string, bool) {
	unit := strings.TrimSpace(f.Unit)
	if unit == "" {
		return "", false
	}
	for _, t := range tiers {
		v := strings.TrimSpace(t.value(f))
		if t.usable(v) {
			return "UNIT|" + strings.ToLower(unit) + "|" + t.tag + "|" + t.normalize(v), true
		}
	}
	return "", false
}

// ResolveField returns the first satisfied tier's field name and raw trimmed
// value. Duplicate checks query only that field: once a tier yields a usable
// value the resolution is final, even if the lookup on that field finds no
// match.
func ResolveField(f KeyFields) (field, value string, ok bool) {
	for _, t := range tiers {
		v := strings.TrimSpace(t.value(f))
		if t.usable(v) {
			return t.field, v, true
		}
	}
	return "", "", false
}
