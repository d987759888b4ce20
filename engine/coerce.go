package engine

import (
	"math"
	"strconv"
	"time"
)

// ============================================================================
// VALUE COERCION — the single home for loose scalar semantics
// ============================================================================
// Filter membership, group ordering, and time bucketing all funnel through
// the functions in this file. Coercion rules:
//   - strictEqual: same dynamic type, same value.
//   - looseEqual: both sides numerically coercible and equal. A numeric
//     string ("42") equals the number 42; nothing else crosses types.
//   - compareValues: numbers before strings, numbers numerically, strings
//     lexically. Mixed-type order is deterministic but carries no meaning.
// ============================================================================

// toFloat coerces a scalar to float64. Strings parse with strconv; booleans
// and nil are not numeric. Integer types appear when records are built by
// hand rather than through a loader.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// strictEqual is type-preserving equality. Numeric types of different widths
// still compare equal; "42" and 42.0 do not.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr || bStr {
		return aStr && bStr && as == bs
	}
	ab, aBool := a.(bool)
	bb, bBool := b.(bool)
	if aBool || bBool {
		return aBool && bBool && ab == bb
	}
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	return aNum && bNum && af == bf
}

// looseEqual retries equality with cross-type numeric coercion. Guards
// against type drift between the filter UI and the loaded data.
func looseEqual(a, b any) bool {
	if strictEqual(a, b) {
		return true
	}
	af, aOK := toFloat(a)
	bf, bOK := toFloat(b)
	return aOK && bOK && af == bf
}

// typeRank orders scalars of different kinds: nil < bool < number < string.
func typeRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case string:
		return 3
	default:
		return 2
	}
}

// compareValues is the generic ordering used for X-axis sorting and unique
// value lists. Returns -1, 0, or 1.
func compareValues(a, b any) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case 0:
		return 0
	case 1:
		ab, bb := a.(bool), b.(bool)
		if ab == bb {
			return 0
		}
		if !ab {
			return -1
		}
		return 1
	case 2:
		af, _ := toFloat(a)
		bf, _ := toFloat(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	default:
		as, bs := a.(string), b.(string)
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	}
}

// dateLayouts covers the formats file loaders leave date columns in.
// ISO forms first; they dominate exported data.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// parseDate attempts to read a scalar as a calendar date.
func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// round2 rounds to 2 decimal places, matching the backend's ROUND(..., 2).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
