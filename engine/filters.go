package engine

import "github.com/RoaringBitmap/roaring/v2"

// ============================================================================
// FILTER EVALUATOR — per-column allow-lists
// ============================================================================
// A row passes when, for every column present in the FilterSet, its resolved
// value is a member of that column's allowed set. Columns AND together;
// values within a column OR together. A present-but-empty allowed set
// excludes every row.
// ============================================================================

type columnFilter struct {
	key     string
	allowed []any
}

// applyFilters evaluates the filter set against the dataset and returns a
// zero-copy view of the matching rows.
func applyFilters(ds *Dataset, filters FilterSet) *view {
	if len(filters) == 0 {
		return allRows(ds)
	}

	prepared := make([]columnFilter, 0, len(filters))
	for col, allowed := range filters {
		prepared = append(prepared, columnFilter{key: ds.resolve(col), allowed: allowed})
	}

	bits := roaring.New()
	for i, r := range ds.records {
		pass := true
		for _, cf := range prepared {
			if !memberOf(r[cf.key], cf.allowed) {
				pass = false
				break
			}
		}
		if pass {
			bits.Add(uint32(i))
		}
	}
	return &view{ds: ds, bits: bits}
}

// memberOf checks allow-list membership: type-preserving equality first,
// then a coercive retry so a numeric column still matches filter values that
// arrived as strings (or the other way around).
func memberOf(v any, allowed []any) bool {
	for _, a := range allowed {
		if strictEqual(v, a) {
			return true
		}
	}
	for _, a := range allowed {
		if looseEqual(v, a) {
			return true
		}
	}
	return false
}
