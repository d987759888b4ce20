package engine

import "github.com/RoaringBitmap/roaring/v2"

// ============================================================================
// ROW VIEW — zero-copy filtered access
// ============================================================================
// Filtering never copies records. A view holds the parent dataset plus a
// bitmap of matching row ordinals; nil bits means every row is visible.
// Iteration preserves dataset order, which the table and scatter contracts
// depend on.
// ============================================================================

type view struct {
	ds   *Dataset
	bits *roaring.Bitmap // nil = all rows visible
}

func allRows(ds *Dataset) *view {
	return &view{ds: ds}
}

func (v *view) Len() int {
	if v.bits == nil {
		return len(v.ds.records)
	}
	return int(v.bits.GetCardinality())
}

// Each visits visible records in dataset order. The callback returns false
// to stop early, which the row-capped builders use.
func (v *view) Each(fn func(r Record) bool) {
	if v.bits == nil {
		for _, r := range v.ds.records {
			if !fn(r) {
				return
			}
		}
		return
	}
	it := v.bits.Iterator()
	for it.HasNext() {
		if !fn(v.ds.records[it.Next()]) {
			return
		}
	}
}
