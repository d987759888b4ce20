package engine

import (
	"sync"
	"sync/atomic"
)

// ============================================================================
// DATASET — one epoch of loaded data
// ============================================================================
// A Dataset is replaced wholesale on reload or destructive transform; it is
// never mutated in place. The column-name resolution cache lives on the
// Dataset itself, so swapping the dataset pointer retires the cache in the
// same step and nothing memoized can leak across epochs.
// ============================================================================

var epochCounter atomic.Uint64

// Dataset holds an ordered column list and the loaded records.
// Records are shared, not copied; callers must not mutate them after load.
type Dataset struct {
	columns []string
	records []Record
	epoch   uint64

	names sync.Map // requested column name -> resolved record key
}

// NewDataset builds a dataset from an ordered column list and records.
// Columns may be nil when the source has no declared header; column
// discovery then falls back to sampling records.
func NewDataset(columns []string, records []Record) *Dataset {
	return &Dataset{
		columns: columns,
		records: records,
		epoch:   epochCounter.Add(1),
	}
}

// Columns returns the declared column order. May be empty.
func (ds *Dataset) Columns() []string {
	out := make([]string, len(ds.columns))
	copy(out, ds.columns)
	return out
}

// Len returns the number of records.
func (ds *Dataset) Len() int { return len(ds.records) }

// Epoch identifies this dataset version. Results computed against different
// epochs must never be merged.
func (ds *Dataset) Epoch() uint64 { return ds.epoch }
