package engine

import (
	"fmt"
	"log"
	"sort"
	"sync/atomic"

	"github.com/hashicorp/go-bexpr"
)

// ============================================================================
// ENGINE FACADE
// ============================================================================
// The externally visible contract is three operations: Columns,
// UniqueValues, and ChartData. Each call is a pure function of
// (dataset, config, filters); the only state kept between calls is the
// dataset reference and its column-name cache. Replacing the dataset is an
// atomic pointer swap — a new epoch — so in-flight computations finish
// against the old data and nothing cached crosses over.
// ============================================================================

// columnSampleSize bounds how many records column discovery inspects.
const columnSampleSize = 50

const errNoData = "no data loaded"

// Engine owns the dataset reference and serves widget queries against it.
// Safe for concurrent use: calls never mutate shared rows, only their own
// transient accumulators and the idempotent name cache.
type Engine struct {
	data atomic.Pointer[Dataset]
}

// New creates an engine. The dataset may be nil until the first Replace.
func New(ds *Dataset) *Engine {
	e := &Engine{}
	if ds != nil {
		e.data.Store(ds)
	}
	return e
}

// Replace swaps in a new dataset, defining a new epoch. The previous
// dataset's resolution cache is retired with it.
func (e *Engine) Replace(ds *Dataset) {
	e.data.Store(ds)
}

// Dataset returns the current dataset reference, or nil before any load.
func (e *Engine) Dataset() *Dataset {
	return e.data.Load()
}

// Columns returns the ordered set of column names, sampled from up to the
// first 50 records. Declared (header) order comes first; keys discovered
// only in the sample follow in sorted order.
func (e *Engine) Columns() []string {
	ds := e.data.Load()
	if ds == nil {
		return nil
	}

	seen := make(map[string]bool, len(ds.columns))
	var cols []string
	for _, c := range ds.columns {
		if !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}

	limit := min(columnSampleSize, len(ds.records))
	for i := 0; i < limit; i++ {
		var extras []string
		for k := range ds.records[i] {
			if !seen[k] {
				seen[k] = true
				extras = append(extras, k)
			}
		}
		sort.Strings(extras)
		cols = append(cols, extras...)
	}
	return cols
}

// UniqueValues returns the distinct non-null values of a column, ascending,
// capped at 100. Used to populate filter widget options.
func (e *Engine) UniqueValues(column string) *ValuesResult {
	ds := e.data.Load()
	if ds == nil {
		return &ValuesResult{Error: errNoData}
	}
	values := buildFilterValues(ds, allRows(ds), column)
	return &ValuesResult{Success: true, Values: values}
}

// ChartData computes the widget-type-specific data shape for one widget
// configuration under the active filters. Any panic during the transform is
// converted to a structured error result; partial output is never surfaced.
func (e *Engine) ChartData(cfg WidgetConfig, filters FilterSet) (result *ChartResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("facet: chart data failed: %v", r)
			result = &ChartResult{Error: fmt.Sprintf("%v", r)}
		}
	}()

	ds := e.data.Load()
	if ds == nil {
		return &ChartResult{Error: errNoData}
	}

	filtered := applyFilters(ds, filters)

	switch cfg.Type {
	case "table":
		return &ChartResult{Rows: buildTable(ds, filtered, cfg)}
	case "filter":
		if cfg.Column == "" {
			return &ChartResult{Error: "no column specified"}
		}
		return &ChartResult{Values: buildFilterValues(ds, filtered, cfg.Column)}
	case "pie":
		return &ChartResult{Rows: buildPie(ds, filtered, cfg)}
	case "bar", "line":
		return &ChartResult{Rows: buildSeries(ds, filtered, cfg)}
	default:
		// Scatter and anything unrecognized: raw per-row projection.
		return &ChartResult{Rows: buildScatter(ds, filtered, cfg)}
	}
}

// Transform destructively replaces the dataset with the rows matching a
// boolean expression (go-bexpr syntax, e.g. `region == "East" and sales > 5`)
// and reports the new column list and row count. Rows the expression fails
// to evaluate against are dropped.
func (e *Engine) Transform(expr string) *TransformResult {
	ds := e.data.Load()
	if ds == nil {
		return &TransformResult{Error: errNoData}
	}

	eval, err := bexpr.CreateEvaluator(expr)
	if err != nil {
		return &TransformResult{Error: fmt.Sprintf("invalid expression: %v", err)}
	}

	kept := make([]Record, 0, len(ds.records))
	for _, r := range ds.records {
		ok, err := eval.Evaluate(map[string]any(r))
		if err == nil && ok {
			kept = append(kept, r)
		}
	}

	next := NewDataset(ds.Columns(), kept)
	e.Replace(next)
	log.Printf("facet: transform kept %d of %d rows (epoch %d)", len(kept), len(ds.records), next.Epoch())

	return &TransformResult{
		Success:  true,
		Columns:  next.Columns(),
		RowCount: len(kept),
	}
}
