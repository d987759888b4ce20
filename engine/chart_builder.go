package engine

import "sort"

// ============================================================================
// CHART BUILDERS — widget-type-specific output shapes
// ============================================================================
// Every builder is a pure function of (dataset, view, config). Caps match
// the backend engine: 5000 scatter points, 20 pie segments, 100 filter
// values, 1000 table rows (table_builder.go).
// ============================================================================

const (
	maxScatterRows  = 5000
	maxPieSegments  = 20
	maxFilterValues = 100
)

// buildSeries produces bar/line data: one row per (bucketed X, legend)
// group, sorted ascending by X. When a legend column is set several rows may
// share an X value; the consumer splits them into per-legend series.
func buildSeries(ds *Dataset, v *view, cfg WidgetConfig) []Row {
	groups := groupRows(ds, v, cfg)
	sortGroups(groups)

	hasLegend := cfg.Legend != ""
	aggregated := (cfg.Agg == "sum" || cfg.Agg == "avg") && len(cfg.Y) > 0

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		row := Row{"x": g.x}
		if hasLegend {
			row["color"] = g.legend
		}
		switch {
		case !aggregated:
			row["count"] = g.count
		case len(cfg.Y) == 1 || hasLegend:
			// Legend splitting forces a single Y metric.
			row["y"] = g.aggValue(cfg.Agg, ds.resolve(cfg.Y[0]))
		default:
			for _, y := range cfg.Y {
				row[y] = g.aggValue(cfg.Agg, ds.resolve(y))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// buildPie produces one segment per bucketed X value, legend ignored.
// Sum and avg both total the first Y column; anything else counts rows.
// Segments sort descending by value and excess beyond the cap is dropped
// with no "other" fold-in.
func buildPie(ds *Dataset, v *view, cfg WidgetConfig) []Row {
	cfg.Legend = ""
	groups := groupRows(ds, v, cfg)

	useSum := len(cfg.Y) > 0 && (cfg.Agg == "sum" || cfg.Agg == "avg")
	yKey := ""
	if useSum {
		yKey = ds.resolve(cfg.Y[0])
	}

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		var value any
		if useSum {
			value = round2(g.sums[yKey])
		} else {
			value = g.count
		}
		rows = append(rows, Row{"label": g.x, "value": value})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		vi, _ := toFloat(rows[i]["value"])
		vj, _ := toFloat(rows[j]["value"])
		if vi != vj {
			return vi > vj
		}
		return compareValues(rows[i]["label"], rows[j]["label"]) < 0
	})

	if len(rows) > maxPieSegments {
		rows = rows[:maxPieSegments]
	}
	return rows
}

// buildScatter projects each row without aggregation or bucketing:
// {x, y: first Y column or constant 1, color} plus one named field per
// additional Y column when several are configured. Original order,
// capped at 5000 rows.
func buildScatter(ds *Dataset, v *view, cfg WidgetConfig) []Row {
	xKey := ds.resolve(cfg.X)
	legendKey := ""
	if cfg.Legend != "" {
		legendKey = ds.resolve(cfg.Legend)
	}
	yKeys := make([]string, len(cfg.Y))
	for i, y := range cfg.Y {
		yKeys[i] = ds.resolve(y)
	}

	rows := make([]Row, 0, min(v.Len(), maxScatterRows))
	v.Each(func(r Record) bool {
		row := Row{"x": r[xKey]}
		if len(yKeys) == 0 {
			row["y"] = 1
		} else {
			row["y"] = r[yKeys[0]]
			for i := 1; i < len(yKeys); i++ {
				row[cfg.Y[i]] = r[yKeys[i]]
			}
		}
		if legendKey != "" {
			row["color"] = r[legendKey]
		}
		rows = append(rows, row)
		return len(rows) < maxScatterRows
	})
	return rows
}

// buildFilterValues returns the unique non-null resolved values of the
// target column in ascending order, capped at 100.
func buildFilterValues(ds *Dataset, v *view, column string) []any {
	key := ds.resolve(column)

	seen := make(map[any]bool)
	var values []any
	v.Each(func(r Record) bool {
		val := r[key]
		if val == nil || seen[val] {
			return true
		}
		seen[val] = true
		values = append(values, val)
		return true
	})

	sort.SliceStable(values, func(i, j int) bool {
		return compareValues(values[i], values[j]) < 0
	})
	if len(values) > maxFilterValues {
		values = values[:maxFilterValues]
	}
	return values
}
