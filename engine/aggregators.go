package engine

import (
	"fmt"
	"sort"
)

// ============================================================================
// AGGREGATOR — grouping, time bucketing, count/sum/avg
// ============================================================================
// Single pass over the filtered view: O(rows) time, O(distinct groups)
// space. Group identity is the composite (bucketed X, legend value) struct
// key, so legend values containing arbitrary text can never collide with a
// neighboring group the way a string-joined key could.
// ============================================================================

const unknownBucket = "Unknown"

type groupKey struct {
	x      any
	legend any
}

type group struct {
	x      any
	legend any
	count  int
	sums   map[string]float64
	// nums counts only rows whose Y value coerced to a number; non-numeric
	// contributions are excluded from both numerator and denominator.
	nums map[string]int
}

// groupRows buckets the view by (bucketed X, legend) and accumulates per-Y
// running sums. Groups come back in first-seen order; callers sort.
func groupRows(ds *Dataset, v *view, cfg WidgetConfig) []*group {
	xKey := ds.resolve(cfg.X)
	legendKey := ""
	if cfg.Legend != "" {
		legendKey = ds.resolve(cfg.Legend)
	}
	yKeys := make([]string, len(cfg.Y))
	for i, y := range cfg.Y {
		yKeys[i] = ds.resolve(y)
	}

	groups := make(map[groupKey]*group)
	var order []*group

	v.Each(func(r Record) bool {
		x := bucketX(r[xKey], cfg.TimeGroup)
		var legend any
		if legendKey != "" {
			legend = r[legendKey]
		}

		k := groupKey{x: x, legend: legend}
		g := groups[k]
		if g == nil {
			g = &group{
				x:      x,
				legend: legend,
				sums:   make(map[string]float64, len(yKeys)),
				nums:   make(map[string]int, len(yKeys)),
			}
			groups[k] = g
			order = append(order, g)
		}

		g.count++
		for _, y := range yKeys {
			if f, ok := toFloat(r[y]); ok {
				g.sums[y] += f
				g.nums[y]++
			}
		}
		return true
	})

	return order
}

// bucketX converts a raw X value into its group bucket. Missing values
// become the literal "Unknown". With a time group configured the value is
// parsed as a date and truncated on local calendar fields; values that do
// not parse stay categorical.
func bucketX(v any, timeGroup string) any {
	if v == nil {
		return unknownBucket
	}
	if timeGroup == "" {
		return v
	}
	t, ok := parseDate(v)
	if !ok {
		return v
	}
	switch timeGroup {
	case "year":
		return t.Year()
	case "month":
		return fmt.Sprintf("%04d-%02d-01", t.Year(), int(t.Month()))
	case "day":
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	default:
		return v
	}
}

// aggValue produces the output value for one Y column of one group.
func (g *group) aggValue(agg, yKey string) float64 {
	switch agg {
	case "avg":
		if g.nums[yKey] == 0 {
			return 0
		}
		return round2(g.sums[yKey] / float64(g.nums[yKey]))
	default: // sum
		return round2(g.sums[yKey])
	}
}

// sortGroups orders groups ascending by X, then by legend value, using the
// generic scalar comparison.
func sortGroups(groups []*group) {
	sort.SliceStable(groups, func(i, j int) bool {
		if c := compareValues(groups[i].x, groups[j].x); c != 0 {
			return c < 0
		}
		return compareValues(groups[i].legend, groups[j].legend) < 0
	})
}
