package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketX(t *testing.T) {
	tests := []struct {
		name      string
		in        any
		timeGroup string
		want      any
	}{
		{"missing becomes Unknown", nil, "", "Unknown"},
		{"missing with bucketing", nil, "month", "Unknown"},
		{"no bucketing passes through", "East", "", "East"},
		{"year", "2023-01-15", "year", 2023},
		{"month", "2023-01-15", "month", "2023-01-01"},
		{"day", "2023-01-15", "day", "2023-01-15"},
		{"month from timestamp", "2023-12-31T23:59:59", "month", "2023-12-01"},
		{"unparseable stays categorical", "Q3 estimate", "month", "Q3 estimate"},
		{"number stays categorical", 7.0, "year", 7.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bucketX(tt.in, tt.timeGroup))
		})
	}
}

func TestGroupRowsByMonth(t *testing.T) {
	ds := salesDataset()
	cfg := WidgetConfig{Type: "bar", X: "date", TimeGroup: "month", Y: ColumnList{"sales"}, Agg: "sum"}

	groups := groupRows(ds, allRows(ds), cfg)
	sortGroups(groups)

	require.Len(t, groups, 2)
	assert.Equal(t, "2023-01-01", groups[0].x)
	assert.Equal(t, 2, groups[0].count)
	assert.Equal(t, 17.0, groups[0].sums["sales"])
	assert.Equal(t, "2023-02-01", groups[1].x)
	assert.Equal(t, 5.0, groups[1].sums["sales"])
}

func TestGroupRowsWithLegend(t *testing.T) {
	ds := salesDataset()
	cfg := WidgetConfig{Type: "bar", X: "date", TimeGroup: "month", Legend: "region", Agg: "count"}

	groups := groupRows(ds, allRows(ds), cfg)
	require.Len(t, groups, 3) // (Jan,East), (Jan,West), (Feb,East)

	sortGroups(groups)
	assert.Equal(t, "2023-01-01", groups[0].x)
	assert.Equal(t, "East", groups[0].legend)
	assert.Equal(t, "2023-01-01", groups[1].x)
	assert.Equal(t, "West", groups[1].legend)
	assert.Equal(t, "2023-02-01", groups[2].x)
}

func TestGroupRowsExcludesNonNumericY(t *testing.T) {
	ds := NewDataset([]string{"cat", "amount"}, []Record{
		{"cat": "a", "amount": 10.0},
		{"cat": "a", "amount": "n/a"},
		{"cat": "a", "amount": 20.0},
		{"cat": "a", "amount": nil},
	})
	cfg := WidgetConfig{X: "cat", Y: ColumnList{"amount"}, Agg: "avg"}

	groups := groupRows(ds, allRows(ds), cfg)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, 4, g.count)
	assert.Equal(t, 30.0, g.sums["amount"])
	assert.Equal(t, 2, g.nums["amount"]) // only coercible rows in the denominator
	assert.Equal(t, 15.0, g.aggValue("avg", "amount"))
}

func TestAggValueZeroDenominator(t *testing.T) {
	g := &group{sums: map[string]float64{}, nums: map[string]int{}}
	assert.Equal(t, 0.0, g.aggValue("avg", "amount"))
	assert.Equal(t, 0.0, g.aggValue("sum", "amount"))
}

func TestGroupIdentityIsCompositeNotJoined(t *testing.T) {
	// Legend values containing separator-looking text must not merge with a
	// neighboring group.
	ds := NewDataset([]string{"x", "leg"}, []Record{
		{"x": "a|b", "leg": "c"},
		{"x": "a", "leg": "b|c"},
	})
	cfg := WidgetConfig{X: "x", Legend: "leg", Agg: "count"}

	groups := groupRows(ds, allRows(ds), cfg)
	assert.Len(t, groups, 2)
}

func TestCountConservation(t *testing.T) {
	ds := salesDataset()
	filtered := applyFilters(ds, FilterSet{"region": {"East", "West"}})
	groups := groupRows(ds, filtered, WidgetConfig{X: "region", Agg: "count"})

	total := 0
	for _, g := range groups {
		total += g.count
	}
	assert.Equal(t, filtered.Len(), total)
}

func TestSumConservation(t *testing.T) {
	ds := salesDataset()
	v := allRows(ds)
	groups := groupRows(ds, v, WidgetConfig{X: "region", Y: ColumnList{"sales"}, Agg: "sum"})

	var grouped, direct float64
	for _, g := range groups {
		grouped += g.sums["sales"]
	}
	v.Each(func(r Record) bool {
		if f, ok := toFloat(r["sales"]); ok {
			direct += f
		}
		return true
	})
	assert.Equal(t, direct, grouped)
}
