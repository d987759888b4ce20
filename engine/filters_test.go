package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func salesDataset() *Dataset {
	return NewDataset([]string{"date", "region", "sales"}, []Record{
		{"date": "2023-01-15", "region": "East", "sales": 10.0},
		{"date": "2023-02-20", "region": "East", "sales": 5.0},
		{"date": "2023-01-10", "region": "West", "sales": 7.0},
	})
}

func viewRecords(v *view) []Record {
	var out []Record
	v.Each(func(r Record) bool {
		out = append(out, r)
		return true
	})
	return out
}

func TestApplyFilters(t *testing.T) {
	ds := salesDataset()

	tests := []struct {
		name    string
		filters FilterSet
		want    int
	}{
		{"no filters", nil, 3},
		{"single value", FilterSet{"region": {"East"}}, 2},
		{"multiple values", FilterSet{"region": {"East", "West"}}, 3},
		{"empty set excludes all", FilterSet{"region": {}}, 0},
		{"AND across columns", FilterSet{"region": {"East"}, "date": {"2023-01-15"}}, 1},
		{"no match", FilterSet{"region": {"North"}}, 0},
		{"fuzzy column name", FilterSet{"REGION": {"West"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyFilters(ds, tt.filters).Len())
		})
	}
}

func TestApplyFiltersCoercesNumericStrings(t *testing.T) {
	ds := salesDataset()

	// Filter UI sent strings for a numeric column.
	v := applyFilters(ds, FilterSet{"sales": {"10", "7"}})
	assert.Equal(t, 2, v.Len())

	// And the other direction: numbers against a string-typed column.
	ds2 := NewDataset([]string{"code"}, []Record{{"code": "42"}, {"code": "x"}})
	v = applyFilters(ds2, FilterSet{"code": {42.0}})
	assert.Equal(t, 1, v.Len())
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	ds := salesDataset()
	recs := viewRecords(applyFilters(ds, FilterSet{"region": {"East"}}))
	assert.Equal(t, "2023-01-15", recs[0]["date"])
	assert.Equal(t, "2023-02-20", recs[1]["date"])
}

func TestFilterMonotonicity(t *testing.T) {
	ds := salesDataset()
	wide := applyFilters(ds, FilterSet{"region": {"East", "West"}}).Len()
	narrow := applyFilters(ds, FilterSet{"region": {"East"}}).Len()
	none := applyFilters(ds, FilterSet{"region": {}}).Len()

	assert.GreaterOrEqual(t, wide, narrow)
	assert.GreaterOrEqual(t, narrow, none)
}
