package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resolverDataset() *Dataset {
	return NewDataset([]string{"Region ", "sales", `"Quoted"`}, []Record{
		{"Region ": "East", "sales": 10.0, `"Quoted"`: "a"},
	})
}

func TestResolve(t *testing.T) {
	ds := resolverDataset()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty passthrough", "", ""},
		{"exact", "sales", "sales"},
		{"trailing space on key", "Region", "Region "},
		{"case insensitive", "SALES", "sales"},
		{"case and space", "region", "Region "},
		{"quoted key", "Quoted", `"Quoted"`},
		{"quoted request", `'sales'`, "sales"},
		{"total miss passes through", "nonexistent", "nonexistent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ds.resolve(tt.in))
		})
	}
}

func TestResolveCached(t *testing.T) {
	ds := resolverDataset()

	assert.Equal(t, "Region ", ds.resolve("Region"))
	cached, ok := ds.names.Load("Region")
	assert.True(t, ok)
	assert.Equal(t, "Region ", cached)

	// Second call served from cache.
	assert.Equal(t, "Region ", ds.resolve("Region"))
}

func TestResolveCacheDoesNotCrossEpochs(t *testing.T) {
	eng := New(resolverDataset())
	first := eng.Dataset()
	assert.Equal(t, "Region ", first.resolve("Region"))

	next := NewDataset([]string{"region"}, []Record{{"region": "West"}})
	eng.Replace(next)

	current := eng.Dataset()
	assert.Greater(t, current.Epoch(), first.Epoch())
	assert.Equal(t, "region", current.resolve("Region"))
}

func TestResolveWithoutDeclaredColumns(t *testing.T) {
	ds := NewDataset(nil, []Record{{"Amount ": 5.0}})
	assert.Equal(t, "Amount ", ds.resolve("amount"))
}
