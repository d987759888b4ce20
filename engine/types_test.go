package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetConfigAcceptsStringOrArrayY(t *testing.T) {
	var single, multi WidgetConfig

	require.NoError(t, json.Unmarshal([]byte(`{"type":"bar","y":"sales"}`), &single))
	assert.Equal(t, ColumnList{"sales"}, single.Y)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"bar","y":["a","b"]}`), &multi))
	assert.Equal(t, ColumnList{"a", "b"}, multi.Y)

	var bad WidgetConfig
	assert.Error(t, json.Unmarshal([]byte(`{"y":42}`), &bad))
}
