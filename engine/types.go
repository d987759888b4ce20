package engine

import "encoding/json"

// ============================================================================
// FACET ENGINE TYPES — Widget Query Contracts
// ============================================================================
// The engine answers three questions for dashboard widgets: which columns
// exist, which values a column holds, and what data a widget should render
// given its configuration and the active filters.
// ============================================================================

// Record is one dataset row: a flat mapping from column name to a scalar.
// Scalars are restricted to string, float64, bool, or nil (missing).
// Loaders normalize every numeric cell to float64 so the engine's coercion
// rules only ever see one numeric type.
type Record map[string]any

// Row is one record of widget output. Field names depend on the widget type:
// "x"/"y"/"count"/"color" for charts, "label"/"value" for pie segments,
// column names for tables and multi-Y series.
type Row map[string]any

// WidgetConfig describes what one widget wants to display.
// Type is one of: bar, line, scatter, pie, table, filter.
type WidgetConfig struct {
	Type       string     `json:"type"`
	X          string     `json:"x,omitempty"`
	Y          ColumnList `json:"y,omitempty"`
	Agg        string     `json:"agg,omitempty"`       // count, sum, avg
	Legend     string     `json:"legend,omitempty"`    // splits series per distinct value
	TimeGroup  string     `json:"timeGroup,omitempty"` // year, month, day
	Column     string     `json:"column,omitempty"`    // filter widgets
	Columns    []string   `json:"columns,omitempty"`   // table widgets
	ShowLabels bool       `json:"showLabels,omitempty"`
}

// ColumnList accepts either a single JSON string or an array of strings.
// Widget configs produced by older UIs send "y": "sales" for one column.
type ColumnList []string

func (c *ColumnList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*c = ColumnList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*c = ColumnList(many)
	return nil
}

// FilterSet maps a column name to its allowed values.
// A column absent from the map is unfiltered; a column present with an empty
// slice excludes every row. Columns combine with logical AND.
type FilterSet map[string][]any

// ChartResult is the outcome of a ChartData call. Exactly one of Rows,
// Values, or Error is meaningful: Rows for table/scatter/pie/bar/line
// widgets, Values for filter widgets, Error when the transform failed.
type ChartResult struct {
	Rows   []Row  `json:"rows,omitempty"`
	Values []any  `json:"values,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ValuesResult is the outcome of a UniqueValues call.
type ValuesResult struct {
	Success bool   `json:"success"`
	Values  []any  `json:"values,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TransformResult reports a dataset replacement: the surviving column list
// and row count, or the reason the transform was rejected.
type TransformResult struct {
	Success  bool     `json:"success"`
	Columns  []string `json:"columns,omitempty"`
	RowCount int      `json:"row_count"`
	Error    string   `json:"error,omitempty"`
}
