package schema

import (
	"strconv"
	"strings"
	"time"
)

// Infer classifies each column by sampling up to Options.SampleSize rows.
// Empty cells are ignored. A column is numeric, boolean, or a date when at
// least 90% of its sampled non-empty values parse as such (numbers win over
// dates, dates over booleans); everything else is a string column.
func Infer(headers []string, rows [][]string, opts ...Options) []Column {
	limit := DefaultSampleSize
	if len(opts) > 0 && opts[0].SampleSize > 0 {
		limit = opts[0].SampleSize
	}
	if len(rows) < limit {
		limit = len(rows)
	}

	columns := make([]Column, len(headers))
	for i, name := range headers {
		columns[i] = classifyColumn(name, i, rows[:limit])
	}
	return columns
}

func classifyColumn(name string, idx int, rows [][]string) Column {
	var sampled, numbers, bools, dates int
	distinct := make(map[string]bool)

	for _, row := range rows {
		if idx >= len(row) {
			continue
		}
		raw := strings.TrimSpace(row[idx])
		if raw == "" {
			continue
		}
		sampled++
		distinct[raw] = true

		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			numbers++
			continue
		}
		if isBoolLiteral(raw) {
			bools++
			continue
		}
		if _, ok := parseDate(raw); ok {
			dates++
		}
	}

	col := Column{Name: name, Type: TypeString, Distinct: len(distinct), Sampled: sampled}
	if sampled == 0 {
		return col
	}

	threshold := int(float64(sampled)*classifyThreshold + 0.5)
	switch {
	case numbers >= threshold:
		col.Type = TypeNumber
	case dates >= threshold:
		col.Type = TypeDate
	case bools >= threshold:
		col.Type = TypeBool
	}
	return col
}

// Convert types a raw cell according to the column's inferred type.
// Empty cells become nil; values that fail to parse stay strings, because
// the engine's coercion handles stragglers better than a silent zero would.
func (t ColumnType) Convert(raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	switch t {
	case TypeNumber:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case TypeBool:
		if isBoolLiteral(raw) {
			return strings.EqualFold(raw, "true")
		}
	}
	// Dates stay strings; the engine parses them at bucketing time.
	return raw
}

func isBoolLiteral(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
