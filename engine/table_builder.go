package engine

// ============================================================================
// TABLE BUILDER — raw row projection
// ============================================================================

const maxTableRows = 1000

// buildTable projects the configured columns, or the first 10 dataset
// columns when none are configured, over the filtered rows. No aggregation;
// filtered-row order preserved; capped at 1000 rows. Output fields carry the
// requested column names, values come from the resolved keys.
func buildTable(ds *Dataset, v *view, cfg WidgetConfig) []Row {
	columns := cfg.Columns
	if len(columns) == 0 {
		columns = defaultTableColumns(ds)
	}

	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = ds.resolve(c)
	}

	rows := make([]Row, 0, min(v.Len(), maxTableRows))
	v.Each(func(r Record) bool {
		row := make(Row, len(columns))
		for i, c := range columns {
			row[c] = r[keys[i]]
		}
		rows = append(rows, row)
		return len(rows) < maxTableRows
	})
	return rows
}

// defaultTableColumns picks the first 10 columns of the first record,
// honoring the declared column order when one exists.
func defaultTableColumns(ds *Dataset) []string {
	keys := ds.candidateKeys()
	if len(keys) > 10 {
		keys = keys[:10]
	}
	return keys
}
