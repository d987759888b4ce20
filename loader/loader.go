// Package loader reads CSV, Parquet, and Excel files into engine datasets.
// The engine itself performs no file I/O; widgets always query an already
// loaded dataset.
package loader

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/facet-org/facet/engine"
	"github.com/facet-org/facet/schema"
)

// Load reads a data file into a dataset, picking the format from the file
// extension: .csv, .parquet/.pq, .xlsx/.xls. Unknown extensions fall back
// to CSV.
func Load(path string) (*engine.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet", ".pq":
		return LoadParquet(path)
	case ".xlsx", ".xls":
		return LoadExcel(path)
	default:
		return LoadCSV(path)
	}
}

// datasetFromCells builds a dataset from header + raw string rows, using
// schema inference to type each column's cells.
func datasetFromCells(headers []string, rows [][]string) (*engine.Dataset, error) {
	if len(headers) == 0 {
		return nil, errors.New("input has no columns")
	}

	columns := schema.Infer(headers, rows)

	records := make([]engine.Record, 0, len(rows))
	for _, row := range rows {
		rec := make(engine.Record, len(headers))
		for i, col := range columns {
			if i < len(row) {
				rec[col.Name] = col.Type.Convert(row[i])
			} else {
				rec[col.Name] = nil
			}
		}
		records = append(records, rec)
	}

	return engine.NewDataset(headers, records), nil
}
