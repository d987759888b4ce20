package loader

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/facet-org/facet/engine"
)

// LoadCSV reads a CSV file into a dataset. The first row is the header;
// malformed rows are skipped rather than failing the whole load.
func LoadCSV(path string) (*engine.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses CSV data from a reader into a dataset.
func ReadCSV(r io.Reader) (*engine.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV header")
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}

	return datasetFromCells(headers, rows)
}
