package loader

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/facet-org/facet/engine"
)

// LoadExcel reads the first sheet of a workbook into a dataset. The first
// row is the header; cells go through the same inference path as CSV.
func LoadExcel(path string) (*engine.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %s", sheets[0])
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("sheet %s is empty", sheets[0])
	}

	return datasetFromCells(rows[0], rows[1:])
}
