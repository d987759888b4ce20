package loader

import (
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"

	"github.com/facet-org/facet/engine"
)

// LoadParquet reads a Parquet file into a dataset. Rows are decoded into
// generic maps; the file's schema supplies the column order.
func LoadParquet(path string) (*engine.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, errors.Wrapf(err, "opening parquet file %s", path)
	}

	var columns []string
	for _, field := range pf.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()

	var records []engine.Record
	for {
		raw := make(map[string]any)
		if err := reader.Read(&raw); err != nil {
			break // EOF or unreadable row group
		}
		rec := make(engine.Record, len(raw))
		for k, v := range raw {
			rec[k] = normalizeValue(v)
		}
		records = append(records, rec)
	}

	return engine.NewDataset(columns, records), nil
}

// normalizeValue flattens the scalar types parquet-go decodes into the
// engine's value model: every numeric width becomes float64, byte slices
// become strings.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case nil, string, bool, float64:
		return v
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case []byte:
		return string(n)
	default:
		return v
	}
}
