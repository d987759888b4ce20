package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/facet-org/facet/engine"
	"github.com/facet-org/facet/loader"
	"github.com/facet-org/facet/schema"
)

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func showJSON(v any) {
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	if err := e.Encode(v); err != nil {
		fatal("%v", err)
	}
}

func loadEngine(path string) *engine.Engine {
	ds, err := loader.Load(path)
	if err != nil {
		fatal("%v", err)
	}
	return engine.New(ds)
}

// jsonArg reads a flag value that is either inline JSON or @file.
func jsonArg(cmd *cobra.Command, name string) string {
	raw, _ := cmd.Flags().GetString(name)
	if !strings.HasPrefix(raw, "@") {
		return raw
	}
	data, err := os.ReadFile(raw[1:])
	if err != nil {
		fatal("%v", errors.Wrapf(err, "reading %s", raw[1:]))
	}
	return string(data)
}

func showColumns(cmd *cobra.Command, args []string) {
	eng := loadEngine(args[0])
	showJSON(eng.Columns())
}

func showValues(cmd *cobra.Command, args []string) {
	eng := loadEngine(args[0])
	showJSON(eng.UniqueValues(args[1]))
}

func showChart(cmd *cobra.Command, args []string) {
	configJSON := jsonArg(cmd, "config")
	if configJSON == "" {
		fatal("--config is required")
	}
	var cfg engine.WidgetConfig
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		fatal("invalid widget config: %v", err)
	}

	filters := engine.FilterSet{}
	if filtersJSON := jsonArg(cmd, "filters"); filtersJSON != "" {
		if err := json.Unmarshal([]byte(filtersJSON), &filters); err != nil {
			fatal("invalid filters: %v", err)
		}
	}

	eng := loadEngine(args[0])
	showJSON(eng.ChartData(cfg, filters))
}

func runTransform(cmd *cobra.Command, args []string) {
	eng := loadEngine(args[0])
	showJSON(eng.Transform(args[1]))
}

func describeFile(cmd *cobra.Command, args []string) {
	eng := loadEngine(args[0])
	ds := eng.Dataset()

	// Re-infer on the record sample so the report reflects loaded types.
	headers := eng.Columns()
	type columnReport struct {
		Name string            `json:"name"`
		Type schema.ColumnType `json:"type"`
	}
	report := struct {
		Columns  []columnReport `json:"columns"`
		RowCount int            `json:"row_count"`
	}{RowCount: ds.Len()}

	result := eng.ChartData(engine.WidgetConfig{Type: "table", Columns: headers}, nil)
	for _, name := range headers {
		report.Columns = append(report.Columns, columnReport{Name: name, Type: columnType(result.Rows, name)})
	}
	showJSON(report)
}

// columnType reports the dominant loaded type of a column over the rows the
// table widget returned.
func columnType(rows []engine.Row, name string) schema.ColumnType {
	for _, r := range rows {
		switch r[name].(type) {
		case float64:
			return schema.TypeNumber
		case bool:
			return schema.TypeBool
		case string:
			return schema.TypeString
		}
	}
	return schema.TypeString
}
