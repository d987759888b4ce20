// Package facet provides an in-memory analytical query engine for dashboard
// widgets. It turns a loaded tabular dataset into the exact data shapes that
// bar, line, scatter, and pie charts, tables, and value filters render from.
//
// Usage:
//
//	import (
//	    "github.com/facet-org/facet/engine"
//	    "github.com/facet-org/facet/loader"
//	)
//
//	ds, err := loader.Load("sales.csv")
//	eng := engine.New(ds)
//
//	cols := eng.Columns()
//	result := eng.ChartData(engine.WidgetConfig{
//	    Type: "bar", X: "date", TimeGroup: "month",
//	    Y: engine.ColumnList{"sales"}, Agg: "sum",
//	}, nil)
//
// All computation is local and synchronous; the engine performs no network
// or disk I/O. Loading files is the loader package's job.
package facet
