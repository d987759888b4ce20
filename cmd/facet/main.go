package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "columns file",
		Short: "List the dataset's column names",
		Args:  cobra.ExactArgs(1),
		Run:   showColumns}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "values file column",
		Short: "List the unique values of a column",
		Args:  cobra.ExactArgs(2),
		Run:   showValues}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "chart file",
		Short: "Compute widget data for a chart configuration",
		Args:  cobra.ExactArgs(1),
		Run:   showChart}
	cmd.Flags().StringP("config", "c", "", "widget config JSON (string or @file)")
	cmd.Flags().StringP("filters", "f", "", "active filters JSON (string or @file)")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "transform file expression",
		Short: "Filter rows with a boolean expression and report the result",
		Args:  cobra.ExactArgs(2),
		Run:   runTransform}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "describe file",
		Short: "Print the inferred column types",
		Args:  cobra.ExactArgs(1),
		Run:   describeFile}
	root.AddCommand(cmd)
}

func main() {
	root := &cobra.Command{
		Use:     "facet",
		Short:   "Facet analytical query engine",
		Long:    "Facet computes dashboard widget data from CSV, Parquet, and Excel files.",
		Version: version,
	}
	addCommands(root)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
