// Package exporter writes pipeline outputs to CSV files.
//
// CSVWriter is the core writer, with UTF-8 BOM support for Excel
// compatibility. ForecastExporter writes the per-item and overall
// forecast files produced by a pipeline run.
package exporter
