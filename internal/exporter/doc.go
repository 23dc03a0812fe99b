// Package exporter writes RMD projections to files.
//
// This package contains two exporters sharing the Exporter interface:
//
// XLSXExporter: renders a projection into a single worksheet through the
// SheetWriter capability, implemented on excelize. The header row is bold and
// centered, money columns carry a currency number format, and each column is
// sized to its longest value plus two characters.
//
// CSVExporter: writes the same columns as CSV through CSVWriter, with money
// rounded to cents and a UTF-8 BOM for spreadsheet applications.
//
// Example usage:
//
//	xlsx := exporter.NewXLSXExporter(exporter.XLSXOptions{SheetName: "RMD Projection"}, logger)
//	path, err := xlsx.Export(ctx, records, "rmd_projection")
//	// path == "rmd_projection.xlsx"
//
// Both exporters append their extension when the name lacks it and report
// write failures as FILE_WRITE application errors.
package exporter
