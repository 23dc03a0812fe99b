package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	apperrors "rmdcalc/internal/errors"
	"rmdcalc/internal/infrastructure"
	"rmdcalc/internal/rmd"
	"rmdcalc/internal/validation"
)

// XLSXOptions configures an XLSXExporter
type XLSXOptions struct {
	SheetName string
	// OutputDir receives relative file names; empty means the working directory
	OutputDir string
}

// XLSXExporter writes projections as a single-sheet workbook
type XLSXExporter struct {
	opts      XLSXOptions
	logger    *slog.Logger
	validator *validation.FileValidator
	newSheet  func(sheetName string) (SheetWriter, error)
}

// NewXLSXExporter creates an exporter backed by excelize
func NewXLSXExporter(opts XLSXOptions, logger *slog.Logger) *XLSXExporter {
	if opts.SheetName == "" {
		opts.SheetName = "RMD Projection"
	}
	return &XLSXExporter{
		opts:      opts,
		logger:    infrastructure.WithComponent(logger, "xlsx_exporter"),
		validator: validation.NewFileValidator(logger),
		newSheet:  NewExcelSheet,
	}
}

// Format implements Exporter
func (e *XLSXExporter) Format() string {
	return "xlsx"
}

// Export implements Exporter. The workbook is closed on every return path.
func (e *XLSXExporter) Export(ctx context.Context, records []rmd.YearRecord, name string) (string, error) {
	path := resolvePath(e.opts.OutputDir, EnsureExtension(name, ExtXLSX))

	e.logger.InfoContext(ctx, "Writing XLSX file",
		slog.String("file_path", path),
		slog.String("sheet", e.opts.SheetName),
		slog.Int("record_count", len(records)))

	if err := e.validator.ValidateExportPath(path); err != nil {
		return "", apperrors.NewFileWriteError(path, err)
	}

	sheet, err := e.render(records)
	if err != nil {
		return "", apperrors.NewFileWriteError(path, err)
	}
	defer sheet.Close()

	if err := sheet.Save(path); err != nil {
		e.logger.ErrorContext(ctx, "Failed to save XLSX file",
			slog.String("file_path", path),
			slog.String("error", err.Error()))
		return "", apperrors.NewFileWriteError(path, err)
	}

	e.logger.InfoContext(ctx, "XLSX file saved", slog.String("file_path", path))
	return path, nil
}

// WriteTo implements Exporter
func (e *XLSXExporter) WriteTo(ctx context.Context, w io.Writer, records []rmd.YearRecord) error {
	sheet, err := e.render(records)
	if err != nil {
		return apperrors.NewFileWriteError("<stream>", err)
	}
	defer sheet.Close()

	if err := sheet.Write(w); err != nil {
		return apperrors.NewFileWriteError("<stream>", err)
	}
	e.logger.DebugContext(ctx, "XLSX workbook streamed", slog.Int("record_count", len(records)))
	return nil
}

// render builds the workbook in memory. The caller closes the returned sheet.
func (e *XLSXExporter) render(records []rmd.YearRecord) (SheetWriter, error) {
	sheet, err := e.newSheet(e.opts.SheetName)
	if err != nil {
		return nil, err
	}

	if err := fillSheet(sheet, records); err != nil {
		sheet.Close()
		return nil, err
	}
	return sheet, nil
}

// fillSheet writes the header, formats money columns, writes every record
// and sizes the columns.
func fillSheet(sheet SheetWriter, records []rmd.YearRecord) error {
	fields := rmd.Fields()
	if err := sheet.WriteHeader(fields); err != nil {
		return err
	}

	for i, field := range fields {
		format := FormatPlain
		if rmd.IsMoneyField(field) {
			format = FormatMoney
		}
		if err := sheet.SetColumnFormat(i+1, format); err != nil {
			return err
		}
	}

	for _, r := range records {
		if err := sheet.WriteRow(cellValues(r)); err != nil {
			return fmt.Errorf("year %d: %w", r.Year, err)
		}
	}
	return sheet.AutosizeColumns()
}

// cellValues returns the record's values with non-finite amounts, which a
// workbook cannot store as numbers, replaced by their text.
func cellValues(r rmd.YearRecord) []any {
	values := r.Values()
	for i, v := range values {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			values[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return values
}
