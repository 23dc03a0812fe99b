package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	apperrors "rmdcalc/internal/errors"
	"rmdcalc/internal/infrastructure"
	"rmdcalc/internal/rmd"
	"rmdcalc/internal/validation"
)

// utf8BOM helps spreadsheet applications detect UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool
}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	baseDir string
}

// NewCSVWriter creates a CSV writer resolving relative paths under baseDir
func NewCSVWriter(baseDir string) *CSVWriter {
	return &CSVWriter{baseDir: baseDir}
}

// WriteCSV writes a CSV file, truncating any existing one, and returns the
// resolved path. The file is closed on every return path.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) (path string, err error) {
	fullPath := resolvePath(w.baseDir, filePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fullPath, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fullPath, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return fullPath, writeCSV(file, options)
}

// writeCSV writes headers and records to out
func writeCSV(out io.Writer, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := out.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)
	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// CSVExporter writes projections as CSV
type CSVExporter struct {
	writer    *CSVWriter
	logger    *slog.Logger
	validator *validation.FileValidator
}

// NewCSVExporter creates a CSV exporter writing relative names under outputDir
func NewCSVExporter(outputDir string, logger *slog.Logger) *CSVExporter {
	return &CSVExporter{
		writer:    NewCSVWriter(outputDir),
		logger:    infrastructure.WithComponent(logger, "csv_exporter"),
		validator: validation.NewFileValidator(logger),
	}
}

// Format implements Exporter
func (e *CSVExporter) Format() string {
	return "csv"
}

// Export implements Exporter
func (e *CSVExporter) Export(ctx context.Context, records []rmd.YearRecord, name string) (string, error) {
	name = EnsureExtension(name, ExtCSV)
	target := resolvePath(e.writer.baseDir, name)

	e.logger.InfoContext(ctx, "Writing CSV file",
		slog.String("file_path", target),
		slog.Int("record_count", len(records)))

	if err := e.validator.ValidateExportPath(target); err != nil {
		return "", apperrors.NewFileWriteError(target, err)
	}

	path, err := e.writer.WriteCSV(name, e.options(records))
	if err != nil {
		e.logger.ErrorContext(ctx, "Failed to write CSV file",
			slog.String("file_path", path),
			slog.String("error", err.Error()))
		return "", apperrors.NewFileWriteError(path, err)
	}
	return path, nil
}

// WriteTo implements Exporter
func (e *CSVExporter) WriteTo(ctx context.Context, w io.Writer, records []rmd.YearRecord) error {
	if err := writeCSV(w, e.options(records)); err != nil {
		return apperrors.NewFileWriteError("<stream>", err)
	}
	return nil
}

func (e *CSVExporter) options(records []rmd.YearRecord) WriteOptions {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, recordToCSVRow(r))
	}
	return WriteOptions{
		Headers:   rmd.Fields(),
		Records:   rows,
		BOMPrefix: true,
	}
}

// recordToCSVRow converts a record to a CSV row
func recordToCSVRow(r rmd.YearRecord) []string {
	return []string{
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Age),
		formatCents(r.StartBalance),
		formatCents(r.RMD),
		formatCents(r.TaxWithheld),
		formatCents(r.NetReceived),
		formatCents(r.EndBalance),
	}
}
