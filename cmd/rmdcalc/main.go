// Command rmdcalc projects required minimum distributions of an IRA over
// the coming years and optionally exports the table as XLSX or CSV.
//
// It takes no flags. Configuration comes from rmdcalc.yaml, a .env file and
// RMD_* environment variables; see package config.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"rmdcalc/internal/config"
	"rmdcalc/internal/console"
	apperrors "rmdcalc/internal/errors"
	"rmdcalc/internal/exporter"
	"rmdcalc/internal/infrastructure"
	"rmdcalc/internal/rmd"
	"rmdcalc/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", apperrors.NewConfigError("failed to load configuration", err))
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.EnsureRunID(context.Background())
	logger.InfoContext(ctx, "Starting application",
		slog.String("app", config.AppName),
		slog.String("export_format", cfg.Export.Format),
		slog.Bool("strict", cfg.Projection.Strict))

	if err := run(ctx, os.Stdin, os.Stdout, cfg, logger); err != nil {
		logger.ErrorContext(ctx, "Application failed",
			slog.String("app", config.AppName),
			slog.String("error_type", string(apperrors.TypeOf(err))),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		infrastructure.CloseLogFile()
		os.Exit(1)
	}
	infrastructure.CloseLogFile()
}

// run executes one interactive session against in and out. Metrics are
// written to the configured textfile whether or not the session succeeds.
func run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	metrics := infrastructure.NewMetrics()
	defer writeMetrics(ctx, metrics, cfg.Metrics.TextfilePath, logger)

	projector := rmd.NewProjector(logger, rmd.ObserverFunc(func(_ rmd.ProjectionRequest, records []rmd.YearRecord) {
		metrics.RecordProjection(len(records))
	}))

	opts := console.Options{
		Projector:       projector,
		Exporter:        newExporter(cfg.Export, logger),
		DefaultFilename: cfg.Export.DefaultFilename,
		OnExport:        metrics.RecordExport,
		Logger:          logger,
	}
	if cfg.Projection.Strict {
		opts.Validator = validation.NewRequestValidator(logger)
	}

	return console.NewShell(in, out, opts).Run(ctx)
}

// newExporter builds the exporter for the configured format
func newExporter(cfg config.ExportConfig, logger *slog.Logger) exporter.Exporter {
	if cfg.Format == config.FormatCSV {
		return exporter.NewCSVExporter(cfg.OutputDir, logger)
	}
	return exporter.NewXLSXExporter(exporter.XLSXOptions{
		SheetName: cfg.SheetName,
		OutputDir: cfg.OutputDir,
	}, logger)
}

func writeMetrics(ctx context.Context, metrics *infrastructure.Metrics, path string, logger *slog.Logger) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logger.WarnContext(ctx, "Failed to write metrics", slog.String("error", err.Error()))
		return
	}
	logger.DebugContext(ctx, "Metrics written", slog.String("path", path))
}
