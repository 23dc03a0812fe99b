package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"rmdcalc/internal/exporter"
	"rmdcalc/internal/infrastructure"
	"rmdcalc/internal/rmd"
)

// Banner is printed when the shell starts
const Banner = "=== IRA RMD Calculator + Projection + XLSX Export ==="

// RequestValidator rejects requests before they are projected
type RequestValidator interface {
	Validate(req rmd.ProjectionRequest) error
}

// ExportHook is called with the outcome of every export attempt
type ExportHook func(format string, err error)

// Options configures a Shell
type Options struct {
	Projector *rmd.Projector
	Exporter  exporter.Exporter
	// Validator is optional; nil projects every request as given
	Validator RequestValidator
	// DefaultFilename is used when the filename prompt is left empty
	DefaultFilename string
	OnExport        ExportHook
	Logger          *slog.Logger
}

// Shell runs one interactive projection session
type Shell struct {
	prompter *Prompter
	out      io.Writer
	opts     Options
	logger   *slog.Logger
}

// NewShell creates a shell reading answers from in and printing to out
func NewShell(in io.Reader, out io.Writer, opts Options) *Shell {
	if opts.Projector == nil {
		opts.Projector = rmd.NewProjector(opts.Logger, nil)
	}
	return &Shell{
		prompter: NewPrompter(in, out),
		out:      out,
		opts:     opts,
		logger:   infrastructure.WithComponent(opts.Logger, "shell"),
	}
}

// Run asks for a request, prints its projection and optionally exports it.
// Input and validation errors end the session before anything is printed;
// an export error ends it after the table.
func (s *Shell) Run(ctx context.Context) error {
	if _, err := fmt.Fprintf(s.out, "%s\n\n", Banner); err != nil {
		return err
	}

	req, err := s.prompter.ReadRequest()
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read projection request", slog.String("error", err.Error()))
		return err
	}

	if s.opts.Validator != nil {
		if err := s.opts.Validator.Validate(req); err != nil {
			return err
		}
	}

	records := s.opts.Projector.Run(ctx, req)

	if _, err := fmt.Fprint(s.out, "\n--- Projection ---\n"); err != nil {
		return err
	}
	if err := PrintTable(s.out, records); err != nil {
		return err
	}
	if summary, err := rmd.Summarize(records); err != nil {
		s.logger.WarnContext(ctx, "totals skipped", slog.String("error", err.Error()))
	} else if err := PrintSummary(s.out, summary); err != nil {
		return err
	}

	if s.opts.Exporter != nil {
		if err := s.offerExport(ctx, records); err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(s.out, "\nDone.\n")
	return err
}

// offerExport asks whether to export and, on yes, for the file name
func (s *Shell) offerExport(ctx context.Context, records []rmd.YearRecord) error {
	format := s.opts.Exporter.Format()
	label := strings.ToUpper(format)

	ok, err := s.prompter.Confirm(fmt.Sprintf("\nExport results to %s? (y/n): ", label))
	if err != nil || !ok {
		return err
	}

	example := s.exportName("." + format)
	name, err := s.prompter.Line(fmt.Sprintf("Enter %s filename (e.g., %s): ", label, example))
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = example
	}

	path, err := s.opts.Exporter.Export(ctx, records, name)
	if s.opts.OnExport != nil {
		s.opts.OnExport(format, err)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "export failed",
			slog.String("format", format),
			slog.String("error", err.Error()))
		return err
	}

	_, err = fmt.Fprintf(s.out, "\n%s file saved as: %s\n", label, path)
	return err
}

// exportName is the default file name with ext in place of its own extension
func (s *Shell) exportName(ext string) string {
	name := s.opts.DefaultFilename
	if name == "" {
		name = "rmd_projection"
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
