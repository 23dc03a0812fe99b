package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rmdcalc/internal/errors"
	"rmdcalc/internal/exporter"
	"rmdcalc/internal/rmd"
	"rmdcalc/internal/shared/testutil"
)

// recordingExporter captures the last export call
type recordingExporter struct {
	format  string
	err     error
	name    string
	records []rmd.YearRecord
	calls   int
}

func (e *recordingExporter) Export(_ context.Context, records []rmd.YearRecord, name string) (string, error) {
	e.calls++
	e.name = name
	e.records = records
	if e.err != nil {
		return "", e.err
	}
	return exporter.EnsureExtension(name, "."+e.format), nil
}

func (e *recordingExporter) WriteTo(context.Context, io.Writer, []rmd.YearRecord) error {
	return nil
}

func (e *recordingExporter) Format() string { return e.format }

type rejectAll struct{}

func (rejectAll) Validate(rmd.ProjectionRequest) error {
	return apperrors.NewAppValidationError("rejected", nil)
}

const scenarioInput = "73\n500000\n1\n5\n20\n"

func runShell(t *testing.T, input string, opts Options) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewShell(strings.NewReader(input), &out, opts).Run(context.Background())
	return out.String(), err
}

func TestShell_DeclineExport(t *testing.T) {
	exp := &recordingExporter{format: "xlsx"}
	out, err := runShell(t, scenarioInput+"n\n", Options{Exporter: exp})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, Banner+"\n\n"+PromptAge))
	assert.Contains(t, out, "\n--- Projection ---\n")
	assert.Contains(t, out, "$  18,867.92")
	assert.Contains(t, out, "Total RMD:          $18,867.92")
	assert.Contains(t, out, "\nExport results to XLSX? (y/n): ")
	assert.NotContains(t, out, "Enter XLSX filename")
	assert.True(t, strings.HasSuffix(out, "\nDone.\n"))
	assert.Zero(t, exp.calls)
}

func TestShell_Export(t *testing.T) {
	var hookFormat string
	var hookErr error
	hookCalls := 0

	exp := &recordingExporter{format: "xlsx"}
	out, err := runShell(t, scenarioInput+"Y\nmy_plan\n", Options{
		Exporter: exp,
		OnExport: func(format string, err error) {
			hookCalls++
			hookFormat, hookErr = format, err
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Enter XLSX filename (e.g., rmd_projection.xlsx): ")
	assert.Contains(t, out, "\nXLSX file saved as: my_plan.xlsx\n")
	assert.True(t, strings.HasSuffix(out, "\nDone.\n"))

	assert.Equal(t, "my_plan", exp.name)
	require.Len(t, exp.records, 1)
	assert.Equal(t, 73, exp.records[0].Age)

	assert.Equal(t, 1, hookCalls)
	assert.Equal(t, "xlsx", hookFormat)
	assert.NoError(t, hookErr)
}

func TestShell_EmptyFilenameUsesDefault(t *testing.T) {
	tests := []struct {
		name            string
		format          string
		defaultFilename string
		want            string
	}{
		{name: "xlsx", format: "xlsx", defaultFilename: "rmd_projection.xlsx", want: "rmd_projection.xlsx"},
		{name: "csv replaces extension", format: "csv", defaultFilename: "rmd_projection.xlsx", want: "rmd_projection.csv"},
		{name: "no default configured", format: "xlsx", want: "rmd_projection.xlsx"},
		{name: "default with directory", format: "xlsx", defaultFilename: filepath.Join("out", "plan"), want: filepath.Join("out", "plan.xlsx")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := &recordingExporter{format: tt.format}
			_, err := runShell(t, scenarioInput+"y\n   \n", Options{Exporter: exp, DefaultFilename: tt.defaultFilename})
			require.NoError(t, err)
			assert.Equal(t, tt.want, exp.name)
		})
	}
}

func TestShell_CSVPrompts(t *testing.T) {
	exp := &recordingExporter{format: "csv"}
	out, err := runShell(t, scenarioInput+"y\nplan.csv\n", Options{Exporter: exp})
	require.NoError(t, err)

	assert.Contains(t, out, "Export results to CSV? (y/n): ")
	assert.Contains(t, out, "Enter CSV filename (e.g., rmd_projection.csv): ")
	assert.Contains(t, out, "CSV file saved as: plan.csv")
}

func TestShell_ExportFailure(t *testing.T) {
	writeErr := apperrors.NewFileWriteError("x.xlsx", errors.New("disk full"))
	var hookErr error
	exp := &recordingExporter{format: "xlsx", err: writeErr}

	out, err := runShell(t, scenarioInput+"y\nx\n", Options{
		Exporter: exp,
		OnExport: func(_ string, err error) { hookErr = err },
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFileWrite))
	assert.Equal(t, writeErr, hookErr)

	assert.Contains(t, out, "--- Projection ---", "table is printed before the export fails")
	assert.NotContains(t, out, "saved as")
	assert.NotContains(t, out, "Done.")
}

func TestShell_InputError(t *testing.T) {
	out, err := runShell(t, "73\nlots\n", Options{Exporter: &recordingExporter{format: "xlsx"}})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInputFormat))
	assert.NotContains(t, out, "--- Projection ---")
}

func TestShell_InputErrorIsLogged(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)

	_, err := runShell(t, "", Options{Logger: logger})
	require.Error(t, err)

	testutil.AssertLogContains(t, handler, slog.LevelWarn, "failed to read projection request")
	assert.True(t, handler.ContainsAttr("component", "shell"))
}

func TestShell_ValidationError(t *testing.T) {
	out, err := runShell(t, scenarioInput, Options{Validator: rejectAll{}})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.NotContains(t, out, "--- Projection ---")
}

func TestShell_NoExporter(t *testing.T) {
	out, err := runShell(t, scenarioInput, Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "Export results")
	assert.True(t, strings.HasSuffix(out, "\nDone.\n"))
}

func TestShell_EndOfInputAtExportPrompt(t *testing.T) {
	exp := &recordingExporter{format: "xlsx"}
	out, err := runShell(t, scenarioInput, Options{Exporter: exp})
	require.NoError(t, err)
	assert.Zero(t, exp.calls)
	assert.True(t, strings.HasSuffix(out, "\nDone.\n"))
}

func TestShell_NegativeYears(t *testing.T) {
	out, err := runShell(t, "73\n500000\n-2\n5\n20\n", Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "--- Projection ---\nYr ")
	assert.NotContains(t, out, "--- Totals")
}

func TestShell_UsesProjector(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)

	var observed []rmd.YearRecord
	projector := rmd.NewProjector(logger, rmd.ObserverFunc(func(_ rmd.ProjectionRequest, records []rmd.YearRecord) {
		observed = records
	}))

	_, err := runShell(t, scenarioInput, Options{Projector: projector, Logger: logger})
	require.NoError(t, err)
	assert.Len(t, observed, 1)
	assert.True(t, handler.ContainsMessage("projection completed"))
}
