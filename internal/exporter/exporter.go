package exporter

import (
	"context"
	"io"

	"rmdcalc/internal/rmd"
)

// Exporter writes a projection to a named file
type Exporter interface {
	// Export writes records to name, appending the exporter's extension if
	// missing, and returns the path written.
	Export(ctx context.Context, records []rmd.YearRecord, name string) (string, error)
	// WriteTo renders records to w without touching the filesystem
	WriteTo(ctx context.Context, w io.Writer, records []rmd.YearRecord) error
	// Format names the file format, e.g. "xlsx"
	Format() string
}
