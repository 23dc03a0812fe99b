package exporter

import (
	"path/filepath"
	"strings"
)

// File extensions appended by the exporters
const (
	ExtXLSX = ".xlsx"
	ExtCSV  = ".csv"
)

// EnsureExtension appends ext to name unless name already ends with it,
// compared case-insensitively.
func EnsureExtension(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name
	}
	return name + ext
}

// resolvePath places a relative name under dir. Absolute names and an empty
// dir leave the name unchanged.
func resolvePath(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
