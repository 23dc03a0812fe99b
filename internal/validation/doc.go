// Package validation holds the optional checks run before a projection and
// before an export file is written.
//
// RequestValidator applies the validate struct tags of rmd.ProjectionRequest
// with go-playground/validator. It is used only in strict mode; by default
// any numeric input is projected as-is.
//
// FileValidator verifies that an export destination is writable.
package validation
