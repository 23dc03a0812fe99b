// Package rmd computes required minimum distribution (RMD) projections for a
// traditional IRA.
//
// # Components
//
//   - divisor.go: the IRS Uniform Lifetime Table and the clamped lookup
//   - types.go: projection request and per-year record types
//   - projector.go: the year-by-year balance and withdrawal recurrence
//   - summary.go: totals over a finished projection
//
// # Usage
//
//	records := rmd.Project(rmd.ProjectionRequest{
//	    StartAge:        73,
//	    StartBalance:    500000,
//	    Years:           10,
//	    GrowthRate:      5,
//	    WithholdingRate: 20,
//	})
//	summary, err := rmd.Summarize(records)
//
// Project is a pure function of its request. Inputs are not validated here;
// see package validation for the optional strict checks.
package rmd
