// Package shared holds helpers used by more than one package of rmdcalc.
//
// The testutil subpackage captures slog output so tests can assert on what a
// component logged:
//
//	logger, handler := testutil.NewTestLogger(t)
//	projector := rmd.NewProjector(logger, nil)
//	projector.Run(ctx, req)
//	testutil.AssertLogContains(t, handler, slog.LevelInfo, "projection completed")
//
// Nothing here may import other rmdcalc packages.
package shared
