package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmdcalc/internal/rmd"
)

func TestPrintTable(t *testing.T) {
	records := rmd.Project(rmd.ProjectionRequest{
		StartAge:        73,
		StartBalance:    500000,
		Years:           1,
		GrowthRate:      5,
		WithholdingRate: 20,
	})

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, records))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Yr  Age    Start Balance          RMD          Tax     Net Rcvd     End Balance", lines[0])
	assert.Equal(t, "1   73   $    500,000.00 $  18,867.92 $   3,773.58 $  15,094.34 $    505,188.68", lines[1])
}

func TestPrintTable_ZeroDistributions(t *testing.T) {
	records := rmd.Project(rmd.ProjectionRequest{StartAge: 65, StartBalance: 100000, Years: 3})

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, records))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for i, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, []string{"1   65 ", "2   66 ", "3   67 "}[i]), line)
		assert.Contains(t, line, "$    100,000.00 $       0.00")
	}
}

func TestPrintTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, nil))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestPrintSummary(t *testing.T) {
	s := rmd.Summary{
		Years:            2,
		FirstAge:         73,
		LastAge:          74,
		TotalRMD:         decimal.RequireFromString("38679.25"),
		TotalTaxWithheld: decimal.RequireFromString("7735.85"),
		TotalNetReceived: decimal.RequireFromString("30943.40"),
		FinalBalance:     decimal.RequireFromString("509646.23"),
	}

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "--- Totals (2 years, ages 73-74) ---")
	assert.Contains(t, out, "Total RMD:          $38,679.25\n")
	assert.Contains(t, out, "Total tax withheld: $7,735.85\n")
	assert.Contains(t, out, "Total net received: $30,943.40\n")
	assert.Contains(t, out, "Final balance:      $509,646.23\n")
}

func TestPrintSummary_NoYears(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, rmd.Summary{}))
	assert.Empty(t, buf.String())
}
