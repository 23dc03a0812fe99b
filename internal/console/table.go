package console

import (
	"fmt"
	"io"

	"rmdcalc/internal/exporter"
	"rmdcalc/internal/rmd"
)

const (
	tableHeaderFormat = "%-3s %-4s %15s %12s %12s %12s %15s\n"
	tableRowFormat    = "%-3d %-4d $%14s $%11s $%11s $%11s $%14s\n"
)

// PrintTable writes the projection table: a header line and one line per
// record, money right-aligned with thousands separators.
func PrintTable(w io.Writer, records []rmd.YearRecord) error {
	if _, err := fmt.Fprintf(w, tableHeaderFormat,
		"Yr", "Age", "Start Balance", "RMD", "Tax", "Net Rcvd", "End Balance"); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w, tableRowFormat,
			r.Year, r.Age,
			exporter.FormatAmount(r.StartBalance),
			exporter.FormatAmount(r.RMD),
			exporter.FormatAmount(r.TaxWithheld),
			exporter.FormatAmount(r.NetReceived),
			exporter.FormatAmount(r.EndBalance)); err != nil {
			return err
		}
	}
	return nil
}

// PrintSummary writes the totals block for s. A summary of no years
// prints nothing.
func PrintSummary(w io.Writer, s rmd.Summary) error {
	if s.Years == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w,
		"\n--- Totals (%d years, ages %d-%d) ---\n"+
			"Total RMD:          %s\n"+
			"Total tax withheld: %s\n"+
			"Total net received: %s\n"+
			"Final balance:      %s\n",
		s.Years, s.FirstAge, s.LastAge,
		exporter.FormatCurrency(s.TotalRMD.InexactFloat64()),
		exporter.FormatCurrency(s.TotalTaxWithheld.InexactFloat64()),
		exporter.FormatCurrency(s.TotalNetReceived.InexactFloat64()),
		exporter.FormatCurrency(s.FinalBalance.InexactFloat64()))
	return err
}
