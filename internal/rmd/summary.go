package rmd

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	apperrors "rmdcalc/internal/errors"
)

// Summary totals a projection. Amounts are rounded to cents.
type Summary struct {
	Years            int
	FirstAge         int
	LastAge          int
	TotalRMD         decimal.Decimal
	TotalTaxWithheld decimal.Decimal
	TotalNetReceived decimal.Decimal
	FinalBalance     decimal.Decimal
}

// Summarize adds up the distributions of records. An empty slice gives a
// zero Summary. Records holding NaN or infinite amounts cannot be totaled
// and return a VALIDATION error.
func Summarize(records []YearRecord) (Summary, error) {
	s := Summary{
		TotalRMD:         decimal.Zero,
		TotalTaxWithheld: decimal.Zero,
		TotalNetReceived: decimal.Zero,
		FinalBalance:     decimal.Zero,
	}
	if len(records) == 0 {
		return s, nil
	}

	for _, r := range records {
		for _, v := range []float64{r.RMD, r.TaxWithheld, r.NetReceived, r.EndBalance} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Summary{}, apperrors.NewAppValidationError(
					fmt.Sprintf("year %d: non-finite amount %v cannot be totaled", r.Year, v), nil,
				).WithContext("year", r.Year)
			}
		}
		s.TotalRMD = s.TotalRMD.Add(decimal.NewFromFloat(r.RMD))
		s.TotalTaxWithheld = s.TotalTaxWithheld.Add(decimal.NewFromFloat(r.TaxWithheld))
		s.TotalNetReceived = s.TotalNetReceived.Add(decimal.NewFromFloat(r.NetReceived))
	}

	first, last := records[0], records[len(records)-1]
	s.Years = len(records)
	s.FirstAge = first.Age
	s.LastAge = last.Age
	s.TotalRMD = s.TotalRMD.Round(2)
	s.TotalTaxWithheld = s.TotalTaxWithheld.Round(2)
	s.TotalNetReceived = s.TotalNetReceived.Round(2)
	s.FinalBalance = decimal.NewFromFloat(last.EndBalance).Round(2)
	return s, nil
}
