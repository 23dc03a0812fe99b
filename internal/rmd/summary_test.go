package rmd

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rmdcalc/internal/errors"
)

func TestSummarize(t *testing.T) {
	t.Run("single year", func(t *testing.T) {
		s, err := Summarize(Project(ProjectionRequest{
			StartAge: 73, StartBalance: 500000, Years: 1, GrowthRate: 5, WithholdingRate: 20,
		}))
		require.NoError(t, err)

		assert.Equal(t, 1, s.Years)
		assert.Equal(t, 73, s.FirstAge)
		assert.Equal(t, 73, s.LastAge)
		assert.True(t, s.TotalRMD.Equal(decimal.RequireFromString("18867.92")), s.TotalRMD.String())
		assert.True(t, s.TotalTaxWithheld.Equal(decimal.RequireFromString("3773.58")), s.TotalTaxWithheld.String())
		assert.True(t, s.TotalNetReceived.Equal(decimal.RequireFromString("15094.34")), s.TotalNetReceived.String())
		assert.True(t, s.FinalBalance.Equal(decimal.RequireFromString("505188.68")), s.FinalBalance.String())
	})

	t.Run("no distributions before required age", func(t *testing.T) {
		s, err := Summarize(Project(ProjectionRequest{StartAge: 65, StartBalance: 100000, Years: 3}))
		require.NoError(t, err)

		assert.Equal(t, 3, s.Years)
		assert.Equal(t, 65, s.FirstAge)
		assert.Equal(t, 67, s.LastAge)
		assert.True(t, s.TotalRMD.IsZero())
		assert.True(t, s.FinalBalance.Equal(decimal.NewFromInt(100000)))
	})

	t.Run("totals add up", func(t *testing.T) {
		records := Project(ProjectionRequest{StartAge: 75, StartBalance: 400000, Years: 10, GrowthRate: 4, WithholdingRate: 25})
		s, err := Summarize(records)
		require.NoError(t, err)

		var total float64
		for _, r := range records {
			total += r.RMD
		}
		assert.InDelta(t, total, s.TotalRMD.InexactFloat64(), 0.01)
		assert.True(t, s.TotalRMD.Equal(s.TotalTaxWithheld.Add(s.TotalNetReceived)) ||
			s.TotalRMD.Sub(s.TotalTaxWithheld.Add(s.TotalNetReceived)).Abs().LessThanOrEqual(decimal.RequireFromString("0.01")))
	})

	t.Run("empty projection", func(t *testing.T) {
		s, err := Summarize(nil)
		require.NoError(t, err)
		assert.Zero(t, s.Years)
		assert.True(t, s.TotalRMD.IsZero())
	})

	t.Run("non-finite amounts", func(t *testing.T) {
		_, err := Summarize([]YearRecord{{Year: 1, Age: 80, RMD: math.NaN()}})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrTypeValidation, apperrors.TypeOf(err))

		_, err = Summarize([]YearRecord{
			{Year: 1, Age: 80, EndBalance: 10},
			{Year: 2, Age: 81, EndBalance: math.Inf(1)},
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 2, appErr.Context["year"])
	})
}
