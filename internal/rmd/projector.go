package rmd

import (
	"context"
	"log/slog"

	"rmdcalc/internal/infrastructure"
)

// Observer is notified after every projection run
type Observer interface {
	ObserveProjection(req ProjectionRequest, records []YearRecord)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(req ProjectionRequest, records []YearRecord)

// ObserveProjection calls f(req, records)
func (f ObserverFunc) ObserveProjection(req ProjectionRequest, records []YearRecord) {
	f(req, records)
}

// Project runs the yearly recurrence and returns exactly max(req.Years, 0)
// records in increasing year order.
func Project(req ProjectionRequest) []YearRecord {
	n := req.Years
	if n < 0 {
		n = 0
	}
	records := make([]YearRecord, 0, n)

	growth := req.GrowthRate / 100
	taxRate := req.WithholdingRate / 100

	age := req.StartAge
	balance := req.StartBalance
	for year := 1; year <= req.Years; year++ {
		var distribution float64
		if age >= RequiredBeginningAge {
			distribution = balance / DivisorFor(age)
		}

		tax := distribution * taxRate
		end := (balance - distribution) * (1 + growth)

		records = append(records, YearRecord{
			Year:         year,
			Age:          age,
			StartBalance: balance,
			RMD:          distribution,
			TaxWithheld:  tax,
			NetReceived:  distribution - tax,
			EndBalance:   end,
		})

		balance = end
		age++
	}
	return records
}

// Projector wraps Project with logging and an optional observer
type Projector struct {
	logger   *slog.Logger
	observer Observer
}

// NewProjector creates a projector. A nil logger uses the application logger.
func NewProjector(logger *slog.Logger, observer Observer) *Projector {
	return &Projector{
		logger:   infrastructure.WithComponent(logger, "projector"),
		observer: observer,
	}
}

// Run projects req. The result is identical to Project(req).
func (p *Projector) Run(ctx context.Context, req ProjectionRequest) []YearRecord {
	p.logger.InfoContext(ctx, "starting projection",
		slog.Int("start_age", req.StartAge),
		slog.Float64("start_balance", req.StartBalance),
		slog.Int("years", req.Years),
		slog.Float64("growth_rate", req.GrowthRate),
		slog.Float64("withholding_rate", req.WithholdingRate))

	if req.Years < 0 {
		p.logger.WarnContext(ctx, "negative year count yields an empty projection",
			slog.Int("years", req.Years))
	}

	records := Project(req)

	if len(records) > 0 {
		last := records[len(records)-1]
		p.logger.InfoContext(ctx, "projection completed",
			slog.Int("records", len(records)),
			slog.Int("last_age", last.Age),
			slog.Float64("final_balance", last.EndBalance))
	}

	if p.observer != nil {
		p.observer.ObserveProjection(req, records)
	}
	return records
}
