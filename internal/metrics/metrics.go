// Package metrics holds the OTel instruments for the simulation engine.
// Instruments come from the global meter provider, so they are no-ops
// unless the embedding process installs an SDK.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/stepshot/stepshot/internal/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Instruments bundles the engine's metric instruments. A nil *Instruments
// is valid and records nothing.
type Instruments struct {
	steps      metric.Int64Counter
	boundaries metric.Int64Counter
	newton     metric.Int64Histogram
	runs       metric.Int64Counter
}

// New creates the engine instruments on the global meter.
func New() (*Instruments, error) {
	m := meter()
	ins := &Instruments{}
	var err error

	ins.steps, err = m.Int64Counter(
		"engine.steps",
		metric.WithDescription("Integration steps advanced"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating step counter: %w", err)
	}

	ins.boundaries, err = m.Int64Counter(
		"engine.boundary.events",
		metric.WithDescription("Boundary events by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating boundary counter: %w", err)
	}

	ins.newton, err = m.Int64Histogram(
		"engine.newton.iterations",
		metric.WithDescription("Newton iterations per boundary resolution"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating newton histogram: %w", err)
	}

	ins.runs, err = m.Int64Counter(
		"engine.runs",
		metric.WithDescription("Completed simulation runs by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating run counter: %w", err)
	}

	return ins, nil
}

// AddSteps records n advanced integration steps.
func (i *Instruments) AddSteps(ctx context.Context, n int64) {
	if i == nil {
		return
	}
	i.steps.Add(ctx, n)
}

// RecordBoundary records one boundary event of the named type.
func (i *Instruments) RecordBoundary(ctx context.Context, event string) {
	if i == nil {
		return
	}
	i.boundaries.Add(ctx, 1, metric.WithAttributes(attribute.String("event", event)))
}

// RecordResolution records the Newton iteration count of one resolution.
func (i *Instruments) RecordResolution(ctx context.Context, iterations int) {
	if i == nil {
		return
	}
	i.newton.Record(ctx, int64(iterations))
}

// RecordRun records one completed run with its terminal outcome.
func (i *Instruments) RecordRun(ctx context.Context, outcome string) {
	if i == nil {
		return
	}
	i.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
