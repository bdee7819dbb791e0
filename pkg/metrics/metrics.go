// Package metrics defines the OpenTelemetry instruments recorded by the
// calculator and installs the OTLP meter provider they export through.
// Without a configured endpoint they are no-ops.
package metrics

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/mchmarny/leadcalc"

	StatusOK    = "ok"
	StatusError = "error"
)

// Instruments holds the counters shared by the CLI, batch runner and server.
type Instruments struct {
	Calculations metric.Int64Counter
	Scenarios    metric.Int64Counter
	Requests     metric.Int64Counter
}

// New creates the instruments from mp.
func New(mp metric.MeterProvider) (*Instruments, error) {
	meter := mp.Meter(meterName)

	calcs, err := meter.Int64Counter("leadcalc_calculations_total",
		metric.WithDescription("Blood lead calculations by kind"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calculations counter")
	}

	scenarios, err := meter.Int64Counter("leadcalc_scenarios_total",
		metric.WithDescription("Scenario evaluations by status"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scenarios counter")
	}

	reqs, err := meter.Int64Counter("leadcalc_http_requests_total",
		metric.WithDescription("API requests by route and status code"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create requests counter")
	}

	return &Instruments{
		Calculations: calcs,
		Scenarios:    scenarios,
		Requests:     reqs,
	}, nil
}

// Global returns instruments bound to the global meter provider.
func Global() *Instruments {
	m, err := New(otel.GetMeterProvider())
	if err != nil {
		// instrument names are constant
		panic(err)
	}
	return m
}

// RecordCalculation counts one calculation of the given kind.
func (m *Instruments) RecordCalculation(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.Calculations.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordScenario counts one scenario evaluation.
func (m *Instruments) RecordScenario(ctx context.Context, err error) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.Scenarios.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordRequest counts one API request.
func (m *Instruments) RecordRequest(ctx context.Context, route string, code int) {
	if m == nil {
		return
	}
	m.Requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("code", code),
	))
}
