package scenario

import (
	"context"
	"log/slog"

	"github.com/mchmarny/leadcalc/pkg/calc"
	"github.com/mchmarny/leadcalc/pkg/metrics"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/params"
	"github.com/mchmarny/leadcalc/pkg/report"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	KindSingle     = "single"
	KindCumulative = "cumulative"

	// DefaultConcurrency bounds RunAll when no limit is given.
	DefaultConcurrency = 4
)

// Result is the outcome of one scenario. Error is set instead of Report when
// the scenario's inputs could not be resolved.
type Result struct {
	Name      string          `json:"name" yaml:"name"`
	Kind      string          `json:"kind,omitempty" yaml:"kind,omitempty"`
	Profile   *model.Profile  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Products  []string        `json:"products,omitempty" yaml:"products,omitempty"`
	Report    *report.Report  `json:"report,omitempty" yaml:"report,omitempty"`
	Scenarios []calc.Scenario `json:"concentration_scenarios,omitempty" yaml:"concentration_scenarios,omitempty"`
	Error     string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Evaluate resolves and calculates s. A single exposure produces a single
// product report with its concentration scenarios; more than one is
// evaluated cumulatively.
func Evaluate(s Scenario, lookup ProductLookup) (*Result, error) {
	p, err := s.Profile.Profile()
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", s.Name)
	}

	es := make([]*model.ExposureInput, 0, len(s.Exposures))
	for i, spec := range s.Exposures {
		e, err := spec.Exposure(lookup)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %s: exposure %d", s.Name, i)
		}
		es = append(es, e)
	}

	return EvaluateInputs(s.Name, p, es), nil
}

// EvaluateInputs calculates already resolved exposures for p.
func EvaluateInputs(name string, p *model.Profile, es []*model.ExposureInput) *Result {
	mp := params.ResolveProfile(p)
	r := &Result{
		Name:     name,
		Profile:  p,
		Products: make([]string, 0, len(es)),
	}

	routes := make([]model.ExposureRoute, 0, len(es))
	for _, e := range es {
		r.Products = append(r.Products, e.Product.ID)
		routes = appendRoute(routes, e.Product.ExposureRoute)
	}

	if len(es) == 1 {
		r.Kind = KindSingle
		r.Report = report.New(mp, calc.Calculate(es[0], p), routes...)
		r.Scenarios = calc.Scenarios(es[0], p)
		return r
	}

	r.Kind = KindCumulative
	r.Report = report.New(mp, calc.CalculateCumulative(es, p), routes...)
	return r
}

func appendRoute(list []model.ExposureRoute, route model.ExposureRoute) []model.ExposureRoute {
	for _, r := range list {
		if r == route {
			return list
		}
	}
	return append(list, route)
}

// RunAll evaluates the scenarios concurrently with at most limit in flight.
// Results keep the input order. Scenarios with invalid inputs carry an Error
// and do not stop the rest; only context cancellation aborts the run.
func RunAll(ctx context.Context, list []Scenario, lookup ProductLookup, limit int, m *metrics.Instruments) ([]*Result, error) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]*Result, len(list))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, s := range list {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := Evaluate(s, lookup)
			m.RecordScenario(ctx, err)
			if err != nil {
				slog.Debug("scenario failed", "name", s.Name, "error", err)
				results[i] = &Result{Name: s.Name, Error: err.Error()}
				return nil
			}

			m.RecordCalculation(ctx, r.Kind)
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "scenario run canceled")
	}

	return results, nil
}
