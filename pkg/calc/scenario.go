package calc

import (
	"github.com/mchmarny/leadcalc/pkg/model"
)

const (
	traditionalShareOfMax = 0.1

	ScenarioDefault   = "default"
	ScenarioLow       = "low"
	ScenarioHigh      = "high"
	ScenarioWorstCase = "worst_case"
)

// Scenario is a calculation at one point of a product's lead content range.
type Scenario struct {
	Name   string                  `json:"name" yaml:"name"`
	PPM    float64                 `json:"ppm" yaml:"ppm"`
	Result model.CalculationResult `json:"result" yaml:"result"`
}

type point struct {
	name string
	ppm  float64
}

// Scenarios evaluates e at the product default and, when the product's lead
// content varies by more than an order of magnitude, at the low end of the
// range (modern, regulated product), a tenth of the maximum (traditional,
// unregulated product) and the maximum (worst case).
// Overrides on e are ignored; each scenario sets its own concentration.
func Scenarios(e *model.ExposureInput, p *model.Profile) []Scenario {
	points := []point{{ScenarioDefault, e.Product.LeadContentPpm}}

	if e.Product.HasVariableLead() {
		r := e.Product.LeadContentRange
		points = append(points,
			point{ScenarioLow, r.Min},
			point{ScenarioHigh, r.Max * traditionalShareOfMax},
			point{ScenarioWorstCase, r.Max},
		)
	}

	list := make([]Scenario, 0, len(points))
	for _, pt := range points {
		in := *e
		in.Override = model.OverridePPM(pt.ppm)
		list = append(list, Scenario{
			Name:   pt.name,
			PPM:    pt.ppm,
			Result: Calculate(&in, p),
		})
	}
	return list
}
