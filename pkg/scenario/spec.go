// Package scenario maps user-supplied exposure descriptions (scenario files,
// API requests) onto calculator inputs and evaluates them.
package scenario

import (
	"log/slog"
	"math"

	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/pkg/errors"
)

const (
	// DefaultFrequencyPerWeek is a daily exposure.
	DefaultFrequencyPerWeek = 7
)

var (
	// ErrInvalidExposure is returned for negative or non-finite magnitudes.
	ErrInvalidExposure = errors.New("invalid exposure")
)

// ProductLookup resolves a product ID.
type ProductLookup func(id string) (*model.Product, error)

// ProfileSpec is the wire form of a profile.
type ProfileSpec struct {
	AgeGroup     string   `json:"age_group" yaml:"age_group"`
	Country      string   `json:"country" yaml:"country"`
	BodyWeightKg *float64 `json:"body_weight_kg,omitempty" yaml:"body_weight_kg,omitempty"`
}

// Profile parses and validates the spec.
func (s ProfileSpec) Profile() (*model.Profile, error) {
	return model.NewProfile(s.AgeGroup, s.Country, s.BodyWeightKg)
}

// ProfileSpecOf converts p back to its wire form.
func ProfileSpecOf(p model.Profile) ProfileSpec {
	return ProfileSpec{
		AgeGroup:     string(p.AgeGroup),
		Country:      string(p.Country),
		BodyWeightKg: p.BodyWeightKg,
	}
}

// ExposureSpec is the wire form of one exposure. Lead content overrides use
// the flat form: a unit plus one optional field per unit.
type ExposureSpec struct {
	ProductID              string   `json:"product_id" yaml:"product_id"`
	AmountGrams            *float64 `json:"amount_grams,omitempty" yaml:"amount_grams,omitempty"`
	FrequencyPerWeek       *float64 `json:"frequency_per_week,omitempty" yaml:"frequency_per_week,omitempty"`
	LeadUnit               string   `json:"lead_unit,omitempty" yaml:"lead_unit,omitempty"`
	CustomLeadPpm          *float64 `json:"custom_lead_ppm,omitempty" yaml:"custom_lead_ppm,omitempty"`
	CustomLeadUgPerServing *float64 `json:"custom_lead_ug_per_serving,omitempty" yaml:"custom_lead_ug_per_serving,omitempty"`
}

// Exposure resolves the product and builds the calculator input. A missing
// amount defaults to the product's serving size and a missing frequency to
// daily exposure.
func (s ExposureSpec) Exposure(lookup ProductLookup) (*model.ExposureInput, error) {
	if s.ProductID == "" {
		return nil, errors.Wrap(ErrInvalidExposure, "product_id required")
	}
	if lookup == nil {
		return nil, errors.New("product lookup required")
	}

	p, err := lookup(s.ProductID)
	if err != nil {
		return nil, err
	}

	e := &model.ExposureInput{
		Product:          p,
		AmountGrams:      p.DefaultServingGrams,
		FrequencyPerWeek: DefaultFrequencyPerWeek,
	}

	if s.AmountGrams != nil {
		e.AmountGrams = *s.AmountGrams
	}
	if s.FrequencyPerWeek != nil {
		e.FrequencyPerWeek = *s.FrequencyPerWeek
	}
	if err := checkMagnitude("amount_grams", e.AmountGrams); err != nil {
		return nil, err
	}
	if err := checkMagnitude("frequency_per_week", e.FrequencyPerWeek); err != nil {
		return nil, err
	}

	o, err := Override(s.LeadUnit, s.CustomLeadPpm, s.CustomLeadUgPerServing)
	if err != nil {
		return nil, errors.Wrapf(err, "product %s", s.ProductID)
	}
	e.Override = o

	return e, nil
}

// Override maps the flat unit/value form onto a lead override. A
// ug_per_serving unit with a value selects the per-serving dose. Otherwise a
// ppm value, if present, is used regardless of unit, and with neither the
// product default applies (nil). A ug_per_serving unit without its value
// falls back this way too and is logged.
func Override(unit string, ppm, ugPerServing *float64) (*model.LeadOverride, error) {
	var u model.LeadUnit
	if unit != "" {
		var err error
		if u, err = model.ParseLeadUnit(unit); err != nil {
			return nil, err
		}
	}

	if u == model.LeadUnitUgPerServing {
		if ugPerServing != nil {
			if err := checkMagnitude("custom_lead_ug_per_serving", *ugPerServing); err != nil {
				return nil, err
			}
			return model.OverrideUgPerServing(*ugPerServing), nil
		}
		slog.Warn("lead unit is ug_per_serving but no value was given, using ppm",
			"custom_lead_ppm_set", ppm != nil)
	}

	if ppm == nil {
		return nil, nil
	}
	if err := checkMagnitude("custom_lead_ppm", *ppm); err != nil {
		return nil, err
	}
	return model.OverridePPM(*ppm), nil
}

func checkMagnitude(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidExposure, "%s must be a non-negative number: %v", name, v)
	}
	return nil
}
