package model

import (
	"math"

	"github.com/pkg/errors"
)

const (
	variableLeadRatio = 10
)

// LeadUnit names the unit of a custom lead concentration override.
type LeadUnit string

const (
	LeadUnitPPM          LeadUnit = "ppm"
	LeadUnitUgPerServing LeadUnit = "ug_per_serving"
)

var LeadUnits = []LeadUnit{
	LeadUnitPPM,
	LeadUnitUgPerServing,
}

// Profile describes the exposed individual.
type Profile struct {
	AgeGroup     AgeGroup `json:"age_group" yaml:"age_group"`
	Country      Country  `json:"country" yaml:"country"`
	BodyWeightKg *float64 `json:"body_weight_kg,omitempty" yaml:"body_weight_kg,omitempty"`
}

// NewProfile parses and validates the demographic inputs. Invalid enumeration
// values or a non-positive body weight are rejected here so the rest of the
// pipeline never sees them.
func NewProfile(ageGroup, country string, bodyWeightKg *float64) (*Profile, error) {
	age, err := ParseAgeGroup(ageGroup)
	if err != nil {
		return nil, err
	}

	c, err := ParseCountry(country)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		AgeGroup:     age,
		Country:      c,
		BodyWeightKg: bodyWeightKg,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks a profile that was decoded rather than built with NewProfile.
func (p *Profile) Validate() error {
	if p == nil {
		return errors.New("profile required")
	}
	if !p.AgeGroup.Valid() {
		return errors.Wrapf(ErrInvalidAgeGroup, "%q", p.AgeGroup)
	}
	if !p.Country.Valid() {
		return errors.Wrapf(ErrInvalidCountry, "%q", p.Country)
	}
	if p.BodyWeightKg != nil {
		w := *p.BodyWeightKg
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.Wrapf(ErrInvalidBodyWeight, "%v kg", w)
		}
	}
	return nil
}

// LeadRange bounds the typical lead content of a product (ppm).
type LeadRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// ExposureExplanation describes how a product's lead reaches the body.
type ExposureExplanation struct {
	Pathway       string `json:"pathway" yaml:"pathway"`
	Details       string `json:"details" yaml:"details"`
	EffectiveDose string `json:"effective_dose,omitempty" yaml:"effective_dose,omitempty"`
}

// Product is a catalog record. Lead content is in ppm (µg of lead per gram).
type Product struct {
	ID                  string               `json:"id" yaml:"id"`
	Name                string               `json:"name" yaml:"name"`
	Category            ProductCategory      `json:"category" yaml:"category"`
	LeadContentPpm      float64              `json:"lead_content_ppm" yaml:"lead_content_ppm"`
	LeadContentRange    *LeadRange           `json:"lead_content_range,omitempty" yaml:"lead_content_range,omitempty"`
	DefaultServingGrams float64              `json:"default_serving_grams" yaml:"default_serving_grams"`
	ExposureRoute       ExposureRoute        `json:"exposure_route" yaml:"exposure_route"`
	Description         string               `json:"description,omitempty" yaml:"description,omitempty"`
	Explanation         *ExposureExplanation `json:"exposure_explanation,omitempty" yaml:"exposure_explanation,omitempty"`
}

// HasVariableLead reports whether the product's lead content spans more than
// an order of magnitude.
func (p *Product) HasVariableLead() bool {
	if p == nil || p.LeadContentRange == nil {
		return false
	}
	r := p.LeadContentRange
	if r.Min <= 0 {
		return r.Max > 0
	}
	return r.Max/r.Min > variableLeadRatio
}

// Validate checks the structural integrity of a product record.
func (p *Product) Validate() error {
	if p == nil {
		return errors.New("product required")
	}
	if p.ID == "" {
		return errors.New("product id required")
	}
	if !p.Category.Valid() {
		return errors.Wrapf(ErrInvalidCategory, "product %s: %q", p.ID, p.Category)
	}
	if !p.ExposureRoute.Valid() {
		return errors.Wrapf(ErrInvalidRoute, "product %s: %q", p.ID, p.ExposureRoute)
	}
	if p.LeadContentPpm < 0 || !isFinite(p.LeadContentPpm) {
		return errors.Errorf("product %s: invalid lead content: %v", p.ID, p.LeadContentPpm)
	}
	if p.DefaultServingGrams <= 0 || !isFinite(p.DefaultServingGrams) {
		return errors.Errorf("product %s: serving size must be positive: %v", p.ID, p.DefaultServingGrams)
	}
	if r := p.LeadContentRange; r != nil && (r.Min < 0 || r.Max < r.Min || !isFinite(r.Min) || !isFinite(r.Max)) {
		return errors.Errorf("product %s: invalid lead range: %v-%v", p.ID, r.Min, r.Max)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LeadOverride replaces the product's default concentration. Unit selects
// whether Value is a concentration (ppm) or a total dose per serving (µg).
type LeadOverride struct {
	Unit  LeadUnit `json:"unit" yaml:"unit"`
	Value float64  `json:"value" yaml:"value"`
}

// OverridePPM returns an override expressed as ppm (µg/g).
func OverridePPM(v float64) *LeadOverride {
	return &LeadOverride{Unit: LeadUnitPPM, Value: v}
}

// OverrideUgPerServing returns an override expressed as total µg per serving.
func OverrideUgPerServing(v float64) *LeadOverride {
	return &LeadOverride{Unit: LeadUnitUgPerServing, Value: v}
}

// ExposureInput is one product exposure. A nil Override means the product's
// default lead content applies.
type ExposureInput struct {
	Product          *Product      `json:"product" yaml:"product"`
	AmountGrams      float64       `json:"amount_grams" yaml:"amount_grams"`
	FrequencyPerWeek float64       `json:"frequency_per_week" yaml:"frequency_per_week"`
	Override         *LeadOverride `json:"override,omitempty" yaml:"override,omitempty"`
}

// AbsorptionFractions holds the route-specific absorbed share of a dose.
type AbsorptionFractions struct {
	Ingestion  float64 `json:"ingestion" yaml:"ingestion"`
	Dermal     float64 `json:"dermal" yaml:"dermal"`
	Inhalation float64 `json:"inhalation" yaml:"inhalation"`
}

// For returns the fraction for route.
func (a AbsorptionFractions) For(route ExposureRoute) float64 {
	switch route {
	case RouteDermal:
		return a.Dermal
	case RouteInhalation:
		return a.Inhalation
	default:
		return a.Ingestion
	}
}

// ModelParameters is the coefficient set resolved for a profile.
type ModelParameters struct {
	BaselineBloodLead   float64             `json:"baseline_blood_lead" yaml:"baseline_blood_lead"`
	BKSF                float64             `json:"bksf" yaml:"bksf"`
	AbsorptionFractions AbsorptionFractions `json:"absorption_fractions" yaml:"absorption_fractions"`
	GSD                 float64             `json:"gsd" yaml:"gsd"`
	CDCReferenceLevel   float64             `json:"cdc_reference_level" yaml:"cdc_reference_level"`
	BodyWeightKg        float64             `json:"body_weight_kg" yaml:"body_weight_kg"`
	CountryName         string              `json:"country_name" yaml:"country_name"`
}

// ReferenceThresholds are the blood lead levels (µg/dL) shown for context.
type ReferenceThresholds struct {
	CDC         float64 `json:"cdc" yaml:"cdc"`
	WHOAction   float64 `json:"who_action" yaml:"who_action"`
	WHOElevated float64 `json:"who_elevated" yaml:"who_elevated"`
}

// Range is the 5th to 95th percentile band around an estimate.
type Range struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// CalculationResult is the output of a blood lead calculation.
type CalculationResult struct {
	BloodLeadContributionUgDl float64             `json:"blood_lead_contribution_ug_dl" yaml:"blood_lead_contribution_ug_dl"`
	EstimatedBloodLeadUgDl    float64             `json:"estimated_blood_lead_ug_dl" yaml:"estimated_blood_lead_ug_dl"`
	Range                     Range               `json:"range" yaml:"range"`
	ExceedsCDCReference       bool                `json:"exceeds_cdc_reference" yaml:"exceeds_cdc_reference"`
	CDCReferenceLevel         float64             `json:"cdc_reference_level" yaml:"cdc_reference_level"`
	ReferenceThresholds       ReferenceThresholds `json:"reference_thresholds" yaml:"reference_thresholds"`
	DailyLeadIntakeUg         float64             `json:"daily_lead_intake_ug" yaml:"daily_lead_intake_ug"`
	DailyAbsorbedLeadUg       float64             `json:"daily_absorbed_lead_ug" yaml:"daily_absorbed_lead_ug"`
}
