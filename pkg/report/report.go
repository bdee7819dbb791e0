// Package report assembles calculation results into a display-ready summary.
package report

import (
	"github.com/mchmarny/leadcalc/pkg/format"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/risk"
)

// Display holds the formatted values of a result.
type Display struct {
	Contribution string `json:"contribution" yaml:"contribution"`
	Estimated    string `json:"estimated" yaml:"estimated"`
	Low          string `json:"low" yaml:"low"`
	High         string `json:"high" yaml:"high"`
	Intake       string `json:"intake" yaml:"intake"`
	Absorbed     string `json:"absorbed" yaml:"absorbed"`
	Percent      string `json:"percent_of_reference" yaml:"percent_of_reference"`
}

// Breakdown shows how the daily intake becomes a blood lead contribution.
type Breakdown struct {
	DailyIntakeUg     float64 `json:"daily_intake_ug" yaml:"daily_intake_ug"`
	AbsorptionPercent float64 `json:"absorption_percent,omitempty" yaml:"absorption_percent,omitempty"`
	DailyAbsorbedUg   float64 `json:"daily_absorbed_ug" yaml:"daily_absorbed_ug"`
	BKSF              float64 `json:"bksf" yaml:"bksf"`
	ContributionUgDl  float64 `json:"contribution_ug_dl" yaml:"contribution_ug_dl"`
}

// Report is a calculation result with its risk assessment.
type Report struct {
	Result             model.CalculationResult `json:"result" yaml:"result"`
	Parameters         model.ModelParameters   `json:"parameters" yaml:"parameters"`
	ContributionRisk   risk.Tier               `json:"contribution_risk" yaml:"contribution_risk"`
	ContributionLabel  string                  `json:"contribution_label" yaml:"contribution_label"`
	TotalRisk          risk.Tier               `json:"total_risk" yaml:"total_risk"`
	PercentOfReference float64                 `json:"percent_of_reference" yaml:"percent_of_reference"`
	ExceedsWHOAction   bool                    `json:"exceeds_who_action" yaml:"exceeds_who_action"`
	Breakdown          Breakdown               `json:"breakdown" yaml:"breakdown"`
	Display            Display                 `json:"display" yaml:"display"`
}

// New builds a report for r computed with mp. Routes are the exposure routes
// that contributed; the absorption percentage is only reported when there is
// exactly one, since a mix has no single fraction.
func New(mp model.ModelParameters, r model.CalculationResult, routes ...model.ExposureRoute) *Report {
	contribution := risk.ClassifyContribution(r.BloodLeadContributionUgDl, r.CDCReferenceLevel)
	pct := risk.PercentOfReference(r.BloodLeadContributionUgDl, r.CDCReferenceLevel)

	b := Breakdown{
		DailyIntakeUg:    r.DailyLeadIntakeUg,
		DailyAbsorbedUg:  r.DailyAbsorbedLeadUg,
		BKSF:             mp.BKSF,
		ContributionUgDl: r.BloodLeadContributionUgDl,
	}
	if len(routes) == 1 {
		b.AbsorptionPercent = mp.AbsorptionFractions.For(routes[0]) * 100
	}

	return &Report{
		Result:             r,
		Parameters:         mp,
		ContributionRisk:   contribution,
		ContributionLabel:  risk.ContributionLabel(contribution),
		TotalRisk:          risk.ClassifyTotal(r.EstimatedBloodLeadUgDl, r.CDCReferenceLevel),
		PercentOfReference: pct,
		ExceedsWHOAction:   r.EstimatedBloodLeadUgDl > r.ReferenceThresholds.WHOAction,
		Breakdown:          b,
		Display: Display{
			Contribution: "+" + format.BloodLead(r.BloodLeadContributionUgDl),
			Estimated:    format.BloodLead(r.EstimatedBloodLeadUgDl),
			Low:          format.BloodLead(r.Range.Low),
			High:         format.BloodLead(r.Range.High),
			Intake:       format.Intake(r.DailyLeadIntakeUg),
			Absorbed:     format.Intake(r.DailyAbsorbedLeadUg),
			Percent:      format.Percent(pct),
		},
	}
}
