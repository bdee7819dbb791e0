package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/leadcalc/pkg/data"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/scenario"
	"github.com/urfave/cli/v3"
)

func newCalcCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     productFlagName,
			Aliases:  []string{"p"},
			Usage:    "Product ID (see: product list)",
			Required: true,
		},
		&cli.FloatFlag{
			Name:  amountFlagName,
			Usage: "Amount per use in grams (default: product serving size)",
		},
		&cli.FloatFlag{
			Name:  frequencyFlagName,
			Usage: "Uses per week (default: 7)",
		},
		&cli.StringFlag{
			Name:  unitFlagName,
			Usage: fmt.Sprintf("Unit of the custom lead value %v", model.LeadUnits),
		},
		&cli.FloatFlag{
			Name:  ppmFlagName,
			Usage: "Custom lead concentration in ppm (µg/g)",
		},
		&cli.FloatFlag{
			Name:  ugFlagName,
			Usage: "Custom total lead per serving in µg",
		},
	}

	return &cli.Command{
		Name:   "calc",
		Usage:  "Estimate blood lead level for a single product exposure",
		Flags:  append(flags, profileFlags()...),
		Action: cmdCalc,
	}
}

func newCumulativeCmd() *cli.Command {
	return &cli.Command{
		Name:  "cumulative",
		Usage: "Estimate blood lead level for several concurrent exposures",
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:     exposureFlagName,
				Aliases:  []string{"e"},
				Usage:    "Exposure as product_id[,amount=G][,freq=N][,ppm=C][,ug=D] (repeatable)",
				Required: true,
			},
		}, profileFlags()...),
		// exposure arguments carry their own comma separated fields
		DisableSliceFlagSeparator: true,
		Action:                    cmdCumulative,
	}
}

func cmdCalc(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	spec := scenario.ExposureSpec{
		ProductID:              cmd.String(productFlagName),
		AmountGrams:            floatFlagPtr(cmd, amountFlagName),
		FrequencyPerWeek:       floatFlagPtr(cmd, frequencyFlagName),
		LeadUnit:               cmd.String(unitFlagName),
		CustomLeadPpm:          floatFlagPtr(cmd, ppmFlagName),
		CustomLeadUgPerServing: floatFlagPtr(cmd, ugFlagName),
	}

	// a lone value flag implies its unit
	if spec.LeadUnit == "" {
		switch {
		case spec.CustomLeadUgPerServing != nil:
			spec.LeadUnit = string(model.LeadUnitUgPerServing)
		case spec.CustomLeadPpm != nil:
			spec.LeadUnit = string(model.LeadUnitPPM)
		}
	}

	return runScenario(ctx, cfg, scenario.Scenario{
		Name:      spec.ProductID,
		Profile:   profileSpec(cmd, cfg.Settings.Profile),
		Exposures: []scenario.ExposureSpec{spec},
	})
}

func cmdCumulative(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	args := cmd.StringSlice(exposureFlagName)
	specs := make([]scenario.ExposureSpec, 0, len(args))
	for _, a := range args {
		s, err := parseExposureArg(a)
		if err != nil {
			return err
		}
		specs = append(specs, s)
	}

	return runScenario(ctx, cfg, scenario.Scenario{
		Name:      scenario.KindCumulative,
		Profile:   profileSpec(cmd, cfg.Settings.Profile),
		Exposures: specs,
	})
}

func runScenario(ctx context.Context, cfg *appConfig, s scenario.Scenario) error {
	r, err := scenario.Evaluate(s, data.ProductLookup(cfg.DB))
	cfg.Metrics.RecordScenario(ctx, err)
	if err != nil {
		return fmt.Errorf("calculating %s: %w", s.Name, err)
	}
	cfg.Metrics.RecordCalculation(ctx, r.Kind)

	slog.Debug("calculated",
		"name", r.Name,
		"kind", r.Kind,
		"estimate", r.Report.Result.EstimatedBloodLeadUgDl,
		"risk", r.Report.TotalRisk)

	if err := cfg.encode(r); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
