package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/scenario"
	"github.com/urfave/cli/v3"
)

const (
	debugFlagName       = "debug"
	dbFlagName          = "db"
	configFlagName      = "config"
	formatFlagName      = "format"
	ageFlagName         = "age"
	countryFlagName     = "country"
	weightFlagName      = "weight"
	productFlagName     = "product"
	amountFlagName      = "amount"
	frequencyFlagName   = "frequency"
	unitFlagName        = "unit"
	ppmFlagName         = "ppm"
	ugFlagName          = "ug"
	exposureFlagName    = "exposure"
	fileFlagName        = "file"
	concurrencyFlagName = "concurrency"
	categoryFlagName    = "category"
	limitFlagName       = "limit"
	portFlagName        = "port"
	yesFlagName         = "yes"
	urlFlagName         = "url"

	exposureFieldSep = ","
	exposureValueSep = "="
)

// Flags are built per command tree since parsed values live on the flag.
func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ageFlagName,
			Aliases: []string{"a"},
			Usage:   fmt.Sprintf("Age group %v (default: from config)", model.AgeGroups),
		},
		&cli.StringFlag{
			Name:    countryFlagName,
			Aliases: []string{"c"},
			Usage:   fmt.Sprintf("Country %v (default: from config)", model.Countries),
		},
		&cli.FloatFlag{
			Name:    weightFlagName,
			Aliases: []string{"w"},
			Usage:   "Body weight in kg (default: age group reference weight)",
		},
	}
}

// profileSpec merges the profile flags over the configured default profile.
func profileSpec(cmd *cli.Command, def model.Profile) scenario.ProfileSpec {
	s := scenario.ProfileSpecOf(def)
	if v := cmd.String(ageFlagName); v != "" {
		s.AgeGroup = v
	}
	if v := cmd.String(countryFlagName); v != "" {
		s.Country = v
	}
	if cmd.IsSet(weightFlagName) {
		w := cmd.Float(weightFlagName)
		s.BodyWeightKg = &w
	}
	return s
}

func floatFlagPtr(cmd *cli.Command, name string) *float64 {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Float(name)
	return &v
}

// parseExposureArg parses the compact exposure form used by the cumulative
// command: product_id[,amount=G][,freq=N][,ppm=C][,ug=D].
func parseExposureArg(arg string) (scenario.ExposureSpec, error) {
	parts := strings.Split(strings.TrimSpace(arg), exposureFieldSep)

	s := scenario.ExposureSpec{ProductID: strings.TrimSpace(parts[0])}
	if s.ProductID == "" {
		return s, fmt.Errorf("exposure %q: product id required", arg)
	}

	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(p, exposureValueSep)
		if !ok {
			return s, fmt.Errorf("exposure %q: expected key=value, got %q", arg, p)
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return s, fmt.Errorf("exposure %q: invalid %s value: %w", arg, k, err)
		}

		switch strings.ToLower(strings.TrimSpace(k)) {
		case "amount", "grams":
			s.AmountGrams = &f
		case "freq", "frequency":
			s.FrequencyPerWeek = &f
		case "ppm":
			s.CustomLeadPpm = &f
			if s.LeadUnit == "" {
				s.LeadUnit = string(model.LeadUnitPPM)
			}
		case "ug":
			s.CustomLeadUgPerServing = &f
			s.LeadUnit = string(model.LeadUnitUgPerServing)
		default:
			return s, fmt.Errorf("exposure %q: unknown key %q", arg, k)
		}
	}

	return s, nil
}
