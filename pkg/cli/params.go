package cli

import (
	"context"
	"fmt"

	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/params"
	"github.com/urfave/cli/v3"
)

// ParamsView is the resolved model parameters for a profile.
type ParamsView struct {
	Profile    *model.Profile            `json:"profile" yaml:"profile"`
	Parameters model.ModelParameters     `json:"parameters" yaml:"parameters"`
	Thresholds model.ReferenceThresholds `json:"thresholds" yaml:"thresholds"`
}

func newParamsView(p *model.Profile) *ParamsView {
	mp := params.ResolveProfile(p)
	return &ParamsView{
		Profile:    p,
		Parameters: mp,
		Thresholds: params.Thresholds(mp.CDCReferenceLevel),
	}
}

func newParamsCmd() *cli.Command {
	return &cli.Command{
		Name:   "params",
		Usage:  "Show the model parameters used for a profile",
		Flags:  profileFlags(),
		Action: cmdParams,
	}
}

func cmdParams(_ context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	p, err := profileSpec(cmd, cfg.Settings.Profile).Profile()
	if err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	if err := cfg.encode(newParamsView(p)); err != nil {
		return fmt.Errorf("encoding parameters: %w", err)
	}
	return nil
}
