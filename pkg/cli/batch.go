package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/leadcalc/pkg/data"
	"github.com/mchmarny/leadcalc/pkg/scenario"
	"github.com/urfave/cli/v3"
)

func newBatchCmd() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Evaluate every scenario in a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     fileFlagName,
				Aliases:  []string{"f"},
				Usage:    "Path to a YAML or JSON scenario file",
				Required: true,
			},
			&cli.IntFlag{
				Name:  concurrencyFlagName,
				Usage: "Maximum number of scenarios evaluated at once (default: from config)",
			},
		},
		Action: cmdBatch,
	}
}

func cmdBatch(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	list, err := scenario.Load(cmd.String(fileFlagName))
	if err != nil {
		return fmt.Errorf("loading scenarios: %w", err)
	}

	limit := cfg.Settings.Concurrency
	if cmd.IsSet(concurrencyFlagName) {
		limit = int(cmd.Int(concurrencyFlagName))
	}

	results, err := scenario.RunAll(ctx, list, data.ProductLookup(cfg.DB), limit, cfg.Metrics)
	if err != nil {
		return fmt.Errorf("running scenarios: %w", err)
	}

	var failed int
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	slog.Debug("batch complete", "scenarios", len(results), "failed", failed)

	if err := cfg.encode(results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}
