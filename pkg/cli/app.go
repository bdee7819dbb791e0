package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mchmarny/leadcalc/pkg/config"
	"github.com/mchmarny/leadcalc/pkg/data"
	"github.com/mchmarny/leadcalc/pkg/logging"
	"github.com/mchmarny/leadcalc/pkg/metrics"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "leadcalc"
	appConfigKey = "app-config"

	metricsShutdownWaitSeconds = 5

	formatJSON = config.FormatJSON
	formatYAML = config.FormatYAML
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	DBPath    string
	ConfigDir string
	Format    string
	Debug     bool
	DB        *sql.DB
	Settings  *config.Config
	Metrics   *metrics.Instruments
	Out       io.Writer

	shutdownMetrics metrics.ShutdownFunc
}

func getConfig(cmd *cli.Command) *appConfig {
	return cmd.Root().Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    appName,
		Version: fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:   "Estimate blood lead levels from food, beverage and cosmetic exposures",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  debugFlagName,
				Usage: "Prints verbose logs (optional, default: false)",
			},
			&cli.StringFlag{
				Name:  dbFlagName,
				Usage: "Path to the Sqlite database file with custom products (default: $HOME/.leadcalc/data.db)",
			},
			&cli.StringFlag{
				Name:    configFlagName,
				Usage:   "Directory with the config.yaml file (default: $HOME/.leadcalc)",
				Sources: cli.EnvVars("LEADCALC_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:  formatFlagName,
				Usage: "Output format [json, yaml] (default: from config)",
			},
		},
		Commands: []*cli.Command{
			newCalcCmd(),
			newCumulativeCmd(),
			newBatchCmd(),
			newParamsCmd(),
			newProductCmd(),
			newServerCmd(),
			newResetCmd(),
		},
		Metadata: map[string]any{},
		Before:   before,
		After:    after,
	}
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfgDir := cmd.String(configFlagName)
	if cfgDir == "" {
		cfgDir = getHomeDir()
	}

	settings, err := config.ReadOrCreate(cfgDir)
	if err != nil {
		return ctx, fmt.Errorf("reading config: %w", err)
	}

	level := settings.LogLevel
	if cmd.Bool(debugFlagName) {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level)

	format := settings.Format
	if f := cmd.String(formatFlagName); f != "" {
		format = f
	}
	if format == "yml" {
		format = formatYAML
	}
	if format != formatJSON && format != formatYAML {
		return ctx, fmt.Errorf("invalid format %q, must be one of: %s, %s", format, formatJSON, formatYAML)
	}

	shutdownMetrics, err := metrics.Setup(ctx, appName, version)
	if err != nil {
		slog.Warn("metrics exporter init failed", "error", err)
	}

	dbPath := cmd.String(dbFlagName)
	if dbPath == "" {
		dbPath = filepath.Join(cfgDir, data.DataFileName)
	}

	if err := data.Init(dbPath); err != nil {
		return ctx, fmt.Errorf("initializing database: %w", err)
	}

	db, err := data.GetDB(dbPath)
	if err != nil {
		return ctx, fmt.Errorf("opening database: %w", err)
	}

	cmd.Root().Metadata[appConfigKey] = &appConfig{
		DBPath:    dbPath,
		ConfigDir: cfgDir,
		Format:    format,
		Debug:     cmd.Bool(debugFlagName),
		DB:        db,
		Settings:  settings,
		Metrics:   metrics.Global(),
		Out:       cmd.Root().Writer,

		shutdownMetrics: shutdownMetrics,
	}
	return ctx, nil
}

func after(ctx context.Context, cmd *cli.Command) error {
	cfg, ok := cmd.Root().Metadata[appConfigKey].(*appConfig)
	if !ok {
		return nil
	}

	if cfg.DB != nil {
		cfg.DB.Close()
	}

	if cfg.shutdownMetrics != nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsShutdownWaitSeconds*time.Second)
		defer cancel()
		if err := cfg.shutdownMetrics(ctx); err != nil {
			slog.Debug("error flushing metrics", "error", err)
		}
	}
	return nil
}

func getHomeDir() string {
	dir, created, err := config.GetOrCreateHomeDir(appName)
	if err != nil {
		slog.Debug("error getting home dir, using current dir instead", "error", err)
		return "."
	}
	if created {
		slog.Debug("created home dir", "path", dir)
	}
	return dir
}

func (c *appConfig) encode(v any) error {
	w := c.Out
	if w == nil {
		w = os.Stdout
	}
	return encode(w, c.Format, v)
}

func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		e := yaml.NewEncoder(w)
		defer e.Close()
		return e.Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
