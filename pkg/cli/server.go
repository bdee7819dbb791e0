package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mchmarny/leadcalc/pkg/logging"
	"github.com/mchmarny/leadcalc/pkg/metrics"
	"github.com/urfave/cli/v3"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 60
	serverMaxHeaderBytes      = 20
	serverMaxBodyBytes        = 1 << 20
	serverHostDefault         = "127.0.0.1"

	requestIDHeader = "X-Request-ID"
)

func newServerCmd() *cli.Command {
	return &cli.Command{
		Name:    "server",
		Aliases: []string{"serve"},
		Usage:   "Start local HTTP JSON API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  portFlagName,
				Usage: "Port on which the server will listen (default: from config)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Address on which the server will listen",
				Value: serverHostDefault,
			},
			&cli.BoolFlag{
				Name:  "json-logs",
				Usage: "Write request logs as JSON",
			},
		},
		Action: cmdStartServer,
	}
}

func cmdStartServer(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	port := cfg.Settings.Port
	if cmd.IsSet(portFlagName) {
		port = int(cmd.Int(portFlagName))
	}
	address := fmt.Sprintf("%s:%d", cmd.String("host"), port)

	logger := slog.Default()
	if cmd.Bool("json-logs") {
		level := cfg.Settings.LogLevel
		if cfg.Debug {
			level = "debug"
		}
		logger = logging.NewServerLogger(os.Stderr, level)
	}

	s := &http.Server{
		Addr:           address,
		Handler:        makeRouter(cfg.DB, cfg.Metrics, logger, cfg.Settings.Concurrency),
		ReadTimeout:    serverTimeoutSeconds * time.Second,
		WriteTimeout:   serverTimeoutSeconds * time.Second,
		MaxHeaderBytes: 1 << serverMaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("server started", "address", fmt.Sprintf("http://%s", address))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("error shutting down server", "error", err)
	}
	logger.Info("server stopped")
	return nil
}

func makeRouter(db *sql.DB, m *metrics.Instruments, logger *slog.Logger, concurrency int) http.Handler {
	api := &apiHandler{
		db:          db,
		metrics:     m,
		concurrency: concurrency,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler)

	// Reference data
	mux.HandleFunc("GET /api/params", api.params)
	mux.HandleFunc("GET /api/products", api.products)
	mux.HandleFunc("GET /api/products/{id}", api.product)

	// Calculations
	mux.HandleFunc("POST /api/calculate", api.calculate)
	mux.HandleFunc("POST /api/cumulative", api.cumulative)
	mux.HandleFunc("POST /api/scenarios", api.scenarios)

	return withRequestLogging(mux, m, logger)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLogging assigns a request ID, then logs and counts each request.
func withRequestLogging(next http.Handler, m *metrics.Instruments, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.RecordRequest(r.Context(), route, rec.status)

		logger.Debug("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
