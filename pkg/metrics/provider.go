package metrics

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
)

const (
	EndpointEnvVar        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	MetricsEndpointEnvVar = "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"

	exportInterval      = 10 * time.Second
	exporterInitTimeout = 5 * time.Second
)

// ShutdownFunc flushes pending metrics and stops the provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Endpoint returns the OTLP metrics endpoint from the environment. The
// metrics specific variable wins over the generic one.
func Endpoint() string {
	if v := strings.TrimSpace(os.Getenv(MetricsEndpointEnvVar)); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(EndpointEnvVar))
}

// NewMeterProvider builds an SDK meter provider reading through reader, with
// the service name and version on its resource.
func NewMeterProvider(service, version string, reader sdkmetric.Reader) *sdkmetric.MeterProvider {
	res, err := sdkresource.Merge(sdkresource.Default(), sdkresource.NewSchemaless(
		attribute.String("service.name", service),
		attribute.String("service.version", version),
	))
	if err != nil {
		slog.Debug("error merging metrics resource, using default", "error", err)
		res = sdkresource.Default()
	}
	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader), sdkmetric.WithResource(res))
}

// Setup installs a global meter provider pushing to the OTLP/gRPC endpoint
// from the environment. With no endpoint set the global provider is left
// untouched and the returned shutdown does nothing.
func Setup(ctx context.Context, service, version string) (ShutdownFunc, error) {
	endpoint := Endpoint()
	if endpoint == "" {
		return noopShutdown, nil
	}

	ctxInit, cancel := context.WithTimeout(ctx, exporterInitTimeout)
	defer cancel()

	exp, err := otlpmetricgrpc.New(ctxInit, exporterOptions(endpoint)...)
	if err != nil {
		return noopShutdown, errors.Wrapf(err, "failed to create metrics exporter for %s", endpoint)
	}

	reader := sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(exportInterval))
	mp := NewMeterProvider(service, version, reader)
	otel.SetMeterProvider(mp)

	slog.Debug("metrics initialized", "endpoint", endpoint)
	return mp.Shutdown, nil
}

// exporterOptions accepts either a URL (scheme decides TLS) or a bare
// host:port, which is dialed without TLS.
func exporterOptions(endpoint string) []otlpmetricgrpc.Option {
	if strings.Contains(endpoint, "://") {
		return []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpointURL(endpoint)}
	}
	return []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	}
}
