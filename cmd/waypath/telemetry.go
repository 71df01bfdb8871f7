package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/waypath/search"
)

// ErrUnknownExporter is returned for an unsupported --telemetry value.
var ErrUnknownExporter = errors.New("unknown telemetry exporter")

// telemetry holds the SDK providers installed for one CLI run. The zero
// value exports nothing.
type telemetry struct {
	tp *sdktrace.TracerProvider
	mp *sdkmetric.MeterProvider

	closed bool
}

// setupTelemetry builds providers for exporter: "none" or "stdout". Stdout
// output goes to w as indented JSON.
func setupTelemetry(exporter string, w io.Writer) (*telemetry, error) {
	switch exporter {
	case "", "none":
		return &telemetry{}, nil

	case "stdout":
		spans, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout trace exporter: %w", err)
		}
		metrics, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout metric exporter: %w", err)
		}

		return &telemetry{
			// spans are exported as they end; the CLI exits right after
			tp: sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans)),
			mp: sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metrics))),
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, exporter)
}

// options routes the searcher's spans and metrics to the providers.
func (t *telemetry) options() []search.Option {
	var opts []search.Option
	if t.tp != nil {
		opts = append(opts, search.WithTracerProvider(t.tp))
	}
	if t.mp != nil {
		opts = append(opts, search.WithMeterProvider(t.mp))
	}

	return opts
}

// shutdown flushes and stops the providers. Later calls do nothing.
func (t *telemetry) shutdown(ctx context.Context) error {
	if t.closed {
		return nil
	}
	t.closed = true

	var errs []error
	if t.tp != nil {
		errs = append(errs, t.tp.Shutdown(ctx))
	}
	if t.mp != nil {
		errs = append(errs, t.mp.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
