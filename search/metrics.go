package search

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the tracer and meter of every Searcher.
const instrumentationName = "github.com/katalvlaran/waypath/search"

// telemetry owns the tracer and the lazily created instruments of one Searcher.
type telemetry struct {
	tracer trace.Tracer
	meter  metric.Meter

	searchTotal    metric.Int64Counter
	searchDuration metric.Float64Histogram
	pathHops       metric.Int64Histogram

	once sync.Once
	err  error
}

func newTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) *telemetry {
	return &telemetry{
		tracer: tp.Tracer(instrumentationName),
		meter:  mp.Meter(instrumentationName),
	}
}

// init creates the instruments. Safe to call multiple times.
func (t *telemetry) init() error {
	t.once.Do(func() {
		var err error

		t.searchTotal, err = t.meter.Int64Counter(
			"waypath_search_total",
			metric.WithDescription("Total number of path searches"),
		)
		if err != nil {
			t.err = err
			return
		}

		t.searchDuration, err = t.meter.Float64Histogram(
			"waypath_search_duration_seconds",
			metric.WithDescription("Duration of path searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			t.err = err
			return
		}

		t.pathHops, err = t.meter.Int64Histogram(
			"waypath_path_hops",
			metric.WithDescription("Hop count of found paths"),
		)
		if err != nil {
			t.err = err
			return
		}
	})

	return t.err
}

// record records metrics for one search.
func (t *telemetry) record(ctx context.Context, alg Algorithm, duration time.Duration, hops int, found bool) {
	if err := t.init(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("algorithm", alg.String()),
		attribute.Bool("found", found),
	)
	t.searchTotal.Add(ctx, 1, attrs)
	t.searchDuration.Record(ctx, duration.Seconds(), attrs)
	if found {
		t.pathHops.Record(ctx, int64(hops), metric.WithAttributes(attribute.String("algorithm", alg.String())))
	}
}

// startSpan creates the span of one search.
func (t *telemetry) startSpan(ctx context.Context, alg Algorithm, id string, start, goal any) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "Search."+alg.String(),
		trace.WithAttributes(
			attribute.String("search.id", id),
			attribute.String("search.algorithm", alg.String()),
			attribute.String("search.start", toString(start)),
			attribute.String("search.goal", toString(goal)),
		),
	)
}

// setSpanResult sets the result attributes on a search span.
func setSpanResult(span trace.Span, found bool, hops, visited int, cost float64) {
	span.SetAttributes(
		attribute.Bool("search.found", found),
		attribute.Int("search.hops", hops),
		attribute.Int("search.visited", visited),
		attribute.Float64("search.cost", cost),
	)
}

// setSpanError marks the span failed.
func setSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
