// Package telemetry exports engine spans to an OpenTelemetry collector.
package telemetry

import (
	"context"
	"fmt"

	"github.com/gdugdh24/spiritatlas-backend/internal/config"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/compatibility"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gdugdh24/spiritatlas-backend/compatibility"

// NewTracerProvider builds a batching OTLP/HTTP tracer provider and installs
// it as the global provider. Callers must Shutdown it to flush spans.
func NewTracerProvider(ctx context.Context, cfg *config.TracingConfig) (*sdktrace.TracerProvider, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SampleRate)),
	)
	otel.SetTracerProvider(provider)
	return provider, nil
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// TraceObserver turns engine operations into OpenTelemetry spans.
type TraceObserver struct {
	tracer trace.Tracer
}

var _ compatibility.Observer = (*TraceObserver)(nil)

func NewTraceObserver(provider trace.TracerProvider) *TraceObserver {
	return &TraceObserver{tracer: provider.Tracer(instrumentationName)}
}

func (o *TraceObserver) Start(ctx context.Context, operation string) (context.Context, compatibility.Span) {
	ctx, span := o.tracer.Start(ctx, operation, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, traceSpan{span: span}
}

type traceSpan struct {
	span trace.Span
}

func (s traceSpan) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
