package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "playsim"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}
	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx               context.Context
	meter             metric.Meter
	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	playsTotal        metric.Int64Counter
	playLatencyMs     metric.Float64Histogram
	penaltiesTotal    metric.Int64Counter
	touchdownsTotal   metric.Int64Counter
	turnoversTotal    metric.Int64Counter
	gamesTotal        metric.Int64Counter
	gameErrors        metric.Int64Counter
	gameLatencyMs     metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	schedulerCycles   metric.Int64Counter
	schedulerErrors   metric.Int64Counter
	schedulerLatency  metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("playsim")
	ctx := context.Background()

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}

	playsTotal, err := meter.Int64Counter("plays_simulated_total")
	if err != nil {
		return nil, err
	}
	playLatency, err := meter.Float64Histogram("play_duration_ms")
	if err != nil {
		return nil, err
	}
	penaltiesTotal, err := meter.Int64Counter("penalties_total")
	if err != nil {
		return nil, err
	}
	touchdownsTotal, err := meter.Int64Counter("touchdowns_total")
	if err != nil {
		return nil, err
	}
	turnoversTotal, err := meter.Int64Counter("turnovers_total")
	if err != nil {
		return nil, err
	}
	gamesTotal, err := meter.Int64Counter("games_simulated_total")
	if err != nil {
		return nil, err
	}
	gameErrors, err := meter.Int64Counter("game_errors_total")
	if err != nil {
		return nil, err
	}
	gameLatency, err := meter.Float64Histogram("game_duration_ms")
	if err != nil {
		return nil, err
	}

	providerAttempts, err := meter.Int64Counter("provider_attempts_total")
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms")
	if err != nil {
		return nil, err
	}
	rateLimitHits, err := meter.Int64Counter("provider_rate_limit_hits_total")
	if err != nil {
		return nil, err
	}
	retryAfter, err := meter.Float64Histogram("provider_retry_after_ms")
	if err != nil {
		return nil, err
	}
	schedulerCycles, err := meter.Int64Counter("scheduler_cycles_total")
	if err != nil {
		return nil, err
	}
	schedulerErrors, err := meter.Int64Counter("scheduler_errors_total")
	if err != nil {
		return nil, err
	}
	schedulerLatency, err := meter.Float64Histogram("scheduler_cycle_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               ctx,
		meter:             meter,
		requests:          requests,
		requestLatencyMs:  requestLatency,
		playsTotal:        playsTotal,
		playLatencyMs:     playLatency,
		penaltiesTotal:    penaltiesTotal,
		touchdownsTotal:   touchdownsTotal,
		turnoversTotal:    turnoversTotal,
		gamesTotal:        gamesTotal,
		gameErrors:        gameErrors,
		gameLatencyMs:     gameLatency,
		providerAttempts:  providerAttempts,
		providerErrors:    providerErrors,
		providerLatencyMs: providerLatency,
		rateLimitHits:     rateLimitHits,
		retryAfterMs:      retryAfter,
		schedulerCycles:   schedulerCycles,
		schedulerErrors:   schedulerErrors,
		schedulerLatency:  schedulerLatency,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordPlay(playType, outcome string, duration time.Duration, penalty, touchdown, turnover bool) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrPlayType, playType),
		attribute.String(AttrOutcome, outcome),
	}
	o.recordCounter(o.playsTotal, 1, attrs...)
	o.recordHistogram(o.playLatencyMs, float64(duration.Milliseconds()), attrs...)
	if penalty {
		o.recordCounter(o.penaltiesTotal, 1, attrs...)
	}
	if touchdown {
		o.recordCounter(o.touchdownsTotal, 1, attrs...)
	}
	if turnover {
		o.recordCounter(o.turnoversTotal, 1, attrs...)
	}
}

func (o *otelInstruments) recordGame(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.gamesTotal, 1)
	o.recordHistogram(o.gameLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.gameErrors, 1)
	}
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.rateLimitHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfterMs, float64(retryAfter.Milliseconds()), attrs...)
	}
}

func (o *otelInstruments) recordScheduler(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.schedulerCycles, 1)
	o.recordHistogram(o.schedulerLatency, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.schedulerErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
