// Package metrics provides the request metric middleware for echo.
package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/zyreny/zye/metrics"

// config is used to configure the middleware.
type config struct {
	MeterProvider metric.MeterProvider
}

// Option specifies instrumentation configuration options.
type Option func(*config)

// WithMeterProvider option sets metric provider. If none is specified, the global provider is used.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *config) {
		cfg.MeterProvider = provider
	}
}

var codeLabel = attribute.Key("code")
var methodLabel = attribute.Key("method")
var urlLabel = attribute.Key("url")

// Middleware represents metric middleware: a request counter and a latency
// histogram partitioned by status code, method and route.
func Middleware(opts ...Option) echo.MiddlewareFunc {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MeterProvider == nil {
		cfg.MeterProvider = otel.GetMeterProvider()
	}

	meter := cfg.MeterProvider.Meter(meterName)

	reqCnt, cntErr := meter.Int64Counter("requests_total",
		metric.WithDescription("How many HTTP requests processed, partitioned by status code and HTTP method."),
	)
	reqDur, durErr := meter.Float64Histogram("request_duration_milliseconds",
		metric.WithDescription("The HTTP request latencies in milliseconds."),
		metric.WithUnit("ms"),
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cntErr != nil || durErr != nil {
				return next(c)
			}

			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			elapsed := float64(time.Since(start)) / float64(time.Millisecond)
			ctx := c.Request().Context()

			lbl := metric.WithAttributes(
				codeLabel.Int(status),
				methodLabel.String(c.Request().Method),
				urlLabel.String(c.Path()),
			)

			reqCnt.Add(ctx, 1, lbl)
			reqDur.Record(ctx, elapsed, lbl)

			return nil
		}
	}
}
