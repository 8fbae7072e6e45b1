package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/zyreny/zye/metrics"
)

func TestMiddleware(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	e := echo.New()
	e.Use(metrics.Middleware(metrics.WithMeterProvider(provider)))
	e.GET("/:code", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/broken", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound)
	})

	serve := func(target string) {
		req := httptest.NewRequest(echo.GET, target, nil)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	serve("/abc123")
	serve("/abc123")
	serve("/broken")

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := make(map[string]metricdata.Metrics)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	t.Run("request counter partitioned by code and route", func(t *testing.T) {
		cnt, ok := byName["requests_total"].Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, cnt.DataPoints, 2)

		dp := findPoint(t, cnt.DataPoints, http.StatusOK)
		assert.EqualValues(t, 2, dp.Value)
		method, ok := dp.Attributes.Value(attribute.Key("method"))
		require.True(t, ok)
		assert.Equal(t, http.MethodGet, method.AsString())
		url, ok := dp.Attributes.Value(attribute.Key("url"))
		require.True(t, ok)
		assert.Equal(t, "/:code", url.AsString())

		dp = findPoint(t, cnt.DataPoints, http.StatusNotFound)
		assert.EqualValues(t, 1, dp.Value)
	})

	t.Run("duration histogram records every request", func(t *testing.T) {
		hist, ok := byName["request_duration_milliseconds"].Data.(metricdata.Histogram[float64])
		require.True(t, ok)
		require.Len(t, hist.DataPoints, 2)

		var total uint64
		for _, dp := range hist.DataPoints {
			total += dp.Count
		}
		assert.EqualValues(t, 3, total)
	})
}

func findPoint(t *testing.T, dps []metricdata.DataPoint[int64], code int) metricdata.DataPoint[int64] {
	t.Helper()

	for _, dp := range dps {
		if v, ok := dp.Attributes.Value(attribute.Key("code")); ok && v.AsInt64() == int64(code) {
			return dp
		}
	}

	t.Fatalf("no data point with code %d", code)
	return metricdata.DataPoint[int64]{}
}
