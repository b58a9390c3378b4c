package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// metricsExposition routes the global OpenTelemetry meter into a private
// Prometheus registry.
type metricsExposition struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
}

// newMetricsExposition installs a MeterProvider backed by the Prometheus
// exporter as the global provider.
func newMetricsExposition() (*metricsExposition, error) {
	reg := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("lvsnap: create prometheus exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(mp)

	return &metricsExposition{registry: reg, provider: mp}, nil
}

// Write gathers the registry and writes it in the text exposition format.
func (m *metricsExposition) Write(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("lvsnap: gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("lvsnap: write metrics: %w", err)
		}
	}

	return nil
}

// Shutdown flushes and stops the provider.
func (m *metricsExposition) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}
