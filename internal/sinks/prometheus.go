package sinks

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/prometheus/common/model"

	"github.com/cybertec-postgresql/pgprobes/internal/metrics"
)

const promNamespace = "pg"

// PrometheusWriter prints measurements in the Prometheus text exposition format.
// Metric names are built from the point path, tags become labels and the
// capture time is kept as the sample timestamp.
type PrometheusWriter struct {
	output
	Namespace string
}

func NewPrometheusWriter(o output) *PrometheusWriter {
	return &PrometheusWriter{output: o, Namespace: promNamespace}
}

// pointCollector is an unchecked collector exposing a fixed set of points
type pointCollector struct {
	namespace string
	points    []metrics.Point
}

func (pc pointCollector) Describe(chan<- *prometheus.Desc) {}

func (pc pointCollector) Collect(ch chan<- prometheus.Metric) {
	for _, p := range pc.points {
		labelKeys := make([]string, 0, len(p.Tags))
		labelValues := make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			labelKeys = append(labelKeys, tag.Key)
			labelValues = append(labelValues, tag.Value)
		}
		valueType := prometheus.GaugeValue
		if len(p.Path) > 0 && p.Path[0] == metrics.BgWriter {
			valueType = prometheus.CounterValue // cumulative since stats reset
		}
		desc := prometheus.NewDesc(promMetricName(pc.namespace, p.Path), "PostgreSQL "+strings.Join(p.Path, " "), labelKeys, nil)
		m, err := prometheus.NewConstMetric(desc, valueType, float64(p.Value), labelValues...)
		if err != nil {
			ch <- prometheus.NewInvalidMetric(desc, err)
			continue
		}
		ch <- prometheus.NewMetricWithTimestamp(time.Unix(p.Timestamp, 0), m)
	}
}

// promMetricName joins the namespace and path with underscores replacing
// characters not allowed in metric names
func promMetricName(namespace string, path []string) string {
	return model.EscapeName(strings.Join(append([]string{namespace}, path...), "_"), model.UnderscoreEscaping)
}

func (promw *PrometheusWriter) Write(points []metrics.Point) error {
	if len(points) == 0 {
		return nil
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(pointCollector{promw.Namespace, points}); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	bw := bufio.NewWriter(promw.w)
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(bw, mf); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
