package metrics

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed metrics.yaml
var defaultMetricsYAML []byte

// GetDefaultMetrics returns the built-in family definitions
func GetDefaultMetrics() (*Metrics, error) {
	metrics := &Metrics{MetricDefs{}}
	if err := yaml.Unmarshal(defaultMetricsYAML, metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// GetMetricDef returns the built-in definition of the named family
func GetMetricDef(name string) (Metric, error) {
	metrics, err := GetDefaultMetrics()
	if err != nil {
		return Metric{}, err
	}
	m, ok := metrics.MetricDefs[name]
	if !ok {
		return Metric{}, fmt.Errorf("unknown metric family %q", name)
	}
	return m, nil
}
