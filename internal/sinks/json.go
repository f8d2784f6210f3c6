package sinks

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/cybertec-postgresql/pgprobes/internal/metrics"
)

// JSONWriter prints one JSON object per measurement. It is useful for
// integration with log aggregators and data processing pipelines.
type JSONWriter struct {
	output
}

func NewJSONWriter(o output) *JSONWriter {
	return &JSONWriter{o}
}

type jsonPoint struct {
	Name      string            `json:"name"`
	Value     int64             `json:"value"`
	Timestamp int64             `json:"timestamp"`
	Tags      map[string]string `json:"tags,omitempty"`
}

func (jw *JSONWriter) Write(points []metrics.Point) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(jw.w)
	for _, p := range points {
		row := jsonPoint{
			Name:      p.Name,
			Value:     p.Value,
			Timestamp: p.Timestamp,
		}
		if len(p.Tags) > 0 {
			row.Tags = p.Tags.Map()
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}
	return nil
}
