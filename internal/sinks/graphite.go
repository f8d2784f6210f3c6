package sinks

import (
	"bufio"
	"fmt"

	"github.com/cybertec-postgresql/pgprobes/internal/metrics"
)

// GraphiteWriter prints `<name> <value> <timestamp>[ <tag>=<value> ...]` lines.
// Tags are free text after the timestamp as monitoring agents expect them.
type GraphiteWriter struct {
	output
}

func NewGraphiteWriter(o output) *GraphiteWriter {
	return &GraphiteWriter{o}
}

func (gw *GraphiteWriter) Write(points []metrics.Point) error {
	bw := bufio.NewWriter(gw.w)
	for _, p := range points {
		fmt.Fprintf(bw, "%s %d %d", p.Name, p.Value, p.Timestamp)
		for _, tag := range p.Tags {
			fmt.Fprintf(bw, " %s=%s", tag.Key, tag.Value)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
