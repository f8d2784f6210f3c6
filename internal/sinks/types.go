package sinks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cybertec-postgresql/pgprobes/internal/log"
	"github.com/cybertec-postgresql/pgprobes/internal/metrics"
)

// ErrOutput is returned when measurements cannot be written
var ErrOutput = errors.New("output failure")

// Writer is an interface that writes metrics values
type Writer interface {
	Write(points []metrics.Point) error
	Close() error
}

// output is the destination shared by all writers
type output struct {
	w io.Writer
	c io.Closer // nil for stdout
}

func (o output) Close() error {
	if o.c == nil {
		return nil
	}
	return o.c.Close()
}

// DefaultScheme returns `<hostname>.postgresql`
func DefaultScheme() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}
	return hostname + ".postgresql"
}

// NewSinkWriter creates the writer selected by options. Measurements go to stdout
// unless an output file is specified.
func NewSinkWriter(ctx context.Context, opts *CmdOpts, stdout io.Writer) (w Writer, err error) {
	o := output{w: stdout}
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutput, err)
		}
		o = output{w: f, c: f}
	}
	switch opts.Format {
	case "", "graphite":
		w = NewGraphiteWriter(o)
	case "json":
		w = NewJSONWriter(o)
	case "prometheus":
		w = NewPrometheusWriter(o)
	default:
		_ = o.Close()
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
	log.GetLogger(ctx).WithField("format", opts.Format).WithField("output", opts.Output).Debug("measurements writer is activated")
	return w, nil
}
