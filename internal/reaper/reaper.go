package reaper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cybertec-postgresql/pgprobes/internal/cmdopts"
	"github.com/cybertec-postgresql/pgprobes/internal/db"
	"github.com/cybertec-postgresql/pgprobes/internal/log"
	"github.com/cybertec-postgresql/pgprobes/internal/metrics"
	"github.com/cybertec-postgresql/pgprobes/internal/sinks"
)

// Probe describes one command line probe
type Probe struct {
	Family   string
	Database string // database always connected to unless a connection string is given
}

var (
	ConnectionsProbe = Probe{Family: metrics.Connections}
	LocksProbe       = Probe{Family: metrics.Locks}
	BgWriterProbe    = Probe{Family: metrics.BgWriter, Database: "postgres"}
)

// Name returns the probe binary name
func (p Probe) Name() string {
	return "pgprobe-" + p.Family
}

// Now is the capture clock, a variable to allow testing
var Now = time.Now

// Reaper is responsible for fetching one set of measurements from the database
// and handing them to the output writer. It keeps no state between invocations.
type Reaper struct {
	*cmdopts.Options
	probe  Probe
	logger log.Logger
}

// NewReaper creates a new Reaper instance
func NewReaper(ctx context.Context, p Probe, opts *cmdopts.Options) *Reaper {
	return &Reaper{
		Options: opts,
		probe:   p,
		logger:  log.GetLogger(ctx),
	}
}

// connOpts returns connection options with the probe database override applied
func (r *Reaper) connOpts() db.CmdOpts {
	opts := r.Connection
	if r.probe.Database != "" && opts.Connection == "" && opts.Database != r.probe.Database {
		r.logger.WithField("database", r.probe.Database).Debug("probe statistics are cluster wide, database option ignored")
		opts.Database = r.probe.Database
	}
	return opts
}

// Reap connects, runs the probe query once and writes the measurements.
// Errors wrap db.ErrConnection, db.ErrQuery or sinks.ErrOutput.
func (r *Reaper) Reap(ctx context.Context) (err error) {
	timestamp := Now().Unix()

	conn, err := db.Connect(ctx, r.connOpts())
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(context.Background()) }()

	version, err := db.ServerVersion(ctx, conn)
	if err != nil {
		return err
	}
	r.logger.WithField("version", version).Debug("connected")

	points, err := metrics.Collect(ctx, conn, r.probe.Family, version, metrics.Emitter{
		Scheme:     r.Output.Scheme,
		Timestamp:  timestamp,
		SkipTotals: r.Output.SkipTotals,
	})
	if err != nil {
		return err
	}

	// nothing is written unless every measurement is collected
	w, err := sinks.NewSinkWriter(ctx, &r.Output, r.OutputWriter)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", sinks.ErrOutput, cerr))
		}
	}()
	if err = w.Write(points); err != nil {
		return err
	}
	r.logger.WithField("points", len(points)).Info("measurements written")
	return nil
}

// ExitCode maps the outcome of a probe run to the monitoring status
func ExitCode(err error) int32 {
	switch {
	case err == nil:
		return cmdopts.ExitCodeOK
	case errors.Is(err, db.ErrConnection), errors.Is(err, db.ErrQuery), errors.Is(err, sinks.ErrOutput):
		return cmdopts.ExitCodeCritical
	default:
		return cmdopts.ExitCodeUnknown
	}
}

// StatusText returns the status name of an exit code
func StatusText(code int32) string {
	switch code {
	case cmdopts.ExitCodeOK:
		return "OK"
	case cmdopts.ExitCodeWarning:
		return "WARNING"
	case cmdopts.ExitCodeCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}
