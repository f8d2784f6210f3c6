package reaper

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/cybertec-postgresql/pgprobes/internal/cmdopts"
	"github.com/cybertec-postgresql/pgprobes/internal/log"
)

// Main runs the probe for the command line arguments and returns the exit code.
// A failure is logged and reported as `<probe> <STATUS>: <message>` on stdout
// the way monitoring agents display check results.
func Main(ctx context.Context, p Probe, args []string, stdout io.Writer) (exitCode int32) {
	defer func() {
		if err := recover(); err != nil {
			exitCode = cmdopts.ExitCodeUnknown
			log.GetLogger(ctx).WithField("callstack", string(debug.Stack())).Error(err)
			fmt.Fprintf(stdout, "%s %s: %v\n", p.Name(), StatusText(exitCode), err)
		}
	}()

	opts, err := cmdopts.New(p.Family, args, stdout)
	if err != nil {
		exitCode = cmdopts.ExitCodeUnknown
		if opts != nil && opts.CommandCompleted {
			exitCode = opts.ExitCode
		}
		fmt.Fprintf(stdout, "%s %s: %v\n", p.Name(), StatusText(exitCode), err)
		return
	}
	if opts.CommandCompleted {
		return opts.ExitCode
	}

	logger := log.Init(opts.Logging).WithField("probe", p.Family)
	ctx = log.WithLogger(ctx, logger)
	logger.Debugf("opts: %+v", opts.Output)

	err = NewReaper(ctx, p, opts).Reap(ctx)
	exitCode = ExitCode(err)
	if err != nil {
		logger.Error(err)
		fmt.Fprintf(stdout, "%s %s: %v\n", p.Name(), StatusText(exitCode), err)
	}
	return
}
