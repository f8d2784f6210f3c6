package cmdopts

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cybertec-postgresql/pgprobes/internal/db"
	"github.com/cybertec-postgresql/pgprobes/internal/log"
	"github.com/cybertec-postgresql/pgprobes/internal/metrics"
	"github.com/cybertec-postgresql/pgprobes/internal/sinks"
	flags "github.com/jessevdk/go-flags"
)

// Exit codes follow the monitoring plugin convention
const (
	ExitCodeOK int32 = iota
	ExitCodeWarning
	ExitCodeCritical
	ExitCodeUnknown
)

// Options contains the command line options.
type Options struct {
	Connection db.CmdOpts    `group:"Connection" yaml:"connection"`
	Output     sinks.CmdOpts `group:"Output" yaml:"output"`
	Logging    log.CmdOpts   `group:"Logging" yaml:"logging"`
	Config     string        `long:"config" description:"YAML file with option values; command line and environment take precedence" env:"PGPROBE_CONFIG"`
	Help       bool          `long:"help" description:"Show this help message"`

	Family string `no-flag:"true"` // metric family collected by the probe

	ExitCode         int32
	CommandCompleted bool

	OutputWriter io.Writer
}

func addCommands(parser *flags.Parser, opts *Options) {
	_, _ = parser.AddCommand("print-sql", "Print the SQL executed by the probe", "", NewPrintSQLCommand(opts))
}

// New returns a new instance of Options for the probe collecting family and
// immediately executes the subcommand if specified. The short -h is the database
// hostname, help is available with --help only.
func New(family string, args []string, writer io.Writer) (cmdOpts *Options, err error) {
	cmdOpts = &Options{Family: family, OutputWriter: writer}
	if !slices.Contains(metrics.Families(), family) {
		cmdOpts.CompleteCommand(ExitCodeUnknown)
		return cmdOpts, fmt.Errorf("unknown metric family %q", family)
	}
	parser := flags.NewParser(cmdOpts, flags.PassDoubleDash)
	parser.Name = "pgprobe-" + family
	parser.SubcommandsOptional = true // if not command specified, run the probe
	addCommands(parser, cmdOpts)
	nonParsedArgs, err := parser.ParseArgs(args) // parse and execute subcommand if any
	if err != nil {
		if !cmdOpts.CommandCompleted {
			parser.WriteHelp(writer)
		}
		return cmdOpts, err
	}
	if cmdOpts.Help {
		parser.WriteHelp(writer)
		cmdOpts.CompleteCommand(ExitCodeOK)
		return
	}
	if cmdOpts.CommandCompleted { // subcommand executed, nothing to do more
		return
	}
	if len(nonParsedArgs) > 0 { // we don't expect any non-parsed arguments
		return cmdOpts, fmt.Errorf("unknown argument(s): %v", nonParsedArgs)
	}
	if cmdOpts.Config > "" {
		if err = cmdOpts.LoadConfigFile(parser, cmdOpts.Config); err != nil {
			return
		}
	}
	err = cmdOpts.ValidateConfig()
	return
}

func (c *Options) CompleteCommand(code int32) {
	c.CommandCompleted = true
	c.ExitCode = code
}

// ValidateConfig checks if the configuration is valid and fills computed defaults.
// Values read from a config file bypass the parser, so choices are checked here too.
func (c *Options) ValidateConfig() error {
	if c.Connection.Connection == "" {
		if c.Connection.Hostname == "" {
			return errors.New("--hostname must not be empty")
		}
		if c.Connection.Port < 1 || c.Connection.Port > 65535 {
			return errors.New("--port must be between 1 and 65535")
		}
	}
	if c.Connection.Timeout < 0 {
		return errors.New("--timeout must not be negative")
	}
	if !slices.Contains([]string{"", "graphite", "json", "prometheus"}, c.Output.Format) {
		return fmt.Errorf("invalid --format %q", c.Output.Format)
	}
	if !slices.Contains([]string{"", "debug", "info", "error"}, c.Logging.LogLevel) {
		return fmt.Errorf("invalid --log-level %q", c.Logging.LogLevel)
	}
	if c.Output.Scheme == "" {
		c.Output.Scheme = sinks.DefaultScheme()
	}
	return nil
}
