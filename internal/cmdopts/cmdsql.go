package cmdopts

import (
	"fmt"

	"github.com/cybertec-postgresql/pgprobes/internal/metrics"
)

// PrintSQLCommand prints the statement the probe would run against a server
type PrintSQLCommand struct {
	owner   *Options
	Version int `long:"server-version" description:"Numeric server version, e.g. 160004" default:"170000"`
}

func NewPrintSQLCommand(owner *Options) *PrintSQLCommand {
	return &PrintSQLCommand{owner: owner}
}

// Execute prints the SQL for the configured server version.
func (cmd *PrintSQLCommand) Execute([]string) error {
	m, err := metrics.GetMetricDef(cmd.owner.Family)
	if err != nil {
		cmd.owner.CompleteCommand(ExitCodeUnknown)
		return err
	}
	fmt.Fprintln(cmd.owner.OutputWriter, m.GetSQL(cmd.Version))
	cmd.owner.CompleteCommand(ExitCodeOK)
	return nil
}
