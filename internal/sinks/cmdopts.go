package sinks

// CmdOpts specifies how and where measurements are printed
type CmdOpts struct {
	Scheme     string `long:"scheme" yaml:"scheme" description:"Metric naming scheme, text to prepend to metric names (default: <hostname>.postgresql)" env:"PGPROBE_SCHEME"`
	Format     string `long:"format" yaml:"format" description:"Output format of measurements" choice:"graphite" choice:"json" choice:"prometheus" default:"graphite" env:"PGPROBE_FORMAT"`
	Output     string `long:"output" yaml:"output" description:"File name to write measurements to instead of stdout" env:"PGPROBE_OUTPUT"`
	SkipTotals bool   `long:"skip-totals" yaml:"skip-totals" description:"Do not emit rollups spanning all databases" env:"PGPROBE_SKIP_TOTALS"`
}
