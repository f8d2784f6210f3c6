package log

// CmdOpts specifies the logging command-line options
type CmdOpts struct {
	LogLevel      string `short:"v" long:"log-level" yaml:"log-level" description:"Verbosity level for stderr and log file" choice:"debug" choice:"info" choice:"error" default:"error" env:"PGPROBE_LOG_LEVEL"`
	LogFile       string `long:"log-file" yaml:"log-file" description:"File name to store logs" env:"PGPROBE_LOG_FILE"`
	LogFileFormat string `long:"log-file-format" yaml:"log-file-format" description:"Format of file logs" choice:"json" choice:"text" default:"json"`
	LogFileRotate bool   `long:"log-file-rotate" yaml:"log-file-rotate" description:"Rotate log files"`
	LogFileSize   int    `long:"log-file-size" yaml:"log-file-size" description:"Maximum size in MB of the log file before it gets rotated" default:"100"`
	LogFileAge    int    `long:"log-file-age" yaml:"log-file-age" description:"Number of days to retain old log files, 0 means forever" default:"0"`
	LogFileNumber int    `long:"log-file-number" yaml:"log-file-number" description:"Maximum number of old log files to retain, 0 to retain all" default:"0"`
}
