package log

import (
	"context"
	"io"
	"os"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	// Logger is the interface used by all components
	Logger logrus.FieldLogger

	loggerKey struct{}
)

func getLogFileWriter(opts CmdOpts) any {
	if opts.LogFileRotate {
		return &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    opts.LogFileSize,
			MaxBackups: opts.LogFileNumber,
			MaxAge:     opts.LogFileAge,
		}
	}
	return opts.LogFile
}

const (
	disableColors = true
	enableColors  = false

	timestampFormat = "2006-01-02 15:04:05.000"
)

// newFormatter returns the text formatter used for console and text log files.
// Colors are only applied when the output is a terminal.
func newFormatter(noColors bool) *prefixed.TextFormatter {
	return &prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
		DisableColors:   noColors,
	}
}

func getLogFileFormatter(opts CmdOpts) logrus.Formatter {
	if opts.LogFileFormat == "text" {
		return newFormatter(disableColors)
	}
	return &logrus.JSONFormatter{}
}

// Init creates logging facilities for the probe. Standard output is reserved
// for measurements, so console logs always go to stderr.
func Init(opts CmdOpts) Logger {
	return initWithOutput(opts, os.Stderr)
}

func initWithOutput(opts CmdOpts, out io.Writer) *logrus.Logger {
	var err error
	l := logrus.New()
	l.Out = out
	if opts.LogFile > "" {
		l.AddHook(lfshook.NewHook(getLogFileWriter(opts), getLogFileFormatter(opts)))
	}
	l.Level, err = logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		l.Level = logrus.ErrorLevel
	}
	l.SetFormatter(newFormatter(enableColors))
	l.SetReportCaller(l.Level > logrus.InfoLevel)
	return l
}

// PgxLogger is the struct used to log using pgx postgres driver
type PgxLogger struct {
	l Logger
}

// NewPgxLogger returns a new instance of PgxLogger
func NewPgxLogger(l Logger) *PgxLogger {
	return &PgxLogger{l}
}

// Log transforms logging calls from pgx to logrus
func (pgxlogger *PgxLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	logger := GetLogger(ctx)
	if logger == FallbackLogger { //switch from standard to specified
		logger = pgxlogger.l
	}
	if data != nil {
		logger = logger.WithFields(data)
	}
	switch level {
	case tracelog.LogLevelTrace:
		logger.WithField("PGX_LOG_LEVEL", level).Debug(msg)
	case tracelog.LogLevelDebug, tracelog.LogLevelInfo: //pgx is way too chatty on INFO level
		logger.Debug(msg)
	case tracelog.LogLevelWarn:
		logger.Warn(msg)
	case tracelog.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_PGX_LOG_LEVEL", level).Error(msg)
	}
}

// WithLogger returns a new context with the provided logger. Use in
// combination with logger.WithField(s) for great effect
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FallbackLogger is an alias for the standard logger
var FallbackLogger = Init(CmdOpts{})

// GetLogger retrieves the current logger from the context. If no logger is
// available, the default logger is returned
func GetLogger(ctx context.Context) Logger {
	logger := ctx.Value(loggerKey{})
	if logger == nil {
		return FallbackLogger
	}
	return logger.(Logger)
}

func NewNoopLogger() Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel) // Noop logger should not output anything
	l.SetOutput(io.Discard)
	return l
}
