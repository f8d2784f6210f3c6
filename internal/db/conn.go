package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cybertec-postgresql/pgprobes/internal/log"
	pgx "github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/tracelog"
)

const applicationName = "pgprobe" // set on opened connections unless the connection string names one

var (
	// ErrConnection is returned when the server cannot be reached or refuses authentication
	ErrConnection = errors.New("connection failure")
	// ErrQuery is returned when the server rejects a statement
	ErrQuery = errors.New("query failure")
)

// Querier is the minimal interface required to run a statistics query
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

// PgxIface is common interface for every pgx class
type PgxIface interface {
	Querier
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
}

// PgxConnIface is interface representing pgx connection
type PgxConnIface interface {
	PgxIface
	Close(ctx context.Context) error
	Ping(ctx context.Context) error
}

// NewConn opens a single connection. It is a variable to allow testing.
var NewConn = func(ctx context.Context, connConfig *pgx.ConnConfig) (PgxConnIface, error) {
	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// quote escapes a keyword/value connection string parameter value
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, `'`, `\'`) + "'"
}

// ConnString returns the connection string to use. The explicit connection
// string has precedence over every discrete parameter.
func (opts CmdOpts) ConnString() string {
	if opts.Connection != "" {
		return opts.Connection
	}
	params := []string{
		"host=" + quote(opts.Hostname),
		"port=" + strconv.Itoa(opts.Port),
		"dbname=" + quote(opts.Database),
	}
	if opts.User != "" {
		params = append(params, "user="+quote(opts.User))
	}
	if opts.Password != "" {
		params = append(params, "password="+quote(opts.Password))
	}
	if opts.Timeout > 0 {
		params = append(params, "connect_timeout="+strconv.Itoa(opts.Timeout))
	}
	return strings.Join(params, " ")
}

// ParseConfig builds the pgx connection config. Without a timeout in the
// connection string or options the connect attempt is bounded only by ctx.
func ParseConfig(ctx context.Context, connStr string) (*pgx.ConnConfig, error) {
	connConfig, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}
	logger := log.GetLogger(ctx)
	if _, ok := connConfig.RuntimeParams["application_name"]; !ok {
		connConfig.RuntimeParams["application_name"] = applicationName
	}
	connConfig.OnNotice = func(_ *pgconn.PgConn, n *pgconn.Notice) {
		logger.WithField("severity", n.Severity).WithField("notice", n.Message).Info("Notice received")
	}
	connConfig.Tracer = &tracelog.TraceLog{
		Logger:   log.NewPgxLogger(logger),
		LogLevel: tracelog.LogLevelDebug,
	}
	return connConfig, nil
}

// Connect opens the single connection used by a probe run. There is no retry:
// any failure is reported to the caller wrapped in ErrConnection.
func Connect(ctx context.Context, opts CmdOpts) (PgxConnIface, error) {
	connConfig, err := ParseConfig(ctx, opts.ConnString())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	log.GetLogger(ctx).
		WithField("host", connConfig.Host).
		WithField("port", connConfig.Port).
		WithField("database", connConfig.Database).
		Debug("connecting")
	conn, err := NewConn(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return conn, nil
}

const sqlServerVersion = "SELECT current_setting('server_version_num')::int"

// ServerVersion returns the numeric server version, e.g. 170002
func ServerVersion(ctx context.Context, conn Querier) (ver int, err error) {
	if err = conn.QueryRow(ctx, sqlServerVersion).Scan(&ver); err != nil {
		return 0, fmt.Errorf("%w: cannot detect server version: %w", ErrQuery, err)
	}
	return
}
