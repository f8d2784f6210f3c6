package cmdopts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cybertec-postgresql/pgprobes/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFail(t *testing.T) {
	tests := [][]string{
		{"--unknown-option"},
		{"-P", "notaport"},
		{"--format", "xml"},
		{"extra-argument"},
		{"-P", "70000"},
		{"--timeout=-1"},
		{"--hostname="},
	}
	for _, d := range tests {
		_, err := New("locks", d, &bytes.Buffer{})
		assert.Error(t, err, d)
	}
}

func TestParseHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New("connections", []string{"--help"}, buf)
	assert.NoError(t, err)
	assert.True(t, c.Help)
	assert.True(t, c.CommandCompleted)
	assert.Equal(t, ExitCodeOK, c.ExitCode)
	assert.Contains(t, buf.String(), "pgprobe-connections")
	assert.Contains(t, buf.String(), "--hostname")
}

func TestParseDefaults(t *testing.T) {
	c, err := New("bgwriter", nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "localhost", c.Connection.Hostname)
	assert.Equal(t, 5432, c.Connection.Port)
	assert.Equal(t, "postgres", c.Connection.Database)
	assert.Zero(t, c.Connection.Timeout)
	assert.Equal(t, "graphite", c.Output.Format)
	assert.Equal(t, "error", c.Logging.LogLevel)
	hostname, _ := os.Hostname()
	assert.Equal(t, hostname+".postgresql", c.Output.Scheme)
	assert.False(t, c.CommandCompleted)
}

func TestParseShortFlags(t *testing.T) {
	c, err := New("locks", []string{"-c", "postgres://u@h/d", "-u", "mon", "-p", "secret",
		"-h", "db1", "-P", "6432", "-d", "app", "-T", "3", "--scheme", "prod.db1", "--skip-totals"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "postgres://u@h/d", c.Connection.Connection)
	assert.Equal(t, "mon", c.Connection.User)
	assert.Equal(t, "secret", c.Connection.Password)
	assert.Equal(t, "db1", c.Connection.Hostname)
	assert.Equal(t, 6432, c.Connection.Port)
	assert.Equal(t, "app", c.Connection.Database)
	assert.Equal(t, 3, c.Connection.Timeout)
	assert.Equal(t, "prod.db1", c.Output.Scheme)
	assert.True(t, c.Output.SkipTotals)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PGPROBE_HOSTNAME", "envhost")
	t.Setenv("PGPROBE_FORMAT", "json")
	c, err := New("locks", nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "envhost", c.Connection.Hostname)
	assert.Equal(t, "json", c.Output.Format)
}

func TestUnknownFamily(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New("foo", []string{"--help"}, buf)
	assert.Error(t, err)
	assert.True(t, c.CommandCompleted)
	assert.Equal(t, ExitCodeUnknown, c.ExitCode)
	assert.Empty(t, buf.String())
	for _, family := range metrics.Families() {
		_, err = New(family, nil, &bytes.Buffer{})
		assert.NoError(t, err, family)
	}
}

func TestPrintSQLCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New("bgwriter", []string{"print-sql", "--server-version", "160000"}, buf)
	require.NoError(t, err)
	assert.True(t, c.CommandCompleted)
	assert.Equal(t, ExitCodeOK, c.ExitCode)
	assert.Contains(t, buf.String(), "FROM pg_stat_bgwriter")
	assert.NotContains(t, buf.String(), "pg_stat_checkpointer")

	buf.Reset()
	_, err = New("bgwriter", []string{"print-sql"}, buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "pg_stat_checkpointer")

	c, err = New("foo", []string{"print-sql"}, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Equal(t, ExitCodeUnknown, c.ExitCode)
}

func writeConfig(t *testing.T, content string) string {
	fname := filepath.Join(t.TempDir(), "pgprobe.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
	return fname
}

func TestConfigFile(t *testing.T) {
	fname := writeConfig(t, `
connection:
  hostname: filehost
  port: 6543
  user: fileuser
  timeout: 9
output:
  scheme: file.scheme
  skip-totals: true
logging:
  log-level: info
`)
	c, err := New("connections", []string{"--config", fname, "-u", "cliuser"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "filehost", c.Connection.Hostname)
	assert.Equal(t, 6543, c.Connection.Port)
	assert.Equal(t, "cliuser", c.Connection.User, "command line wins over file")
	assert.Equal(t, 9, c.Connection.Timeout)
	assert.Equal(t, "postgres", c.Connection.Database, "defaults stay when file is silent")
	assert.Equal(t, "file.scheme", c.Output.Scheme)
	assert.True(t, c.Output.SkipTotals)
	assert.Equal(t, "info", c.Logging.LogLevel)

	t.Setenv("PGPROBE_PORT", "7000")
	c, err = New("connections", []string{"--config", fname}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 7000, c.Connection.Port, "environment wins over file")
}

func TestConfigFileExplicitDefault(t *testing.T) {
	fname := writeConfig(t, `
connection:
  hostname: filehost
  port: 6543
  db: filedb
output:
  format: json
`)
	c, err := New("locks", []string{"--config", fname, "--port", "5432"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 5432, c.Connection.Port, "flag equal to the default still wins over file")
	assert.Equal(t, "filehost", c.Connection.Hostname)
	assert.Equal(t, "filedb", c.Connection.Database)
	assert.Equal(t, "json", c.Output.Format)
}

func TestConfigFileErrors(t *testing.T) {
	tests := map[string]string{
		"unknown section": "foo:\n  bar: 1\n",
		"unknown option":  "connection:\n  foo: 1\n",
		"invalid value":   "connection:\n  port: abc\n",
		"invalid choice":  "output:\n  format: xml\n",
		"malformed yaml":  "connection: [",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New("locks", []string{"--config", writeConfig(t, content)}, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
	_, err := New("locks", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{})
	assert.Error(t, err)
}
