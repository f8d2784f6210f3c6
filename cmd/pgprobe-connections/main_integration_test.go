package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybertec-postgresql/pgprobes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pg, tearDown, err := testutil.SetupPostgresContainer()
	require.NoError(t, err)
	defer tearDown()
	connStr, err := pg.ConnectionString(testutil.TestContext, "sslmode=disable")
	require.NoError(t, err)

	var gotExit int
	Exit = func(code int) { gotExit = code }
	defer func() { Exit = os.Exit }()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	out := filepath.Join(t.TempDir(), "out.txt")
	os.Args = []string{"pgprobe-connections", "-c", connStr, "--scheme=it", "--output", out}
	gotExit = -1
	main()
	assert.Equal(t, 0, gotExit)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, string(b), "it.connections.total ")
	assert.Contains(t, lines[len(lines)-1], "schema=_total")

	t.Run("unreachable server", func(t *testing.T) {
		os.Args = []string{"pgprobe-connections", "-P", "1", "-T", "1", "--output", out}
		gotExit = -1
		main()
		assert.Equal(t, 2, gotExit)
	})
}
