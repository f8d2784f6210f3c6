package main

import (
	"os"
	"path/filepath"
	"regexp"
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

	t.Run("with totals", func(t *testing.T) {
		os.Args = []string{"pgprobe-locks", "-c", connStr, "--scheme=it", "--output", out}
		gotExit = -1
		main()
		assert.Equal(t, 0, gotExit)
		b, err := os.ReadFile(out)
		require.NoError(t, err)
		// the statistics query itself holds an access share lock on pg_locks
		assert.Regexp(t, regexp.MustCompile(`(?m)^it\.locks \d+ \d+ schema=total lock_type=accesssharelock$`), string(b))
		assert.Regexp(t, regexp.MustCompile(`(?m)^it\.locks\.accesssharelock \d+ \d+ schema=`+testutil.MockDatabase+` lock_type=accesssharelock$`), string(b))
	})

	t.Run("skip totals", func(t *testing.T) {
		os.Args = []string{"pgprobe-locks", "-c", connStr, "--scheme=it", "--skip-totals", "--output", out}
		gotExit = -1
		main()
		assert.Equal(t, 0, gotExit)
		b, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "schema=total")
		assert.Contains(t, string(b), "it.locks.accesssharelock ")
	})
}
