package testutil

import (
	"context"

	"github.com/cybertec-postgresql/pgprobes/internal/log"
)

const (
	PostgresImage = "docker.io/postgres:17-alpine"
	MockDatabase  = "mydatabase"
)

// TestContext carries a logger that discards everything
var TestContext = log.WithLogger(context.Background(), log.NewNoopLogger())
