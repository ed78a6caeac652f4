package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adhikarnow/legal-service/internal/config"
	"github.com/adhikarnow/legal-service/internal/persistence"
)

// testAuthConfig uses bcrypt.MinCost to keep the suite fast.
var testAuthConfig = config.AuthConfig{
	JWTSecret:             "test-secret",
	AccessTokenTTLMinutes: 60,
	BcryptCost:            4,
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := persistence.NewSQLite(config.SQLiteConfig{
		Path:          filepath.Join(t.TempDir(), "test.db"),
		BusyTimeoutMS: 5000,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(store.Close)

	ctx := context.Background()
	require.NoError(t, persistence.RunMigrations(ctx, store.DB, zap.NewNop()))
	require.NoError(t, persistence.Seed(ctx, store.DB, zap.NewNop()))
	return store.DB
}
