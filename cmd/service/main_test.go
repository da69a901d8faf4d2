package main

import (
	"context"
	"errors"
	"testing"

	"easybill/internal/cache"
	"easybill/internal/database"
	"easybill/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/easybill")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "0")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("JWT_SECRET", "test-secret")
}

func stubHappyPath(t *testing.T) {
	t.Helper()
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return &database.FakeDB{}, nil
	}
	newRedisClient = func(addr, password string, db int) (cache.Cache, error) {
		return &cache.FakeCache{}, nil
	}
	runMigrationsFn = func(dbURL string) error { return nil }
	startServer = func(e *echo.Echo, addr string) error { return nil }
}

func TestRunMissingEnv(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)

	cases := []struct {
		name string
		key  string
	}{
		{"database url", "DATABASE_URL"},
		{"redis addr", "REDIS_ADDR"},
		{"redis db", "REDIS_DB"},
		{"jwt secret", "JWT_SECRET"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setEnv(t)
			t.Setenv(tc.key, "")
			require.Error(t, run())
		})
	}
}

func TestRunInvalidRedisDB(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")
	require.Error(t, run())
}

func TestRunInvalidWorkerCount(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	t.Setenv("WORKER_COUNT", "zero")
	require.Error(t, run())

	t.Setenv("WORKER_COUNT", "-2")
	require.Error(t, run())
}

func TestRunDatabaseFailure(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	stubHappyPath(t)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return nil, errors.New("connection refused")
	}
	require.ErrorContains(t, run(), "database connection failed")
}

func TestRunRedisFailure(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	stubHappyPath(t)
	newRedisClient = func(addr, password string, db int) (cache.Cache, error) {
		return nil, errors.New("connection refused")
	}
	require.ErrorContains(t, run(), "redis connection failed")
}

func TestRunMigrationFailure(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	stubHappyPath(t)
	runMigrationsFn = func(dbURL string) error { return errors.New("dirty database") }
	require.ErrorContains(t, run(), "migration failed")
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	t.Setenv("WORKER_COUNT", "2")
	stubHappyPath(t)

	var gotAddr string
	var gotWorkers int
	startServer = func(e *echo.Echo, addr string) error {
		gotAddr = addr
		require.NotNil(t, e.Validator)
		return nil
	}
	newWorkerPool = func(n int) worker.Pool {
		gotWorkers = n
		return worker.NewPool(n)
	}

	require.NoError(t, run())
	require.Equal(t, ":8080", gotAddr)
	require.Equal(t, 2, gotWorkers)
}

func TestMainExitsOnError(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("DATABASE_URL", "")

	var code int
	exitFunc = func(c int) { code = c }
	main()
	require.Equal(t, 1, code)
}

func TestMainSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	stubHappyPath(t)

	exitFunc = func(c int) { t.Fatalf("unexpected exit(%d)", c) }
	main()
}
