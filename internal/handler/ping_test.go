package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"easybill/internal/cache"
	"easybill/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newPingCtx(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPingHandlerDatabaseUnhealthy(t *testing.T) {
	db := &database.FakeDB{
		PingFn: func(ctx context.Context) error { return errors.New("down") },
	}
	c, rec := newPingCtx(t)

	require.NoError(t, PingHandler(db, &cache.FakeCache{})(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"database unhealthy"}`, rec.Body.String())
}

func TestPingHandlerCacheUnhealthy(t *testing.T) {
	db := &database.FakeDB{
		PingFn: func(ctx context.Context) error { return nil },
	}
	rdb := &cache.FakeCache{
		SetFn: func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
			cmd := redis.NewStatusCmd(ctx)
			cmd.SetErr(errors.New("down"))
			return cmd
		},
	}
	c, rec := newPingCtx(t)

	require.NoError(t, PingHandler(db, rdb)(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"cache unhealthy"}`, rec.Body.String())
}

func TestPingHandlerOK(t *testing.T) {
	db := &database.FakeDB{
		PingFn: func(ctx context.Context) error { return nil },
	}
	rdb := &cache.FakeCache{
		SetFn: func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
			require.Equal(t, "ping:healthcheck", key)
			require.Equal(t, "ok", value)
			require.Equal(t, time.Minute, expiration)
			return redis.NewStatusCmd(ctx)
		},
	}
	c, rec := newPingCtx(t)

	require.NoError(t, PingHandler(db, rdb)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}
