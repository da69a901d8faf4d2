package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	pingErr error
	gotOpt  *redis.Options
}

func (s *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	panic("unexpected Get")
}

func (s *stubClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	panic("unexpected Set")
}

func (s *stubClient) Close() error { return nil }

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if s.pingErr != nil {
		cmd.SetErr(s.pingErr)
	}
	return cmd
}

func TestNewRedisClient(t *testing.T) {
	restore := func() {
		redisNewClient = func(opt *redis.Options) redisClient {
			return redis.NewClient(opt)
		}
	}
	t.Cleanup(restore)

	t.Run("ping fails", func(t *testing.T) {
		redisNewClient = func(opt *redis.Options) redisClient {
			return &stubClient{pingErr: errors.New("connection refused"), gotOpt: opt}
		}
		_, err := NewRedisClient("localhost:6379", "", 0)
		require.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		var stub *stubClient
		redisNewClient = func(opt *redis.Options) redisClient {
			stub = &stubClient{gotOpt: opt}
			return stub
		}
		got, err := NewRedisClient("localhost:6380", "pw", 3)
		require.NoError(t, err)
		require.Same(t, stub, got)
		require.Equal(t, "localhost:6380", stub.gotOpt.Addr)
		require.Equal(t, "pw", stub.gotOpt.Password)
		require.Equal(t, 3, stub.gotOpt.DB)
	})
}
