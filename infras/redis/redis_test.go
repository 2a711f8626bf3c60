package redis_test

import (
	"net"
	"testing"

	"infopage/config"
	"infopage/infras/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	server := miniredis.RunT(t)

	host, port, err := net.SplitHostPort(server.Addr())
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Cache.Redis.Host = host
	cfg.Cache.Redis.Port = port

	client := redis.New(cfg)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })
}

func TestNewDisabled(t *testing.T) {
	assert.Nil(t, redis.New(config.Default()))

	cfg := config.Default()
	cfg.Cache.Redis.Host = "127.0.0.1"
	cfg.Cache.Redis.Port = "1"
	assert.Nil(t, redis.New(cfg))
}
