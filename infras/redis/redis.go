package redis

import (
	"context"
	"net"
	"time"

	"infopage/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

// New connects to the configured redis. It returns nil when no host is
// configured or the server does not answer, which turns caching off.
func New(config *config.Config) *goRedis.Client {
	redisConfig := config.Cache.Redis
	if redisConfig.Host == "" {
		log.Debug().Msg("No redis configured, caching disabled")

		return nil
	}

	port := redisConfig.Port
	if port == "" {
		port = "6379"
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(redisConfig.Host, port),
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn().Err(err).Str("host", redisConfig.Host).Msg("Failed to connect to Redis, caching disabled")

		_ = client.Close()

		return nil
	}

	log.Info().
		Int("db", redisConfig.DB).
		Str("host", redisConfig.Host).
		Str("port", port).
		Msg("Connected to Redis")

	return client
}
