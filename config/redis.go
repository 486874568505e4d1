package config

import (
	"github.com/redis/go-redis/v9"

	"sports-federation-api/config/common"
)

// NewRedis builds the client backing the multi-instance fan-out relay.
// Only called when RELAY_MODE=redis.
func NewRedis(cfg *common.Config) *redis.Client {
	_, addr, password := cfg.GetRelayConfig()
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}
