package ws

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const relayChannel = "chat:relay"

// RedisRelay routes frames through a redis pub/sub channel so that
// every process in a multi-instance deployment delivers to its own
// registry. The publishing process receives its own frames back via
// the subscription, so delivery happens exactly once per process.
type RedisRelay struct {
	rdb      *redis.Client
	registry *Registry
	log      zerolog.Logger

	sub    *redis.PubSub
	cancel context.CancelFunc
}

func NewRedisRelay(rdb *redis.Client, registry *Registry, log zerolog.Logger) *RedisRelay {
	return &RedisRelay{
		rdb:      rdb,
		registry: registry,
		log:      log,
	}
}

func (r *RedisRelay) Publish(ctx context.Context, frame Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return r.rdb.Publish(ctx, relayChannel, data).Err()
}

func (r *RedisRelay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.sub = r.rdb.Subscribe(ctx, relayChannel)

	go func() {
		for msg := range r.sub.Channel() {
			var frame Frame
			if err := json.Unmarshal([]byte(msg.Payload), &frame); err != nil {
				r.log.Warn().Err(err).Msg("discarding malformed relay frame")
				continue
			}
			deliver(r.registry, frame, r.log)
		}
	}()
}

func (r *RedisRelay) Close() {
	if r.sub != nil {
		_ = r.sub.Close()
	}
	if r.cancel != nil {
		r.cancel()
	}
}
