package event

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// RedisBus is the cross-process variant of the change bus: every process
// that shares the store publishes and subscribes through Redis channels
// named after the change topics. The publisher's own subscription receives
// the message too, so a single bus serves both local and remote listeners.
type RedisBus struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisBus(rdb *redis.Client, log logger.Logger) *RedisBus {
	return &RedisBus{rdb: rdb, logger: log}
}

func (b *RedisBus) Publish(topic string) {
	if err := b.rdb.Publish(context.Background(), topic, "1").Err(); err != nil {
		b.logger.Error("cannot publish change topic on redis", err)
	}
}

func (b *RedisBus) Subscribe(topic string, fn func()) func() {
	pubsub := b.rdb.Subscribe(context.Background(), topic)

	go func() {
		for range pubsub.Channel() {
			fn()
		}
	}()

	return func() {
		if err := pubsub.Close(); err != nil {
			b.logger.Warn("cannot close redis subscription")
		}
	}
}
