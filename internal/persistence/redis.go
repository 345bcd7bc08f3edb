package persistence

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

// Redis stores each collection under its own key and announces every write on
// a pub/sub channel, so all processes sharing the keys see each other's
// changes.
type Redis struct {
	client  *redis.Client
	prefix  string
	channel string
}

func NewRedis(client *redis.Client, prefix, channel string) *Redis {
	return &Redis{client: client, prefix: prefix, channel: channel}
}

func (r *Redis) key(c competition.Collection) string {
	return r.prefix + ":" + string(c)
}

func (r *Redis) Write(ctx context.Context, writes ...competition.CollectionWrite) error {
	encoded, err := encodeWrites(writes)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(encoded))
	pipe := r.client.TxPipeline()
	for _, name := range Collections {
		b, ok := encoded[name]
		if !ok {
			continue
		}
		pipe.Set(ctx, r.key(name), b, 0)
		names = append(names, string(name))
	}
	pipe.Publish(ctx, r.channel, strings.Join(names, ","))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save %s: %w", strings.Join(names, ","), err)
	}
	return nil
}

// Subscribe delivers the stored snapshot, then a fresh one after every
// message on the channel until ctx is done. Echoes arrive asynchronously.
func (r *Redis) Subscribe(ctx context.Context, fn func(competition.Snapshot)) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}

	snap, err := r.load(ctx)
	if err != nil {
		pubsub.Close()
		return err
	}
	fn(snap)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				snap, err := r.load(ctx)
				if err != nil {
					log.Printf("[PERSIST_ERROR] Failed to reload after %q: %v", msg.Payload, err)
					continue
				}
				fn(snap)
			}
		}
	}()
	return nil
}

func (r *Redis) load(ctx context.Context) (competition.Snapshot, error) {
	keys := make([]string, len(Collections))
	for i, name := range Collections {
		keys[i] = r.key(name)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return competition.Snapshot{}, fmt.Errorf("failed to load collections: %w", err)
	}

	raw := make(map[competition.Collection][]byte, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			raw[Collections[i]] = []byte(s)
		}
	}
	return decodeSnapshot(raw)
}
