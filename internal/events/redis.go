package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// BoardEventsChannel is the Redis channel for a namespace. Namespacing lets
// several deployments share one Redis.
func BoardEventsChannel(namespace string) string {
	return fmt.Sprintf("feedboard:%s:board_events", namespace)
}

// RedisPublisher emits envelopes to the namespaced board events channel.
// Redis pub/sub is at-most-once, which matches the best-effort contract.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(redisOpts *redis.Options, namespace string) (*RedisPublisher, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}
	return &RedisPublisher{
		rdb:     redis.NewClient(redisOpts),
		channel: BoardEventsChannel(namespace),
	}, nil
}

func (p *RedisPublisher) Emit(ctx context.Context, e Envelope) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", e.Type, err)
	}
	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", e.Type, err)
	}
	return nil
}

// Ping verifies Redis connectivity. Useful for readiness checks.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}

// Subscription delivers decoded envelopes from a Redis channel. Events and
// errors ride buffered channels; both close when the subscription stops.
type Subscription struct {
	events chan Envelope
	errors chan error
	cancel context.CancelFunc
}

func (s *Subscription) Events() <-chan Envelope {
	return s.events
}

func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription. Safe to call more than once.
func (s *Subscription) Close() error {
	s.cancel()
	return nil
}

// SubscribeBoardEvents opens a dedicated Redis connection and streams the
// namespace's events until ctx is cancelled or Close is called. The
// connection is verified before returning so a bad address fails fast.
func SubscribeBoardEvents(ctx context.Context, redisOpts *redis.Options, namespace string) (*Subscription, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}

	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	pubsub := rdb.Subscribe(ctx, BoardEventsChannel(namespace))

	eventsChan := make(chan Envelope, 16)
	errorsChan := make(chan error, 16)
	subCtx, cancel := context.WithCancel(ctx)

	go func() {
		defer close(eventsChan)
		defer close(errorsChan)
		defer rdb.Close()
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var e Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal event: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}
				select {
				case eventsChan <- e:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{events: eventsChan, errors: errorsChan, cancel: cancel}, nil
}
