package eventbuffer

import (
	"cmp"
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DurableStore is the backing store a caller consults when Slice returns a
// LastBufferChunkSuffix: "the caller is expected to fetch everything up to
// [BufferedStartExclusive] from the durable store" (spec §3.1). The Buffer
// itself never calls this — it is a convenience for hosts that want one
// object to hand both halves of a range query to.
type DurableStore[O cmp.Ordered, FR any] interface {
	// FetchUpTo returns every matching record with offset <= upTo, in
	// ascending offset order.
	FetchUpTo(ctx context.Context, upTo O) ([]Item[O, FR], error)
}

// RedisDurableStore reads archived records from a Redis sorted set keyed by
// offset score, the natural structure for "everything up to offset X" range
// queries against a durable cache tier sitting in front of the real
// database.
type RedisDurableStore[O cmp.Ordered, FR any] struct {
	client *redis.Client
	key    string
	decode func([]byte) (O, FR, error)
}

// NewRedisDurableStore constructs a DurableStore backed by a Redis sorted
// set at key, decoding each member with decode.
func NewRedisDurableStore[O cmp.Ordered, FR any](client *redis.Client, key string, decode func([]byte) (O, FR, error)) *RedisDurableStore[O, FR] {
	return &RedisDurableStore[O, FR]{client: client, key: key, decode: decode}
}

func (s *RedisDurableStore[O, FR]) FetchUpTo(ctx context.Context, upTo O) ([]Item[O, FR], error) {
	members, err := s.client.ZRangeByScore(ctx, s.key, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprint(upTo),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("eventbuffer: redis zrangebyscore: %w", err)
	}

	items := make([]Item[O, FR], 0, len(members))
	for _, m := range members {
		offset, value, err := s.decode([]byte(m))
		if err != nil {
			return nil, fmt.Errorf("eventbuffer: decode durable record: %w", err)
		}
		items = append(items, Item[O, FR]{Offset: offset, Value: value})
	}
	return items, nil
}
