// Package streamstore provides a Redis-backed append-only store for runtime
// state record streams.
//
// A stream is an ordered sequence of records attributed to one emitter. The
// store never reorders: records are appended with RPUSH and fetched with
// LRANGE, so a fetched batch is in true emission order and can be handed
// directly to the temporal stream check.
package streamstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dyluth/pmatrix/pkg/invariant"
	"github.com/dyluth/pmatrix/pkg/record"
)

// Store provides instance-scoped Redis operations for record streams.
// All keys are automatically namespaced with the instance name. The store is
// safe for concurrent use from multiple goroutines.
type Store struct {
	rdb          *redis.Client
	instanceName string
}

// NewStore creates a stream store for the specified instance.
// Returns an error if instanceName is empty.
func NewStore(redisOpts *redis.Options, instanceName string) (*Store, error) {
	if instanceName == "" {
		return nil, fmt.Errorf("instance name cannot be empty")
	}
	return &Store{
		rdb:          redis.NewClient(redisOpts),
		instanceName: instanceName,
	}, nil
}

// Close closes the Redis connection. Implements io.Closer.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Ping verifies Redis connectivity. Useful for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Append validates a record and appends it to the emitter's stream.
// Non-conforming records are rejected with an error carrying one entry per
// failed invariant; nothing is written in that case.
func (s *Store) Append(ctx context.Context, emitterID string, r *record.Record) error {
	if emitterID == "" {
		return fmt.Errorf("emitter ID cannot be empty")
	}
	if err := invariant.Failures(invariant.ValidateAll(r)); err != nil {
		return fmt.Errorf("record is not conforming: %w", err)
	}

	data, err := record.Encode(r)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	key := StreamKey(s.instanceName, emitterID)
	if err := s.rdb.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to append record to Redis: %w", err)
	}
	return nil
}

// Fetch retrieves the full stream for an emitter, in append order.
// Returns an empty slice if the stream does not exist. Every stored entry is
// decoded through the strict boundary; a corrupt entry is an error.
func (s *Store) Fetch(ctx context.Context, emitterID string) ([]*record.Record, error) {
	key := StreamKey(s.instanceName, emitterID)
	entries, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stream from Redis: %w", err)
	}

	records := make([]*record.Record, 0, len(entries))
	for i, entry := range entries {
		r, err := record.Decode([]byte(entry))
		if err != nil {
			return nil, fmt.Errorf("failed to deserialize stream entry %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// Len returns the number of records in an emitter's stream without fetching
// them.
func (s *Store) Len(ctx context.Context, emitterID string) (int64, error) {
	key := StreamKey(s.instanceName, emitterID)
	n, err := s.rdb.LLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read stream length from Redis: %w", err)
	}
	return n, nil
}
