package streamstore

import "fmt"

// Redis key pattern helpers
//
// All keys are namespaced by instance name so that multiple pmatrix
// deployments can safely coexist on a single Redis server. Each emitter's
// stream is a Redis LIST; RPUSH preserves emission order, which the temporal
// invariant depends on.
//
// Key pattern: pmatrix:{instance_name}:stream:{emitter_id}

// StreamKey returns the Redis key for an emitter's record stream.
// Pattern: pmatrix:{instance_name}:stream:{emitter_id}
func StreamKey(instanceName, emitterID string) string {
	return fmt.Sprintf("pmatrix:%s:stream:%s", instanceName, emitterID)
}
