// Package memory provides the keyed per-user store backing pending
// operations and greeting timestamps. The store is an external
// collaborator: the in-process implementation is the default, a NATS
// JetStream key-value bucket can be swapped in by configuration.
package memory

import "context"

// Store is a user-keyed JSON record store.
type Store interface {
	// Get unmarshals the record at key into v. Returns false when the
	// key does not exist.
	Get(ctx context.Context, key string, v any) (bool, error)

	// Put marshals v and stores it at key, replacing any prior value.
	Put(ctx context.Context, key string, v any) error

	// Delete removes the record at key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
