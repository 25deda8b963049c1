package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSStore is a Store backed by a JetStream key-value bucket, for
// deployments where assistant memory must survive process restarts.
type NATSStore struct {
	nc *nats.Conn
	kv nats.KeyValue
}

// NATSConfig holds connection settings for the NATS-backed store.
type NATSConfig struct {
	URL    string
	Token  string
	Bucket string
}

// NewNATSStore connects to NATS and binds (or creates) the memory bucket.
func NewNATSStore(cfg NATSConfig) (*NATSStore, error) {
	opts := []nats.Option{
		nats.Name("assistant-memory"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("get JetStream context: %w", err)
	}

	kv, err := js.KeyValue(cfg.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket:  cfg.Bucket,
			History: 1,
		})
	}
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("bind memory bucket: %w", err)
	}

	return &NATSStore{nc: nc, kv: kv}, nil
}

// Get implements Store.
func (s *NATSStore) Get(ctx context.Context, key string, v any) (bool, error) {
	entry, err := s.kv.Get(key)
	if errors.Is(err, nats.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("kv get %q: %w", key, err)
	}
	if err := json.Unmarshal(entry.Value(), v); err != nil {
		return false, err
	}
	return true, nil
}

// Put implements Store.
func (s *NATSStore) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := s.kv.Put(key, raw); err != nil {
		return fmt.Errorf("kv put %q: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *NATSStore) Delete(ctx context.Context, key string) error {
	err := s.kv.Delete(key)
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// Healthy reports whether the NATS connection is up. Used by readiness.
func (s *NATSStore) Healthy() bool {
	return s.nc != nil && s.nc.IsConnected()
}

// Close drains the connection.
func (s *NATSStore) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
