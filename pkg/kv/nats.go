/*
 * Copyright 2026 Edgekit Labs.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsStore backs KVStore with a NATS JetStream key-value bucket.
type NatsStore struct {
	nc *nats.Conn
	kv jetstream.KeyValue
}

func NewNatsStore(ctx context.Context, cfg *Config) (*NatsStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()

		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kvCfg := jetstream.KeyValueConfig{
		Bucket:   cfg.Bucket,
		History:  uint8(cfg.BucketHistory),
		MaxBytes: cfg.BucketMaxBytes,
	}

	kv, err := js.CreateKeyValue(ctx, kvCfg)
	if err != nil {
		nc.Close()

		return nil, fmt.Errorf("failed to create KV bucket: %w", err)
	}

	return &NatsStore{
		nc: nc,
		kv: kv,
	}, nil
}

func (n *NatsStore) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	var entry jetstream.KeyValueEntry

	entry, err = n.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	return entry.Value(), true, nil
}

func (n *NatsStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := n.kv.Put(ctx, key, value)
	if err != nil {
		return fmt.Errorf("failed to put key %s: %w", key, err)
	}

	return nil
}

func (n *NatsStore) PutMany(ctx context.Context, entries []KeyValueEntry) error {
	for _, entry := range entries {
		if err := n.Put(ctx, entry.Key, entry.Value); err != nil {
			return err
		}
	}

	return nil
}

func (n *NatsStore) Delete(ctx context.Context, key string) error {
	// Purge rather than Delete so the bucket does not accumulate
	// tombstones that Keys() would have to skip over.
	err := n.kv.Purge(ctx, key)
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (n *NatsStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := n.kv.Keys(ctx)
	if errors.Is(err, jetstream.ErrNoKeysFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	return keys, nil
}

func (n *NatsStore) Close() error {
	n.nc.Close()

	return nil
}

// Ensure NatsStore implements the store interface.
var _ KVStore = (*NatsStore)(nil)
