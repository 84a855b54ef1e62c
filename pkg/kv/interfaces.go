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

//go:generate mockgen -destination=mock_kv.go -package=kv github.com/edgekit/hwinvd/pkg/kv KVStore

// Package kv provides the shared key-value state store that inventory
// records are published into.
package kv

import (
	"context"
)

// KVStore defines the interface for the shared key-value store backing the
// published inventory state.
type KVStore interface {
	// Get retrieves the value associated with the given key.
	// Returns the value as a byte slice, a boolean indicating if the key was found, and an error if the operation fails.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores a value under the given key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// PutMany stores multiple key/value pairs. Entries are applied in order;
	// the first failure aborts the batch and is returned.
	PutMany(ctx context.Context, entries []KeyValueEntry) error

	// Delete removes the key and its associated value from the store.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every key currently present in the store. An empty store
	// yields an empty slice, not an error.
	Keys(ctx context.Context) ([]string, error)

	// Close shuts down the KV store, releasing any resources (e.g., connections).
	Close() error
}

// KeyValueEntry represents a single key-value update.
type KeyValueEntry struct {
	Key   string
	Value []byte
}
