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
	"strings"

	"github.com/edgekit/hwinvd/pkg/models"
)

// TableHandle is a table-scoped view over a shared KVStore. All record keys
// live under "<table>." inside the bucket, so multiple daemons can share one
// bucket without stepping on each other. ListKeys and Delete speak in
// unprefixed record keys.
type TableHandle struct {
	store KVStore
	table string
}

func NewTableHandle(store KVStore, table string) *TableHandle {
	return &TableHandle{
		store: store,
		table: table,
	}
}

// Table returns the table name this handle is scoped to.
func (t *TableHandle) Table() string {
	return t.table
}

func (t *TableHandle) prefix() string {
	return t.table + "."
}

// ListKeys returns the set of record keys currently present in this table.
func (t *TableHandle) ListKeys(ctx context.Context) (map[string]struct{}, error) {
	keys, err := t.store.Keys(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(keys))

	for _, key := range keys {
		if !strings.HasPrefix(key, t.prefix()) {
			continue
		}

		set[strings.TrimPrefix(key, t.prefix())] = struct{}{}
	}

	return set, nil
}

// Delete removes a single record key from the table. Absent keys are a no-op.
func (t *TableHandle) Delete(ctx context.Context, key string) error {
	return t.store.Delete(ctx, t.prefix()+key)
}

// PutRecords writes records into the table and returns the set of keys written.
func (t *TableHandle) PutRecords(ctx context.Context, records []models.Record) (map[string]struct{}, error) {
	entries := make([]KeyValueEntry, 0, len(records))
	keys := make(map[string]struct{}, len(records))

	for _, rec := range records {
		entries = append(entries, KeyValueEntry{
			Key:   t.prefix() + rec.Key,
			Value: []byte(rec.Value),
		})
		keys[rec.Key] = struct{}{}
	}

	if err := t.store.PutMany(ctx, entries); err != nil {
		return nil, err
	}

	return keys, nil
}
