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

//go:generate mockgen -destination=mock_source.go -package=inventory github.com/edgekit/hwinvd/pkg/inventory Source,RecordWriter

// Package inventory reads hardware-identity data from the platform and
// decodes it into records for the state store.
package inventory

import (
	"context"

	"github.com/edgekit/hwinvd/pkg/models"
)

// Source is a hardware inventory source. Read fetches the raw identity
// bytes from the platform; DecodeAndPublish decodes a previously read blob
// into records and writes them through the given writer, returning the set
// of record keys it published.
type Source interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
	DecodeAndPublish(ctx context.Context, raw []byte, w RecordWriter) (map[string]struct{}, error)
}

// RecordWriter persists decoded records. kv.TableHandle satisfies this.
type RecordWriter interface {
	PutRecords(ctx context.Context, records []models.Record) (map[string]struct{}, error)
}
