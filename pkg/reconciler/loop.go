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

// Package reconciler keeps the published inventory table consistent with
// the records last read from hardware: publish once at startup, then
// periodically compare the table against the remembered key snapshot and
// clear-and-republish when something external altered it.
package reconciler

import (
	"context"
	"errors"
	"time"

	"github.com/edgekit/hwinvd/pkg/inventory"
	"github.com/edgekit/hwinvd/pkg/logger"
)

// TableStore is the slice of the state store the loop needs: list what is
// published, delete single records, and hand record batches to the source
// for publishing. *kv.TableHandle satisfies it.
type TableStore interface {
	inventory.RecordWriter
	ListKeys(ctx context.Context) (map[string]struct{}, error)
	Delete(ctx context.Context, key string) error
}

// Loop owns the published-key snapshot and drives the reconcile cycle.
// Not safe for concurrent use; the daemon runs exactly one.
type Loop struct {
	source   inventory.Source
	table    TableStore
	stop     *StopSignal
	clock    Clock
	log      logger.Logger
	snapshot map[string]struct{}
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock, for tests.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

func NewLoop(source inventory.Source, table TableStore, stop *StopSignal, log logger.Logger, opts ...Option) *Loop {
	l := &Loop{
		source:   source,
		table:    table,
		stop:     stop,
		clock:    realClock{},
		log:      log.WithComponent("reconciler"),
		snapshot: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Snapshot returns a copy of the published-key snapshot.
func (l *Loop) Snapshot() map[string]struct{} {
	out := make(map[string]struct{}, len(l.snapshot))
	for k := range l.snapshot {
		out[k] = struct{}{}
	}

	return out
}

// Initialize reads and publishes inventory once. Failures are logged and
// leave the snapshot empty; the daemon keeps running and the periodic
// integrity check picks up from there.
func (l *Loop) Initialize(ctx context.Context) {
	l.log.Info().Str("source", l.source.Name()).Msg("Publishing initial inventory")
	l.publish(ctx)
}

// Step blocks for up to timeout or until a stop is requested, whichever
// comes first, then runs one integrity check. It returns false when the
// caller must stop looping. This is the sole unit of forward progress.
func (l *Loop) Step(ctx context.Context, timeout time.Duration) bool {
	if l.stop.Stopped() {
		return false
	}

	select {
	case <-l.stop.Done():
		return false
	case <-ctx.Done():
		return false
	case <-l.clock.After(timeout):
	}

	l.CheckIntegrity(ctx)

	return true
}

// CheckIntegrity compares the table's current keys against the snapshot and
// clears and republishes on drift. Drift is a cardinality mismatch or any
// snapshot key missing from the table; extra keys alone do not trigger it
// unless they change the cardinality.
func (l *Loop) CheckIntegrity(ctx context.Context) {
	current, err := l.table.ListKeys(ctx)
	if err != nil {
		l.log.Error().Err(err).Msg("Failed to list published keys, skipping integrity check")
		return
	}

	if !l.drifted(current) {
		return
	}

	l.log.Warn().
		Int("published", len(l.snapshot)).
		Int("current", len(current)).
		Msg("State store drift detected, clearing and republishing")

	if err := l.Clear(ctx); err != nil {
		l.log.Error().Err(err).Msg("Failed to clear table before republish")
	}

	l.publish(ctx)
}

func (l *Loop) drifted(current map[string]struct{}) bool {
	if len(current) != len(l.snapshot) {
		return true
	}

	for key := range l.snapshot {
		if _, ok := current[key]; !ok {
			return true
		}
	}

	return false
}

// Clear deletes every key currently listed in the table, not just the
// snapshot, so stale or partially written records go too. Clearing an
// empty table is a no-op. Safe to call on the shutdown path regardless of
// what earlier steps managed to do.
func (l *Loop) Clear(ctx context.Context) error {
	current, err := l.table.ListKeys(ctx)
	if err != nil {
		return err
	}

	var errs []error

	for key := range current {
		if err := l.table.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}

	l.snapshot = make(map[string]struct{})

	return errors.Join(errs...)
}

// publish runs one read+decode+publish pass and replaces the snapshot on
// success. All failures are logged, never escalated.
func (l *Loop) publish(ctx context.Context) {
	raw, err := l.source.Read(ctx)
	if err != nil {
		l.log.Error().Err(err).Msg("Hardware inventory read failed")
		return
	}

	keys, err := l.source.DecodeAndPublish(ctx, raw, l.table)
	if err != nil {
		l.log.Error().Err(err).Msg("Inventory decode or store write failed")
		return
	}

	l.snapshot = keys

	l.log.Info().Int("records", len(keys)).Msg("Inventory published")
}
