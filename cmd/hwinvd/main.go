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

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/edgekit/hwinvd/pkg/config"
	"github.com/edgekit/hwinvd/pkg/inventory"
	"github.com/edgekit/hwinvd/pkg/kv"
	"github.com/edgekit/hwinvd/pkg/logger"
	"github.com/edgekit/hwinvd/pkg/reconciler"
)

// Exit codes are part of the daemon's external contract; init scripts and
// monitoring key off them.
const (
	exitOK                  = 0
	exitPlatformUnavailable = 1
	exitReadFailure         = 2
	exitStoreFailure        = 3
	exitInvalidParameter    = 4
	exitSourceLoadFailure   = 5
)

const clearTimeout = 30 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "/etc/hwinvd/hwinvd.json", "Path to config file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return exitInvalidParameter
	}

	baseLog, err := logger.New(cfg.Logging)
	if err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return exitInvalidParameter
	}

	runID := uuid.New().String()
	lg := logger.FromZerolog(baseLog.With().Str("run_id", runID).Logger())

	lg.Info().Str("config", *configPath).Msg("Starting hardware inventory daemon")

	store, err := kv.NewNatsStore(ctx, &cfg.KV)
	if err != nil {
		lg.Error().Err(err).Msg("Failed to open state store")
		return exitStoreFailure
	}

	defer func() {
		_ = store.Close()
	}()

	table := kv.NewTableHandle(store, cfg.KV.Table)

	source, err := inventory.Select(&cfg.Inventory, lg)
	if err != nil {
		lg.Error().Err(err).Msg("Failed to load an inventory source")

		// A single forced provider missing its platform capability is a
		// platform problem; exhausting a fallback list is a load failure.
		if errors.Is(err, inventory.ErrSourceUnavailable) && len(cfg.Inventory.Providers) == 1 {
			return exitPlatformUnavailable
		}

		return exitSourceLoadFailure
	}

	// Startup probe: the selected source must actually produce identity
	// bytes before the daemon commits to running.
	if _, err := source.Read(ctx); err != nil {
		lg.Error().Err(err).Str("source", source.Name()).Msg("Startup inventory read failed")
		return exitReadFailure
	}

	stop := reconciler.NewStopSignal()
	gateway := reconciler.NewSignalGateway(stop, lg)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGUSR1, syscall.SIGUSR2)

	defer signal.Stop(sigCh)

	gateway.Watch(ctx, sigCh)

	loop := reconciler.NewLoop(source, table, stop, lg)

	// Published records must not outlive the daemon, however the loop ends.
	// A fresh context keeps the clear working after ctx is cancelled.
	defer func() {
		clearCtx, clearCancel := context.WithTimeout(context.Background(), clearTimeout)
		defer clearCancel()

		if err := loop.Clear(clearCtx); err != nil {
			lg.Error().Err(err).Msg("Failed to clear published records on shutdown")
		} else {
			lg.Info().Msg("Published records cleared")
		}
	}()

	loop.Initialize(ctx)

	interval := cfg.PollInterval.Duration()

	for loop.Step(ctx, interval) {
	}

	lg.Info().Int("exit_code", gateway.ExitCode()).Msg("Reconciliation loop stopped")

	return gateway.ExitCode()
}
