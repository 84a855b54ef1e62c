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

package reconciler

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"

	"github.com/edgekit/hwinvd/pkg/logger"
)

// SignalGateway translates process signals into a cooperative stop request
// plus an exit status. It owns no cleanup; the loop owner clears the table
// on its way out. OnSignal must stay non-blocking because it can run
// concurrently with a blocked Step wait.
type SignalGateway struct {
	stop     *StopSignal
	exitCode atomic.Int32
	log      logger.Logger
}

func NewSignalGateway(stop *StopSignal, log logger.Logger) *SignalGateway {
	return &SignalGateway{
		stop: stop,
		log:  log.WithComponent("signals"),
	}
}

// OnSignal classifies a signal as fatal, benign, or unhandled. Fatal
// signals set the stop flag and record 128+signum as the exit code; the
// exit code is stored before the stop flag so any reader woken by the flag
// observes it.
func (g *SignalGateway) OnSignal(sig os.Signal) {
	switch sig {
	case syscall.SIGINT, syscall.SIGTERM:
		g.exitCode.Store(int32(128 + signalNumber(sig)))
		g.stop.Set()
		g.log.Info().Str("signal", sig.String()).Msg("Fatal signal received, initiating shutdown")

	case syscall.SIGHUP, syscall.SIGUSR1, syscall.SIGUSR2:
		g.log.Debug().Str("signal", sig.String()).Msg("Ignoring benign signal")

	default:
		g.log.Warn().Str("signal", sig.String()).Msg("Unhandled signal, ignoring")
	}
}

// Watch pumps signals from ch into OnSignal until ctx ends.
func (g *SignalGateway) Watch(ctx context.Context, ch <-chan os.Signal) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-ch:
				if !ok {
					return
				}

				g.OnSignal(sig)
			}
		}
	}()
}

// ExitCode returns 0 until a fatal signal has been observed.
func (g *SignalGateway) ExitCode() int {
	return int(g.exitCode.Load())
}

func signalNumber(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return int(s)
	}

	return 0
}
