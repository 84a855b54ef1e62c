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
	"sync"
	"sync/atomic"
)

// StopSignal is a monotonic shutdown flag shared between the signal path
// and the loop. One writer, many readers; once set it never resets.
type StopSignal struct {
	once sync.Once
	done chan struct{}
	set  atomic.Bool
}

func NewStopSignal() *StopSignal {
	return &StopSignal{done: make(chan struct{})}
}

// Set requests shutdown. Safe to call from a signal handler context and
// idempotent across concurrent callers.
func (s *StopSignal) Set() {
	s.once.Do(func() {
		s.set.Store(true)
		close(s.done)
	})
}

func (s *StopSignal) Stopped() bool {
	return s.set.Load()
}

// Done returns a channel closed when shutdown has been requested.
func (s *StopSignal) Done() <-chan struct{} {
	return s.done
}
