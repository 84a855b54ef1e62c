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

package inventory

import (
	"errors"
)

var (
	// ErrSourceUnavailable means no inventory source could be constructed at
	// all. Fatal at startup; the daemon refuses to run without one.
	ErrSourceUnavailable = errors.New("no inventory source available")

	// ErrReadFailure marks a failure to fetch the raw identity bytes.
	ErrReadFailure = errors.New("inventory read failed")

	// ErrDecodeFailure marks a failure to decode previously read bytes.
	ErrDecodeFailure = errors.New("inventory decode failed")

	errUnknownProvider = errors.New("unknown inventory provider")
	errNoProviders     = errors.New("provider list is empty")
)
