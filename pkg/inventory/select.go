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

	"github.com/edgekit/hwinvd/pkg/logger"
)

// Factory constructs a Source, failing if the platform capability it needs
// is absent. Construction must not block on hardware I/O beyond a
// cheap capability probe.
type Factory func(cfg *Config, log logger.Logger) (Source, error)

var factories = map[string]Factory{
	"eeprom": NewEEPROMSource,
	"dmi":    NewDMISource,
	"host":   NewHostSource,
}

// Select walks the ranked provider list and returns the first source that
// constructs. If every constructor fails, the joined errors wrap
// ErrSourceUnavailable.
func Select(cfg *Config, log logger.Logger) (Source, error) {
	if len(cfg.Providers) == 0 {
		return nil, errors.Join(ErrSourceUnavailable, errNoProviders)
	}

	errs := make([]error, 0, len(cfg.Providers))

	for _, name := range cfg.Providers {
		factory, ok := factories[name]
		if !ok {
			return nil, errors.Join(errUnknownProvider, errors.New(name))
		}

		source, err := factory(cfg, log)
		if err != nil {
			log.Debug().Err(err).Str("provider", name).Msg("Inventory provider unavailable")
			errs = append(errs, err)

			continue
		}

		log.Info().Str("provider", name).Msg("Selected inventory provider")

		return source, nil
	}

	return nil, errors.Join(append([]error{ErrSourceUnavailable}, errs...)...)
}
