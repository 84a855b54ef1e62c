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
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/edgekit/hwinvd/pkg/logger"
)

// EEPROMSource reads an ONIE TlvInfo blob from a sysfs eeprom node.
type EEPROMSource struct {
	path string
	log  logger.Logger
}

func NewEEPROMSource(cfg *Config, log logger.Logger) (Source, error) {
	path := cfg.EEPROMPath

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("eeprom node %s not accessible: %w", path, err)
	}

	return &EEPROMSource{
		path: path,
		log:  log.WithComponent("eeprom"),
	}, nil
}

func (s *EEPROMSource) Name() string {
	return "eeprom"
}

func (s *EEPROMSource) Read(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrReadFailure, err)
	}

	return raw, nil
}

func (s *EEPROMSource) DecodeAndPublish(ctx context.Context, raw []byte, w RecordWriter) (map[string]struct{}, error) {
	records, err := decodeTLV(raw)
	if err != nil {
		return nil, errors.Join(ErrDecodeFailure, err)
	}

	s.log.Debug().Int("fields", len(records)).Msg("Decoded TlvInfo EEPROM")

	keys, err := w.PutRecords(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("publishing eeprom records: %w", err)
	}

	return keys, nil
}
