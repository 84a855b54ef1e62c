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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/edgekit/hwinvd/pkg/logger"
	"github.com/edgekit/hwinvd/pkg/models"
)

// HostSource is the last-resort provider on platforms with no EEPROM or DMI
// exposure. It publishes what the OS knows about the machine: the host ID
// stands in for a serial number and the platform strings for product
// identity. Less authoritative than the hardware-backed sources, which is
// why it ranks last by default.
type HostSource struct {
	log  logger.Logger
	info func(context.Context) (*host.InfoStat, error)
}

func NewHostSource(_ *Config, log logger.Logger) (Source, error) {
	return &HostSource{
		log:  log.WithComponent("host"),
		info: host.InfoWithContext,
	}, nil
}

func (s *HostSource) Name() string {
	return "host"
}

func (s *HostSource) Read(ctx context.Context) ([]byte, error) {
	info, err := s.info(ctx)
	if err != nil {
		return nil, errors.Join(ErrReadFailure, err)
	}

	raw, err := json.Marshal(info)
	if err != nil {
		return nil, errors.Join(ErrReadFailure, err)
	}

	return raw, nil
}

func (s *HostSource) DecodeAndPublish(ctx context.Context, raw []byte, w RecordWriter) (map[string]struct{}, error) {
	var info host.InfoStat
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, errors.Join(ErrDecodeFailure, err)
	}

	if info.HostID == "" {
		return nil, errors.Join(ErrDecodeFailure, fmt.Errorf("host info carries no host id"))
	}

	records := []models.Record{
		{Key: models.FieldSerialNumber, Value: info.HostID},
		{Key: models.FieldProductName, Value: info.Hostname},
	}

	if info.Platform != "" {
		platform := info.Platform
		if info.PlatformVersion != "" {
			platform += " " + info.PlatformVersion
		}

		records = append(records, models.Record{Key: models.FieldPlatformName, Value: platform})
	}

	keys, err := w.PutRecords(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("publishing host records: %w", err)
	}

	return keys, nil
}
