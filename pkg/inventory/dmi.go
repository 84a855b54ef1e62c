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
	"os"
	"path/filepath"
	"strings"

	"github.com/edgekit/hwinvd/pkg/logger"
	"github.com/edgekit/hwinvd/pkg/models"
)

// dmiFiles maps /sys/class/dmi/id file names to inventory field keys.
var dmiFiles = map[string]string{
	"product_name":   models.FieldProductName,
	"product_serial": models.FieldSerialNumber,
	"board_name":     models.FieldPartNumber,
	"board_version":  models.FieldLabelRevision,
	"product_uuid":   models.FieldServiceTag,
	"sys_vendor":     models.FieldVendor,
	"board_vendor":   models.FieldManufacturer,
	"bios_version":   models.FieldDeviceVersion,
	"bios_date":      models.FieldManufactureDate,
}

// DMISource synthesizes inventory records from SMBIOS/DMI identity files.
// Read serializes the raw file contents as JSON so the read and decode
// halves stay separable, matching the EEPROM source contract.
type DMISource struct {
	dir string
	log logger.Logger
}

func NewDMISource(cfg *Config, log logger.Logger) (Source, error) {
	dir := cfg.DMIPath

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("dmi directory %s not accessible: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("dmi path %s is not a directory", dir)
	}

	return &DMISource{
		dir: dir,
		log: log.WithComponent("dmi"),
	}, nil
}

func (s *DMISource) Name() string {
	return "dmi"
}

func (s *DMISource) Read(_ context.Context) ([]byte, error) {
	values := make(map[string]string, len(dmiFiles))

	for name := range dmiFiles {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			// Individual id files are optional; absent ones are skipped.
			continue
		}

		if v := strings.TrimSpace(string(data)); v != "" {
			values[name] = v
		}
	}

	if len(values) == 0 {
		return nil, errors.Join(ErrReadFailure, fmt.Errorf("no readable dmi id files under %s", s.dir))
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Join(ErrReadFailure, err)
	}

	return raw, nil
}

func (s *DMISource) DecodeAndPublish(ctx context.Context, raw []byte, w RecordWriter) (map[string]struct{}, error) {
	var values map[string]string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.Join(ErrDecodeFailure, err)
	}

	records := make([]models.Record, 0, len(values))

	for name, value := range values {
		key, ok := dmiFiles[name]
		if !ok {
			continue
		}

		records = append(records, models.Record{Key: key, Value: value})
	}

	if len(records) == 0 {
		return nil, errors.Join(ErrDecodeFailure, fmt.Errorf("no recognizable dmi fields"))
	}

	keys, err := w.PutRecords(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("publishing dmi records: %w", err)
	}

	return keys, nil
}
