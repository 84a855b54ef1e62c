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

// Package config loads and validates the daemon configuration.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/edgekit/hwinvd/pkg/inventory"
	"github.com/edgekit/hwinvd/pkg/kv"
	"github.com/edgekit/hwinvd/pkg/logger"
	"github.com/edgekit/hwinvd/pkg/models"
)

const defaultPollInterval = 60 * time.Second

// Config is the top-level daemon configuration.
type Config struct {
	KV           kv.Config        `json:"kv"`
	Inventory    inventory.Config `json:"inventory"`
	Logging      *logger.Config   `json:"logging,omitempty"`
	PollInterval models.Duration  `json:"poll_interval,omitempty"`
}

// Load reads and unmarshals the JSON config file at path, applies
// environment overrides, and validates the result.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var cfg Config

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("HWINVD_NATS_URL"); url != "" {
		c.KV.NATSURL = url
	}
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if err := c.KV.Validate(); err != nil {
		return err
	}

	if err := c.Inventory.Validate(); err != nil {
		return err
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	if c.PollInterval <= 0 {
		c.PollInterval = models.Duration(defaultPollInterval)
	}

	return nil
}
