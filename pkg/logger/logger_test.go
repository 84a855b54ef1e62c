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

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	config := &Config{
		Level:  "debug",
		Output: "stdout",
	}

	log, err := New(config)
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}

	if log == nil {
		t.Fatal("New returned a nil logger")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&Config{Level: "shouting"})
	if err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestNew_DebugOverridesLevel(t *testing.T) {
	var buf bytes.Buffer

	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	log := FromZerolog(zl)

	log.Debug().Msg("visible")

	if buf.Len() == 0 {
		t.Error("Debug message should have been written")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	log := FromZerolog(zerolog.New(&buf))
	log.WithComponent("reconciler").Info().Msg("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Log output is not JSON: %v", err)
	}

	if entry["component"] != "reconciler" {
		t.Errorf("Expected component=reconciler, got %v", entry["component"])
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level == "" {
		t.Error("Default config should have a level set")
	}

	if config.Output == "" {
		t.Error("Default config should have an output set")
	}
}
