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

// Package logger provides JSON structured logging using zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging interface handed to every component. It wraps the
// zerolog event chain so call sites keep the fluent style.
type Logger interface {
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	Fatal() *zerolog.Event
	With() zerolog.Context
	WithComponent(component string) Logger
}

type zeroLogger struct {
	logger zerolog.Logger
}

// New builds a Logger from config. A nil config gets defaults.
func New(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var output io.Writer = os.Stdout
	if config.Output == "stderr" {
		output = os.Stderr
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	} else {
		zerolog.TimeFieldFormat = time.RFC3339
	}

	zl := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &zeroLogger{logger: zl}, nil
}

// NewTestLogger returns a logger that discards output, for use in tests.
func NewTestLogger() Logger {
	return &zeroLogger{logger: zerolog.New(io.Discard)}
}

// FromZerolog wraps an existing zerolog.Logger.
func FromZerolog(zl zerolog.Logger) Logger {
	return &zeroLogger{logger: zl}
}

func (z *zeroLogger) Trace() *zerolog.Event {
	return z.logger.Trace()
}

func (z *zeroLogger) Debug() *zerolog.Event {
	return z.logger.Debug()
}

func (z *zeroLogger) Info() *zerolog.Event {
	return z.logger.Info()
}

func (z *zeroLogger) Warn() *zerolog.Event {
	return z.logger.Warn()
}

func (z *zeroLogger) Error() *zerolog.Event {
	return z.logger.Error()
}

func (z *zeroLogger) Fatal() *zerolog.Event {
	return z.logger.Fatal()
}

func (z *zeroLogger) With() zerolog.Context {
	return z.logger.With()
}

func (z *zeroLogger) WithComponent(component string) Logger {
	return &zeroLogger{logger: z.logger.With().Str("component", component).Logger()}
}
