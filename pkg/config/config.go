// Copyright 2025 the filefn authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ⏰ DefaultWaitTimeout is applied when wait_timeout is unset
const DefaultWaitTimeout = 15 * time.Second

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	// WaitTimeout bounds the wait for the connector callback, as a
	// time.ParseDuration string (e.g. "15s").
	WaitTimeout string `json:"wait_timeout,omitempty" yaml:"wait_timeout,omitempty" hcl:"wait_timeout,optional"`
	// Scheme selects the default transfer connector.
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty" hcl:"scheme,optional"`
	// LogLevel is the zerolog level name for structured output.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" hcl:"log_level,optional"`
}

// 🔍 Validate checks the configuration and applies defaults
func (cfg *Config) Validate() error {
	if cfg.WaitTimeout != "" {
		d, err := time.ParseDuration(cfg.WaitTimeout)
		if err != nil {
			return errors.Errorf("parsing wait_timeout: %w", err)
		}
		if d <= 0 {
			return errors.Errorf("wait_timeout must be positive, got %s", cfg.WaitTimeout)
		}
	}

	if cfg.Scheme == "" {
		cfg.Scheme = "file"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Errorf("parsing log_level: %w", err)
	}

	return nil
}

// ⏰ Timeout returns the parsed wait timeout. Validate must have run.
func (cfg *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(cfg.WaitTimeout)
	if err != nil || d <= 0 {
		return DefaultWaitTimeout
	}
	return d
}

// 🎚️ Level returns the parsed zerolog level. Validate must have run.
func (cfg *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("scheme=%s wait_timeout=%s log_level=%s", cfg.Scheme, cfg.Timeout(), cfg.LogLevel)
}

// 🆕 Default returns a validated default configuration
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}
