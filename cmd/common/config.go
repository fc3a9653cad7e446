// Copyright 2026 Blink Labs Software
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

package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/gour/fountain"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar names the environment variable used when --config isn't given
const ConfigEnvVar = "GOUR_CONFIG"

// Config holds the defaults for the encode and decode commands. Command-line flags override
// these values
type Config struct {
	MaxFragmentLen int    `yaml:"max_fragment_len"`
	MinFragmentLen int    `yaml:"min_fragment_len"`
	FirstSeqNum    uint32 `yaml:"first_seq_num"`
	QR             bool   `yaml:"qr"`
	LogLevel       string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxFragmentLen: 200,
		MinFragmentLen: fountain.DefaultMinFragmentLen,
		LogLevel:       "info",
	}
}

// LoadConfig loads the config from path, or from the file named by GOUR_CONFIG if path is empty.
// With neither set, the defaults are returned
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.load(data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) load(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file leaves the defaults alone
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	var errs []error
	if c.MinFragmentLen < 1 {
		errs = append(errs, fmt.Errorf("min_fragment_len must be at least 1, got %d", c.MinFragmentLen))
	}
	if c.MaxFragmentLen < c.MinFragmentLen {
		errs = append(
			errs,
			fmt.Errorf(
				"max_fragment_len (%d) must not be less than min_fragment_len (%d)",
				c.MaxFragmentLen,
				c.MinFragmentLen,
			),
		)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
