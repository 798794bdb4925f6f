// Copyright (c) 2025 The pmstats Authors. All rights reserved.
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/gwtelemetry/pmstats/internal/sim/parser"
	"github.com/gwtelemetry/pmstats/internal/sim/trace/generator"
)

type Config struct {
	Type       string `toml:"type" yaml:"type"`
	Name       string `toml:"name" yaml:"name"`
	Capacities []uint `toml:"capacities" yaml:"capacities"`
	Limit      *uint  `toml:"limit" yaml:"limit"`

	Monitor Monitor `toml:"monitor" yaml:"monitor"`
	Fleet   *Fleet  `toml:"fleet" yaml:"fleet"`
	File    *File   `toml:"file" yaml:"file"`
}

func (c *Config) validate() error {
	if c.Type != generator.FleetType && c.Type != generator.FileType {
		return errors.New("not valid trace type")
	}

	if c.Name == "" {
		return errors.New("name is empty")
	}

	if len(c.Capacities) == 0 {
		return errors.New("capacities is empty")
	}

	for _, capacity := range c.Capacities {
		if capacity == 0 {
			return errors.New("capacity should be positive")
		}
	}

	if c.Type == generator.FleetType {
		if c.Fleet == nil {
			return errors.New("not found parameters for fleet trace")
		}

		if c.File != nil {
			return errors.New("found parameters for trace from file, although the config is specified as fleet")
		}
	}

	if c.Type == generator.FileType {
		if c.Fleet != nil {
			return errors.New("found parameters for fleet trace, although the config is specified as file")
		}

		if c.File == nil {
			return errors.New("not found parameters for trace from file")
		}
	}

	if err := c.Fleet.validate(); err != nil {
		return err
	}

	return c.File.validate()
}

// Monitor holds the monitor timings in seconds. Zero means the library default.
type Monitor struct {
	DebounceWindow uint32 `toml:"debounce_window" yaml:"debounce_window"`
	ReportInterval uint32 `toml:"report_interval" yaml:"report_interval"`
	OverdueGrace   uint32 `toml:"overdue_grace" yaml:"overdue_grace"`
	SweepInterval  uint32 `toml:"sweep_interval" yaml:"sweep_interval"`
	MaxPending     int    `toml:"max_pending" yaml:"max_pending"`
}

func seconds(s uint32) time.Duration {
	return time.Duration(s) * time.Second
}

func (m Monitor) Debounce() time.Duration { return seconds(m.DebounceWindow) }
func (m Monitor) Interval() time.Duration { return seconds(m.ReportInterval) }
func (m Monitor) Grace() time.Duration    { return seconds(m.OverdueGrace) }
func (m Monitor) Sweep() time.Duration    { return seconds(m.SweepInterval) }

type Fleet struct {
	Units     int     `toml:"units" yaml:"units"`
	Rounds    uint    `toml:"rounds" yaml:"rounds"`
	Start     uint32  `toml:"start" yaml:"start"`
	Interval  uint32  `toml:"interval" yaml:"interval"`
	Jitter    uint32  `toml:"jitter" yaml:"jitter"`
	Dropout   float64 `toml:"dropout" yaml:"dropout"`
	Duplicate float64 `toml:"duplicate" yaml:"duplicate"`
	Seed      uint64  `toml:"seed" yaml:"seed"`
}

func (f *Fleet) validate() error {
	if f == nil {
		return nil
	}

	if f.Units <= 0 {
		return errors.New("not valid units parameter for fleet generator. Units should be > 0")
	}

	if f.Rounds == 0 {
		return errors.New("unbounded fleet trace")
	}

	if f.Interval == 0 {
		return errors.New("not valid interval parameter for fleet generator. Interval should be > 0")
	}

	if f.Dropout < 0 || f.Dropout > 1 {
		return errors.New("not valid dropout parameter for fleet generator. Dropout should be in [0, 1]")
	}

	if f.Duplicate < 0 || f.Duplicate > 1 {
		return errors.New("not valid duplicate parameter for fleet generator. Duplicate should be in [0, 1]")
	}

	return nil
}

func (f *Fleet) Params() generator.FleetParams {
	return generator.FleetParams{
		Units:     f.Units,
		Rounds:    f.Rounds,
		Start:     f.Start,
		Interval:  f.Interval,
		Jitter:    f.Jitter,
		Dropout:   f.Dropout,
		Duplicate: f.Duplicate,
		Seed:      f.Seed,
	}
}

type File struct {
	TraceType string `toml:"trace_type" yaml:"trace_type"`
	Path      string `toml:"path" yaml:"path"`
}

func (f *File) validate() error {
	if f == nil {
		return nil
	}

	if !parser.IsAvailableFormat(f.TraceType) {
		return errors.New("not valid trace format")
	}

	if f.Path == "" {
		return errors.New("path is empty")
	}

	return nil
}

func unmarshal(configPath string, content []byte, c *Config) error {
	switch ext := filepath.Ext(configPath); ext {
	case ".toml":
		return toml.Unmarshal(content, c)
	case ".yaml", ".yml":
		return yaml.UnmarshalStrict(content, c)
	default:
		return fmt.Errorf("unknown config extension %q", ext)
	}
}

// Load reads a TOML or YAML config, chosen by the file extension.
func Load(configPath string) (Config, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := unmarshal(configPath, content, &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}
