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
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

type GlobalFlags struct {
	Flagset    *pflag.FlagSet
	ConfigFile string
	Debug      bool
	Config     *Config
	Logger     *slog.Logger
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: pflag.NewFlagSet(os.Args[0], pflag.ExitOnError),
	}
	// Global flags must come before the subcommand
	f.Flagset.SetInterspersed(false)
	f.Flagset.StringVar(
		&f.ConfigFile,
		"config",
		"",
		"path to YAML config file (defaults to $"+ConfigEnvVar+")",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

// Parse parses the command line, loads the config file and creates the logger
func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	cfg, err := LoadConfig(f.ConfigFile)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if f.Debug {
		cfg.LogLevel = "debug"
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	f.Config = cfg
	f.Logger = logger
}
