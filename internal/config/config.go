/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const EnvConfigPath = "GDXSELECT_CONFIG"

type Config struct {
	Selection SelectionConfig `toml:"selection"`
	Collation CollationConfig `toml:"collation"`
	Scripting ScriptingConfig `toml:"scripting"`
	Logging   LoggingConfig   `toml:"logging"`
}

type SelectionConfig struct {
	Pivot     string `toml:"pivot"` // "first", "middle", "median3" or "hashed"
	Seed      uint64 `toml:"seed"`  // hashed pivot and tie-break seed
	Inclusive bool   `toml:"inclusive"`
}

type CollationConfig struct {
	Language   string `toml:"language"` // BCP 47 tag
	IgnoreCase bool   `toml:"ignore_case"`
	Numeric    bool   `toml:"numeric"`
}

type ScriptingConfig struct {
	File     string `toml:"file"`
	Function string `toml:"function"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults. An empty path yields
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath prefers an explicit path, then the environment.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfigPath)
}

func Defaults() *Config {
	return &Config{
		Selection: SelectionConfig{
			Pivot:     "median3",
			Seed:      9001,
			Inclusive: true,
		},
		Collation: CollationConfig{
			Language: "en",
		},
		Scripting: ScriptingConfig{
			Function: "compare",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
