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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "median3", cfg.Selection.Pivot)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "gdxselect.toml", `
[selection]
pivot = "hashed"
seed = 42

[collation]
language = "de"
ignore_case = true

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hashed", cfg.Selection.Pivot)
	assert.Equal(t, uint64(42), cfg.Selection.Seed)
	assert.True(t, cfg.Selection.Inclusive, "untouched keys keep their defaults")
	assert.Equal(t, "de", cfg.Collation.Language)
	assert.True(t, cfg.Collation.IgnoreCase)
	assert.False(t, cfg.Collation.Numeric)
	assert.Equal(t, "compare", cfg.Scripting.Function)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "broken.toml", "[selection\npivot = ")
	_, err = Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/gdxselect.toml")
	assert.Equal(t, "local.toml", ResolvePath("local.toml"))
	assert.Equal(t, "/etc/gdxselect.toml", ResolvePath(""))

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, "", ResolvePath(""))
}
