// Copyright 2025 Desfoga
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigOverlay(t *testing.T) {
	dir := t.TempDir()
	base := `
[application]
name = "desfoga"
locale = "en"

[server]
port = 8080

[recommendation]
top_n = 3
`
	override := `
[server]
port = 9999

[recommendation]
presentation_delay_millis = 250
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.toml"), []byte(base), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test.toml"), []byte(override), 0o644))
	t.Setenv(EnvConfigFilePrefix, dir)
	t.Setenv(EnvConfigRuntime, "test")

	config := NewConfig()
	require.NoError(t, LoadConfig(config))

	// Overridden by the runtime file.
	assert.Equal(t, 9999, config.Server.Port)
	assert.Equal(t, 250, config.Recommendation.PresentationDelayMillis)
	// Carried from the base file.
	assert.Equal(t, "desfoga", config.Application.Name)
	assert.Equal(t, 3, config.Recommendation.TopN)
}

func TestLoadConfigMissingFilesKeepsDefaults(t *testing.T) {
	t.Setenv(EnvConfigFilePrefix, t.TempDir())
	t.Setenv(EnvConfigRuntime, "test")

	config := NewConfig()
	require.NoError(t, LoadConfig(config))

	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "en", config.Application.Locale)
	assert.Equal(t, 3, config.Studio.DefaultSceneCount)
}

func TestLoadConfigBadToml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.toml"), []byte("not [valid"), 0o644))
	t.Setenv(EnvConfigFilePrefix, dir)

	assert.Error(t, LoadConfig(NewConfig()))
}
