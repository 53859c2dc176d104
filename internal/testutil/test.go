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

// Package test provides utility functions and sample data to support the
// application's test suite. It sets up a consistent test environment,
// loads the test-specific configuration, and provides fixture inputs
// for workflows and services.
package test

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiazg46-design/Festival-app/internal/platform"
)

// StateManager acts as a simple in-memory cache for the application
// configuration during test runs, so it is loaded once per test binary.
type StateManager struct {
	config *platform.Config
}

var state = &StateManager{}

// HandleErr is a test helper that fails the test when err is not nil.
//
// Inputs:
//   - err: The error to check.
//   - t: The *testing.T object from the current test.
func HandleErr(err error, t *testing.T) {
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// GetTestScriptText returns a short bilingual script with explicit scene
// headings, used to exercise the studio generator and the export/import
// round trip.
//
// Returns:
//   - A string containing a three-scene script.
func GetTestScriptText() string {
	return `ESCENA 1 Interior, cocina, noche. A woman sets the table in silence.
SCENE 2 The hallway light flickers. She waits by the dark door.
ESC 3 Exterior, amanecer. The notification arrives too late.`
}

// findConfigDir walks up from the current working directory looking for the
// repository's configs directory, so tests can run from any package depth.
func findConfigDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "configs"
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, "configs")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "configs"
}

// SetupOS configures the environment variables the configuration loader
// depends on, directing it at the test configuration files (.env.test.toml).
//
// Returns:
//   - An error if setting any environment variable fails.
func SetupOS() (err error) {
	err = os.Setenv(platform.EnvConfigFilePrefix, findConfigDir())
	if err != nil {
		return err
	}
	err = os.Setenv(platform.EnvConfigRuntime, "test")
	return err
}

// GetConfig is a singleton accessor for the test configuration. The config
// is loaded from the TOML files once and cached for subsequent calls.
//
// Returns:
//   - A pointer to the loaded and cached platform.Config struct.
func GetConfig() *platform.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		config := platform.NewConfig()
		if err := platform.LoadConfig(config); err != nil {
			log.Fatalf("failed to load test configuration: %v\n", err)
		}
		state.config = config
	}
	return state.config
}
