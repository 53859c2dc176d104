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

// Package platform defines the data structures for application
// configuration, loaded from TOML files. It provides a structured way to
// manage settings for every component: the HTTP server, the festival
// catalog source, the recommendation engine presentation, the studio
// generation defaults, and the embedded project store.
//
// This file centralizes all configuration-related structs, making it easy
// to understand and manage the application's configurable parameters.
//
// Structs:
//   - ServerConfig: Listen address and CORS settings for the HTTP server.
//   - CatalogConfig: Remote sheet source and bundled fallback dataset.
//   - RecommendationConfig: Presentation behavior of the affinity engine.
//   - StudioConfig: Default generation parameters for new projects.
//   - StoreConfig: Location of the embedded project database.
//   - Config: The top-level struct aggregating all of the above.
//
// Functions:
//   - NewConfig: A constructor that initializes a Config with usable defaults.
package platform

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port           int      `toml:"port"`            // The TCP port the API listens on.
	AllowedOrigins []string `toml:"allowed_origins"` // Origins permitted by the CORS middleware.
}

// CatalogConfig holds the festival dataset source settings.
type CatalogConfig struct {
	SheetURL          string  `toml:"sheet_url"`           // CSV export URL of the published festival sheet.
	FallbackPath      string  `toml:"fallback_path"`       // Path to the bundled JSON dataset used when the sheet is unreachable.
	RequestsPerSecond float64 `toml:"requests_per_second"` // Rate limit applied to sheet fetches.
}

// RecommendationConfig holds the presentation settings of the affinity
// engine. The delay is cosmetic pacing for the client; it never influences
// scoring.
type RecommendationConfig struct {
	TopN                    int `toml:"top_n"`                     // Default number of recommendations returned.
	PresentationDelayMillis int `toml:"presentation_delay_millis"` // Artificial "analysis" delay before responding.
}

// StudioConfig holds the default generation parameters applied when a
// request omits them.
type StudioConfig struct {
	DefaultSceneCount     int `toml:"default_scene_count"`      // Scene count used when no headings are detected.
	DefaultDurationSecs   int `toml:"default_duration_seconds"` // Target runtime for generated projects.
	DefaultPacing         int `toml:"default_pacing"`           // Pacing slider default, 0 to 100.
	DefaultContrast       int `toml:"default_contrast"`         // Contrast slider default, 0 to 100.
	MaxImportSizeMegabyte int `toml:"max_import_size_mb"`       // Upload size cap for document imports.
}

// StoreConfig holds the embedded database settings.
type StoreConfig struct {
	Path string `toml:"path"` // Directory for the project database. Empty opens an in-memory store.
}

// Config represents the overall configuration for the application, loaded
// from TOML files. It acts as the root container for all other
// configuration structs.
type Config struct {
	Application struct {
		Name   string `toml:"name"`   // The name of the application, used in telemetry resources.
		Locale string `toml:"locale"` // Display locale for resolved theme strings.
	} `toml:"application"`
	Server         ServerConfig         `toml:"server"`
	Catalog        CatalogConfig        `toml:"catalog"`
	Recommendation RecommendationConfig `toml:"recommendation"`
	Studio         StudioConfig         `toml:"studio"`
	Store          StoreConfig          `toml:"store"`
}

// NewConfig is a constructor function that creates a new Config instance
// populated with defaults that let the server start with no config files
// present at all.
//
// Outputs:
//   - *Config: A pointer to a new Config struct with default values.
func NewConfig() *Config {
	c := &Config{}
	c.Application.Name = "desfoga"
	c.Application.Locale = "en"
	c.Server.Port = 8080
	c.Server.AllowedOrigins = []string{"*"}
	c.Catalog.FallbackPath = "data/festivals.json"
	c.Catalog.RequestsPerSecond = 1
	c.Recommendation.TopN = 3
	c.Recommendation.PresentationDelayMillis = 0
	c.Studio.DefaultSceneCount = 3
	c.Studio.DefaultDurationSecs = 600
	c.Studio.DefaultPacing = 50
	c.Studio.DefaultContrast = 50
	c.Studio.MaxImportSizeMegabyte = 20
	return c
}
