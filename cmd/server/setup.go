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

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pdiazg46-design/Festival-app/internal/core/services"
	"github.com/pdiazg46-design/Festival-app/internal/platform"
)

// StateManager holds the shared components for the application.
type StateManager struct {
	config                *platform.Config
	clients               *platform.ServiceClients
	catalogService        *services.CatalogService
	recommendationService *services.RecommendationService
	studioService         *services.StudioService
}

var state = &StateManager{}

// SetupOS points the config loader at the local configs directory and the
// "local" runtime.
func SetupOS() (err error) {
	err = os.Setenv(platform.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	err = os.Setenv(platform.EnvConfigRuntime, "local")
	return err
}

// GetConfig loads the application configuration once and caches it.
func GetConfig() *platform.Config {
	if state.config == nil {
		err := SetupOS()
		if err != nil {
			log.Fatalf("failed to setup os: %v\n", err)
		}
		// Create a default config
		config := platform.NewConfig()
		// Load it from the TOML files
		if err := platform.LoadConfig(config); err != nil {
			log.Fatalf("failed to load config: %v\n", err)
		}
		state.config = config
	}
	return state.config
}

// InitState initializes the application state and dependencies. The
// catalog is loaded once at startup; a failure here is fatal because every
// endpoint depends on it.
func InitState(ctx context.Context) {
	config := GetConfig()

	clients, err := platform.NewServiceClients(config, slog.Default())
	if err != nil {
		panic(err)
	}
	state.clients = clients

	catalogService, err := services.NewCatalogService(ctx, clients.CatalogLoader)
	if err != nil {
		panic(err)
	}
	state.catalogService = catalogService

	state.recommendationService = services.NewRecommendationService(
		catalogService,
		config.Recommendation.TopN,
		time.Duration(config.Recommendation.PresentationDelayMillis)*time.Millisecond,
	)

	state.studioService = services.NewStudioService(clients.ProjectStore, slog.Default())
}
