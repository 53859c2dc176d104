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

// Package platform provides the application's runtime wiring. This file is
// central to the architecture: it initializes and holds the stateful
// resources the rest of the application depends on, acting as a dependency
// injection container. A single shared `ServiceClients` struct is created
// at startup and passed to the services and HTTP handlers.
//
// Logic Flow:
//  1. `NewServiceClients` is called at application startup with the loaded Config.
//  2. It opens the embedded project store at the configured path.
//  3. It builds the rate-limited catalog loader for the remote sheet source.
//  4. The assembled struct is handed to the service layer; `Close` releases
//     everything on shutdown.
//
// Structs:
//   - ServiceClients: A container holding the project store, the catalog
//     loader, and the shared HTTP client.
//
// Functions:
//   - NewServiceClients: Factory that creates and configures all stateful clients.
//   - Close: Gracefully shuts down held resources.
package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pdiazg46-design/Festival-app/internal/core/catalog"
	"github.com/pdiazg46-design/Festival-app/internal/store"
)

// ServiceClients is a container for the application's stateful resources.
// This pattern is a form of dependency injection, making it easy to manage
// and share these connections across the entire application and to swap
// them for in-memory equivalents in tests.
type ServiceClients struct {
	ProjectStore  *store.ProjectStore // Embedded database holding studio projects.
	CatalogLoader *catalog.Loader     // Rate-limited loader for the festival dataset.
	HTTPClient    *http.Client        // Shared outbound HTTP client.
}

// NewServiceClients initializes all stateful resources from the loaded
// configuration.
//
// Inputs:
//   - config: A pointer to the loaded application configuration.
//   - logger: The application logger, shared with components that log.
//
// Outputs:
//   - *ServiceClients: A pointer to the fully initialized container.
//   - error: An error if any resource fails to initialize.
func NewServiceClients(config *Config, logger *slog.Logger) (*ServiceClients, error) {
	projectStore, err := store.Open(config.Store.Path)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	loader := catalog.NewLoader(
		httpClient,
		config.Catalog.SheetURL,
		config.Catalog.FallbackPath,
		config.Catalog.RequestsPerSecond,
		logger,
	)

	return &ServiceClients{
		ProjectStore:  projectStore,
		CatalogLoader: loader,
		HTTPClient:    httpClient,
	}, nil
}

// Close releases all held resources. Safe to call once during shutdown.
func (c *ServiceClients) Close() {
	_ = c.ProjectStore.Close()
}
