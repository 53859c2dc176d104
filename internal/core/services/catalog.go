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

// Package services contains the business logic of the application. This
// file defines the CatalogService, which serves the festival reference
// dataset: browsing, filtering, single-record lookup, and the dashboard
// aggregates.
package services

import (
	"context"
	"fmt"

	"github.com/pdiazg46-design/Festival-app/internal/core/catalog"
	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

// CatalogService wraps the loaded festival catalog. The catalog itself is
// immutable; the service exists so handlers depend on an operation surface
// rather than the data structure.
type CatalogService struct {
	Catalog *catalog.Catalog
}

// NewCatalogService loads the dataset through the given loader and wraps
// it. Loading happens once at startup; the bundled fallback inside the
// loader guarantees a dataset is always available.
func NewCatalogService(ctx context.Context, loader *catalog.Loader) (*CatalogService, error) {
	festivals, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading festival catalog: %w", err)
	}
	return &CatalogService{Catalog: catalog.New(festivals)}, nil
}

// List returns the festivals matching the filter, in source order.
func (s *CatalogService) List(filter catalog.Filter) []model.Festival {
	return s.Catalog.Select(filter)
}

// Get looks one festival up by its id.
func (s *CatalogService) Get(id string) (model.Festival, bool) {
	return s.Catalog.Get(id)
}

// Stats returns the dataset aggregates for the dashboard.
func (s *CatalogService) Stats() model.CatalogStats {
	return s.Catalog.Stats()
}
