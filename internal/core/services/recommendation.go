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
// file defines the RecommendationService, the layer between the HTTP API
// and the pure affinity engine. It owns the presentation concerns the
// engine deliberately has none of: the configured result count and the
// artificial analysis delay shown to the client.
package services

import (
	"context"
	"time"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
	"github.com/pdiazg46-design/Festival-app/internal/core/recommend"
)

// RecommendationService wraps the affinity engine with presentation
// settings. The delay paces the client's "analyzing" experience and never
// influences scoring.
type RecommendationService struct {
	Engine            *recommend.Engine
	Catalog           *CatalogService
	DefaultTopN       int
	PresentationDelay time.Duration
}

// NewRecommendationService wires the engine against the loaded catalog.
func NewRecommendationService(catalogService *CatalogService, defaultTopN int, presentationDelay time.Duration) *RecommendationService {
	if defaultTopN <= 0 {
		defaultTopN = 3
	}
	return &RecommendationService{
		Engine:            recommend.NewEngine(),
		Catalog:           catalogService,
		DefaultTopN:       defaultTopN,
		PresentationDelay: presentationDelay,
	}
}

// Recommend scores the request against the full catalog. topN <= 0 uses
// the configured default. The presentation delay is applied before
// returning but honors context cancellation, so a disconnected client
// does not hold the handler hostage.
func (s *RecommendationService) Recommend(ctx context.Context, req recommend.Request, topN int) ([]model.Recommendation, error) {
	if topN <= 0 {
		topN = s.DefaultTopN
	}

	results := s.Engine.Recommend(req, s.Catalog.Catalog.All(), topN)

	if s.PresentationDelay > 0 {
		select {
		case <-time.After(s.PresentationDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results, nil
}
