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

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiazg46-design/Festival-app/internal/core/catalog"
	"github.com/pdiazg46-design/Festival-app/internal/core/model"
	"github.com/pdiazg46-design/Festival-app/internal/core/recommend"
)

func newTestRecommender(delay time.Duration) *RecommendationService {
	festivals := make([]model.Festival, 0, 5)
	for _, id := range []string{"f1", "f2", "f3", "f4", "f5"} {
		festivals = append(festivals, model.Festival{
			Id:   id,
			Name: "Festival " + id,
			Winners: []model.Winner{
				{Year: 2024, Title: "Past Winner", Theme: model.NewPlainTheme("memory")},
			},
		})
	}
	catalogService := &CatalogService{Catalog: catalog.New(festivals)}
	return NewRecommendationService(catalogService, 3, delay)
}

func TestRecommendUsesDefaultTopN(t *testing.T) {
	svc := newTestRecommender(0)

	results, err := svc.Recommend(context.Background(), recommend.Request{Text: "a quiet film about loss"}, 0)
	assert.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestRecommendExplicitTopN(t *testing.T) {
	svc := newTestRecommender(0)

	results, err := svc.Recommend(context.Background(), recommend.Request{Text: "a quiet film about loss"}, 5)
	assert.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestRecommendHonorsCancellation(t *testing.T) {
	svc := newTestRecommender(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Recommend(ctx, recommend.Request{Text: "anything"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommendBlankTextYieldsNothing(t *testing.T) {
	svc := newTestRecommender(0)

	results, err := svc.Recommend(context.Background(), recommend.Request{Text: "   "}, 0)
	assert.NoError(t, err)
	assert.Empty(t, results)
}
