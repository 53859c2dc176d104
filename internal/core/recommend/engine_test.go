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

package recommend

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

func fixtureCatalog() []model.Festival {
	return []model.Festival{
		{
			Id:       "f1",
			Name:     "Festival Uno",
			Location: "Valdivia, Chile",
			Region:   "latam",
			Type:     "independent",
			Winners: []model.Winner{
				{Year: 2023, Title: "Los Rios", Director: "A. Soto", Theme: model.NewPlainTheme("memory")},
			},
		},
		{
			Id:       "f2",
			Name:     "Festival Dos",
			Location: "Rotterdam, Netherlands",
			Region:   "europe",
			Type:     "class-a",
			Winners: []model.Winner{
				{Year: 2022, Title: "De Haven", Director: "J. Vos", Theme: model.NewLocalizedTheme(map[string]string{"en": "isolation", "es": "aislamiento"})},
				{Year: 2024, Title: "Tide Lines", Director: "M. Berg", Theme: model.NewPlainTheme("landscape")},
			},
		},
		{
			Id:       "f3",
			Name:     "Festival Tres",
			Location: "Austin, USA",
			Region:   "north-america",
			Type:     "genre",
			// No winners: never eligible for recommendations.
		},
	}
}

func TestRecommendDeterministic(t *testing.T) {
	engine := NewEngine()
	req := Request{Text: "A lighthouse keeper records the tides.", Title: "Tides", Author: "R. Ока"}

	first := engine.Recommend(req, fixtureCatalog(), 0)
	second := engine.Recommend(req, fixtureCatalog(), 0)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "same request must produce byte-identical output")
}

func TestRecommendScoreBounds(t *testing.T) {
	engine := NewEngine()
	catalog := fixtureCatalog()

	for i := 0; i < 50; i++ {
		req := Request{Text: fmt.Sprintf("variation number %d of the same treatment", i)}
		for _, rec := range engine.Recommend(req, catalog, 0) {
			assert.GreaterOrEqual(t, rec.AffinityScore, 65)
			assert.LessOrEqual(t, rec.AffinityScore, 98)
		}
	}
}

func TestRecommendOrderingAndTruncation(t *testing.T) {
	engine := NewEngine()
	catalog := fixtureCatalog()
	req := Request{Text: "Two sisters cross a frozen river at night."}

	all := engine.Recommend(req, catalog, 0)
	require.Len(t, all, 2, "only festivals with winners are eligible")
	assert.GreaterOrEqual(t, all[0].AffinityScore, all[1].AffinityScore)

	top := engine.Recommend(req, catalog, 1)
	require.Len(t, top, 1)
	assert.Equal(t, all[0], top[0])

	// topN beyond the eligible count returns everything.
	wide := engine.Recommend(req, catalog, 10)
	assert.Equal(t, all, wide)
}

func TestRecommendBlankText(t *testing.T) {
	engine := NewEngine()

	for _, text := range []string{"", "   ", "\n\t "} {
		recs := engine.Recommend(Request{Text: text}, fixtureCatalog(), 0)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	}
}

func TestRecommendNoEligibleFestivals(t *testing.T) {
	engine := NewEngine()
	catalog := []model.Festival{{Id: "bare", Name: "Bare", Location: "Nowhere"}}

	recs := engine.Recommend(Request{Text: "anything"}, catalog, 0)
	assert.Empty(t, recs)
}

// Pins the arithmetic for one known input so pool or formula drift is caught.
// For text "abc" and festival "f1": global seed 96354, base 74, id offset -4.
func TestRecommendKnownScenario(t *testing.T) {
	engine := NewEngine()
	recs := engine.Recommend(Request{Text: "abc"}, fixtureCatalog()[:1], 0)

	require.Len(t, recs, 1)
	assert.Equal(t, "f1", recs[0].FestivalId)
	assert.Equal(t, 70, recs[0].AffinityScore)
	assert.Equal(t, "Los Rios", recs[0].MatchingWinner.Title)
	assert.Equal(t, "memory", recs[0].MatchingWinner.Theme)
	assert.Contains(t, recs[0].TechnicalReasoning, `"Untitled Work"`)
	assert.Contains(t, recs[0].TechnicalReasoning, "Los Rios")
	assert.NotEmpty(t, recs[0].Weaknesses)
}

// A festival with several recorded winners always anchors to the first
// one, for any request text.
func TestRecommendUsesFirstWinner(t *testing.T) {
	engine := NewEngine()
	multiWinner := fixtureCatalog()[1:2]

	for i := 0; i < 20; i++ {
		req := Request{Text: fmt.Sprintf("treatment draft %d", i)}
		recs := engine.Recommend(req, multiWinner, 0)
		require.Len(t, recs, 1)
		assert.Equal(t, "De Haven", recs[0].MatchingWinner.Title)
		assert.Equal(t, "isolation", recs[0].MatchingWinner.Theme)
	}
}

func TestRecommendCreditsWovenIn(t *testing.T) {
	engine := NewEngine()
	req := Request{Text: "A chamber piece set in a single elevator.", Title: "Descenso", Author: "P. Diaz"}

	recs := engine.Recommend(req, fixtureCatalog(), 0)
	require.NotEmpty(t, recs)
	for _, rec := range recs {
		combined := rec.TechnicalReasoning + rec.Weaknesses
		credited := strings.Contains(combined, "Descenso") || strings.Contains(combined, "P. Diaz")
		assert.True(t, credited, "reasoning should mention the title or the author: %s", combined)
	}
}
