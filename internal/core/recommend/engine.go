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
	"sort"
	"strings"
	"text/template"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
	"github.com/pdiazg46-design/Festival-app/internal/core/seed"
)

const (
	scoreFloor   = 65
	scoreCeiling = 98
	scoreBase    = 70
)

// Request is the input to one recommendation run. Text is the script or
// treatment excerpt being evaluated; Title and Author are optional credits
// woven into the generated prose.
type Request struct {
	Text   string `json:"text"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Engine scores a script against a festival catalog. It is pure and
// deterministic: the same request and catalog always produce byte-identical
// output. All variation derives from the request text through seed.Hash, so
// the engine needs no random source and is safe for concurrent use.
type Engine struct {
	narratives []*template.Template
	caveats    []*template.Template
}

// NewEngine parses the template pools once. The pools are compile-time
// constants, so a parse failure is a programming error and panics.
func NewEngine() *Engine {
	e := &Engine{
		narratives: make([]*template.Template, len(narrativePool)),
		caveats:    make([]*template.Template, len(caveatPool)),
	}
	for i, t := range narrativePool {
		e.narratives[i] = template.Must(template.New(fmt.Sprintf("narrative-%d", i)).Parse(t))
	}
	for i, t := range caveatPool {
		e.caveats[i] = template.Must(template.New(fmt.Sprintf("caveat-%d", i)).Parse(t))
	}
	return e
}

// Recommend scores every festival in the catalog that has at least one
// documented winner and returns them ordered by descending affinity. The
// sort is stable, so festivals with equal scores keep their catalog order.
// topN <= 0 returns the full eligible list. A blank request text returns an
// empty slice rather than recommendations for nothing.
func (e *Engine) Recommend(req Request, festivals []model.Festival, topN int) []model.Recommendation {
	if strings.TrimSpace(req.Text) == "" {
		return []model.Recommendation{}
	}

	globalSeed := seed.Hash(req.Text + req.Title)

	results := make([]model.Recommendation, 0, len(festivals))
	for _, fest := range festivals {
		if !fest.HasWinners() {
			continue
		}

		base := scoreBase + globalSeed%25
		offset := seed.Hash(fest.Id)%10 - 5
		score := base + offset
		if score < scoreFloor {
			score = scoreFloor
		}
		if score > scoreCeiling {
			score = scoreCeiling
		}

		festSeed := seed.Hash(fest.Id + req.Text)
		// The narrative is always anchored to the festival's first recorded
		// winner; festSeed varies only the prose around it.
		winner := fest.Winners[0]

		vocab := vocabulary{
			WorkTitle:        workTitle(req.Title),
			AuthorCredit:     authorCredit(req.Author),
			FestivalName:     fest.Name,
			FestivalLocation: fest.Location,
			WinnerTitle:      winner.Title,
		}

		results = append(results, model.Recommendation{
			FestivalId:         fest.Id,
			FestivalName:       fest.Name,
			AffinityScore:      score,
			TechnicalReasoning: e.render(e.narratives[festSeed%len(e.narratives)], vocab),
			Weaknesses:         e.render(e.caveats[(festSeed+globalSeed)%len(e.caveats)], vocab),
			MatchingWinner: &model.MatchingWinner{
				Title: winner.Title,
				Theme: winner.Theme.Resolve("en"),
			},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AffinityScore > results[j].AffinityScore
	})

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}

func (e *Engine) render(tmpl *template.Template, vocab vocabulary) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, vocab); err != nil {
		// Templates only reference fields of vocabulary, execution cannot fail.
		return ""
	}
	return sb.String()
}

func workTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Untitled Work"
	}
	return title
}

func authorCredit(author string) string {
	if strings.TrimSpace(author) == "" {
		return ""
	}
	return " by " + author
}
