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

// Package model defines the core data structures for the application.
// This file contains the recommendation result record produced by the
// affinity engine. Recommendations are produced fresh per query and are
// never persisted.
package model

// MatchingWinner is the prior-winner reference a recommendation's narrative
// is anchored to: the title of the work and its resolved theme string.
type MatchingWinner struct {
	Title string `json:"title"`
	Theme string `json:"theme"`
}

// Recommendation is one entry of the engine's output. For a fixed query and
// a fixed catalog the full set of fields is deterministic; the score is an
// integer inside the engine's documented closed bounds.
type Recommendation struct {
	FestivalId         string          `json:"festival_id"`
	FestivalName       string          `json:"festival_name"`
	AffinityScore      int             `json:"affinity_score"`
	TechnicalReasoning string          `json:"technical_reasoning"`
	Weaknesses         string          `json:"weaknesses"`
	MatchingWinner     *MatchingWinner `json:"matching_winner,omitempty"`
}
