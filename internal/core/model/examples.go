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

// Package model defines the data structures for the application. This file
// provides factory functions for hardcoded example instances of the models.
// They are shared fixtures: the test suites exercise the codec, exporter,
// and services against them, and they document the expected shape of a
// fully populated record better than any comment.
package model

// GetExampleProject returns the canonical "Silent Mode" sample project: a
// short-film breakdown with a full narrative structure and a mixed
// master/coverage shot list. Scene and display numbering in the fixture is
// already consistent with the renumbering invariants.
func GetExampleProject() *Project {
	p := NewProject("example-silent-mode")
	p.Title = "SILENT MODE"
	p.Logline = "A young man tries to have dinner with his mother, but discovers " +
		"she only responds via text messages. Physical reality decays."
	p.VisualRefs = "Ref: 'The Menu' (food prep sounds), 'Hereditary' (wide shots)."
	p.SuggestedEnding = &EndingProposal{
		Title:       "The Poetic Ambiguity",
		Description: "Cut to black right before resolution, leaving the audience unsure whether he ever reached her.",
	}
	p.Beats = []Beat{
		{TimeRange: "0-2 min", Heading: "The Wait", Description: "Lucas prepares dinner. Absolute silence."},
		{TimeRange: "2-4 min", Heading: "Lost Connection", Description: "Mother enters. Doesn't speak. Only answers by phone."},
		{TimeRange: "4-7 min", Heading: "The Glitch", Description: "Through his camera Lucas sees his mother smiling falsely."},
		{TimeRange: "7-10 min", Heading: "Surrender", Description: "Lucas accepts the simulation."},
	}
	p.Shots = []Shot{
		{DisplayId: 1, Scene: 1, Timestamp: "00:00", ShotType: "MASTER SHOT", Lens: "24mm",
			Subject: "Perfectly set dining room, empty chair", AudioNotes: "Electric hum (room tone)",
			DirectorNote: "Kubrickian symmetry."},
		{DisplayId: 2, Scene: 1, Timestamp: "00:15", ShotType: "INSERT / MACRO", Lens: "100mm",
			Subject: "Steam rising from hot soup", AudioNotes: "Amplified bubbling",
			DirectorNote: "Long take, static."},
		{DisplayId: 3, Scene: 1, Timestamp: "00:30", ShotType: "ECU", Lens: "85mm",
			Subject: "Lucas's eyes checking the clock", AudioNotes: "Loud clock ticking",
			DirectorNote: "The look shows anxiety."},
		{DisplayId: 4, Scene: 2, Timestamp: "00:50", ShotType: "MASTER SHOT", Lens: "35mm",
			Subject: "Lucas places both phones on the table", AudioNotes: "Sharp thud of glass on wood",
			DirectorNote: "Ritualistic action."},
		{DisplayId: 5, Scene: 2, Timestamp: "01:20", ShotType: "CLOSE UP", Lens: "50mm",
			Subject: "The notification lights up his face", AudioNotes: "Sudden silence",
			DirectorNote: "Soft, natural light."},
	}
	p.Params = GenerationParams{Pacing: 50, Contrast: 50, SceneCount: 2, TargetDurationSeconds: 600}
	return p
}

// GetExampleFestival returns a single fully populated catalog record with a
// recorded winner, suitable for driving the affinity engine in tests.
func GetExampleFestival() Festival {
	return Festival{
		Id:       "sitges",
		Name:     "Sitges Film Festival",
		Location: "Sitges, Catalonia",
		Region:   "Europe",
		Type:     "Genre",
		Dates:    "October",
		Status:   "Open",
		Fee:      "45",
		Description: Description{
			EN: "The leading festival for fantastic and genre cinema.",
			ES: "El festival de referencia del cine fantástico y de género.",
		},
		Winners: []Winner{
			{
				Year:     2024,
				Title:    "La Casa Vacía",
				Director: "M. Ferrer",
				Theme:    NewLocalizedTheme(map[string]string{"en": "Isolation", "es": "Aislamiento"}),
			},
		},
	}
}
