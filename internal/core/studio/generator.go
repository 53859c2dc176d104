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

// Package studio generates shot-list projects from free-form script or
// vision text. The generator is deterministic and parameter-driven: the
// same input and parameters always yield the same project, which keeps
// export/import round trips reproducible.
package studio

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

// sceneHeaderRe matches script scene headings in either language, e.g.
// "ESC 1", "ESCENA 12", "SCENE 3".
var sceneHeaderRe = regexp.MustCompile(`(?i)(?:ESC|ESCENA|SCENE)\s*\d+`)

const (
	paceSlowThreshold = 40
	paceFastThreshold = 70
	contrastThreshold = 60
)

// GenerateProject builds a complete project from the input text. When the
// text contains scene headings, one master shot is laid down per detected
// scene; otherwise params.SceneCount scenes are assumed. Blank input falls
// back to the built-in "Silent Mode" short, the app's canonical demo piece.
func GenerateProject(input string, params model.GenerationParams) *model.Project {
	if strings.TrimSpace(input) == "" {
		return silentModeProject(params)
	}

	paceNote := paceNote(params.Pacing)
	lightNote := lightNote(params.Contrast)

	sceneCount := len(sceneHeaderRe.FindAllString(input, -1))
	if sceneCount == 0 {
		sceneCount = params.SceneCount
	}
	if sceneCount < 1 {
		sceneCount = 1
	}

	project := model.NewProject(input)
	project.Title = "PROJECT: " + titleKeyword(input)
	project.Logline = logline(input)
	project.VisualRefs = "Ref: Visual style adapted to user input."
	project.SuggestedEnding = proposeEnding(input)
	project.Beats = buildBeats(input, params.TargetDurationSeconds)
	project.Params = params

	secondsPerScene := float64(params.TargetDurationSeconds) / float64(sceneCount)
	for i := 0; i < sceneCount; i++ {
		elapsed := int(float64(i) * secondsPerScene)
		project.Shots = append(project.Shots, model.Shot{
			DisplayId:         i + 1,
			Scene:             i + 1,
			Timestamp:         fmt.Sprintf("%02d:%02d", elapsed/60, elapsed%60),
			ShotType:          "MASTER SHOT",
			Lens:              "35mm",
			Subject:           fmt.Sprintf("Opening of Scene %d", i+1),
			DescriptionDetail: "Master shot based on the script.",
			AudioNotes:        "Synchronized ambience",
			DirectorNote:      lightNote + ". " + paceNote + ".",
		})
	}
	return project
}

func paceNote(pacing int) string {
	switch {
	case pacing < paceSlowThreshold:
		return "Long take, static"
	case pacing > paceFastThreshold:
		return "Quick cut, nervous"
	default:
		return "Smooth pan"
	}
}

func lightNote(contrast int) string {
	if contrast > contrastThreshold {
		return "High contrast, hard shadows"
	}
	return "Soft, natural light"
}

// titleKeyword picks the first word longer than five characters as the
// project's working title.
func titleKeyword(input string) string {
	for _, word := range strings.Fields(input) {
		if len([]rune(word)) > 5 {
			return strings.ToUpper(word)
		}
	}
	return "NEW PROJECT"
}

func logline(input string) string {
	subject := "character"
	if strings.Contains(strings.ToLower(input), "woman") {
		subject = "woman"
	}
	excerpt := []rune(input)
	if len(excerpt) > 50 {
		excerpt = excerpt[:50]
	}
	return fmt.Sprintf(
		"When a %s faces %q, they must fight against the odds to achieve their goal before it's too late.",
		subject, string(excerpt)+"...")
}

// proposeEnding keys an alternate ending off the dominant genre keywords in
// the text. Keyword lists cover both languages the app accepts scripts in.
func proposeEnding(input string) *model.EndingProposal {
	lower := strings.ToLower(input)
	contains := func(keys ...string) bool {
		for _, k := range keys {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("miedo", "asesino", "oscur", "horror", "kill", "dark"):
		return &model.EndingProposal{
			Title:       "The Nihilistic Twist",
			Description: "Protagonist thinks they escaped, but we reveal they've been trapped where they started all along. The 'monster' is internal.",
		}
	case contains("amor", "pareja", "love", "relationship"):
		return &model.EndingProposal{
			Title:       "The Necessary Separation",
			Description: "Instead of a happy reunion, both accept they must part ways to grow. A bittersweet but mature ending.",
		}
	case contains("futuro", "ia ", "robot", "tech"):
		return &model.EndingProposal{
			Title:       "The Recursive Loop",
			Description: "The final shot reveals the protagonist is actually a simulation reliving the same memory over and over.",
		}
	default:
		return &model.EndingProposal{
			Title:       "The Poetic Ambiguity",
			Description: "Cut to black right before resolution. Leave the audience wondering if they succeeded, forcing reflection.",
		}
	}
}

// buildBeats splits the input into sentences and maps the first three onto
// a four-beat structure whose boundaries scale with the target duration.
func buildBeats(input string, durationSeconds int) []model.Beat {
	var snippets []string
	for _, s := range strings.Split(input, ".") {
		if strings.TrimSpace(s) != "" {
			snippets = append(snippets, strings.TrimSpace(s))
		}
	}
	pick := func(i int, fallback string) string {
		if i < len(snippets) {
			return snippets[i]
		}
		return fallback
	}
	act1 := pick(0, "Conflict intro")
	act2 := pick(1, "Tension escalation")
	act3 := pick(2, "Climax and resolution")

	minutes := durationSeconds / 60
	if minutes < 1 {
		minutes = 1
	}
	// Beat boundaries at 20%, 50%, and 80% of the runtime. For the default
	// ten minutes this yields the classic 0-2 / 2-5 / 5-8 / 8-10 grid.
	b1 := (minutes*20 + 50) / 100
	b2 := (minutes*50 + 50) / 100
	b3 := (minutes*80 + 50) / 100
	rng := func(from, to int) string { return fmt.Sprintf("%d-%d min", from, to) }

	return []model.Beat{
		{TimeRange: rng(0, b1), Heading: "The Trigger", Description: act1},
		{TimeRange: rng(b1, b2), Heading: "Development / Complication", Description: "The situation gets complicated: " + act2},
		{TimeRange: rng(b2, b3), Heading: "Point of No Return", Description: "The protagonist must take a drastic decision."},
		{TimeRange: rng(b3, minutes), Heading: "Resolution", Description: act3},
	}
}

// silentModeProject is the canned demo short shown when the studio opens
// with no input. The pacing and contrast notes still honor the current
// slider positions.
func silentModeProject(params model.GenerationParams) *model.Project {
	paceNote := paceNote(params.Pacing)
	lightNote := lightNote(params.Contrast)
	handheldNote := "Dolly in, very slow"
	if params.Pacing > paceFastThreshold {
		handheldNote = "Shaky handheld camera"
	}

	project := model.NewProject("silent-mode")
	project.Title = "SILENT MODE"
	project.Logline = "A young man tries to have dinner with his mother, but discovers she only responds via text messages. Physical reality decays."
	project.VisualRefs = "Ref: 'The Menu' (Food prep sounds), 'Hereditary' (Wide shots)."
	project.Params = params
	project.Beats = []model.Beat{
		{TimeRange: "0-2 min", Heading: "The Wait", Description: "Lucas prepares dinner. Absolute silence."},
		{TimeRange: "2-4 min", Heading: "Lost Connection", Description: "Mother enters. Doesn't speak. Only answers via WhatsApp."},
		{TimeRange: "4-7 min", Heading: "The Glitch", Description: "Lucas sees through his camera that his mother is smiling falsely."},
		{TimeRange: "9-10 min", Heading: "Surrender", Description: "Lucas accepts the simulation."},
	}
	project.Shots = Renumber([]model.Shot{
		{Timestamp: "00:00", ShotType: "INSERT / MACRO", Lens: "100mm", Subject: "Steam rising from hot soup", AudioNotes: "Amplified bubbling sound", DirectorNote: paceNote + "."},
		{Timestamp: "00:15", ShotType: "ECU (Extreme Close Up)", Lens: "85mm", Subject: "LUCAS's eyes checking the clock", AudioNotes: "Loud clock ticking", DirectorNote: "Look shows anxiety."},
		{Timestamp: "00:30", ShotType: "WIDE / MASTER", Lens: "24mm", Subject: "Perfectly set dining room, empty chair", AudioNotes: "Electric hum (Room Tone)", DirectorNote: lightNote + ". Kubrickian symmetry."},
		{Timestamp: "00:50", ShotType: "MEDIUM", Lens: "50mm", Subject: "Lucas places BOTH phones on table", AudioNotes: "Sharp thud of glass on wood", DirectorNote: "Ritualistic action."},
		{Timestamp: "01:20", ShotType: "POV / HANDHELD", Lens: "35mm", Subject: "From behind Lucas towards dark door", AudioNotes: "Distant notification sound", DirectorNote: handheldNote},
		{Timestamp: "01:45", ShotType: "CLOSE UP", Lens: "50mm", Subject: "Notification lights up his face", AudioNotes: "Sudden silence", DirectorNote: lightNote + ". Ref: 'Euphoria' aesthetics."},
	})
	return project
}
