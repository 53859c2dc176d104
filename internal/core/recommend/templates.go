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

// Package recommend implements the deterministic affinity engine. This file
// holds the fixed template pools the engine selects from. Pool order is part
// of the engine's contract: a seed indexes into these slices by modulo, so
// reordering, inserting, or removing entries changes every selection for
// every input. Append only.
package recommend

// narrativePool holds the technical-reasoning templates. Substitution slots:
// WorkTitle, AuthorCredit, FestivalName, FestivalLocation, WinnerTitle.
var narrativePool = []string{
	`The proposal in "{{.WorkTitle}}" reveals an unusual technical maturity. We noticed a use of chiaroscuro that directly evokes the atmosphere of "{{.WinnerTitle}}". It is precisely that handling of negative space that resonates with the editorial line in {{.FestivalLocation}}.`,
	`We observe in the work{{.AuthorCredit}} a very precise architecture of framing. The cadence of the editing is in dialogue with the tempo of "{{.WinnerTitle}}", suggesting a deep conceptual affinity with the artistic heritage {{.FestivalName}} cultivates.`,
	`What makes "{{.WorkTitle}}" a solid candidate is its immersive sound design. As in "{{.WinnerTitle}}", the piece uses off-screen space to expand the narrative, a trait the juries in {{.FestivalLocation}} tend to single out.`,
	`There is a brutal honesty in the production design of "{{.WorkTitle}}". The desaturated palette recalls the visual treatment of "{{.WinnerTitle}}", establishing an aesthetic link with this festival's curatorial sensibility.`,
	`The construction of point of view in "{{.WorkTitle}}" proposes a fascinating exercise in voyeurism. That subjective camera echoes the narration of "{{.WinnerTitle}}" and fits the search for new languages that defines {{.FestivalName}}.`,
	`The formal risk taken in "{{.WorkTitle}}"{{.AuthorCredit}} is remarkable. Its non-linear structure inherits the ambiguity of "{{.WinnerTitle}}", building a fragmented story that speaks as an equal to the avant-garde screened in {{.FestivalLocation}}.`,
	`We highlight the handling of diegetic light in "{{.WorkTitle}}". It achieves a grainy texture that echoes the visual style of "{{.WinnerTitle}}", adding a layer of dirty realism that is a fixture of the programming at {{.FestivalName}}.`,
	`The melancholic handling of rhythm in "{{.WorkTitle}}" evokes the lyricism of "{{.WinnerTitle}}". It is a work unafraid of prolonged silences, a technical boldness the selectors in {{.FestivalLocation}} tend to reward.`,
	`We find a visual symmetry in "{{.WorkTitle}}" reminiscent of the compositional obsession of "{{.WinnerTitle}}". That rigor is exactly the signature this festival looks for in its competitive sections.`,
}

// caveatPool holds the weakness templates shown alongside each score.
var caveatPool = []string{
	`Technically, the color grade of "{{.WorkTitle}}" shows slight saturation shifts across transitions. A more cohesive finish would lift the work to the level {{.FestivalName}} demands for its official selection.`,
	`Although the visual premise is strong, "{{.WorkTitle}}" falters slightly in resolving its second act. A more elliptical cut, closer to the structure of "{{.WinnerTitle}}", would sharpen the mystery.`,
	`There is a noticeable inconsistency in sound pressure levels. Refining the spatial mix to guarantee full immersion would heighten the sensory impact {{.FestivalName}} looks for.`,
	`The narrative of "{{.WorkTitle}}" turns perhaps too explicit toward the climax. On circuits like {{.FestivalLocation}}, suggesting the emotion is valued over explaining it to the audience.`,
	`Some of the optics used in "{{.WorkTitle}}" produce chromatic aberration. A technical pass in post would give it the premium finish the programmers at {{.FestivalName}} expect.`,
	`The economy of means in "{{.WorkTitle}}" is its greatest strength, but the rhythm sags through the middle stretch. Pruning the edit would release the accumulated tension, following the path of the works awarded in {{.FestivalLocation}}.`,
	`The sociopolitical subtext of "{{.WorkTitle}}" is vibrant, yet the performance direction loses naturalness in the medium shots. A more contained register would strengthen its submission to {{.FestivalName}}.`,
	`The digital effects in "{{.WorkTitle}}" sit slightly apart from the grain of the original footage. A more artisanal compositing pass would be better received in {{.FestivalLocation}}.`,
}

// vocabulary carries the substitution slots for one template instantiation.
type vocabulary struct {
	WorkTitle        string
	AuthorCredit     string
	FestivalName     string
	FestivalLocation string
	WinnerTitle      string
}
