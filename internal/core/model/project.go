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
// This file contains the studio project: the shot-list breakdown generated
// from a pasted script, edited in place by the user, persisted to the local
// store on every mutation, and round-tripped through exported PDFs by the
// document codec.
//
// Every field of Project participates in the codec round trip. There are no
// transient UI-only fields excluded from serialization; if one is ever
// added it must be enumerated both here and in the codec's equality tests.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Beat is a single entry of the narrative structure ("escaleta"): a labeled
// time range with a heading and a one-line description.
type Beat struct {
	TimeRange   string `json:"time_range"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
}

// Shot is one row of the technical shot list. DisplayId and Scene are
// derived positionally by the renumbering helper and must not be edited
// independently of list order; every other field is free-form user content.
// Sketch holds an optional embedded storyboard image as a base64 data URL.
type Shot struct {
	DisplayId         int    `json:"id"`
	Scene             int    `json:"scene"`
	Timestamp         string `json:"time"`
	ShotType          string `json:"type"`
	Lens              string `json:"lens"`
	Subject           string `json:"subject"`
	DescriptionDetail string `json:"description_detail,omitempty"`
	AudioNotes        string `json:"audio"`
	Props             string `json:"props,omitempty"`
	DetailShot        string `json:"detail_shot,omitempty"`
	ActorNotes        string `json:"actors,omitempty"`
	DirectorNote      string `json:"note"`
	Sketch            string `json:"sketch,omitempty"`
}

// EndingProposal is the generator's suggested alternate ending, keyed off
// the dominant genre keywords found in the input text.
type EndingProposal struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GenerationParams are the knobs the studio exposes for project generation.
// They are passed explicitly into the generator, which owns no hidden
// state, and persisted with the project so a re-import restores the slider
// positions the project was built with.
type GenerationParams struct {
	// Pacing ranges 0 (slow, static takes) to 100 (fast, nervous cutting).
	Pacing int `json:"pacing"`
	// Contrast ranges 0 (naturalistic light) to 100 (stylized chiaroscuro).
	Contrast int `json:"contrast"`
	// SceneCount is the manual scene count used when the input text carries
	// no detectable scene headers.
	SceneCount int `json:"scene_count"`
	// TargetDurationSeconds is the intended runtime of the piece.
	TargetDurationSeconds int `json:"target_duration_seconds"`
}

// Project is the complete studio state: concept, narrative structure, shot
// list, and the parameters it was generated with.
type Project struct {
	Id              string           `json:"id"`
	Title           string           `json:"title"`
	Logline         string           `json:"logline"`
	VisualRefs      string           `json:"visual_refs"`
	SuggestedEnding *EndingProposal  `json:"suggested_ending,omitempty"`
	Beats           []Beat           `json:"beats"`
	Shots           []Shot           `json:"shots"`
	Params          GenerationParams `json:"params"`
	CreateDate      time.Time        `json:"create_date"`
}

// NewProject creates an empty project whose Id is a UUIDv5 hash of the
// seed name, so the same source material maps to the same project identity.
// Slice fields are initialized empty rather than nil to keep JSON output
// stable ([] instead of null) across the codec round trip.
func NewProject(seedName string) *Project {
	return &Project{
		Id:         uuid.NewSHA1(uuid.NameSpaceURL, []byte(seedName)).String(),
		Beats:      make([]Beat, 0),
		Shots:      make([]Shot, 0),
		CreateDate: time.Now().UTC(),
	}
}

// ImportResult is the outcome of running a document through the import
// pipeline. VisibleText is always populated from the document's text layer;
// Project is non-nil only when an embedded state payload was found and
// decoded in full.
type ImportResult struct {
	VisibleText string   `json:"visible_text"`
	Project     *Project `json:"project,omitempty"`
	Restored    bool     `json:"restored"`
}
