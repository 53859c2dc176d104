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

package studio

import (
	"strings"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

// Renumber rewrites the positional fields of a shot list after the user
// reorders, inserts, or deletes rows. DisplayId becomes the 1-based list
// position. The scene counter advances every time a shot's type mentions
// MASTER (case-insensitive), so a master shot opens each scene and the
// coverage that follows it inherits the scene number. A list whose first
// shot is not a master keeps scene 0 for its leading rows; the caller is
// expected to open with a master.
//
// The input slice is not mutated. Timestamps are user content and are left
// untouched.
func Renumber(shots []model.Shot) []model.Shot {
	out := make([]model.Shot, len(shots))
	scene := 0
	for i, shot := range shots {
		if strings.Contains(strings.ToUpper(shot.ShotType), "MASTER") {
			scene++
		}
		shot.DisplayId = i + 1
		shot.Scene = scene
		out[i] = shot
	}
	return out
}
