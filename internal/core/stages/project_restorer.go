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

package stages

import (
	"fmt"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
	"github.com/pdiazg46-design/Festival-app/internal/core/studio"
	"github.com/pdiazg46-design/Festival-app/internal/flow"
)

// ProjectRestorer normalizes a restored project before it reaches the
// caller: slice fields decoded as null become empty slices and the shot
// list gets a consistency renumber, so a project edited in an older build
// lands with clean positional fields. Results without a restored project
// pass through untouched.
type ProjectRestorer struct {
	flow.BaseStage
}

// NewProjectRestorer creates the restore stage.
func NewProjectRestorer() *ProjectRestorer {
	return &ProjectRestorer{BaseStage: *flow.NewBaseStage("project-restorer")}
}

// Execute normalizes the restored project in place.
func (s *ProjectRestorer) Execute(exchange flow.Exchange) {
	result, ok := exchange.Get(s.GetInputParam()).(*model.ImportResult)
	if !ok {
		exchange.AddError(s.GetName(), fmt.Errorf("input is not an import result"))
		s.GetErrorCounter().Add(exchange.GetContext(), 1)
		return
	}

	if result.Restored && result.Project != nil {
		p := result.Project
		if p.Beats == nil {
			p.Beats = make([]model.Beat, 0)
		}
		if p.Shots == nil {
			p.Shots = make([]model.Shot, 0)
		}
		p.Shots = studio.Renumber(p.Shots)
	}

	s.GetSuccessCounter().Add(exchange.GetContext(), 1)
	exchange.Add(s.GetOutputParam(), result)
}
