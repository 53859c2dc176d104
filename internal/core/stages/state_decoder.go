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

	"github.com/pdiazg46-design/Festival-app/internal/core/document"
	"github.com/pdiazg46-design/Festival-app/internal/core/model"
	"github.com/pdiazg46-design/Festival-app/internal/flow"
)

// StateDecoder scans the extracted text for an embedded state payload and
// builds the import result. A document without a payload, or with a
// corrupted one, is still a successful import of its visible text; only the
// Restored flag differs. This stage therefore never fails the pipeline.
type StateDecoder struct {
	flow.BaseStage
}

// NewStateDecoder creates the decoding stage.
func NewStateDecoder() *StateDecoder {
	return &StateDecoder{BaseStage: *flow.NewBaseStage("state-decoder")}
}

// Execute decodes the payload and assembles the ImportResult.
func (s *StateDecoder) Execute(exchange flow.Exchange) {
	text, ok := exchange.Get(s.GetInputParam()).(string)
	if !ok {
		exchange.AddError(s.GetName(), fmt.Errorf("input is not a string"))
		s.GetErrorCounter().Add(exchange.GetContext(), 1)
		return
	}

	result := &model.ImportResult{
		VisibleText: document.VisibleText(text),
	}
	if project, restored := document.Decode(text); restored {
		result.Project = project
		result.Restored = true
	}

	s.GetSuccessCounter().Add(exchange.GetContext(), 1)
	exchange.Add(s.GetOutputParam(), result)
}
