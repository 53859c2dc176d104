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

	"github.com/pdiazg46-design/Festival-app/internal/flow"
	"github.com/pdiazg46-design/Festival-app/internal/pdf"
)

// TextExtractor pulls the text layer out of the verified PDF bytes and
// passes the full concatenated text downstream.
type TextExtractor struct {
	flow.BaseStage
	extractor *pdf.Extractor
}

// NewTextExtractor creates the extraction stage.
func NewTextExtractor(extractor *pdf.Extractor) *TextExtractor {
	return &TextExtractor{
		BaseStage: *flow.NewBaseStage("text-extractor"),
		extractor: extractor,
	}
}

// Execute extracts the document text. A document that defeats the parser
// fails the stage; the sniffer already vouched for the format, so a failure
// here means a corrupt file.
func (s *TextExtractor) Execute(exchange flow.Exchange) {
	data, ok := exchange.Get(s.GetInputParam()).([]byte)
	if !ok {
		exchange.AddError(s.GetName(), fmt.Errorf("input is not a byte slice"))
		s.GetErrorCounter().Add(exchange.GetContext(), 1)
		return
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		exchange.AddError(s.GetName(), fmt.Errorf("extracting document text: %w", err))
		s.GetErrorCounter().Add(exchange.GetContext(), 1)
		return
	}

	s.GetSuccessCounter().Add(exchange.GetContext(), 1)
	exchange.Add(s.GetOutputParam(), text)
}
