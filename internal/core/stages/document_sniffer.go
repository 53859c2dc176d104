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

// Package stages contains the stages of the document import pipeline. Each
// stage is a small unit of work wired together by the import workflow:
// sniff the upload, extract its text layer, decode the embedded state, and
// restore the project for presentation.
package stages

import (
	"fmt"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"

	"github.com/pdiazg46-design/Festival-app/internal/flow"
)

// DocumentSniffer verifies that the uploaded bytes are actually a PDF
// before any parsing happens. Browsers trust file extensions; this stage
// does not. The bytes pass through unchanged on success.
type DocumentSniffer struct {
	flow.BaseStage
}

// NewDocumentSniffer creates the sniffer stage.
func NewDocumentSniffer() *DocumentSniffer {
	return &DocumentSniffer{BaseStage: *flow.NewBaseStage("document-sniffer")}
}

// Execute matches the upload's magic bytes against the PDF signature.
func (s *DocumentSniffer) Execute(exchange flow.Exchange) {
	data, ok := exchange.Get(s.GetInputParam()).([]byte)
	if !ok {
		exchange.AddError(s.GetName(), fmt.Errorf("input is not a byte slice"))
		s.GetErrorCounter().Add(exchange.GetContext(), 1)
		return
	}

	kind, err := filetype.Match(data)
	if err != nil || kind != matchers.TypePdf {
		exchange.AddError(s.GetName(), fmt.Errorf("upload is not a PDF document"))
		s.GetErrorCounter().Add(exchange.GetContext(), 1)
		return
	}

	s.GetSuccessCounter().Add(exchange.GetContext(), 1)
	exchange.Add(s.GetOutputParam(), data)
}
