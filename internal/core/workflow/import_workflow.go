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

// Package workflow assembles pipeline stages into the application's
// document workflows. This file defines the import workflow: the path an
// uploaded PDF takes from raw bytes to a restored studio project.
//
// Stage order:
//  1. document-sniffer: magic-byte check, rejects non-PDF uploads.
//  2. text-extractor: pulls the concatenated text layer.
//  3. state-decoder: finds and decodes the embedded state payload.
//  4. project-restorer: normalizes the restored project.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
	"github.com/pdiazg46-design/Festival-app/internal/core/stages"
	"github.com/pdiazg46-design/Festival-app/internal/flow"
	"github.com/pdiazg46-design/Festival-app/internal/pdf"
)

// ImportWorkflow runs uploaded documents through the import pipeline.
type ImportWorkflow struct {
	pipeline flow.Pipeline
}

// NewImportWorkflow wires the stages in order.
func NewImportWorkflow(extractor *pdf.Extractor) *ImportWorkflow {
	p := flow.NewPipeline("document-import")
	p.AddStage(stages.NewDocumentSniffer()).
		AddStage(stages.NewTextExtractor(extractor)).
		AddStage(stages.NewStateDecoder()).
		AddStage(stages.NewProjectRestorer())
	return &ImportWorkflow{pipeline: p}
}

// Run executes the pipeline over one upload. On success the result carries
// the document's visible text and, when a state payload was present and
// intact, the restored project. An error means the document could not be
// read at all; a readable document without a payload is a success with
// Restored set to false.
func (w *ImportWorkflow) Run(ctx context.Context, data []byte) (*model.ImportResult, error) {
	exchange := flow.NewExchange(ctx)
	exchange.Add(flow.ExIn, data)

	w.pipeline.Execute(exchange)

	if exchange.HasErrors() {
		errs := make([]error, 0, len(exchange.GetErrors()))
		for stage, err := range exchange.GetErrors() {
			errs = append(errs, fmt.Errorf("%s: %w", stage, err))
		}
		return nil, errors.Join(errs...)
	}

	result, ok := exchange.Get(flow.ExIn).(*model.ImportResult)
	if !ok {
		return nil, errors.New("pipeline finished without a result")
	}
	return result, nil
}
