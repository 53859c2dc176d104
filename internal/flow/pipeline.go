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

// Package flow provides the building blocks for running a request through
// an ordered sequence of stages. This file defines `BasePipeline`, the
// default Pipeline implementation.
//
// Logic flow:
//  1. Execute opens an OpenTelemetry span covering the whole pipeline run.
//  2. Stages run in order, each under its own child span.
//  3. If a stage records an error and the pipeline is not configured to
//     continue on failure, the remaining stages are skipped.
//  4. After each stage, the value it stored under ExOut is moved to ExIn,
//     so the next stage receives it as its primary input.
//  5. The pipeline span's final status reflects the exchange's error state.
package flow

import (
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

// BasePipeline is the default Pipeline implementation: an ordered slice of
// stages executed sequentially over a shared exchange.
type BasePipeline struct {
	BaseStage
	continueOnFailure bool
	stages            []Stage
}

// NewPipeline constructs an empty pipeline with the given name.
func NewPipeline(name string) *BasePipeline {
	return &BasePipeline{BaseStage: *NewBaseStage(name)}
}

// ContinueOnFailure configures whether later stages still run after an
// earlier one fails. Returns the pipeline for fluent construction.
func (p *BasePipeline) ContinueOnFailure(continueOnFailure bool) Pipeline {
	p.continueOnFailure = continueOnFailure
	return p
}

// AddStage appends a stage to the execution sequence.
func (p *BasePipeline) AddStage(stage Stage) Pipeline {
	p.stages = append(p.stages, stage)
	return p
}

// IsRunnable only requires a Go context; a pipeline may legitimately start
// with an empty exchange.
func (p *BasePipeline) IsRunnable(exchange Exchange) bool {
	return exchange.GetContext() != nil
}

// Execute runs every stage in order over the shared exchange.
func (p *BasePipeline) Execute(exchange Exchange) {
	parentCtx := exchange.GetContext()

	outerCtx, pipelineSpan := p.Tracer.Start(parentCtx, fmt.Sprintf("%s_execute", p.GetName()))
	defer pipelineSpan.End()

	for _, stage := range p.stages {
		stageCtx, stageSpan := p.Tracer.Start(outerCtx, stage.GetName())

		if exchange.HasErrors() && !p.continueOnFailure {
			stageSpan.SetStatus(codes.Error, "previous error in pipeline; skipping execution")
			stageSpan.End()
			break
		}

		if stage.IsRunnable(exchange) {
			// Run the stage under its own span, then restore the pipeline
			// context so sibling stages trace as siblings, not descendants.
			exchange.SetContext(stageCtx)
			stage.Execute(exchange)
			exchange.SetContext(outerCtx)
		} else {
			stageSpan.SetStatus(codes.Error, fmt.Sprintf("stage not runnable: %s", stage.GetName()))
		}

		if exchange.HasErrors() {
			stageSpan.SetStatus(codes.Error, "error during or after stage execution")
		} else {
			stageSpan.SetStatus(codes.Ok, "stage completed successfully")
		}
		stageSpan.End()

		// Pipe: the output of the stage that just ran becomes the input of
		// the next one.
		outputValue := exchange.Get(ExOut)
		exchange.Remove(ExIn)
		if outputValue != nil {
			exchange.Add(ExIn, outputValue)
		}
		exchange.Remove(ExOut)
	}

	if !exchange.HasErrors() {
		pipelineSpan.SetStatus(codes.Ok, "pipeline completed successfully")
	} else {
		pipelineSpan.SetStatus(codes.Error, "pipeline failed to execute")
	}
}
