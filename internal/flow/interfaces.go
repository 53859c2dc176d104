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
// an ordered sequence of stages. This file defines the interfaces that
// govern the behavior of all components of the pattern. By using
// interfaces, the framework stays flexible: stages, pipelines, and
// exchanges can be implemented and composed interchangeably.
package flow

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ExIn and ExOut are the keys that manage the primary data flow within a
// Pipeline.
const (
	// ExIn is the default key for a stage's primary input. The Pipeline
	// populates it with the output of the previous stage.
	ExIn = "__IN__"
	// ExOut is the default key where a stage places its primary output. The
	// Pipeline picks it up as the input for the next stage.
	ExOut = "__OUT__"
)

// Exchange is the shared state object passed through a pipeline. It acts as
// a property bag for a single run, carrying data and errors between stages.
type Exchange interface {
	// SetContext sets the standard Go context, used for cancellation and
	// trace propagation.
	SetContext(ctx context.Context)

	// GetContext retrieves the standard Go context.
	GetContext() context.Context

	// Add stores a key-value pair. It returns the Exchange for fluent
	// chaining.
	Add(key string, value interface{}) Exchange

	// Get retrieves a value by key, or nil when absent.
	Get(key string) interface{}

	// Remove deletes a key-value pair.
	Remove(key string)

	// AddError records an error produced by a stage, keyed by stage name.
	AddError(key string, err error)

	// GetErrors returns all errors collected during the run.
	GetErrors() map[string]error

	// HasErrors reports whether any stage has failed.
	HasErrors() bool
}

// Stage is an atomic, testable, thread-safe unit of work.
type Stage interface {
	// Execute contains the stage's business logic. It reads its input from
	// the Exchange and writes its output back to it.
	Execute(exchange Exchange)

	// GetName returns the stage's unique name, used in logs and telemetry.
	GetName() string

	// GetInputParam returns the Exchange key the stage reads its primary
	// input from.
	GetInputParam() string

	// GetOutputParam returns the Exchange key the stage stores its primary
	// output under.
	GetOutputParam() string

	// IsRunnable is the precondition check performed before Execute.
	IsRunnable(exchange Exchange) bool

	// GetTracer returns the stage's OpenTelemetry tracer.
	GetTracer() trace.Tracer

	// GetMeter returns the stage's OpenTelemetry meter.
	GetMeter() metric.Meter

	// GetSuccessCounter returns the counter incremented on success.
	GetSuccessCounter() metric.Int64Counter

	// GetErrorCounter returns the counter incremented on failure.
	GetErrorCounter() metric.Int64Counter
}

// Pipeline is an ordered sequence of stages. A Pipeline is itself a Stage,
// so pipelines can be nested inside other pipelines.
type Pipeline interface {
	Stage

	// ContinueOnFailure configures whether the pipeline keeps executing
	// after a stage records an error. The default is to stop.
	ContinueOnFailure(bool) Pipeline

	// AddStage appends a stage to the execution sequence.
	AddStage(stage Stage) Pipeline
}
