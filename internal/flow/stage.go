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
// an ordered sequence of stages. This file defines `BaseStage`, the default
// foundation every concrete stage embeds. It carries the stage's name, its
// OpenTelemetry tracer and counters, and the default input/output parameter
// handling that the pipeline's piping mechanism relies on.
package flow

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// meterScope is the instrumentation scope for all pipeline metrics.
const meterScope = "github.com/pdiazg46-design/Festival-app"

// BaseStage is the default implementation of the Stage interface. Concrete
// stages embed it and implement Execute.
type BaseStage struct {
	Name            string              // Unique stage name, used in traces and metric names.
	InputParamName  string              // Exchange key for the primary input. Empty means ExIn.
	OutputParamName string              // Exchange key for the primary output. Empty means ExOut.
	Tracer          trace.Tracer        // Tracer for creating per-stage spans.
	Meter           metric.Meter        // Meter the counters were created from.
	SuccessCounter  metric.Int64Counter // Incremented on successful execution.
	ErrorCounter    metric.Int64Counter // Incremented when the stage records an error.
}

// NewBaseStage initializes a stage with its name and OpenTelemetry
// instrumentation.
func NewBaseStage(name string) *BaseStage {
	meter := otel.Meter(meterScope)

	successCounter, err := meter.Int64Counter(fmt.Sprintf("%s.counter.success", name))
	if err != nil {
		slog.Warn("creating success counter", "stage", name, "error", err)
	}
	errorCounter, err := meter.Int64Counter(fmt.Sprintf("%s.counter.error", name))
	if err != nil {
		slog.Warn("creating error counter", "stage", name, "error", err)
	}

	return &BaseStage{
		Name:           name,
		Tracer:         otel.Tracer(name),
		Meter:          meter,
		SuccessCounter: successCounter,
		ErrorCounter:   errorCounter,
	}
}

// GetName returns the stage name.
func (s *BaseStage) GetName() string {
	return s.Name
}

// IsRunnable is the default precondition: the exchange is valid, carries a
// Go context, and the stage's input key is populated.
func (s *BaseStage) IsRunnable(exchange Exchange) bool {
	return exchange != nil && exchange.GetContext() != nil && exchange.Get(s.GetInputParam()) != nil
}

// GetInputParam returns the input key, defaulting to ExIn so the pipeline
// can pipe the previous stage's output in.
func (s *BaseStage) GetInputParam() string {
	if len(s.InputParamName) == 0 {
		return ExIn
	}
	return s.InputParamName
}

// GetOutputParam returns the output key, defaulting to ExOut.
func (s *BaseStage) GetOutputParam() string {
	if len(s.OutputParamName) == 0 {
		return ExOut
	}
	return s.OutputParamName
}

func (s *BaseStage) GetTracer() trace.Tracer { return s.Tracer }

func (s *BaseStage) GetMeter() metric.Meter { return s.Meter }

func (s *BaseStage) GetSuccessCounter() metric.Int64Counter { return s.SuccessCounter }

func (s *BaseStage) GetErrorCounter() metric.Int64Counter { return s.ErrorCounter }
