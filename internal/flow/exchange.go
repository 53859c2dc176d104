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

package flow

import "context"

// BaseExchange is the default implementation of the Exchange interface. An
// exchange is created per run and never shared between runs, so no locking
// is needed.
type BaseExchange struct {
	data   map[string]interface{}
	errors map[string]error
	ctx    context.Context
}

// NewExchange creates an empty exchange carrying the given Go context.
func NewExchange(ctx context.Context) Exchange {
	return &BaseExchange{
		data:   make(map[string]interface{}),
		errors: make(map[string]error),
		ctx:    ctx,
	}
}

func (e *BaseExchange) SetContext(ctx context.Context) { e.ctx = ctx }

func (e *BaseExchange) GetContext() context.Context { return e.ctx }

func (e *BaseExchange) Add(key string, value interface{}) Exchange {
	e.data[key] = value
	return e
}

func (e *BaseExchange) Get(key string) interface{} { return e.data[key] }

func (e *BaseExchange) Remove(key string) { delete(e.data, key) }

func (e *BaseExchange) AddError(key string, err error) { e.errors[key] = err }

func (e *BaseExchange) GetErrors() map[string]error { return e.errors }

func (e *BaseExchange) HasErrors() bool { return len(e.errors) > 0 }
