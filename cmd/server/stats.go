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

// Package main contains the API route definitions for the server. This file
// defines the catalog statistics endpoint backing the dashboard view.
//
// Functions:
//   - Dashboard: Sets up a route group for statistics-related endpoints.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard configures the API routes for the statistics dashboard. It
// creates a new route group "/stats" nested under the main API router group.
//
// Inputs:
//   - r: A *gin.RouterGroup to which the new "/stats" route group will be added.
//
// Outputs:
//   - This function does not return any value. It modifies the provided
//     *gin.RouterGroup by adding a new route handler.
func Dashboard(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		// Aggregates are computed over the in-memory catalog on every
		// request; the dataset is small enough that caching would not pay
		// for itself.
		stats.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, state.catalogService.Stats())
		})
	}
}
