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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/pdiazg46-design/Festival-app/internal/core/catalog"
	"github.com/pdiazg46-design/Festival-app/internal/core/model"
	"github.com/pdiazg46-design/Festival-app/internal/core/recommend"
	"github.com/pdiazg46-design/Festival-app/internal/core/services"
	"github.com/pdiazg46-design/Festival-app/internal/telemetry"
)

func main() {
	telemetry.SetupLogging()
	slog.Info("Logging initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config := GetConfig()

	shutdownTelemetry, err := telemetry.SetupOpenTelemetry(ctx, config)
	if err != nil {
		slog.Error("Failed to setup OpenTelemetry", "error", err)
		log.Fatal(err)
	}
	slog.Info("Tracing initialized")

	InitState(ctx)
	slog.Info("Initialized State")

	r := gin.Default()

	// Add OpenTelemetry middleware
	r.Use(otelgin.Middleware(config.Application.Name))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.Server.AllowedOrigins
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	r.Use(cors.New(corsConfig))

	// Create the "/api/v1" group
	apiV1 := r.Group("/api/v1")
	{
		FestivalRouter(apiV1)
		RecommendationRouter(apiV1)
		StudioRouter(apiV1)
		Dashboard(apiV1)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Server.Port),
		Handler: r,
	}

	// Start the server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen", "error", err)
		}
	}()
	slog.Info("Server Ready", "port", config.Server.Port)

	// Wait for an interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutdown Server ...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server Shutdown Failed:", "error", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		slog.Error("Telemetry Shutdown Failed:", "error", err)
	}
	state.clients.Close()

	log.Println("Server exiting")
}

// FestivalRouter sets up the routes for browsing the festival catalog.
func FestivalRouter(r *gin.RouterGroup) {
	festivals := r.Group("/festivals")
	{
		festivals.GET("", func(c *gin.Context) {
			filter := catalog.Filter{
				Region: c.Query("region"),
				Type:   c.Query("type"),
				Status: c.Query("status"),
				Theme:  c.Query("theme"),
			}
			if raw := c.Query("max_fee"); raw != "" {
				maxFee, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "max_fee must be a number"})
					return
				}
				filter.MaxFee = &maxFee
			}
			c.JSON(http.StatusOK, state.catalogService.List(filter))
		})

		festivals.GET("/:id", func(c *gin.Context) {
			festival, ok := state.catalogService.Get(c.Param("id"))
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "festival not found"})
				return
			}
			c.JSON(http.StatusOK, festival)
		})
	}
}

// recommendationRequest is the request body of the recommendation endpoint.
type recommendationRequest struct {
	Text   string `json:"text"`
	Title  string `json:"title"`
	Author string `json:"author"`
	TopN   int    `json:"top_n"`
}

// RecommendationRouter sets up the affinity scoring endpoint.
func RecommendationRouter(r *gin.RouterGroup) {
	recommendations := r.Group("/recommendations")
	{
		recommendations.POST("", func(c *gin.Context) {
			var req recommendationRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
			if strings.TrimSpace(req.Text) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
				return
			}
			results, err := state.recommendationService.Recommend(
				c.Request.Context(),
				recommend.Request{Text: req.Text, Title: req.Title, Author: req.Author},
				req.TopN,
			)
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, results)
		})
	}
}

// generateRequest is the request body of the project generation endpoint.
// Omitted sliders fall back to the configured studio defaults.
type generateRequest struct {
	Script          string `json:"script"`
	Vision          string `json:"vision"`
	Pacing          *int   `json:"pacing"`
	Contrast        *int   `json:"contrast"`
	SceneCount      *int   `json:"scene_count"`
	DurationSeconds *int   `json:"duration_seconds"`
}

func (g *generateRequest) params() model.GenerationParams {
	studio := state.config.Studio
	params := model.GenerationParams{
		Pacing:                studio.DefaultPacing,
		Contrast:              studio.DefaultContrast,
		SceneCount:            studio.DefaultSceneCount,
		TargetDurationSeconds: studio.DefaultDurationSecs,
	}
	if g.Pacing != nil {
		params.Pacing = *g.Pacing
	}
	if g.Contrast != nil {
		params.Contrast = *g.Contrast
	}
	if g.SceneCount != nil {
		params.SceneCount = *g.SceneCount
	}
	if g.DurationSeconds != nil {
		params.TargetDurationSeconds = *g.DurationSeconds
	}
	return params
}

// StudioRouter sets up the project life cycle routes: generation, editing,
// export, and document import.
func StudioRouter(r *gin.RouterGroup) {
	studio := r.Group("/studio")
	{
		studio.POST("/projects", func(c *gin.Context) {
			var req generateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
			project, err := state.studioService.Generate(req.Script, req.Vision, req.params())
			if err != nil {
				log.Printf("Error generating project: %v\n", err)
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusCreated, project)
		})

		studio.GET("/projects", func(c *gin.Context) {
			projects, err := state.studioService.List()
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, projects)
		})

		studio.GET("/projects/current", func(c *gin.Context) {
			project, err := state.studioService.Current()
			if errors.Is(err, services.ErrProjectNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "no current project"})
				return
			}
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, project)
		})

		studio.GET("/projects/:id", func(c *gin.Context) {
			project, err := state.studioService.Get(c.Param("id"))
			if errors.Is(err, services.ErrProjectNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, project)
		})

		studio.PUT("/projects/:id", func(c *gin.Context) {
			var project model.Project
			if err := c.ShouldBindJSON(&project); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
			// The path id wins over whatever the body carries.
			project.Id = c.Param("id")
			saved, err := state.studioService.Save(&project)
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, saved)
		})

		studio.DELETE("/projects/:id", func(c *gin.Context) {
			if err := state.studioService.Delete(c.Param("id")); err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.Status(http.StatusNoContent)
		})

		studio.GET("/projects/:id/export", func(c *gin.Context) {
			id := c.Param("id")
			data, err := state.studioService.Export(id)
			if errors.Is(err, services.ErrProjectNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			if err != nil {
				log.Printf("Error exporting project %s: %v\n", id, err)
				c.Status(http.StatusInternalServerError)
				return
			}
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "shotlist-"+id+".pdf"))
			c.Data(http.StatusOK, "application/pdf", data)
		})

		studio.POST("/imports", func(c *gin.Context) {
			file, err := c.FormFile("file")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
				return
			}
			maxBytes := int64(state.config.Studio.MaxImportSizeMegabyte) << 20
			if file.Size > maxBytes {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document too large"})
				return
			}
			src, err := file.Open()
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			defer func() { _ = src.Close() }()
			data, err := io.ReadAll(src)
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			result, err := state.studioService.Import(c.Request.Context(), data)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "document could not be read"})
				return
			}
			c.JSON(http.StatusOK, result)
		})
	}
}
