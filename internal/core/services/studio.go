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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
	"github.com/pdiazg46-design/Festival-app/internal/core/studio"
	"github.com/pdiazg46-design/Festival-app/internal/core/workflow"
	"github.com/pdiazg46-design/Festival-app/internal/pdf"
	"github.com/pdiazg46-design/Festival-app/internal/store"
)

// ErrProjectNotFound is returned when a project id does not exist in the
// store. Handlers map it to a 404.
var ErrProjectNotFound = errors.New("project not found")

// StudioService owns the project life cycle: generation from script text,
// persistence, PDF export, and import of previously exported documents.
// Every mutation is written through to the store so the studio survives a
// restart with its last project intact.
type StudioService struct {
	store    *store.ProjectStore
	exporter *pdf.Exporter
	importer *workflow.ImportWorkflow
	logger   *slog.Logger
}

// NewStudioService wires the service against the project store. A nil
// logger falls back to the default slog logger.
func NewStudioService(projectStore *store.ProjectStore, logger *slog.Logger) *StudioService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudioService{
		store:    projectStore,
		exporter: pdf.NewExporter(),
		importer: workflow.NewImportWorkflow(pdf.NewExtractor()),
		logger:   logger,
	}
}

// Generate builds a project from the script text and persists it. The new
// project becomes the current one. A non-empty vision overrides the
// generator's visual references.
func (s *StudioService) Generate(input, vision string, params model.GenerationParams) (*model.Project, error) {
	project := studio.GenerateProject(input, params)
	if vision != "" {
		project.VisualRefs = vision
	}
	if err := s.store.Save(project); err != nil {
		return nil, fmt.Errorf("saving generated project: %w", err)
	}
	s.logger.Info("generated project", "id", project.Id, "title", project.Title, "shots", len(project.Shots))
	return project, nil
}

// Get loads one project by id.
func (s *StudioService) Get(id string) (*model.Project, error) {
	project, err := s.store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	return project, err
}

// Current loads the most recently saved project.
func (s *StudioService) Current() (*model.Project, error) {
	project, err := s.store.Current()
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	return project, err
}

// Save persists an edited project. Scene and display numbers are rederived
// from list order before writing, so a reordered or extended shot list
// always stores consistent numbering. The saved project becomes the
// current one.
func (s *StudioService) Save(project *model.Project) (*model.Project, error) {
	if project == nil {
		return nil, errors.New("project is required")
	}
	project.Shots = studio.Renumber(project.Shots)
	if err := s.store.Save(project); err != nil {
		return nil, fmt.Errorf("saving project: %w", err)
	}
	return project, nil
}

// Delete removes a project. Deleting a missing project is not an error.
func (s *StudioService) Delete(id string) error {
	return s.store.Delete(id)
}

// List returns every stored project.
func (s *StudioService) List() ([]*model.Project, error) {
	return s.store.List()
}

// Export renders the project as a shot-list PDF with the full project
// state embedded in an invisible text layer.
func (s *StudioService) Export(id string) ([]byte, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.Export(project)
	if err != nil {
		return nil, fmt.Errorf("exporting project %s: %w", id, err)
	}
	return data, nil
}

// Import runs an uploaded document through the import pipeline. A document
// without a payload, or with a damaged one, still produces a result with
// its visible text and Restored set to false; only documents the pipeline
// cannot read at all fail. A restored project is persisted and becomes the
// current one.
func (s *StudioService) Import(ctx context.Context, data []byte) (*model.ImportResult, error) {
	result, err := s.importer.Run(ctx, data)
	if err != nil {
		return nil, err
	}
	if result.Restored {
		if err := s.store.Save(result.Project); err != nil {
			return nil, fmt.Errorf("saving imported project: %w", err)
		}
		s.logger.Info("restored project from document", "id", result.Project.Id, "title", result.Project.Title)
	}
	return result, nil
}
