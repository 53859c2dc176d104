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

package store

import (
	"errors"
	"testing"

	"github.com/zeebo/assert"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

func openTestStore(t *testing.T) *ProjectStore {
	t.Helper()
	s, err := Open("")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	project := model.GetExampleProject()

	assert.NoError(t, s.Save(project))

	got, err := s.Get(project.Id)
	assert.NoError(t, err)
	assert.Equal(t, project.Title, got.Title)
	assert.Equal(t, len(project.Shots), len(got.Shots))
}

func TestSaveSetsCurrent(t *testing.T) {
	s := openTestStore(t)

	first := model.NewProject("first")
	first.Title = "FIRST"
	second := model.NewProject("second")
	second.Title = "SECOND"

	assert.NoError(t, s.Save(first))
	assert.NoError(t, s.Save(second))

	current, err := s.Current()
	assert.NoError(t, err)
	assert.Equal(t, "SECOND", current.Title)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteClearsCurrentPointer(t *testing.T) {
	s := openTestStore(t)

	keep := model.NewProject("keep")
	drop := model.NewProject("drop")
	assert.NoError(t, s.Save(keep))
	assert.NoError(t, s.Save(drop))

	assert.NoError(t, s.Delete(drop.Id))

	_, err := s.Get(drop.Id)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Current pointed at the deleted project, so it is gone too.
	_, err = s.Current()
	assert.True(t, errors.Is(err, ErrNotFound))

	// The other project is untouched.
	_, err = s.Get(keep.Id)
	assert.NoError(t, err)
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Delete("never-existed"))
}

func TestList(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		p := model.NewProject(name)
		p.Title = name
		assert.NoError(t, s.Save(p))
	}

	projects, err := s.List()
	assert.NoError(t, err)
	assert.Equal(t, 3, len(projects))
}

func TestSaveRejectsMissingId(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.Save(&model.Project{}))
	assert.Error(t, s.Save(nil))
}
