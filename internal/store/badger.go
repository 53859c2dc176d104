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

// Package store persists studio projects in an embedded Badger database.
// Projects are small JSON documents, so values are stored inline and every
// mutation is a single transaction.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

// ErrNotFound is returned when no project exists for the requested key.
var ErrNotFound = errors.New("project not found")

const (
	projectPrefix = "project:"
	currentKey    = "meta:current-project"
)

// ProjectStore is the embedded project database. It is safe for concurrent
// use; Badger serializes conflicting writes internally.
type ProjectStore struct {
	db *badger.DB
}

// Open opens (or creates) the database at path. An empty path opens an
// in-memory database, used by the test runtime so suites never touch disk.
func Open(path string) (*ProjectStore, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	// Badger's own logger writes unstructured lines; the application logs
	// its storage activity itself.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening project store: %w", err)
	}
	return &ProjectStore{db: db}, nil
}

// Save writes the project and marks it as the current one. The current
// pointer always tracks the most recently saved project, which is what the
// studio reopens on launch.
func (s *ProjectStore) Save(project *model.Project) error {
	if project == nil || project.Id == "" {
		return errors.New("project must have an id")
	}
	raw, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(projectPrefix+project.Id), raw); err != nil {
			return err
		}
		return txn.Set([]byte(currentKey), []byte(project.Id))
	})
}

// Get loads one project by id.
func (s *ProjectStore) Get(id string) (*model.Project, error) {
	var project *model.Project
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(projectPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			project = &model.Project{}
			return json.Unmarshal(val, project)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Current loads the most recently saved project. A dangling current pointer
// (the project it names was deleted) reports ErrNotFound.
func (s *ProjectStore) Current() (*model.Project, error) {
	var id string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(currentKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a project. Deleting the current project clears the current
// pointer as well. Deleting a missing project is not an error.
func (s *ProjectStore) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(projectPrefix + id)); err != nil {
			return err
		}
		item, err := txn.Get([]byte(currentKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		var current string
		if err := item.Value(func(val []byte) error {
			current = string(val)
			return nil
		}); err != nil {
			return err
		}
		if current == id {
			return txn.Delete([]byte(currentKey))
		}
		return nil
	})
}

// List returns every stored project in key order.
func (s *ProjectStore) List() ([]*model.Project, error) {
	var projects []*model.Project
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(projectPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				p := &model.Project{}
				if err := json.Unmarshal(val, p); err != nil {
					return err
				}
				projects = append(projects, p)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Close flushes and closes the database.
func (s *ProjectStore) Close() error {
	return s.db.Close()
}
