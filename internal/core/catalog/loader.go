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

package catalog

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

// Loader fetches the festival dataset from a published spreadsheet CSV
// export, falling back to the bundled JSON dataset when the remote source
// is unreachable or unparseable. Requests to the remote source are rate
// limited so catalog refreshes cannot hammer the sheet endpoint.
type Loader struct {
	client       *http.Client
	limiter      *rate.Limiter
	sheetURL     string
	fallbackPath string
	logger       *slog.Logger
}

// NewLoader wires a loader. A nil client uses http.DefaultClient.
func NewLoader(client *http.Client, sheetURL, fallbackPath string, requestsPerSecond float64, logger *slog.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		client:       client,
		limiter:      rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		sheetURL:     sheetURL,
		fallbackPath: fallbackPath,
		logger:       logger,
	}
}

// Load returns the festival dataset. The remote sheet wins when it is
// reachable; otherwise the bundled dataset is served and the failure is
// logged rather than propagated, because a stale catalog beats no catalog.
func (l *Loader) Load(ctx context.Context) ([]model.Festival, error) {
	festivals, err := l.loadRemote(ctx)
	if err == nil {
		l.logger.InfoContext(ctx, "festival catalog loaded from sheet",
			"count", len(festivals), "url", l.sheetURL)
		return festivals, nil
	}
	l.logger.WarnContext(ctx, "sheet fetch failed, using bundled dataset",
		"error", err.Error(), "fallback", l.fallbackPath)

	festivals, fbErr := l.loadFallback()
	if fbErr != nil {
		return nil, fmt.Errorf("sheet fetch failed (%v) and fallback failed: %w", err, fbErr)
	}
	return festivals, nil
}

func (l *Loader) loadRemote(ctx context.Context) ([]model.Festival, error) {
	if l.sheetURL == "" {
		return nil, fmt.Errorf("no sheet url configured")
	}
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.sheetURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet returned status %d", resp.StatusCode)
	}
	return ParseCSV(resp.Body)
}

func (l *Loader) loadFallback() ([]model.Festival, error) {
	raw, err := os.ReadFile(l.fallbackPath)
	if err != nil {
		return nil, err
	}
	var festivals []model.Festival
	if err := json.Unmarshal(raw, &festivals); err != nil {
		return nil, fmt.Errorf("parsing bundled dataset: %w", err)
	}
	return festivals, nil
}

// ParseCSV reads a header-keyed CSV export into festival records. Column
// names are looked up with bilingual fallbacks because the sheet has been
// maintained in both languages over time. Rows without an id and name are
// skipped. Winners come from a winners_json column holding a JSON array;
// rows without one get a single placeholder winner built from the flat
// winner columns, so every sheet-sourced festival stays eligible for
// scoring.
func ParseCSV(r io.Reader) ([]model.Festival, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	col := func(row []string, names ...string) string {
		for _, name := range names {
			if i, ok := index[name]; ok && i < len(row) {
				if v := strings.TrimSpace(row[i]); v != "" {
					return v
				}
			}
		}
		return ""
	}

	var festivals []model.Festival
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		fest := model.Festival{
			Id:       col(row, "id", "ID"),
			Name:     col(row, "name", "Nombre"),
			Location: col(row, "location", "Ubicación"),
			Region:   col(row, "region", "Región"),
			Type:     col(row, "type", "Tipo"),
			Dates:    col(row, "dates", "Fechas"),
			Status:   col(row, "status", "Estado"),
			Fee:      col(row, "fee", "Costo"),
			Description: model.Description{
				EN: col(row, "description_en", "Descripción EN"),
				ES: col(row, "description_es", "Descripción ES"),
			},
		}
		if fest.Id == "" && fest.Name == "" {
			continue
		}
		if fest.Fee == "" {
			fest.Fee = "0"
		}

		if rawWinners := col(row, "winners_json"); rawWinners != "" {
			if err := json.Unmarshal([]byte(rawWinners), &fest.Winners); err != nil {
				fest.Winners = []model.Winner{placeholderWinner(col, row)}
			}
		} else {
			fest.Winners = []model.Winner{placeholderWinner(col, row)}
		}

		festivals = append(festivals, fest)
	}
	return festivals, nil
}

func placeholderWinner(col func([]string, ...string) string, row []string) model.Winner {
	title := col(row, "winner_title", "Ganador")
	if title == "" {
		title = "Por anunciar"
	}
	themeEN := col(row, "winner_theme_en", "Tema EN")
	if themeEN == "" {
		themeEN = "TBD"
	}
	themeES := col(row, "winner_theme_es", "Tema ES")
	if themeES == "" {
		themeES = "TBD"
	}
	return model.Winner{
		Year:     2024,
		Title:    title,
		Director: "TBD",
		Theme:    model.NewLocalizedTheme(map[string]string{"en": themeEN, "es": themeES}),
	}
}
