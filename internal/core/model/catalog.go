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

// Package model defines the core data structures for the application.
// This file contains the festival catalog records: immutable reference data
// supplied by an external loader (a remote sheet export or the bundled JSON
// dataset). The core only ever reads these structs; nothing in the
// application mutates a Festival after loading.
package model

import (
	"encoding/json"
	"fmt"
)

// ThemeKind discriminates the two shapes a winner theme can arrive in.
// Source datasets are inconsistent: some rows carry a plain string, others a
// map of locale codes to translated strings. The loader resolves the shape
// once into this tagged variant so downstream code never re-inspects it.
type ThemeKind int

const (
	// ThemePlain marks a theme that is a single untranslated string.
	ThemePlain ThemeKind = iota
	// ThemeLocalized marks a theme carrying per-locale translations.
	ThemeLocalized
)

// Theme is the tagged variant for a winner's theme. Exactly one of Text or
// Locales is meaningful, selected by Kind.
type Theme struct {
	Kind    ThemeKind
	Text    string
	Locales map[string]string
}

// NewPlainTheme builds a Theme from a single string.
func NewPlainTheme(text string) Theme {
	return Theme{Kind: ThemePlain, Text: text}
}

// NewLocalizedTheme builds a Theme from a locale map.
func NewLocalizedTheme(locales map[string]string) Theme {
	return Theme{Kind: ThemeLocalized, Locales: locales}
}

// Resolve returns the display string for the theme. For localized themes it
// prefers the requested locale, then English, then any available entry, so a
// sparse translation map still produces something readable.
func (t Theme) Resolve(locale string) string {
	if t.Kind == ThemePlain {
		return t.Text
	}
	if v, ok := t.Locales[locale]; ok && v != "" {
		return v
	}
	if v, ok := t.Locales["en"]; ok && v != "" {
		return v
	}
	for _, v := range t.Locales {
		if v != "" {
			return v
		}
	}
	return ""
}

// MarshalJSON emits the theme in its source shape: a bare string for plain
// themes and a locale object for localized ones. Keeping the wire shape
// identical to the input means a loaded dataset round-trips byte-compatibly.
func (t Theme) MarshalJSON() ([]byte, error) {
	if t.Kind == ThemePlain {
		return json.Marshal(t.Text)
	}
	return json.Marshal(t.Locales)
}

// UnmarshalJSON accepts either shape and resolves the tag. Any other JSON
// type is a data error surfaced to the loader, which excludes the record
// rather than failing the whole dataset.
func (t *Theme) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*t = NewPlainTheme(text)
		return nil
	}
	var locales map[string]string
	if err := json.Unmarshal(data, &locales); err == nil {
		*t = NewLocalizedTheme(locales)
		return nil
	}
	return fmt.Errorf("theme is neither a string nor a locale map: %s", string(data))
}

// Winner is the representative prior-winner record attached to a festival.
// The affinity engine reads only the title and theme of the first winner; the
// remaining fields feed the catalog browser and the stats endpoint.
type Winner struct {
	Year     int    `json:"year"`
	Title    string `json:"title"`
	Director string `json:"director,omitempty"`
	Theme    Theme  `json:"theme"`
}

// Description holds the bilingual festival blurb from the source dataset.
type Description struct {
	EN string `json:"en"`
	ES string `json:"es"`
}

// Festival is a single catalog entry. The Id is the stable opaque identifier
// used as hash material by the affinity engine; everything else is display
// metadata.
type Festival struct {
	Id          string      `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Region      string      `json:"region"`
	Type        string      `json:"type"`
	Dates       string      `json:"dates"`
	Status      string      `json:"status"`
	Fee         string      `json:"fee"`
	Description Description `json:"description"`
	Winners     []Winner    `json:"winners"`
}

// HasWinners reports whether the festival carries at least one recorded
// winner. Festivals without one have no reference work to build a narrative
// around, so they are excluded from scoring but remain browsable.
func (f *Festival) HasWinners() bool {
	return len(f.Winners) > 0
}

// CatalogStats is the aggregate view served by the stats endpoint.
type CatalogStats struct {
	TotalFestivals int            `json:"total_festivals"`
	WithWinners    int            `json:"with_winners"`
	ByRegion       map[string]int `json:"by_region"`
	ByType         map[string]int `json:"by_type"`
	ThemeCounts    map[string]int `json:"theme_counts"`
	AverageFee     float64        `json:"average_fee"`
}
