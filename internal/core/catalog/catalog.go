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

// Package catalog loads and serves the festival reference dataset. The
// catalog is immutable after construction and preserves source order, which
// matters: the affinity engine's stable sort uses catalog order to break
// score ties.
package catalog

import (
	"strconv"
	"strings"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

// Catalog is the in-memory festival dataset.
type Catalog struct {
	festivals []model.Festival
	byId      map[string]int
}

// New builds a catalog from loaded records, keeping their order.
func New(festivals []model.Festival) *Catalog {
	c := &Catalog{
		festivals: festivals,
		byId:      make(map[string]int, len(festivals)),
	}
	for i, f := range festivals {
		c.byId[f.Id] = i
	}
	return c
}

// All returns every festival in source order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []model.Festival {
	return c.festivals
}

// Get looks a festival up by id.
func (c *Catalog) Get(id string) (model.Festival, bool) {
	i, ok := c.byId[id]
	if !ok {
		return model.Festival{}, false
	}
	return c.festivals[i], true
}

// Filter narrows the catalog. String fields match case-insensitively and
// exactly; Theme matches as a case-insensitive substring against every
// winner theme in any locale; MaxFee keeps festivals whose fee parses to a
// number at or under the ceiling. Zero-valued criteria are ignored.
type Filter struct {
	Region string
	Type   string
	Status string
	Theme  string
	MaxFee *float64
}

// Select returns the festivals matching the filter, in source order.
func (c *Catalog) Select(f Filter) []model.Festival {
	out := make([]model.Festival, 0)
	for _, fest := range c.festivals {
		if !matchField(f.Region, fest.Region) ||
			!matchField(f.Type, fest.Type) ||
			!matchField(f.Status, fest.Status) {
			continue
		}
		if f.Theme != "" && !matchTheme(f.Theme, fest) {
			continue
		}
		if f.MaxFee != nil {
			fee, ok := ParseFee(fest.Fee)
			if !ok || fee > *f.MaxFee {
				continue
			}
		}
		out = append(out, fest)
	}
	return out
}

// Stats aggregates the dataset for the dashboard endpoint. Theme counts use
// the English rendering of each winner theme; the fee average covers only
// fees that parse to a number.
func (c *Catalog) Stats() model.CatalogStats {
	stats := model.CatalogStats{
		TotalFestivals: len(c.festivals),
		ByRegion:       make(map[string]int),
		ByType:         make(map[string]int),
		ThemeCounts:    make(map[string]int),
	}

	var feeSum float64
	var feeCount int
	for _, fest := range c.festivals {
		if fest.HasWinners() {
			stats.WithWinners++
		}
		if fest.Region != "" {
			stats.ByRegion[fest.Region]++
		}
		if fest.Type != "" {
			stats.ByType[fest.Type]++
		}
		for _, w := range fest.Winners {
			if theme := w.Theme.Resolve("en"); theme != "" {
				stats.ThemeCounts[theme]++
			}
		}
		if fee, ok := ParseFee(fest.Fee); ok {
			feeSum += fee
			feeCount++
		}
	}
	if feeCount > 0 {
		stats.AverageFee = feeSum / float64(feeCount)
	}
	return stats
}

func matchField(want, have string) bool {
	return want == "" || strings.EqualFold(want, have)
}

func matchTheme(want string, fest model.Festival) bool {
	needle := strings.ToLower(want)
	for _, w := range fest.Winners {
		if strings.Contains(strings.ToLower(w.Theme.Resolve("en")), needle) ||
			strings.Contains(strings.ToLower(w.Theme.Resolve("es")), needle) {
			return true
		}
	}
	return false
}

// ParseFee extracts the numeric part of a free-form fee string such as
// "45", "$45.50", or "45 USD". Strings with no digits, like "Free" or
// "TBD", report ok=false.
func ParseFee(fee string) (float64, bool) {
	var sb strings.Builder
	for _, r := range fee {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
