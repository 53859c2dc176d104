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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

const sampleCSV = `id,name,location,Región,type,dates,status,fee,description_en,Descripción ES,winners_json,winner_title,winner_theme_en,Tema ES
sitges,Sitges,"Sitges, Catalonia",europe,genre,October,open,45,Genre cinema.,Cine de género.,"[{""year"":2024,""title"":""La Casa Vacía"",""director"":""M. Ferrer"",""theme"":{""en"":""Isolation"",""es"":""Aislamiento""}}]",,,
morbido,Mórbido,"Mexico City",latam,genre,November,open,,,Fantástico.,,La Region Salvaje,Body Horror,Horror Corporal
,,,,,,,,,,,,,
`

func TestParseCSVBilingualHeaders(t *testing.T) {
	festivals, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, festivals, 2, "blank rows are skipped")

	sitges := festivals[0]
	assert.Equal(t, "sitges", sitges.Id)
	assert.Equal(t, "europe", sitges.Region, "Spanish header column is picked up")
	assert.Equal(t, "Cine de género.", sitges.Description.ES)
	require.Len(t, sitges.Winners, 1)
	assert.Equal(t, "La Casa Vacía", sitges.Winners[0].Title)
	assert.Equal(t, "Isolation", sitges.Winners[0].Theme.Resolve("en"))
}

func TestParseCSVPlaceholderWinner(t *testing.T) {
	festivals, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	morbido := festivals[1]
	assert.Equal(t, "0", morbido.Fee, "missing fee defaults to zero")
	require.Len(t, morbido.Winners, 1, "rows without winners_json get a placeholder")
	assert.Equal(t, "La Region Salvaje", morbido.Winners[0].Title)
	assert.Equal(t, "TBD", morbido.Winners[0].Director)
	assert.Equal(t, "Body Horror", morbido.Winners[0].Theme.Resolve("en"))
	assert.Equal(t, "Horror Corporal", morbido.Winners[0].Theme.Resolve("es"))
}

func TestLoaderRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	loader := NewLoader(srv.Client(), srv.URL, "", 10, nil)
	festivals, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, festivals, 2)
}

func TestLoaderFallsBackToBundledDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "festivals.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"local","name":"Local Fest","winners":[{"year":2020,"title":"X","theme":"grief"}]}]`), 0o644))

	loader := NewLoader(srv.Client(), srv.URL, path, 10, nil)
	festivals, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, festivals, 1)
	assert.Equal(t, "local", festivals[0].Id)
	assert.Equal(t, "grief", festivals[0].Winners[0].Theme.Resolve("en"))
}

func TestLoaderBothSourcesFail(t *testing.T) {
	loader := NewLoader(nil, "", filepath.Join(t.TempDir(), "missing.json"), 10, nil)

	_, err := loader.Load(context.Background())
	require.Error(t, err)
}

func TestLoaderFallbackRoundTripsThemeShapes(t *testing.T) {
	// Bundled datasets mix plain-string and locale-map themes in one file.
	raw := `[
		{"id":"a","name":"A","winners":[{"year":2021,"title":"T1","theme":"exile"}]},
		{"id":"b","name":"B","winners":[{"year":2022,"title":"T2","theme":{"en":"Exile","es":"Exilio"}}]}
	]`
	path := filepath.Join(t.TempDir(), "festivals.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	loader := NewLoader(nil, "", path, 10, nil)
	festivals, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, festivals, 2)
	assert.Equal(t, model.ThemePlain, festivals[0].Winners[0].Theme.Kind)
	assert.Equal(t, model.ThemeLocalized, festivals[1].Winners[0].Theme.Kind)
}
