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

package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	project := model.GetExampleProject()

	payload, err := Encode(project)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload, MarkerStart))
	assert.True(t, strings.HasSuffix(payload, MarkerEnd))

	restored, ok := Decode(payload)
	require.True(t, ok)
	assert.Equal(t, project, restored)
}

func TestEncodePayloadBodyHasNoWhitespaceOrMarkers(t *testing.T) {
	project := model.GetExampleProject()
	project.Logline = "spaces, tabs\tand\nnewlines @@ plus marker-ish text ::STATE::"

	payload, err := Encode(project)
	require.NoError(t, err)

	body := strings.TrimSuffix(strings.TrimPrefix(payload, MarkerStart), MarkerEnd)
	assert.NotContains(t, body, " ")
	assert.NotContains(t, body, "\n")
	assert.NotContains(t, body, "\t")
	assert.NotContains(t, body, "@")
}

// Extraction from a rendered page reintroduces line breaks at arbitrary
// byte positions, including inside the markers themselves.
func TestDecodeSurvivesLineWrapping(t *testing.T) {
	project := model.GetExampleProject()
	payload, err := Encode(project)
	require.NoError(t, err)

	var wrapped strings.Builder
	for i, r := range payload {
		wrapped.WriteRune(r)
		if i%17 == 0 {
			wrapped.WriteString("\n ")
		}
	}
	text := "Shot List\nSILENT MODE\n" + wrapped.String() + "\npage 2 of 2"

	restored, ok := Decode(text)
	require.True(t, ok)
	assert.Equal(t, project, restored)
}

func TestDecodeNonASCIIContent(t *testing.T) {
	project := model.NewProject("ñandú")
	project.Title = `PROYECTO: "NIÑO" / 夜の映画`
	project.Logline = "backslash \\ and braces {} and quotes \"'"
	project.CreateDate = project.CreateDate.Truncate(0)

	payload, err := Encode(project)
	require.NoError(t, err)

	restored, ok := Decode(payload)
	require.True(t, ok)
	assert.Equal(t, project.Title, restored.Title)
	assert.Equal(t, project.Logline, restored.Logline)
	assert.True(t, project.CreateDate.Equal(restored.CreateDate))
}

func TestDecodeMissingOrBrokenPayload(t *testing.T) {
	cases := map[string]string{
		"no markers at all":  "just the visible shot list text",
		"empty text":         "",
		"start marker only":  MarkerStart + "abc",
		"end marker only":    "abc" + MarkerEnd,
		"end before start":   MarkerEnd + "abc" + MarkerStart,
		"bad escape in body": MarkerStart + "%zz" + MarkerEnd,
		"body is not json":   MarkerStart + "notjson" + MarkerEnd,
		"truncated json":     MarkerStart + "%7B%22id%22%3A" + MarkerEnd,
	}
	for name, text := range cases {
		project, ok := Decode(text)
		assert.False(t, ok, name)
		assert.Nil(t, project, name)
	}
}

func TestVisibleTextStripsPayload(t *testing.T) {
	project := model.GetExampleProject()
	payload, err := Encode(project)
	require.NoError(t, err)

	// Payload wrapped across lines between two visible sections, with
	// non-ASCII text before the markers.
	var wrapped strings.Builder
	for i := 0; i < len(payload); i += 20 {
		end := i + 20
		if end > len(payload) {
			end = len(payload)
		}
		wrapped.WriteString(payload[i:end])
		wrapped.WriteString("\n")
	}
	text := "Guión: NIÑO\n" + wrapped.String() + "\npage 2"

	visible := VisibleText(text)
	assert.Equal(t, "Guión: NIÑO\npage 2", visible)
	assert.NotContains(t, visible, "DESFOGA")
}

// Extracted PDF text is not guaranteed to be valid UTF-8. Invalid bytes,
// trailing or embedded, must pass through without panicking, with or
// without a payload present.
func TestVisibleTextInvalidUTF8Input(t *testing.T) {
	assert.Equal(t, "shot list\xff", VisibleText("shot list\xff"))
	assert.Equal(t, "a\xffb \xfe\xfdc", VisibleText("a\xffb \xfe\xfdc"))

	payload, err := Encode(model.GetExampleProject())
	require.NoError(t, err)
	visible := VisibleText("t\xfftle\n" + payload + "\n\xfeage 2")
	assert.Equal(t, "t\xfftle\n\xfeage 2", visible)
	assert.NotContains(t, visible, "DESFOGA")
}

func TestDecodeInvalidUTF8WithoutPayload(t *testing.T) {
	project, ok := Decode("garbled \xff\xfe text layer")
	assert.False(t, ok)
	assert.Nil(t, project)
}

func TestVisibleTextWithoutPayloadIsUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", VisibleText("plain text"))
	partial := "text " + MarkerStart + " no end marker"
	assert.Equal(t, partial, VisibleText(partial))
}

func TestDecodeEmptyProject(t *testing.T) {
	project := model.NewProject("empty")
	payload, err := Encode(project)
	require.NoError(t, err)

	restored, ok := Decode(payload)
	require.True(t, ok)
	assert.Equal(t, project.Id, restored.Id)
	assert.Empty(t, restored.Shots)
	assert.Empty(t, restored.Beats)
}
