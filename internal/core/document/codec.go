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

// Package document implements the state payload format embedded in exported
// documents. The payload is the full project serialized as JSON, query
// escaped, and wrapped in marker strings. Query escaping guarantees the
// payload body contains no literal whitespace and no '@', so renderers that
// wrap lines or insert page breaks cannot corrupt it and the marker strings
// cannot occur inside a payload.
//
// The marker literals are a wire contract shared with every document this
// application has ever exported. Do not change them.
package document

import (
	"encoding/json"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

const (
	// MarkerStart opens an embedded state payload.
	MarkerStart = "@@DESFOGA::STATE::BEGIN@@"
	// MarkerEnd closes an embedded state payload.
	MarkerEnd = "@@DESFOGA::STATE::END@@"
)

// Encode serializes a project into a marker-delimited payload string ready
// to be written into a document's text layer.
func Encode(project *model.Project) (string, error) {
	raw, err := json.Marshal(project)
	if err != nil {
		return "", err
	}
	return MarkerStart + url.QueryEscape(string(raw)) + MarkerEnd, nil
}

// VisibleText returns fullText with the embedded payload region removed, so
// an import can present a clean text layer to the user. The marker scan is
// whitespace-insensitive, like Decode's, and maps the match back onto the
// original text. Text without a complete payload is returned unchanged.
// Extracted text is not guaranteed to be valid UTF-8; invalid bytes are
// carried through untouched.
func VisibleText(fullText string) string {
	var compact []byte
	// Original byte offset of every byte kept in the compact form.
	var origin []int
	for i := 0; i < len(fullText); {
		r, w := utf8.DecodeRuneInString(fullText[i:])
		if !unicode.IsSpace(r) {
			// w is the decoded width, not utf8.RuneLen(r): for invalid
			// input r is RuneError but only w bytes were consumed.
			for j := 0; j < w; j++ {
				compact = append(compact, fullText[i+j])
				origin = append(origin, i+j)
			}
		}
		i += w
	}

	cs := strings.Index(string(compact), MarkerStart)
	if cs < 0 {
		return fullText
	}
	ce := strings.Index(string(compact[cs+len(MarkerStart):]), MarkerEnd)
	if ce < 0 {
		return fullText
	}
	// One past the closing marker, still in compact offsets.
	endCompact := cs + len(MarkerStart) + ce + len(MarkerEnd)

	var tail string
	if endCompact < len(origin) {
		tail = fullText[origin[endCompact]:]
	}
	return strings.TrimSpace(fullText[:origin[cs]] + tail)
}

// Decode scans extracted document text for an embedded state payload and
// restores the project it carries. The restore is all or nothing: any
// defect between the markers (bad escaping, truncated or invalid JSON)
// yields (nil, false) rather than a partial project. Text without both
// markers, in order, also yields (nil, false).
//
// All whitespace is removed before scanning, so payloads survive whatever
// line wrapping, page breaks, or indentation the document format introduced
// between extraction and here.
func Decode(fullText string) (*model.Project, bool) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, fullText)

	start := strings.Index(compact, MarkerStart)
	if start < 0 {
		return nil, false
	}
	rest := compact[start+len(MarkerStart):]
	end := strings.Index(rest, MarkerEnd)
	if end < 0 {
		return nil, false
	}

	raw, err := url.QueryUnescape(rest[:end])
	if err != nil {
		return nil, false
	}
	var project model.Project
	if err := json.Unmarshal([]byte(raw), &project); err != nil {
		return nil, false
	}
	return &project, true
}
