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

// Package pdf renders studio projects as shot-list documents and extracts
// text back out of uploaded ones. It is the only package that touches a PDF
// library; the state payload format itself lives in the document package.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiazg46-design/Festival-app/internal/core/document"
	"github.com/pdiazg46-design/Festival-app/internal/core/model"
)

// Landscape A4 is 297x210 mm.
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 10.0
	textLeft     = 14.0
	rowHeight    = 35.0
	headerHeight = 8.0
)

var tableColumns = []struct {
	title string
	width float64
}{
	{"ID", 8},
	{"Sc", 8},
	{"Time", 15},
	{"Type", 20},
	{"Lens", 12},
	{"Action", 30},
	{"Description Shot", 30},
	{"Audio/SFX", 20},
	{"Props", 15},
	{"Detail", 15},
	{"Actors", 15},
	{"Notes", 20},
	{"Storyboard / Sketch", 45},
}

// Exporter renders a project into a shot-list PDF: a title block, the
// logline, a director's note, the shot table with a drawing column, and a
// final state page carrying the encoded project in white text at the
// smallest font the format allows. The state page text is percent-encoded
// ASCII, so it survives the document's single-byte text encoding intact.
type Exporter struct {
	// DirectorNote is printed in the context block under the logline.
	DirectorNote string
}

// NewExporter returns an Exporter with the default director's note.
func NewExporter() *Exporter {
	return &Exporter{DirectorNote: "Generated by Desfoga Studio."}
}

// Export renders the project and returns the document bytes.
func (e *Exporter) Export(project *model.Project) ([]byte, error) {
	payload, err := document.Encode(project)
	if err != nil {
		return nil, fmt.Errorf("encoding project state: %w", err)
	}

	doc := gofpdf.New("L", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(textLeft, 12)
	doc.CellFormat(0, 10, tr(project.Title), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "I", 12)
	doc.SetTextColor(100, 100, 100)
	doc.SetXY(textLeft, 26)
	doc.MultiCell(260, 5, tr(project.Logline), "", "L", false)

	y := doc.GetY() + 8
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(textLeft, y)
	doc.CellFormat(0, 5, "DIRECTOR'S NOTE / CONTEXT:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "I", 10)
	doc.SetTextColor(80, 80, 80)
	doc.SetX(textLeft)
	doc.MultiCell(260, 4, tr(e.DirectorNote), "", "L", false)

	e.renderTable(doc, tr, project)
	e.renderStatePage(doc, payload)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) renderTable(doc *gofpdf.Fpdf, tr func(string) string, project *model.Project) {
	y := doc.GetY() + 8
	e.renderTableHeader(doc, y)
	y += headerHeight

	for i, shot := range project.Shots {
		if y+rowHeight > pageHeight-marginLeft {
			doc.AddPage()
			y = marginLeft
			e.renderTableHeader(doc, y)
			y += headerHeight
		}
		e.renderRow(doc, tr, shot, i, y)
		y += rowHeight
	}
	doc.SetY(y)
}

func (e *Exporter) renderTableHeader(doc *gofpdf.Fpdf, y float64) {
	doc.SetFont("Helvetica", "B", 7)
	doc.SetTextColor(255, 255, 255)
	doc.SetFillColor(245, 158, 11)
	doc.SetXY(marginLeft, y)
	for _, col := range tableColumns {
		doc.CellFormat(col.width, headerHeight, col.title, "1", 0, "C", true, 0, "")
	}
}

func (e *Exporter) renderRow(doc *gofpdf.Fpdf, tr func(string) string, shot model.Shot, index int, y float64) {
	values := []string{
		strconv.Itoa(shot.DisplayId),
		strconv.Itoa(shot.Scene),
		shot.Timestamp,
		shot.ShotType,
		shot.Lens,
		shot.Subject,
		shot.DescriptionDetail,
		shot.AudioNotes,
		shot.Props,
		shot.DetailShot,
		shot.ActorNotes,
		shot.DirectorNote,
		"",
	}

	doc.SetFont("Helvetica", "", 7)
	doc.SetTextColor(0, 0, 0)
	fill := index%2 == 1
	doc.SetFillColor(250, 250, 250)

	x := marginLeft
	for i, col := range tableColumns {
		doc.SetXY(x, y)
		doc.CellFormat(col.width, rowHeight, "", "1", 0, "L", fill, 0, "")
		if values[i] != "" {
			doc.SetXY(x+1, y+2)
			doc.MultiCell(col.width-2, 3, tr(values[i]), "", "L", false)
		}
		x += col.width
	}

	// The last column doubles as the storyboard frame; drop the sketch into
	// it when the shot carries one.
	if shot.Sketch != "" {
		e.placeSketch(doc, shot, index, x-tableColumns[len(tableColumns)-1].width, y)
	}
}

// placeSketch decodes a base64 data URL and draws it inside the storyboard
// cell. Undecodable sketches leave the cell blank rather than failing the
// whole export.
func (e *Exporter) placeSketch(doc *gofpdf.Fpdf, shot model.Shot, index int, x, y float64) {
	comma := strings.IndexByte(shot.Sketch, ',')
	if !strings.HasPrefix(shot.Sketch, "data:image/") || comma < 0 {
		return
	}
	imageType := "PNG"
	if strings.Contains(shot.Sketch[:comma], "jpeg") || strings.Contains(shot.Sketch[:comma], "jpg") {
		imageType = "JPG"
	}
	raw, err := base64.StdEncoding.DecodeString(shot.Sketch[comma+1:])
	if err != nil {
		return
	}

	name := fmt.Sprintf("sketch-%d-%d", index, shot.DisplayId)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	if doc.Err() {
		doc.ClearError()
		return
	}
	width := tableColumns[len(tableColumns)-1].width - 4
	doc.ImageOptions(name, x+2, y+2, width, rowHeight-4, false, opts, 0, "")
}

// renderStatePage appends the machine-readable page: white text at the
// minimum size on its own page, invisible to a reader but present in the
// text layer for the import pipeline.
func (e *Exporter) renderStatePage(doc *gofpdf.Fpdf, payload string) {
	doc.AddPage()
	doc.SetFont("Helvetica", "", 2)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(marginLeft, marginLeft)
	doc.MultiCell(pageWidth-2*marginLeft, 1, payload, "", "L", false)
}
