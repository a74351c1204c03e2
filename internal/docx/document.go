// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package docx builds WordprocessingML (.docx) packages from a flat sequence
// of styled paragraphs and reads them back for inspection.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nicholasgasior/md2docx-go/internal/ooxml"
)

// Paragraph style IDs defined in the generated styles part.
const (
	StyleNormal     = "Normal"
	StyleTitle      = "Title"
	StyleListBullet = "ListBullet"
)

// MaxHeadingLevel is the deepest heading style the package defines.
const MaxHeadingLevel = 9

// Package part names.
const (
	partContentTypes = "[Content_Types].xml"
	partPackageRels  = "_rels/.rels"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
)

// Paragraph is one block of the document body. Style is a style ID; empty
// means the Normal style.
type Paragraph struct {
	Style string
	Text  string
}

// CoreProperties is the Dublin Core metadata written to docProps/core.xml.
type CoreProperties struct {
	Title       string
	Subject     string
	Creator     string
	Description string
	Keywords    []string
	Created     time.Time
	Modified    time.Time
}

// Document accumulates paragraphs and serializes them as a .docx package.
type Document struct {
	Properties CoreProperties
	paragraphs []Paragraph
}

// New creates an empty document.
func New() *Document {
	now := time.Now().UTC().Truncate(time.Second)
	return &Document{
		Properties: CoreProperties{
			Creator:  "md2docx",
			Created:  now,
			Modified: now,
		},
	}
}

// HeadingStyle returns the style ID used for a heading level. Level 0 is the
// document title.
func HeadingStyle(level int) string {
	if level == 0 {
		return StyleTitle
	}
	return fmt.Sprintf("Heading%d", level)
}

// AddHeading appends a heading paragraph. Level 0 uses the Title style,
// levels 1-9 use Heading1-Heading9.
func (d *Document) AddHeading(text string, level int) error {
	if level < 0 || level > MaxHeadingLevel {
		return fmt.Errorf("heading level %d out of range 0-%d", level, MaxHeadingLevel)
	}
	d.paragraphs = append(d.paragraphs, Paragraph{Style: HeadingStyle(level), Text: text})
	return nil
}

// AddParagraph appends a paragraph with the given style ID.
func (d *Document) AddParagraph(text, style string) {
	d.paragraphs = append(d.paragraphs, Paragraph{Style: style, Text: text})
}

// Paragraphs returns a copy of the accumulated paragraphs.
func (d *Document) Paragraphs() []Paragraph {
	out := make([]Paragraph, len(d.paragraphs))
	copy(out, d.paragraphs)
	return out
}

// Save writes the package to path, creating or truncating the file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// Write serializes the package to w.
//
// [Content_Types].xml and the package rels come first and the main document
// part right after them; content sniffers only look at the leading entries.
func (d *Document) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	ct := ooxml.NewContentTypes()
	ct.Override(partDocument, ooxml.ContentTypeDocumentMain)
	ct.Override(partStyles, ooxml.ContentTypeStyles)
	ct.Override(partNumbering, ooxml.ContentTypeNumbering)
	ct.Override(partCore, ooxml.ContentTypeCoreProperties)
	ct.Override(partApp, ooxml.ContentTypeExtendedProperties)

	pkgRels := ooxml.NewRelationships()
	pkgRels.Add(ooxml.RelTypeOfficeDocument, partDocument)
	pkgRels.Add(ooxml.RelTypeCoreProperties, partCore)
	pkgRels.Add(ooxml.RelTypeExtendedProperties, partApp)

	docRels := ooxml.NewRelationships()
	docRels.Add(ooxml.RelTypeStyles, ooxml.RelativeTarget(partDocument, partStyles))
	docRels.Add(ooxml.RelTypeNumbering, ooxml.RelativeTarget(partDocument, partNumbering))

	steps := []struct {
		name string
		fn   func() error
	}{
		{partContentTypes, func() error { return ooxml.WriteXMLPart(zw, partContentTypes, ct) }},
		{partPackageRels, func() error { return ooxml.WriteXMLPart(zw, partPackageRels, pkgRels) }},
		{partDocument, func() error { return ooxml.WriteXMLPart(zw, partDocument, d.body()) }},
		{ooxml.RelsPathFor(partDocument), func() error {
			return ooxml.WriteXMLPart(zw, ooxml.RelsPathFor(partDocument), docRels)
		}},
		{partStyles, func() error { return ooxml.WriteRawPart(zw, partStyles, stylesXML) }},
		{partNumbering, func() error { return ooxml.WriteRawPart(zw, partNumbering, numberingXML) }},
		{partCore, func() error { return ooxml.WriteXMLPart(zw, partCore, newCoreXML(d.Properties)) }},
		{partApp, func() error { return ooxml.WriteXMLPart(zw, partApp, newAppXML(len(d.paragraphs))) }},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			zw.Close()
			return fmt.Errorf("write DOCX %s: %w", s.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish DOCX: %w", err)
	}
	return nil
}

// WordprocessingML body model. Tags carry the w: prefix literally; the
// namespace is declared once on the root element.

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Paragraphs []wParagraph `xml:"w:p"`
	SectPr     wSectPr      `xml:"w:sectPr"`
}

type wParagraph struct {
	Props *wParagraphProps `xml:"w:pPr,omitempty"`
	Runs  []wRun           `xml:"w:r"`
}

type wParagraphProps struct {
	Style wVal `xml:"w:pStyle"`
}

type wVal struct {
	Val string `xml:"w:val,attr"`
}

type wRun struct {
	Content []any
}

type wText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type wTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

// wSectPr is a US Letter page with one-inch margins.
type wSectPr struct {
	PgSz  wPgSz  `xml:"w:pgSz"`
	PgMar wPgMar `xml:"w:pgMar"`
}

type wPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type wPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

func (d *Document) body() *wDocument {
	doc := &wDocument{
		XmlnsW: ooxml.NSWordprocessingML,
		XmlnsR: ooxml.NSRelDoc,
		Body: wBody{
			Paragraphs: make([]wParagraph, 0, len(d.paragraphs)),
			SectPr: wSectPr{
				PgSz:  wPgSz{W: 12240, H: 15840},
				PgMar: wPgMar{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
			},
		},
	}
	for _, p := range d.paragraphs {
		wp := wParagraph{}
		if p.Style != "" && p.Style != StyleNormal {
			wp.Props = &wParagraphProps{Style: wVal{Val: p.Style}}
		}
		if text := sanitizeText(p.Text); text != "" {
			wp.Runs = []wRun{{Content: runContent(text)}}
		}
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, wp)
	}
	return doc
}

// runContent splits text on tabs into w:t and w:tab elements.
func runContent(text string) []any {
	var content []any
	for i, part := range strings.Split(text, "\t") {
		if i > 0 {
			content = append(content, wTab{})
		}
		if part == "" {
			continue
		}
		t := wText{Value: part}
		if strings.TrimSpace(part) != part {
			t.Space = "preserve"
		}
		content = append(content, t)
	}
	return content
}

// sanitizeText drops runes that XML 1.0 cannot represent.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return r
		case r == '\n' || r == '\r':
			return ' '
		case r < 0x20:
			return -1
		case r >= 0xD800 && r <= 0xDFFF:
			return -1
		case r == 0xFFFE || r == 0xFFFF:
			return -1
		}
		return r
	}, s)
}
