package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/nicholasgasior/md2docx-go/internal/ooxml"
)

// Contents is what Read recovers from a package: the body paragraphs, the
// style ID to display name table and the core properties.
type Contents struct {
	Paragraphs []Paragraph
	StyleNames map[string]string
	Properties CoreProperties
}

// StyleName returns the display name of a paragraph's style, falling back to
// the style ID and to "Normal" for unstyled paragraphs.
func (c *Contents) StyleName(p Paragraph) string {
	id := p.Style
	if id == "" {
		id = StyleNormal
	}
	if name, ok := c.StyleNames[id]; ok {
		return name
	}
	return id
}

// ReadFile opens a .docx package from disk and reads it.
func ReadFile(name string) (*Contents, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read DOCX: %w", err)
	}
	return Read(bytes.NewReader(data), int64(len(data)))
}

// Read parses the main document, styles and core properties of a package.
// Paragraph text is the concatenation of its w:t runs with w:tab as '\t'.
func Read(r io.ReaderAt, size int64) (*Contents, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open DOCX ZIP: %w", err)
	}

	mainPart := partDocument
	pkgRels, err := ooxml.ParseRelationshipsFromReader(zr, partPackageRels)
	if err != nil {
		return nil, err
	}
	for _, rel := range pkgRels {
		if rel.Type == ooxml.RelTypeOfficeDocument {
			mainPart = strings.TrimPrefix(rel.Target, "/")
		}
	}

	docData, err := ooxml.ReadFileFromZip(zr, mainPart)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", mainPart, err)
	}
	paragraphs, err := parseParagraphs(docData)
	if err != nil {
		return nil, err
	}

	c := &Contents{
		Paragraphs: paragraphs,
		StyleNames: parseStyleNames(zr, mainPart),
	}
	if data, err := ooxml.ReadFileFromZip(zr, partCore); err == nil {
		c.Properties = parseCoreProperties(data)
	}
	return c, nil
}

func parseParagraphs(data []byte) ([]Paragraph, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var (
		paragraphs []Paragraph
		current    *Paragraph
		text       strings.Builder
		inText     bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				current = &Paragraph{}
				text.Reset()
			case "pStyle":
				if current != nil {
					current.Style = attrValue(t, "val")
				}
			case "t":
				inText = true
			case "tab":
				if current != nil {
					text.WriteByte('\t')
				}
			}
		case xml.CharData:
			if inText && current != nil {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if current != nil {
					current.Text = text.String()
					paragraphs = append(paragraphs, *current)
					current = nil
				}
			}
		}
	}
	return paragraphs, nil
}

// parseStyleNames maps style IDs to names from the styles part the main
// document points at.
func parseStyleNames(zr *zip.Reader, mainPart string) map[string]string {
	names := make(map[string]string)

	stylesPart := path.Join(path.Dir(mainPart), "styles.xml")
	if rels, err := ooxml.ParseRelationshipsFromReader(zr, ooxml.RelsPathFor(mainPart)); err == nil {
		for _, rel := range rels {
			if rel.Type == ooxml.RelTypeStyles {
				stylesPart = ooxml.ResolveTarget(mainPart, rel.Target)
			}
		}
	}

	data, err := ooxml.ReadFileFromZip(zr, stylesPart)
	if err != nil {
		return names
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	var currentStyleID string
	var inStyle bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			local := t.Name.Local
			if local == "style" {
				inStyle = true
				currentStyleID = attrValue(t, "styleId")
			} else if inStyle && local == "name" && currentStyleID != "" {
				names[currentStyleID] = attrValue(t, "val")
			}
		case xml.EndElement:
			if t.Name.Local == "style" {
				inStyle = false
				currentStyleID = ""
			}
		}
	}
	return names
}

type coreRead struct {
	Title       string `xml:"http://purl.org/dc/elements/1.1/ title"`
	Subject     string `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Creator     string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Description string `xml:"http://purl.org/dc/elements/1.1/ description"`
	Keywords    string `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties keywords"`
	Created     string `xml:"http://purl.org/dc/terms/ created"`
	Modified    string `xml:"http://purl.org/dc/terms/ modified"`
}

func parseCoreProperties(data []byte) CoreProperties {
	var raw coreRead
	if err := xml.Unmarshal(data, &raw); err != nil {
		return CoreProperties{}
	}
	p := CoreProperties{
		Title:       raw.Title,
		Subject:     raw.Subject,
		Creator:     raw.Creator,
		Description: raw.Description,
	}
	for _, kw := range strings.Split(raw.Keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			p.Keywords = append(p.Keywords, kw)
		}
	}
	p.Created, _ = time.Parse(time.RFC3339, strings.TrimSpace(raw.Created))
	p.Modified, _ = time.Parse(time.RFC3339, strings.TrimSpace(raw.Modified))
	return p
}

func attrValue(t xml.StartElement, local string) string {
	for _, attr := range t.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
