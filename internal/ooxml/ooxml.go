// Package ooxml holds the Open Packaging Conventions plumbing shared by the
// DOCX writer and reader: namespaces, relationship and content-type parts,
// and zip helpers.
package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// Common OOXML namespaces.
const (
	NSRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"

	NSWordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NSRelDoc           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	NSCoreProperties     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	NSExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	NSDCElements         = "http://purl.org/dc/elements/1.1/"
	NSDCTerms            = "http://purl.org/dc/terms/"
	NSDCMIType           = "http://purl.org/dc/dcmitype/"
	NSXSI                = "http://www.w3.org/2001/XMLSchema-instance"
)

// Relationship types.
const (
	RelTypeOfficeDocument     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeCoreProperties     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelTypeStyles             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeNumbering          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
)

// Content types.
const (
	ContentTypeRelationships      = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML                = "application/xml"
	ContentTypeDocumentMain       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeStyles             = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ContentTypeNumbering          = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ContentTypeCoreProperties     = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeExtendedProperties = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// MIMETypeDocx is the MIME type of a WordprocessingML package.
const MIMETypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Relationship represents an OOXML relationship.
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships is the root element for .rels files.
type Relationships struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Xmlns         string         `xml:"xmlns,attr"`
	Relationships []Relationship `xml:"Relationship"`
}

// NewRelationships returns an empty .rels part.
func NewRelationships() *Relationships {
	return &Relationships{Xmlns: NSRelationships}
}

// Add appends a relationship with the next free rId and returns that ID.
func (r *Relationships) Add(relType, target string) string {
	id := fmt.Sprintf("rId%d", len(r.Relationships)+1)
	r.Relationships = append(r.Relationships, Relationship{
		ID:     id,
		Type:   relType,
		Target: target,
	})
	return id
}

// ContentTypeDefault maps a file extension to a content type.
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride maps a single part name to a content type.
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypes is the root element of [Content_Types].xml.
type ContentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Xmlns     string                `xml:"xmlns,attr"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// NewContentTypes returns a [Content_Types].xml part with the rels and xml
// defaults every package needs.
func NewContentTypes() *ContentTypes {
	return &ContentTypes{
		Xmlns: NSContentTypes,
		Defaults: []ContentTypeDefault{
			{Extension: "rels", ContentType: ContentTypeRelationships},
			{Extension: "xml", ContentType: ContentTypeXML},
		},
	}
}

// Override registers a content type for the given part (e.g. "word/document.xml").
func (c *ContentTypes) Override(partName, contentType string) {
	c.Overrides = append(c.Overrides, ContentTypeOverride{
		PartName:    "/" + partName,
		ContentType: contentType,
	})
}

// ParseRelationshipsFromReader parses rels from a zip.Reader. A missing part
// yields an empty map.
func ParseRelationshipsFromReader(zr *zip.Reader, relsPath string) (map[string]Relationship, error) {
	for _, f := range zr.File {
		if f.Name == relsPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return decodeRels(rc)
		}
	}
	return make(map[string]Relationship), nil
}

func decodeRels(r io.Reader) (map[string]Relationship, error) {
	var rels Relationships
	if err := xml.NewDecoder(r).Decode(&rels); err != nil {
		return nil, fmt.Errorf("decode relationships: %w", err)
	}
	result := make(map[string]Relationship, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		result[rel.ID] = rel
	}
	return result, nil
}

// ReadFileFromZip reads a file from a zip archive.
func ReadFileFromZip(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file %q not found in ZIP", name)
}

// WriteXMLPart marshals v as a standalone XML part into the zip writer.
func WriteXMLPart(zw *zip.Writer, name string, v any) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	if err := xml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode part %s: %w", name, err)
	}
	return nil
}

// WriteRawPart writes pre-rendered XML into the zip writer.
func WriteRawPart(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}

// RelsPathFor returns the .rels path for a given file in the ZIP.
func RelsPathFor(filePath string) string {
	dir := path.Dir(filePath)
	base := path.Base(filePath)
	if dir == "." {
		return "_rels/" + base + ".rels"
	}
	return dir + "/_rels/" + base + ".rels"
}

// ResolveTarget resolves a relative target path against a base path.
func ResolveTarget(basePath, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	dir := path.Dir(basePath)
	return path.Join(dir, target)
}

// RelativeTarget returns target relative to the directory of the part that
// owns the relationship, as .rels entries expect.
func RelativeTarget(ownerPart, target string) string {
	dir := path.Dir(ownerPart)
	if dir == "." {
		return target
	}
	prefix := dir + "/"
	if rel, ok := strings.CutPrefix(target, prefix); ok && rel != "" {
		return rel
	}
	return "/" + target
}
