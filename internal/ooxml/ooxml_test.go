package ooxml

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelsPathFor(t *testing.T) {
	assert.Equal(t, "word/_rels/document.xml.rels", RelsPathFor("word/document.xml"))
	assert.Equal(t, "_rels/root.xml.rels", RelsPathFor("root.xml"))
}

func TestResolveTarget(t *testing.T) {
	assert.Equal(t, "word/styles.xml", ResolveTarget("word/document.xml", "styles.xml"))
	assert.Equal(t, "word/styles.xml", ResolveTarget("word/document.xml", "/word/styles.xml"))
	assert.Equal(t, "media/a.png", ResolveTarget("word/document.xml", "../media/a.png"))
}

func TestRelativeTarget(t *testing.T) {
	assert.Equal(t, "styles.xml", RelativeTarget("word/document.xml", "word/styles.xml"))
	assert.Equal(t, "/docProps/core.xml", RelativeTarget("word/document.xml", "docProps/core.xml"))
	assert.Equal(t, "word/document.xml", RelativeTarget("", "word/document.xml"))
}

func TestRelationshipsRoundTrip(t *testing.T) {
	rels := NewRelationships()
	assert.Equal(t, "rId1", rels.Add(RelTypeStyles, "styles.xml"))
	assert.Equal(t, "rId2", rels.Add(RelTypeNumbering, "numbering.xml"))

	ct := NewContentTypes()
	ct.Override("word/document.xml", ContentTypeDocumentMain)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	require.NoError(t, WriteXMLPart(zw, "[Content_Types].xml", ct))
	require.NoError(t, WriteXMLPart(zw, "word/_rels/document.xml.rels", rels))
	require.NoError(t, WriteRawPart(zw, "word/document.xml", "<doc/>"))
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parsed, err := ParseRelationshipsFromReader(zr, "word/_rels/document.xml.rels")
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, RelTypeStyles, parsed["rId1"].Type)
	assert.Equal(t, "numbering.xml", parsed["rId2"].Target)

	missing, err := ParseRelationshipsFromReader(zr, "_rels/.rels")
	require.NoError(t, err)
	assert.Empty(t, missing)

	data, err := ReadFileFromZip(zr, "[Content_Types].xml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), `PartName="/word/document.xml"`)
	assert.Contains(t, string(data), `Extension="rels"`)

	raw, err := ReadFileFromZip(zr, "word/document.xml")
	require.NoError(t, err)
	assert.Equal(t, "<doc/>", string(raw))

	_, err = ReadFileFromZip(zr, "nope.xml")
	assert.Error(t, err)
}
