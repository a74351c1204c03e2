package docx

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicholasgasior/md2docx-go/internal/ooxml"
)

func roundTrip(t *testing.T, d *Document) (*Contents, []byte) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))
	contents, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return contents, buf.Bytes()
}

func TestAddHeading(t *testing.T) {
	d := New()
	for level := 0; level <= MaxHeadingLevel; level++ {
		require.NoError(t, d.AddHeading("h", level))
	}
	assert.Error(t, d.AddHeading("too deep", MaxHeadingLevel+1))
	assert.Error(t, d.AddHeading("negative", -1))

	paragraphs := d.Paragraphs()
	require.Len(t, paragraphs, MaxHeadingLevel+1)
	assert.Equal(t, StyleTitle, paragraphs[0].Style)
	assert.Equal(t, "Heading1", paragraphs[1].Style)
	assert.Equal(t, "Heading9", paragraphs[9].Style)
}

func TestParagraphsReturnsCopy(t *testing.T) {
	d := New()
	d.AddParagraph("original", "")
	p := d.Paragraphs()
	p[0].Text = "changed"
	assert.Equal(t, "original", d.Paragraphs()[0].Text)
}

func TestWriteRead(t *testing.T) {
	d := New()
	require.NoError(t, d.AddHeading("Report", 0))
	require.NoError(t, d.AddHeading("Section", 1))
	d.AddParagraph("point", StyleListBullet)
	d.AddParagraph("", "")
	d.AddParagraph("  leading and trailing  ", StyleNormal)
	d.AddParagraph("col1\tcol2", "")
	d.AddParagraph("<tags> & \"quotes\"", "")
	d.AddParagraph("bell\x07 removed", "")

	contents, data := roundTrip(t, d)

	assert.Equal(t, []Paragraph{
		{Style: "Title", Text: "Report"},
		{Style: "Heading1", Text: "Section"},
		{Style: "ListBullet", Text: "point"},
		{Style: "", Text: ""},
		{Style: "", Text: "  leading and trailing  "},
		{Style: "", Text: "col1\tcol2"},
		{Style: "", Text: "<tags> & \"quotes\""},
		{Style: "", Text: "bell removed"},
	}, contents.Paragraphs)

	assert.Equal(t, "heading 1", contents.StyleNames["Heading1"])
	assert.Equal(t, "List Bullet", contents.StyleNames["ListBullet"])
	assert.Equal(t, "Normal", contents.StyleName(Paragraph{}))
	assert.Equal(t, "Unknown", contents.StyleName(Paragraph{Style: "Unknown"}))

	assert.True(t, mimetype.Detect(data).Is(ooxml.MIMETypeDocx), "detected %s", mimetype.Detect(data).String())
}

func TestSpacePreservedOnlyWhenNeeded(t *testing.T) {
	d := New()
	d.AddParagraph("plain", "")
	d.AddParagraph(" padded ", "")

	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	body, err := ooxml.ReadFileFromZip(zr, "word/document.xml")
	require.NoError(t, err)

	assert.Contains(t, string(body), `<w:t>plain</w:t>`)
	assert.Contains(t, string(body), `<w:t xml:space="preserve"> padded </w:t>`)
}

func TestWritePartOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Write(&buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/numbering.xml",
		"docProps/core.xml",
		"docProps/app.xml",
	}, names)

	rels, err := ooxml.ParseRelationshipsFromReader(zr, "word/_rels/document.xml.rels")
	require.NoError(t, err)
	assert.Equal(t, "styles.xml", rels["rId1"].Target)
	assert.Equal(t, "numbering.xml", rels["rId2"].Target)
}

func TestCoreProperties(t *testing.T) {
	d := New()
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	d.Properties = CoreProperties{
		Title:       "Quarterly",
		Subject:     "Planning",
		Creator:     "Ada",
		Description: "Notes & plans",
		Keywords:    []string{"q3", "roadmap"},
		Created:     created,
		Modified:    created.Add(time.Hour),
	}

	contents, _ := roundTrip(t, d)
	assert.Equal(t, d.Properties, contents.Properties)
}

func TestNewDefaults(t *testing.T) {
	d := New()
	assert.Equal(t, "md2docx", d.Properties.Creator)
	assert.False(t, d.Properties.Created.IsZero())
	assert.Empty(t, d.Paragraphs())
}

func TestSaveAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")

	d := New()
	d.AddParagraph("saved", "")
	require.NoError(t, d.Save(path))

	contents, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Paragraph{{Text: "saved"}}, contents.Paragraphs)
}

func TestSaveBadPath(t *testing.T) {
	err := New().Save(filepath.Join(t.TempDir(), "missing", "out.docx"))
	assert.Error(t, err)
}

func TestReadRejectsNonZip(t *testing.T) {
	data := []byte("# not a docx")
	_, err := Read(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "a b", sanitizeText("a\nb"))
	assert.Equal(t, "ab", sanitizeText("a\x00b"))
	assert.Equal(t, "a\tb", sanitizeText("a\tb"))
	assert.Equal(t, "ünï", sanitizeText("ünï"))
}
