package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/nicholasgasior/md2docx-go/internal/ooxml"
)

// stylesXML defines Normal, Title, Heading1-9 and ListBullet. Built-in names
// ("heading 1", "List Bullet") match what word processors expect so the
// outline and style gallery pick them up.
var stylesXML = buildStylesXML()

func buildStylesXML() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<w:styles xmlns:w="%s">`, ooxml.NSWordprocessingML)
	b.WriteString(`<w:docDefaults>` +
		`<w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Calibri" w:cs="Calibri"/>` +
		`<w:sz w:val="22"/><w:szCs w:val="22"/><w:lang w:val="en-US"/></w:rPr></w:rPrDefault>` +
		`<w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault>` +
		`</w:docDefaults>`)
	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)
	b.WriteString(`<w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont">` +
		`<w:name w:val="Default Paragraph Font"/><w:uiPriority w:val="1"/><w:semiHidden/></w:style>`)
	b.WriteString(`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/>` +
		`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="10"/><w:qFormat/>` +
		`<w:pPr><w:spacing w:after="80" w:line="240" w:lineRule="auto"/><w:contextualSpacing/></w:pPr>` +
		`<w:rPr><w:rFonts w:asciiTheme="majorHAnsi" w:hAnsiTheme="majorHAnsi"/><w:spacing w:val="-10"/>` +
		`<w:kern w:val="28"/><w:sz w:val="56"/><w:szCs w:val="56"/></w:rPr></w:style>`)
	for level := 1; level <= MaxHeadingLevel; level++ {
		size := headingSize(level)
		fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="%s"><w:name w:val="heading %d"/>`+
			`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="9"/><w:qFormat/>`+
			`<w:pPr><w:keepNext/><w:keepLines/><w:spacing w:before="%d" w:after="80"/><w:outlineLvl w:val="%d"/></w:pPr>`+
			`<w:rPr><w:b/><w:bCs/><w:color w:val="2F5496"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:style>`,
			HeadingStyle(level), level, 360-level*20, level-1, size, size)
	}
	fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="%s"><w:name w:val="List Bullet"/>`+
		`<w:basedOn w:val="Normal"/><w:uiPriority w:val="99"/><w:qFormat/>`+
		`<w:pPr><w:numPr><w:numId w:val="%d"/></w:numPr><w:contextualSpacing/></w:pPr></w:style>`,
		StyleListBullet, bulletNumID)
	b.WriteString(`</w:styles>`)
	return b.String()
}

// headingSize returns the font size in half-points for a heading level.
func headingSize(level int) int {
	switch level {
	case 1:
		return 32
	case 2:
		return 26
	case 3:
		return 24
	default:
		return 22
	}
}

const bulletNumID = 1

var numberingXML = xml.Header +
	`<w:numbering xmlns:w="` + ooxml.NSWordprocessingML + `">` +
	`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/>` +
	`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`

type coreXML struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Keywords       string   `xml:"cp:keywords,omitempty"`
	Description    string   `xml:"dc:description,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Revision       int      `xml:"cp:revision"`
	Created        w3cdtf   `xml:"dcterms:created"`
	Modified       w3cdtf   `xml:"dcterms:modified"`
}

type w3cdtf struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

func newW3CDTF(t time.Time) w3cdtf {
	return w3cdtf{Type: "dcterms:W3CDTF", Value: t.UTC().Format("2006-01-02T15:04:05Z")}
}

func newCoreXML(p CoreProperties) *coreXML {
	return &coreXML{
		XmlnsCP:        ooxml.NSCoreProperties,
		XmlnsDC:        ooxml.NSDCElements,
		XmlnsDCTerms:   ooxml.NSDCTerms,
		XmlnsDCMIType:  ooxml.NSDCMIType,
		XmlnsXSI:       ooxml.NSXSI,
		Title:          p.Title,
		Subject:        p.Subject,
		Creator:        p.Creator,
		Keywords:       strings.Join(p.Keywords, ", "),
		Description:    p.Description,
		LastModifiedBy: p.Creator,
		Revision:       1,
		Created:        newW3CDTF(p.Created),
		Modified:       newW3CDTF(p.Modified),
	}
}

type appXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
	Paragraphs  int      `xml:"Paragraphs"`
	DocSecurity int      `xml:"DocSecurity"`
}

func newAppXML(paragraphs int) *appXML {
	return &appXML{
		Xmlns:       ooxml.NSExtendedProperties,
		Application: "md2docx",
		Paragraphs:  paragraphs,
	}
}
