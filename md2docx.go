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

// Package md2docx converts lightweight markup (headings, bullets, paragraphs,
// blank lines) into WordprocessingML documents, one output block per input
// line.
package md2docx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nicholasgasior/md2docx-go/internal/docx"
)

// Converter is the markup-to-DOCX conversion engine. A Converter holds only
// configuration; every call builds its own document.
type Converter struct {
	charset     string
	frontMatter bool
	outputDir   string
	logger      *slog.Logger
}

// New creates a new Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{
		charset: CharsetUTF8,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OutputPathFor returns where Convert writes the output for input.
func (c *Converter) OutputPathFor(input string) string {
	out := OutputPath(input)
	if c.outputDir != "" {
		out = filepath.Join(c.outputDir, filepath.Base(out))
	}
	return out
}

// Convert converts input to the derived output path and returns that path.
func (c *Converter) Convert(input string) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &InputNotFoundError{Path: input}
		}
		return "", fmt.Errorf("stat input: %w", err)
	}

	output := c.OutputPathFor(input)
	if sameFile(input, info, output) {
		return "", &OutputCollisionError{Path: input}
	}

	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := c.ConvertFile(input, output); err != nil {
		return "", err
	}
	return output, nil
}

// sameFile reports whether output names the input file, either through a
// different spelling of the same path or through a link.
func sameFile(input string, info fs.FileInfo, output string) bool {
	if outInfo, err := os.Stat(output); err == nil {
		return os.SameFile(info, outInfo)
	}
	in, err := filepath.Abs(input)
	if err != nil {
		return filepath.Clean(input) == filepath.Clean(output)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return filepath.Clean(input) == filepath.Clean(output)
	}
	return in == out
}

// ConvertFile converts the markup file at input and writes a .docx to output.
// The output file is only created once the whole input has been read.
func (c *Converter) ConvertFile(input, output string) error {
	doc, err := c.parseFile(input)
	if err != nil {
		return err
	}

	out, err := c.build(doc)
	if err != nil {
		return err
	}
	if err := out.Save(output); err != nil {
		return err
	}

	c.logger.Debug("wrote document",
		slog.String("input", input),
		slog.String("output", output),
		slog.Int("blocks", len(doc.Blocks)))
	return nil
}

func (c *Converter) parseFile(input string) (*Document, error) {
	f, err := os.Open(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InputNotFoundError{Path: input}
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return c.Parse(f)
}

// ConvertReader converts markup read from r and writes the .docx package to w.
func (c *Converter) ConvertReader(r io.Reader, w io.Writer) error {
	doc, err := c.Parse(r)
	if err != nil {
		return err
	}
	out, err := c.build(doc)
	if err != nil {
		return err
	}
	return out.Write(w)
}

// Parse reads and classifies every line of r.
func (c *Converter) Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	text, err := decodeInput(data, c.charset)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	if c.frontMatter {
		meta, body, err := splitFrontMatter(text)
		if err != nil {
			return nil, err
		}
		doc.Metadata = meta
		text = body
	}

	lines := splitLines(text)
	doc.Blocks = make([]Block, 0, len(lines))
	for _, line := range lines {
		doc.Blocks = append(doc.Blocks, Classify(line))
	}

	c.logger.Debug("parsed input",
		slog.String("charset", c.charset),
		slog.Int("lines", len(lines)))
	return doc, nil
}

// build maps blocks onto a fresh DOCX document, one paragraph per block.
func (c *Converter) build(doc *Document) (*docx.Document, error) {
	out := docx.New()
	applyMetadata(&out.Properties, doc.Metadata)

	for i, b := range doc.Blocks {
		switch b.Kind {
		case KindHeading:
			if err := out.AddHeading(b.Text, b.Level); err != nil {
				return nil, fmt.Errorf("block %d: %w", i+1, err)
			}
		case KindBullet:
			out.AddParagraph(b.Text, docx.StyleListBullet)
		case KindParagraph:
			out.AddParagraph(b.Text, docx.StyleNormal)
		default:
			out.AddParagraph("", docx.StyleNormal)
		}
	}
	return out, nil
}
