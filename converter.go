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

package md2docx

import "fmt"

// Kind identifies what a single input line became.
type Kind int

const (
	// KindBlank is an empty line, emitted as an empty paragraph.
	KindBlank Kind = iota
	// KindHeading is a "#" to "####" heading; Block.Level is 0-3.
	KindHeading
	// KindBullet is a "- " or "* " list item.
	KindBullet
	// KindParagraph is any other non-empty line with inline markup removed.
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeading:
		return "heading"
	case KindBullet:
		return "bullet"
	case KindParagraph:
		return "paragraph"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Block is one unit of output, produced from exactly one input line.
type Block struct {
	Kind  Kind
	Level int
	Text  string
}

// Metadata holds document properties taken from front matter.
type Metadata struct {
	Title       string   `yaml:"title" toml:"title"`
	Author      string   `yaml:"author" toml:"author"`
	Subject     string   `yaml:"subject" toml:"subject"`
	Description string   `yaml:"description" toml:"description"`
	Keywords    []string `yaml:"keywords" toml:"keywords"`
}

// Document is the parsed form of an input: one block per body line.
type Document struct {
	Blocks   []Block
	Metadata Metadata
}
