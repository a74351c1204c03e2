package md2docx

import (
	"regexp"
	"strings"
)

var (
	// reInlineMarkup matches bold/italic markers, inline code backticks and
	// whole [label](target) links. Alternatives are tried left to right at
	// each position, so "**" wins over "*".
	reInlineMarkup = regexp.MustCompile("\\*\\*|\\*|`|\\[.*?\\]\\(.*?\\)")
	reCRLF         = regexp.MustCompile(`\r\n?`)
)

// headingRules is ordered most specific first: "# " is a prefix-match
// ambiguity against "#### " only if checked first.
var headingRules = []struct {
	prefix string
	level  int
}{
	{"#### ", 3},
	{"### ", 2},
	{"## ", 1},
	{"# ", 0},
}

var bulletPrefixes = []string{"- ", "* "}

// Classify turns one input line into a block. Surrounding whitespace is
// trimmed first; the first matching rule wins and every line matches one.
func Classify(line string) Block {
	line = strings.TrimSpace(line)

	for _, rule := range headingRules {
		if text, ok := strings.CutPrefix(line, rule.prefix); ok {
			return Block{Kind: KindHeading, Level: rule.level, Text: text}
		}
	}

	for _, prefix := range bulletPrefixes {
		if text, ok := strings.CutPrefix(line, prefix); ok {
			return Block{Kind: KindBullet, Text: text}
		}
	}

	if line != "" {
		return Block{Kind: KindParagraph, Text: StripInline(line)}
	}

	return Block{Kind: KindBlank}
}

// StripInline removes emphasis markers, inline code backticks and links
// (label and target both) from text. Nothing is substituted and whitespace is
// not collapsed: "See [docs](x) here" becomes "See  here".
func StripInline(text string) string {
	return reInlineMarkup.ReplaceAllString(text, "")
}

// splitLines splits decoded input into lines. "\r\n", "\r" and "\n" all end a
// line; a final line break does not open another, empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
