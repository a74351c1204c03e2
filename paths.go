package md2docx

import "strings"

// OutputPath derives the .docx path for an input by replacing the first
// occurrence of ".md" with ".docx". This is a substring replacement, not a
// suffix one: "a.md.backup.md" becomes "a.docx.backup.md", and a path with
// no ".md" at all is returned unchanged.
func OutputPath(input string) string {
	return strings.Replace(input, ".md", ".docx", 1)
}
