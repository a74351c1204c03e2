package main

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/nicholasgasior/md2docx-go/internal/docx"
	"github.com/nicholasgasior/md2docx-go/internal/ooxml"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.docx>",
		Short: "List the paragraphs of a .docx file with their styles",
		Long: `Inspect prints one line per paragraph of a .docx document: the paragraph
style name, a tab, and the paragraph text. Document properties set from
front matter are printed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			mtype, err := mimetype.DetectFile(path)
			if err != nil {
				return fmt.Errorf("detect file type: %w", err)
			}
			if !mtype.Is(ooxml.MIMETypeDocx) {
				return fmt.Errorf("%s is %s, not a DOCX document", path, mtype.String())
			}

			contents, err := docx.ReadFile(path)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			props := contents.Properties
			if props.Title != "" {
				fmt.Fprintf(w, "title:\t%s\n", props.Title)
			}
			if props.Creator != "" {
				fmt.Fprintf(w, "creator:\t%s\n", props.Creator)
			}
			for _, p := range contents.Paragraphs {
				fmt.Fprintf(w, "%s\t%s\n", contents.StyleName(p), p.Text)
			}
			return nil
		},
	}
}
