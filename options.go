package md2docx

import "log/slog"

// Option configures a Converter.
type Option func(*Converter)

// WithCharset sets the input charset: "utf-8" (default, strict), "auto" for
// detection, or any name such as "cp1252" or "shift_jis".
func WithCharset(charset string) Option {
	return func(c *Converter) {
		c.charset = charset
	}
}

// WithFrontMatter enables front matter parsing. The front matter block is
// removed from the body and its fields become document properties.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.frontMatter = enabled
	}
}

// WithOutputDir writes outputs into dir instead of next to their inputs.
func WithOutputDir(dir string) Option {
	return func(c *Converter) {
		c.outputDir = dir
	}
}

// WithLogger sets the logger used for diagnostics (default: discard).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}
