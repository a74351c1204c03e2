package md2docx

import (
	"fmt"
	"io"
	"log/slog"
)

// BatchResult holds the outcome of a ConvertAll run.
type BatchResult struct {
	Converted int
	Skipped   int
}

// Total returns the number of inputs handled before the batch ended.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped
}

// ConvertAll converts inputs one at a time, in order, writing one status line
// per input to w. Missing inputs and inputs whose output would overwrite them
// are reported and skipped. Any other error stops the batch and is returned
// along with the counts so far.
func (c *Converter) ConvertAll(inputs []string, w io.Writer) (BatchResult, error) {
	var result BatchResult

	for _, input := range inputs {
		output, err := c.Convert(input)
		switch {
		case err == nil:
			result.Converted++
			fmt.Fprintf(w, "Converted %s to %s\n", input, output)
		case IsInputNotFound(err):
			result.Skipped++
			fmt.Fprintf(w, "File not found: %s\n", input)
		case IsOutputCollision(err):
			result.Skipped++
			fmt.Fprintf(w, "Skipped %s: output path would overwrite the input\n", input)
		default:
			c.logger.Error("conversion failed", slog.String("input", input), slog.Any("error", err))
			return result, fmt.Errorf("convert %s: %w", input, err)
		}
	}

	c.logger.Info("batch finished",
		slog.Int("converted", result.Converted),
		slog.Int("skipped", result.Skipped))
	return result, nil
}
