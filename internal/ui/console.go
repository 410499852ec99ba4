// Where: internal/ui/console.go
// What: Console output helpers for the insights commands.
// Why: Attachment and region listings share one aligned row format.
package ui

import (
	"fmt"
	"io"
)

// Console writes the formatted command output.
type Console struct {
	Out io.Writer
}

// New creates a Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a section header with an emoji.
// Example: 🔎 Lambda Insights attachments:
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", emoji, title)
}

// Item prints one name/ARN row. Function and region names stay short while
// layer ARNs run long, so the name column is fixed-width and the ARN is
// printed untrimmed after it.
func (c *Console) Item(name string, value any) {
	fmt.Fprintf(c.Out, "   %-20s %v\n", name, value)
}

// ItemPlain prints an indented line without the name column, for rows that
// are a single value such as the managed policy ARN.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}

// Warn prints a non-fatal warning.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "⚠️  %s\n", msg)
}
