// Package printer renders decoded file headers for people and tools.
package printer

import (
	"errors"
	"io"

	"github.com/joshuapare/psdkit/pkg/psd"
)

const (
	DefaultIndentSize = 2
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs the canonical JSON view.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level. Text output
	// indents field lines; JSON output is compact when zero.
	// Default: 2
	IndentSize int

	// ShowSummary adds a one-line summary heading to text output.
	// Default: true
	ShowSummary bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		ShowSummary: true,
	}
}

// Viewer is anything that can produce a canonical header view.
type Viewer interface {
	View() psd.View
}

// Printer handles formatted output of file headers.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	h, _ := psd.DecodeFile("image.psd")
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintHeader(h)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// PrintHeader prints the view of h in the configured format.
func (p *Printer) PrintHeader(h Viewer) error {
	if h == nil {
		return errors.New("printer: nil header")
	}
	v := h.View()
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(v)
	case FormatText:
		return p.printText(v)
	default:
		return p.printText(v)
	}
}
