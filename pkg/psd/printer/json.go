package printer

import (
	"encoding/json"
	"strings"

	"github.com/joshuapare/psdkit/pkg/psd"
)

// printJSON prints the canonical JSON form of a header view.
func (p *Printer) printJSON(v psd.View) error {
	enc := json.NewEncoder(p.writer)
	if p.opts.IndentSize > 0 {
		enc.SetIndent("", strings.Repeat(" ", p.opts.IndentSize))
	}
	return enc.Encode(v)
}
