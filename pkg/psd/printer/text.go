package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/psdkit/pkg/psd"
	"github.com/joshuapare/psdkit/pkg/types"
)

// printText prints a header view as aligned "Label: value" lines.
func (p *Printer) printText(v psd.View) error {
	version := types.Version(v.Version)
	indent := strings.Repeat(" ", p.opts.IndentSize)

	if p.opts.ShowSummary {
		if _, err := fmt.Fprintf(p.writer, "%s %dx%d %s\n", version, v.Width, v.Height, v.ColorMode); err != nil {
			return err
		}
	}

	lines := []struct {
		label string
		value any
	}{
		{"Signature", v.Signature},
		{"Version", fmt.Sprintf("%d (%s)", v.Version, version)},
		{"Variant", types.VariantOf(version)},
		{"Channels", v.NumChannels},
		{"Height", v.Height},
		{"Width", v.Width},
		{"Depth", fmt.Sprintf("%d-bit", v.Depth)},
		{"Color Mode", v.ColorMode},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(p.writer, "%s%-11s %v\n", indent, l.label+":", l.value); err != nil {
			return err
		}
	}
	return nil
}
