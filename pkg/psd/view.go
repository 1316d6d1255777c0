package psd

// View is a read-only snapshot of a Header for external consumption. Its
// JSON form is the canonical human-readable rendering of a header; the
// color mode is given by name.
type View struct {
	Signature   string `json:"signature"`
	Version     uint16 `json:"version"`
	NumChannels int    `json:"numChannels"`
	Height      int    `json:"height"`
	Width       int    `json:"width"`
	Depth       uint16 `json:"depth"`
	ColorMode   string `json:"colorMode"`
}

// View returns the canonical snapshot of h.
func (h *Header) View() View {
	return View{
		Signature:   h.Signature(),
		Version:     uint16(h.Version()),
		NumChannels: h.NumChannels(),
		Height:      h.Height(),
		Width:       h.Width(),
		Depth:       uint16(h.depth),
		ColorMode:   h.colorMode.String(),
	}
}
