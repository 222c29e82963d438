// Package markdown renders review group descriptions as styled terminal
// text.
package markdown

import "github.com/charmbracelet/glamour"

// Descriptions sit inline between hunks, so document margins and the
// surrounding blank lines glamour adds are stripped.
const inlineStyle = `{"document": {"margin": 0, "block_prefix": "", "block_suffix": ""}}`

// Renderer renders markdown at a fixed wrap width.
type Renderer struct {
	tr *glamour.TermRenderer
}

// New creates a renderer wrapping at width. style is a glamour style name
// ("dark" or "light"); empty means "dark". The style is fixed rather than
// auto-detected because glamour's auto style queries the terminal, and
// the OSC response can leak into a running Bubble Tea input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(inlineStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr}, nil
}

// Render converts markdown source to styled terminal output.
func (r *Renderer) Render(source string) (string, error) {
	return r.tr.Render(source)
}
