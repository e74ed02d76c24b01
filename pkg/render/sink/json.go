package sink

import (
	"encoding/json"

	"github.com/pchuan98/livecharts/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
	title   string
}

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithJSONTitle records the chart title in the output.
func WithJSONTitle(s string) JSONOption { return func(r *jsonRenderer) { r.title = s } }

type jsonOutput struct {
	Title string `json:"title,omitempty"`
	render.Layout
}

// RenderJSON exports a layout as JSON. It does not modify l and is safe to
// call concurrently.
func RenderJSON(l render.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{Title: r.title, Layout: l}
	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
