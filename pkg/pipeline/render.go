package pipeline

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/pchuan98/livecharts/pkg/errors"
	"github.com/pchuan98/livecharts/pkg/render"
	"github.com/pchuan98/livecharts/pkg/render/sink"
	"github.com/pchuan98/livecharts/pkg/source"
)

// Render generates the requested formats concurrently. The chart must not
// be updated while Render runs.
func Render(ctx context.Context, m *Measured, d *source.Definition, l render.Layout, formats []string, at time.Duration, pngScale float64) (map[string][]byte, error) {
	svgOpts, err := svgOptions(d)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	artifacts := make(map[string][]byte, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := renderFormat(m, d, l, format, at, pngScale, svgOpts)
			if err != nil {
				return errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInternal), err, "render %s", format)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(m *Measured, d *source.Definition, l render.Layout, format string, at time.Duration, pngScale float64, svgOpts []sink.SVGOption) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(m.Chart, at, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(m.Chart, at, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(pngScale))
	case FormatPDF:
		return sink.RenderPDF(m.Chart, at, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONTitle(d.Title))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

func svgOptions(d *source.Definition) ([]sink.SVGOption, error) {
	opts := []sink.SVGOption{sink.WithTitle(d.Title)}
	if d.Locale != "" {
		tag, err := language.Parse(d.Locale)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "locale %q", d.Locale)
		}
		opts = append(opts, sink.WithLocale(tag))
	}
	return opts, nil
}
