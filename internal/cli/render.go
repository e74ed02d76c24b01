package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pchuan98/livecharts/pkg/errors"
	"github.com/pchuan98/livecharts/pkg/pipeline"
)

// sampleFlags are the flags shared by commands that sample a chart.
type sampleFlags struct {
	at      string
	width   float64
	height  float64
	locale  string
	noCache bool
	refresh bool
}

func (f *sampleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.at, "at", "", "sample time such as 300ms (default: after all transitions)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "override the chart width")
	cmd.Flags().Float64Var(&f.height, "height", 0, "override the chart height")
	cmd.Flags().StringVar(&f.locale, "locale", "", "override the tick label locale (e.g. de-DE)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

// options converts the flags into pipeline options for path.
func (f *sampleFlags) options(path string) (pipeline.Options, error) {
	opts := pipeline.Options{
		Path:    path,
		Width:   f.width,
		Height:  f.height,
		Locale:  f.locale,
		Refresh: f.refresh,
	}
	if f.at != "" {
		at, err := time.ParseDuration(f.at)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "--at")
		}
		opts.At = &at
	}
	return opts, nil
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      sampleFlags
		formatsStr string
		output     string
		pngScale   float64
	)

	cmd := &cobra.Command{
		Use:   "render [definition]",
		Short: "Render a chart definition to SVG, PNG, PDF or JSON",
		Long: `Render a chart definition to SVG, PNG, PDF or JSON.

The definition is measured, its frames are played up to --at, and the chart
is sampled at that time. Without --at the settled chart is rendered.

PNG and PDF output require rsvg-convert (librsvg).

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			opts.Formats = parseFormats(formatsStr)
			opts.PNGScale = pngScale
			return c.runRender(cmd.Context(), opts, output, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&pngScale, "scale", pipeline.DefaultPNGScale, "PNG scale factor")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", filepath.Base(opts.Path)))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, opts.Path, output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(paths)))

	printSuccess("Rendered %s", StyleValue.Render(filepath.Base(opts.Path)))
	printStats(result.Stats.SeriesCount, result.Stats.PointCount, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes one file per format and returns the paths in
// format order. JSON output next to the definition gets a .layout.json
// suffix so a JSON definition is never overwritten.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	base := basePath(output, input)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if format == pipeline.FormatJSON && output == "" {
			path = base + ".layout.json"
		}
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath derives the base output path. Without an output the input's
// extension is stripped; a known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if errors.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
