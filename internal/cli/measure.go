package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pchuan98/livecharts/pkg/cache"
	"github.com/pchuan98/livecharts/pkg/core/drawing"
	"github.com/pchuan98/livecharts/pkg/pipeline"
	"github.com/pchuan98/livecharts/pkg/render"
	"github.com/pchuan98/livecharts/pkg/render/sink"
)

// measureCommand creates the measure command.
func (c *CLI) measureCommand() *cobra.Command {
	var (
		flags  sampleFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "measure [definition]",
		Short: "Print the geometry of every column",
		Long: `Print the geometry of every column.

Each row shows a data point, the rectangle its column occupies at the sample
time, the rectangle it is moving toward, and whether it is still animating.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			return c.runMeasure(cmd.Context(), cmd.OutOrStdout(), opts, flags.noCache, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")

	return cmd
}

func (c *CLI) runMeasure(ctx context.Context, w io.Writer, opts pipeline.Options, noCache, asJSON bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.MeasureLayout(ctx, opts)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("measured",
		"hash", cache.ShortHash(result.DefinitionHash),
		"cached", result.CacheInfo.LayoutHit,
		"points", result.Stats.PointCount)

	if asJSON {
		data, err := sink.RenderJSON(result.Layout, sink.WithJSONTitle(result.Definition.Title))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	title := result.Definition.Title
	if title == "" {
		title = opts.Path
	}
	fmt.Fprintln(w, StyleTitle.Render(title))
	when := "settled"
	if result.Layout.At != "" {
		when = "at " + result.Layout.At
	}
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%gx%g, plot %s, %s",
		result.Layout.Width, result.Layout.Height, formatRect(result.Layout.Plot), when)))
	fmt.Fprintln(w, layoutTable(result.Layout))
	return nil
}

// layoutTable renders one row per measured point.
func layoutTable(l render.Layout) string {
	var rows [][]string
	var states []string
	for _, s := range l.Series {
		for _, p := range s.Points {
			rows = append(rows, []string{
				s.Name,
				strconv.Itoa(p.Index),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
				formatRect(p.Rect),
				formatRect(p.Target),
				p.State,
			})
			states = append(states, p.State)
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Series", "#", "Value", "Rect", "Target", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 5 && row < len(states):
				return stateStyle(states[row]).Padding(0, 1)
			case col == 2:
				return StyleNumber.Padding(0, 1)
			}
			return base
		}).
		Render()
}

func formatRect(r drawing.Rect) string {
	return fmt.Sprintf("%.1f,%.1f %.1fx%.1f", r.X, r.Y, r.Width, r.Height)
}
