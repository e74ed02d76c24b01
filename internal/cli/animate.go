package cli

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pchuan98/livecharts/pkg/core/animation"
	"github.com/pchuan98/livecharts/pkg/core/chart"
	"github.com/pchuan98/livecharts/pkg/core/scale"
	"github.com/pchuan98/livecharts/pkg/core/series"
	"github.com/pchuan98/livecharts/pkg/render/sink"
	"github.com/pchuan98/livecharts/pkg/source"
)

// frameInterval is the redraw period of the animate view (about 30 fps).
const frameInterval = 33 * time.Millisecond

// animateCommand creates the animate command.
func (c *CLI) animateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "animate [definition]",
		Short: "Play a chart's transitions in the terminal",
		Long: `Play a chart's transitions in the terminal.

Columns grow from their pivot, then every frame in the definition is applied
when its time is reached and the columns move to their new values.

Keys: r replay, s shuffle values, q quit. Point at a column with the mouse
to read its value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := source.Load(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("loaded definition",
				"series", len(d.Series),
				"frames", len(d.Frames))

			m, err := newAnimateModel(cmd.Context(), d, animation.NewWallClock())
			if err != nil {
				return err
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// animateModel is the bubbletea model of the animate command.
type animateModel struct {
	ctx   context.Context
	def   *source.Definition
	clock animation.Clock
	// offset is subtracted from the clock so a replay starts at zero.
	offset time.Duration

	chart   *chart.Chart
	columns []*series.ColumnSeries
	frames  []source.FrameValues
	next    int

	cols, rows int
	rng        *rand.Rand

	// hover is the chart pixel under the mouse, nil when it is off the grid.
	hover *scale.Point
}

func newAnimateModel(ctx context.Context, d *source.Definition, clock animation.Clock) (*animateModel, error) {
	m := &animateModel{
		ctx:   ctx,
		def:   d,
		clock: clock,
		cols:  80,
		rows:  20,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// reset rebuilds the chart so the first pass animates again.
func (m *animateModel) reset() error {
	m.offset = m.clock.Now()
	c, columns, err := m.def.Build(log.New(io.Discard), chart.WithClock(offsetClock{m.clock, m.offset}))
	if err != nil {
		return err
	}
	m.chart, m.columns, m.next = c, columns, 0
	m.frames = slices.Clone(m.def.Frames)
	slices.SortStableFunc(m.frames, func(a, b source.FrameValues) int { return cmp.Compare(a.At, b.At) })
	m.chart.Update(m.ctx)
	return nil
}

// elapsed is the time since the last reset.
func (m *animateModel) elapsed() time.Duration {
	return m.clock.Now() - m.offset
}

// advance applies every frame that is due.
func (m *animateModel) advance() {
	now := m.elapsed()
	for m.next < len(m.frames) && m.frames[m.next].At.Std() <= now {
		m.frames[m.next].Apply(m.columns)
		m.chart.Update(m.ctx)
		m.next++
	}
}

// shuffle gives every column a random value within its series' range.
func (m *animateModel) shuffle() {
	for _, s := range m.columns {
		values := s.Values()
		if len(values) == 0 {
			continue
		}
		lo, hi := slices.Min(values), slices.Max(values)
		if lo == hi {
			lo, hi = min(lo, 0), max(hi, 1)
		}
		for i := range values {
			values[i] = lo + m.rng.Float64()*(hi-lo)
		}
		s.SetValues(values)
	}
	m.chart.Update(m.ctx)
}

// hoverAt records the chart pixel under terminal cell (x, y). The grid
// starts below the title line.
func (m *animateModel) hoverAt(x, y int) {
	row := y - 1
	if x < 0 || x >= m.cols || row < 0 || row >= m.rows {
		m.hover = nil
		return
	}
	size := m.chart.ControlSize
	m.hover = &scale.Point{
		X: (float64(x) + 0.5) * size.Width / float64(m.cols),
		Y: (float64(row) + 0.5) * size.Height / float64(m.rows),
	}
}

// hoverText describes the data under the mouse.
func (m *animateModel) hoverText() string {
	if m.hover == nil {
		return ""
	}
	v := m.chart.ValueAt(m.hover.X, m.hover.Y)
	var b strings.Builder
	fmt.Fprintf(&b, "  x %.1f y %.2f", v.X, v.Y)
	for _, h := range m.chart.HitTest(m.hover.X, m.hover.Y) {
		fmt.Fprintf(&b, "  %s[%d]=%g", h.Series.Name(), h.Point.Index, h.Point.Y)
	}
	return b.String()
}

func (m *animateModel) Init() tea.Cmd {
	return tick()
}

func (m *animateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if err := m.reset(); err != nil {
				return m, tea.Quit
			}
		case "s":
			m.shuffle()
		}
	case tea.MouseMsg:
		m.hoverAt(msg.X, msg.Y)
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.rows = max(msg.Height-3, 1)
		m.hover = nil
	case tickMsg:
		m.advance()
		return m, tick()
	}
	return m, nil
}

func (m *animateModel) View() string {
	var b strings.Builder

	title := m.def.Title
	if title == "" {
		title = "livecharts"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")

	b.WriteString(sink.Rasterize(m.chart, m.elapsed(), m.cols, m.rows).String())
	b.WriteString("\n")

	state := styleSettled.Render("settled")
	if m.chart.Canvas.IsAnimating() {
		state = styleAnimating.Render("animating")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("%6.2fs  frame %d/%d  ",
		m.elapsed().Seconds(), m.next, len(m.frames))))
	b.WriteString(state)
	b.WriteString(StyleDim.Render("  r replay  s shuffle  q quit"))
	if text := m.hoverText(); text != "" {
		b.WriteString(StyleValue.Render(text))
	}

	return b.String()
}

// offsetClock reads base shifted back by offset.
type offsetClock struct {
	base   animation.Clock
	offset time.Duration
}

func (c offsetClock) Now() time.Duration { return c.base.Now() - c.offset }
