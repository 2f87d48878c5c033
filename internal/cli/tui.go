package cli

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mandelzoom/pkg/plane"
	"github.com/matzehuels/mandelzoom/pkg/view"
)

// statusLines is the number of terminal rows below the canvas.
const statusLines = 2

// tuiDepthStep is the depth change per +/- key press.
const tuiDepthStep = 5

// halfBlock draws two vertically stacked pixels in one cell: the foreground
// colours the top half and the background the bottom half.
const halfBlock = "▀"

var (
	tuiKeyStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	tuiLabelStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// tuiCommand creates the tui command.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		depth   int
		region  string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore the set in the terminal",
		Long: `Explore the Mandelbrot set in the terminal.

Each character cell shows two pixels. Drag with the left mouse button to
select a region and release to zoom; selections smaller than 20 pixels are
outlined in red and ignored. Keys: + and - change the depth, r resets the
window, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("depth") {
				depth = c.Config.View.Depth
			}
			w, err := c.resolveWindow(region, "")
			if err != nil {
				return err
			}

			// Log lines would corrupt the alternate screen.
			c.Logger.SetOutput(io.Discard)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				c.Logger.SetOutput(f)
			}

			v := c.newView(1, depth)
			if err := v.SetWindow(w); err != nil {
				return err
			}
			m := newTUIModel(cmd.Context(), v)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				if cmd.Context().Err() != nil {
					return cmd.Context().Err()
				}
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "initial iteration depth (1-100)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "start at a named region")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the UI runs")
	_ = cmd.RegisterFlagCompletionFunc("region", completeRegions)

	return cmd
}

// =============================================================================
// tuiModel - interactive terminal view
// =============================================================================

// tuiModel renders a view as half-block cells. It is the view's Surface
// while drawing.
type tuiModel struct {
	ctx  context.Context
	view *view.View

	cols, rows int

	frame  *image.RGBA
	stroke image.Rectangle
	color  color.RGBA
	styled map[[2]color.RGBA]string
	zooms  int
}

func newTUIModel(ctx context.Context, v *view.View) *tuiModel {
	return &tuiModel{
		ctx:    ctx,
		view:   v,
		styled: make(map[[2]color.RGBA]string),
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.view.Resize(fitCanvas(m.cols, m.rows, m.view.Window()))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.view.SetDepth(m.view.Depth() + tuiDepthStep)
		case "-", "_":
			m.view.SetDepth(m.view.Depth() - tuiDepthStep)
		case "r":
			m.view.Reset()
			m.view.Resize(fitCanvas(m.cols, m.rows, m.view.Window()))
		}

	case tea.MouseMsg:
		p := cellToPixel(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.view.Press(p)
			}
		case tea.MouseActionMotion:
			m.view.Move(p)
		case tea.MouseActionRelease:
			m.view.Move(p)
			if m.view.Release(p) {
				m.zooms++
			}
		}
	}
	return m, nil
}

// cellToPixel maps a terminal cell to the canvas pixel in its top half.
func cellToPixel(x, y int) image.Point {
	return image.Pt(x, y*2)
}

// fitCanvas returns the largest canvas, in pixels, with the window's aspect
// ratio that fits a cols×rows terminal above the status lines.
func fitCanvas(cols, rows int, w plane.Window) (int, int) {
	cols = max(cols, 1)
	maxH := max(rows-statusLines, 1) * 2
	width := cols
	height := plane.HeightFor(width, w)
	if height > maxH {
		width = max(1, min(cols, int(math.Round(float64(maxH)/w.Aspect()))))
		height = min(plane.HeightFor(width, w), maxH)
	}
	return width, height
}

// Present records the frame to draw.
func (m *tuiModel) Present(img *image.RGBA) {
	if img != m.frame {
		clear(m.styled)
	}
	m.frame = img
	m.stroke = image.Rectangle{}
}

// StrokeRect records the selection outline.
func (m *tuiModel) StrokeRect(r image.Rectangle, c color.RGBA) {
	m.stroke, m.color = r, c
}

// pixel returns the colour at (x, y) with the selection outline applied.
func (m *tuiModel) pixel(x, y int) color.RGBA {
	if r := m.stroke; !r.Empty() {
		onX := (x == r.Min.X || x == r.Max.X) && y >= r.Min.Y && y <= r.Max.Y
		onY := (y == r.Min.Y || y == r.Max.Y) && x >= r.Min.X && x <= r.Max.X
		if onX || onY {
			return m.color
		}
	}
	if !(image.Point{X: x, Y: y}.In(m.frame.Rect)) {
		return color.RGBA{A: 255}
	}
	return m.frame.RGBAAt(x, y)
}

// cell renders one half-block cell, memoised per colour pair.
func (m *tuiModel) cell(top, bottom color.RGBA) string {
	key := [2]color.RGBA{top, bottom}
	if s, ok := m.styled[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(top))).
		Background(lipgloss.Color(hexColor(bottom))).
		Render(halfBlock)
	m.styled[key] = s
	return s
}

func hexColor(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func (m *tuiModel) View() string {
	if m.cols == 0 {
		return "loading..."
	}
	m.view.Draw(m.ctx, m)

	var b strings.Builder
	w, h := m.view.Size()
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			b.WriteString(m.cell(m.pixel(x, y), m.pixel(x, y+1)))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

// status renders the two lines under the canvas.
func (m *tuiModel) status() string {
	win := m.view.Window()
	line1 := tuiLabelStyle.Render("depth ") + StyleHighlight.Render(fmt.Sprint(m.view.Depth())) +
		StyleDim.Render(" · ") + tuiLabelStyle.Render("window ") + StyleValue.Render(win.String())
	if m.view.Dragging() {
		line1 += StyleDim.Render(" · ") + StyleWarning.Render("selecting")
	}
	line2 := tuiKeyStyle.Render("drag") + StyleDim.Render(" zoom  ") +
		tuiKeyStyle.Render("+/-") + StyleDim.Render(" depth  ") +
		tuiKeyStyle.Render("r") + StyleDim.Render(" reset  ") +
		tuiKeyStyle.Render("q") + StyleDim.Render(" quit")
	return line1 + "\n" + line2
}
