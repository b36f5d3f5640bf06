// Package report renders run results as stacked comparison charts and as a
// terminal summary.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"energy-sim/internal/model"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format is an output image encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ErrUnsupportedFormat is returned for formats other than svg and png.
var ErrUnsupportedFormat = errors.New("unsupported chart format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	case "":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
	}
}

// ContentType is the HTTP media type for the format.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Chart dimensions for the three stacked panels.
var (
	ChartWidth  = 8 * vg.Inch
	ChartHeight = 10 * vg.Inch
)

var (
	originalColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	optimizedColor = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

type panel struct {
	title    string
	yLabel   string
	original model.Series
	reduced  model.Series
}

func panels(res *model.RunResult) []panel {
	return []panel{
		{"Energy Usage", "kWh", res.Original.Usage, res.Optimized.Usage},
		{"Energy Cost", "Cost", res.Original.Cost, res.Optimized.Cost},
		{"Carbon Footprint", "kg CO2e", res.Original.Footprint, res.Optimized.Footprint},
	}
}

// RenderCharts draws usage, cost and footprint panels stacked vertically,
// each overlaying the original and optimized series by day, and encodes the
// result to w. Rendering failures, including panics inside the plotting
// library, come back as errors.
func RenderCharts(w io.Writer, res *model.RunResult, format Format) (err error) {
	if res == nil {
		return errors.New("report: run result is nil")
	}
	if err := res.Validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("report: render panicked: %v", r)
		}
	}()

	ps := panels(res)
	plots := make([][]*plot.Plot, len(ps))
	for i, pn := range ps {
		p, err := newPanel(pn)
		if err != nil {
			return fmt.Errorf("report: render %s chart: %w", strings.ToLower(pn.title), err)
		}
		plots[i] = []*plot.Plot{p}
	}

	var (
		canvas vg.CanvasWriterTo
		dc     draw.Canvas
	)
	switch format {
	case FormatSVG, "":
		c := vgsvg.New(ChartWidth, ChartHeight)
		canvas, dc = c, draw.New(c)
	case FormatPNG:
		c := vgimg.New(ChartWidth, ChartHeight)
		canvas, dc = vgimg.PngCanvas{Canvas: c}, draw.New(c)
	default:
		return fmt.Errorf("report: %q: %w", format, ErrUnsupportedFormat)
	}

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
		PadY:      vg.Millimeter * 6,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("report: encode %s: %w", format, err)
	}
	return nil
}

func newPanel(pn panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pn.title
	p.X.Label.Text = "Day"
	p.Y.Label.Text = pn.yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if pn.original.Len() == 0 {
		// Nothing to draw; pin the axes so the empty panel still renders.
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return p, nil
	}

	for _, l := range []struct {
		name  string
		s     model.Series
		color color.Color
		dash  bool
	}{
		{model.ScenarioOriginal.Label(), pn.original, originalColor, false},
		{model.ScenarioOptimized.Label(), pn.reduced, optimizedColor, true},
	} {
		line, err := plotter.NewLine(xys(l.s))
		if err != nil {
			return nil, err
		}
		line.Color = l.color
		line.Width = vg.Points(1.5)
		if l.dash {
			line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(line)
		p.Legend.Add(l.name, line)
	}
	return p, nil
}

func xys(s model.Series) plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i, v := range s {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}
