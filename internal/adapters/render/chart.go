package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
)

// ChartConfig configures the frequency bar chart.
type ChartConfig struct {
	// Font renders every text element. Nil keeps gonum's built-in Latin fonts.
	Font          *Font
	Width         vg.Length
	Height        vg.Length
	Title         string
	XLabel        string
	YLabel        string
	LabelRotation float64
	BarWidth      vg.Length
	BarColor      color.Color
}

// DefaultChartConfig returns a 10in x 5in chart titled for the top n words.
func DefaultChartConfig(f *Font, n int) ChartConfig {
	return ChartConfig{
		Font:          f,
		Width:         10 * vg.Inch,
		Height:        5 * vg.Inch,
		Title:         fmt.Sprintf("Top %d Most Common Words", n),
		XLabel:        "Words",
		YLabel:        "Counts",
		LabelRotation: math.Pi / 4,
		BarWidth:      vg.Points(18),
		BarColor:      color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	}
}

// ChartRenderer draws vertical bar charts with gonum/plot.
type ChartRenderer struct {
	config   ChartConfig
	typeface font.Typeface
}

// NewChartRenderer creates a renderer and registers its font with gonum's font cache.
func NewChartRenderer(config ChartConfig) (*ChartRenderer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, errors.New("chart canvas must have positive dimensions")
	}
	if config.BarWidth <= 0 {
		return nil, errors.New("chart bar width must be positive")
	}
	r := &ChartRenderer{config: config}
	if config.Font != nil {
		if config.Font.Face == nil {
			return nil, fmt.Errorf("%w: font %s is not parsed", domain.ErrFontUnavailable, config.Font.Path)
		}
		r.typeface = typefaceFor(config.Font)
		font.DefaultCache.Add(font.Collection{{
			Font: font.Font{Typeface: r.typeface},
			Face: config.Font.Face,
		}})
	}
	return r, nil
}

func typefaceFor(f *Font) font.Typeface {
	name := strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
	if name == "" || name == "." {
		name = "custom"
	}
	return font.Typeface("speechcloud-" + name)
}

// RenderChart implements ports.ChartRenderer.
func (r *ChartRenderer) RenderChart(entries []domain.WordCount) (image.Image, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyTokenSet
	}

	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Count)
		labels[i] = e.Word
	}

	p := plot.New()
	p.Title.Text = r.config.Title
	p.X.Label.Text = r.config.XLabel
	p.Y.Label.Text = r.config.YLabel

	bars, err := plotter.NewBarChart(values, r.config.BarWidth)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	if r.config.BarColor != nil {
		bars.Color = r.config.BarColor
	}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0

	p.X.Tick.Label.Rotation = r.config.LabelRotation
	if r.config.LabelRotation != 0 {
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YTop
	}

	if r.typeface != "" {
		for _, sty := range []*text.Style{
			&p.Title.TextStyle,
			&p.X.Label.TextStyle,
			&p.Y.Label.TextStyle,
			&p.X.Tick.Label,
			&p.Y.Tick.Label,
		} {
			sty.Font = font.Font{Typeface: r.typeface, Size: sty.Font.Size}
		}
	}

	canvas := vgimg.New(r.config.Width, r.config.Height)
	p.Draw(draw.New(canvas))
	return canvas.Image(), nil
}
