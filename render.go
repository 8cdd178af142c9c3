package poisson

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/voidshard/poisson/internal/line"
)

// ColourScheme defines how a Result is drawn.
type ColourScheme struct {
	Background color.Color
	Points     color.Color
	Discs      color.Color // exclusion disc outlines, nil to skip
	Regions    color.Color // voronoi cell outlines, nil to skip
	Links      color.Color // spawn point -> child links, nil to skip

	// pixels per region unit
	Scale float64

	// radius (in pixels) each point is drawn with
	PointSize float64
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.White,
		Points:     colornames.Black,
		Discs:      colornames.Lightsteelblue,
		Scale:      1,
		PointSize:  1,
	}
}

// scale returns the pixels per unit, never zero
func (c *ColourScheme) scale() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}

// Image draws the in-region points (and optionally their discs, links &
// regions) on an image of the region.
func (r *Result) Image(scheme *ColourScheme) image.Image {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	k := scheme.scale()
	size := int(math.Ceil(r.RegionSize * k))

	ctx := gg.NewContext(size, size)
	ctx.SetColor(scheme.Background)
	ctx.Clear()
	ctx.SetLineWidth(1)

	if scheme.Regions != nil {
		ctx.SetColor(scheme.Regions)
		for _, reg := range r.Regions() {
			if len(reg.Vertices) == 0 {
				continue
			}
			ctx.MoveTo(reg.Vertices[0].X*k, reg.Vertices[0].Y*k)
			for _, v := range reg.Vertices[1:] {
				ctx.LineTo(v.X*k, v.Y*k)
			}
			ctx.ClosePath()
			ctx.Stroke()
		}
	}

	if scheme.Discs != nil {
		ctx.SetColor(scheme.Discs)
		for _, p := range r.Points {
			if p.Inactive {
				continue
			}
			// two points may be no closer than the radius, so discs of
			// half the radius never overlap
			ctx.DrawCircle(p.X*k, p.Y*k, p.Radius*k/2)
			ctx.Stroke()
		}
	}

	if scheme.Links != nil {
		ctx.SetColor(scheme.Links)
		for _, p := range r.Points {
			if p.Parent < 0 || p.Inactive {
				continue
			}
			from := r.Points[p.Parent]
			ctx.DrawLine(from.X*k, from.Y*k, p.X*k, p.Y*k)
			ctx.Stroke()
		}
	}

	ctx.SetColor(scheme.Points)
	for _, p := range r.Points {
		if p.Inactive {
			continue
		}
		ctx.DrawCircle(p.X*k, p.Y*k, scheme.PointSize)
		ctx.Fill()
	}

	return ctx.Image()
}

// SavePNG draws the result (see Image) & writes it to disk.
func (r *Result) SavePNG(fpath string, scheme *ColourScheme) error {
	ctx := gg.NewContextForRGBA(r.Image(scheme).(*image.RGBA))
	return ctx.SavePNG(fpath)
}

// WriteSVG draws the result as an SVG document to w.
func (r *Result) WriteSVG(w io.Writer, scheme *ColourScheme) {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	k := scheme.scale()
	size := int(math.Ceil(r.RegionSize * k))
	px := func(v float64) int {
		return int(math.Round(v * k))
	}

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:"+cssColour(scheme.Background))

	if scheme.Regions != nil {
		style := "fill:none;stroke-width:1;stroke:" + cssColour(scheme.Regions)
		for _, reg := range r.Regions() {
			xs := make([]int, len(reg.Vertices))
			ys := make([]int, len(reg.Vertices))
			for i, v := range reg.Vertices {
				xs[i], ys[i] = px(v.X), px(v.Y)
			}
			canvas.Polygon(xs, ys, style)
		}
	}

	if scheme.Discs != nil {
		style := "fill:none;stroke-width:1;stroke:" + cssColour(scheme.Discs)
		for _, p := range r.Points {
			if p.Inactive {
				continue
			}
			canvas.Circle(px(p.X), px(p.Y), px(p.Radius/2), style)
		}
	}

	if scheme.Links != nil {
		style := "stroke-width:1;stroke:" + cssColour(scheme.Links)
		for _, p := range r.Points {
			if p.Parent < 0 || p.Inactive {
				continue
			}
			from := r.Points[p.Parent]
			canvas.Line(px(from.X), px(from.Y), px(p.X), px(p.Y), style)
		}
	}

	style := "fill:" + cssColour(scheme.Points)
	dot := int(math.Max(1, math.Round(scheme.PointSize)))
	for _, p := range r.Points {
		if p.Inactive {
			continue
		}
		canvas.Circle(px(p.X), px(p.Y), dot, style)
	}

	canvas.End()
}

// PaintLinks plots a line from every in-region point to the spawn point
// it came from directly onto a canvas (in region co-ords, 1 unit = 1 pixel).
func (r *Result) PaintLinks(c Canvas, col color.Color) {
	plot := clipped{c}
	for _, p := range r.Points {
		if p.Parent < 0 || p.Inactive {
			continue
		}
		from := r.Points[p.Parent]
		line.Draw(plot, image.Pt(int(from.X), int(from.Y)), image.Pt(int(p.X), int(p.Y)), col)
	}
}

// cssColour formats c as an svg/css rgb() colour, alpha is ignored
func cssColour(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
}
