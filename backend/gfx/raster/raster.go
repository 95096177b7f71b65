package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/display"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// PlaceholderColor is used to paint replaced images.
var PlaceholderColor = frame.Color{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}

// Rasterize paints a display list into a new image of the given size.
func Rasterize(list display.DisplayList, size dimen.Size) *image.RGBA {
	w, h := int(math.Ceil(size.W.Points())), int(math.Ceil(size.H.Points()))
	p := &painter{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		rast:   vector.NewRasterizer(w, h),
		states: []paintState{{m: frame.Identity(), alpha: 1}},
	}
	for _, item := range list.Items {
		p.paint(item)
	}
	if len(p.states) != 1 {
		tracer().Errorf("display list has %d unbalanced stacking contexts", len(p.states)-1)
	}
	return p.img
}

type paintState struct {
	m     frame.Matrix
	alpha float64
}

type painter struct {
	img    *image.RGBA
	rast   *vector.Rasterizer
	states []paintState // innermost last
}

func (p *painter) top() paintState {
	return p.states[len(p.states)-1]
}

func (p *painter) paint(item display.Item) {
	switch it := item.(type) {
	case *display.RectangleItem:
		p.fillRect(it.Bounds, it.Color.Value)
	case *display.BorderItem:
		p.strokeBorder(it)
	case *display.ImageItem:
		p.fillRect(it.Bounds, PlaceholderColor)
	case *display.TextItem:
		p.drawText(it)
	case *display.PushStackingContextItem:
		sc := it.Context
		st := p.top()
		m := st.m.Multiply(frame.Translation(it.Bounds.TopL.X.Points(), it.Bounds.TopL.Y.Points()))
		if sc.HasTransform {
			m = m.Multiply(sc.Transform)
		}
		p.states = append(p.states, paintState{m: m, alpha: st.alpha * float64(sc.Opacity)})
	case *display.PopStackingContextItem:
		if len(p.states) > 1 {
			p.states = p.states[:len(p.states)-1]
		}
	default:
		tracer().Debugf("raster: cannot paint %v", item)
	}
}

func (p *painter) fillRect(r dimen.Rect, c frame.Color) {
	if c.IsTransparent() || r.IsEmpty() {
		return
	}
	m := p.top().m
	x0, y0 := r.TopL.X.Points(), r.TopL.Y.Points()
	x1, y1 := r.BotR.X.Points(), r.BotR.Y.Points()
	b := p.img.Bounds()
	p.rast.Reset(b.Dx(), b.Dy())
	p.rast.MoveTo(point(m, x0, y0))
	p.rast.LineTo(point(m, x1, y0))
	p.rast.LineTo(point(m, x1, y1))
	p.rast.LineTo(point(m, x0, y1))
	p.rast.ClosePath()
	p.rast.Draw(p.img, b, image.NewUniform(p.color(c)), image.Point{})
}

func point(m frame.Matrix, x, y float64) (float32, float32) {
	tx, ty := m.Apply(x, y)
	return float32(tx), float32(ty)
}

func (p *painter) color(c frame.Color) color.NRGBA {
	a := math.Round(float64(c.A) * p.top().alpha)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// strokeBorder paints the four sides of a border as rectangles inside
// the item's bounds.
func (p *painter) strokeBorder(b *display.BorderItem) {
	r := b.Bounds
	wd := b.Widths
	sides := [4]dimen.Rect{
		{TopL: r.TopL, BotR: dimen.Point{X: r.BotR.X, Y: r.TopL.Y + wd[frame.Top]}},
		{TopL: dimen.Point{X: r.BotR.X - wd[frame.Right], Y: r.TopL.Y}, BotR: r.BotR},
		{TopL: dimen.Point{X: r.TopL.X, Y: r.BotR.Y - wd[frame.Bottom]}, BotR: r.BotR},
		{TopL: r.TopL, BotR: dimen.Point{X: r.TopL.X + wd[frame.Left], Y: r.BotR.Y}},
	}
	for i, side := range sides {
		if wd[i] > 0 {
			p.fillRect(side, b.Colors[i])
		}
	}
}

func (p *painter) drawText(t *display.TextItem) {
	if t.Color.IsTransparent() {
		return
	}
	x, y := p.top().m.Apply(t.Bounds.TopL.X.Points(), t.Baseline.Points())
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(p.color(t.Color)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(t.Text)
}
