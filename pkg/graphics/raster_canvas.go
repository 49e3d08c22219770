package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// arcSegments is the number of line segments used per quarter circle.
const arcSegments = 8

// RasterCanvas rasterizes drawing commands into an RGBA image.
//
// Only translation is supported as a transform. Layer opacity is applied
// per draw call rather than to a composited group, which matches group
// opacity as long as shapes inside one layer do not overlap.
type RasterCanvas struct {
	dst   *image.RGBA
	z     *vector.Rasterizer
	state rasterState
	stack []rasterState
}

type rasterState struct {
	dx, dy float64
	alpha  float64
}

// NewRasterCanvas creates a transparent canvas of the given size.
func NewRasterCanvas(size Size) *RasterCanvas {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	return &RasterCanvas{
		dst:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
		state: rasterState{alpha: 1},
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) SaveLayerAlpha(_ Rect, alpha float64) {
	c.Save()
	c.state.alpha *= clamp01(alpha)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	c.DrawRRect(RRectFromRectAndRadius(rect, Radius{}), paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	rect := rrect.Rect.Translate(c.state.dx, c.state.dy)
	radius := rrect.UniformRadius()
	if paint.Style == PaintStyleStroke {
		half := paint.StrokeWidth / 2
		outer := roundedRectPoints(rect.Inset(EdgeInsetsAll(-half)), radius+half)
		inner := roundedRectPoints(rect.Inset(EdgeInsetsAll(half)), math.Max(radius-half, 0))
		c.fill(paint.Color, outer, reversed(inner))
		return
	}
	c.fill(paint.Color, roundedRectPoints(rect, radius))
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	rect := RectFromCenter(center, Size{Width: radius * 2, Height: radius * 2})
	c.DrawRRect(RRectFromRectAndRadius(rect, CircularRadius(radius)), paint)
}

func (c *RasterCanvas) DrawText(layout *TextLayout, position Offset) {
	if layout == nil || layout.Face == nil || c.state.alpha <= 0 {
		return
	}
	x := position.X + c.state.dx
	y := position.Y + c.state.dy + layout.Ascent
	d := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(layout.Style.Color.NRGBA(c.state.alpha)),
		Face: layout.Face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(layout.Text)
}

func (c *RasterCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// fill rasterizes the given closed contours. Contours wound in opposite
// directions cancel, which is how strokes are cut out of fills.
func (c *RasterCanvas) fill(col Color, contours ...[]Offset) {
	if c.state.alpha <= 0 || col.Alpha() == 0 {
		return
	}
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			c.z.LineTo(float32(p.X), float32(p.Y))
		}
		c.z.ClosePath()
	}
	c.z.Draw(c.dst, b, image.NewUniform(col.NRGBA(c.state.alpha)), image.Point{})
}

// roundedRectPoints returns a clockwise polygon approximating the rounded rectangle.
func roundedRectPoints(rect Rect, radius float64) []Offset {
	if rect.IsEmpty() {
		return nil
	}
	radius = math.Min(radius, math.Min(rect.Width(), rect.Height())/2)
	if radius <= 0 {
		return []Offset{
			{X: rect.Left, Y: rect.Top},
			{X: rect.Right, Y: rect.Top},
			{X: rect.Right, Y: rect.Bottom},
			{X: rect.Left, Y: rect.Bottom},
		}
	}
	corners := []struct {
		center Offset
		start  float64
	}{
		{Offset{X: rect.Right - radius, Y: rect.Top + radius}, -math.Pi / 2},
		{Offset{X: rect.Right - radius, Y: rect.Bottom - radius}, 0},
		{Offset{X: rect.Left + radius, Y: rect.Bottom - radius}, math.Pi / 2},
		{Offset{X: rect.Left + radius, Y: rect.Top + radius}, math.Pi},
	}
	pts := make([]Offset, 0, len(corners)*(arcSegments+1))
	for _, corner := range corners {
		for i := 0; i <= arcSegments; i++ {
			theta := corner.start + (math.Pi/2)*float64(i)/arcSegments
			pts = append(pts, Offset{
				X: corner.center.X + radius*math.Cos(theta),
				Y: corner.center.Y + radius*math.Sin(theta),
			})
		}
	}
	return pts
}

func reversed(pts []Offset) []Offset {
	out := make([]Offset, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
