package widgets

import (
	"log"
	"math"

	"github.com/go-drift/uicontrols/pkg/animation"
	"github.com/go-drift/uicontrols/pkg/errors"
	"github.com/go-drift/uicontrols/pkg/graphics"
)

// boundaryTolerance absorbs floating-point error when deciding whether a
// dot sits on the edge of the active segment. Very short segments shrink it.
const boundaryTolerance = 1e-4

// DefaultClosenessQuantum is the number of discrete closeness steps per unit.
// Quantizing the blend factor keeps colors from jittering between frames.
const DefaultClosenessQuantum = 1000

// PageIndicatorStyle configures a [PageIndicator].
type PageIndicatorStyle struct {
	// ItemCount is the number of dots. Values below 1 are treated as 1.
	ItemCount int
	// Radius is the dot radius.
	Radius float64
	// StripeWidth is how much a fully selected dot stretches into a pill.
	StripeWidth float64
	// Spacing is the gap between adjacent dots.
	Spacing float64
	// SelectedColor is the fill of a fully selected dot.
	SelectedColor graphics.Color
	// DeselectedColor is the fill of a plain dot.
	DeselectedColor graphics.Color
	// ClosenessQuantum quantizes the blend factor to 1/ClosenessQuantum steps.
	// Zero or negative disables quantization.
	ClosenessQuantum float64
}

// DefaultPageIndicatorStyle returns five red dots of radius 4.
func DefaultPageIndicatorStyle() PageIndicatorStyle {
	return PageIndicatorStyle{
		ItemCount:        5,
		Radius:           4,
		StripeWidth:      12,
		Spacing:          20,
		SelectedColor:    graphics.ColorRed,
		DeselectedColor:  graphics.ColorRed.WithAlpha(0.3),
		ClosenessQuantum: DefaultClosenessQuantum,
	}
}

// DotLayout is the resolved geometry and fill of one indicator dot.
type DotLayout struct {
	Index int
	// Rect is the dot's bounding box. Plain dots are square.
	Rect graphics.Rect
	// Color is the resolved fill.
	Color graphics.Color
	// Closeness is the blend factor toward the selected appearance.
	Closeness float64
	// Pill is true for the (at most two) dots bounding the active segment.
	Pill bool
}

// PageIndicator renders a row of dots whose two dots nearest the current
// scroll position stretch and recolor as the host scrolls.
//
// The host feeds scroll positions through [PageIndicator.UpdateOffset] and
// paints through [PageIndicator.Paint]. Every mutation calls the
// invalidate callback so the host can schedule a redraw.
type PageIndicator struct {
	style      PageIndicatorStyle
	progress   float64
	invalidate func()
}

// NewPageIndicator creates a page indicator. invalidate may be nil.
func NewPageIndicator(style PageIndicatorStyle, invalidate func()) *PageIndicator {
	p := &PageIndicator{invalidate: invalidate}
	style.ItemCount = sanitizeItemCount(style.ItemCount)
	p.style = style
	return p
}

// Style returns the current configuration.
func (p *PageIndicator) Style() PageIndicatorStyle {
	return p.style
}

// SetStyle replaces the whole configuration.
func (p *PageIndicator) SetStyle(style PageIndicatorStyle) {
	style.ItemCount = sanitizeItemCount(style.ItemCount)
	p.style = style
	p.markNeedsPaint()
}

// ItemCount returns the number of dots.
func (p *PageIndicator) ItemCount() int {
	return p.style.ItemCount
}

// SetItemCount sets the number of dots.
func (p *PageIndicator) SetItemCount(n int) {
	p.style.ItemCount = sanitizeItemCount(n)
	p.markNeedsPaint()
}

// SetRadius sets the dot radius.
func (p *PageIndicator) SetRadius(r float64) {
	p.style.Radius = r
	p.markNeedsPaint()
}

// SetStripeWidth sets the maximum pill elongation.
func (p *PageIndicator) SetStripeWidth(w float64) {
	p.style.StripeWidth = w
	p.markNeedsPaint()
}

// SetSpacing sets the gap between dots.
func (p *PageIndicator) SetSpacing(s float64) {
	p.style.Spacing = s
	p.markNeedsPaint()
}

// SetSelectedColor sets the fully selected fill.
func (p *PageIndicator) SetSelectedColor(c graphics.Color) {
	p.style.SelectedColor = c
	p.markNeedsPaint()
}

// SetDeselectedColor sets the plain dot fill.
func (p *PageIndicator) SetDeselectedColor(c graphics.Color) {
	p.style.DeselectedColor = c
	p.markNeedsPaint()
}

// Progress returns the normalized scroll position in [0, 1].
func (p *PageIndicator) Progress() float64 {
	return p.progress
}

// UpdateOffset derives progress from the host's scroll offset and total
// scrollable extent. A non-positive or non-finite total yields 0, which
// happens while the host's content has not been laid out yet.
func (p *PageIndicator) UpdateOffset(offset, total float64) {
	p.progress = progressFor(offset, total)
	p.markNeedsPaint()
}

func progressFor(offset, total float64) float64 {
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return 0
	}
	v := offset / total
	if math.IsNaN(v) {
		return 0
	}
	return clampFloat(v, 0, 1)
}

// IntrinsicSize is the size of the dot row including a full pill.
func (p *PageIndicator) IntrinsicSize() graphics.Size {
	return graphics.Size{Width: p.totalWidth(), Height: p.style.Radius * 2}
}

func (p *PageIndicator) totalWidth() float64 {
	s := p.style
	return s.Radius*2 + s.StripeWidth + (s.Radius*2+s.Spacing)*float64(s.ItemCount-1)
}

// Layout resolves every dot for the current progress, centered in size.
func (p *PageIndicator) Layout(size graphics.Size) []DotLayout {
	s := p.style
	diameter := s.Radius * 2
	y := size.Height/2 - s.Radius
	x := size.Width/2 - p.totalWidth()/2

	segments := s.ItemCount - 1
	if segments == 0 {
		return []DotLayout{{
			Rect:      graphics.RectFromLTWH(x, y, diameter+s.StripeWidth, diameter),
			Color:     s.SelectedColor,
			Closeness: 1,
			Pill:      true,
		}}
	}

	segmentWidth := 1 / float64(segments)
	// Keep the tolerance well inside a segment so at most two dots bound it.
	tolerance := min(boundaryTolerance, segmentWidth/10)
	// Progress 1 belongs to the last segment, not a segment past the end.
	active := int(math.Floor(p.progress / segmentWidth))
	if active >= segments {
		active = segments - 1
	}
	left := float64(active) * segmentWidth
	right := left + segmentWidth

	colors := animation.TweenColor(s.DeselectedColor, s.SelectedColor)
	dots := make([]DotLayout, s.ItemCount)
	for i := range dots {
		iterProgress := segmentWidth * float64(i)
		if left-iterProgress > tolerance || iterProgress-right > tolerance {
			dots[i] = DotLayout{
				Index: i,
				Rect:  graphics.RectFromLTWH(x, y, diameter, diameter),
				Color: s.DeselectedColor,
			}
			x += diameter + s.Spacing
			continue
		}

		closeness := quantize(1-math.Abs(p.progress-iterProgress)/segmentWidth, s.ClosenessQuantum)
		width := diameter + s.StripeWidth*closeness
		dots[i] = DotLayout{
			Index:     i,
			Rect:      graphics.RectFromLTWH(x, y, width, diameter),
			Color:     colors.Evaluate(closeness),
			Closeness: closeness,
			Pill:      true,
		}
		x += width + s.Spacing
	}
	return dots
}

// Paint draws the dots centered in size.
func (p *PageIndicator) Paint(canvas graphics.Canvas, size graphics.Size) {
	defer errors.Recover("widgets.PageIndicator.Paint")

	radius := p.style.Radius
	for _, dot := range p.Layout(size) {
		paint := graphics.FillPaint(dot.Color)
		if dot.Pill {
			canvas.DrawRRect(graphics.RRectFromRectAndRadius(dot.Rect, graphics.CircularRadius(radius)), paint)
			continue
		}
		canvas.DrawCircle(dot.Rect.Center(), radius, paint)
	}
}

func (p *PageIndicator) markNeedsPaint() {
	if p.invalidate != nil {
		p.invalidate()
	}
}

func quantize(v, quantum float64) float64 {
	if quantum > 0 {
		v = math.Round(v*quantum) / quantum
	}
	return clampFloat(v, 0, 1)
}

func sanitizeItemCount(n int) int {
	if n < 1 {
		log.Printf("widgets: page indicator item count %d raised to 1", n)
		return 1
	}
	return n
}
