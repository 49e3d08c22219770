package widgets

import (
	"time"

	"github.com/go-drift/uicontrols/pkg/animation"
	"github.com/go-drift/uicontrols/pkg/graphics"
)

// toggleFadeDuration is how long the toggle takes to fade in or out.
const toggleFadeDuration = 300 * time.Millisecond

// VisibilityToggle is the show/hide button of a secure [FloatingLabelField].
//
// Visible is the logical state and changes immediately; Opacity follows it
// over toggleFadeDuration when the change is animated.
type VisibilityToggle struct {
	ShowTitle string
	HideTitle string
	Style     graphics.TextStyle

	selected bool
	visible  bool
	center   graphics.Offset
	fonts    *graphics.FontManager
	opacity  *animation.AnimationController
}

func newVisibilityToggle(style graphics.TextStyle, fonts *graphics.FontManager, invalidate func()) *VisibilityToggle {
	t := &VisibilityToggle{
		ShowTitle: "Show",
		HideTitle: "Hide",
		Style:     style,
		fonts:     fonts,
		opacity:   animation.NewAnimationController(toggleFadeDuration),
	}
	t.opacity.Curve = animation.EaseInOut
	if invalidate != nil {
		t.opacity.AddListener(invalidate)
	}
	return t
}

// Visible reports whether the toggle is shown.
func (t *VisibilityToggle) Visible() bool {
	return t.visible
}

// Selected reports whether the toggle is in its pressed ("Hide") state.
func (t *VisibilityToggle) Selected() bool {
	return t.selected
}

// Opacity returns the current, possibly mid-fade, opacity.
func (t *VisibilityToggle) Opacity() float64 {
	return t.opacity.Value
}

// Title returns the label for the current selected state.
func (t *VisibilityToggle) Title() string {
	if t.selected {
		return t.HideTitle
	}
	return t.ShowTitle
}

func (t *VisibilityToggle) setSelected(selected bool) {
	t.selected = selected
}

func (t *VisibilityToggle) setVisible(visible, animated bool) {
	if visible == t.visible && !t.opacity.IsAnimating() {
		return
	}
	t.visible = visible
	target := 0.0
	if visible {
		target = 1
	}
	if !animated {
		t.opacity.SetValue(target)
		return
	}
	t.opacity.AnimateTo(target)
}

// Size is the toggle's fitted size, wide enough for either title.
func (t *VisibilityToggle) Size() graphics.Size {
	show, _ := graphics.LayoutText(t.ShowTitle, t.Style, t.fonts)
	hide, _ := graphics.LayoutText(t.HideTitle, t.Style, t.fonts)
	return graphics.Size{
		Width:  max(show.Size.Width, hide.Size.Width),
		Height: max(show.Size.Height, hide.Size.Height),
	}
}

// Frame is the toggle's rectangle in field coordinates.
func (t *VisibilityToggle) Frame() graphics.Rect {
	return graphics.RectFromCenter(t.center, t.Size())
}

// HitTest reports whether position falls on the visible toggle.
func (t *VisibilityToggle) HitTest(position graphics.Offset) bool {
	return t.visible && t.Frame().Contains(position)
}

// Paint draws the title centered in the toggle frame at the current opacity.
func (t *VisibilityToggle) Paint(canvas graphics.Canvas) {
	alpha := t.Opacity()
	if alpha <= 0 {
		return
	}
	frame := t.Frame()
	layout, _ := graphics.LayoutText(t.Title(), t.Style, t.fonts)
	canvas.SaveLayerAlpha(frame, alpha)
	canvas.DrawText(layout, graphics.Offset{
		X: frame.Center().X - layout.Size.Width/2,
		Y: frame.Center().Y - layout.Size.Height/2,
	})
	canvas.Restore()
}

func (t *VisibilityToggle) dispose() {
	t.opacity.Dispose()
}
