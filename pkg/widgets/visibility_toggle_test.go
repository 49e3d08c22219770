package widgets

import (
	"testing"
	"time"

	"github.com/go-drift/uicontrols/pkg/graphics"
	drifttest "github.com/go-drift/uicontrols/pkg/testing"
)

func TestVisibilityToggle_SizeFitsBothTitles(t *testing.T) {
	style := graphics.TextStyle{Color: graphics.ColorPurple, FontSize: 15}
	toggle := newVisibilityToggle(style, graphics.DefaultFontManager(), nil)
	defer toggle.dispose()

	show, _ := graphics.LayoutText("Show", style, graphics.DefaultFontManager())
	hide, _ := graphics.LayoutText("Hide", style, graphics.DefaultFontManager())
	size := toggle.Size()
	if size.Width < show.Size.Width || size.Width < hide.Size.Width {
		t.Errorf("expected width to fit both titles, got %v", size.Width)
	}

	before := toggle.Size()
	toggle.setSelected(true)
	if toggle.Size() != before {
		t.Error("expected size independent of selection")
	}
}

func TestVisibilityToggle_Fade(t *testing.T) {
	clk := drifttest.InstallClock(t)
	calls := 0
	toggle := newVisibilityToggle(graphics.TextStyle{FontSize: 15}, graphics.DefaultFontManager(), func() { calls++ })
	defer toggle.dispose()

	toggle.setVisible(true, true)
	if !toggle.Visible() || toggle.Opacity() != 0 {
		t.Fatalf("expected logical visibility before the fade, got visible=%v opacity=%v", toggle.Visible(), toggle.Opacity())
	}
	drifttest.Settle(clk, 300*time.Millisecond)
	if toggle.Opacity() != 1 {
		t.Errorf("expected opaque after 300ms, got %v", toggle.Opacity())
	}
	if calls == 0 {
		t.Error("expected fade frames to invalidate")
	}

	toggle.setVisible(false, false)
	if toggle.Visible() || toggle.Opacity() != 0 {
		t.Errorf("expected immediate hide, got visible=%v opacity=%v", toggle.Visible(), toggle.Opacity())
	}
}

func TestVisibilityToggle_PaintSkippedWhenTransparent(t *testing.T) {
	toggle := newVisibilityToggle(graphics.TextStyle{FontSize: 15}, graphics.DefaultFontManager(), nil)
	defer toggle.dispose()

	ops := drifttest.Record(graphics.Size{Width: 100, Height: 40}, func(c graphics.Canvas, _ graphics.Size) {
		toggle.Paint(c)
	})
	if len(ops) != 0 {
		t.Errorf("expected nothing drawn while hidden, got %v", ops)
	}
}
