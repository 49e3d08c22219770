package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/uicontrols/pkg/graphics"
)

func TestRecord_SerializesOpsInOrder(t *testing.T) {
	size := graphics.Size{Width: 40, Height: 20}
	ops := Record(size, func(c graphics.Canvas, _ graphics.Size) {
		c.SaveLayerAlpha(graphics.RectFromLTWH(0, 0, 40, 20), 0.5)
		c.Translate(0, 10)
		c.DrawCircle(graphics.Offset{X: 4, Y: 10}, 4, graphics.FillPaint(graphics.ColorRed))
		c.Restore()
	})

	want := []DisplayOp{
		{Op: "saveLayerAlpha", Params: map[string]any{
			"bounds": map[string]any{"left": 0.0, "top": 0.0, "right": 40.0, "bottom": 20.0},
			"alpha":  0.5,
		}},
		{Op: "translate", Params: map[string]any{"dx": 0.0, "dy": 10.0}},
		{Op: "drawCircle", Params: map[string]any{
			"cx": 4.0, "cy": 10.0, "radius": 4.0, "color": "0xFFFF0000",
		}},
		{Op: "restore"},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestOpsNamedAndRectOf(t *testing.T) {
	ops := Record(graphics.Size{Width: 10, Height: 10}, func(c graphics.Canvas, _ graphics.Size) {
		c.DrawRect(graphics.RectFromLTWH(1, 2, 3, 4), graphics.DefaultPaint())
		c.DrawRRect(graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, 8, 8), graphics.CircularRadius(4)), graphics.DefaultPaint())
	})

	rects := OpsNamed(ops, "drawRect")
	if len(rects) != 1 {
		t.Fatalf("expected 1 drawRect, got %d", len(rects))
	}
	l, top, r, b := RectOf(rects[0])
	if l != 1 || top != 2 || r != 4 || b != 6 {
		t.Errorf("RectOf = (%v,%v,%v,%v), want (1,2,4,6)", l, top, r, b)
	}
	if got := OpsNamed(ops, "drawRRect")[0].Params["radius"]; got != 4.0 {
		t.Errorf("radius = %v, want 4", got)
	}
}
