package widgets

import "github.com/go-drift/uicontrols/pkg/graphics"

// Drawable is implemented by controls that paint onto a host canvas.
type Drawable interface {
	Paint(canvas graphics.Canvas, size graphics.Size)
}

// EventSink receives editing events from the host's text input primitive.
type EventSink interface {
	// BeginEditing is called when the input gains focus.
	BeginEditing()
	// EndEditing is called when the input loses focus.
	EndEditing()
	// EditingChanged is called after each user edit with the full new text.
	EditingChanged(text string)
}

// TapTarget is implemented by controls that respond to taps routed by the host.
// HandleTap reports whether the tap was consumed.
type TapTarget interface {
	HandleTap(position graphics.Offset) bool
}

var (
	_ Drawable  = (*PageIndicator)(nil)
	_ Drawable  = (*FloatingLabelField)(nil)
	_ EventSink = (*FloatingLabelField)(nil)
	_ TapTarget = (*FloatingLabelField)(nil)
)
