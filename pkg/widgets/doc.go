// Package widgets provides two custom-drawn controls and the small host
// capability interfaces they are driven through.
//
//   - [PageIndicator]: a row of dots whose neighbors of the current scroll
//     position morph into a traveling pill.
//   - [FloatingLabelField]: a bordered text input whose title floats above
//     the border once text is entered, with normal/active/error states and
//     an optional show/hide toggle for secure entry.
//
// # Host Integration
//
// Controls do not own a window or an event loop. The host:
//
//   - paints through [Drawable.Paint] onto any [graphics.Canvas];
//   - routes input events through [EventSink] and taps through [TapTarget];
//   - schedules a redraw whenever the invalidate callback fires;
//   - calls animation.StepTickers once per frame while transitions run.
//
// All calls happen on the host's UI thread. Controls hold no locks.
//
// # Construction
//
// Controls take an explicit style struct. Start from the defaults and
// override fields, or load a theme file with package theme:
//
//	style := widgets.DefaultPageIndicatorStyle()
//	style.ItemCount = 3
//	indicator := widgets.NewPageIndicator(style, view.SetNeedsDisplay)
//	indicator.UpdateOffset(scrollX, contentWidth-viewportWidth)
package widgets
