package widgets

import "github.com/go-drift/uicontrols/pkg/graphics"

// TextInput is the host text-entry primitive a [FloatingLabelField] wraps.
//
// The host keeps its native input in sync with these setters and reports
// edits back through the field's [EventSink] methods.
type TextInput interface {
	Text() string
	SetText(text string)
	Placeholder() string
	SetPlaceholder(placeholder string)
	// Obscure reports whether entry is masked.
	Obscure() bool
	SetObscure(obscure bool)
	Alignment() graphics.TextAlign
	SetAlignment(align graphics.TextAlign)
	TextInsets() graphics.EdgeInsets
	SetTextInsets(insets graphics.EdgeInsets)
	Frame() graphics.Rect
	SetFrame(frame graphics.Rect)
}

// InsetTextInput is an in-memory [TextInput] whose text and editing areas
// are its frame inset by TextInsets. Hosts without a native input, and
// tests, use it directly.
type InsetTextInput struct {
	text        string
	placeholder string
	obscure     bool
	alignment   graphics.TextAlign
	insets      graphics.EdgeInsets
	frame       graphics.Rect

	// ContentType is an autofill hint forwarded to the host (e.g. "password").
	ContentType string
}

// NewInsetTextInput creates an empty, left-aligned input.
func NewInsetTextInput() *InsetTextInput {
	return &InsetTextInput{alignment: graphics.TextAlignLeft}
}

func (in *InsetTextInput) Text() string                        { return in.text }
func (in *InsetTextInput) SetText(text string)                 { in.text = text }
func (in *InsetTextInput) Placeholder() string                 { return in.placeholder }
func (in *InsetTextInput) SetPlaceholder(p string)             { in.placeholder = p }
func (in *InsetTextInput) Obscure() bool                       { return in.obscure }
func (in *InsetTextInput) SetObscure(obscure bool)             { in.obscure = obscure }
func (in *InsetTextInput) Alignment() graphics.TextAlign       { return in.alignment }
func (in *InsetTextInput) SetAlignment(a graphics.TextAlign)   { in.alignment = a }
func (in *InsetTextInput) TextInsets() graphics.EdgeInsets     { return in.insets }
func (in *InsetTextInput) SetTextInsets(e graphics.EdgeInsets) { in.insets = e }
func (in *InsetTextInput) Frame() graphics.Rect                { return in.frame }
func (in *InsetTextInput) SetFrame(frame graphics.Rect)        { in.frame = frame }

// SetContentType sets the autofill hint.
func (in *InsetTextInput) SetContentType(contentType string) { in.ContentType = contentType }

// TextRect returns the area text is drawn in for the given bounds.
func (in *InsetTextInput) TextRect(bounds graphics.Rect) graphics.Rect {
	return bounds.Inset(in.insets)
}

// EditingRect returns the area text is edited in for the given bounds.
func (in *InsetTextInput) EditingRect(bounds graphics.Rect) graphics.Rect {
	return bounds.Inset(in.insets)
}

// DisplayText returns the text as it should appear on screen, masked when
// entry is obscured.
func DisplayText(input TextInput) string {
	text := input.Text()
	if !input.Obscure() || text == "" {
		return text
	}
	masked := make([]rune, 0, len(text))
	for range text {
		masked = append(masked, '•')
	}
	return string(masked)
}
