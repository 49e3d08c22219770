package widgets

import (
	"fmt"
	"time"

	"github.com/go-drift/uicontrols/pkg/animation"
	"github.com/go-drift/uicontrols/pkg/errors"
	"github.com/go-drift/uicontrols/pkg/graphics"
)

const (
	// titleTransitionDuration is how long the title takes to float up or sink.
	titleTransitionDuration = 100 * time.Millisecond
	// titleSinkOffset is how far below its floating position the hidden title sits.
	titleSinkOffset = 10
	// inputTopOffset leaves room above the bordered input for the floating title.
	inputTopOffset = 7
	// titleHorizontalGap is the leading title inset and the toggle's trailing inset.
	titleHorizontalGap = 12
	// toggleTextGap separates entered text from the toggle.
	toggleTextGap = 8
	// FloatingLabelFieldHeight is the field's intrinsic height.
	FloatingLabelFieldHeight = 47
)

// ValidityState selects the title and border colors of a [FloatingLabelField].
type ValidityState int

const (
	// ValidityNormal is the resting state.
	ValidityNormal ValidityState = iota
	// ValidityActive is the focused or being-edited state.
	ValidityActive
	// ValidityError is set by the host after failed validation. Focus does
	// not clear it; typing does.
	ValidityError
)

// String returns a human-readable representation of the validity state.
func (s ValidityState) String() string {
	switch s {
	case ValidityNormal:
		return "normal"
	case ValidityActive:
		return "active"
	case ValidityError:
		return "error"
	default:
		return fmt.Sprintf("ValidityState(%d)", int(s))
	}
}

// SecurityState controls masked entry.
type SecurityState struct {
	// Secure masks the entered text.
	Secure bool
	// WithToggle shows a show/hide toggle while text is non-empty.
	// Ignored unless Secure is set.
	WithToggle bool
}

// SecurityPlain is unmasked entry.
var SecurityPlain = SecurityState{}

// SecureEntry returns a masked security state.
func SecureEntry(withToggle bool) SecurityState {
	return SecurityState{Secure: true, WithToggle: withToggle}
}

func (s SecurityState) hasToggle() bool {
	return s.Secure && s.WithToggle
}

// String returns a human-readable representation of the security state.
func (s SecurityState) String() string {
	switch {
	case !s.Secure:
		return "plain"
	case s.WithToggle:
		return "secure(toggle)"
	default:
		return "secure"
	}
}

// EditingState is the title display mode, derived from whether text is empty.
type EditingState int

const (
	// EditingPlaceholderShown hides the title; the placeholder is visible.
	EditingPlaceholderShown EditingState = iota
	// EditingTextShown floats the title above the input.
	EditingTextShown
)

// String returns a human-readable representation of the editing state.
func (s EditingState) String() string {
	if s == EditingTextShown {
		return "text"
	}
	return "placeholder"
}

func editingStateFor(text string) EditingState {
	if text == "" {
		return EditingPlaceholderShown
	}
	return EditingTextShown
}

// FloatingLabelStyle configures a [FloatingLabelField].
type FloatingLabelStyle struct {
	TitleColor       graphics.Color
	ActiveTitleColor graphics.Color
	ErrorTitleColor  graphics.Color

	BorderColor       graphics.Color
	ActiveBorderColor graphics.Color
	ErrorBorderColor  graphics.Color

	TextColor        graphics.Color
	PlaceholderColor graphics.Color
	BackgroundColor  graphics.Color
	// TintColor colors the toggle title.
	TintColor graphics.Color

	TitleFontSize  float64
	TextFontSize   float64
	ToggleFontSize float64

	// TitleInsets pad the title text inside its background pill.
	TitleInsets graphics.EdgeInsets
	// TextInsets pad entered text inside the bordered input.
	TextInsets graphics.EdgeInsets

	// Alignment positions the title and text. Only left/start (leading) and
	// center are supported.
	Alignment graphics.TextAlign

	BorderWidth  float64
	CornerRadius float64

	// Placeholder is shown in the empty input and reused as the title.
	Placeholder string
}

// DefaultFloatingLabelStyle returns black-on-white styling with purple
// active and red error accents.
func DefaultFloatingLabelStyle() FloatingLabelStyle {
	return FloatingLabelStyle{
		TitleColor:        graphics.ColorBlack,
		ActiveTitleColor:  graphics.ColorPurple,
		ErrorTitleColor:   graphics.ColorRed,
		BorderColor:       graphics.ColorBlack.WithAlpha(0.3),
		ActiveBorderColor: graphics.ColorPurple,
		ErrorBorderColor:  graphics.ColorRed,
		TextColor:         graphics.ColorBlack,
		PlaceholderColor:  graphics.ColorBlack.WithAlpha(0.3),
		BackgroundColor:   graphics.ColorWhite,
		TintColor:         graphics.ColorPurple,
		TitleFontSize:     12,
		TextFontSize:      17,
		ToggleFontSize:    15,
		TitleInsets:       graphics.EdgeInsets{Left: 5, Right: 5},
		TextInsets:        graphics.EdgeInsets{Left: 8},
		Alignment:         graphics.TextAlignLeft,
		BorderWidth:       1,
		CornerRadius:      8,
	}
}

// titleAlignment is the supported subset of graphics.TextAlign.
type titleAlignment int

const (
	titleLeading titleAlignment = iota
	titleCentered
)

// ValidateAlignment reports whether a can position the floating title.
func ValidateAlignment(a graphics.TextAlign) error {
	_, err := resolveAlignment(a)
	return err
}

func resolveAlignment(a graphics.TextAlign) (titleAlignment, error) {
	switch a {
	case graphics.TextAlignLeft, graphics.TextAlignStart:
		return titleLeading, nil
	case graphics.TextAlignCenter:
		return titleCentered, nil
	default:
		return 0, &errors.ConfigError{
			Field:  "alignment",
			Value:  a.String(),
			Reason: "floating title supports left, start or center",
		}
	}
}

// FloatingLabelFieldOption customizes a field at construction.
type FloatingLabelFieldOption func(*FloatingLabelField)

// WithInvalidate sets the callback fired whenever the field needs repainting.
func WithInvalidate(fn func()) FloatingLabelFieldOption {
	return func(f *FloatingLabelField) { f.invalidate = fn }
}

// WithFontManager overrides the font manager used to measure text.
func WithFontManager(m *graphics.FontManager) FloatingLabelFieldOption {
	return func(f *FloatingLabelField) { f.fonts = m }
}

// WithSecurity sets the initial security state.
func WithSecurity(s SecurityState) FloatingLabelFieldOption {
	return func(f *FloatingLabelField) { f.security = s }
}

// FloatingLabelField pairs a bordered text input with a title that floats
// above the border while the input holds text.
//
// Two independent state machines drive it. The editing state follows text
// emptiness and moves the title; user edits animate the move, programmatic
// [FloatingLabelField.SetText] applies it immediately. While an animated
// move is settling, layout leaves the title frame alone; the controller's
// completion status ends the settling phase and triggers a fresh layout.
// The validity state follows focus and edit events and picks colors.
type FloatingLabelField struct {
	style      FloatingLabelStyle
	alignment  titleAlignment
	input      TextInput
	fonts      *graphics.FontManager
	invalidate func()

	validity ValidityState
	security SecurityState
	editing  EditingState
	revealed bool
	settling bool

	// title is 0 for the sunk, transparent placeholder visual and 1 for the
	// floating, opaque text visual.
	title       *animation.AnimationController
	titleOffset *animation.Tween[float64]
	toggle      *VisibilityToggle

	size       graphics.Size
	titleFrame graphics.Rect
	laidOut    bool
}

// NewFloatingLabelField creates a field over input. A nil input gets an
// [InsetTextInput]. An unsupported style alignment is rejected.
func NewFloatingLabelField(style FloatingLabelStyle, input TextInput, opts ...FloatingLabelFieldOption) (*FloatingLabelField, error) {
	alignment, err := resolveAlignment(style.Alignment)
	if err != nil {
		return nil, errors.ReportConfig("widgets.NewFloatingLabelField", err.(*errors.ConfigError))
	}
	if input == nil {
		input = NewInsetTextInput()
	}

	f := &FloatingLabelField{
		style:       style,
		alignment:   alignment,
		input:       input,
		fonts:       graphics.DefaultFontManager(),
		title:       animation.NewAnimationController(titleTransitionDuration),
		titleOffset: animation.TweenFloat64(titleSinkOffset, 0),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.title.Curve = animation.EaseInOut
	f.title.AddListener(f.markNeedsPaint)
	f.title.AddStatusListener(f.onTitleStatus)
	f.toggle = newVisibilityToggle(graphics.TextStyle{Color: style.TintColor, FontSize: style.ToggleFontSize}, f.fonts, f.markNeedsPaint)

	input.SetPlaceholder(style.Placeholder)
	input.SetAlignment(style.Alignment)
	input.SetTextInsets(style.TextInsets)
	input.SetObscure(f.security.Secure)

	f.editing = editingStateFor(input.Text())
	f.title.SetValue(f.editing.titleValue())
	f.updateToggleVisibility(false)
	return f, nil
}

func (s EditingState) titleValue() float64 {
	if s == EditingTextShown {
		return 1
	}
	return 0
}

// Input returns the wrapped text input.
func (f *FloatingLabelField) Input() TextInput {
	return f.input
}

// Style returns the current style.
func (f *FloatingLabelField) Style() FloatingLabelStyle {
	return f.style
}

// SetStyle replaces the style. The alignment is validated first; on error
// the field is left unchanged.
func (f *FloatingLabelField) SetStyle(style FloatingLabelStyle) error {
	alignment, err := resolveAlignment(style.Alignment)
	if err != nil {
		return errors.ReportConfig("widgets.FloatingLabelField.SetStyle", err.(*errors.ConfigError))
	}
	f.style = style
	f.alignment = alignment
	f.input.SetPlaceholder(style.Placeholder)
	f.input.SetAlignment(style.Alignment)
	f.input.SetTextInsets(style.TextInsets)
	f.toggle.Style = graphics.TextStyle{Color: style.TintColor, FontSize: style.ToggleFontSize}
	f.markNeedsLayout()
	return nil
}

// Text returns the current content.
func (f *FloatingLabelField) Text() string {
	return f.input.Text()
}

// SetText replaces the content programmatically. The title jumps to its
// new position without animating.
func (f *FloatingLabelField) SetText(text string) {
	f.input.SetText(text)
	f.updateTitleVisibility(false)
	f.updateToggleVisibility(false)
	f.markNeedsLayout()
}

// EditingState returns the derived title display mode.
func (f *FloatingLabelField) EditingState() EditingState {
	return f.editing
}

// IsSettling reports whether an animated title transition is in flight.
func (f *FloatingLabelField) IsSettling() bool {
	return f.settling
}

// ValidityState returns the current validity state.
func (f *FloatingLabelField) ValidityState() ValidityState {
	return f.validity
}

// SetValidityState sets the validity state and recolors title and border.
func (f *FloatingLabelField) SetValidityState(s ValidityState) {
	if f.validity == s {
		return
	}
	f.validity = s
	f.markNeedsPaint()
}

// SecurityState returns the current security state.
func (f *FloatingLabelField) SecurityState() SecurityState {
	return f.security
}

// SetSecurityState switches masked entry. Any reveal from the toggle is
// discarded so a newly secured field always starts masked.
func (f *FloatingLabelField) SetSecurityState(s SecurityState) {
	f.security = s
	f.revealed = false
	f.toggle.setSelected(false)
	f.input.SetObscure(s.Secure)
	f.updateToggleVisibility(true)
	f.markNeedsLayout()
}

// SetPlaceholder sets the placeholder and title text.
func (f *FloatingLabelField) SetPlaceholder(placeholder string) {
	f.style.Placeholder = placeholder
	f.input.SetPlaceholder(placeholder)
	f.markNeedsLayout()
}

// SetAlignment sets the title and text alignment. Only left, start and
// center are supported; anything else is rejected and leaves the field unchanged.
func (f *FloatingLabelField) SetAlignment(a graphics.TextAlign) error {
	alignment, err := resolveAlignment(a)
	if err != nil {
		return errors.ReportConfig("widgets.FloatingLabelField.SetAlignment", err.(*errors.ConfigError))
	}
	f.alignment = alignment
	f.style.Alignment = a
	f.input.SetAlignment(a)
	f.markNeedsLayout()
	return nil
}

// SetTextContentType forwards an autofill hint to inputs that accept one.
func (f *FloatingLabelField) SetTextContentType(contentType string) {
	if in, ok := f.input.(interface{ SetContentType(string) }); ok {
		in.SetContentType(contentType)
	}
}

// SetTitleInsets sets the padding around the title text.
func (f *FloatingLabelField) SetTitleInsets(insets graphics.EdgeInsets) {
	f.style.TitleInsets = insets
	f.markNeedsLayout()
}

// Toggle returns the show/hide toggle.
func (f *FloatingLabelField) Toggle() *VisibilityToggle {
	return f.toggle
}

// ToggleVisible reports whether the show/hide toggle is shown.
func (f *FloatingLabelField) ToggleVisible() bool {
	return f.toggle.Visible()
}

// Revealed reports whether the toggle has unmasked secure entry.
func (f *FloatingLabelField) Revealed() bool {
	return f.revealed
}

// TogglePressed flips between revealed and masked entry. The security
// state itself is unchanged.
func (f *FloatingLabelField) TogglePressed() {
	if !f.security.Secure {
		return
	}
	f.revealed = !f.revealed
	f.toggle.setSelected(f.revealed)
	f.input.SetObscure(!f.revealed)
	f.markNeedsPaint()
}

// HandleTap presses the toggle when the tap lands on it.
func (f *FloatingLabelField) HandleTap(position graphics.Offset) bool {
	if !f.toggle.HitTest(position) {
		return false
	}
	f.TogglePressed()
	return true
}

// BeginEditing activates the field unless it shows an error.
func (f *FloatingLabelField) BeginEditing() {
	if f.validity != ValidityError {
		f.SetValidityState(ValidityActive)
	}
}

// EndEditing returns the field to normal.
func (f *FloatingLabelField) EndEditing() {
	f.SetValidityState(ValidityNormal)
}

// EditingChanged records a user edit. Editing always activates the field,
// clearing an error, and animates the title and toggle.
func (f *FloatingLabelField) EditingChanged(text string) {
	f.input.SetText(text)
	f.SetValidityState(ValidityActive)
	f.updateTitleVisibility(true)
	f.updateToggleVisibility(true)
	f.markNeedsLayout()
}

// TitleColor is the title color for the current validity state.
func (f *FloatingLabelField) TitleColor() graphics.Color {
	switch f.validity {
	case ValidityActive:
		return f.style.ActiveTitleColor
	case ValidityError:
		return f.style.ErrorTitleColor
	default:
		return f.style.TitleColor
	}
}

// BorderColor is the border color for the current validity state.
func (f *FloatingLabelField) BorderColor() graphics.Color {
	switch f.validity {
	case ValidityActive:
		return f.style.ActiveBorderColor
	case ValidityError:
		return f.style.ErrorBorderColor
	default:
		return f.style.BorderColor
	}
}

// TitleOpacity is the title's current, possibly mid-transition, opacity.
func (f *FloatingLabelField) TitleOpacity() float64 {
	return f.title.Value
}

// TitleOffset is how far below its floating position the title is drawn.
func (f *FloatingLabelField) TitleOffset() float64 {
	return f.titleOffset.Transform(f.title)
}

// TitleFrame is the title's floating-position frame from the last layout.
func (f *FloatingLabelField) TitleFrame() graphics.Rect {
	return f.titleFrame
}

// IntrinsicSize reports the preferred height; width is left to the host.
func (f *FloatingLabelField) IntrinsicSize() graphics.Size {
	return graphics.Size{Height: FloatingLabelFieldHeight}
}

func (f *FloatingLabelField) updateTitleVisibility(animated bool) {
	next := editingStateFor(f.input.Text())
	if next == f.editing {
		return
	}
	f.editing = next
	if !animated {
		f.settling = false
		f.title.SetValue(next.titleValue())
		return
	}
	f.settling = true
	if next == EditingTextShown {
		f.title.Forward()
	} else {
		f.title.Reverse()
	}
}

func (f *FloatingLabelField) onTitleStatus(status animation.AnimationStatus) {
	if !status.IsSettled() || !f.settling {
		return
	}
	f.settling = false
	f.markNeedsLayout()
}

func (f *FloatingLabelField) updateToggleVisibility(animated bool) {
	if !f.security.hasToggle() {
		f.toggle.setVisible(false, false)
		return
	}
	f.toggle.setVisible(f.input.Text() != "", animated)
}

// Layout positions the input, the toggle and, unless a title transition is
// settling, the title within size.
func (f *FloatingLabelField) Layout(size graphics.Size) {
	f.size = size
	f.laidOut = true

	inputFrame := graphics.RectFromLTWH(0, inputTopOffset, size.Width, size.Height-inputTopOffset)
	f.input.SetFrame(inputFrame)

	toggleSize := f.toggle.Size()
	insets := f.style.TextInsets
	if f.toggle.Visible() {
		insets.Right += toggleSize.Width + toggleTextGap
	}
	f.input.SetTextInsets(insets)
	f.toggle.center = graphics.Offset{
		X: size.Width - toggleSize.Width/2 - titleHorizontalGap,
		Y: size.Height/2 + inputTopOffset/2.0,
	}

	if f.settling {
		return
	}

	title := f.titleLayout()
	labelSize := graphics.Size{
		Width:  title.Size.Width + f.style.TitleInsets.Horizontal(),
		Height: title.Size.Height + f.style.TitleInsets.Vertical(),
	}
	labelY := inputFrame.Top - labelSize.Height/2
	switch f.alignment {
	case titleCentered:
		f.titleFrame = graphics.RectFromLTWH(inputFrame.Center().X-labelSize.Width/2, labelY, labelSize.Width, labelSize.Height)
	default:
		f.titleFrame = graphics.RectFromLTWH(titleHorizontalGap, labelY, labelSize.Width, labelSize.Height)
	}
}

func (f *FloatingLabelField) titleLayout() *graphics.TextLayout {
	style := graphics.TextStyle{FontSize: f.style.TitleFontSize}.WithColor(f.TitleColor())
	layout, _ := graphics.LayoutText(f.style.Placeholder, style, f.fonts)
	return layout
}

// Paint draws the field into size, laying it out first if needed.
func (f *FloatingLabelField) Paint(canvas graphics.Canvas, size graphics.Size) {
	defer errors.Recover("widgets.FloatingLabelField.Paint")

	if !f.laidOut || size != f.size {
		f.Layout(size)
	}
	s := f.style
	bounds := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	canvas.DrawRect(bounds, graphics.FillPaint(s.BackgroundColor))

	inputFrame := f.input.Frame()
	canvas.DrawRRect(
		graphics.RRectFromRectAndRadius(inputFrame, graphics.CircularRadius(s.CornerRadius)),
		graphics.StrokePaint(f.BorderColor(), s.BorderWidth),
	)

	f.paintContent(canvas, inputFrame)
	f.paintTitle(canvas)
	f.toggle.Paint(canvas)
}

func (f *FloatingLabelField) paintContent(canvas graphics.Canvas, inputFrame graphics.Rect) {
	s := f.style
	textRect := inputFrame.Inset(f.input.TextInsets())
	style := graphics.TextStyle{FontSize: s.TextFontSize}.WithColor(s.TextColor)
	content := DisplayText(f.input)
	if content == "" {
		content, style = s.Placeholder, style.WithColor(s.PlaceholderColor)
	}
	if content == "" {
		return
	}
	layout, _ := graphics.LayoutText(content, style, f.fonts)
	x := textRect.Left
	if f.alignment == titleCentered {
		x = textRect.Center().X - layout.Size.Width/2
	}
	canvas.DrawText(layout, graphics.Offset{X: x, Y: textRect.Center().Y - layout.Size.Height/2})
}

func (f *FloatingLabelField) paintTitle(canvas graphics.Canvas) {
	alpha := f.TitleOpacity()
	if alpha <= 0 || f.style.Placeholder == "" {
		return
	}
	frame := f.titleFrame
	canvas.SaveLayerAlpha(frame, alpha)
	canvas.Translate(0, f.TitleOffset())
	canvas.DrawRect(frame, graphics.FillPaint(f.style.BackgroundColor))
	canvas.DrawText(f.titleLayout(), graphics.Offset{
		X: frame.Left + f.style.TitleInsets.Left,
		Y: frame.Top + f.style.TitleInsets.Top,
	})
	canvas.Restore()
}

func (f *FloatingLabelField) markNeedsLayout() {
	if f.laidOut {
		f.Layout(f.size)
	}
	f.markNeedsPaint()
}

func (f *FloatingLabelField) markNeedsPaint() {
	if f.invalidate != nil {
		f.invalidate()
	}
}

// Dispose stops running transitions and releases listeners.
func (f *FloatingLabelField) Dispose() {
	f.title.Dispose()
	f.toggle.dispose()
}
