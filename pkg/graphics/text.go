package graphics

import (
	stderrors "errors"
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/go-drift/uicontrols/pkg/errors"
)

// defaultFontSize is used when a TextStyle leaves FontSize unset.
const defaultFontSize = 17

// TextAlign controls horizontal alignment of text within its box.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge.
	TextAlignLeft TextAlign = iota
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignJustify stretches lines so both edges are flush.
	TextAlignJustify
	// TextAlignStart aligns text to the leading edge. Behaves like
	// [TextAlignLeft] (LTR only).
	TextAlignStart
	// TextAlignEnd aligns text to the trailing edge. Behaves like
	// [TextAlignRight] (LTR only).
	TextAlignEnd
)

// String returns a human-readable representation of the text alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	case TextAlignJustify:
		return "justify"
	case TextAlignStart:
		return "start"
	case TextAlignEnd:
		return "end"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text    string
	Style   TextStyle
	Size    Size
	Ascent  float64
	Descent float64
	Face    font.Face
}

// FontManager resolves font faces for text styles, caching one face per size.
type FontManager struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager backed by the given TrueType/OpenType data.
func NewFontManager(data []byte) (*FontManager, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontManager{font: f, faces: make(map[float64]font.Face)}, nil
}

// DefaultFontManagerErr returns a shared font manager with the bundled Go Regular font.
// It returns both the manager and any error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager(goregular.TTF)
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.ControlError{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns the shared font manager, or nil if the bundled
// font failed to load.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// Face resolves a font face for the given style.
func (m *FontManager) Face(style TextStyle) (font.Face, error) {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.1fpt: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// LayoutText measures a single line of text.
//
// When manager is nil or cannot produce a face, the fixed 7x13 bitmap face
// is used so layout never fails outright.
func LayoutText(text string, style TextStyle, manager *FontManager) (*TextLayout, error) {
	var face font.Face
	var err error
	if manager == nil {
		err = stderrors.New("font manager required")
	} else {
		face, err = manager.Face(style)
	}
	if err != nil {
		face = basicfont.Face7x13
	}

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	width := fixedToFloat(font.MeasureString(face, text))

	return &TextLayout{
		Text:    text,
		Style:   style,
		Size:    Size{Width: math.Ceil(width), Height: math.Ceil(ascent + descent)},
		Ascent:  ascent,
		Descent: descent,
		Face:    face,
	}, err
}

func fixedToFloat[T ~int32](v T) float64 {
	return float64(v) / 64
}
