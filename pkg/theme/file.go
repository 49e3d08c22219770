package theme

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/uicontrols/pkg/errors"
	"github.com/go-drift/uicontrols/pkg/graphics"
	"github.com/go-drift/uicontrols/pkg/widgets"
)

// HexColor is a [graphics.Color] written as #RRGGBB or #RRGGBBAA in YAML.
type HexColor graphics.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = HexColor(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c HexColor) MarshalYAML() (any, error) {
	return FormatColor(graphics.Color(c)), nil
}

// ParseColor parses #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, &errors.ConfigError{Field: "color", Value: s, Reason: "expected #RRGGBB or #RRGGBBAA"}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, &errors.ConfigError{Field: "color", Value: s, Reason: "invalid hex digits"}
	}
	if len(hex) == 6 {
		return graphics.Color(0xFF000000 | uint32(v)), nil
	}
	return graphics.Color(uint32(v)<<24 | uint32(v)>>8), nil
}

// FormatColor formats c as #RRGGBB when opaque and #RRGGBBAA otherwise.
func FormatColor(c graphics.Color) string {
	hex := c.Hex()
	if strings.HasSuffix(hex, "FF") {
		return hex[:7]
	}
	return hex
}

// Alignment is a title alignment written by name in YAML.
type Alignment graphics.TextAlign

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Alignment) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseAlignment(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = Alignment(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Alignment) MarshalYAML() (any, error) {
	return graphics.TextAlign(a).String(), nil
}

// ParseAlignment accepts "leading", "left", "start" and "center".
func ParseAlignment(s string) (graphics.TextAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading", "left":
		return graphics.TextAlignLeft, nil
	case "start":
		return graphics.TextAlignStart, nil
	case "center":
		return graphics.TextAlignCenter, nil
	default:
		return 0, &errors.ConfigError{Field: "alignment", Value: s, Reason: "expected leading, left, start or center"}
	}
}

type document struct {
	PageIndicator      pageIndicatorDoc      `yaml:"pageIndicator"`
	FloatingLabelField floatingLabelFieldDoc `yaml:"floatingLabelField"`
}

type pageIndicatorDoc struct {
	ItemCount       int      `yaml:"itemCount"`
	Radius          float64  `yaml:"radius"`
	StripeWidth     float64  `yaml:"stripeWidth"`
	Spacing         float64  `yaml:"spacing"`
	SelectedColor   HexColor `yaml:"selectedColor"`
	DeselectedColor HexColor `yaml:"deselectedColor"`
}

type floatingLabelFieldDoc struct {
	TitleColor        HexColor            `yaml:"titleColor"`
	ActiveTitleColor  HexColor            `yaml:"activeTitleColor"`
	ErrorTitleColor   HexColor            `yaml:"errorTitleColor"`
	BorderColor       HexColor            `yaml:"borderColor"`
	ActiveBorderColor HexColor            `yaml:"activeBorderColor"`
	ErrorBorderColor  HexColor            `yaml:"errorBorderColor"`
	TextColor         HexColor            `yaml:"textColor"`
	PlaceholderColor  HexColor            `yaml:"placeholderColor"`
	BackgroundColor   HexColor            `yaml:"backgroundColor"`
	TintColor         HexColor            `yaml:"tintColor"`
	TitleFontSize     float64             `yaml:"titleFontSize"`
	TextFontSize      float64             `yaml:"textFontSize"`
	ToggleFontSize    float64             `yaml:"toggleFontSize"`
	TitleInsets       graphics.EdgeInsets `yaml:"titleInsets"`
	TextInsets        graphics.EdgeInsets `yaml:"textInsets"`
	Alignment         Alignment           `yaml:"alignment"`
	BorderWidth       float64             `yaml:"borderWidth"`
	CornerRadius      float64             `yaml:"cornerRadius"`
}

func documentOf(t *ThemeData) document {
	p := t.PageIndicatorThemeOf()
	f := t.FloatingLabelFieldThemeOf()
	return document{
		PageIndicator: pageIndicatorDoc{
			ItemCount:       p.ItemCount,
			Radius:          p.Radius,
			StripeWidth:     p.StripeWidth,
			Spacing:         p.Spacing,
			SelectedColor:   HexColor(p.SelectedColor),
			DeselectedColor: HexColor(p.DeselectedColor),
		},
		FloatingLabelField: floatingLabelFieldDoc{
			TitleColor:        HexColor(f.TitleColor),
			ActiveTitleColor:  HexColor(f.ActiveTitleColor),
			ErrorTitleColor:   HexColor(f.ErrorTitleColor),
			BorderColor:       HexColor(f.BorderColor),
			ActiveBorderColor: HexColor(f.ActiveBorderColor),
			ErrorBorderColor:  HexColor(f.ErrorBorderColor),
			TextColor:         HexColor(f.TextColor),
			PlaceholderColor:  HexColor(f.PlaceholderColor),
			BackgroundColor:   HexColor(f.BackgroundColor),
			TintColor:         HexColor(f.TintColor),
			TitleFontSize:     f.TitleFontSize,
			TextFontSize:      f.TextFontSize,
			ToggleFontSize:    f.ToggleFontSize,
			TitleInsets:       f.TitleInsets,
			TextInsets:        f.TextInsets,
			Alignment:         Alignment(f.Alignment),
			BorderWidth:       f.BorderWidth,
			CornerRadius:      f.CornerRadius,
		},
	}
}

func (d document) theme() *ThemeData {
	p := d.PageIndicator
	f := d.FloatingLabelField
	return &ThemeData{
		PageIndicatorTheme: &PageIndicatorThemeData{
			ItemCount:       p.ItemCount,
			Radius:          p.Radius,
			StripeWidth:     p.StripeWidth,
			Spacing:         p.Spacing,
			SelectedColor:   graphics.Color(p.SelectedColor),
			DeselectedColor: graphics.Color(p.DeselectedColor),
		},
		FloatingLabelFieldTheme: &FloatingLabelFieldThemeData{
			TitleColor:        graphics.Color(f.TitleColor),
			ActiveTitleColor:  graphics.Color(f.ActiveTitleColor),
			ErrorTitleColor:   graphics.Color(f.ErrorTitleColor),
			BorderColor:       graphics.Color(f.BorderColor),
			ActiveBorderColor: graphics.Color(f.ActiveBorderColor),
			ErrorBorderColor:  graphics.Color(f.ErrorBorderColor),
			TextColor:         graphics.Color(f.TextColor),
			PlaceholderColor:  graphics.Color(f.PlaceholderColor),
			BackgroundColor:   graphics.Color(f.BackgroundColor),
			TintColor:         graphics.Color(f.TintColor),
			TitleFontSize:     f.TitleFontSize,
			TextFontSize:      f.TextFontSize,
			ToggleFontSize:    f.ToggleFontSize,
			TitleInsets:       f.TitleInsets,
			TextInsets:        f.TextInsets,
			Alignment:         graphics.TextAlign(f.Alignment),
			BorderWidth:       f.BorderWidth,
			CornerRadius:      f.CornerRadius,
		},
	}
}

func (d document) validate() error {
	checks := []struct {
		field string
		value float64
		ok    bool
	}{
		{"pageIndicator.itemCount", float64(d.PageIndicator.ItemCount), d.PageIndicator.ItemCount >= 1},
		{"pageIndicator.radius", d.PageIndicator.Radius, d.PageIndicator.Radius >= 0},
		{"floatingLabelField.titleFontSize", d.FloatingLabelField.TitleFontSize, d.FloatingLabelField.TitleFontSize > 0},
		{"floatingLabelField.textFontSize", d.FloatingLabelField.TextFontSize, d.FloatingLabelField.TextFontSize > 0},
		{"floatingLabelField.toggleFontSize", d.FloatingLabelField.ToggleFontSize, d.FloatingLabelField.ToggleFontSize > 0},
	}
	for _, c := range checks {
		if !c.ok {
			return &errors.ConfigError{Field: c.field, Value: strconv.FormatFloat(c.value, 'g', -1, 64), Reason: "out of range"}
		}
	}
	return nil
}

// Parse reads a YAML theme. Keys that are absent keep their defaults;
// unknown keys are rejected.
func Parse(data []byte) (*ThemeData, error) {
	doc := documentOf(DefaultTheme())
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return doc.theme(), nil
}

// Load reads and parses a YAML theme file. Failures are reported to the
// global error handler as well as returned.
func Load(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, reportTheme(fmt.Errorf("read theme: %w", err))
	}
	t, err := Parse(data)
	if err != nil {
		return nil, reportTheme(fmt.Errorf("%s: %w", path, err))
	}
	return t, nil
}

func reportTheme(err error) error {
	ce := &errors.ControlError{Op: "theme.Load", Kind: errors.KindTheme, Err: err}
	errors.Report(ce)
	return ce
}

// Marshal writes the fully resolved theme as YAML. A field alignment that
// Parse would reject is refused.
func Marshal(t *ThemeData) ([]byte, error) {
	if err := widgets.ValidateAlignment(t.FloatingLabelFieldThemeOf().Alignment); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(documentOf(t)); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return buf.Bytes(), nil
}
