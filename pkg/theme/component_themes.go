package theme

import (
	"github.com/go-drift/uicontrols/pkg/graphics"
	"github.com/go-drift/uicontrols/pkg/widgets"
)

// PageIndicatorThemeData defines default styling for PageIndicator controls.
type PageIndicatorThemeData struct {
	// ItemCount is the number of dots.
	ItemCount int
	// Radius is the dot radius.
	Radius float64
	// StripeWidth is the extra width of a fully selected dot.
	StripeWidth float64
	// Spacing is the gap between dots.
	Spacing float64
	// SelectedColor fills the selected dot.
	SelectedColor graphics.Color
	// DeselectedColor fills every other dot.
	DeselectedColor graphics.Color
}

// DefaultPageIndicatorTheme returns the page indicator defaults.
func DefaultPageIndicatorTheme() PageIndicatorThemeData {
	s := widgets.DefaultPageIndicatorStyle()
	return PageIndicatorThemeData{
		ItemCount:       s.ItemCount,
		Radius:          s.Radius,
		StripeWidth:     s.StripeWidth,
		Spacing:         s.Spacing,
		SelectedColor:   s.SelectedColor,
		DeselectedColor: s.DeselectedColor,
	}
}

// Style converts the theme data to a widget style.
func (d PageIndicatorThemeData) Style() widgets.PageIndicatorStyle {
	s := widgets.DefaultPageIndicatorStyle()
	s.ItemCount = d.ItemCount
	s.Radius = d.Radius
	s.StripeWidth = d.StripeWidth
	s.Spacing = d.Spacing
	s.SelectedColor = d.SelectedColor
	s.DeselectedColor = d.DeselectedColor
	return s
}

// FloatingLabelFieldThemeData defines default styling for FloatingLabelField controls.
type FloatingLabelFieldThemeData struct {
	// TitleColor, ActiveTitleColor and ErrorTitleColor color the title per validity state.
	TitleColor       graphics.Color
	ActiveTitleColor graphics.Color
	ErrorTitleColor  graphics.Color
	// BorderColor, ActiveBorderColor and ErrorBorderColor color the border per validity state.
	BorderColor       graphics.Color
	ActiveBorderColor graphics.Color
	ErrorBorderColor  graphics.Color
	// TextColor is the entered text color.
	TextColor graphics.Color
	// PlaceholderColor is the placeholder text color.
	PlaceholderColor graphics.Color
	// BackgroundColor fills the field and the title pill.
	BackgroundColor graphics.Color
	// TintColor is the show/hide toggle color.
	TintColor graphics.Color
	// TitleFontSize, TextFontSize and ToggleFontSize size the three text runs.
	TitleFontSize  float64
	TextFontSize   float64
	ToggleFontSize float64
	// TitleInsets pad the title inside its pill.
	TitleInsets graphics.EdgeInsets
	// TextInsets pad the entered text inside the border.
	TextInsets graphics.EdgeInsets
	// Alignment is left, start or center.
	Alignment graphics.TextAlign
	// BorderWidth is the border stroke width.
	BorderWidth float64
	// CornerRadius rounds the border.
	CornerRadius float64
}

// DefaultFloatingLabelFieldTheme returns the floating label field defaults.
func DefaultFloatingLabelFieldTheme() FloatingLabelFieldThemeData {
	s := widgets.DefaultFloatingLabelStyle()
	return FloatingLabelFieldThemeData{
		TitleColor:        s.TitleColor,
		ActiveTitleColor:  s.ActiveTitleColor,
		ErrorTitleColor:   s.ErrorTitleColor,
		BorderColor:       s.BorderColor,
		ActiveBorderColor: s.ActiveBorderColor,
		ErrorBorderColor:  s.ErrorBorderColor,
		TextColor:         s.TextColor,
		PlaceholderColor:  s.PlaceholderColor,
		BackgroundColor:   s.BackgroundColor,
		TintColor:         s.TintColor,
		TitleFontSize:     s.TitleFontSize,
		TextFontSize:      s.TextFontSize,
		ToggleFontSize:    s.ToggleFontSize,
		TitleInsets:       s.TitleInsets,
		TextInsets:        s.TextInsets,
		Alignment:         s.Alignment,
		BorderWidth:       s.BorderWidth,
		CornerRadius:      s.CornerRadius,
	}
}

// Style converts the theme data to a widget style with the given placeholder.
func (d FloatingLabelFieldThemeData) Style(placeholder string) widgets.FloatingLabelStyle {
	return widgets.FloatingLabelStyle{
		TitleColor:        d.TitleColor,
		ActiveTitleColor:  d.ActiveTitleColor,
		ErrorTitleColor:   d.ErrorTitleColor,
		BorderColor:       d.BorderColor,
		ActiveBorderColor: d.ActiveBorderColor,
		ErrorBorderColor:  d.ErrorBorderColor,
		TextColor:         d.TextColor,
		PlaceholderColor:  d.PlaceholderColor,
		BackgroundColor:   d.BackgroundColor,
		TintColor:         d.TintColor,
		TitleFontSize:     d.TitleFontSize,
		TextFontSize:      d.TextFontSize,
		ToggleFontSize:    d.ToggleFontSize,
		TitleInsets:       d.TitleInsets,
		TextInsets:        d.TextInsets,
		Alignment:         d.Alignment,
		BorderWidth:       d.BorderWidth,
		CornerRadius:      d.CornerRadius,
		Placeholder:       placeholder,
	}
}
