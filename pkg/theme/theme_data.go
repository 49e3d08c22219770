// Package theme holds default and file-loaded styling for the controls.
//
// A [ThemeData] carries optional per-control theme data; unset entries fall
// back to the controls' defaults. Themes load from YAML files where colors
// are written as #RRGGBB or #RRGGBBAA:
//
//	floatingLabelField:
//	  activeTitleColor: "#6200EE"
//	  alignment: center
//	pageIndicator:
//	  itemCount: 3
package theme

// ThemeData contains theme configuration for the controls.
type ThemeData struct {
	// Component themes - optional, defaults are used if nil.
	PageIndicatorTheme      *PageIndicatorThemeData
	FloatingLabelFieldTheme *FloatingLabelFieldThemeData
}

// DefaultTheme returns a theme with every component at its defaults.
func DefaultTheme() *ThemeData {
	pageIndicator := DefaultPageIndicatorTheme()
	field := DefaultFloatingLabelFieldTheme()
	return &ThemeData{
		PageIndicatorTheme:      &pageIndicator,
		FloatingLabelFieldTheme: &field,
	}
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(pageIndicator *PageIndicatorThemeData, field *FloatingLabelFieldThemeData) *ThemeData {
	result := &ThemeData{
		PageIndicatorTheme:      t.PageIndicatorTheme,
		FloatingLabelFieldTheme: t.FloatingLabelFieldTheme,
	}
	if pageIndicator != nil {
		result.PageIndicatorTheme = pageIndicator
	}
	if field != nil {
		result.FloatingLabelFieldTheme = field
	}
	return result
}

// PageIndicatorThemeOf returns the page indicator theme, or the defaults if not set.
func (t *ThemeData) PageIndicatorThemeOf() PageIndicatorThemeData {
	if t != nil && t.PageIndicatorTheme != nil {
		return *t.PageIndicatorTheme
	}
	return DefaultPageIndicatorTheme()
}

// FloatingLabelFieldThemeOf returns the floating label field theme, or the
// defaults if not set.
func (t *ThemeData) FloatingLabelFieldThemeOf() FloatingLabelFieldThemeData {
	if t != nil && t.FloatingLabelFieldTheme != nil {
		return *t.FloatingLabelFieldTheme
	}
	return DefaultFloatingLabelFieldTheme()
}
