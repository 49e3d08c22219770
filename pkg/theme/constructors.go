package theme

import "github.com/go-drift/uicontrols/pkg/widgets"

// PageIndicatorOf creates a [widgets.PageIndicator] styled from t's
// [PageIndicatorThemeData]. A nil theme uses the defaults.
//
//	indicator := theme.PageIndicatorOf(th, view.Invalidate)
//	indicator.UpdateOffset(scrollX, contentWidth-viewportWidth)
func PageIndicatorOf(t *ThemeData, invalidate func()) *widgets.PageIndicator {
	return widgets.NewPageIndicator(t.PageIndicatorThemeOf().Style(), invalidate)
}

// FloatingLabelFieldOf creates a [widgets.FloatingLabelField] styled from t's
// [FloatingLabelFieldThemeData]. A nil input gets a [widgets.InsetTextInput].
//
// Options are applied after the theme, so they take precedence:
//
//	field, err := theme.FloatingLabelFieldOf(th, "Password", nil,
//	    widgets.WithSecurity(widgets.SecureEntry(true)),
//	    widgets.WithInvalidate(view.Invalidate))
func FloatingLabelFieldOf(t *ThemeData, placeholder string, input widgets.TextInput, opts ...widgets.FloatingLabelFieldOption) (*widgets.FloatingLabelField, error) {
	return widgets.NewFloatingLabelField(t.FloatingLabelFieldThemeOf().Style(placeholder), input, opts...)
}
