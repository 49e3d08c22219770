package widgets_test

import (
	"testing"

	"github.com/go-drift/uicontrols/pkg/graphics"
	"github.com/go-drift/uicontrols/pkg/widgets"
)

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		obscure bool
		want    string
	}{
		{"plain", "hunter2", false, "hunter2"},
		{"masked", "hunter2", true, "•••••••"},
		{"masked multibyte", "héllo", true, "•••••"},
		{"empty", "", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := widgets.NewInsetTextInput()
			in.SetText(tt.text)
			in.SetObscure(tt.obscure)
			if got := widgets.DisplayText(in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestInsetTextInput_Rects(t *testing.T) {
	in := widgets.NewInsetTextInput()
	in.SetTextInsets(graphics.EdgeInsets{Left: 8, Right: 40})
	bounds := graphics.RectFromLTWH(0, 7, 300, 40)

	want := graphics.Rect{Left: 8, Top: 7, Right: 260, Bottom: 47}
	if got := in.TextRect(bounds); got != want {
		t.Errorf("TextRect: expected %+v, got %+v", want, got)
	}
	if got := in.EditingRect(bounds); got != want {
		t.Errorf("EditingRect: expected %+v, got %+v", want, got)
	}
}
