package graphics

import "testing"

func TestLayoutText_FallbackFace(t *testing.T) {
	layout, err := LayoutText("abc", TextStyle{FontSize: 12}, nil)
	if err == nil {
		t.Error("expected an error without a font manager")
	}
	if layout == nil {
		t.Fatal("expected a fallback layout")
	}
	if layout.Size.Width != 21 || layout.Size.Height != 13 {
		t.Errorf("expected 7x13 cell metrics, got %+v", layout.Size)
	}
}

func TestLayoutText_Measures(t *testing.T) {
	fonts := DefaultFontManager()
	if fonts == nil {
		t.Fatal("expected bundled font to load")
	}

	small, err := LayoutText("Email", TextStyle{FontSize: 12}, fonts)
	if err != nil {
		t.Fatal(err)
	}
	large, err := LayoutText("Email", TextStyle{FontSize: 17}, fonts)
	if err != nil {
		t.Fatal(err)
	}
	if small.Size.Width <= 0 || large.Size.Width <= small.Size.Width {
		t.Errorf("expected width to grow with font size, got %v and %v", small.Size.Width, large.Size.Width)
	}
	if large.Ascent <= 0 || large.Descent <= 0 {
		t.Errorf("expected positive metrics, got ascent %v descent %v", large.Ascent, large.Descent)
	}
}

func TestFontManager_CachesFaces(t *testing.T) {
	fonts := DefaultFontManager()
	a, err := fonts.Face(TextStyle{FontSize: 17})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := fonts.Face(TextStyle{})
	if a != b {
		t.Error("expected unset font size to reuse the default face")
	}
}

func TestNewFontManager_RejectsGarbage(t *testing.T) {
	if _, err := NewFontManager([]byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
}

func TestTextAlign_String(t *testing.T) {
	if TextAlignStart.String() != "start" || TextAlign(42).String() != "TextAlign(42)" {
		t.Error("unexpected TextAlign names")
	}
}

func TestTextStyle_WithColor(t *testing.T) {
	base := TextStyle{Color: ColorBlack, FontSize: 17}
	tinted := base.WithColor(ColorPurple)
	if tinted.Color != ColorPurple || tinted.FontSize != 17 {
		t.Errorf("expected purple at size 17, got %+v", tinted)
	}
	if base.Color != ColorBlack {
		t.Error("WithColor must not modify the receiver")
	}
}
