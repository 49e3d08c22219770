package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/uicontrols/pkg/theme"
	"github.com/go-drift/uicontrols/pkg/widgets"
)

func TestParseIndicatorArgs(t *testing.T) {
	got, err := parseIndicatorArgs([]string{"--progress", "0.3", "--items", "4", "--out", "dots.png"})
	if err != nil {
		t.Fatal(err)
	}
	want := indicatorOptions{progress: 0.3, items: 4, out: "dots.png"}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(indicatorOptions{})); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	for _, args := range [][]string{
		{"--progress"},
		{"--progress", "lots"},
		{"--items", "2.5"},
		{"--items", "0"},
		{"--bogus"},
	} {
		if _, err := parseIndicatorArgs(args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestParseFieldArgs(t *testing.T) {
	got, err := parseFieldArgs([]string{
		"--text", "hunter2",
		"--placeholder", "Password",
		"--state", "Error",
		"--toggle",
		"--reveal",
		"--align", "center",
		"--width", "280",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := fieldOptions{
		text:        "hunter2",
		placeholder: "Password",
		state:       widgets.ValidityError,
		security:    widgets.SecureEntry(true),
		reveal:      true,
		align:       "center",
		width:       280,
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(fieldOptions{})); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	for _, args := range [][]string{
		{"--state", "angry"},
		{"--width", "-5"},
		{"--text"},
	} {
		if _, err := parseFieldArgs(args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestRenderIndicator(t *testing.T) {
	img := renderIndicator(theme.DefaultTheme(), indicatorOptions{progress: 0})

	if b := img.Bounds(); b.Dx() != 164 || b.Dy() != 40 {
		t.Fatalf("expected 164x40 preview, got %v", b)
	}
	r, g, b, _ := img.At(20, 20).RGBA()
	if r>>8 != 0xFF || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected selected dot to be red, got %v", img.At(20, 20))
	}
	_, g, _, _ = img.At(88, 20).RGBA()
	if g>>8 < 150 || g>>8 > 200 {
		t.Errorf("expected translucent red over white for a plain dot, got %v", img.At(88, 20))
	}
	if _, g, _, _ = img.At(2, 2).RGBA(); g>>8 != 0xFF {
		t.Errorf("expected white background, got %v", img.At(2, 2))
	}
}

func TestRenderField_RejectsAlignment(t *testing.T) {
	quiet(t)
	_, err := renderField(theme.DefaultTheme(), fieldOptions{placeholder: "Email", width: 200, align: "right"})
	if err == nil {
		t.Error("expected unsupported alignment to fail")
	}
}

func TestExecute_PreviewField(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "field.png")
	err := Execute([]string{"preview", "field", "--text", "secret", "--toggle", "--width", "200", "--out", out})
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 232 || b.Dy() != 79 {
		t.Errorf("expected 232x79 preview, got %v", b)
	}
}

func TestExecute_ThemeOverride(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	themePath := filepath.Join(dir, "brand.yaml")
	if err := os.WriteFile(themePath, []byte("pageIndicator:\n  itemCount: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "theme.yaml")
	if err := Execute([]string{"--theme", themePath, "theme", "--out", out}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "itemCount: 2") {
		t.Errorf("expected overridden item count, got:\n%s", data)
	}

	if err := Execute([]string{"--theme=" + filepath.Join(dir, "missing.yaml"), "theme"}); err == nil {
		t.Error("expected missing theme to fail")
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	if err := Execute([]string{"frobnicate"}); err == nil {
		t.Error("expected unknown command error")
	}
	if err := Execute([]string{"preview", "slider"}); err == nil {
		t.Error("expected unknown control error")
	}
}
