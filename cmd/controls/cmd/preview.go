package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/uicontrols/pkg/graphics"
	"github.com/go-drift/uicontrols/pkg/theme"
	"github.com/go-drift/uicontrols/pkg/widgets"
)

// previewPadding surrounds the control in rendered previews.
const previewPadding = 16

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Render a control to PNG",
		Long: `Render a control to a PNG file using the resolved theme.

Indicator flags:
  --progress P     Scroll progress between 0 and 1 (default: 0)
  --items N        Number of dots (default: theme)
  --out FILE       Output file (default: <outDir>/indicator.png)

Field flags:
  --text TEXT          Field content (default: empty)
  --placeholder TEXT   Placeholder and title (default: controls.yaml title)
  --state STATE        normal, active or error (default: normal)
  --secure             Mask entry
  --toggle             Show the show/hide toggle (implies --secure)
  --reveal             Press the toggle once
  --align ALIGN        leading, start or center (default: theme)
  --width W            Field width (default: controls.yaml width)
  --out FILE           Output file (default: <outDir>/field.png)

Examples:
  controls preview indicator --progress 0.3
  controls preview field --text hunter2 --toggle --state error`,
		Usage: "controls preview <indicator|field> [flags]",
		Run:   runPreview,
	})
}

type indicatorOptions struct {
	progress float64
	items    int
	out      string
}

type fieldOptions struct {
	text        string
	placeholder string
	state       widgets.ValidityState
	security    widgets.SecurityState
	reveal      bool
	align       string
	width       float64
	out         string
}

func runPreview(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("control is required (indicator or field)\n\nUsage: controls preview <indicator|field>")
	}

	cfg, err := resolveProject()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	th, err := loadTheme(cfg)
	if err != nil {
		return err
	}

	var img image.Image
	var out string
	switch strings.ToLower(args[0]) {
	case "indicator":
		opts, err := parseIndicatorArgs(args[1:])
		if err != nil {
			return err
		}
		img = renderIndicator(th, opts)
		out = opts.out
		if out == "" {
			out = filepath.Join(cfg.OutDir, "indicator.png")
		}
	case "field":
		opts, err := parseFieldArgs(args[1:])
		if err != nil {
			return err
		}
		if opts.placeholder == "" {
			opts.placeholder = cfg.Title
		}
		if opts.width == 0 {
			opts.width = cfg.Width
		}
		img, err = renderField(th, opts)
		if err != nil {
			return err
		}
		out = opts.out
		if out == "" {
			out = filepath.Join(cfg.OutDir, "field.png")
		}
	default:
		return fmt.Errorf("unknown control %q (use indicator or field)", args[0])
	}

	if err := writePNG(out, img); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

func parseIndicatorArgs(args []string) (indicatorOptions, error) {
	var opts indicatorOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--progress":
			v, err := floatArg(args, &i)
			if err != nil {
				return opts, err
			}
			opts.progress = v
		case "--items":
			v, err := floatArg(args, &i)
			if err != nil {
				return opts, err
			}
			if v < 1 || v != float64(int(v)) {
				return opts, fmt.Errorf("--items must be a positive integer (got %v)", v)
			}
			opts.items = int(v)
		case "--out":
			v, err := stringArg(args, &i)
			if err != nil {
				return opts, err
			}
			opts.out = v
		default:
			return opts, fmt.Errorf("unknown flag: %s", args[i])
		}
	}
	return opts, nil
}

func parseFieldArgs(args []string) (fieldOptions, error) {
	var opts fieldOptions
	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "--text":
			opts.text, err = stringArg(args, &i)
		case "--placeholder":
			opts.placeholder, err = stringArg(args, &i)
		case "--state":
			var v string
			if v, err = stringArg(args, &i); err == nil {
				opts.state, err = parseValidityState(v)
			}
		case "--secure":
			opts.security.Secure = true
		case "--toggle":
			opts.security = widgets.SecureEntry(true)
		case "--reveal":
			opts.reveal = true
		case "--align":
			opts.align, err = stringArg(args, &i)
		case "--width":
			opts.width, err = floatArg(args, &i)
			if err == nil && opts.width <= 0 {
				err = fmt.Errorf("--width must be positive (got %v)", opts.width)
			}
		case "--out":
			opts.out, err = stringArg(args, &i)
		default:
			err = fmt.Errorf("unknown flag: %s", args[i])
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func stringArg(args []string, i *int) (string, error) {
	if *i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", args[*i])
	}
	*i++
	return args[*i], nil
}

func floatArg(args []string, i *int) (float64, error) {
	flag := args[*i]
	s, err := stringArg(args, i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", flag, s)
	}
	return v, nil
}

func parseValidityState(s string) (widgets.ValidityState, error) {
	for _, state := range []widgets.ValidityState{widgets.ValidityNormal, widgets.ValidityActive, widgets.ValidityError} {
		if strings.EqualFold(s, state.String()) {
			return state, nil
		}
	}
	return 0, fmt.Errorf("unknown state %q (use normal, active or error)", s)
}

func renderIndicator(th *theme.ThemeData, opts indicatorOptions) image.Image {
	indicator := theme.PageIndicatorOf(th, nil)
	if opts.items > 0 {
		indicator.SetItemCount(opts.items)
	}
	indicator.UpdateOffset(opts.progress, 1)

	size := indicator.IntrinsicSize()
	return rasterize(padded(size), graphics.ColorWhite, func(c graphics.Canvas, s graphics.Size) {
		indicator.Paint(c, s)
	})
}

func renderField(th *theme.ThemeData, opts fieldOptions) (image.Image, error) {
	field, err := theme.FloatingLabelFieldOf(th, opts.placeholder, nil, widgets.WithSecurity(opts.security))
	if err != nil {
		return nil, err
	}
	defer field.Dispose()

	if opts.align != "" {
		align, err := theme.ParseAlignment(opts.align)
		if err != nil {
			return nil, err
		}
		if err := field.SetAlignment(align); err != nil {
			return nil, err
		}
	}
	field.SetText(opts.text)
	field.SetValidityState(opts.state)
	if opts.reveal {
		field.TogglePressed()
	}

	size := graphics.Size{Width: opts.width, Height: widgets.FloatingLabelFieldHeight}
	background := th.FloatingLabelFieldThemeOf().BackgroundColor
	return rasterize(padded(size), background, func(c graphics.Canvas, _ graphics.Size) {
		c.Save()
		c.Translate(previewPadding, previewPadding)
		field.Paint(c, size)
		c.Restore()
	}), nil
}

func padded(size graphics.Size) graphics.Size {
	return graphics.Size{Width: size.Width + 2*previewPadding, Height: size.Height + 2*previewPadding}
}

// rasterize records paint into a display list over a filled background and
// replays it onto a raster canvas.
func rasterize(size graphics.Size, background graphics.Color, paint func(graphics.Canvas, graphics.Size)) *image.RGBA {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(size)
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.FillPaint(background))
	paint(canvas, size)
	list := recorder.EndRecording()

	raster := graphics.NewRasterCanvas(list.Size())
	list.Paint(raster)
	return raster.Image()
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
