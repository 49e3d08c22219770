package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/uicontrols/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Print the resolved theme",
		Long: `Print the resolved theme as YAML.

The theme comes from --theme, then the controls.yaml "theme" entry, then
the built-in defaults. Every key is printed, so the output is a complete
starting point for a custom theme file.

Flags:
  --out FILE   Write to FILE instead of stdout`,
		Usage: "controls theme [--out FILE]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	var out string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out":
			v, err := stringArg(args, &i)
			if err != nil {
				return err
			}
			out = v
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	cfg, err := resolveProject()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	th, err := loadTheme(cfg)
	if err != nil {
		return err
	}
	data, err := theme.Marshal(th)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
