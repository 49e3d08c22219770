package cmd

import (
	"log"

	"github.com/go-drift/uicontrols/cmd/controls/internal/config"
	"github.com/go-drift/uicontrols/pkg/theme"
)

// resolveProject loads controls.yaml from the enclosing module. Outside a
// module the built-in defaults apply.
func resolveProject() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		log.Printf("controls: %v; using defaults", err)
		return &config.Resolved{Title: "Title", OutDir: ".", Width: config.DefaultWidth}, nil
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTheme returns the --theme file, else the configured theme, else the defaults.
func loadTheme(cfg *config.Resolved) (*theme.ThemeData, error) {
	path := themeOverride
	if path == "" {
		path = cfg.ThemePath
	}
	if path == "" {
		return theme.DefaultTheme(), nil
	}
	return theme.Load(path)
}
