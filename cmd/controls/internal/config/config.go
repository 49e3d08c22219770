// Package config resolves the optional controls.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up at the project root.
const FileName = "controls.yaml"

// Config represents the optional controls.yaml configuration.
type Config struct {
	Theme   string        `yaml:"theme,omitempty"`
	Preview PreviewConfig `yaml:"preview"`
}

// PreviewConfig contains defaults for the preview command.
type PreviewConfig struct {
	Title  string  `yaml:"title,omitempty"`
	OutDir string  `yaml:"outDir,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	// ThemePath is absolute, or empty for the built-in theme.
	ThemePath string
	Title     string
	OutDir    string
	Width     float64
}

// DefaultWidth is the preview field width when none is configured.
const DefaultWidth = 320

// LoadOptional reads controls.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads controls.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Preview.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	themePath := strings.TrimSpace(cfg.Theme)
	if themePath != "" && !filepath.IsAbs(themePath) {
		themePath = filepath.Join(dir, themePath)
	}

	outDir := strings.TrimSpace(cfg.Preview.OutDir)
	if outDir == "" {
		outDir = dir
	} else if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(dir, outDir)
	}

	width := cfg.Preview.Width
	if width < 0 {
		return nil, fmt.Errorf("preview.width must be positive (got %v)", width)
	}
	if width == 0 {
		width = DefaultWidth
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		ThemePath:  themePath,
		Title:      title,
		OutDir:     outDir,
		Width:      width,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRoot(dir)
}

func findRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultTitle turns the last module path element into a placeholder,
// dropping any major version suffix: example.com/sign-in/v2 gives "Sign in".
func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	if len(words) == 0 {
		return "Title"
	}
	title := strings.ToLower(strings.Join(words, " "))
	return strings.ToUpper(title[:1]) + title[1:]
}
