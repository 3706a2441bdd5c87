package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Skin is the color palette applied to all workbench styles. Skins are plain
// YAML files under <configDir>/skins/<name>.yml; missing keys keep their
// default value.
type Skin struct {
	Accent    string `yaml:"accent"`
	AccentDim string `yaml:"accent-dim"`
	Text      string `yaml:"text"`
	Muted     string `yaml:"muted"`
	Error     string `yaml:"error"`
	Warning   string `yaml:"warning"`
	BitOn     string `yaml:"bit-on"`
	BitOff    string `yaml:"bit-off"`
	Surface   string `yaml:"surface"`
	StatusBar string `yaml:"status-bar"`
}

// DefaultSkin returns the built-in dark palette.
func DefaultSkin() Skin {
	return Skin{
		Accent:    "#00FFAA",
		AccentDim: "#00C864",
		Text:      "#DDDDDD",
		Muted:     "#888888",
		Error:     "#FF4444",
		Warning:   "#FFAA00",
		BitOn:     "#0AFF96",
		BitOff:    "#555555",
		Surface:   "#2A2A2A",
		StatusBar: "#1F2430",
	}
}

// InitializeSkin loads and applies the named skin. An empty name or "default"
// applies the built-in palette. Unknown or unreadable skin files return an
// error; the caller decides whether to fall back.
func InitializeSkin(name, configDir string) error {
	skin := DefaultSkin()

	if name != "" && name != "default" {
		path := filepath.Join(configDir, "skins", name+".yml")
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading skin %q: %w", name, err)
		}
		if err := yaml.Unmarshal(data, &skin); err != nil {
			return fmt.Errorf("parsing skin %q: %w", name, err)
		}
	}

	applySkin(skin)
	return nil
}
