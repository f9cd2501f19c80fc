package qtads

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SettingsView is the read-only configuration surface consulted at decision
// points. The controller only reads these flags; it never persists or
// validates them.
type SettingsView interface {
	// LinksEnabled gates link following: arming, activation, the pointing
	// cursor, and destination feedback. Alt-text annotations stay visible
	// even when disabled.
	LinksEnabled() bool
	// HighlightEnabled gates the hover/clicked coloring of links.
	HighlightEnabled() bool
}

// Settings holds the viewer flags. Pass a *Settings wherever a SettingsView
// is expected to make runtime toggles visible to the controller.
type Settings struct {
	EnableLinks    bool `toml:"enable_links"`
	HighlightLinks bool `toml:"highlight_links"`
}

// DefaultSettings returns the flags a fresh viewer starts with: links
// followed and highlighted.
func DefaultSettings() Settings {
	return Settings{EnableLinks: true, HighlightLinks: true}
}

// LinksEnabled implements SettingsView.
func (s Settings) LinksEnabled() bool {
	return s.EnableLinks
}

// HighlightEnabled implements SettingsView.
func (s Settings) HighlightEnabled() bool {
	return s.HighlightLinks
}

// LoadSettings reads viewer settings from a TOML file. Unknown keys are
// ignored; missing keys keep their defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("qtads: load settings: %w", err)
	}
	return s, nil
}

// Save writes the settings to path as TOML.
func (s Settings) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("qtads: save settings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("qtads: save settings: %w", err)
	}
	return nil
}
