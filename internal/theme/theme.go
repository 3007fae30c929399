// Package theme holds the site's color theme: a primary and an accent
// family of hex shades, ordered light to dark.
package theme

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyFamily is returned when a loaded theme has a family with no shades.
var ErrEmptyFamily = errors.New("theme: color family has no shades")

// MainShade is the index of the shade used as a family's main color.
const MainShade = 6

// Family is a named, ordered sequence of hex shades.
type Family struct {
	Name   string   `yaml:"name"`
	Shades []string `yaml:"shades"`
}

// Shade returns shade i, falling back to the first shade.
func (f Family) Shade(i int) string {
	if i >= 0 && i < len(f.Shades) && f.Shades[i] != "" {
		return f.Shades[i]
	}
	if len(f.Shades) == 0 {
		return ""
	}
	return f.Shades[0]
}

// Theme pairs the primary and accent families.
type Theme struct {
	Name    string `yaml:"name"`
	Primary Family `yaml:"primary"`
	Accent  Family `yaml:"accent"`
}

// Default returns the mocha mousse and cream theme.
func Default() *Theme {
	return &Theme{
		Name: "mocha-cream",
		Primary: Family{
			Name: "mocha-mousse",
			Shades: []string{
				"#EDECEB",
				"#D5D0CC",
				"#BCB4AD",
				"#A39890",
				"#8C7F73",
				"#75665D",
				"#644D45", // main
				"#513B34",
				"#412E27",
				"#30201B",
			},
		},
		Accent: Family{
			Name: "cream-accent",
			Shades: []string{
				"#FDFDF5",
				"#F9F9E9",
				"#F5F5DC", // main
				"#DCDCB9",
				"#C4C4A0",
				"#ACAC87",
				"#949471",
				"#7C7C5A",
				"#646445",
				"#4C4C31",
			},
		},
	}
}

// Validate checks that both families carry at least one shade.
func (t *Theme) Validate() error {
	if len(t.Primary.Shades) == 0 {
		return fmt.Errorf("primary family %q: %w", t.Primary.Name, ErrEmptyFamily)
	}
	if len(t.Accent.Shades) == 0 {
		return fmt.Errorf("accent family %q: %w", t.Accent.Name, ErrEmptyFamily)
	}
	return nil
}

// Load reads a theme from a YAML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML theme document.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
