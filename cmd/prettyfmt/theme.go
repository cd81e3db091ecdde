package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"

	"github.com/prettyfmt/prettyfmt/internal/brand"
	"github.com/prettyfmt/prettyfmt/internal/prettyprint"
)

// currentThemeVersion is the newest theme schema this binary understands.
var currentThemeVersion = brand.UncheckedSemVer("1.0.0")

type themeFile struct {
	Version string         `yaml:"version"`
	Colors  map[string]int `yaml:"colors"`
}

// loadTheme reads a YAML theme file mapping part names to ANSI 256 color
// codes. Unknown part names are kept as-is: the printer resolves them to the
// identity styler.
func loadTheme(path string) (prettyprint.StyleMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var theme themeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, err
	}

	if theme.Version != "" {
		version, err := brand.ParseSemVer(theme.Version)
		if err != nil {
			return nil, err
		}
		if currentThemeVersion.LessThan(version) {
			return nil, fmt.Errorf("theme version %s is newer than supported %s", version, currentThemeVersion)
		}
	}

	styles := prettyprint.StyleMap{}
	for part, code := range theme.Colors {
		if code < 0 || code > 255 {
			return nil, fmt.Errorf("part %q: color code %d is out of the ANSI 256 range", part, code)
		}
		styles[prettyprint.Part(part)] = prettyprint.ColorStyler(termenv.ANSI256Color(code))
	}
	return styles, nil
}
