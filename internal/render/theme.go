// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "nordic"

// Theme assigns a color to each part of a listed paper. Colors are ANSI
// 256-color codes or hex values.
type Theme struct {
	Title    lipgloss.Color
	Author   lipgloss.Color
	Subjects lipgloss.Color
	Link     lipgloss.Color
	Abstract lipgloss.Color
}

// Themes are the built-in color schemes.
var Themes = map[string]Theme{
	"vibrant": {
		Title:    "5",  // purple
		Author:   "13", // magenta
		Subjects: "3",  // yellow
		Link:     "12", // bright blue
		Abstract: "2",  // green
	},
	"solarized": {
		Title:    "#b58900",
		Author:   "#2aa198",
		Subjects: "#859900",
		Link:     "#268bd2",
		Abstract: "#eee8d5",
	},
	"classic": {
		Title:    "15",
		Author:   "2",
		Subjects: "3",
		Link:     "12",
		Abstract: "7",
	},
	"nordic": {
		Title:    "51",  // cyan1
		Author:   "164", // magenta3
		Subjects: "103", // light slate grey
		Link:     "99",  // slate blue1
		Abstract: "15",
	},
}

// LookupTheme returns the named theme. An empty name selects DefaultTheme.
func LookupTheme(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	th, ok := Themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return th, nil
}

// ThemeNames returns the built-in theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for n := range Themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
