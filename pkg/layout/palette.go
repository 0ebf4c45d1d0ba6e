package layout

import (
	"fmt"
	"regexp"
)

// DefaultPalette is the pastel palette events are coloured from.
var DefaultPalette = []string{
	"#AAE9E5", "#87C7F1", "#FEB7D3", "#FFEDA9", "#EACFFF", "#DEE6C8", "#A8D0C6",
}

// ColorAt returns the colour for the i-th processed event, cycling through
// palette. An empty palette falls back to DefaultPalette.
func ColorAt(palette []string, i int) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[i%len(palette)]
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether c is a #RGB or #RRGGBB hex string.
func IsHexColor(c string) bool { return hexColorRe.MatchString(c) }

// ValidatePalette checks that every colour is a #RGB or #RRGGBB hex string.
func ValidatePalette(palette []string) error {
	for i, c := range palette {
		if !IsHexColor(c) {
			return fmt.Errorf("palette[%d]: invalid colour %q (want #RGB or #RRGGBB)", i, c)
		}
	}
	return nil
}
