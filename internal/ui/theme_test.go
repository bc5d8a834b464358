package ui

import (
	"testing"

	"github.com/faizmokh/productify/internal/dashboard"
)

func TestEveryThemeHasAPalette(t *testing.T) {
	for _, theme := range dashboard.Themes {
		p, ok := palettes[theme]
		if !ok {
			t.Fatalf("no palette for %q", theme)
		}
		for _, c := range []string{p.Base, p.Text, p.Subtle, p.Accent, p.Success, p.Warning, p.Error} {
			if len(c) != 7 || c[0] != '#' {
				t.Fatalf("%q has malformed color %q", theme, c)
			}
		}
	}
}

func TestPaletteForUnknownFallsBack(t *testing.T) {
	if PaletteFor("neon") != palettes[dashboard.DefaultTheme] {
		t.Fatalf("unknown theme did not fall back to default palette")
	}
}
