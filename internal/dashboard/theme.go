package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/faizmokh/productify/internal/storage"
)

// Theme identifies one of the built-in color palettes.
type Theme string

const (
	ThemeCatppuccinMocha Theme = "catppuccin-mocha"
	ThemeCatppuccinLatte Theme = "catppuccin-latte"
	ThemeDracula         Theme = "dracula"
	ThemeNord            Theme = "nord"
	ThemeGruvboxDark     Theme = "gruvbox-dark"
	ThemeTokyoNight      Theme = "tokyo-night"
	ThemeRosePine        Theme = "rose-pine"
	ThemeSolarizedLight  Theme = "solarized-light"

	DefaultTheme = ThemeCatppuccinMocha
)

// Themes lists every valid theme in picker order.
var Themes = []Theme{
	ThemeCatppuccinMocha,
	ThemeCatppuccinLatte,
	ThemeDracula,
	ThemeNord,
	ThemeGruvboxDark,
	ThemeTokyoNight,
	ThemeRosePine,
	ThemeSolarizedLight,
}

// LookupTheme reports whether id names a built-in theme.
func LookupTheme(id string) (Theme, bool) {
	theme := Theme(id)
	return theme, slices.Contains(Themes, theme)
}

// Label is the human form of a theme id: "catppuccin mocha".
func (t Theme) Label() string {
	return strings.ReplaceAll(string(t), "-", " ")
}

// ThemeSelector owns the active theme.
type ThemeSelector struct {
	adapter *storage.Adapter
	active  Theme
}

func NewThemeSelector(adapter *storage.Adapter) *ThemeSelector {
	return &ThemeSelector{adapter: adapter, active: DefaultTheme}
}

func (s *ThemeSelector) Active() Theme {
	return s.active
}

// SetTheme activates and persists id. Unknown ids leave the active theme as is.
func (s *ThemeSelector) SetTheme(id string) error {
	theme, ok := LookupTheme(id)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTheme, id)
	}
	s.active = theme
	return s.adapter.Save(ThemeKey, string(theme))
}

// Load restores the stored theme, falling back to DefaultTheme when nothing
// (or nothing valid) was stored.
func (s *ThemeSelector) Load() error {
	s.active = DefaultTheme
	id, ok, err := storage.Load[string](s.adapter, ThemeKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if theme, known := LookupTheme(id); known {
		s.active = theme
	}
	return nil
}
