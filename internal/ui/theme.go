package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/productify/internal/dashboard"
)

// Palette is the handful of colors each dashboard theme defines.
type Palette struct {
	Base    string
	Text    string
	Subtle  string
	Accent  string
	Success string
	Warning string
	Error   string
}

var palettes = map[dashboard.Theme]Palette{
	dashboard.ThemeCatppuccinMocha: {"#1E1E2E", "#CDD6F4", "#6C7086", "#CBA6F7", "#A6E3A1", "#F9E2AF", "#F38BA8"},
	dashboard.ThemeCatppuccinLatte: {"#EFF1F5", "#4C4F69", "#9CA0B0", "#8839EF", "#40A02B", "#DF8E1D", "#D20F39"},
	dashboard.ThemeDracula:         {"#282A36", "#F8F8F2", "#6272A4", "#BD93F9", "#50FA7B", "#F1FA8C", "#FF5555"},
	dashboard.ThemeNord:            {"#2E3440", "#ECEFF4", "#4C566A", "#88C0D0", "#A3BE8C", "#EBCB8B", "#BF616A"},
	dashboard.ThemeGruvboxDark:     {"#282828", "#EBDBB2", "#928374", "#FABD2F", "#B8BB26", "#FE8019", "#FB4934"},
	dashboard.ThemeTokyoNight:      {"#1A1B26", "#C0CAF5", "#565F89", "#7AA2F7", "#9ECE6A", "#E0AF68", "#F7768E"},
	dashboard.ThemeRosePine:        {"#191724", "#E0DEF4", "#6E6A86", "#C4A7E7", "#31748F", "#F6C177", "#EB6F92"},
	dashboard.ThemeSolarizedLight:  {"#FDF6E3", "#657B83", "#93A1A1", "#268BD2", "#859900", "#B58900", "#DC322F"},
}

// PaletteFor returns the colors for theme, falling back to the default theme.
func PaletteFor(theme dashboard.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[dashboard.DefaultTheme]
}

type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Card     lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Hint     lipgloss.Style
	Done     lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Clock    lipgloss.Style
}

func NewStyles(p Palette) Styles {
	text := lipgloss.Color(p.Text)
	accent := lipgloss.Color(p.Accent)
	subtle := lipgloss.Color(p.Subtle)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:    lipgloss.NewStyle().Faint(true).Foreground(subtle),
		Value:    lipgloss.NewStyle().Foreground(text),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 1),
		Tab:      lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		TabOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Base)).Background(accent).Padding(0, 1),
		Hint:     lipgloss.NewStyle().Faint(true).Foreground(subtle),
		Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(subtle),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Error)),
		Warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Warning)),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Success)),
		Clock:    lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(1, 4),
	}
}

func (s Styles) Notice(n dashboard.Notice) string {
	switch n.Level {
	case dashboard.LevelError:
		return s.Error.Render(n.Message)
	case dashboard.LevelWarning:
		return s.Warning.Render(n.Message)
	default:
		return s.Success.Render(n.Message)
	}
}
