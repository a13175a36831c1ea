// Package style holds the lipgloss styles used by terminal output
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Width(10)
)

// Category styles
var (
	ModelStyle  = lipgloss.NewStyle().Foreground(ModelColor)
	DirStyle    = lipgloss.NewStyle().Foreground(DirColor)
	ConfigStyle = lipgloss.NewStyle().Foreground(ConfigColor)
	FileStyle   = lipgloss.NewStyle()
)

// Indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
)

// CategoryStyle returns the style for the files of a category
func CategoryStyle(key string) lipgloss.Style {
	switch key {
	case "gql", "graphql":
		return ModelStyle
	case "dirs":
		return DirStyle
	case "json", "toml", "yaml", "yml", "xml", "cue", "hcl":
		return ConfigStyle
	default:
		return FileStyle
	}
}

// Indent pads s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
