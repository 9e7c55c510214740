package gallery

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	mutedColor  = lipgloss.Color("245")
	accentColor = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1).
			MarginBottom(1)

	listStyle = lipgloss.NewStyle().
			PaddingRight(3)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				Foreground(accentColor).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(accentColor)

	categoryStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	captionStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
