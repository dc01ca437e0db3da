package main

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#2563eb")
	muted  = lipgloss.Color("#6b7280")
	danger = lipgloss.Color("#dc2626")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	errorStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(accent).
		Bold(false)
	return s
}
