package commands

import "github.com/charmbracelet/lipgloss"

func quoteStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Bold(true)
}

func translationStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("111")).
		Italic(true)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
}

func attributionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Padding(0, 1)
}

func weatherStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("72")).
		Bold(true)
}
