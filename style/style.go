// Package style holds the shared look of list views.
package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	BorderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	HeaderStyle   = lipgloss.NewStyle().Bold(true)
	SortedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110"))
	SelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("235"))
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	PromptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	CursorStyle   = lipgloss.NewStyle().Reverse(true)
	FooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	DangerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	WarningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	InfoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	Plain         = lipgloss.NewStyle()
)

// Rows returns a StyleFunc marking the header, the sorted column and the selected row.
func Rows(selected, sorted int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow && col == sorted:
			return SortedStyle
		case row == table.HeaderRow:
			return HeaderStyle
		case row == selected:
			return SelectedStyle
		}
		return Plain
	}
}

// Apply sets a header rule and no other borders.
func Apply(tbl *table.Table) *table.Table {
	return tbl.Border(lipgloss.Border{
		Top:         "─",
		Middle:      "─",
		MiddleLeft:  "─",
		MiddleRight: "─",
	}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(BorderStyle)
}
