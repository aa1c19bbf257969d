package sieve

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"sieve/alert"
	"sieve/style"
)

var alertStyles = map[alert.Type]lipgloss.Style{
	alert.Danger:  style.DangerStyle,
	alert.Warning: style.WarningStyle,
	alert.Info:    style.InfoStyle,
	alert.Success: style.SuccessStyle,
}

// RenderFooter renders page position on the left and the source on the right.
func RenderFooter(result Result, name string, width int) string {

	left := fmt.Sprintf("page %d/%d  %d items", result.Page, result.Pages, result.Total)
	right := name

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.FooterStyle.Render(left + strings.Repeat(" ", padding) + right)
}

// RenderAlert renders an alert in place of the footer, colored by its type.
func RenderAlert(al alert.Alert, width int) string {

	text := fmt.Sprintf("%s: %s", strings.ToUpper(al.Type.String()), al.Message)
	if lipgloss.Width(text) > width {
		text = string([]rune(text)[:max(width, 0)])
	}

	st, ok := alertStyles[al.Type]
	if !ok {
		st = style.Plain
	}
	return st.Render(text)
}
