// Package table shows one page of a collection and moves between pages.
package table

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"

	nt "sieve/entity"
	"sieve/page"
	"sieve/style"
)

const (
	headerHeight = 2
)

// Panel handles the table view display and page state.
type Panel struct {
	columns []nt.Column
	items   []nt.Item // every filtered and sorted item
	number  int       // 1-based page shown
	size    int       // rows per page
	fixed   bool      // size set by config, not by height

	selected int // row within the page
	sortCol  string
	reverse  bool

	width  int
	height int

	table *table.Table
}

// New creates a Panel; a positive size pins the page size.
func New(columns []nt.Column, size int) Panel {

	tbl := table.New()
	style.Apply(tbl)

	pnl := Panel{
		columns: columns,
		number:  1,
		size:    max(size, 1),
		fixed:   size > 0,
		table:   tbl,
	}

	return pnl
}

// SetSize fits the panel to width and height.
func (pnl Panel) SetSize(width, height int) Panel {

	pnl.width = width
	pnl.height = height
	if !pnl.fixed && height > headerHeight {
		pnl.size = height - headerHeight
	}
	return pnl.clamp()
}

// SetItems replaces the collection, keeping the page when it still exists.
func (pnl Panel) SetItems(items []nt.Item) Panel {

	pnl.items = items
	return pnl.clamp()
}

// SetSort marks the sorted column in the header.
func (pnl Panel) SetSort(field string, reverse bool) Panel {

	pnl.sortCol = field
	pnl.reverse = reverse
	return pnl
}

// Reset returns to the first page.
func (pnl Panel) Reset() Panel {

	pnl.number = 1
	pnl.selected = 0
	return pnl
}

// State returns the window of the page shown.
func (pnl Panel) State() *nt.PageState {

	win := page.Window(pnl.number, pnl.size)
	return &nt.PageState{Page: &win}
}

// Rows returns the items on the page shown.
func (pnl Panel) Rows() []nt.Item {
	return page.Slice(pnl.items, page.Window(pnl.number, pnl.size))
}

// Selected returns the selected item, if any.
func (pnl Panel) Selected() (item nt.Item, ok bool) {

	rows := pnl.Rows()
	if pnl.selected >= len(rows) {
		return nil, false
	}
	return rows[pnl.selected], true
}

// PageSize returns the number of rows per page.
func (pnl Panel) PageSize() int {
	return pnl.size
}

// Pages returns the number of pages.
func (pnl Panel) Pages() int {
	return page.Count(len(pnl.items), pnl.size)
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return pnl, nil
	}

	old := pnl.number
	switch key.String() {
	case "up", "k":
		if pnl.selected > 0 {
			pnl.selected--
		} else if pnl.number > 1 {
			pnl.number--
			pnl.selected = pnl.size - 1
		}

	case "down", "j":
		if pnl.selected < len(pnl.Rows())-1 {
			pnl.selected++
		} else if pnl.number < pnl.Pages() {
			pnl.number++
			pnl.selected = 0
		}

	case "pgup", "ctrl+b", "left", "h":
		pnl.number--

	case "pgdown", "ctrl+f", "right", "l":
		pnl.number++

	case "g":
		pnl.number = 1
		pnl.selected = 0

	case "G":
		pnl.number = pnl.Pages()
	}

	pnl = pnl.clamp()
	if pnl.number == old {
		return pnl, nil
	}

	state := pnl.State()
	return pnl, func() tea.Msg {
		return PageMsg{State: state}
	}
}

// View renders the page shown.
func (pnl Panel) View() string {

	sorted := -1
	var headers []string
	for i, col := range pnl.columns {
		if col.Field == pnl.sortCol {
			sorted = i
		}
		headers = append(headers, pnl.header(col))
	}
	pnl.table.Headers(headers...)
	pnl.table.StyleFunc(style.Rows(pnl.selected, sorted))

	pnl.table.ClearRows()
	for _, item := range pnl.Rows() {
		pnl.table.Row(pnl.row(item)...)
	}

	return pnl.table.String()
}

// PageMsg reports that the page shown changed.
type PageMsg struct {
	State *nt.PageState
}

// unexported

func (pnl Panel) clamp() Panel {

	pnl.number = min(max(pnl.number, 1), pnl.Pages())
	pnl.selected = min(pnl.selected, len(pnl.Rows())-1)
	pnl.selected = max(pnl.selected, 0)
	return pnl
}

func (pnl Panel) header(col nt.Column) string {

	name := col.Field
	if col.Field == pnl.sortCol {
		name += " ▲"
		if pnl.reverse {
			name = col.Field + " ▼"
		}
	}
	return fmt.Sprintf("%-*s", col.Width+1, name)
}

func (pnl Panel) row(item nt.Item) []string {

	row := make([]string, len(pnl.columns))
	for i, col := range pnl.columns {
		row[i] = truncate(format(item, col), col.Width)
	}
	return row
}

// help

func format(item nt.Item, col nt.Column) string {

	val, ok := item.Get(col.Field)
	if !ok {
		return ""
	}

	if col.Format != "" {
		if t, err := val.Time(); err == nil {
			return t.Format(col.Format)
		}
	}

	if t, ok := val.Raw.(time.Time); ok {
		return t.Format(time.DateTime)
	}
	return val.String()
}

func truncate(in string, width int) string {

	if width < 1 || len(in) <= width {
		return in
	}

	truncated := in[:width-1]
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
