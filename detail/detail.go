// Package detail shows every field of a single item.
package detail

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "sieve/entity"
)

// Panel handles the full item view and its scroll position.
type Panel struct {
	item  nt.Item
	lines []string // rendered item, cached

	width  int
	height int
	offset int // first line shown
}

// Show renders item from the top.
func (pnl Panel) Show(item nt.Item) Panel {

	pnl.item = item
	pnl.offset = 0

	lines, err := render(item)
	if err != nil {
		lines = []string{err.Error()}
	}
	pnl.lines = lines

	return pnl
}

// SetSize fits the panel to width and height.
func (pnl Panel) SetSize(width, height int) Panel {

	pnl.width = width
	pnl.height = height
	pnl.offset = min(pnl.offset, pnl.maxOffset())
	return pnl
}

// Item returns the item shown.
func (pnl Panel) Item() nt.Item {
	return pnl.item
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return pnl, nil
	}

	switch key.String() {
	case "up", "k":
		pnl.offset--
	case "down", "j":
		pnl.offset++
	case "pgup", "ctrl+b":
		pnl.offset -= pnl.height
	case "pgdown", "ctrl+f":
		pnl.offset += pnl.height
	case "g":
		pnl.offset = 0
	case "G":
		pnl.offset = pnl.maxOffset()
	}

	pnl.offset = max(min(pnl.offset, pnl.maxOffset()), 0)
	return pnl, nil
}

// View renders the lines visible at the current offset.
func (pnl Panel) View() string {

	if pnl.lines == nil {
		return "Nothing selected"
	}

	visible := pnl.lines[pnl.offset:]
	if pnl.height > 0 && len(visible) > pnl.height {
		visible = visible[:pnl.height]
	}

	out := make([]string, len(visible))
	for i, line := range visible {
		runes := []rune(line)
		if pnl.width > 0 && len(runes) > pnl.width {
			line = string(runes[:pnl.width])
		}
		out[i] = line
	}

	return strings.Join(out, "\n")
}

// unexported

func (pnl Panel) maxOffset() int {

	if pnl.height < 1 {
		return 0
	}
	return max(len(pnl.lines)-pnl.height, 0)
}

// render marshals item as yaml, keys sorted, one line per field.
func render(item nt.Item) (lines []string, err error) {

	if item == nil {
		return
	}

	data, err := yaml.Marshal(map[string]any(item))
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal item")
		return
	}

	lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return
}
