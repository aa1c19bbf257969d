// Package search is a one line text box feeding search terms to a trigger.
package search

import (
	tea "charm.land/bubbletea/v2"

	"sieve/style"
)

const maxLength = 100

// Box is an editable search field.
type Box struct {
	value   string
	cursor  int
	focused bool
	submit  func(term string)
}

// New creates a Box passing every edit to submit.
func New(submit func(term string)) Box {
	return Box{submit: submit}
}

// Focus starts accepting keys.
func (box Box) Focus() Box {
	box.focused = true
	return box
}

// Blur stops accepting keys.
func (box Box) Blur() Box {
	box.focused = false
	return box
}

// Focused reports whether keys go to the box.
func (box Box) Focused() bool {
	return box.focused
}

// Value returns the raw text.
func (box Box) Value() string {
	return box.value
}

// Set replaces the text, submitting it when it changed.
func (box Box) Set(value string) (Box, tea.Cmd) {

	if len(value) > maxLength {
		value = value[:maxLength]
	}
	if value == box.value {
		return box, nil
	}

	box.value = value
	box.cursor = len(value)
	return box, box.submitCmd()
}

func (box Box) Update(msg tea.Msg) (Box, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !box.focused {
		return box, nil
	}

	old := box.value
	switch key.String() {
	case "backspace":
		if box.cursor > 0 {
			box.value = box.value[:box.cursor-1] + box.value[box.cursor:]
			box.cursor--
		}
	case "delete":
		if box.cursor < len(box.value) {
			box.value = box.value[:box.cursor] + box.value[box.cursor+1:]
		}
	case "left":
		if box.cursor > 0 {
			box.cursor--
		}
	case "right":
		if box.cursor < len(box.value) {
			box.cursor++
		}
	case "home", "ctrl+a":
		box.cursor = 0
	case "end", "ctrl+e":
		box.cursor = len(box.value)
	case "ctrl+u":
		box.value = ""
		box.cursor = 0
	case "space":
		box = box.insert(" ")
	default:
		if len(key.String()) == 1 {
			box = box.insert(key.String())
		}
	}

	if box.value == old {
		return box, nil
	}
	return box, box.submitCmd()
}

// View renders the box, with a cursor when focused.
func (box Box) View() string {

	prompt := style.PromptStyle.Render("/ ")
	if !box.focused {
		return prompt + box.value
	}

	cursor := style.CursorStyle
	if box.cursor >= len(box.value) {
		return prompt + box.value + cursor.Render(" ")
	}
	return prompt + box.value[:box.cursor] + cursor.Render(box.value[box.cursor:box.cursor+1]) + box.value[box.cursor+1:]
}

// unexported

func (box Box) insert(text string) Box {

	if len(box.value) >= maxLength {
		return box
	}

	box.value = box.value[:box.cursor] + text + box.value[box.cursor:]
	box.cursor += len(text)
	return box
}

func (box Box) submitCmd() tea.Cmd {

	if box.submit == nil {
		return nil
	}

	value := box.value
	return func() tea.Msg {
		box.submit(value)
		return nil
	}
}
