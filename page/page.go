// Package page converts between zero-based windows and 1-based page numbers.
package page

import (
	nt "sieve/entity"
)

// Number returns the 1-based page shown by state.
// A missing state or window, or one without a size, is the first page.
func Number(state *nt.PageState) int {

	if state == nil || state.Page == nil || state.Page.Size < 1 {
		return 1
	}

	win := state.Page
	return ceilDiv(win.To+1, win.Size)
}

// Window returns the zero-based window for a 1-based page.
func Window(number, size int) nt.Window {

	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = 1
	}

	from := (number - 1) * size
	return nt.Window{
		From: from,
		To:   from + size - 1,
		Size: size,
	}
}

// Count returns the number of pages needed for total items, at least one.
func Count(total, size int) int {

	if total < 1 || size < 1 {
		return 1
	}
	return ceilDiv(total, size)
}

// Slice cuts the items inside win, clamped to the collection.
func Slice(items []nt.Item, win nt.Window) []nt.Item {

	from := max(win.From, 0)
	to := min(win.To+1, len(items))
	if from >= to {
		return []nt.Item{}
	}

	return items[from:to]
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 1
	}
	return (a + b - 1) / b
}
