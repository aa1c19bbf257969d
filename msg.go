package sieve

import (
	nt "sieve/entity"
)

// termMsg carries a committed search term
type termMsg struct {
	term string
}

// repaintMsg asks for a redraw while a refresh burst runs
type repaintMsg struct{}

// itemsMsg carries a freshly loaded collection
type itemsMsg struct {
	items    []nt.Item
	reloaded bool
}

// dismissMsg takes down the alert numbered seq
type dismissMsg struct {
	seq int
}

// errorMsg carries an error to show in the footer
type errorMsg struct {
	err error
}
