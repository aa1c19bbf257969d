package sieve

import (
	tea "charm.land/bubbletea/v2"
)

// getItems gets the collection from the store
func (m Model) getItems() tea.Cmd {

	return func() tea.Msg {
		items, err := m.Store.Items()
		if err != nil {
			return errorMsg{err: err}
		}
		return itemsMsg{items: items}
	}
}

// reload reloads the store and gets the collection
func (m Model) reload() tea.Cmd {

	return func() tea.Msg {
		err := m.Store.Load(m.ctx)
		if err != nil {
			return errorMsg{err: err}
		}

		items, err := m.Store.Items()
		if err != nil {
			return errorMsg{err: err}
		}
		return itemsMsg{items: items, reloaded: true}
	}
}

// listen waits for a committed search term or a repaint tick
func (m Model) listen() tea.Cmd {

	return func() tea.Msg {
		select {
		case term := <-m.terms:
			return termMsg{term: term}
		case <-m.repaint:
			return repaintMsg{}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// offer hands term to ch, replacing any term not yet taken
func offer(ch chan string, term string) {
	for {
		select {
		case ch <- term:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
