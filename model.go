package sieve

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"sieve/alert"
	"sieve/console"
	"sieve/detail"
	nt "sieve/entity"
	"sieve/page"
	"sieve/refresh"
	"sieve/search"
	"sieve/table"
	"sieve/trigger"
)

const (
	// chromeHeight is the number of lines used by search box and footer
	chromeHeight = 2
)

// Model is the bubbletea model for browsing a collection.
type Model struct {
	Store    Store
	cfg      *Config
	pipeline *Pipeline
	trigger  *trigger.Trigger
	burst    *refresh.Burst
	terms    chan string
	repaint  chan struct{}

	items   []nt.Item
	term    string
	sortIdx int // index into visible columns, -1 for unsorted
	reverse bool
	result  Result

	Search search.Box
	Table  table.Panel
	Detail detail.Panel

	showDetail bool

	settings console.Settings
	location string // console address of the page shown
	alert    alert.Alert
	alertSeq int // latest alert, so stale dismissals are ignored

	Width  int
	Height int

	ctx    context.Context
	cancel context.CancelFunc
	logger nt.Logger
}

// NewModel creates a model over the items of store.
func NewModel(ctx context.Context, cfg *Config, store Store, lgr nt.Logger) (model Model, err error) {

	err = cfg.Validate()
	if err != nil {
		return
	}

	pipeline, err := cfg.NewPipeline()
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	settings := console.Default()

	terms := make(chan string, 1)
	repaint := make(chan struct{}, 1)

	trg := cfg.Trigger.New(func(term string) {
		offer(terms, term)
	})
	bst := cfg.Refresh.New(func() {
		select {
		case repaint <- struct{}{}:
		default:
		}
	})

	model = Model{
		Store:    store,
		cfg:      cfg,
		pipeline: pipeline,
		trigger:  trg,
		burst:    bst,
		terms:    terms,
		repaint:  repaint,
		sortIdx:  -1,
		Search:   search.New(trg.Submit),
		Table:    table.New(cfg.Visible(), cfg.PageSize),
		settings: settings,
		location: settings.Routes().Default,
		ctx:      ctx,
		cancel:   cancel,
		logger:   lgr,
	}

	return
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.getItems(), m.listen())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case itemsMsg:
		m.items = msg.items
		m.burst.Start(m.ctx)
		m = m.run()
		if msg.reloaded {
			return m.show(alert.Alert{Type: alert.Success, Message: alert.Reloaded})
		}
		return m, nil

	case termMsg:
		m.term = msg.term
		m.Table = m.Table.Reset()
		m = m.run()
		m = m.locate()
		m.logger.Info(m.ctx, "search committed", "term", msg.term, "location", m.location)
		return m, m.listen()

	case repaintMsg:
		return m, m.listen()

	case table.PageMsg:
		m.result.Page = page.Number(msg.State)
		m = m.locate()
		return m, nil

	case errorMsg:
		m.logger.Error(m.ctx, "error msg", msg.err)
		al := alert.FromError(msg.err)
		if alert.Unauthorized(msg.err) {
			signIn := m.settings.Routes().SignIn
			m.logger.Info(m.ctx, "sign in required", "route", signIn)
			al.Message += " " + signIn
		}
		return m.show(al)

	case dismissMsg:
		if msg.seq == m.alertSeq {
			m.alert = alert.Alert{}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Table = m.Table.SetSize(msg.Width, msg.Height-chromeHeight)
		m.Detail = m.Detail.SetSize(msg.Width, msg.Height-chromeHeight)
		return m.run(), nil

	case tea.KeyPressMsg:
		if m.Search.Focused() {
			return m.searchKey(msg)
		}
		if m.showDetail {
			return m.detailKey(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Close()
			return m, tea.Quit

		case "/":
			m.Search = m.Search.Focus()
			return m, nil

		case "s":
			m.sortIdx = m.nextSort()
			return m.run(), nil

		case "r":
			m.reverse = !m.reverse
			return m.run(), nil

		case "R":
			return m, m.reload()

		case "enter":
			item, ok := m.Table.Selected()
			if ok {
				m.Detail = m.Detail.Show(item)
				m.showDetail = true
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.Table, cmd = m.Table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() tea.View {

	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	view := tea.NewView(m.render())
	view.AltScreen = true
	return view
}

// Close cancels a pending search, any refresh burst and waiting commands.
func (m Model) Close() {
	m.trigger.Close()
	m.burst.Stop()
	m.cancel()
}

// Result returns the outcome of the latest query.
func (m Model) Result() Result {
	return m.result
}

// Location returns the console address of the page shown, with page and
// search term as query parameters.
func (m Model) Location() string {
	return m.location
}

// Alert returns the alert showing, if any.
func (m Model) Alert() alert.Alert {
	return m.alert
}

// Query returns the query for the current search, sort and page.
func (m Model) Query() Query {

	filters := slices.Clone(m.cfg.Filters)
	filters = append(filters, Search(m.cfg.SearchField, m.term)...)

	return Query{
		Filters: filters,
		Sort:    m.sort(),
		State:   m.Table.State(),
	}
}

// unexported

func (m Model) run() Model {

	m.result = m.pipeline.Run(m.items, m.Query())

	field := ""
	if col, ok := m.sortColumn(); ok {
		field = col.Field
	}
	m.Table = m.Table.SetItems(m.result.Items).SetSort(field, m.reverse)

	// page may have been clamped to the new collection
	m.result.Page = page.Number(m.Table.State())
	m.result.Pages = m.Table.Pages()
	return m
}

// render lays out search box, table or detail, and footer.
func (m Model) render() string {

	footer := RenderFooter(m.result, m.Store.Name(), m.Width)
	if !m.alert.Empty() {
		footer = RenderAlert(m.alert, m.Width)
	}

	panel := m.Table.View()
	if m.showDetail {
		panel = m.Detail.View()
	}

	body := lipgloss.NewStyle().Height(max(m.Height-chromeHeight, 1)).Render(panel)
	return lipgloss.JoinVertical(lipgloss.Left, m.Search.View(), body, footer)
}

// show puts up al until the dismiss interval passes or another alert replaces it.
func (m Model) show(al alert.Alert) (tea.Model, tea.Cmd) {

	m.alert = al
	m.alertSeq++
	seq := m.alertSeq

	return m, tea.Tick(m.settings.DismissInterval(), func(time.Time) tea.Msg {
		return dismissMsg{seq: seq}
	})
}

// locate keeps the page and search term in the console address.
func (m Model) locate() Model {

	m.location = console.SetQueryParam(m.location, "page", strconv.Itoa(m.result.Page))
	if m.term == "" {
		m.location = console.RemoveQueryParam(m.location, m.cfg.SearchField)
		return m
	}
	m.location = console.SetQueryParam(m.location, m.cfg.SearchField, url.QueryEscape(m.term))
	return m
}

func (m Model) searchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "esc", "enter":
		m.Search = m.Search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	return m, cmd
}

func (m Model) detailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "esc", "enter", "q":
		m.showDetail = false
		return m, nil
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}

func (m Model) sort() nt.SortSpec {

	col, ok := m.sortColumn()
	if !ok {
		return nt.SortSpec{}
	}
	return m.cfg.SortFor(col.Field).Reversed(m.reverse)
}

func (m Model) sortColumn() (col nt.Column, ok bool) {

	visible := m.cfg.Visible()
	if m.sortIdx < 0 || m.sortIdx >= len(visible) {
		return
	}
	return visible[m.sortIdx], true
}

func (m Model) nextSort() int {

	next := m.sortIdx + 1
	if next >= len(m.cfg.Visible()) {
		return -1
	}
	return next
}
