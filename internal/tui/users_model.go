package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/userdir/internal/directory"
	"github.com/rshade/userdir/internal/logging"
	"github.com/rshade/userdir/internal/pagination"
	listview "github.com/rshade/userdir/internal/tui/list"
)

// UsersFetcher loads the users list. *directory.Query implements it: Fetch
// serves a fresh cached list, Invalidate forces the next Fetch to the
// network.
type UsersFetcher interface {
	Fetch(ctx context.Context) ([]directory.User, error)
	Invalidate()
}

// UsersOptions configures NewUsersModel. Zero values select defaults.
type UsersOptions struct {
	// Params is the initial search, sort and page state.
	Params pagination.Params

	// Breakpoint is the width above which the table layout is used.
	Breakpoint int

	// Width and Height are the initial terminal size.
	Width  int
	Height int
}

// usersLoadedMsg carries the fetch result. seq identifies the fetch so a
// result that arrives after a newer fetch started is dropped.
type usersLoadedMsg struct {
	seq   int
	users []directory.User
	err   error
}

const (
	// tableTopRow is the screen row of the table header, below the title
	// and search lines.
	tableTopRow = 2

	// chromeHeight is the number of lines around the body: title, search,
	// blank, pager and help.
	chromeHeight = 5

	// tableHeaderHeight is the header text plus its bottom border.
	tableHeaderHeight = 2

	// cellPadding is the horizontal padding bubbles/table adds to each cell.
	cellPadding = 2

	minColumnWidth = 8
	percent        = 100
)

// columnShares are the percentage widths of directory.Columns.
//
//nolint:gochecknoglobals // Layout table.
var columnShares = []int{26, 32, 22, 20}

// UsersModel is the Bubble Tea model for the users directory. It owns all
// view state: the fetched users, the search, sort and page parameters, and
// the layout chosen from the terminal width.
type UsersModel struct {
	ctx     context.Context
	cancel  context.CancelFunc
	fetcher UsersFetcher
	seq     int

	// View state
	state      ViewState
	refreshing bool
	users      []directory.User // Source of truth
	params     pagination.Params
	result     pagination.Result // Current page

	// Interactive components
	table      table.Model
	cards      *listview.Model[directory.User]
	search     textinput.Model
	pager      PageControl
	showSearch bool
	showHelp   bool

	// Layout
	width      int
	height     int
	breakpoint int
	device     DeviceType

	loading *LoadingState
	printer *message.Printer
	err     error
}

// NewUsersModel creates a model in the Loading state. The fetch starts from
// Init and is cancelled when the user quits.
func NewUsersModel(ctx context.Context, fetcher UsersFetcher, opts UsersOptions) *UsersModel {
	ctx, cancel := context.WithCancel(ctx)

	m := &UsersModel{
		ctx:        ctx,
		cancel:     cancel,
		fetcher:    fetcher,
		state:      ViewStateLoading,
		params:     normalizeParams(opts.Params),
		search:     newSearchInput(),
		pager:      NewPageControl(),
		width:      opts.Width,
		height:     opts.Height,
		breakpoint: opts.Breakpoint,
		loading:    NewLoadingState(),
		printer:    message.NewPrinter(language.English),
	}
	if m.width <= 0 {
		m.width = defaultWidth
	}
	if m.height <= 0 {
		m.height = defaultHeight
	}
	if m.breakpoint <= 0 {
		m.breakpoint = DefaultBreakpoint
	}
	m.device = DeviceTypeFor(m.width, m.breakpoint)
	m.search.SetValue(m.params.Query)
	m.recompute()
	return m
}

// normalizeParams fills in defaults for an initial state.
func normalizeParams(p pagination.Params) pagination.Params {
	if !pagination.IsValidPageSize(p.PageSize) {
		p.PageSize = pagination.DefaultPageSize
	}
	if p.Page < pagination.MinPage {
		p.Page = pagination.DefaultPage
	}
	if p.Sort.Direction == "" {
		p.Sort.Direction = pagination.SortAsc
	}
	return p
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name or email"
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// State returns the display state.
func (m *UsersModel) State() ViewState { return m.state }

// Params returns the current search, sort and page state.
func (m *UsersModel) Params() pagination.Params { return m.params }

// Result returns the page currently shown.
func (m *UsersModel) Result() pagination.Result { return m.result }

// Device returns the layout in use.
func (m *UsersModel) Device() DeviceType { return m.device }

// Err returns the fetch error in the Error state.
func (m *UsersModel) Err() error { return m.err }

// Init starts the spinner and the fetch.
func (m *UsersModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetch())
}

func (m *UsersModel) fetch() tea.Cmd {
	m.seq++
	seq, ctx, fetcher := m.seq, m.ctx, m.fetcher
	return func() tea.Msg {
		users, err := fetcher.Fetch(ctx)
		return usersLoadedMsg{seq: seq, users: users, err: err}
	}
}

// Update handles messages and updates the model state.
func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case usersLoadedMsg:
		return m.handleUsersLoaded(msg)
	case PageChangedMsg:
		m.params.Page = msg.Page
		m.recompute()
		return m, nil
	case PageSizeChangedMsg:
		m.params.PageSize = msg.PageSize
		m.params.Page = msg.Page
		m.recompute()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmds []tea.Cmd
	if m.state == ViewStateLoading {
		cmds = append(cmds, m.loading.Update(msg))
	}
	if m.showSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.pager.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m *UsersModel) handleUsersLoaded(msg usersLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq || m.state == ViewStateQuitting {
		return m, nil
	}

	log := logging.FromContext(m.ctx)
	m.refreshing = false
	if msg.err != nil {
		log.Debug().Ctx(m.ctx).Str("component", "tui").Err(msg.err).Msg("users fetch failed")
		m.err = msg.err
		m.users = nil
		m.state = ViewStateError
		m.recompute()
		return m, nil
	}

	log.Debug().Ctx(m.ctx).Str("component", "tui").Int("count", len(msg.users)).Msg("users loaded")
	m.err = nil
	m.users = msg.users
	m.state = ViewStateList
	m.recompute()
	return m, nil
}

func (m *UsersModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		return m.quit()
	}
	if m.showSearch {
		return m.handleSearchKey(msg)
	}
	if m.pager.Editing() {
		cmd, _ := m.pager.HandleKey(msg)
		return m, cmd
	}
	if m.showHelp {
		switch msg.String() {
		case keyQuit:
			return m.quit()
		case keyHelp, keyEsc:
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case keyQuit:
		return m.quit()
	case keyHelp:
		m.showHelp = true
		return m, nil
	case keySlash:
		m.showSearch = true
		return m, m.search.Focus()
	case keyEsc:
		if m.params.Query != "" {
			m.search.SetValue("")
			m.setQuery("")
		}
		return m, nil
	case keyRefresh:
		return m.refresh(false)
	case keyReload:
		return m.refresh(true)
	case "1", "2", "3", "4":
		m.toggleSort(directory.Columns[msg.Runes[0]-'1'])
		return m, nil
	}

	if cmd, ok := m.pager.HandleKey(msg); ok {
		return m, cmd
	}
	return m.forwardNavigation(msg)
}

func (m *UsersModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc:
		m.showSearch = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.params.Query {
		m.setQuery(value)
	}
	return m, cmd
}

func (m *UsersModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != ViewStateList || m.device != DeviceDesktop || m.showHelp {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != tableTopRow {
		return m, nil
	}
	if column, ok := m.columnAt(msg.X); ok {
		m.toggleSort(column)
	}
	return m, nil
}

func (m *UsersModel) forwardNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state != ViewStateList {
		return m, nil
	}
	if m.device == DeviceDesktop {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	_, cmd := m.cards.Update(msg)
	return m, cmd
}

// setQuery applies a new search and returns to the first page.
func (m *UsersModel) setQuery(query string) {
	m.params.Query = query
	m.params.Page = pagination.DefaultPage
	m.recompute()
}

// toggleSort applies a header click on column.
func (m *UsersModel) toggleSort(column string) {
	m.params.Sort = m.params.Sort.Toggle(column)
	m.recompute()
}

// refresh re-runs the query. From the Error state it is a retry through the
// Loading state. From the list the current page stays on screen and the
// query answers from cache while the last result is fresh; reload drops the
// cached result first.
func (m *UsersModel) refresh(reload bool) (tea.Model, tea.Cmd) {
	if m.refreshing || m.state == ViewStateLoading {
		return m, nil
	}
	if reload {
		m.fetcher.Invalidate()
	}
	if m.state == ViewStateList {
		m.refreshing = true
		return m, m.fetch()
	}

	m.state = ViewStateLoading
	m.err = nil
	m.loading = NewLoadingState()
	m.recompute()
	return m, tea.Batch(m.loading.Init(), m.fetch())
}

func (m *UsersModel) quit() (tea.Model, tea.Cmd) {
	m.state = ViewStateQuitting
	m.cancel()
	return m, tea.Quit
}

// resize switches layout for the new width. Search, sort, page and the
// selected row are kept.
func (m *UsersModel) resize(width, height int) {
	selected := m.selectedIndex()
	m.width = width
	m.height = height
	m.device = DeviceTypeFor(width, m.breakpoint)
	m.rebuild()
	if !m.result.Empty() {
		m.table.SetCursor(selected)
		m.cards.SetSelected(selected)
	}
}

// selectedIndex is the selected row on the current page in the active layout.
func (m *UsersModel) selectedIndex() int {
	if m.device == DeviceDesktop {
		return m.table.Cursor()
	}
	return m.cards.Selected()
}

// recompute runs the pipeline and clamps the current page into range.
func (m *UsersModel) recompute() {
	m.result = pagination.Apply(m.users, m.params)
	m.params.Page = m.result.Page
	m.params.PageSize = m.result.PageSize
	m.pager.SetState(m.result.TotalPages, m.result.Page, m.result.PageSize)
	m.rebuild()
}

// rebuild recreates the table and card list for the current page and size.
func (m *UsersModel) rebuild() {
	m.table = m.buildTable()
	m.cards = listview.New(m.result.Items, m.bodyHeight(), m.width, cardHeight, renderCard)
}

func (m *UsersModel) bodyHeight() int {
	return max(m.height-chromeHeight, minHeight)
}

func (m *UsersModel) buildTable() table.Model {
	rows := make([]table.Row, len(m.result.Items))
	for i, u := range m.result.Items {
		row := make(table.Row, len(directory.Columns))
		for j, column := range directory.Columns {
			row[j] = u.DisplayField(column)
		}
		rows[i] = row
	}

	height := min(len(rows)+tableHeaderHeight, m.bodyHeight())
	t := table.New(
		table.WithColumns(m.tableColumns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height, tableHeaderHeight+1)),
		table.WithKeyMap(tableKeyMap()),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// tableKeyMap keeps only row navigation so paging keys reach the pager.
func tableKeyMap() table.KeyMap {
	return table.KeyMap{
		LineUp:   key.NewBinding(key.WithKeys("up", "k")),
		LineDown: key.NewBinding(key.WithKeys("down", "j")),
	}
}

// tableColumns splits the width between the columns. The active sort column
// title carries the direction arrow.
func (m *UsersModel) tableColumns() []table.Column {
	n := len(directory.Columns)
	available := max(m.width-n*cellPadding, n*minColumnWidth)

	columns := make([]table.Column, n)
	used := 0
	for i, name := range directory.Columns {
		width := available * columnShares[i] / percent
		if i == n-1 {
			width = available - used
		}
		width = max(width, minColumnWidth)
		used += width
		columns[i] = table.Column{Title: columnTitle(name, m.params.Sort), Width: width}
	}
	return columns
}

// columnAt maps a screen column to the table column under it.
func (m *UsersModel) columnAt(x int) (string, bool) {
	start := 0
	for i, c := range m.tableColumns() {
		end := start + c.Width + cellPadding
		if x >= start && x < end {
			return directory.Columns[i], true
		}
		start = end
	}
	return "", false
}
