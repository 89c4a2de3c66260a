package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wgx/internal/catalog"
	"github.com/desertthunder/wgx/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	SearchView
	DetailView
)

// Loader runs one listing request; [catalog.Adapter] implements it.
type Loader interface {
	LoadState(ctx context.Context, state models.QueryState) *catalog.Page
}

var _ Loader = (*catalog.Adapter)(nil)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	loader   Loader
	view     ViewState
	state    models.QueryState
	page     *catalog.Page
	loading  bool
	width    int
	height   int
	packages list.Model
	input    textinput.Model
	selected *packageItem
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model that starts at state.
func NewModel(ctx context.Context, loader Loader, state models.QueryState) *Model {
	packages := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	packages.Title = "Winget packages"
	packages.SetShowHelp(false)
	packages.SetShowStatusBar(false)
	packages.SetFilteringEnabled(false)
	packages.DisableQuitKeybindings()

	input := textinput.New()
	input.Placeholder = "Search (e.g. edge)..."
	input.CharLimit = 100

	return &Model{
		ctx:      ctx,
		loader:   loader,
		view:     ListView,
		state:    normalize(state),
		packages: packages,
		input:    input,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// normalize runs state through the same rules as an inbound request.
func normalize(state models.QueryState) models.QueryState {
	if state.PageSize == 0 {
		state.PageSize = catalog.DefaultPageSize
	}
	return catalog.ParseQuery(catalog.Values(state))
}

// State returns the query state of the next or current load.
func (m *Model) State() models.QueryState {
	return m.state
}

// Page returns the last loaded page, or nil before the first load completes.
func (m *Model) Page() *catalog.Page {
	return m.page
}

// Init loads the first page.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.packages.SetSize(msg.Width-2, max(msg.Height-8, 4))
		return m, nil

	case Msg:
		if msg.kind == MsgPageLoaded {
			return m.handlePageLoaded(msg.data.(*catalog.Page))
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListView:
			return m.handleListKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}
	}

	var cmd tea.Cmd
	m.packages, cmd = m.packages.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SearchView:
		return m.renderSearch()
	case DetailView:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m *Model) handlePageLoaded(page *catalog.Page) (tea.Model, tea.Cmd) {
	loaded := page.State
	loaded.Refresh = false
	if loaded != m.state {
		// superseded by a newer request
		return m, nil
	}

	m.page = page
	m.loading = false

	items := make([]list.Item, len(page.Packages))
	for i, pkg := range page.Packages {
		items[i] = packageItem{row: page.RowNumber(i), pkg: pkg}
	}
	cmd := m.packages.SetItems(items)
	m.packages.Select(0)
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		return m, nil
	case key.Matches(msg, m.keys.next):
		if m.page != nil && !m.page.Failed() && m.page.CurrentPage < m.page.TotalPages {
			m.state.Page = m.page.CurrentPage + 1
			return m, m.load()
		}
		return m, nil
	case key.Matches(msg, m.keys.prev):
		if m.page != nil && m.page.CurrentPage > 1 {
			m.state.Page = m.page.CurrentPage - 1
			return m, m.load()
		}
		return m, nil
	case key.Matches(msg, m.keys.sort):
		m.state.Sort = m.state.Sort.Next()
		m.state.Page = 1
		return m, m.load()
	case key.Matches(msg, m.keys.vendor):
		m.state.IsMicrosoft = !m.state.IsMicrosoft
		if !m.state.IsMicrosoft {
			m.state.Publisher = ""
		}
		m.state.Page = 1
		return m, m.load()
	case key.Matches(msg, m.keys.refresh):
		m.state.Refresh = true
		m.state.Page = 1
		return m, m.load()
	case key.Matches(msg, m.keys.search):
		m.view = SearchView
		m.input.SetValue(m.state.Query)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.packages.SelectedItem().(packageItem); ok {
			m.selected = &item
			m.view = DetailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.packages, cmd = m.packages.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.view = ListView
		return m, nil
	case "enter":
		m.input.Blur()
		m.view = ListView
		m.state.Query = strings.TrimSpace(m.input.Value())
		m.state.Publisher = ""
		m.state.IsMicrosoft = false
		m.state.Page = 1
		return m, m.load()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.enter):
		m.view = ListView
		m.selected = nil
	}
	return m, nil
}

// load normalizes the current state and fetches it. The refresh flag only applies to this load.
func (m *Model) load() tea.Cmd {
	m.state = normalize(m.state)
	state := m.state
	m.state.Refresh = false
	m.loading = true

	return func() tea.Msg {
		return pageLoadedMsg(m.loader.LoadState(m.ctx, state))
	}
}

func (m *Model) header() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Winget package catalog"))
	b.WriteString("\n")

	info := fmt.Sprintf("sort: %s • page size: %d", m.state.Sort.Label(), m.state.PageSize)
	if m.page != nil {
		if summary := m.page.FilterSummary(); summary != "" {
			info = summary + " • " + info
		}
	}
	b.WriteString(styles.help.Render(info))
	return b.String()
}

func (m *Model) renderList() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	if m.page == nil {
		b.WriteString("Loading packages...\n")
		b.WriteString("\n" + m.help.View(m.keys))
		return b.String()
	}

	if r := m.page.Refresh; r != nil {
		if r.Success {
			b.WriteString(styles.ok.Render("✓ "+r.Message) + "\n\n")
		} else {
			b.WriteString(styles.err.Render("✗ "+r.Message) + "\n\n")
		}
	}

	switch {
	case m.page.Failed():
		b.WriteString(styles.err.Render("Error: "+m.page.Error) + "\n")
		b.WriteString(styles.help.Render("Check that the package API is running at "+m.page.RequestURL) + "\n")
	case m.page.Empty():
		b.WriteString(styles.warn.Render(m.page.EmptyNotice()) + "\n")
	default:
		b.WriteString(m.packages.View() + "\n")
		status := m.page.Status()
		if m.loading {
			status += " Loading..."
		}
		b.WriteString(styles.status.Render(status) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderSearch() string {
	helpKeys := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		m.keys.back,
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s", m.header(), m.input.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return m.renderList()
	}

	pkg := m.selected.pkg
	fields := []struct{ label, value string }{
		{"Row", fmt.Sprint(m.selected.row)},
		{"Name", pkg.DisplayName()},
		{"Publisher", pkg.DisplayPublisher()},
		{"ID", pkg.DisplayID()},
		{"Version", pkg.DisplayVersion()},
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(pkg.DisplayName()))
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString(styles.label.Render(f.label) + f.value + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit}))
	return b.String()
}
