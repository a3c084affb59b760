package views

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/adapters/tui/styles"
	"kennel/internal/application/commands"
	"kennel/internal/application/liststate"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// ListKeyMap defines key bindings for the list view
type ListKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	NextKind    key.Binding
	PrevKind    key.Binding
	Search      key.Binding
	View        key.Binding
	Sort        key.Binding
	Toggle      key.Binding
	SelectPage  key.Binding
	Columns     key.Binding
	New         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	BulkDelete  key.Binding
	Copy        key.Binding
	Open        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	ClearFilter key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var ListKeys = ListKeyMap{
	Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Left:        key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev column")),
	Right:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next column")),
	NextKind:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
	PrevKind:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev list")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	View:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view")),
	Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Toggle:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
	SelectPage:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
	Columns:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "columns")),
	New:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Edit:        key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	BulkDelete:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
	Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy ids")),
	Open:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "edit in $EDITOR")),
	PrevPage:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
	NextPage:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
	ClearFilter: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// BulkDeleteAction is the bulk action offered on a selection
const BulkDeleteAction = "delete"

// ListModel is the tabbed entity list view. Each kind keeps its own list
// state, so switching tabs preserves search, sort, page and selection.
type ListModel struct {
	ViewState
	ctx   context.Context
	repo  ports.EntityRepository
	kinds []domain.EntityKind
	lists map[domain.EntityKind]*commands.EntityList

	active  int
	records map[domain.EntityKind][]domain.Record
	matched []domain.Record
	page    []domain.Record

	table     table.Model
	search    SearchBar
	colCursor int

	editor          ports.EditorOpener
	now             func() time.Time
	copyToClipboard func(string) error
}

// NewListModel creates the list view, loading the column preferences of
// every kind from prefs
func NewListModel(ctx context.Context, repo ports.EntityRepository, prefs ports.PreferenceStore, defaults commands.ListDefaults) (*ListModel, error) {
	m := &ListModel{
		ctx:             ctx,
		repo:            repo,
		kinds:           domain.AllKinds,
		lists:           make(map[domain.EntityKind]*commands.EntityList),
		records:         make(map[domain.EntityKind][]domain.Record),
		search:          NewSearchBar(),
		now:             time.Now,
		copyToClipboard: clipboard.WriteAll,
	}
	for _, kind := range m.kinds {
		list, err := commands.NewEntityList(ctx, kind, prefs, defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s list: %w", kind, err)
		}
		m.lists[kind] = list
	}

	st := table.DefaultStyles()
	st.Header = styles.TableHeader
	st.Selected = styles.RowCursor
	m.table = table.New(table.WithFocused(true), table.WithStyles(st))
	m.refresh()
	return m, nil
}

// SetEditor enables editing the current record in an external editor
func (m *ListModel) SetEditor(e ports.EditorOpener) {
	m.editor = e
}

// Init loads the records of every kind
func (m *ListModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.kinds))
	for i, kind := range m.kinds {
		cmds[i] = m.load(kind)
	}
	return tea.Batch(cmds...)
}

// Reload reloads the records of the active kind
func (m *ListModel) Reload() tea.Cmd {
	return m.load(m.Kind())
}

func (m *ListModel) load(kind domain.EntityKind) tea.Cmd {
	return func() tea.Msg {
		records, err := commands.LoadRecords(m.ctx, m.repo, kind)
		return recordsLoadedMsg{kind: kind, records: records, err: err}
	}
}

// Kind returns the active entity kind
func (m *ListModel) Kind() domain.EntityKind {
	return m.kinds[m.active]
}

// List returns the state of the active list
func (m *ListModel) List() *commands.EntityList {
	return m.lists[m.Kind()]
}

// Page returns the records shown on the current page
func (m *ListModel) Page() []domain.Record {
	return m.page
}

// Matched returns the number of records matching the active query
func (m *ListModel) Matched() int {
	return len(m.matched)
}

// SetSize updates the view dimensions and the table height
func (m *ListModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.table.SetWidth(max(width-4, 20))
	m.table.SetHeight(max(height-12, 5))
}

// Update handles messages for the list view
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case recordsLoadedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.records[msg.kind] = msg.records
		if msg.kind == m.Kind() {
			m.refresh()
		}
		return m, nil

	case editorDoneMsg:
		return m, m.applyEdit(msg)

	case tea.KeyMsg:
		if m.search.Active() {
			return m, m.updateSearch(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *ListModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	_, _, cmd := m.search.Update(msg)
	list := m.List()
	if list.SearchTerm() != m.search.Value() {
		list.SetSearchTerm(m.search.Value())
		list.ResetPagination()
		m.refresh()
	}
	return cmd
}

func (m *ListModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	list := m.List()
	m.ClearMessage()

	switch {
	case key.Matches(msg, ListKeys.Quit):
		return tea.Quit

	case key.Matches(msg, ListKeys.Up):
		m.table.MoveUp(1)

	case key.Matches(msg, ListKeys.Down):
		m.table.MoveDown(1)

	case key.Matches(msg, ListKeys.Left):
		if m.colCursor > 0 {
			m.colCursor--
			m.refresh()
		}

	case key.Matches(msg, ListKeys.Right):
		if m.colCursor < len(m.dataColumns())-1 {
			m.colCursor++
			m.refresh()
		}

	case key.Matches(msg, ListKeys.NextKind):
		m.switchKind(1)

	case key.Matches(msg, ListKeys.PrevKind):
		m.switchKind(-1)

	case key.Matches(msg, ListKeys.Search):
		return m.search.Focus(list.SearchTerm())

	case key.Matches(msg, ListKeys.View):
		views := m.Kind().Views()
		next := (slices.Index(views, list.ActiveView()) + 1) % len(views)
		list.SetActiveView(views[next])
		list.ResetPagination()
		m.refresh()

	case key.Matches(msg, ListKeys.Sort):
		if col, ok := m.focusedColumn(); ok {
			list.HandleSort(col.ID)
			m.refresh()
		}

	case key.Matches(msg, ListKeys.Toggle):
		if r, ok := m.current(); ok {
			list.ToggleRow(r.RecordID())
			m.refresh()
		}

	case key.Matches(msg, ListKeys.SelectPage):
		ids := recordIDs(m.page)
		if len(ids) > 0 && len(list.SelectedIn(ids)) == len(ids) {
			list.ClearSelection()
		} else {
			list.SelectAll(ids...)
		}
		m.refresh()

	case key.Matches(msg, ListKeys.Columns):
		kind := m.Kind()
		return func() tea.Msg { return SwitchToColumnsMsg{Kind: kind} }

	case key.Matches(msg, ListKeys.New):
		list.OpenCreateModal()
		return m.modalChanged()

	case key.Matches(msg, ListKeys.Edit):
		if r, ok := m.current(); ok {
			list.OpenEditModal(r)
			return m.modalChanged()
		}

	case key.Matches(msg, ListKeys.Delete):
		if r, ok := m.current(); ok {
			list.OpenDeleteModal(r)
			return m.modalChanged()
		}

	case key.Matches(msg, ListKeys.BulkDelete):
		if list.SelectedCount() == 0 {
			m.SetMessage("Nothing selected", true)
			return nil
		}
		list.OpenBulkActionModal(BulkDeleteAction)
		return m.modalChanged()

	case key.Matches(msg, ListKeys.Copy):
		m.copyIDs()

	case key.Matches(msg, ListKeys.Open):
		if r, ok := m.current(); ok {
			return m.openEditor(r)
		}

	case key.Matches(msg, ListKeys.PrevPage):
		list.PrevPage()
		m.refresh()

	case key.Matches(msg, ListKeys.NextPage):
		if list.CurrentPage() < list.TotalPages(len(m.matched)) {
			list.NextPage()
			m.refresh()
		}

	case key.Matches(msg, ListKeys.ClearFilter):
		list.ClearFilters()
		list.ResetPagination()
		m.search.SetValue("")
		m.refresh()

	case key.Matches(msg, ListKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return nil
}

func (m *ListModel) modalChanged() tea.Cmd {
	kind := m.Kind()
	return func() tea.Msg { return ModalChangedMsg{Kind: kind} }
}

func (m *ListModel) switchKind(delta int) {
	m.active = (m.active + delta + len(m.kinds)) % len(m.kinds)
	m.search.SetValue(m.List().SearchTerm())
	m.colCursor = 0
	m.table.SetCursor(0)
	m.refresh()
}

func (m *ListModel) copyIDs() {
	list := m.List()
	ids := list.SelectedIn(recordIDs(m.records[m.Kind()]))
	if len(ids) == 0 {
		if r, ok := m.current(); ok {
			ids = []string{r.RecordID()}
		}
	}
	if len(ids) == 0 {
		return
	}
	if err := m.copyToClipboard(strings.Join(ids, "\n")); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.SetMessage(fmt.Sprintf("Copied %d id(s)", len(ids)), false)
}

// current returns the record under the cursor
func (m *ListModel) current() (domain.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.page) {
		return nil, false
	}
	return m.page[i], true
}

// dataColumns returns the visible columns that hold data, in order
func (m *ListModel) dataColumns() []domain.Column {
	return slices.DeleteFunc(m.List().OrderedColumns(), func(c domain.Column) bool {
		return c.ID == domain.ActionsColumn
	})
}

func (m *ListModel) focusedColumn() (domain.Column, bool) {
	cols := m.dataColumns()
	if m.colCursor < 0 || m.colCursor >= len(cols) {
		return domain.Column{}, false
	}
	return cols[m.colCursor], true
}

// SelectedRecords returns the loaded records selected in the active list,
// including those hidden by the current query
func (m *ListModel) SelectedRecords() []domain.Record {
	list := m.List()
	var out []domain.Record
	for _, r := range m.records[m.Kind()] {
		if list.IsSelected(r.RecordID()) {
			out = append(out, r)
		}
	}
	return out
}

// Refresh rebuilds the table after the list state changed elsewhere
func (m *ListModel) Refresh() {
	m.refresh()
}

// refresh recomputes the page from the list state and rebuilds the table
func (m *ListModel) refresh() {
	kind := m.Kind()
	list := m.List()

	m.matched = commands.ApplyQuery(kind, m.records[kind], commands.QueryFrom(list.SortFilter))
	if total := list.TotalPages(len(m.matched)); total > 0 && list.CurrentPage() > total {
		list.GoToPage(total)
	}
	m.page = list.PaginateData(m.matched)

	cols := list.OrderedColumns()
	if n := len(m.dataColumns()); m.colCursor >= n {
		m.colCursor = max(n-1, 0)
	}
	focused, _ := m.focusedColumn()
	sort := list.Sort()

	tableCols := []table.Column{{Title: " ", Width: 2}}
	for _, c := range cols {
		title := c.Title
		if c.ID == sort.Key {
			title += sortArrow(sort.Direction)
		}
		if c.ID == focused.ID {
			title = "›" + title
		}
		tableCols = append(tableCols, table.Column{Title: title, Width: c.Width})
	}

	now := m.now()
	rows := make([]table.Row, len(m.page))
	for i, r := range m.page {
		row := table.Row{" "}
		if list.IsSelected(r.RecordID()) {
			row[0] = "✓"
		}
		for _, c := range cols {
			if c.ID == domain.ActionsColumn {
				row = append(row, "e·d")
				continue
			}
			row = append(row, Truncate(commands.FormatCell(r, c.ID, now), c.Width))
		}
		rows[i] = row
	}

	// rows must never be wider than the columns
	m.table.SetRows(nil)
	m.table.SetColumns(tableCols)
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c < 0 || c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func sortArrow(d liststate.Direction) string {
	if d == liststate.Desc {
		return " ▼"
	}
	return " ▲"
}

func recordIDs(records []domain.Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.RecordID()
	}
	return ids
}

// View renders the list view
func (m *ListModel) View() string {
	list := m.List()
	kind := m.Kind()

	titles := make([]string, len(m.kinds))
	for i, k := range m.kinds {
		titles[i] = k.Title()
	}

	var status []string
	status = append(status, "view: "+list.ActiveView())
	if s := list.Sort(); s.Key != "" {
		status = append(status, "sort: "+s.Key+sortArrow(s.Direction))
	}
	if list.HasActiveFilters() {
		status = append(status, "filtered")
	}
	if n := list.SelectedCount(); n > 0 {
		status = append(status, fmt.Sprintf("%d selected", n))
	}

	vb := NewViewBuilder().
		Title("Kennel").
		Line(RenderTabs(titles, m.active)).
		BlankLine().
		Muted(strings.Join(status, " • "))

	if bar := m.search.View(); bar != "" {
		vb.Line(bar)
	}
	vb.BlankLine()

	if len(m.matched) == 0 {
		vb.Muted(fmt.Sprintf("No %s", kind))
	} else {
		vb.Line(m.table.View())
		if r, ok := m.current(); ok {
			vb.Line(RenderLabelValue(r.RecordID(), RenderStatus(r.Field("status"))))
		}
	}

	vb.BlankLine().
		Muted(fmt.Sprintf("Page %d/%d • %d %s",
			list.CurrentPage(), max(list.TotalPages(len(m.matched)), 1), len(m.matched), kind)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(ListKeys.Search, ListKeys.View, ListKeys.Sort, ListKeys.Toggle, ListKeys.Columns,
			ListKeys.New, ListKeys.Delete, ListKeys.Help, ListKeys.Quit)

	return vb.String()
}
