package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/adapters/tui/styles"
	"kennel/internal/application/commands"
	"kennel/internal/domain"
)

// ColumnsKeyMap defines key bindings for the column picker
type ColumnsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Reset     key.Binding
	Close     key.Binding
}

var ColumnsKeys = ColumnsKeyMap{
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Toggle:    key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "show/hide")),
	MoveLeft:  key.NewBinding(key.WithKeys("K", "shift+up", "<"), key.WithHelp("K/<", "move earlier")),
	MoveRight: key.NewBinding(key.WithKeys("J", "shift+down", ">"), key.WithHelp("J/>", "move later")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Close:     key.NewBinding(key.WithKeys("esc", "c", "q"), key.WithHelp("esc", "close")),
}

// ColumnsModel shows, hides and reorders the columns of a list.
// Changes go straight to the list state, which persists them.
type ColumnsModel struct {
	ViewState
	ctx    context.Context
	kind   domain.EntityKind
	list   *commands.EntityList
	cursor int
}

// NewColumnsModel creates a new column picker
func NewColumnsModel(ctx context.Context) *ColumnsModel {
	return &ColumnsModel{ctx: ctx}
}

// Open edits the columns of list
func (m *ColumnsModel) Open(kind domain.EntityKind, list *commands.EntityList) {
	m.kind = kind
	m.list = list
	m.cursor = 0
	m.ClearMessage()
}

// Cursor returns the index of the highlighted column in the order
func (m *ColumnsModel) Cursor() int {
	return m.cursor
}

// Init initializes the column picker
func (m *ColumnsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the column picker
func (m *ColumnsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list == nil {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		order := m.list.ColumnOrder()
		m.ClearMessage()

		switch {
		case key.Matches(msg, ColumnsKeys.Close):
			return m, func() tea.Msg { return SwitchToListMsg{} }

		case key.Matches(msg, ColumnsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, ColumnsKeys.Down):
			if m.cursor < len(order)-1 {
				m.cursor++
			}

		case key.Matches(msg, ColumnsKeys.Toggle):
			if m.cursor < len(order) {
				m.report(m.list.ToggleColumn(m.ctx, order[m.cursor]))
			}

		case key.Matches(msg, ColumnsKeys.MoveLeft):
			if m.cursor > 0 {
				m.report(m.list.MoveColumn(m.ctx, m.cursor, m.cursor-1))
				m.cursor--
			}

		case key.Matches(msg, ColumnsKeys.MoveRight):
			if m.cursor < len(order)-1 {
				m.report(m.list.MoveColumn(m.ctx, m.cursor, m.cursor+1))
				m.cursor++
			}

		case key.Matches(msg, ColumnsKeys.Reset):
			m.cursor = 0
			if err := m.list.ResetColumns(m.ctx); err != nil {
				m.report(err)
			} else {
				m.SetMessage("Columns reset", false)
			}
		}
	}
	return m, nil
}

// report shows a failed save. The change itself already applies.
func (m *ColumnsModel) report(err error) {
	if err != nil {
		m.SetMessage(fmt.Sprintf("Not saved: %v", err), true)
	}
}

// View renders the column picker
func (m *ColumnsModel) View() string {
	if m.list == nil {
		return ""
	}

	titles := make(map[string]string)
	for _, c := range m.list.AllColumns() {
		titles[c.ID] = c.Title
	}

	vb := NewViewBuilder().
		Title(fmt.Sprintf("%s columns", m.kind.Title())).
		Subtitle("Saved automatically")

	for i, id := range m.list.ColumnOrder() {
		title := titles[id]
		if title == "" {
			title = id
		}
		mark := "[ ] "
		line := styles.ColumnHidden.Render(title)
		if m.list.IsColumnVisible(id) {
			mark = "[x] "
			line = styles.ColumnVisible.Render(title)
		}
		if i == m.cursor {
			vb.Line(styles.RowCursor.Render("› " + mark + title))
		} else {
			vb.Line("  " + mark + line)
		}
	}

	return vb.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(ColumnsKeys.Toggle, ColumnsKeys.MoveLeft, ColumnsKeys.MoveRight, ColumnsKeys.Reset, ColumnsKeys.Close).
		String()
}
