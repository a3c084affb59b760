package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToListMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Kennel Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Pets, owners and bookings"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Focus column"))
	b.WriteString(helpLine("tab / shift+tab", "Switch list"))
	b.WriteString(helpLine("[ / ]", "Previous/next page"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Narrowing"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Search (esc clears)"))
	b.WriteString(helpLine("v", "Cycle view"))
	b.WriteString(helpLine("s", "Sort by focused column, again to reverse"))
	b.WriteString(helpLine("x", "Clear search, view and filters"))
	b.WriteString(helpLine("c", "Show, hide and reorder columns"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Records"))
	b.WriteString("\n")
	b.WriteString(helpLine("space", "Select row"))
	b.WriteString(helpLine("a", "Select/unselect page"))
	b.WriteString(helpLine("n", "New record"))
	b.WriteString(helpLine("e / enter", "Edit record"))
	b.WriteString(helpLine("d", "Delete record"))
	b.WriteString(helpLine("D", "Delete selected records"))
	b.WriteString(helpLine("y", "Copy selected ids"))
	b.WriteString(helpLine("o", "Edit record in $EDITOR"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
