package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/adapters/tui/styles"
)

// SearchKeyMap defines key bindings while the search bar has focus
type SearchKeyMap struct {
	Done   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Done: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "keep search"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
}

// SearchBar is the inline search input of the list view
type SearchBar struct {
	input  textinput.Model
	active bool
}

// NewSearchBar creates an inactive search bar
func NewSearchBar() SearchBar {
	input := textinput.New()
	input.Placeholder = "search..."
	input.CharLimit = 100
	input.Prompt = ""
	return SearchBar{input: input}
}

// Active reports whether the search bar has focus
func (s *SearchBar) Active() bool {
	return s.active
}

// Focus activates the search bar, starting from term
func (s *SearchBar) Focus(term string) tea.Cmd {
	s.active = true
	s.input.SetValue(term)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Blur deactivates the search bar, keeping its value
func (s *SearchBar) Blur() {
	s.active = false
	s.input.Blur()
}

// SetValue replaces the term without changing focus
func (s *SearchBar) SetValue(term string) {
	s.input.SetValue(term)
}

// Value returns the current search term
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// Update feeds a key to the input. done is true once the user leaves the
// bar; cancelled additionally means the term was cleared.
func (s *SearchBar) Update(msg tea.KeyMsg) (done, cancelled bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, SearchKeys.Done):
		s.Blur()
		return true, false, nil
	case key.Matches(msg, SearchKeys.Cancel):
		s.input.SetValue("")
		s.Blur()
		return true, true, nil
	}
	s.input, cmd = s.input.Update(msg)
	return false, false, cmd
}

// View renders the bar; an inactive bar shows the kept term, if any
func (s *SearchBar) View() string {
	if s.active {
		return styles.SearchPrompt.Render("/") + " " + s.input.View()
	}
	if s.input.Value() != "" {
		return styles.SearchPrompt.Render("/") + " " + s.input.Value()
	}
	return ""
}
