package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/adapters/tui/views"
	"kennel/internal/application/commands"
	"kennel/internal/application/liststate"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewList ViewState = iota
	ViewForm
	ViewDelete
	ViewColumns
	ViewHelp
)

// App is the main TUI application model. Which dialog is on screen follows
// the modal state of the active list.
type App struct {
	state   ViewState
	list    *views.ListModel
	form    *views.FormModel
	remove  *views.DeleteModel
	columns *views.ColumnsModel
	help    *views.HelpModel

	width  int
	height int
}

// Option configures the App
type Option func(*App)

// WithEditor lets the list open records in an external editor
func WithEditor(e ports.EditorOpener) Option {
	return func(a *App) {
		a.list.SetEditor(e)
	}
}

// NewApp creates a new TUI application
func NewApp(ctx context.Context, repo ports.EntityRepository, prefs ports.PreferenceStore, defaults commands.ListDefaults, opts ...Option) (*App, error) {
	list, err := views.NewListModel(ctx, repo, prefs, defaults)
	if err != nil {
		return nil, err
	}
	a := &App{
		state:   ViewList,
		list:    list,
		form:    views.NewFormModel(ctx, repo),
		remove:  views.NewDeleteModel(ctx, repo),
		columns: views.NewColumnsModel(ctx),
		help:    views.NewHelpModel(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.remove.SetSize(msg.Width, msg.Height)
		a.columns.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.ModalChangedMsg:
		return a, a.showModal(msg.Kind)

	case views.ModalDoneMsg:
		list := a.list.List()
		if msg.Err == nil && msg.Changed {
			switch state := list.ModalState(); state.Kind {
			case liststate.ModalBulkAction:
				list.ClearSelection()
			case liststate.ModalDeleting:
				if state.Item != nil {
					if id := (*state.Item).RecordID(); list.IsSelected(id) {
						list.ToggleRow(id)
					}
				}
			}
		}
		list.CloseModals()
		a.state = ViewList
		switch {
		case msg.Err != nil:
			a.list.SetMessage(msg.Err.Error(), true)
		case msg.Message != "":
			a.list.SetMessage(msg.Message, false)
		}
		if msg.Changed {
			return a, a.list.Reload()
		}
		return a, nil

	case views.SwitchToColumnsMsg:
		a.columns.Open(msg.Kind, a.list.List())
		a.state = ViewColumns
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToListMsg:
		a.state = ViewList
		// column changes alter the table layout
		a.list.Refresh()
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.remove.Update(msg)
	case ViewColumns:
		_, cmd = a.columns.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// showModal switches to the dialog matching the list's modal state
func (a *App) showModal(kind domain.EntityKind) tea.Cmd {
	list := a.list.List()
	st := list.ModalState()

	switch st.Kind {
	case liststate.ModalCreating:
		a.form.Open(kind, nil)
		a.state = ViewForm
		return a.form.Init()

	case liststate.ModalEditing:
		a.form.Open(kind, *st.Item)
		a.state = ViewForm
		return a.form.Init()

	case liststate.ModalDeleting:
		r := *st.Item
		a.remove.Open(kind, []string{r.RecordID()}, []string{recordLabel(r)})
		a.state = ViewDelete

	case liststate.ModalBulkAction:
		var ids, labels []string
		for _, r := range a.list.SelectedRecords() {
			ids = append(ids, r.RecordID())
			labels = append(labels, recordLabel(r))
		}
		a.remove.Open(kind, ids, labels)
		a.state = ViewDelete

	default:
		a.state = ViewList
	}
	return nil
}

func recordLabel(r domain.Record) string {
	if name := r.Field("name"); name != "" {
		return name + " (" + r.RecordID() + ")"
	}
	return r.RecordID()
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewDelete:
		return a.remove.View()
	case ViewColumns:
		return a.columns.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.list.View()
	}
}
