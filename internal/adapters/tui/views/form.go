package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/application/commands"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// FormModel is the create/edit dialog of a record
type FormModel struct {
	ViewState
	ctx    context.Context
	repo   ports.EntityRepository
	kind   domain.EntityKind
	id     string // empty when creating
	fields []commands.FormField
	form   *InputForm
}

// NewFormModel creates a new form view model
func NewFormModel(ctx context.Context, repo ports.EntityRepository) *FormModel {
	return &FormModel{ctx: ctx, repo: repo}
}

// Open prepares the form for kind. A nil record opens it in create mode,
// otherwise the fields are prefilled from record.
func (m *FormModel) Open(kind domain.EntityKind, record domain.Record) {
	m.kind = kind
	m.id = ""
	m.fields = commands.FormFields(kind)
	m.ClearMessage()

	inputs := make([]InputField, len(m.fields))
	for i, f := range m.fields {
		inputs[i] = NewInputField(f.Label, f.Placeholder, 100)
	}
	m.form = NewInputForm(inputs...)

	if record != nil {
		m.id = record.RecordID()
		values := commands.FormValues(kind, record)
		for i, f := range m.fields {
			m.form.SetValue(i, values[f.Key])
		}
	}
}

// Editing reports whether the form edits an existing record
func (m *FormModel) Editing() bool {
	return m.id != ""
}

// Values returns the field values keyed by field
func (m *FormModel) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		values[f.Key] = m.form.Value(i)
	}
	return values
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case formErrMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return ModalDoneMsg{} }
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

type formErrMsg struct {
	err error
}

func (m *FormModel) submit() tea.Cmd {
	cmd := commands.NewSaveCommand(m.repo, m.kind, m.id, m.Values())
	return func() tea.Msg {
		res, err := cmd.Execute(m.ctx)
		if err != nil {
			// validation errors keep the form open
			return formErrMsg{err: err}
		}
		return ModalDoneMsg{Message: res.Message, Changed: true}
	}
}

// View renders the form view
func (m *FormModel) View() string {
	if m.form == nil {
		return ""
	}
	title := fmt.Sprintf("New %s", singular(m.kind))
	if m.Editing() {
		title = fmt.Sprintf("Edit %s", singular(m.kind))
	}

	vb := NewViewBuilder().Title(title)
	if m.Editing() {
		vb.Subtitle(m.id)
	}
	for i := range m.form.Fields {
		vb.Line(m.form.RenderField(i))
	}
	return vb.BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("save")).
		String()
}

func singular(kind domain.EntityKind) string {
	s := kind.String()
	if len(s) > 1 && s[len(s)-1] == 's' {
		return s[:len(s)-1]
	}
	return s
}
