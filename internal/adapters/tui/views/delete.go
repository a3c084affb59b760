package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/adapters/tui/styles"
	"kennel/internal/application/commands"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// DeleteModel is the delete confirmation for one record or a selection
type DeleteModel struct {
	ConfirmationModel
	ctx  context.Context
	repo ports.EntityRepository
	kind domain.EntityKind
	ids  []string
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(ctx context.Context, repo ports.EntityRepository) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		ctx:               ctx,
		repo:              repo,
	}
}

// Open targets records of kind. labels are shown to the user, one per record.
func (m *DeleteModel) Open(kind domain.EntityKind, ids, labels []string) {
	m.kind = kind
	m.ids = ids
	m.Targets = labels
	m.ClearMessage()
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doDelete() },
			func() tea.Msg { return ModalDoneMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	if len(m.ids) == 0 {
		return ModalDoneMsg{Err: fmt.Errorf("no target selected")}
	}

	res, err := commands.NewDeleteCommand(m.repo, m.kind, m.ids...).Execute(m.ctx)
	if err != nil {
		return ModalDoneMsg{Err: err}
	}
	return ModalDoneMsg{Message: res.Message, Changed: true}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Confirmation"))
	b.WriteString("\n\n")

	b.WriteString(styles.ErrorMsg.Render("This action cannot be undone!"))
	b.WriteString("\n\n")

	action := "Delete " + singular(m.kind)
	if len(m.ids) > 1 {
		action = fmt.Sprintf("Delete %d %s", len(m.ids), m.kind)
	}
	b.WriteString(RenderTargets(m.Targets, action))
	b.WriteString("\n\n")

	if m.kind == domain.KindPets {
		b.WriteString(styles.MutedText.Render("  Bookings of deleted pets are kept."))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderConfirmPrompt("Are you sure?"))

	return styles.App.Render(b.String())
}
