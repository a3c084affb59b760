package views

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/adapters/editor"
	"kennel/internal/application/commands"
	"kennel/internal/domain"
)

type editorDoneMsg struct {
	kind domain.EntityKind
	id   string
	path string
	err  error
}

// openEditor writes r to a temporary YAML file and suspends the program
// while the user's editor runs on it
func (m *ListModel) openEditor(r domain.Record) tea.Cmd {
	if m.editor == nil {
		m.SetMessage("No editor configured", true)
		return nil
	}

	kind := m.Kind()
	fields := commands.FormFields(kind)
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}

	path, err := editor.WriteRecord("", fmt.Sprintf("%s %s", kind, r.RecordID()), keys, commands.FormValues(kind, r))
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	cmd, err := m.editor.Command(path)
	if err != nil {
		os.Remove(path)
		m.SetMessage(err.Error(), true)
		return nil
	}

	id := r.RecordID()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorDoneMsg{kind: kind, id: id, path: path, err: err}
	})
}

// applyEdit saves the values the user left in the editor file
func (m *ListModel) applyEdit(msg editorDoneMsg) tea.Cmd {
	defer os.Remove(msg.path)

	if msg.err != nil {
		m.SetMessage(fmt.Sprintf("Editor failed: %v", msg.err), true)
		return nil
	}
	values, err := editor.ReadRecord(msg.path)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	if values == nil {
		m.SetMessage("Edit cancelled", false)
		return nil
	}

	res, err := commands.NewSaveCommand(m.repo, msg.kind, msg.id, values).Execute(m.ctx)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return func() tea.Msg { return ModalDoneMsg{Message: res.Message, Changed: true} }
}
