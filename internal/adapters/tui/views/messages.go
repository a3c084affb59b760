package views

import "kennel/internal/domain"

// ModalChangedMsg asks the app to show the overlay matching the modal state
// of the list of Kind
type ModalChangedMsg struct {
	Kind domain.EntityKind
}

// ModalDoneMsg ends a form or delete overlay. Changed reports that records
// were written and the list must be reloaded.
type ModalDoneMsg struct {
	Message string
	Err     error
	Changed bool
}

// SwitchToColumnsMsg opens the column picker of Kind
type SwitchToColumnsMsg struct {
	Kind domain.EntityKind
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToListMsg returns to the list view
type SwitchToListMsg struct{}

type recordsLoadedMsg struct {
	kind    domain.EntityKind
	records []domain.Record
	err     error
}
