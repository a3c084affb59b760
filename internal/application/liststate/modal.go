package liststate

// ModalKind is the dialog currently shown by a list view
type ModalKind int

const (
	ModalClosed ModalKind = iota
	ModalCreating
	ModalEditing
	ModalDeleting
	ModalBulkAction
)

func (k ModalKind) String() string {
	switch k {
	case ModalCreating:
		return "creating"
	case ModalEditing:
		return "editing"
	case ModalDeleting:
		return "deleting"
	case ModalBulkAction:
		return "bulk-action"
	default:
		return "closed"
	}
}

// ModalState is the open dialog and what it targets. Item is set only for
// ModalEditing and ModalDeleting, BulkAction only for ModalBulkAction.
type ModalState[T any] struct {
	Kind       ModalKind
	Item       *T
	BulkAction string
}

// Modal tracks which dialog of a list view is open.
// At most one dialog is open; opening one replaces the previous.
type Modal[T any] struct {
	state ModalState[T]
}

// NewModal creates a controller with every dialog closed
func NewModal[T any]() *Modal[T] {
	return &Modal[T]{}
}

// OpenCreateModal opens the form dialog in create mode
func (m *Modal[T]) OpenCreateModal() {
	m.state = ModalState[T]{Kind: ModalCreating}
}

// OpenEditModal opens the form dialog for item
func (m *Modal[T]) OpenEditModal(item T) {
	m.state = ModalState[T]{Kind: ModalEditing, Item: &item}
}

// OpenDeleteModal opens the delete confirmation for item
func (m *Modal[T]) OpenDeleteModal(item T) {
	m.state = ModalState[T]{Kind: ModalDeleting, Item: &item}
}

// OpenBulkActionModal opens the confirmation for a bulk action (e.g., "delete")
func (m *Modal[T]) OpenBulkActionModal(action string) {
	m.state = ModalState[T]{Kind: ModalBulkAction, BulkAction: action}
}

// CloseModals closes whatever dialog is open
func (m *Modal[T]) CloseModals() {
	m.state = ModalState[T]{}
}

// ModalState returns the open dialog
func (m *Modal[T]) ModalState() ModalState[T] {
	return m.state
}

// FormModalOpen reports whether the create/edit form is open
func (m *Modal[T]) FormModalOpen() bool {
	return m.state.Kind == ModalCreating || m.state.Kind == ModalEditing
}

// DeleteModalOpen reports whether the delete confirmation is open
func (m *Modal[T]) DeleteModalOpen() bool {
	return m.state.Kind == ModalDeleting
}

// SelectedItem returns the item targeted by the open dialog. It is nil when
// the form is open in create mode.
func (m *Modal[T]) SelectedItem() *T {
	return m.state.Item
}

// BulkActionModal returns the pending bulk action, empty when none
func (m *Modal[T]) BulkActionModal() string {
	return m.state.BulkAction
}
