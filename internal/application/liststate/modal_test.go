package liststate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pet struct {
	ID   string
	Name string
}

func TestModal_OpenCreate(t *testing.T) {
	m := NewModal[pet]()
	m.OpenEditModal(pet{ID: "p1"})

	m.OpenCreateModal()

	assert.True(t, m.FormModalOpen())
	assert.Nil(t, m.SelectedItem(), "create mode has no item")
	assert.Equal(t, ModalCreating, m.ModalState().Kind)
}

func TestModal_OpenEdit(t *testing.T) {
	m := NewModal[pet]()

	m.OpenEditModal(pet{ID: "p1", Name: "Max"})

	assert.True(t, m.FormModalOpen())
	assert.False(t, m.DeleteModalOpen())
	require.NotNil(t, m.SelectedItem())
	assert.Equal(t, "Max", m.SelectedItem().Name)
}

func TestModal_OpeningOneClosesTheOther(t *testing.T) {
	m := NewModal[pet]()
	m.OpenEditModal(pet{ID: "p1"})

	m.OpenDeleteModal(pet{ID: "p2"})

	assert.True(t, m.DeleteModalOpen())
	assert.False(t, m.FormModalOpen())
	assert.Equal(t, "p2", m.SelectedItem().ID)
}

func TestModal_BulkAction(t *testing.T) {
	m := NewModal[pet]()

	m.OpenBulkActionModal("delete")

	assert.Equal(t, "delete", m.BulkActionModal())
	assert.Equal(t, ModalBulkAction, m.ModalState().Kind)
	assert.False(t, m.FormModalOpen())
	assert.Nil(t, m.SelectedItem())
}

func TestModal_CloseModals(t *testing.T) {
	m := NewModal[pet]()
	m.OpenDeleteModal(pet{ID: "p1"})

	m.CloseModals()

	assert.Equal(t, ModalState[pet]{}, m.ModalState())
	assert.Equal(t, "closed", m.ModalState().Kind.String())
	assert.False(t, m.FormModalOpen())
	assert.False(t, m.DeleteModalOpen())
	assert.Nil(t, m.SelectedItem())
	assert.Empty(t, m.BulkActionModal())
}

func TestModal_ItemIsCopied(t *testing.T) {
	m := NewModal[pet]()
	item := pet{ID: "p1", Name: "Max"}

	m.OpenEditModal(item)
	item.Name = "Rex"

	assert.Equal(t, "Max", m.SelectedItem().Name)
}
