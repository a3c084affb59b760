package liststate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel/internal/adapters/memory"
	"kennel/internal/application"
	"kennel/internal/domain"
	"kennel/internal/logging"
)

func cols(ids ...string) []domain.Column {
	out := make([]domain.Column, len(ids))
	for i, id := range ids {
		out[i] = domain.Column{ID: id, Title: id}
	}
	return out
}

func newColumns(t *testing.T, all []domain.Column, store *memory.PreferenceStore) *Columns {
	t.Helper()
	c, err := NewColumns(context.Background(), all, "pets", store, WithLogger(logging.Discard()))
	require.NoError(t, err)
	return c
}

func seed(t *testing.T, store *memory.PreferenceStore, key, value string) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), key, value))
}

func TestColumns_DefaultsWithoutPreferences(t *testing.T) {
	c := newColumns(t, cols("name", "breed", "actions"), memory.NewPreferenceStore())

	assert.Equal(t, []string{"name", "breed", "actions"}, c.VisibleColumns())
	assert.Equal(t, []string{"name", "breed", "actions"}, c.ColumnOrder())
}

func TestColumns_VisibleReconciliationAppendsNewColumns(t *testing.T) {
	store := memory.NewPreferenceStore()
	seed(t, store, "pets-visible-columns", `["a","b"]`)

	c := newColumns(t, cols("a", "b", "c"), store)

	assert.Equal(t, []string{"a", "b", "c"}, c.VisibleColumns())
}

func TestColumns_OrderReconciliationInsertsBeforeActions(t *testing.T) {
	store := memory.NewPreferenceStore()
	seed(t, store, "pets-column-order", `["a","actions"]`)

	c := newColumns(t, cols("a", "b", "actions"), store)

	assert.Equal(t, []string{"a", "b", "actions"}, c.ColumnOrder())
}

func TestColumns_OrderReconciliationKeepsRelativeOrderOfNewColumns(t *testing.T) {
	store := memory.NewPreferenceStore()
	seed(t, store, "pets-column-order", `["actions","a"]`)

	c := newColumns(t, cols("a", "b", "c", "actions"), store)

	assert.Equal(t, []string{"b", "c", "actions", "a"}, c.ColumnOrder())
}

func TestColumns_OrderReconciliationAppendsWithoutActions(t *testing.T) {
	store := memory.NewPreferenceStore()
	seed(t, store, "pets-column-order", `["b","a"]`)

	c := newColumns(t, cols("a", "b", "c"), store)

	assert.Equal(t, []string{"b", "a", "c"}, c.ColumnOrder())
}

func TestColumns_HiddenColumnStaysHiddenAfterReload(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPreferenceStore()
	c := newColumns(t, cols("name", "breed", "actions"), store)

	require.NoError(t, c.ToggleColumn(ctx, "breed"))

	reloaded := newColumns(t, cols("name", "breed", "status", "actions"), store)
	assert.False(t, reloaded.IsColumnVisible("breed"))
	assert.True(t, reloaded.IsColumnVisible("status"), "column added since the last save is shown")
	assert.Equal(t, []string{"name", "breed", "status", "actions"}, reloaded.ColumnOrder())
}

func TestColumns_OrderedColumns(t *testing.T) {
	store := memory.NewPreferenceStore()
	seed(t, store, "pets-column-order", `["c","a","b"]`)
	seed(t, store, "pets-visible-columns", `["a","b"]`)

	c := newColumns(t, cols("a", "b", "c"), store)

	got := c.OrderedColumns()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestColumns_OrderedColumnsSkipsUnknownIDs(t *testing.T) {
	store := memory.NewPreferenceStore()
	seed(t, store, "pets-column-order", `["gone","a"]`)
	seed(t, store, "pets-visible-columns", `["gone","a"]`)

	c := newColumns(t, cols("a"), store)

	assert.Equal(t, []domain.Column{{ID: "a", Title: "a"}}, c.OrderedColumns())
}

func TestColumns_ToggleColumnPersists(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPreferenceStore()
	c := newColumns(t, cols("name", "breed", "actions"), store)

	require.NoError(t, c.ToggleColumn(ctx, "breed"))
	assert.Equal(t, []string{"name", "actions"}, c.VisibleColumns())

	raw, ok, err := store.Get(ctx, "pets-visible-columns")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["name","actions"]`, raw)

	require.NoError(t, c.ToggleColumn(ctx, "breed"))
	assert.Equal(t, []string{"name", "actions", "breed"}, c.VisibleColumns())
	assert.Equal(t, []string{"name", "breed", "actions"}, domain.ColumnIDs(c.OrderedColumns()))
}

func TestColumns_MoveColumn(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 2, 0, []string{"c", "a", "b", "d"}},
		{"same place", 1, 1, []string{"a", "b", "c", "d"}},
		{"past the end appends", 0, 10, []string{"b", "c", "d", "a"}},
		{"negative counts from the end", 0, -1, []string{"b", "c", "a", "d"}},
		{"very negative goes first", 3, -10, []string{"d", "a", "b", "c"}},
		{"from out of range is a no-op", 7, 0, []string{"a", "b", "c", "d"}},
		{"negative from is a no-op", -1, 0, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newColumns(t, cols("a", "b", "c", "d"), memory.NewPreferenceStore())

			require.NoError(t, c.MoveColumn(context.Background(), tt.from, tt.to))
			assert.Equal(t, tt.want, c.ColumnOrder())
		})
	}
}

func TestColumns_MoveColumnPersists(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPreferenceStore()
	c := newColumns(t, cols("a", "b", "c"), store)

	require.NoError(t, c.MoveColumn(ctx, 2, 0))

	raw, ok, err := store.Get(ctx, "pets-column-order")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["c","a","b"]`, raw)
}

func TestColumns_ResetColumnsErasesPersistence(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPreferenceStore()
	c := newColumns(t, cols("a", "b", "c"), store)
	require.NoError(t, c.ToggleColumn(ctx, "b"))
	require.NoError(t, c.MoveColumn(ctx, 2, 0))

	require.NoError(t, c.ResetColumns(ctx))

	assert.Equal(t, []string{"a", "b", "c"}, c.VisibleColumns())
	assert.Equal(t, []string{"a", "b", "c"}, c.ColumnOrder())
	assert.Zero(t, store.Len())

	fresh := newColumns(t, cols("a", "b", "c"), store)
	assert.Equal(t, []string{"a", "b", "c"}, fresh.VisibleColumns())
	assert.Equal(t, []string{"a", "b", "c"}, fresh.ColumnOrder())
}

func TestColumns_MalformedPreferencesFallBackToDefaults(t *testing.T) {
	store := memory.NewPreferenceStore()
	seed(t, store, "pets-visible-columns", `not json`)
	seed(t, store, "pets-column-order", `{"a":1}`)

	c := newColumns(t, cols("a", "b"), store)

	assert.Equal(t, []string{"a", "b"}, c.VisibleColumns())
	assert.Equal(t, []string{"a", "b"}, c.ColumnOrder())
}

func TestColumns_WithoutStoreKeepsStateInMemory(t *testing.T) {
	ctx := context.Background()
	c, err := NewColumns(ctx, cols("a", "b"), "", nil)
	require.NoError(t, err)

	require.NoError(t, c.ToggleColumn(ctx, "a"))
	require.NoError(t, c.MoveColumn(ctx, 1, 0))
	require.NoError(t, c.ResetColumns(ctx))
	assert.Equal(t, []string{"a", "b"}, c.VisibleColumns())
}

type failingStore struct {
	getErr, setErr, removeErr error
}

func (s failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, s.getErr
}

func (s failingStore) Set(context.Context, string, string) error { return s.setErr }

func (s failingStore) Remove(context.Context, string) error { return s.removeErr }

func TestColumns_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("load", func(t *testing.T) {
		_, err := NewColumns(ctx, cols("a"), "pets", failingStore{getErr: boom})
		var prefErr *application.PreferenceError
		require.ErrorAs(t, err, &prefErr)
		assert.Equal(t, "load", prefErr.Op)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("save keeps in-memory state", func(t *testing.T) {
		c, err := NewColumns(ctx, cols("a", "b"), "pets", failingStore{setErr: boom})
		require.NoError(t, err)

		err = c.ToggleColumn(ctx, "a")
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"b"}, c.VisibleColumns())
	})

	t.Run("remove", func(t *testing.T) {
		c, err := NewColumns(ctx, cols("a"), "pets", failingStore{removeErr: boom})
		require.NoError(t, err)

		err = c.ResetColumns(ctx)
		assert.ErrorIs(t, err, boom)
	})
}
