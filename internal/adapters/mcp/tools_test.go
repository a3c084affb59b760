package mcp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel/internal/adapters/memory"
	"kennel/internal/adapters/sqlite"
	"kennel/internal/application/commands"
	"kennel/internal/domain"
	"kennel/internal/logging"
)

var added = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	repo     *sqlite.Repository
	prefs    *memory.PreferenceStore
	defaults commands.ListDefaults
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.OpenPath(filepath.Join(t.TempDir(), "kennel.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.SaveOwner(ctx, &domain.Owner{ID: "o1", Name: "Ada", Status: domain.StatusActive, CreatedAt: added}))
	for _, p := range []domain.Pet{
		{ID: "p1", Name: "Biscuit", Species: "dog", OwnerID: "o1", Status: domain.StatusActive, CreatedAt: added},
		{ID: "p2", Name: "Luna", Species: "cat", OwnerID: "o1", Status: domain.StatusActive, CreatedAt: added},
		{ID: "p3", Name: "Max", Species: "dog", OwnerID: "o1", Status: domain.StatusInactive, CreatedAt: added},
	} {
		require.NoError(t, repo.SavePet(ctx, &p))
	}

	return &fixture{
		repo:     repo,
		prefs:    memory.NewPreferenceStore(),
		defaults: commands.ListDefaults{PageSize: 2, SortKey: "name", Logger: logging.Discard()},
	}
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestListTool(t *testing.T) {
	f := newFixture(t)
	h := listHandler(f.repo, f.prefs, f.defaults, func() time.Time { return added.Add(72 * time.Hour) })

	out, isErr := call(t, h, map[string]any{"kind": "pets"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Biscuit")
	assert.Contains(t, out, "Luna")
	assert.NotContains(t, out, "Max")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "3 days ago")
	assert.Contains(t, out, "Page 1/2, 3 pets")

	out, _ = call(t, h, map[string]any{"kind": "pets", "page": float64(2)})
	assert.Contains(t, out, "Max")

	out, _ = call(t, h, map[string]any{"kind": "pets", "filters": map[string]any{"species": "dog"}, "desc": true})
	assert.Regexp(t, `(?s)Max.*Biscuit`, out)
	assert.NotContains(t, out, "Luna")

	out, _ = call(t, h, map[string]any{"kind": "pets", "view": "inactive"})
	assert.Contains(t, out, "Page 1/1, 1 pets")

	out, _ = call(t, h, map[string]any{"kind": "pets", "search": "zzz"})
	assert.Equal(t, "No pets\n", out)
}

func TestListTool_Errors(t *testing.T) {
	f := newFixture(t)
	h := listHandler(f.repo, f.prefs, f.defaults, time.Now)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"unknown kind", map[string]any{"kind": "cats"}},
		{"unknown view", map[string]any{"kind": "pets", "view": "upcoming"}},
		{"unknown sort column", map[string]any{"kind": "pets", "sort": "weight"}},
		{"unknown filter column", map[string]any{"kind": "pets", "filters": map[string]any{"weight": 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, isErr := call(t, h, tt.args)
			assert.True(t, isErr)
		})
	}
}

func TestColumnTools(t *testing.T) {
	f := newFixture(t)
	list := listHandler(f.repo, f.prefs, f.defaults, time.Now)

	out, isErr := call(t, toggleColumnHandler(f.prefs), map[string]any{"kind": "pets", "column": "species"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Column species hidden")

	out, _ = call(t, list, map[string]any{"kind": "pets"})
	assert.NotContains(t, out, "SPECIES")

	out, isErr = call(t, moveColumnHandler(f.prefs), map[string]any{"kind": "pets", "from": "status", "to": float64(0)})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Moved status to position 0")

	out, _ = call(t, columnsHandler(f.prefs), map[string]any{"kind": "pets"})
	assert.Regexp(t, `0\s+\[x\]\s+status`, out)
	assert.Regexp(t, `\[ \]\s+species`, out)

	out, _ = call(t, resetColumnsHandler(f.prefs), map[string]any{"kind": "pets"})
	assert.Contains(t, out, "Reset pets columns")
	assert.Regexp(t, `0\s+\[x\]\s+name`, out)

	_, isErr = call(t, toggleColumnHandler(f.prefs), map[string]any{"kind": "pets", "column": "weight"})
	assert.True(t, isErr)
	_, isErr = call(t, moveColumnHandler(f.prefs), map[string]any{"kind": "pets", "to": float64(1)})
	assert.True(t, isErr)
}

func TestSaveAndDeleteTools(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, isErr := call(t, saveHandler(f.repo), map[string]any{
		"kind":   "pets",
		"values": map[string]any{"name": "Pepper", "species": "dog", "owner_id": "o1"},
	})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Created Pepper")

	out, isErr = call(t, saveHandler(f.repo), map[string]any{
		"kind":   "pets",
		"id":     "p2",
		"values": map[string]any{"name": "Luna", "species": "cat", "owner_id": "o1", "status": "inactive"},
	})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Updated Luna")

	out, isErr = call(t, saveHandler(f.repo), map[string]any{
		"kind":   "pets",
		"id":     "p9",
		"values": map[string]any{"name": "Ghost"},
	})
	assert.True(t, isErr)
	assert.Contains(t, out, `no pets with id "p9"`)

	pets, err := f.repo.ListPets(ctx)
	require.NoError(t, err)
	assert.Len(t, pets, 4)

	out, isErr = call(t, deleteHandler(f.repo), map[string]any{"kind": "pets", "ids": []any{"p1", "p3"}})
	require.False(t, isErr, out)
	assert.Equal(t, "Deleted 2 pets", out)

	_, isErr = call(t, deleteHandler(f.repo), map[string]any{"kind": "pets", "ids": []any{}})
	assert.True(t, isErr)
	_, isErr = call(t, saveHandler(f.repo), map[string]any{"kind": "pets"})
	assert.True(t, isErr)
}
