package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel/internal/adapters/memory"
	"kennel/internal/application"
	"kennel/internal/domain"
)

func visibleIDs(res *ColumnsResult) []string {
	var ids []string
	for _, c := range res.Columns {
		if c.Visible {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func orderIDs(res *ColumnsResult) []string {
	ids := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		ids[i] = c.ID
	}
	return ids
}

func TestColumnCommands(t *testing.T) {
	ctx := context.Background()
	prefs := memory.NewPreferenceStore()

	res, err := NewShowColumnsCommand(prefs, domain.KindOwners).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "email", "phone", "status", "created", "actions"}, orderIDs(res))
	assert.Equal(t, orderIDs(res), visibleIDs(res))

	res, err = NewToggleColumnCommand(prefs, domain.KindOwners, "phone").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Column phone hidden", res.Message)
	assert.NotContains(t, visibleIDs(res), "phone")

	res, err = NewMoveColumnCommand(prefs, domain.KindOwners, "email", 0).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"email", "name", "phone", "status", "created", "actions"}, orderIDs(res))
	assert.Equal(t, "Moved email to position 0", res.Message)

	res, err = NewMoveColumnCommand(prefs, domain.KindOwners, "0", 99).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "email", orderIDs(res)[5], "past the end appends")

	res, err = NewShowColumnsCommand(prefs, domain.KindOwners).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "phone", "status", "created", "actions", "email"}, orderIDs(res))
	assert.NotContains(t, visibleIDs(res), "phone")

	res, err = NewResetColumnsCommand(prefs, domain.KindOwners).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "email", "phone", "status", "created", "actions"}, orderIDs(res))
	assert.Equal(t, 0, prefs.Len())
}

func TestToggleColumnCommand_Validate(t *testing.T) {
	ctx := context.Background()

	_, err := NewToggleColumnCommand(nil, domain.KindPets, "").Execute(ctx)
	assert.ErrorContains(t, err, "column ID is required")

	_, err = NewToggleColumnCommand(nil, domain.KindBookings, "email").Execute(ctx)
	assert.ErrorIs(t, err, application.ErrInvalidColumn)
}

func TestColumnIndex(t *testing.T) {
	order := []string{"name", "email", "actions"}

	tests := []struct {
		ref     string
		want    int
		wantErr bool
	}{
		{ref: "1", want: 1},
		{ref: "actions", want: 2},
		{ref: "3", wantErr: true},
		{ref: "-1", wantErr: true},
		{ref: "phone", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ColumnIndex(domain.KindOwners, order, tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
