package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel/internal/application"
	"kennel/internal/domain"
)

func TestSaveCommand_CreateAndUpdatePet(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	now := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	cmd := NewSaveCommand(repo, domain.KindPets, "", map[string]string{"name": "  Max ", "species": "dog"})
	cmd.Now = func() time.Time { return now }
	res, err := cmd.Execute(ctx)
	require.NoError(t, err)

	assert.True(t, res.Created)
	assert.Equal(t, "Created Max", res.Message)
	_, err = uuid.Parse(res.ID)
	assert.NoError(t, err)
	require.Len(t, repo.pets, 1)
	assert.Equal(t, domain.StatusActive, repo.pets[0].Status)
	assert.Equal(t, now, repo.pets[0].CreatedAt)

	values := FormValues(domain.KindPets, repo.pets[0])
	assert.Equal(t, "Max", values["name"])
	values["status"] = domain.StatusInactive

	res, err = NewSaveCommand(repo, domain.KindPets, res.ID, values).Execute(ctx)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "Updated Max", res.Message)
	require.Len(t, repo.pets, 1)
	assert.Equal(t, domain.StatusInactive, repo.pets[0].Status)
	assert.Equal(t, now, repo.pets[0].CreatedAt)
}

func TestSaveCommand_Validation(t *testing.T) {
	tests := []struct {
		name   string
		kind   domain.EntityKind
		values map[string]string
		errMsg string
	}{
		{"pet without name", domain.KindPets, map[string]string{"name": " "}, "name is required"},
		{"pet bad status", domain.KindPets, map[string]string{"name": "Max", "status": "lost"}, "must be one of active, inactive"},
		{"owner bad email", domain.KindOwners, map[string]string{"name": "Jo", "email": "nope"}, "invalid email"},
		{"booking without pet", domain.KindBookings, map[string]string{}, "pet ID is required"},
		{"booking bad date", domain.KindBookings, map[string]string{"pet_id": "p1", "check_in": "01/02/2025"}, "expected YYYY-MM-DD"},
		{"booking missing check-out", domain.KindBookings, map[string]string{"pet_id": "p1", "check_in": "2025-01-02"}, "check out is required"},
		{"booking reversed", domain.KindBookings, map[string]string{"pet_id": "p1", "check_in": "2025-01-05", "check_out": "2025-01-02"}, "before check-in"},
		{"unknown kind", "cats", map[string]string{}, "unknown kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSaveCommand(&fakeRepo{}, tt.kind, "", tt.values).Execute(context.Background())
			require.Error(t, err)
			if !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestSaveCommand_UnknownID(t *testing.T) {
	repo := &fakeRepo{pets: []domain.Pet{{ID: "p1", Name: "Max"}}}

	_, err := NewSaveCommand(repo, domain.KindPets, "p2", map[string]string{"name": "Rex"}).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)
	assert.Len(t, repo.pets, 1)

	_, err = NewSaveCommand(repo, "cats", "p1", map[string]string{}).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrInvalidEntity)
}

func TestSaveCommand_Booking(t *testing.T) {
	repo := &fakeRepo{}
	res, err := NewSaveCommand(repo, domain.KindBookings, "", map[string]string{
		"pet_id":    "p1",
		"kennel":    "B2",
		"check_in":  "2025-07-01",
		"check_out": "2025-07-08",
	}).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Created booking B2", res.Message)
	require.Len(t, repo.bookings, 1)
	assert.Equal(t, domain.BookingPending, repo.bookings[0].Status)
	assert.Equal(t, 7, repo.bookings[0].Nights())
}

func TestFormFields(t *testing.T) {
	for _, kind := range domain.AllKinds {
		fields := FormFields(kind)
		require.NotEmpty(t, fields, kind)
		for _, f := range fields {
			assert.NotEmpty(t, f.Label)
		}
	}
	assert.Nil(t, FormFields("cats"))
}
