package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel/internal/domain"
)

func TestSeedCommand(t *testing.T) {
	repo := &fakeRepo{}
	fixture := &domain.Fixture{
		Owners: []domain.Owner{{ID: "o1", Name: "Jo", Status: domain.StatusActive}},
		Pets:   []domain.Pet{{ID: "p1", Name: "Max", OwnerID: "o1", Status: domain.StatusActive}},
		Bookings: []domain.Booking{{
			ID: "b1", PetID: "p1", Status: domain.BookingPending,
			CheckIn: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), CheckOut: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		}},
	}

	res, err := NewSeedCommand(repo, fixture).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Seeded 1 owners, 1 pets, 1 bookings", res.Message)
	assert.Len(t, repo.owners, 1)
	assert.Len(t, repo.pets, 1)
	assert.Len(t, repo.bookings, 1)
}

func TestSeedCommand_Errors(t *testing.T) {
	_, err := NewSeedCommand(&fakeRepo{}, &domain.Fixture{}).Execute(context.Background())
	assert.ErrorContains(t, err, "no records")

	_, err = NewSeedCommand(&fakeRepo{err: errors.New("read-only")}, &domain.Fixture{
		Pets: []domain.Pet{{ID: "p1", Name: "Max"}},
	}).Execute(context.Background())
	assert.ErrorContains(t, err, "failed to save pet Max")
}
