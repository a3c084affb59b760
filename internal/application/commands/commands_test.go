package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"kennel/internal/domain"
)

// fakeRepo is an in-memory ports.EntityRepository
type fakeRepo struct {
	pets     []domain.Pet
	owners   []domain.Owner
	bookings []domain.Booking
	err      error
}

func (r *fakeRepo) ListPets(ctx context.Context) ([]domain.Pet, error) {
	return slices.Clone(r.pets), r.err
}

func (r *fakeRepo) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	return slices.Clone(r.owners), r.err
}

func (r *fakeRepo) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return slices.Clone(r.bookings), r.err
}

func (r *fakeRepo) SavePet(ctx context.Context, p *domain.Pet) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.pets {
		if r.pets[i].ID == p.ID {
			p.CreatedAt = r.pets[i].CreatedAt
			r.pets[i] = *p
			return nil
		}
	}
	r.pets = append(r.pets, *p)
	return nil
}

func (r *fakeRepo) SaveOwner(ctx context.Context, o *domain.Owner) error {
	if r.err != nil {
		return r.err
	}
	r.owners = append(r.owners, *o)
	return nil
}

func (r *fakeRepo) SaveBooking(ctx context.Context, b *domain.Booking) error {
	if r.err != nil {
		return r.err
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, kind domain.EntityKind, ids ...string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if kind != domain.KindPets {
		return 0, errors.New("fake only deletes pets")
	}
	before := len(r.pets)
	r.pets = slices.DeleteFunc(r.pets, func(p domain.Pet) bool {
		return slices.Contains(ids, p.ID)
	})
	return before - len(r.pets), nil
}

var created = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// petFixture returns n pets named "Pet 01".."Pet n"; every tenth is
// inactive and every third a cat
func petFixture(n int) []domain.Pet {
	pets := make([]domain.Pet, n)
	for i := range n {
		species := "dog"
		if i%3 == 0 {
			species = "cat"
		}
		status := domain.StatusActive
		if i%10 == 9 {
			status = domain.StatusInactive
		}
		pets[i] = domain.Pet{
			ID:        fmt.Sprintf("p%02d", i+1),
			Name:      fmt.Sprintf("Pet %02d", i+1),
			Species:   species,
			Status:    status,
			CreatedAt: created.AddDate(0, 0, i),
		}
	}
	return pets
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
