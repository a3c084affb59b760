package ports

import (
	"context"

	"kennel/internal/domain"
)

// EntityRepository defines the interface for boarding record storage
type EntityRepository interface {
	// List operations
	ListPets(ctx context.Context) ([]domain.Pet, error)
	ListOwners(ctx context.Context) ([]domain.Owner, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)

	// Write operations
	SavePet(ctx context.Context, pet *domain.Pet) error
	SaveOwner(ctx context.Context, owner *domain.Owner) error
	SaveBooking(ctx context.Context, booking *domain.Booking) error

	// Delete removes records of the given kind; unknown ids are ignored.
	// Returns the number of rows removed.
	Delete(ctx context.Context, kind domain.EntityKind, ids ...string) (int, error)
}
