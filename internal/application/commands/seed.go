package commands

import (
	"context"
	"fmt"

	"kennel/internal/application"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// SeedResult contains the result of a seed operation
type SeedResult struct {
	Owners   int
	Pets     int
	Bookings int
	Message  string
}

// SeedCommand inserts a fixture into the repository
type SeedCommand struct {
	repo    ports.EntityRepository
	Fixture *domain.Fixture
}

// NewSeedCommand creates a new SeedCommand
func NewSeedCommand(repo ports.EntityRepository, fixture *domain.Fixture) *SeedCommand {
	return &SeedCommand{repo: repo, Fixture: fixture}
}

// Validate checks that there is something to seed
func (c *SeedCommand) Validate() error {
	if c.Fixture == nil || c.Fixture.Count() == 0 {
		return &application.ValidationError{Field: "fixture", Message: "fixture has no records"}
	}
	return nil
}

// Execute runs the seed command. Records are saved owners first so pets and
// bookings can reference them; existing ids are updated in place.
func (c *SeedCommand) Execute(ctx context.Context) (*SeedResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	f := c.Fixture

	for i := range f.Owners {
		if err := c.repo.SaveOwner(ctx, &f.Owners[i]); err != nil {
			return nil, fmt.Errorf("failed to save owner %s: %w", f.Owners[i].Name, err)
		}
	}
	for i := range f.Pets {
		if err := c.repo.SavePet(ctx, &f.Pets[i]); err != nil {
			return nil, fmt.Errorf("failed to save pet %s: %w", f.Pets[i].Name, err)
		}
	}
	for i := range f.Bookings {
		if err := c.repo.SaveBooking(ctx, &f.Bookings[i]); err != nil {
			return nil, fmt.Errorf("failed to save booking %s: %w", f.Bookings[i].ID, err)
		}
	}

	return &SeedResult{
		Owners:   len(f.Owners),
		Pets:     len(f.Pets),
		Bookings: len(f.Bookings),
		Message:  fmt.Sprintf("Seeded %d owners, %d pets, %d bookings", len(f.Owners), len(f.Pets), len(f.Bookings)),
	}, nil
}
