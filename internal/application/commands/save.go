package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kennel/internal/application"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// FormField describes one input of the create/edit form of a kind
type FormField struct {
	Key         string
	Label       string
	Placeholder string
}

// FormFields returns the form inputs of kind
func FormFields(kind domain.EntityKind) []FormField {
	switch kind {
	case domain.KindPets:
		return []FormField{
			{Key: "name", Label: "Name", Placeholder: "Max"},
			{Key: "species", Label: "Species", Placeholder: "dog"},
			{Key: "breed", Label: "Breed", Placeholder: "Collie"},
			{Key: "owner_id", Label: "Owner ID", Placeholder: "optional"},
			{Key: "status", Label: "Status", Placeholder: domain.StatusActive},
		}
	case domain.KindOwners:
		return []FormField{
			{Key: "name", Label: "Name", Placeholder: "Jo Smith"},
			{Key: "email", Label: "Email", Placeholder: "jo@example.com"},
			{Key: "phone", Label: "Phone", Placeholder: "optional"},
			{Key: "status", Label: "Status", Placeholder: domain.StatusActive},
		}
	case domain.KindBookings:
		return []FormField{
			{Key: "pet_id", Label: "Pet ID", Placeholder: "id of the pet"},
			{Key: "kennel", Label: "Kennel", Placeholder: "A3"},
			{Key: "check_in", Label: "Check-in", Placeholder: "YYYY-MM-DD"},
			{Key: "check_out", Label: "Check-out", Placeholder: "YYYY-MM-DD"},
			{Key: "status", Label: "Status", Placeholder: domain.BookingPending},
		}
	}
	return nil
}

// FormValues returns the current values of r for the form of kind
func FormValues(kind domain.EntityKind, r domain.Record) map[string]string {
	values := make(map[string]string)
	for _, f := range FormFields(kind) {
		values[f.Key] = r.Field(f.Key)
	}
	return values
}

// SaveResult contains the result of a save operation
type SaveResult struct {
	ID      string
	Created bool
	Message string
}

// SaveCommand creates a record, or updates it when ID is set
type SaveCommand struct {
	repo   ports.EntityRepository
	Kind   domain.EntityKind
	ID     string
	Values map[string]string
	Now    func() time.Time
}

// NewSaveCommand creates a new SaveCommand. An empty id creates a record.
func NewSaveCommand(repo ports.EntityRepository, kind domain.EntityKind, id string, values map[string]string) *SaveCommand {
	return &SaveCommand{
		repo:   repo,
		Kind:   kind,
		ID:     id,
		Values: values,
		Now:    time.Now,
	}
}

func (c *SaveCommand) value(key string) string {
	return strings.TrimSpace(c.Values[key])
}

// Execute runs the save command
func (c *SaveCommand) Execute(ctx context.Context) (*SaveResult, error) {
	created := c.ID == ""
	id := c.ID
	if created {
		id = uuid.NewString()
	} else if err := c.ensureExists(ctx); err != nil {
		return nil, err
	}

	var (
		label string
		err   error
	)
	switch c.Kind {
	case domain.KindPets:
		label, err = c.savePet(ctx, id)
	case domain.KindOwners:
		label, err = c.saveOwner(ctx, id)
	case domain.KindBookings:
		label, err = c.saveBooking(ctx, id)
	default:
		return nil, &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown kind %q", c.Kind)}
	}
	if err != nil {
		return nil, err
	}

	verb := "Updated"
	if created {
		verb = "Created"
	}
	return &SaveResult{ID: id, Created: created, Message: fmt.Sprintf("%s %s", verb, label)}, nil
}

func (c *SaveCommand) ensureExists(ctx context.Context) error {
	records, err := LoadRecords(ctx, c.repo, c.Kind)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.RecordID() == c.ID {
			return nil
		}
	}
	return fmt.Errorf("%w: no %s with id %q", application.ErrNotFound, c.Kind, c.ID)
}

func (c *SaveCommand) status(fallback string, allowed ...string) (string, error) {
	status := c.value("status")
	if status == "" {
		return fallback, nil
	}
	if err := application.ValidateStatus("status", status, allowed...); err != nil {
		return "", err
	}
	return status, nil
}

func (c *SaveCommand) savePet(ctx context.Context, id string) (string, error) {
	if err := application.ValidateRequired("name", c.value("name")); err != nil {
		return "", err
	}
	status, err := c.status(domain.StatusActive, domain.StatusActive, domain.StatusInactive)
	if err != nil {
		return "", err
	}
	p := &domain.Pet{
		ID:        id,
		Name:      c.value("name"),
		Species:   c.value("species"),
		Breed:     c.value("breed"),
		OwnerID:   c.value("owner_id"),
		Status:    status,
		CreatedAt: c.Now().UTC(),
	}
	if err := c.repo.SavePet(ctx, p); err != nil {
		return "", fmt.Errorf("failed to save pet: %w", err)
	}
	return p.Name, nil
}

func (c *SaveCommand) saveOwner(ctx context.Context, id string) (string, error) {
	if err := application.ValidateRequired("name", c.value("name")); err != nil {
		return "", err
	}
	if err := application.ValidateEmail("email", c.value("email")); err != nil {
		return "", err
	}
	status, err := c.status(domain.StatusActive, domain.StatusActive, domain.StatusInactive)
	if err != nil {
		return "", err
	}
	o := &domain.Owner{
		ID:        id,
		Name:      c.value("name"),
		Email:     c.value("email"),
		Phone:     c.value("phone"),
		Status:    status,
		CreatedAt: c.Now().UTC(),
	}
	if err := c.repo.SaveOwner(ctx, o); err != nil {
		return "", fmt.Errorf("failed to save owner: %w", err)
	}
	return o.Name, nil
}

func (c *SaveCommand) saveBooking(ctx context.Context, id string) (string, error) {
	if err := application.ValidateRequired("petID", c.value("pet_id")); err != nil {
		return "", err
	}
	checkIn, err := parseFormDate("check_in", c.value("check_in"))
	if err != nil {
		return "", err
	}
	checkOut, err := parseFormDate("check_out", c.value("check_out"))
	if err != nil {
		return "", err
	}
	status, err := c.status(domain.BookingPending, domain.BookingStatuses...)
	if err != nil {
		return "", err
	}
	b := &domain.Booking{
		ID:       id,
		PetID:    c.value("pet_id"),
		Kennel:   c.value("kennel"),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}
	if err := b.Validate(); err != nil {
		return "", &application.ValidationError{Field: "check_out", Message: err.Error()}
	}
	if err := c.repo.SaveBooking(ctx, b); err != nil {
		return "", fmt.Errorf("failed to save booking: %w", err)
	}
	return "booking " + b.Kennel, nil
}

func parseFormDate(field, value string) (time.Time, error) {
	if err := application.ValidateRequired(field, value); err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, &application.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("expected YYYY-MM-DD, got %q", value),
		}
	}
	return t, nil
}
