// Package fixtures loads seed data for the kennel database from YAML files.
package fixtures

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"kennel/internal/domain"
)

type file struct {
	Owners   []ownerDoc   `yaml:"owners"`
	Pets     []petDoc     `yaml:"pets"`
	Bookings []bookingDoc `yaml:"bookings"`
}

type ownerDoc struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Status  string `yaml:"status"`
	Created string `yaml:"created"`
}

type petDoc struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Species string `yaml:"species"`
	Breed   string `yaml:"breed"`
	Owner   string `yaml:"owner"` // owner id or name
	Status  string `yaml:"status"`
	Created string `yaml:"created"`
}

type bookingDoc struct {
	ID       string `yaml:"id"`
	Pet      string `yaml:"pet"` // pet id or name
	Kennel   string `yaml:"kennel"`
	CheckIn  string `yaml:"check_in"`
	CheckOut string `yaml:"check_out"`
	Status   string `yaml:"status"`
}

// Load reads and parses the seed file at path
func Load(path string, now time.Time) (*domain.Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	f, err := Parse(data, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes seed YAML. Records without an id get a random UUID, records
// without a status are active (bookings: pending) and records without a
// creation date are stamped with now. Pets may name their owner and bookings
// their pet either by id or by name.
func Parse(data []byte, now time.Time) (*domain.Fixture, error) {
	var doc file
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	out := &domain.Fixture{}
	ownerRefs := make(map[string]string)
	for i, d := range doc.Owners {
		o, err := d.toDomain(now)
		if err != nil {
			return nil, fmt.Errorf("owners[%d]: %w", i, err)
		}
		ownerRefs[o.ID] = o.ID
		ownerRefs[strings.ToLower(o.Name)] = o.ID
		out.Owners = append(out.Owners, o)
	}

	petRefs := make(map[string]string)
	for i, d := range doc.Pets {
		p, err := d.toDomain(now, ownerRefs)
		if err != nil {
			return nil, fmt.Errorf("pets[%d]: %w", i, err)
		}
		petRefs[p.ID] = p.ID
		petRefs[strings.ToLower(p.Name)] = p.ID
		out.Pets = append(out.Pets, p)
	}

	for i, d := range doc.Bookings {
		b, err := d.toDomain(petRefs)
		if err != nil {
			return nil, fmt.Errorf("bookings[%d]: %w", i, err)
		}
		out.Bookings = append(out.Bookings, b)
	}
	return out, nil
}

func (d ownerDoc) toDomain(now time.Time) (domain.Owner, error) {
	if strings.TrimSpace(d.Name) == "" {
		return domain.Owner{}, fmt.Errorf("name is required")
	}
	created, err := parseDate(d.Created, now)
	if err != nil {
		return domain.Owner{}, fmt.Errorf("created: %w", err)
	}
	status, err := entityStatus(d.Status)
	if err != nil {
		return domain.Owner{}, err
	}
	return domain.Owner{
		ID:        idOrNew(d.ID),
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Status:    status,
		CreatedAt: created,
	}, nil
}

func (d petDoc) toDomain(now time.Time, owners map[string]string) (domain.Pet, error) {
	if strings.TrimSpace(d.Name) == "" {
		return domain.Pet{}, fmt.Errorf("name is required")
	}
	created, err := parseDate(d.Created, now)
	if err != nil {
		return domain.Pet{}, fmt.Errorf("created: %w", err)
	}
	status, err := entityStatus(d.Status)
	if err != nil {
		return domain.Pet{}, err
	}
	p := domain.Pet{
		ID:        idOrNew(d.ID),
		Name:      d.Name,
		Species:   d.Species,
		Breed:     d.Breed,
		Status:    status,
		CreatedAt: created,
	}
	if d.Owner != "" {
		id, ok := resolve(owners, d.Owner)
		if !ok {
			return domain.Pet{}, fmt.Errorf("unknown owner %q", d.Owner)
		}
		p.OwnerID = id
	}
	return p, nil
}

func (d bookingDoc) toDomain(pets map[string]string) (domain.Booking, error) {
	petID, ok := resolve(pets, d.Pet)
	if !ok {
		return domain.Booking{}, fmt.Errorf("unknown pet %q", d.Pet)
	}
	checkIn, err := parseDate(d.CheckIn, time.Time{})
	if err != nil || checkIn.IsZero() {
		return domain.Booking{}, fmt.Errorf("check_in: a date is required")
	}
	checkOut, err := parseDate(d.CheckOut, time.Time{})
	if err != nil || checkOut.IsZero() {
		return domain.Booking{}, fmt.Errorf("check_out: a date is required")
	}
	b := domain.Booking{
		ID:       idOrNew(d.ID),
		PetID:    petID,
		Kennel:   d.Kennel,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   d.Status,
	}
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	if err := b.Validate(); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

func resolve(refs map[string]string, ref string) (string, bool) {
	if id, ok := refs[ref]; ok {
		return id, true
	}
	id, ok := refs[strings.ToLower(ref)]
	return id, ok
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func entityStatus(status string) (string, error) {
	switch status {
	case "":
		return domain.StatusActive, nil
	case domain.StatusActive, domain.StatusInactive:
		return status, nil
	default:
		return "", fmt.Errorf("unknown status %q", status)
	}
}

func parseDate(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC 3339, got %q", s)
	}
	return t, nil
}
