package domain

import (
	"time"
)

// Record statuses shared by pets and owners
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Pet represents an animal registered with the kennel
type Pet struct {
	ID        string
	Name      string // e.g., "Max"
	Species   string // e.g., "dog"
	Breed     string // e.g., "Border Collie"
	OwnerID   string
	OwnerName string // resolved by the repository, not stored
	Status    string
	CreatedAt time.Time
}

// Ensure Pet implements Record
var _ Record = Pet{}

func (p Pet) RecordID() string { return p.ID }

func (p Pet) Field(name string) string {
	switch name {
	case "id":
		return p.ID
	case "name":
		return p.Name
	case "species":
		return p.Species
	case "breed":
		return p.Breed
	case "owner":
		return p.OwnerName
	case "owner_id":
		return p.OwnerID
	case "status":
		return p.Status
	case "created":
		return formatDate(p.CreatedAt)
	}
	return ""
}

func (p Pet) InView(view string) bool {
	return view == "" || view == ViewAll || view == p.Status
}

// Timestamp returns the time behind a date column
func (p Pet) Timestamp(name string) (time.Time, bool) {
	if name == "created" {
		return p.CreatedAt, !p.CreatedAt.IsZero()
	}
	return time.Time{}, false
}

// formatDate renders t as a sortable calendar date, empty for the zero time
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
