package domain

import (
	"fmt"
	"strings"
)

// EntityKind identifies one of the list views of the boarding app
type EntityKind string

const (
	KindPets     EntityKind = "pets"
	KindOwners   EntityKind = "owners"
	KindBookings EntityKind = "bookings"
)

// AllKinds lists the entity kinds in tab order
var AllKinds = []EntityKind{KindPets, KindOwners, KindBookings}

// ViewAll is the named view that matches every record
const ViewAll = "all"

// ParseEntityKind resolves a kind from user input, accepting singular forms
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pets", "pet":
		return KindPets, nil
	case "owners", "owner":
		return KindOwners, nil
	case "bookings", "booking":
		return KindBookings, nil
	default:
		return "", fmt.Errorf("unknown entity kind %q (expected pets, owners or bookings)", s)
	}
}

func (k EntityKind) String() string {
	return string(k)
}

// Title returns the display title of the kind (e.g., "Pets")
func (k EntityKind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// StorageKey returns the preference namespace of the kind's list view
func (k EntityKind) StorageKey() string {
	return string(k)
}

// Columns returns the canonical column list of the kind
func (k EntityKind) Columns() []Column {
	switch k {
	case KindPets:
		return PetColumns
	case KindOwners:
		return OwnerColumns
	case KindBookings:
		return BookingColumns
	default:
		return nil
	}
}

// Views returns the named views offered for the kind, starting with ViewAll
func (k EntityKind) Views() []string {
	switch k {
	case KindPets, KindOwners:
		return []string{ViewAll, StatusActive, StatusInactive}
	case KindBookings:
		return []string{ViewAll, ViewUpcoming, BookingCheckedIn, ViewPast}
	default:
		return []string{ViewAll}
	}
}

// Record is a row of an entity list view
type Record interface {
	// RecordID returns the unique identifier of the record
	RecordID() string

	// Field returns the display value of a column. Unknown columns yield "".
	Field(name string) string

	// InView reports whether the record belongs to the named view
	InView(view string) bool
}
