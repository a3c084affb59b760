package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCheckedIn = "checked-in"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking views beyond the status names
const (
	ViewUpcoming = "upcoming"
	ViewPast     = "past"
)

// BookingStatuses lists every valid booking status
var BookingStatuses = []string{
	BookingPending, BookingConfirmed, BookingCheckedIn, BookingCompleted, BookingCancelled,
}

// Booking represents a stay of a pet in a kennel run
type Booking struct {
	ID       string
	PetID    string
	PetName  string // resolved by the repository, not stored
	Kennel   string // e.g., "A3"
	CheckIn  time.Time
	CheckOut time.Time
	Status   string
}

// Ensure Booking implements Record
var _ Record = Booking{}

// Nights returns the number of nights of the stay
func (b Booking) Nights() int {
	if b.CheckOut.Before(b.CheckIn) {
		return 0
	}
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Validate checks the booking dates and status
func (b Booking) Validate() error {
	if b.CheckOut.Before(b.CheckIn) {
		return fmt.Errorf("check-out %s is before check-in %s", formatDate(b.CheckOut), formatDate(b.CheckIn))
	}
	if !IsBookingStatus(b.Status) {
		return fmt.Errorf("unknown booking status %q", b.Status)
	}
	return nil
}

// IsBookingStatus reports whether s is a valid booking status
func IsBookingStatus(s string) bool {
	for _, st := range BookingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (b Booking) RecordID() string { return b.ID }

func (b Booking) Field(name string) string {
	switch name {
	case "id":
		return b.ID
	case "name", "pet":
		return b.PetName
	case "pet_id":
		return b.PetID
	case "kennel":
		return b.Kennel
	case "check_in":
		return formatDate(b.CheckIn)
	case "check_out":
		return formatDate(b.CheckOut)
	case "nights":
		return strconv.Itoa(b.Nights())
	case "status":
		return b.Status
	}
	return ""
}

// InView matches status views plus the date-based upcoming and past views
func (b Booking) InView(view string) bool {
	return b.inViewAt(view, time.Now())
}

func (b Booking) inViewAt(view string, now time.Time) bool {
	switch view {
	case "", ViewAll:
		return true
	case ViewUpcoming:
		return b.CheckIn.After(now) && b.Status != BookingCancelled
	case ViewPast:
		return b.CheckOut.Before(now)
	default:
		return b.Status == view
	}
}

// Timestamp returns the time behind a date column
func (b Booking) Timestamp(name string) (time.Time, bool) {
	switch name {
	case "check_in":
		return b.CheckIn, !b.CheckIn.IsZero()
	case "check_out":
		return b.CheckOut, !b.CheckOut.IsZero()
	}
	return time.Time{}, false
}
