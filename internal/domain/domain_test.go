package domain

import (
	"slices"
	"testing"
	"time"
)

func TestParseEntityKind(t *testing.T) {
	tests := []struct {
		input   string
		want    EntityKind
		wantErr bool
	}{
		{"pets", KindPets, false},
		{"Pet", KindPets, false},
		{" owners ", KindOwners, false},
		{"booking", KindBookings, false},
		{"cats", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEntityKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEntityKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEntityKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEntityKind_Columns(t *testing.T) {
	for _, kind := range AllKinds {
		cols := kind.Columns()
		if len(cols) == 0 {
			t.Fatalf("%s has no columns", kind)
		}
		if last := cols[len(cols)-1].ID; last != ActionsColumn {
			t.Errorf("%s last column = %q, want %q", kind, last, ActionsColumn)
		}
		ids := ColumnIDs(cols)
		slices.Sort(ids)
		if len(slices.Compact(ids)) != len(cols) {
			t.Errorf("%s has duplicate column ids", kind)
		}
		if views := kind.Views(); views[0] != ViewAll {
			t.Errorf("%s first view = %q, want %q", kind, views[0], ViewAll)
		}
	}

	if EntityKind("cats").Columns() != nil {
		t.Error("unknown kind should have no columns")
	}
	if got := KindPets.Title(); got != "Pets" {
		t.Errorf("Title() = %q, want %q", got, "Pets")
	}
}

func TestPet_Field(t *testing.T) {
	p := Pet{
		ID:        "p1",
		Name:      "Max",
		Species:   "dog",
		Breed:     "Border Collie",
		OwnerID:   "o1",
		OwnerName: "Jo",
		Status:    StatusActive,
		CreatedAt: time.Date(2025, 2, 3, 15, 4, 5, 0, time.UTC),
	}

	tests := map[string]string{
		"id":       "p1",
		"name":     "Max",
		"breed":    "Border Collie",
		"owner":    "Jo",
		"owner_id": "o1",
		"created":  "2025-02-03",
		"weight":   "",
	}
	for field, want := range tests {
		if got := p.Field(field); got != want {
			t.Errorf("Field(%q) = %q, want %q", field, got, want)
		}
	}

	if !p.InView(ViewAll) || !p.InView(StatusActive) || p.InView(StatusInactive) {
		t.Error("InView does not follow the status")
	}
	if _, ok := (Pet{}).Timestamp("created"); ok {
		t.Error("zero CreatedAt should not report a timestamp")
	}
}

func TestBooking_Nights(t *testing.T) {
	in := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		out  time.Time
		want int
	}{
		{"same day", in, 0},
		{"three nights", in.AddDate(0, 0, 3), 3},
		{"partial day", in.Add(36 * time.Hour), 1},
		{"inverted", in.AddDate(0, 0, -1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{CheckIn: in, CheckOut: tt.out}
			if got := b.Nights(); got != tt.want {
				t.Errorf("Nights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBooking_Validate(t *testing.T) {
	in := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking Booking
		wantErr bool
	}{
		{"valid", Booking{CheckIn: in, CheckOut: in.AddDate(0, 0, 2), Status: BookingConfirmed}, false},
		{"inverted dates", Booking{CheckIn: in, CheckOut: in.AddDate(0, 0, -2), Status: BookingPending}, true},
		{"unknown status", Booking{CheckIn: in, CheckOut: in, Status: "lost"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.booking.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBooking_InView(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	past := Booking{CheckIn: now.AddDate(0, 0, -5), CheckOut: now.AddDate(0, 0, -2), Status: BookingCompleted}
	stay := Booking{CheckIn: now.AddDate(0, 0, -1), CheckOut: now.AddDate(0, 0, 2), Status: BookingCheckedIn}
	next := Booking{CheckIn: now.AddDate(0, 0, 3), CheckOut: now.AddDate(0, 0, 5), Status: BookingConfirmed}
	dropped := Booking{CheckIn: now.AddDate(0, 0, 3), CheckOut: now.AddDate(0, 0, 5), Status: BookingCancelled}

	tests := []struct {
		view string
		want []bool // past, stay, next, dropped
	}{
		{ViewAll, []bool{true, true, true, true}},
		{ViewUpcoming, []bool{false, false, true, false}},
		{ViewPast, []bool{true, false, false, false}},
		{BookingCheckedIn, []bool{false, true, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			for i, b := range []Booking{past, stay, next, dropped} {
				if got := b.inViewAt(tt.view, now); got != tt.want[i] {
					t.Errorf("booking %d inViewAt(%q) = %v, want %v", i, tt.view, got, tt.want[i])
				}
			}
		})
	}
}

func TestBooking_Field(t *testing.T) {
	b := Booking{
		ID:       "b1",
		PetID:    "p1",
		PetName:  "Max",
		Kennel:   "A3",
		CheckIn:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Status:   BookingPending,
	}
	tests := map[string]string{
		"name":      "Max",
		"pet_id":    "p1",
		"kennel":    "A3",
		"check_in":  "2025-07-01",
		"check_out": "2025-07-04",
		"nights":    "3",
		"status":    BookingPending,
	}
	for field, want := range tests {
		if got := b.Field(field); got != want {
			t.Errorf("Field(%q) = %q, want %q", field, got, want)
		}
	}
}
