package domain

// Fixture is a batch of records to insert together
type Fixture struct {
	Owners   []Owner
	Pets     []Pet
	Bookings []Booking
}

// Count returns the total number of records in the fixture
func (f *Fixture) Count() int {
	return len(f.Owners) + len(f.Pets) + len(f.Bookings)
}
