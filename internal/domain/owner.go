package domain

import "time"

// Owner represents a customer owning one or more pets
type Owner struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Status    string
	CreatedAt time.Time
}

// Ensure Owner implements Record
var _ Record = Owner{}

func (o Owner) RecordID() string { return o.ID }

func (o Owner) Field(name string) string {
	switch name {
	case "id":
		return o.ID
	case "name":
		return o.Name
	case "email":
		return o.Email
	case "phone":
		return o.Phone
	case "status":
		return o.Status
	case "created":
		return formatDate(o.CreatedAt)
	}
	return ""
}

func (o Owner) InView(view string) bool {
	return view == "" || view == ViewAll || view == o.Status
}

// Timestamp returns the time behind a date column
func (o Owner) Timestamp(name string) (time.Time, bool) {
	if name == "created" {
		return o.CreatedAt, !o.CreatedAt.IsZero()
	}
	return time.Time{}, false
}
