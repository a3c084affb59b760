package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kennel/internal/domain"
	"kennel/internal/ports"
)

// Repository implements ports.EntityRepository using SQLite
type Repository struct {
	db *DB
}

// Ensure Repository implements EntityRepository
var _ ports.EntityRepository = (*Repository)(nil)

// NewRepository creates a repository backed by db
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ListPets returns every pet with its owner's name resolved
func (r *Repository) ListPets(ctx context.Context) ([]domain.Pet, error) {
	rows, err := r.db.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.species, p.breed, p.owner_id, COALESCE(o.name, ''), p.status, p.created_at
		FROM pets p LEFT JOIN owners o ON o.id = p.owner_id
		ORDER BY p.rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pets []domain.Pet
	for rows.Next() {
		var p domain.Pet
		var created int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &p.OwnerID, &p.OwnerName, &p.Status, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = fromUnix(created)
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

// ListOwners returns every owner
func (r *Repository) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	rows, err := r.db.db.QueryContext(ctx, `
		SELECT id, name, email, phone, status, created_at
		FROM owners ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []domain.Owner
	for rows.Next() {
		var o domain.Owner
		var created int64
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.Status, &created); err != nil {
			return nil, err
		}
		o.CreatedAt = fromUnix(created)
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

// ListBookings returns every booking with its pet's name resolved
func (r *Repository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.db.QueryContext(ctx, `
		SELECT b.id, b.pet_id, COALESCE(p.name, ''), b.kennel, b.check_in, b.check_out, b.status
		FROM bookings b LEFT JOIN pets p ON p.id = b.pet_id
		ORDER BY b.rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var checkIn, checkOut int64
		if err := rows.Scan(&b.ID, &b.PetID, &b.PetName, &b.Kennel, &checkIn, &checkOut, &b.Status); err != nil {
			return nil, err
		}
		b.CheckIn = fromUnix(checkIn)
		b.CheckOut = fromUnix(checkOut)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// SavePet inserts or updates a pet
func (r *Repository) SavePet(ctx context.Context, p *domain.Pet) error {
	_, err := r.db.db.ExecContext(ctx, `
		INSERT INTO pets (id, name, species, breed, owner_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, species = excluded.species, breed = excluded.breed,
			owner_id = excluded.owner_id, status = excluded.status
	`, p.ID, p.Name, p.Species, p.Breed, p.OwnerID, p.Status, toUnix(p.CreatedAt))
	return err
}

// SaveOwner inserts or updates an owner
func (r *Repository) SaveOwner(ctx context.Context, o *domain.Owner) error {
	_, err := r.db.db.ExecContext(ctx, `
		INSERT INTO owners (id, name, email, phone, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, email = excluded.email, phone = excluded.phone, status = excluded.status
	`, o.ID, o.Name, o.Email, o.Phone, o.Status, toUnix(o.CreatedAt))
	return err
}

// SaveBooking inserts or updates a booking
func (r *Repository) SaveBooking(ctx context.Context, b *domain.Booking) error {
	_, err := r.db.db.ExecContext(ctx, `
		INSERT INTO bookings (id, pet_id, kennel, check_in, check_out, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			pet_id = excluded.pet_id, kennel = excluded.kennel, check_in = excluded.check_in,
			check_out = excluded.check_out, status = excluded.status
	`, b.ID, b.PetID, b.Kennel, toUnix(b.CheckIn), toUnix(b.CheckOut), b.Status)
	return err
}

// Delete removes records of kind by id in one transaction
func (r *Repository) Delete(ctx context.Context, kind domain.EntityKind, ids ...string) (int, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	removed := 0
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `DELETE FROM `+table+` WHERE id = ?`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, id := range ids {
			res, err := stmt.ExecContext(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to delete %s %s: %w", kind, id, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			removed += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func tableFor(kind domain.EntityKind) (string, error) {
	switch kind {
	case domain.KindPets, domain.KindOwners, domain.KindBookings:
		return string(kind), nil
	default:
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}
}

func toUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromUnix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
