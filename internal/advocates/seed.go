package advocates

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	"github.com/JaimeStill/advocates/pkg/repository"
)

const (
	insertSQL = `
		INSERT INTO public.advocates (first_name, last_name, city, degree, specialties, years_of_experience, phone_number)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)`

	insertWithIDSQL = `
		INSERT INTO public.advocates (id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8)`

	truncateSQL = `TRUNCATE public.advocates RESTART IDENTITY`

	resyncSQL = `
		SELECT setval(
			pg_get_serial_sequence('public.advocates', 'id'),
			GREATEST((SELECT MAX(id) FROM public.advocates), 1)
		)`
)

// SeedOptions controls how Seed writes records.
type SeedOptions struct {
	// Truncate empties the table and restarts its id sequence before inserting.
	Truncate bool
}

// DecodeRecords reads a JSON array of advocates and validates each record.
// Specialties default to an empty list. An id of 0 lets the database assign one.
func DecodeRecords(r io.Reader) ([]Advocate, error) {
	var records []Advocate
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	for i := range records {
		a := &records[i]
		if a.FirstName == "" || a.LastName == "" {
			return nil, fmt.Errorf("%w: record %d is missing a name", ErrInvalidRecord, i)
		}
		if a.YearsOfExperience < 0 {
			return nil, fmt.Errorf("%w: record %d has negative years of experience", ErrInvalidRecord, i)
		}
		if a.ID < 0 {
			return nil, fmt.Errorf("%w: record %d has negative id", ErrInvalidRecord, i)
		}
		if a.Specialties == nil {
			a.Specialties = []string{}
		}
	}

	return records, nil
}

// Seed inserts records in a single transaction and returns the number written.
// Records with an explicit id keep it; the id sequence is advanced past them.
// A duplicate id fails the whole batch with ErrDuplicate.
func Seed(ctx context.Context, db *sql.DB, records []Advocate, opts SeedOptions) (int, error) {
	return repository.WithTx(ctx, db, func(tx *sql.Tx) (int, error) {
		if opts.Truncate {
			if _, err := tx.ExecContext(ctx, truncateSQL); err != nil {
				return 0, fmt.Errorf("truncate advocates: %w", err)
			}
		}

		explicit := false
		for i, a := range records {
			if a.ID > 0 {
				explicit = true
			}
			if err := insert(ctx, tx, a); err != nil {
				return 0, fmt.Errorf("insert record %d: %w", i, repository.MapError(err, ErrNotFound, ErrDuplicate))
			}
		}

		if explicit {
			if _, err := tx.ExecContext(ctx, resyncSQL); err != nil {
				return 0, fmt.Errorf("resync id sequence: %w", err)
			}
		}

		return len(records), nil
	})
}

func insert(ctx context.Context, exec repository.Executor, a Advocate) error {
	specialties := a.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	encoded, err := json.Marshal(specialties)
	if err != nil {
		return err
	}

	args := []any{
		a.FirstName,
		a.LastName,
		a.City,
		a.Degree,
		string(encoded),
		a.YearsOfExperience,
		a.PhoneNumber,
	}

	q := insertSQL
	if a.ID > 0 {
		q = insertWithIDSQL
		args = append([]any{a.ID}, args...)
	}

	_, err = exec.ExecContext(ctx, q, args...)
	return err
}
