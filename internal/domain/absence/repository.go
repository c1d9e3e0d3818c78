package absence

import (
	"context"
	"time"
)

type AbsenceRepository interface {
	// Upsert writes the record, overwriting the type when a record for the
	// same (employee, date) already exists.
	Upsert(ctx context.Context, rec Record) error
	// UpsertBatch writes all records with the same last-write-wins
	// semantics. Callers run it inside a transaction when atomicity is
	// required.
	UpsertBatch(ctx context.Context, recs []Record) error
	// Delete removes the record for (employeeID, date). Deleting an absent
	// record is not an error.
	Delete(ctx context.Context, employeeID string, date time.Time) error
	// DeleteBatch removes the records for the given dates and reports how
	// many rows actually existed.
	DeleteBatch(ctx context.Context, employeeID string, dates []time.Time) (int64, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Record, error)
	ListRange(ctx context.Context, from, to time.Time, employeeID *string) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
	CountByType(ctx context.Context, employeeID string) (map[Type]int, error)
}
