package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

func (r *absenceRepositoryImpl) Upsert(ctx context.Context, rec absence.Record) error {
	q := GetQuerier(ctx, r.db)

	// Last-write-wins: an existing record for the same day gets its type
	// overwritten, never merged.
	query := `
		INSERT INTO absences (employee_id, date, type, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (employee_id, date)
		DO UPDATE SET type = EXCLUDED.type, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, rec.EmployeeID, rec.Date, rec.Type)
	return err
}

func (r *absenceRepositoryImpl) UpsertBatch(ctx context.Context, recs []absence.Record) error {
	for _, rec := range recs {
		if err := r.Upsert(ctx, rec); err != nil {
			return fmt.Errorf("failed to upsert absence for %s on %s: %w",
				rec.EmployeeID, rec.Date.Format("2006-01-02"), err)
		}
	}
	return nil
}

func (r *absenceRepositoryImpl) Delete(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	// Deleting an absent record is not an error: deletion is idempotent.
	_, err := q.Exec(ctx, `DELETE FROM absences WHERE employee_id = $1 AND date = $2`, employeeID, date)
	return err
}

func (r *absenceRepositoryImpl) DeleteBatch(ctx context.Context, employeeID string, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM absences WHERE employee_id = $1 AND date = ANY($2)`,
		employeeID, dates,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *absenceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]absence.Record, error) {
	return r.query(ctx, `WHERE employee_id = $1`, []interface{}{employeeID})
}

func (r *absenceRepositoryImpl) ListRange(ctx context.Context, from, to time.Time, employeeID *string) ([]absence.Record, error) {
	where := `WHERE date >= $1 AND date <= $2`
	args := []interface{}{from, to}
	if employeeID != nil {
		where += ` AND employee_id = $3`
		args = append(args, *employeeID)
	}
	return r.query(ctx, where, args)
}

func (r *absenceRepositoryImpl) ListAll(ctx context.Context) ([]absence.Record, error) {
	return r.query(ctx, "", nil)
}

func (r *absenceRepositoryImpl) query(ctx context.Context, where string, args []interface{}) ([]absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT employee_id, date, type, created_at, updated_at
		FROM absences
		%s
		ORDER BY date, employee_id
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []absence.Record
	for rows.Next() {
		var rec absence.Record
		if err := rows.Scan(&rec.EmployeeID, &rec.Date, &rec.Type, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *absenceRepositoryImpl) CountByType(ctx context.Context, employeeID string) (map[absence.Type]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT type, COUNT(*)
		FROM absences
		WHERE employee_id = $1
		GROUP BY type
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[absence.Type]int)
	for rows.Next() {
		var typ absence.Type
		var count int
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, err
		}
		counts[typ] = count
	}

	return counts, rows.Err()
}
