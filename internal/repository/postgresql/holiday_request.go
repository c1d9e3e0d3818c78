package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/domain/request"
	"github.com/storecrew/absence-backend-go/internal/pkg/database"
)

type holidayRequestRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRequestRepository(db *database.DB) request.HolidayRequestRepository {
	return &holidayRequestRepositoryImpl{db: db}
}

const holidayRequestColumns = `
	hr.id, hr.employee_id, hr.type, hr.start_date, hr.end_date, hr.status,
	hr.created_at, hr.reviewed_at, hr.updated_at,
	e.name AS employee_name,
	e.store_id,
	s.name AS store_name
`

func (r *holidayRequestRepositoryImpl) Create(ctx context.Context, req request.HolidayRequest) (request.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_requests (id, employee_id, type, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), req.EmployeeID, req.Type, req.StartDate, req.EndDate, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return request.HolidayRequest{}, err
	}

	return req, nil
}

func (r *holidayRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM holiday_requests hr
		JOIN employees e ON hr.employee_id = e.id
		JOIN stores s ON e.store_id = s.id
		WHERE hr.id = $1
	`, holidayRequestColumns)

	req, err := scanHolidayRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.HolidayRequest{}, request.ErrRequestNotFound
		}
		return request.HolidayRequest{}, err
	}

	return req, nil
}

func (r *holidayRequestRepositoryImpl) List(ctx context.Context, filter request.RequestFilter) ([]request.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("hr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("hr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	where := ""
	if len(whereClauses) > 0 {
		where = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM holiday_requests hr
		JOIN employees e ON hr.employee_id = e.id
		JOIN stores s ON e.store_id = s.id
		%s
		ORDER BY hr.created_at DESC
	`, holidayRequestColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.HolidayRequest
	for rows.Next() {
		req, err := scanHolidayRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *holidayRequestRepositoryImpl) UpdateFields(ctx context.Context, id string, typ absence.Type, start, end time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_requests
		SET type = $1, start_date = $2, end_date = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, typ, start, end, id)
	if err != nil {
		return fmt.Errorf("failed to update holiday request with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}

func (r *holidayRequestRepositoryImpl) UpdateStatusIf(ctx context.Context, id string, from, to request.Status, reviewedAt *time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Conditional update: a losing concurrent writer affects zero rows and
	// must not apply side effects.
	var tagQuery string
	var args []interface{}
	if reviewedAt != nil {
		tagQuery = `
			UPDATE holiday_requests
			SET status = $1, reviewed_at = $2, updated_at = NOW()
			WHERE id = $3 AND status = $4
		`
		args = []interface{}{to, *reviewedAt, id, from}
	} else {
		tagQuery = `
			UPDATE holiday_requests
			SET status = $1, updated_at = NOW()
			WHERE id = $2 AND status = $3
		`
		args = []interface{}{to, id, from}
	}

	tag, err := q.Exec(ctx, tagQuery, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update status for holiday request with id %s: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *holidayRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holiday_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}

func scanHolidayRequest(row pgx.Row) (request.HolidayRequest, error) {
	var req request.HolidayRequest
	var employeeName, storeID, storeName string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Status,
		&req.CreatedAt, &req.ReviewedAt, &req.UpdatedAt,
		&employeeName,
		&storeID,
		&storeName,
	)
	if err != nil {
		return request.HolidayRequest{}, err
	}

	req.EmployeeName = &employeeName
	req.StoreID = &storeID
	req.StoreName = &storeName
	return req, nil
}
