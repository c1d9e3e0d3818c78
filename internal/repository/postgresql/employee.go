package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/storecrew/absence-backend-go/internal/domain/employee"
	"github.com/storecrew/absence-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, store_id, name, entitlement_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, uuid.NewString(), e.StoreID, e.Name, e.EntitlementDays).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.store_id, e.name, e.entitlement_days, e.created_at, e.updated_at,
		       s.name AS store_name
		FROM employees e
		JOIN stores s ON e.store_id = s.id
		WHERE e.id = $1
	`

	var e employee.Employee
	var storeName string
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.StoreID, &e.Name, &e.EntitlementDays, &e.CreatedAt, &e.UpdatedAt,
		&storeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	e.StoreName = &storeName
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, "", nil)
}

func (r *employeeRepositoryImpl) ListByStoreID(ctx context.Context, storeID string) ([]employee.Employee, error) {
	return r.list(ctx, "WHERE e.store_id = $1", []interface{}{storeID})
}

func (r *employeeRepositoryImpl) list(ctx context.Context, where string, args []interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT e.id, e.store_id, e.name, e.entitlement_days, e.created_at, e.updated_at,
		       s.name AS store_name
		FROM employees e
		JOIN stores s ON e.store_id = s.id
		%s
		ORDER BY e.name
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		var storeName string
		err := rows.Scan(
			&e.ID, &e.StoreID, &e.Name, &e.EntitlementDays, &e.CreatedAt, &e.UpdatedAt,
			&storeName,
		)
		if err != nil {
			return nil, err
		}
		e.StoreName = &storeName
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.StoreID != nil {
		updates = append(updates, fmt.Sprintf("store_id = $%d", argIdx))
		args = append(args, *req.StoreID)
		argIdx++
	}
	if req.EntitlementDays != nil {
		updates = append(updates, fmt.Sprintf("entitlement_days = $%d", argIdx))
		args = append(args, *req.EntitlementDays)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, req.ID)

	sql := "UPDATE employees SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d", argIdx)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
