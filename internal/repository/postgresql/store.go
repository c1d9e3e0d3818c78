package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/storecrew/absence-backend-go/internal/domain/store"
	"github.com/storecrew/absence-backend-go/internal/pkg/database"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

func (r *storeRepositoryImpl) Create(ctx context.Context, s store.Store) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stores (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, uuid.NewString(), s.Name).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return store.Store{}, store.ErrStoreNameExists
		}
		return store.Store{}, err
	}

	return s, nil
}

func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM stores
		WHERE id = $1
	`

	var s store.Store
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, err
	}

	return s, nil
}

func (r *storeRepositoryImpl) GetByName(ctx context.Context, name string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM stores
		WHERE name = $1
	`

	var s store.Store
	err := q.QueryRow(ctx, query, name).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, err
	}

	return s, nil
}

func (r *storeRepositoryImpl) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM stores
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	return stores, rows.Err()
}

func (r *storeRepositoryImpl) Update(ctx context.Context, s store.Store) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores
		SET name = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, s.Name, s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrStoreNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}
	return nil
}

func (r *storeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}
	return nil
}

func (r *storeRepositoryImpl) CountEmployees(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE store_id = $1`, id).Scan(&count)
	return count, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
