package store

import "context"

type StoreRepository interface {
	Create(ctx context.Context, s Store) (Store, error)
	GetByID(ctx context.Context, id string) (Store, error)
	GetByName(ctx context.Context, name string) (Store, error)
	List(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, s Store) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int64, error)
}
