package store

import "context"

type StoreService interface {
	Create(ctx context.Context, req CreateStoreRequest) (Store, error)
	Update(ctx context.Context, req UpdateStoreRequest) error
	Get(ctx context.Context, id string) (Store, error)
	List(ctx context.Context) ([]StoreResponse, error)
	Delete(ctx context.Context, id string) error
}
