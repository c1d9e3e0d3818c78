package store

import (
	"context"
	"fmt"

	"github.com/storecrew/absence-backend-go/internal/domain/store"
)

type StoreServiceImpl struct {
	store.StoreRepository
}

func NewStoreService(storeRepository store.StoreRepository) store.StoreService {
	return &StoreServiceImpl{StoreRepository: storeRepository}
}

// Create implements store.StoreService.
func (s *StoreServiceImpl) Create(ctx context.Context, req store.CreateStoreRequest) (store.Store, error) {
	if err := req.Validate(); err != nil {
		return store.Store{}, err
	}

	created, err := s.StoreRepository.Create(ctx, store.Store{Name: req.Name})
	if err != nil {
		return store.Store{}, err
	}

	return created, nil
}

// Update implements store.StoreService.
func (s *StoreServiceImpl) Update(ctx context.Context, req store.UpdateStoreRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.StoreRepository.Update(ctx, store.Store{ID: req.ID, Name: req.Name})
}

// Get implements store.StoreService.
func (s *StoreServiceImpl) Get(ctx context.Context, id string) (store.Store, error) {
	return s.StoreRepository.GetByID(ctx, id)
}

// List implements store.StoreService.
func (s *StoreServiceImpl) List(ctx context.Context) ([]store.StoreResponse, error) {
	stores, err := s.StoreRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	responses := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		count, err := s.StoreRepository.CountEmployees(ctx, st.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count employees for store %s: %w", st.ID, err)
		}
		responses = append(responses, store.StoreResponse{
			ID:        st.ID,
			Name:      st.Name,
			Employees: count,
		})
	}
	return responses, nil
}

// Delete refuses to remove a store that still has employees assigned;
// reassign or delete them first.
func (s *StoreServiceImpl) Delete(ctx context.Context, id string) error {
	count, err := s.StoreRepository.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return store.ErrStoreInUse
	}

	return s.StoreRepository.Delete(ctx, id)
}
