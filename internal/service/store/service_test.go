package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storecrew/absence-backend-go/internal/domain/store"
)

type fakeStoreRepo struct {
	byID          map[string]store.Store
	employeeCount map[string]int64
	seq           int
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{
		byID:          make(map[string]store.Store),
		employeeCount: make(map[string]int64),
	}
}

func (f *fakeStoreRepo) Create(ctx context.Context, s store.Store) (store.Store, error) {
	for _, existing := range f.byID {
		if existing.Name == s.Name {
			return store.Store{}, store.ErrStoreNameExists
		}
	}
	f.seq++
	s.ID = "store-" + string(rune('0'+f.seq))
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeStoreRepo) GetByID(ctx context.Context, id string) (store.Store, error) {
	s, ok := f.byID[id]
	if !ok {
		return store.Store{}, store.ErrStoreNotFound
	}
	return s, nil
}

func (f *fakeStoreRepo) GetByName(ctx context.Context, name string) (store.Store, error) {
	for _, s := range f.byID {
		if s.Name == name {
			return s, nil
		}
	}
	return store.Store{}, store.ErrStoreNotFound
}

func (f *fakeStoreRepo) List(ctx context.Context) ([]store.Store, error) {
	var out []store.Store
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStoreRepo) Update(ctx context.Context, s store.Store) error {
	existing, ok := f.byID[s.ID]
	if !ok {
		return store.ErrStoreNotFound
	}
	existing.Name = s.Name
	f.byID[s.ID] = existing
	return nil
}

func (f *fakeStoreRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return store.ErrStoreNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeStoreRepo) CountEmployees(ctx context.Context, id string) (int64, error) {
	return f.employeeCount[id], nil
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := newFakeStoreRepo()
	svc := NewStoreService(repo)

	_, err := svc.Create(context.Background(), store.CreateStoreRequest{Name: "Downtown"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), store.CreateStoreRequest{Name: "Downtown"})
	assert.ErrorIs(t, err, store.ErrStoreNameExists)
}

func TestDelete_RefusedWhileInUse(t *testing.T) {
	repo := newFakeStoreRepo()
	svc := NewStoreService(repo)

	created, err := svc.Create(context.Background(), store.CreateStoreRequest{Name: "Downtown"})
	require.NoError(t, err)
	repo.employeeCount[created.ID] = 3

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, store.ErrStoreInUse)

	// Once the employees are gone the delete goes through.
	repo.employeeCount[created.ID] = 0
	assert.NoError(t, svc.Delete(context.Background(), created.ID))
}

func TestList_IncludesEmployeeCounts(t *testing.T) {
	repo := newFakeStoreRepo()
	svc := NewStoreService(repo)

	created, err := svc.Create(context.Background(), store.CreateStoreRequest{Name: "Riverside"})
	require.NoError(t, err)
	repo.employeeCount[created.ID] = 4

	stores, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, stores, 1)
	assert.Equal(t, int64(4), stores[0].Employees)
}
