package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListByStoreID(ctx context.Context, storeID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	// Delete removes the employee; absences and requests cascade at the
	// database level.
	Delete(ctx context.Context, id string) error
}
