package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
