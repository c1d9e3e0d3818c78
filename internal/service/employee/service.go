package employee

import (
	"context"
	"fmt"

	"github.com/storecrew/absence-backend-go/internal/domain/employee"
	"github.com/storecrew/absence-backend-go/internal/domain/store"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	store.StoreRepository
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	storeRepository store.StoreRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		StoreRepository:    storeRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.StoreRepository.GetByID(ctx, req.StoreID); err != nil {
		return employee.Employee{}, err
	}

	entitlement := employee.DefaultEntitlementDays
	if req.EntitlementDays != nil {
		entitlement = *req.EntitlementDays
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		StoreID:         req.StoreID,
		Name:            req.Name,
		EntitlementDays: entitlement,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.StoreID != nil {
		if _, err := s.StoreRepository.GetByID(ctx, *req.StoreID); err != nil {
			return err
		}
	}

	return s.EmployeeRepository.Update(ctx, req)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Delete implements employee.EmployeeService. Absence records and holiday
// requests cascade away with the row.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}
