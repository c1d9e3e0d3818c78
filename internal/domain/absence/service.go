package absence

import "context"

type AbsenceService interface {
	// Toggle upserts an absence record from a direct admin edit.
	Toggle(ctx context.Context, req ToggleAbsenceRequest) error
	// Remove deletes a single record from a direct admin edit.
	Remove(ctx context.Context, req RemoveAbsenceRequest) error
	ListRange(ctx context.Context, from, to string, employeeID *string) ([]RecordResponse, error)
	Summarize(ctx context.Context) ([]EmployeeSummary, error)
	SummarizeEmployee(ctx context.Context, employeeID string) (EmployeeSummary, error)
}
