package absence

import (
	"context"
	"fmt"
	"time"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/domain/employee"
	"github.com/storecrew/absence-backend-go/internal/pkg/dates"
)

type AbsenceServiceImpl struct {
	absence.AbsenceRepository
	employee.EmployeeRepository
}

func NewAbsenceService(
	absenceRepository absence.AbsenceRepository,
	employeeRepository employee.EmployeeRepository,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		AbsenceRepository:  absenceRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Toggle implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Toggle(ctx context.Context, req absence.ToggleAbsenceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	day, err := time.Parse(dates.Layout, req.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	day = dates.Normalize(day)
	if dates.IsWeekend(day) {
		return absence.ErrWeekendDate
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	return s.AbsenceRepository.Upsert(ctx, absence.Record{
		EmployeeID: req.EmployeeID,
		Date:       day,
		Type:       absence.Type(req.Type),
	})
}

// Remove implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Remove(ctx context.Context, req absence.RemoveAbsenceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	day, err := time.Parse(dates.Layout, req.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	return s.AbsenceRepository.Delete(ctx, req.EmployeeID, dates.Normalize(day))
}

// ListRange implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListRange(ctx context.Context, from, to string, employeeID *string) ([]absence.RecordResponse, error) {
	fromDay, err := time.Parse(dates.Layout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", from, err)
	}
	toDay, err := time.Parse(dates.Layout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", to, err)
	}
	fromDay, toDay = dates.Normalize(fromDay), dates.Normalize(toDay)
	if fromDay.After(toDay) {
		return nil, absence.ErrInvalidRange
	}

	records, err := s.AbsenceRepository.ListRange(ctx, fromDay, toDay, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]absence.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, absence.RecordResponse{
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date.Format(dates.Layout),
			Type:       string(rec.Type),
			TypeLabel:  rec.Type.Label(),
		})
	}
	return responses, nil
}

// Summarize implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Summarize(ctx context.Context) ([]absence.EmployeeSummary, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]absence.EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		summary, err := s.summarize(ctx, emp)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// SummarizeEmployee implements absence.AbsenceService.
func (s *AbsenceServiceImpl) SummarizeEmployee(ctx context.Context, employeeID string) (absence.EmployeeSummary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return absence.EmployeeSummary{}, err
	}
	return s.summarize(ctx, emp)
}

func (s *AbsenceServiceImpl) summarize(ctx context.Context, emp employee.Employee) (absence.EmployeeSummary, error) {
	counts, err := s.AbsenceRepository.CountByType(ctx, emp.ID)
	if err != nil {
		return absence.EmployeeSummary{}, fmt.Errorf("failed to count absences for employee %s: %w", emp.ID, err)
	}

	summary := absence.EmployeeSummary{
		EmployeeID:  emp.ID,
		Name:        emp.Name,
		Holiday:     counts[absence.TypeHoliday],
		Sick:        counts[absence.TypeSick],
		Personal:    counts[absence.TypePersonal],
		Entitlement: emp.EntitlementDays,
	}
	// Only holiday days draw down the entitlement. The balance may go
	// negative when an admin over-books; it is reported as-is.
	summary.Remaining = emp.EntitlementDays - summary.Holiday
	if emp.StoreName != nil {
		summary.StoreName = *emp.StoreName
	}
	return summary, nil
}
