package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/domain/employee"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func clashEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-a", Name: "Alice", StoreID: "downtown"},
		{ID: "emp-b", Name: "Bob", StoreID: "downtown"},
		{ID: "emp-c", Name: "Carol", StoreID: "riverside"},
	}
}

func TestDetectClashes_AbsenceOverlap(t *testing.T) {
	// Alice is off on 2026-03-10; Bob asks for 09..11 in the same store.
	absences := []absence.Record{
		{EmployeeID: "emp-a", Date: date("2026-03-10"), Type: absence.TypeHoliday},
	}
	pending := []HolidayRequest{
		{ID: "req-b", EmployeeID: "emp-b", Status: StatusPending,
			StartDate: date("2026-03-09"), EndDate: date("2026-03-11")},
	}

	report := DetectClashes(pending, absences, clashEmployees())

	assert.Equal(t, ClashReport{"req-b": {"Alice"}}, report)
}

func TestDetectClashes_PendingOverlap(t *testing.T) {
	pending := []HolidayRequest{
		{ID: "req-a", EmployeeID: "emp-a", Status: StatusPending,
			StartDate: date("2026-05-04"), EndDate: date("2026-05-08")},
		{ID: "req-b", EmployeeID: "emp-b", Status: StatusPending,
			StartDate: date("2026-05-08"), EndDate: date("2026-05-12")},
	}

	report := DetectClashes(pending, nil, clashEmployees())

	assert.Equal(t, []string{"Bob"}, report["req-a"])
	assert.Equal(t, []string{"Alice"}, report["req-b"])
}

func TestDetectClashes_DifferentStoreIgnored(t *testing.T) {
	// Carol is in another store: her absences and requests never clash
	// with downtown.
	absences := []absence.Record{
		{EmployeeID: "emp-c", Date: date("2026-03-10"), Type: absence.TypeSick},
	}
	pending := []HolidayRequest{
		{ID: "req-b", EmployeeID: "emp-b", Status: StatusPending,
			StartDate: date("2026-03-09"), EndDate: date("2026-03-11")},
		{ID: "req-c", EmployeeID: "emp-c", Status: StatusPending,
			StartDate: date("2026-03-09"), EndDate: date("2026-03-11")},
	}

	report := DetectClashes(pending, absences, clashEmployees())

	assert.Empty(t, report)
}

func TestDetectClashes_NonPendingExcluded(t *testing.T) {
	pending := []HolidayRequest{
		{ID: "req-a", EmployeeID: "emp-a", Status: StatusCancelPending,
			StartDate: date("2026-05-04"), EndDate: date("2026-05-08")},
		{ID: "req-b", EmployeeID: "emp-b", Status: StatusPending,
			StartDate: date("2026-05-06"), EndDate: date("2026-05-07")},
	}

	report := DetectClashes(pending, nil, clashEmployees())

	// req-a is a cancellation request: not scored, and not counted against
	// req-b either.
	assert.Empty(t, report)
}

func TestDetectClashes_NamesDeduplicated(t *testing.T) {
	// Bob both has an absence inside Alice's range and a pending overlap:
	// his name appears once.
	absences := []absence.Record{
		{EmployeeID: "emp-b", Date: date("2026-07-07"), Type: absence.TypePersonal},
	}
	pending := []HolidayRequest{
		{ID: "req-a", EmployeeID: "emp-a", Status: StatusPending,
			StartDate: date("2026-07-06"), EndDate: date("2026-07-10")},
		{ID: "req-b2", EmployeeID: "emp-b", Status: StatusPending,
			StartDate: date("2026-07-09"), EndDate: date("2026-07-09")},
	}

	report := DetectClashes(pending, absences, clashEmployees())

	assert.Equal(t, []string{"Bob"}, report["req-a"])
}

func TestDetectClashes_NoClashOmitted(t *testing.T) {
	pending := []HolidayRequest{
		{ID: "req-b", EmployeeID: "emp-b", Status: StatusPending,
			StartDate: date("2026-09-01"), EndDate: date("2026-09-04")},
	}

	report := DetectClashes(pending, nil, clashEmployees())

	_, present := report["req-b"]
	assert.False(t, present)
	assert.Empty(t, report)
}
