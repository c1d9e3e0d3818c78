package request

import (
	"sort"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/domain/employee"
	"github.com/storecrew/absence-backend-go/internal/pkg/dates"
)

// DetectClashes computes, for every pending request, which same-store
// employees already have time off (or a competing pending request) inside
// its date range. Cancellation requests are not scored: they free up
// coverage rather than consume it, so callers pass only status=pending.
//
// The scan is O(P² + P·A) over pending requests and absence records, which
// is fine at small-organization scale.
func DetectClashes(pending []HolidayRequest, absences []absence.Record, employees []employee.Employee) ClashReport {
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	absencesByEmployee := make(map[string][]absence.Record)
	for _, a := range absences {
		absencesByEmployee[a.EmployeeID] = append(absencesByEmployee[a.EmployeeID], a)
	}

	report := make(ClashReport)

	for _, req := range pending {
		if req.Status != StatusPending {
			continue
		}
		emp, ok := byID[req.EmployeeID]
		if !ok {
			continue
		}

		names := make(map[string]struct{})

		// Clash-by-absence: existing records of same-store colleagues that
		// fall inside the requested range.
		for _, other := range employees {
			if other.ID == emp.ID || other.StoreID != emp.StoreID {
				continue
			}
			for _, a := range absencesByEmployee[other.ID] {
				if dates.Within(a.Date, req.StartDate, req.EndDate) {
					names[other.Name] = struct{}{}
					break
				}
			}
		}

		// Clash-by-pending-request: other pending requests in the same
		// store with overlapping inclusive ranges.
		for _, otherReq := range pending {
			if otherReq.ID == req.ID || otherReq.Status != StatusPending {
				continue
			}
			otherEmp, ok := byID[otherReq.EmployeeID]
			if !ok || otherEmp.StoreID != emp.StoreID {
				continue
			}
			if dates.Overlaps(req.StartDate, req.EndDate, otherReq.StartDate, otherReq.EndDate) {
				names[otherEmp.Name] = struct{}{}
			}
		}

		if len(names) == 0 {
			continue
		}
		sorted := make([]string, 0, len(names))
		for name := range names {
			sorted = append(sorted, name)
		}
		sort.Strings(sorted)
		report[req.ID] = sorted
	}

	return report
}
