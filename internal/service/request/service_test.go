package request

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
	"github.com/storecrew/absence-backend-go/internal/domain/employee"
	"github.com/storecrew/absence-backend-go/internal/domain/request"
	"github.com/storecrew/absence-backend-go/internal/pkg/dates"
)

// --- in-memory fakes -------------------------------------------------------

type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeRequestRepo struct {
	byID map[string]request.HolidayRequest
	seq  int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byID: make(map[string]request.HolidayRequest)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req request.HolidayRequest) (request.HolidayRequest, error) {
	f.seq++
	req.ID = fmt.Sprintf("req-%d", f.seq)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.byID[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (request.HolidayRequest, error) {
	req, ok := f.byID[id]
	if !ok {
		return request.HolidayRequest{}, request.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) List(ctx context.Context, filter request.RequestFilter) ([]request.HolidayRequest, error) {
	var out []request.HolidayRequest
	for _, req := range f.byID {
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateFields(ctx context.Context, id string, typ absence.Type, start, end time.Time) error {
	req, ok := f.byID[id]
	if !ok {
		return request.ErrRequestNotFound
	}
	req.Type, req.StartDate, req.EndDate = typ, start, end
	f.byID[id] = req
	return nil
}

func (f *fakeRequestRepo) UpdateStatusIf(ctx context.Context, id string, from, to request.Status, reviewedAt *time.Time) (bool, error) {
	req, ok := f.byID[id]
	if !ok || req.Status != from {
		return false, nil
	}
	req.Status = to
	if reviewedAt != nil {
		req.ReviewedAt = reviewedAt
	}
	f.byID[id] = req
	return true, nil
}

func (f *fakeRequestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return request.ErrRequestNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeAbsenceRepo struct {
	records map[string]absence.Record
}

func newFakeAbsenceRepo() *fakeAbsenceRepo {
	return &fakeAbsenceRepo{records: make(map[string]absence.Record)}
}

func recordKey(employeeID string, day time.Time) string {
	return employeeID + "|" + day.Format(dates.Layout)
}

func (f *fakeAbsenceRepo) Upsert(ctx context.Context, rec absence.Record) error {
	f.records[recordKey(rec.EmployeeID, rec.Date)] = rec
	return nil
}

func (f *fakeAbsenceRepo) UpsertBatch(ctx context.Context, recs []absence.Record) error {
	for _, rec := range recs {
		if err := f.Upsert(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeAbsenceRepo) Delete(ctx context.Context, employeeID string, date time.Time) error {
	delete(f.records, recordKey(employeeID, date))
	return nil
}

func (f *fakeAbsenceRepo) DeleteBatch(ctx context.Context, employeeID string, days []time.Time) (int64, error) {
	var removed int64
	for _, day := range days {
		key := recordKey(employeeID, day)
		if _, ok := f.records[key]; ok {
			delete(f.records, key)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeAbsenceRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]absence.Record, error) {
	var out []absence.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) ListRange(ctx context.Context, from, to time.Time, employeeID *string) ([]absence.Record, error) {
	var out []absence.Record
	for _, rec := range f.records {
		if employeeID != nil && rec.EmployeeID != *employeeID {
			continue
		}
		if dates.Within(rec.Date, from, to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) ListAll(ctx context.Context) ([]absence.Record, error) {
	var out []absence.Record
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAbsenceRepo) CountByType(ctx context.Context, employeeID string) (map[absence.Type]int, error) {
	counts := make(map[absence.Type]int)
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			counts[rec.Type]++
		}
	}
	return counts, nil
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
	for _, e := range employees {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByStoreID(ctx context.Context, storeID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.byID {
		if e.StoreID == storeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	e, ok := f.byID[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.StoreID != nil {
		e.StoreID = *req.StoreID
	}
	if req.EntitlementDays != nil {
		e.EntitlementDays = *req.EntitlementDays
	}
	f.byID[req.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.byID, id)
	return nil
}

// --- test harness ----------------------------------------------------------

type harness struct {
	service   request.RequestService
	requests  *fakeRequestRepo
	absences  *fakeAbsenceRepo
	employees *fakeEmployeeRepo
	clock     *fixedClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	requests := newFakeRequestRepo()
	absences := newFakeAbsenceRepo()
	employees := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-a", Name: "Alice", StoreID: "store-1", EntitlementDays: 28},
		employee.Employee{ID: "emp-b", Name: "Bob", StoreID: "store-1", EntitlementDays: 28},
	)
	clock := &fixedClock{now: mustDate("2026-01-05")} // a Monday

	return &harness{
		service:   NewRequestService(fakeTx{}, requests, absences, employees, clock),
		requests:  requests,
		absences:  absences,
		employees: employees,
		clock:     clock,
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse(dates.Layout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func (h *harness) submit(t *testing.T, employeeID, start, end string) request.HolidayRequest {
	t.Helper()
	req, err := h.service.Submit(context.Background(), request.SubmitRequestRequest{
		EmployeeID: employeeID,
		Type:       "H",
		StartDate:  start,
		EndDate:    end,
	})
	require.NoError(t, err)
	return req
}

// --- tests -----------------------------------------------------------------

func TestSubmit(t *testing.T) {
	h := newHarness(t)

	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")

	assert.Equal(t, request.StatusPending, req.Status)
	assert.Equal(t, "emp-a", req.EmployeeID)
	assert.Equal(t, absence.TypeHoliday, req.Type)
}

func TestSubmit_InvalidRange(t *testing.T) {
	h := newHarness(t)

	_, err := h.service.Submit(context.Background(), request.SubmitRequestRequest{
		EmployeeID: "emp-a",
		Type:       "H",
		StartDate:  "2026-03-06",
		EndDate:    "2026-03-02",
	})

	assert.ErrorIs(t, err, request.ErrInvalidRange)
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	h := newHarness(t)

	_, err := h.service.Submit(context.Background(), request.SubmitRequestRequest{
		EmployeeID: "emp-zz",
		Type:       "H",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApprove_WritesWeekdayRecords(t *testing.T) {
	h := newHarness(t)
	// Mon 2026-03-02 through Sun 2026-03-08: five weekdays.
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-08")

	result, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)

	assert.Equal(t, request.StatusApproved, result.Request.Status)
	assert.Equal(t, 5, result.DaysApplied)
	require.NotNil(t, result.Request.ReviewedAt)

	records, err := h.absences.GetByEmployeeID(context.Background(), "emp-a")
	require.NoError(t, err)
	assert.Len(t, records, 5)
	for _, rec := range records {
		assert.Equal(t, absence.TypeHoliday, rec.Type)
		assert.False(t, dates.IsWeekend(rec.Date))
	}
}

func TestApprove_EmptyRangeRefusedBeforeAnyWrite(t *testing.T) {
	h := newHarness(t)
	// Sat 2026-06-06 through Sun 2026-06-07: no weekdays.
	req := h.submit(t, "emp-a", "2026-06-06", "2026-06-07")

	_, err := h.service.Approve(context.Background(), req.ID)
	assert.ErrorIs(t, err, request.ErrEmptyRange)

	// The request stays pending and the calendar stays empty.
	stored, err := h.requests.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, stored.Status)
	records, _ := h.absences.ListAll(context.Background())
	assert.Empty(t, records)
}

func TestApprove_WrongState(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")

	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)

	_, err = h.service.Approve(context.Background(), req.ID)
	assert.ErrorIs(t, err, request.ErrStatePrecondition)
}

// staleReadRepo serves a frozen snapshot from GetByID while the underlying
// store has already moved on, reproducing a read-then-update race.
type staleReadRepo struct {
	*fakeRequestRepo
	snapshot request.HolidayRequest
}

func (r *staleReadRepo) GetByID(ctx context.Context, id string) (request.HolidayRequest, error) {
	if id == r.snapshot.ID {
		return r.snapshot, nil
	}
	return r.fakeRequestRepo.GetByID(ctx, id)
}

func TestApprove_StaleStateOnConcurrentMove(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")

	// Another admin rejects between our read and our conditional update.
	moved, err := h.requests.UpdateStatusIf(context.Background(),
		req.ID, request.StatusPending, request.StatusRejected, nil)
	require.NoError(t, err)
	require.True(t, moved)

	stale := &staleReadRepo{fakeRequestRepo: h.requests, snapshot: req}
	racingService := NewRequestService(fakeTx{}, stale, h.absences, h.employees, h.clock)

	_, approveErr := racingService.Approve(context.Background(), req.ID)
	assert.ErrorIs(t, approveErr, request.ErrStaleState)

	// The conditional update lost, so no absence records were written.
	records, _ := h.absences.ListAll(context.Background())
	assert.Empty(t, records)
}

func TestReject(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")

	rejected, err := h.service.Reject(context.Background(), req.ID)
	require.NoError(t, err)

	assert.Equal(t, request.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.ReviewedAt)

	// Terminal: nothing moves a rejected request.
	_, err = h.service.Approve(context.Background(), req.ID)
	assert.ErrorIs(t, err, request.ErrStatePrecondition)
}

func TestRequestCancellation(t *testing.T) {
	h := newHarness(t)
	// Starts 2026-03-02, well past the four-week notice from 2026-01-05.
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")
	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)

	updated, err := h.service.RequestCancellation(context.Background(), req.ID, "emp-a")
	require.NoError(t, err)

	assert.Equal(t, request.StatusCancelPending, updated.Status)
	// Flagging alone does not touch the calendar.
	records, _ := h.absences.GetByEmployeeID(context.Background(), "emp-a")
	assert.Len(t, records, 5)
}

func TestRequestCancellation_NotOwner(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")
	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)

	_, err = h.service.RequestCancellation(context.Background(), req.ID, "emp-b")
	assert.ErrorIs(t, err, request.ErrNotRequestOwner)
}

func TestRequestCancellation_AlreadyPassed(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")
	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)

	h.clock.now = mustDate("2026-04-01")

	_, err = h.service.RequestCancellation(context.Background(), req.ID, "emp-a")
	assert.ErrorIs(t, err, request.ErrCancellationNotAllowed)

	var notAllowed *request.CancellationNotAllowedError
	require.ErrorAs(t, err, &notAllowed)
	assert.Equal(t, request.ReasonAlreadyPassed, notAllowed.Reason)
}

func TestRequestCancellation_InsideNoticeWindow(t *testing.T) {
	h := newHarness(t)
	// Starts 2026-01-18, only 13 days after "now": too close to cancel.
	req := h.submit(t, "emp-a", "2026-01-18", "2026-03-06")
	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)

	_, err = h.service.RequestCancellation(context.Background(), req.ID, "emp-a")
	assert.ErrorIs(t, err, request.ErrCancellationNotAllowed)

	var notAllowed *request.CancellationNotAllowedError
	require.ErrorAs(t, err, &notAllowed)
	assert.Equal(t, request.ReasonInsideNoticeWindow, notAllowed.Reason)
}

func TestRequestCancellation_WrongState(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")

	// Still pending: nothing to cancel yet.
	_, err := h.service.RequestCancellation(context.Background(), req.ID, "emp-a")
	assert.ErrorIs(t, err, request.ErrStatePrecondition)
}

func TestApproveCancellation_RemovesRecords(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-08")
	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)
	_, err = h.service.RequestCancellation(context.Background(), req.ID, "emp-a")
	require.NoError(t, err)

	cancelled, err := h.service.ApproveCancellation(context.Background(), req.ID)
	require.NoError(t, err)

	assert.Equal(t, request.StatusCancelled, cancelled.Status)
	records, _ := h.absences.GetByEmployeeID(context.Background(), "emp-a")
	assert.Empty(t, records)
}

func TestApproveCancellation_SkipsAlreadyRemovedDays(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")
	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)
	_, err = h.service.RequestCancellation(context.Background(), req.ID, "emp-a")
	require.NoError(t, err)

	// An admin already deleted one of the days by direct edit.
	require.NoError(t, h.absences.Delete(context.Background(), "emp-a", mustDate("2026-03-04")))

	_, err = h.service.ApproveCancellation(context.Background(), req.ID)
	require.NoError(t, err)

	records, _ := h.absences.GetByEmployeeID(context.Background(), "emp-a")
	assert.Empty(t, records)
}

func TestDeclineCancellation_RestoresApproved(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")
	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)
	_, err = h.service.RequestCancellation(context.Background(), req.ID, "emp-a")
	require.NoError(t, err)

	restored, err := h.service.DeclineCancellation(context.Background(), req.ID)
	require.NoError(t, err)

	assert.Equal(t, request.StatusApproved, restored.Status)
	// The calendar never moved.
	records, _ := h.absences.GetByEmployeeID(context.Background(), "emp-a")
	assert.Len(t, records, 5)
}

func TestEditPending(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")

	edited, err := h.service.EditPending(context.Background(), request.EditRequestRequest{
		ID:          req.ID,
		RequesterID: "emp-a",
		Type:        "P",
		StartDate:   "2026-03-09",
		EndDate:     "2026-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, absence.TypePersonal, edited.Type)
	assert.Equal(t, mustDate("2026-03-09"), edited.StartDate)
	assert.Equal(t, request.StatusPending, edited.Status)
}

func TestEditPending_NotOwner(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")

	_, err := h.service.EditPending(context.Background(), request.EditRequestRequest{
		ID:          req.ID,
		RequesterID: "emp-b",
		Type:        "H",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-06",
	})

	assert.ErrorIs(t, err, request.ErrNotRequestOwner)
}

func TestEditPending_WrongState(t *testing.T) {
	h := newHarness(t)
	req := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")
	_, err := h.service.Approve(context.Background(), req.ID)
	require.NoError(t, err)

	_, err = h.service.EditPending(context.Background(), request.EditRequestRequest{
		ID:          req.ID,
		RequesterID: "emp-a",
		Type:        "H",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-06",
	})

	assert.ErrorIs(t, err, request.ErrStatePrecondition)
}

func TestDetectClashes(t *testing.T) {
	h := newHarness(t)
	// Alice's approved time off overlaps Bob's pending request, same store.
	aliceReq := h.submit(t, "emp-a", "2026-03-02", "2026-03-06")
	_, err := h.service.Approve(context.Background(), aliceReq.ID)
	require.NoError(t, err)

	bobReq := h.submit(t, "emp-b", "2026-03-04", "2026-03-10")

	report, err := h.service.DetectClashes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, request.ClashReport{bobReq.ID: {"Alice"}}, report)
}

func TestListMine(t *testing.T) {
	h := newHarness(t)
	h.submit(t, "emp-a", "2026-03-02", "2026-03-06")
	h.submit(t, "emp-b", "2026-03-09", "2026-03-10")

	mine, err := h.service.ListMine(context.Background(), "emp-a")
	require.NoError(t, err)

	require.Len(t, mine, 1)
	assert.Equal(t, "emp-a", mine[0].EmployeeID)
	assert.Equal(t, "pending", mine[0].Status)
}
