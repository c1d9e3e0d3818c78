package request

import (
	"context"
	"time"

	"github.com/storecrew/absence-backend-go/internal/domain/absence"
)

type HolidayRequestRepository interface {
	Create(ctx context.Context, req HolidayRequest) (HolidayRequest, error)
	GetByID(ctx context.Context, id string) (HolidayRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]HolidayRequest, error)
	// UpdateFields overwrites type and date range in place (pending edits).
	UpdateFields(ctx context.Context, id string, typ absence.Type, start, end time.Time) error
	// UpdateStatusIf performs the atomic conditional transition
	// UPDATE ... SET status = to WHERE id = $id AND status = from.
	// It reports whether a row was affected; false means a concurrent
	// writer got there first or the precondition never held.
	UpdateStatusIf(ctx context.Context, id string, from, to Status, reviewedAt *time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}
