package absence

import "errors"

var (
	ErrInvalidType = errors.New("invalid absence type")
	// ErrInvalidRange is returned when a range query's from date is after
	// its to date.
	ErrInvalidRange = errors.New("from date must not be after to date")
	// ErrWeekendDate is returned when a direct toggle targets a Saturday or
	// Sunday. Absence records exist only for weekdays.
	ErrWeekendDate = errors.New("absence records are limited to weekdays")
)
