package absence

import "time"

// Type is the single-letter absence code carried through the calendar and
// export surfaces: H(oliday), S(ick), P(ersonal).
type Type string

const (
	TypeHoliday  Type = "H"
	TypeSick     Type = "S"
	TypePersonal Type = "P"
)

func (t Type) Valid() bool {
	return t == TypeHoliday || t == TypeSick || t == TypePersonal
}

func (t Type) Label() string {
	switch t {
	case TypeHoliday:
		return "Holiday"
	case TypeSick:
		return "Sick"
	case TypePersonal:
		return "Personal"
	default:
		return string(t)
	}
}

// Record is the ground-truth calendar entry: one absence type per
// (employee, date). Upserting an existing key overwrites the type.
type Record struct {
	EmployeeID string
	Date       time.Time
	Type       Type
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
