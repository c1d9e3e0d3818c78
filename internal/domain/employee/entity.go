package employee

import "time"

// DefaultEntitlementDays is the annual holiday allotment applied when an
// employee is created without an explicit entitlement.
const DefaultEntitlementDays = 28

type Employee struct {
	ID              string
	StoreID         string
	Name            string
	EntitlementDays int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Relationships (for responses)
	StoreName *string
}
