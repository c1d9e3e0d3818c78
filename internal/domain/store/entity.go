package store

import "time"

// Store groups employees that compete for the same coverage. Clash
// detection is scoped to a single store.
type Store struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
