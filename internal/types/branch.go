package types

import (
	"github.com/google/uuid"
)

// Branch is one Kuriftu resort location. Loaded from the database and
// never mutated afterwards.
type Branch struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// Activity is a bookable experience offered at a single branch.
// Duration is in minutes and is always positive.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Duration    int       `json:"duration"`
	BranchID    uuid.UUID `json:"branch_id"`
}
