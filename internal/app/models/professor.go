package models

import (
	"time"

	"github.com/google/uuid"
)

// Professor is a member of teaching staff. Tags is nil when never set.
type Professor struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Tags      []CampusTag `json:"tags"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
