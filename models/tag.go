package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a user-authored annotation bound to a time range on an interview's
// timeline. A tag is owned by exactly one interview and is removed with it.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	StartTime float64   `json:"start_time"`
	EndTime   float64   `json:"end_time"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
