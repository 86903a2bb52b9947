package domain

import "time"

// VisitEvent records that a user visited or ordered from an item.
// Visits are append-only and repeat visits are all retained.
type VisitEvent struct {
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	VisitedAt time.Time `json:"visited_at"`
}
