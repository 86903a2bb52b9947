package domain

import "time"

const (
	// MinPosition is the best placement within a personal list.
	MinPosition = 1
	// MaxPosition is the worst placement within a personal list.
	MaxPosition = 10
	// MaxListLength is the number of entries a personal list can hold.
	MaxListLength = MaxPosition
)

// UserRanking is one user's placement of one item within their personal
// top-10 list for a category. There is at most one active ranking per
// (user, item) pair; editing a list replaces the prior entry.
type UserRanking struct {
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	Category  string    `json:"category"`
	Position  int       `json:"position"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidPosition reports whether position lies within MinPosition..MaxPosition.
func ValidPosition(position int) bool {
	return position >= MinPosition && position <= MaxPosition
}
