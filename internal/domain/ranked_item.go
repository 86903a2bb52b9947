package domain

// ItemKind distinguishes the two kinds of rankable entity.
type ItemKind string

const (
	ItemKindDish       ItemKind = "dish"
	ItemKindRestaurant ItemKind = "restaurant"
)

// RankedItem identifies a dish or restaurant that users can rank and visit.
// Name is carried through to read views but never used in scoring.
type RankedItem struct {
	ID       string   `json:"id"`
	Kind     ItemKind `json:"kind,omitempty"`
	Name     string   `json:"name,omitempty"`
	Locality string   `json:"locality,omitempty"`
}
