package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ListingType enumerates the property kinds the office deals in.
// The ordinal order is the sort order used by ListingService.SortByType.
type ListingType int

const (
	OneRoomApartment ListingType = iota
	TwoRoomApartment
	ThreeRoomApartment
	PrivatePlot
)

// listingTypeNames maps each ListingType to its persisted string form.
var listingTypeNames = map[ListingType]string{
	OneRoomApartment:   "one_room_apartment",
	TwoRoomApartment:   "two_room_apartment",
	ThreeRoomApartment: "three_room_apartment",
	PrivatePlot:        "private_plot",
}

// String returns the persisted name of the listing type, or "unknown"
// for values outside the enumeration.
func (t ListingType) String() string {
	if name, ok := listingTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the enumerated listing types.
func (t ListingType) Valid() bool {
	_, ok := listingTypeNames[t]
	return ok
}

// ParseListingType resolves a persisted name back to its ListingType.
// Returns ErrInvalidListingType for unrecognized names.
func ParseListingType(name string) (ListingType, error) {
	for t, n := range listingTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidListingType, name)
}

// MarshalJSON encodes the listing type as its string name so the backing
// files stay human-readable.
func (t ListingType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidListingType, int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a listing type from its string name.
func (t *ListingType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseListingType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Listing represents a real-estate listing on the office books.
type Listing struct {
	ID          int         `json:"id"`
	Type        ListingType `json:"type"`
	Address     string      `json:"address"`     // Required, non-empty.
	Price       int64       `json:"price"`       // Required, > 0.
	Area        float64     `json:"area"`        // Required, > 0.
	Rooms       int         `json:"rooms"`       // Optional room count.
	Description string      `json:"description"` // Optional free text.
	Available   bool        `json:"available"`
	CreatedAt   time.Time   `json:"created_at"`
}

// GetID returns the listing identity.
func (l *Listing) GetID() int { return l.ID }

// SetID assigns the listing identity. Called by the store on first insert.
func (l *Listing) SetID(id int) { l.ID = id }
