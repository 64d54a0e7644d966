package types

import "time"

// Offer is the standalone relation between one client and the listings
// offered to them. At most one offer may be on file per client; the
// invariant is enforced by OfferService before insert.
//
// Responses records the client's per-listing acceptance decisions, keyed
// by listing id. A listing without an entry has not been responded to.
type Offer struct {
	ID         int          `json:"id"`
	ClientID   int          `json:"client_id"`
	ListingIDs []int        `json:"listing_ids"`
	Responses  map[int]bool `json:"responses,omitempty"`
	OfferedAt  time.Time    `json:"offered_at"`
}

// GetID returns the offer identity.
func (o *Offer) GetID() int { return o.ID }

// SetID assigns the offer identity. Called by the store on first insert.
func (o *Offer) SetID(id int) { o.ID = id }

// HasListing reports whether the listing id is part of the offer.
func (o *Offer) HasListing(listingID int) bool {
	for _, id := range o.ListingIDs {
		if id == listingID {
			return true
		}
	}
	return false
}
