package types

import "time"

// MaxProposals is the cardinality limit on a client's proposal list.
const MaxProposals = 5

// Client represents an office client. DesiredType and DesiredPrice are
// optional purchase preferences used by AdvancedSearch and availability
// checks; ProposedListingIDs is the embedded proposal list maintained by
// ProposalService (at most MaxProposals entries, no duplicates).
type Client struct {
	ID                 int          `json:"id"`
	FirstName          string       `json:"first_name"`   // Required, non-empty.
	LastName           string       `json:"last_name"`    // Required, non-empty.
	BankAccount        string       `json:"bank_account"` // Required, digits only.
	ContactInfo        string       `json:"contact_info"` // Required, non-empty.
	DesiredType        *ListingType `json:"desired_type,omitempty"`
	DesiredPrice       int64        `json:"desired_price,omitempty"`
	ProposedListingIDs []int        `json:"proposed_listing_ids"`
	CreatedAt          time.Time    `json:"created_at"`
}

// GetID returns the client identity.
func (c *Client) GetID() int { return c.ID }

// SetID assigns the client identity. Called by the store on first insert.
func (c *Client) SetID(id int) { c.ID = id }

// FullName returns "FirstName LastName" for display.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// HasProposed reports whether the listing id is already on the client's
// proposal list.
func (c *Client) HasProposed(listingID int) bool {
	for _, id := range c.ProposedListingIDs {
		if id == listingID {
			return true
		}
	}
	return false
}
