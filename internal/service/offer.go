package service

import (
	"slices"
	"time"

	"github.com/vkotliar/realty/internal/journal"
	"github.com/vkotliar/realty/internal/store"
	"github.com/vkotliar/realty/pkg/types"
)

// OfferService manages standalone offers. The hard invariant is at most
// one offer on file per client, checked before every insert.
type OfferService struct {
	offers   *store.Store[*types.Offer]
	clients  *store.Store[*types.Client]
	listings *store.Store[*types.Listing]
	journal  *journal.Journal
}

// NewOfferService returns an OfferService over the given stores. The
// journal may be nil.
func NewOfferService(offers *store.Store[*types.Offer], clients *store.Store[*types.Client], listings *store.Store[*types.Listing], j *journal.Journal) *OfferService {
	return &OfferService{offers: offers, clients: clients, listings: listings, journal: j}
}

// validateOffer checks the offer shape and that every referenced listing
// exists. Runs before any store mutation.
func (s *OfferService) validateOffer(o *types.Offer) error {
	if o == nil {
		return types.NewValidation("offer is required")
	}
	if o.ClientID <= 0 {
		return types.NewValidation("client id is required")
	}
	if len(o.ListingIDs) == 0 {
		return types.NewValidation("offer must reference at least one listing")
	}
	for _, id := range o.ListingIDs {
		if _, ok := s.listings.GetByID(id); !ok {
			return types.NewNotFound(entityListing, id)
		}
	}
	return nil
}

// clientHasOffer reports whether an offer is already on file for the
// client.
func (s *OfferService) clientHasOffer(clientID int) bool {
	for _, o := range s.offers.GetAll() {
		if o.ClientID == clientID {
			return true
		}
	}
	return false
}

// CreateOffer validates and stores a new offer. The client must exist, and
// a client with an offer already on file is a business-rule violation.
func (s *OfferService) CreateOffer(o *types.Offer) (*types.Offer, error) {
	if err := s.validateOffer(o); err != nil {
		return nil, err
	}
	if _, ok := s.clients.GetByID(o.ClientID); !ok {
		return nil, types.NewNotFound(entityClient, o.ClientID)
	}
	if s.clientHasOffer(o.ClientID) {
		return nil, types.NewBusinessRule("client already has an offer")
	}
	if o.OfferedAt.IsZero() {
		o.OfferedAt = time.Now().UTC()
	}
	added, err := s.offers.Add(o)
	if err != nil {
		return nil, err
	}
	_ = s.journal.Record(entityOffer, "create", added.ID)
	return added, nil
}

// UpdateOffer validates and replaces an existing offer. Returns a
// not-found error when the identity is unknown.
func (s *OfferService) UpdateOffer(o *types.Offer) error {
	if err := s.validateOffer(o); err != nil {
		return err
	}
	if _, ok := s.offers.GetByID(o.ID); !ok {
		return types.NewNotFound(entityOffer, o.ID)
	}
	if err := s.offers.Update(o); err != nil {
		return err
	}
	_ = s.journal.Record(entityOffer, "update", o.ID)
	return nil
}

// DeleteOffer removes an offer. Returns a not-found error when the
// identity is unknown. Deletion is terminal; there is no offer state
// beyond existence.
func (s *OfferService) DeleteOffer(id int) error {
	if _, ok := s.offers.GetByID(id); !ok {
		return types.NewNotFound(entityOffer, id)
	}
	if err := s.offers.Delete(id); err != nil {
		return err
	}
	_ = s.journal.Record(entityOffer, "delete", id)
	return nil
}

// GetByID returns the offer with the given identity or a not-found error.
func (s *OfferService) GetByID(id int) (*types.Offer, error) {
	o, ok := s.offers.GetByID(id)
	if !ok {
		return nil, types.NewNotFound(entityOffer, id)
	}
	return o, nil
}

// GetAll returns all offers.
func (s *OfferService) GetAll() []*types.Offer {
	return s.offers.GetAll()
}

// GetClientOffers returns the offers on file for a client. The result is
// empty or a single offer while the one-offer-per-client invariant holds,
// but the scan tolerates legacy data with more.
func (s *OfferService) GetClientOffers(clientID int) []*types.Offer {
	var out []*types.Offer
	for _, o := range s.offers.GetAll() {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out
}

// AddListingToOffer links a listing to an existing offer. Both must
// exist; adding a listing already on the offer is idempotent.
func (s *OfferService) AddListingToOffer(offerID, listingID int) error {
	offer, ok := s.offers.GetByID(offerID)
	if !ok {
		return types.NewNotFound(entityOffer, offerID)
	}
	if _, ok := s.listings.GetByID(listingID); !ok {
		return types.NewNotFound(entityListing, listingID)
	}
	if offer.HasListing(listingID) {
		return nil
	}
	offer.ListingIDs = append(offer.ListingIDs, listingID)
	if err := s.offers.Update(offer); err != nil {
		return err
	}
	_ = s.journal.Record(entityOffer, "add_listing", offerID)
	return nil
}

// RemoveListingFromOffer unlinks a listing from an offer and drops any
// recorded response for it. Removing a listing not on the offer is a
// no-op.
func (s *OfferService) RemoveListingFromOffer(offerID, listingID int) error {
	offer, ok := s.offers.GetByID(offerID)
	if !ok {
		return types.NewNotFound(entityOffer, offerID)
	}
	if !offer.HasListing(listingID) {
		return nil
	}
	offer.ListingIDs = slices.DeleteFunc(offer.ListingIDs, func(id int) bool {
		return id == listingID
	})
	delete(offer.Responses, listingID)
	if err := s.offers.Update(offer); err != nil {
		return err
	}
	_ = s.journal.Record(entityOffer, "remove_listing", offerID)
	return nil
}

// RecordResponse stores the client's accept/decline decision for one
// listing on the offer. The listing must be part of the offer.
func (s *OfferService) RecordResponse(offerID, listingID int, accepted bool) error {
	offer, ok := s.offers.GetByID(offerID)
	if !ok {
		return types.NewNotFound(entityOffer, offerID)
	}
	if !offer.HasListing(listingID) {
		return types.NewBusinessRule("listing is not part of the offer")
	}
	if offer.Responses == nil {
		offer.Responses = make(map[int]bool)
	}
	offer.Responses[listingID] = accepted
	if err := s.offers.Update(offer); err != nil {
		return err
	}
	_ = s.journal.Record(entityOffer, "respond", offerID)
	return nil
}
