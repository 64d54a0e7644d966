package service

import (
	"slices"

	"github.com/vkotliar/realty/internal/journal"
	"github.com/vkotliar/realty/internal/store"
	"github.com/vkotliar/realty/pkg/types"
)

// ProposalService maintains the proposal list embedded on each client and
// enforces the cross-entity rules around it. It reads both stores so every
// check sees current state.
type ProposalService struct {
	clients  *store.Store[*types.Client]
	listings *store.Store[*types.Listing]
	journal  *journal.Journal
}

// NewProposalService returns a ProposalService over the given stores. The
// journal may be nil.
func NewProposalService(clients *store.Store[*types.Client], listings *store.Store[*types.Listing], j *journal.Journal) *ProposalService {
	return &ProposalService{clients: clients, listings: listings, journal: j}
}

// AddToProposal links a listing to a client's proposal list. Both entities
// must exist; the check runs before any mutation. A client may hold at
// most types.MaxProposals proposals, and the limit is checked before the
// duplicate check, so adding at the cap fails even for a listing already
// on the list. Under the cap, re-proposing a listing is idempotent.
func (s *ProposalService) AddToProposal(clientID, listingID int) error {
	client, ok := s.clients.GetByID(clientID)
	if !ok {
		return types.NewNotFound(entityClient, clientID)
	}
	if _, ok := s.listings.GetByID(listingID); !ok {
		return types.NewNotFound(entityListing, listingID)
	}
	if len(client.ProposedListingIDs) >= types.MaxProposals {
		return types.NewBusinessRule("client already has the maximum number of proposed listings")
	}
	if client.HasProposed(listingID) {
		return nil
	}
	client.ProposedListingIDs = append(client.ProposedListingIDs, listingID)
	if err := s.clients.Update(client); err != nil {
		return err
	}
	_ = s.journal.Record(entityClient, "propose", clientID)
	return nil
}

// RemoveFromProposal unlinks a listing from a client's proposal list.
// Removing an id that is not on the list is a no-op. The client must
// exist.
func (s *ProposalService) RemoveFromProposal(clientID, listingID int) error {
	client, ok := s.clients.GetByID(clientID)
	if !ok {
		return types.NewNotFound(entityClient, clientID)
	}
	if !client.HasProposed(listingID) {
		return nil
	}
	client.ProposedListingIDs = slices.DeleteFunc(client.ProposedListingIDs, func(id int) bool {
		return id == listingID
	})
	if err := s.clients.Update(client); err != nil {
		return err
	}
	_ = s.journal.Record(entityClient, "unpropose", clientID)
	return nil
}

// GetClientProposals resolves the client's proposed listing ids through
// the listing store. Ids that no longer resolve (listing deleted after
// being proposed) are silently skipped; the result is the currently
// resolvable subset.
func (s *ProposalService) GetClientProposals(clientID int) ([]*types.Listing, error) {
	client, ok := s.clients.GetByID(clientID)
	if !ok {
		return nil, types.NewNotFound(entityClient, clientID)
	}
	var out []*types.Listing
	for _, id := range client.ProposedListingIDs {
		if l, ok := s.listings.GetByID(id); ok {
			out = append(out, l)
		}
	}
	return out, nil
}

// CheckAvailability reports whether at least one available listing of the
// given type is priced at or under maxPrice.
func (s *ProposalService) CheckAvailability(listingType types.ListingType, maxPrice int64) bool {
	for _, l := range s.listings.GetAll() {
		if l.Type == listingType && l.Price <= maxPrice && l.Available {
			return true
		}
	}
	return false
}
