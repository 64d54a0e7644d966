package service

import (
	"slices"
	"strconv"
	"time"

	"github.com/vkotliar/realty/internal/journal"
	"github.com/vkotliar/realty/internal/store"
	"github.com/vkotliar/realty/pkg/types"
)

// ListingService manages the real-estate listing collection.
type ListingService struct {
	listings *store.Store[*types.Listing]
	journal  *journal.Journal
}

// NewListingService returns a ListingService over the given store. The
// journal may be nil.
func NewListingService(listings *store.Store[*types.Listing], j *journal.Journal) *ListingService {
	return &ListingService{listings: listings, journal: j}
}

// validateListing checks the required listing fields. Runs before any
// store mutation.
func validateListing(l *types.Listing) error {
	if l == nil {
		return types.NewValidation("listing is required")
	}
	if !l.Type.Valid() {
		return types.NewValidation("type is not a known listing type")
	}
	if isBlank(l.Address) {
		return types.NewValidation("address is required")
	}
	if l.Price <= 0 {
		return types.NewValidation("price must be greater than 0")
	}
	if l.Area <= 0 {
		return types.NewValidation("area must be greater than 0")
	}
	return nil
}

// AddListing validates and stores a new listing, returning it with its
// assigned identity. Availability is taken as given; the CLI defaults new
// listings to available.
func (s *ListingService) AddListing(l *types.Listing) (*types.Listing, error) {
	if err := validateListing(l); err != nil {
		return nil, err
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	added, err := s.listings.Add(l)
	if err != nil {
		return nil, err
	}
	_ = s.journal.Record(entityListing, "add", added.ID)
	return added, nil
}

// UpdateListing validates and replaces an existing listing. Returns a
// not-found error when the identity is unknown.
func (s *ListingService) UpdateListing(l *types.Listing) error {
	if err := validateListing(l); err != nil {
		return err
	}
	if _, ok := s.listings.GetByID(l.ID); !ok {
		return types.NewNotFound(entityListing, l.ID)
	}
	if err := s.listings.Update(l); err != nil {
		return err
	}
	_ = s.journal.Record(entityListing, "update", l.ID)
	return nil
}

// DeleteListing removes a listing. Returns a not-found error when the
// identity is unknown. Proposal lists referencing the listing are not
// cleaned up; GetClientProposals skips identities that no longer resolve.
func (s *ListingService) DeleteListing(id int) error {
	if _, ok := s.listings.GetByID(id); !ok {
		return types.NewNotFound(entityListing, id)
	}
	if err := s.listings.Delete(id); err != nil {
		return err
	}
	_ = s.journal.Record(entityListing, "delete", id)
	return nil
}

// GetByID returns the listing with the given identity or a not-found
// error.
func (s *ListingService) GetByID(id int) (*types.Listing, error) {
	l, ok := s.listings.GetByID(id)
	if !ok {
		return nil, types.NewNotFound(entityListing, id)
	}
	return l, nil
}

// GetAll returns all listings, available or not.
func (s *ListingService) GetAll() []*types.Listing {
	return s.listings.GetAll()
}

// Search returns listings whose address, type name, price, or room count
// contains the keyword, case-insensitively. A blank keyword returns the
// full collection. Unlike FindByCriteria, Search does not filter by
// availability.
func (s *ListingService) Search(keyword string) []*types.Listing {
	all := s.listings.GetAll()
	if isBlank(keyword) {
		return all
	}
	var out []*types.Listing
	for _, l := range all {
		if containsFold(l.Address, keyword) ||
			containsFold(l.Type.String(), keyword) ||
			containsFold(strconv.FormatInt(l.Price, 10), keyword) ||
			containsFold(strconv.Itoa(l.Rooms), keyword) {
			out = append(out, l)
		}
	}
	return out
}

// FindByCriteria returns available listings matching the optional type and
// price bounds. When both bounds are given the price must lie within
// [minPrice, maxPrice]. Only listings with Available set are returned.
func (s *ListingService) FindByCriteria(listingType *types.ListingType, minPrice, maxPrice *int64) []*types.Listing {
	var out []*types.Listing
	for _, l := range s.listings.GetAll() {
		if !l.Available {
			continue
		}
		if listingType != nil && l.Type != *listingType {
			continue
		}
		if minPrice != nil && l.Price < *minPrice {
			continue
		}
		if maxPrice != nil && l.Price > *maxPrice {
			continue
		}
		out = append(out, l)
	}
	return out
}

// SortByType returns all listings in stable ascending enumeration order.
func (s *ListingService) SortByType() []*types.Listing {
	out := s.listings.GetAll()
	slices.SortStableFunc(out, func(a, b *types.Listing) int {
		return int(a.Type) - int(b.Type)
	})
	return out
}

// SortByPrice returns all listings in stable ascending price order.
func (s *ListingService) SortByPrice() []*types.Listing {
	out := s.listings.GetAll()
	slices.SortStableFunc(out, func(a, b *types.Listing) int {
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		default:
			return 0
		}
	})
	return out
}
