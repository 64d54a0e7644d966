package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkotliar/realty/internal/jsonfile"
	"github.com/vkotliar/realty/internal/store"
	"github.com/vkotliar/realty/pkg/types"
)

// fixture bundles freshly opened JSON-backed stores and services for one
// test. No journal is wired; services treat a nil journal as a no-op.
type fixture struct {
	clients   *store.Store[*types.Client]
	listings  *store.Store[*types.Listing]
	offers    *store.Store[*types.Offer]
	client    *ClientService
	listing   *ListingService
	proposals *ProposalService
	offer     *OfferService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	clients, err := store.New(jsonfile.New[*types.Client](filepath.Join(dir, "clients.json")))
	require.NoError(t, err)
	listings, err := store.New(jsonfile.New[*types.Listing](filepath.Join(dir, "listings.json")))
	require.NoError(t, err)
	offers, err := store.New(jsonfile.New[*types.Offer](filepath.Join(dir, "offers.json")))
	require.NoError(t, err)

	return &fixture{
		clients:   clients,
		listings:  listings,
		offers:    offers,
		client:    NewClientService(clients, nil),
		listing:   NewListingService(listings, nil),
		proposals: NewProposalService(clients, listings, nil),
		offer:     NewOfferService(offers, clients, listings, nil),
	}
}

// addClient stores a valid client and returns it.
func (f *fixture) addClient(t *testing.T, first, last, account string) *types.Client {
	t.Helper()
	c, err := f.client.AddClient(&types.Client{
		FirstName:   first,
		LastName:    last,
		BankAccount: account,
		ContactInfo: first + "@example.com",
	})
	require.NoError(t, err)
	return c
}

// addListing stores a valid listing and returns it.
func (f *fixture) addListing(t *testing.T, listingType types.ListingType, price int64, available bool) *types.Listing {
	t.Helper()
	l, err := f.listing.AddListing(&types.Listing{
		Type:      listingType,
		Address:   "12 Main St",
		Price:     price,
		Area:      38.5,
		Available: available,
	})
	require.NoError(t, err)
	return l
}
