package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkotliar/realty/pkg/types"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadEmptyTable(t *testing.T) {
	db := openTestDB(t)
	p := NewPersister[*types.Client](db, TableClients)

	items, err := p.Load()
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	p := NewPersister[*types.Listing](db, TableListings)

	saved := []*types.Listing{
		{ID: 1, Type: types.OneRoomApartment, Address: "12 Main St", Price: 100000, Area: 38.5, Available: true},
		{ID: 3, Type: types.PrivatePlot, Address: "Old Rd 4", Price: 55000, Area: 600, Available: false},
	}
	require.NoError(t, p.Save(saved))

	loaded, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveRewritesTable(t *testing.T) {
	db := openTestDB(t)
	p := NewPersister[*types.Client](db, TableClients)

	require.NoError(t, p.Save([]*types.Client{
		{ID: 1, FirstName: "John", LastName: "Doe", BankAccount: "123"},
		{ID: 2, FirstName: "Jane", LastName: "Smith", BankAccount: "456"},
	}))
	require.NoError(t, p.Save([]*types.Client{
		{ID: 2, FirstName: "Jane", LastName: "Smith", BankAccount: "456"},
	}))

	loaded, err := p.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].ID)
}

func TestTablesAreIndependent(t *testing.T) {
	db := openTestDB(t)
	clients := NewPersister[*types.Client](db, TableClients)
	offers := NewPersister[*types.Offer](db, TableOffers)

	require.NoError(t, clients.Save([]*types.Client{{ID: 1, FirstName: "John"}}))
	require.NoError(t, offers.Save([]*types.Offer{{ID: 1, ClientID: 1, ListingIDs: []int{2}}}))

	loadedClients, err := clients.Load()
	require.NoError(t, err)
	loadedOffers, err := offers.Load()
	require.NoError(t, err)

	assert.Len(t, loadedClients, 1)
	require.Len(t, loadedOffers, 1)
	assert.Equal(t, []int{2}, loadedOffers[0].ListingIDs)
}

func TestCloseIdempotent(t *testing.T) {
	db, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, db.Close())
	require.NoError(t, db.Close())
}
