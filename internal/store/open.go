package store

import (
	"os"
	"path/filepath"

	"github.com/vkotliar/realty/internal/jsonfile"
	"github.com/vkotliar/realty/internal/sqlite"
	"github.com/vkotliar/realty/pkg/types"
)

// Backing file names for the JSON backend.
const (
	clientsFile  = "clients.json"
	listingsFile = "listings.json"
	offersFile   = "offers.json"
)

// Set bundles the three entity stores opened against one data dir.
type Set struct {
	Clients  *Store[*types.Client]
	Listings *Store[*types.Listing]
	Offers   *Store[*types.Offer]

	db *sqlite.DB // Non-nil only for the sqlite backend.
}

// Open validates the config, creates the data dir if needed, and opens the
// stores for the configured backend.
func Open(cfg types.Config) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, types.NewPersistence("create data dir", err)
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		return openSQLite(dataDir)
	default:
		return openJSON(dataDir)
	}
}

// Close releases backend resources. Idempotent; a no-op for the JSON
// backend.
func (s *Set) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func openJSON(dataDir string) (*Set, error) {
	clients, err := New(jsonfile.New[*types.Client](filepath.Join(dataDir, clientsFile)))
	if err != nil {
		return nil, err
	}
	listings, err := New(jsonfile.New[*types.Listing](filepath.Join(dataDir, listingsFile)))
	if err != nil {
		return nil, err
	}
	offers, err := New(jsonfile.New[*types.Offer](filepath.Join(dataDir, offersFile)))
	if err != nil {
		return nil, err
	}
	return &Set{Clients: clients, Listings: listings, Offers: offers}, nil
}

func openSQLite(dataDir string) (*Set, error) {
	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, err
	}
	clients, err := New(sqlite.NewPersister[*types.Client](db, sqlite.TableClients))
	if err != nil {
		db.Close()
		return nil, err
	}
	listings, err := New(sqlite.NewPersister[*types.Listing](db, sqlite.TableListings))
	if err != nil {
		db.Close()
		return nil, err
	}
	offers, err := New(sqlite.NewPersister[*types.Offer](db, sqlite.TableOffers))
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Set{Clients: clients, Listings: listings, Offers: offers, db: db}, nil
}
