// Package sqlite is the alternate persistence backend. Each entity type
// maps to one table of (id, data) rows where data is the JSON-encoded
// record; Save rewrites the table in a single transaction, preserving the
// whole-collection-rewrite contract of the default JSON backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/vkotliar/realty/pkg/types"
)

// Table names, one per entity family.
const (
	TableClients  = "clients"
	TableListings = "listings"
	TableOffers   = "offers"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS clients (
	id   INTEGER PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS listings (
	id   INTEGER PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS offers (
	id   INTEGER PRIMARY KEY,
	data TEXT NOT NULL
);
`

// DB owns the shared SQLite handle for all entity tables in one data dir.
type DB struct {
	db *sql.DB
}

// Open creates the data dir if needed, opens realty.db inside it, and
// applies the schema.
func Open(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, types.NewPersistence(fmt.Sprintf("create %s", dataDir), err)
	}
	path := filepath.Join(dataDir, "realty.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, types.NewPersistence(fmt.Sprintf("open %s", path), err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, types.NewPersistence("apply schema", err)
	}
	return &DB{db: db}, nil
}

// Close releases the SQLite handle. Idempotent.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// Persister loads and saves one entity collection from its table.
// T must be a pointer entity type so decoding can allocate records.
type Persister[T any] struct {
	db    *sql.DB
	table string
}

// NewPersister returns a Persister over the named table of d.
func NewPersister[T any](d *DB, table string) *Persister[T] {
	return &Persister[T]{db: d.db, table: table}
}

// Load selects every row and decodes the JSON payloads. A row that fails
// to decode is a persistence failure, not a skip.
func (p *Persister[T]) Load() ([]T, error) {
	rows, err := p.db.Query(fmt.Sprintf("SELECT data FROM %s ORDER BY id", p.table))
	if err != nil {
		return nil, types.NewPersistence(fmt.Sprintf("query %s", p.table), err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, types.NewPersistence(fmt.Sprintf("scan %s", p.table), err)
		}
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, types.NewPersistence(fmt.Sprintf("decode %s row", p.table), err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewPersistence(fmt.Sprintf("iterate %s", p.table), err)
	}
	return items, nil
}

// Save rewrites the table with the given collection in one transaction.
func (p *Persister[T]) Save(items []T) error {
	tx, err := p.db.Begin()
	if err != nil {
		return types.NewPersistence("begin transaction", err)
	}
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", p.table)); err != nil {
		tx.Rollback()
		return types.NewPersistence(fmt.Sprintf("clear %s", p.table), err)
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (id, data) VALUES (?, ?)", p.table))
	if err != nil {
		tx.Rollback()
		return types.NewPersistence(fmt.Sprintf("prepare insert into %s", p.table), err)
	}
	defer stmt.Close()

	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			tx.Rollback()
			return types.NewPersistence(fmt.Sprintf("encode %s row", p.table), err)
		}
		id := recordID(item)
		if _, err := stmt.Exec(id, data); err != nil {
			tx.Rollback()
			return types.NewPersistence(fmt.Sprintf("insert into %s", p.table), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return types.NewPersistence(fmt.Sprintf("commit %s", p.table), err)
	}
	return nil
}

// recordID extracts the integer identity when the item exposes one.
// Rows keep their entity id as primary key so the files stay inspectable
// with plain SQL.
func recordID(item any) any {
	type identified interface{ GetID() int }
	if r, ok := item.(identified); ok {
		return r.GetID()
	}
	return nil
}
