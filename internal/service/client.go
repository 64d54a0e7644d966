package service

import (
	"slices"
	"strings"
	"time"

	"github.com/vkotliar/realty/internal/journal"
	"github.com/vkotliar/realty/internal/store"
	"github.com/vkotliar/realty/pkg/types"
)

// ClientService manages the client collection.
type ClientService struct {
	clients *store.Store[*types.Client]
	journal *journal.Journal
}

// NewClientService returns a ClientService over the given store. The
// journal may be nil.
func NewClientService(clients *store.Store[*types.Client], j *journal.Journal) *ClientService {
	return &ClientService{clients: clients, journal: j}
}

// validateClient checks the required client fields. Runs before any store
// mutation.
func validateClient(c *types.Client) error {
	if c == nil {
		return types.NewValidation("client is required")
	}
	if isBlank(c.FirstName) {
		return types.NewValidation("first name is required")
	}
	if isBlank(c.LastName) {
		return types.NewValidation("last name is required")
	}
	if !digitsOnly(c.BankAccount) {
		return types.NewValidation("bank account must contain only digits")
	}
	if isBlank(c.ContactInfo) {
		return types.NewValidation("contact info is required")
	}
	if c.DesiredType != nil && !c.DesiredType.Valid() {
		return types.NewValidation("desired type is not a known listing type")
	}
	return nil
}

// AddClient validates and stores a new client, returning it with its
// assigned identity.
func (s *ClientService) AddClient(c *types.Client) (*types.Client, error) {
	if err := validateClient(c); err != nil {
		return nil, err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	added, err := s.clients.Add(c)
	if err != nil {
		return nil, err
	}
	_ = s.journal.Record(entityClient, "add", added.ID)
	return added, nil
}

// UpdateClient validates and replaces an existing client. Returns a
// not-found error when the identity is unknown.
func (s *ClientService) UpdateClient(c *types.Client) error {
	if err := validateClient(c); err != nil {
		return err
	}
	if _, ok := s.clients.GetByID(c.ID); !ok {
		return types.NewNotFound(entityClient, c.ID)
	}
	if err := s.clients.Update(c); err != nil {
		return err
	}
	_ = s.journal.Record(entityClient, "update", c.ID)
	return nil
}

// DeleteClient removes a client. Returns a not-found error when the
// identity is unknown. Dangling proposal references held by offers are
// not cleaned up.
func (s *ClientService) DeleteClient(id int) error {
	if _, ok := s.clients.GetByID(id); !ok {
		return types.NewNotFound(entityClient, id)
	}
	if err := s.clients.Delete(id); err != nil {
		return err
	}
	_ = s.journal.Record(entityClient, "delete", id)
	return nil
}

// GetByID returns the client with the given identity or a not-found error.
func (s *ClientService) GetByID(id int) (*types.Client, error) {
	c, ok := s.clients.GetByID(id)
	if !ok {
		return nil, types.NewNotFound(entityClient, id)
	}
	return c, nil
}

// GetAll returns all clients.
func (s *ClientService) GetAll() []*types.Client {
	return s.clients.GetAll()
}

// Search returns clients whose first name, last name, bank account, or
// contact info contains the keyword, case-insensitively. A blank keyword
// returns the full collection.
func (s *ClientService) Search(keyword string) []*types.Client {
	all := s.clients.GetAll()
	if isBlank(keyword) {
		return all
	}
	var out []*types.Client
	for _, c := range all {
		if containsFold(c.FirstName, keyword) ||
			containsFold(c.LastName, keyword) ||
			containsFold(c.BankAccount, keyword) ||
			containsFold(c.ContactInfo, keyword) {
			out = append(out, c)
		}
	}
	return out
}

// AdvancedSearch filters by last-name substring and desired listing type.
// Each filter is independently optional; both present means both must
// match. Both absent returns all clients.
func (s *ClientService) AdvancedSearch(lastName string, desiredType *types.ListingType) []*types.Client {
	var out []*types.Client
	for _, c := range s.clients.GetAll() {
		if !isBlank(lastName) && !containsFold(c.LastName, lastName) {
			continue
		}
		if desiredType != nil && (c.DesiredType == nil || *c.DesiredType != *desiredType) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortByFirstName returns all clients in stable ascending first-name order.
func (s *ClientService) SortByFirstName() []*types.Client {
	out := s.clients.GetAll()
	slices.SortStableFunc(out, func(a, b *types.Client) int {
		return strings.Compare(a.FirstName, b.FirstName)
	})
	return out
}

// SortByLastName returns all clients in stable ascending last-name order.
func (s *ClientService) SortByLastName() []*types.Client {
	out := s.clients.GetAll()
	slices.SortStableFunc(out, func(a, b *types.Client) int {
		return strings.Compare(a.LastName, b.LastName)
	})
	return out
}

// SortByBankAccountFirstDigit returns all clients ordered by the first
// character of their bank account number, stable ascending.
func (s *ClientService) SortByBankAccountFirstDigit() []*types.Client {
	out := s.clients.GetAll()
	slices.SortStableFunc(out, func(a, b *types.Client) int {
		return int(firstByte(a.BankAccount)) - int(firstByte(b.BankAccount))
	})
	return out
}

// firstByte returns the first byte of s, or 0 for an empty string.
func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
