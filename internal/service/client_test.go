package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkotliar/realty/pkg/types"
)

func TestAddClientValidation(t *testing.T) {
	tests := []struct {
		name   string
		client *types.Client
	}{
		{
			name:   "missing first name",
			client: &types.Client{LastName: "Doe", BankAccount: "123", ContactInfo: "x@example.com"},
		},
		{
			name:   "whitespace last name",
			client: &types.Client{FirstName: "John", LastName: "   ", BankAccount: "123", ContactInfo: "x@example.com"},
		},
		{
			name:   "empty bank account",
			client: &types.Client{FirstName: "John", LastName: "Doe", ContactInfo: "x@example.com"},
		},
		{
			name:   "bank account with letters",
			client: &types.Client{FirstName: "John", LastName: "Doe", BankAccount: "12a4", ContactInfo: "x@example.com"},
		},
		{
			name:   "missing contact info",
			client: &types.Client{FirstName: "John", LastName: "Doe", BankAccount: "123"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.client.AddClient(tt.client)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrValidation)
			// The store is never touched on validation failure.
			assert.Equal(t, 0, f.clients.Count())
		})
	}
}

func TestAddClientAssignsIdentity(t *testing.T) {
	f := newFixture(t)

	john := f.addClient(t, "John", "Doe", "123")
	jane := f.addClient(t, "Jane", "Smith", "456")

	assert.Equal(t, 1, john.ID)
	assert.Equal(t, 2, jane.ID)
}

func TestGetByIDUnknownClient(t *testing.T) {
	f := newFixture(t)

	_, err := f.client.GetByID(42)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateClientUnknownID(t *testing.T) {
	f := newFixture(t)

	err := f.client.UpdateClient(&types.Client{
		ID: 9, FirstName: "No", LastName: "Body", BankAccount: "1", ContactInfo: "x@example.com",
	})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteClientUnknownID(t *testing.T) {
	f := newFixture(t)

	err := f.client.DeleteClient(9)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteClientRemovesIt(t *testing.T) {
	f := newFixture(t)
	john := f.addClient(t, "John", "Doe", "123")

	require.NoError(t, f.client.DeleteClient(john.ID))

	_, err := f.client.GetByID(john.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Empty(t, f.client.GetAll())
}

func TestUpdateClientRejectedLeavesRecordUntouched(t *testing.T) {
	f := newFixture(t)
	john := f.addClient(t, "John", "Doe", "123")

	// Mutating a copy keeps the stored record aliased nowhere.
	bad := *john
	bad.BankAccount = "12a4"
	err := f.client.UpdateClient(&bad)
	require.ErrorIs(t, err, types.ErrValidation)

	got, err := f.client.GetByID(john.ID)
	require.NoError(t, err)
	assert.Equal(t, "123", got.BankAccount)
}

func TestSearchMatchesAllTextFields(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "John", "Doe", "12399")
	f.addClient(t, "Jane", "Smith", "45678")

	tests := []struct {
		keyword string
		want    int
	}{
		{"doe", 1},     // last name, case-insensitive
		{"JANE", 1},    // first name, case-insensitive
		{"456", 1},     // bank account
		{"example", 2}, // contact info
		{"missing", 0}, // no match
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Len(t, f.client.Search(tt.keyword), tt.want)
		})
	}
}

func TestSearchBlankKeywordReturnsAll(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "John", "Doe", "123")
	f.addClient(t, "Jane", "Smith", "456")

	assert.Len(t, f.client.Search(""), 2)
	assert.Len(t, f.client.Search("   "), 2)
	assert.Equal(t, len(f.client.GetAll()), len(f.client.Search("")))
}

func TestAdvancedSearch(t *testing.T) {
	f := newFixture(t)

	oneRoom := types.OneRoomApartment
	twoRoom := types.TwoRoomApartment

	doe := f.addClient(t, "John", "Doe", "123")
	doe.DesiredType = &oneRoom
	require.NoError(t, f.client.UpdateClient(doe))

	smith := f.addClient(t, "Jane", "Smith", "456")
	smith.DesiredType = &twoRoom
	require.NoError(t, f.client.UpdateClient(smith))

	f.addClient(t, "Jim", "Smithson", "789") // no desired type

	t.Run("both filters absent returns all", func(t *testing.T) {
		assert.Len(t, f.client.AdvancedSearch("", nil), 3)
	})
	t.Run("last name only", func(t *testing.T) {
		assert.Len(t, f.client.AdvancedSearch("smith", nil), 2)
	})
	t.Run("desired type only", func(t *testing.T) {
		got := f.client.AdvancedSearch("", &oneRoom)
		require.Len(t, got, 1)
		assert.Equal(t, "Doe", got[0].LastName)
	})
	t.Run("both filters must match", func(t *testing.T) {
		got := f.client.AdvancedSearch("smith", &twoRoom)
		require.Len(t, got, 1)
		assert.Equal(t, "Smith", got[0].LastName)
	})
	t.Run("conflicting filters match nothing", func(t *testing.T) {
		assert.Empty(t, f.client.AdvancedSearch("doe", &twoRoom))
	})
}

func TestSortByLastName(t *testing.T) {
	f := newFixture(t)

	john := f.addClient(t, "John", "Doe", "123")
	require.Equal(t, 1, john.ID)
	jane := f.addClient(t, "Jane", "Smith", "456")
	require.Equal(t, 2, jane.ID)

	sorted := f.client.SortByLastName()
	require.Len(t, sorted, 2)
	assert.Equal(t, "Doe", sorted[0].LastName)
	assert.Equal(t, "Smith", sorted[1].LastName)
}

func TestSortByFirstName(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "Zoe", "Adams", "111")
	f.addClient(t, "Amy", "Zimmer", "222")

	sorted := f.client.SortByFirstName()
	require.Len(t, sorted, 2)
	assert.Equal(t, "Amy", sorted[0].FirstName)
	assert.Equal(t, "Zoe", sorted[1].FirstName)
}

func TestSortByBankAccountFirstDigit(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "John", "Doe", "911")
	f.addClient(t, "Jane", "Smith", "345")
	f.addClient(t, "Bob", "Brown", "145")

	sorted := f.client.SortByBankAccountFirstDigit()
	require.Len(t, sorted, 3)
	assert.Equal(t, "145", sorted[0].BankAccount)
	assert.Equal(t, "345", sorted[1].BankAccount)
	assert.Equal(t, "911", sorted[2].BankAccount)
}
