package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindMatching(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matches error
	}{
		{"validation", NewValidation("first name is required"), ErrValidation},
		{"not found", NewNotFound("client", 7), ErrNotFound},
		{"business rule", NewBusinessRule("client already has an offer"), ErrBusinessRule},
		{"persistence", NewPersistence("read clients.json", errors.New("disk gone")), ErrPersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.matches)
			// Each error matches exactly one sentinel.
			for _, other := range []error{ErrValidation, ErrNotFound, ErrBusinessRule, ErrPersistence} {
				if other != tt.matches {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}
}

func TestErrorMatchingSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("add client: %w", NewValidation("last name is required"))
	assert.ErrorIs(t, err, ErrValidation)

	var tagged *Error
	require.ErrorAs(t, err, &tagged)
	assert.Equal(t, KindValidation, tagged.Kind)
}

func TestNotFoundMessageNamesEntity(t *testing.T) {
	err := NewNotFound("client", 7)
	assert.Equal(t, "client with id 7 not found", err.Error())
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewPersistence("write listings.json", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "write listings.json")
	assert.Contains(t, err.Error(), "permission denied")
}
