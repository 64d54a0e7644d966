// Package service implements the referential business layer over the
// entity stores: input validation, strict not-found lookups, and the
// cross-entity rules for proposals and offers. Services hold no copies of
// store state; every read goes through a store so validation always sees
// current data.
//
// The strict policy applies throughout: GetByID, Update, and Delete on an
// unknown identity return a not-found error rather than an absence marker.
package service

import "strings"

// Entity family names used in not-found errors and journal entries.
const (
	entityClient  = "client"
	entityListing = "listing"
	entityOffer   = "offer"
)

// containsFold reports whether substr occurs in s, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// digitsOnly reports whether s consists solely of ASCII digits.
func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
