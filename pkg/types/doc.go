// Package types defines the entity records managed by the realty office
// tool (Client, Listing, Offer), the listing type enumeration, the error
// taxonomy shared by the store and service layers, and the backend Config.
package types
