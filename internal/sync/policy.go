// Package sync reconciles batches of client-held records against server
// state with a last-write-wins policy and returns full per-owner snapshots.
package sync

import "github.com/ArinDixit06/prod-app/internal/domain"

// Decision is the outcome of reconciling one incoming item against the
// stored record, if any.
type Decision int

const (
	// Create inserts the incoming item as a new record.
	Create Decision = iota
	// Replace overwrites the stored record wholesale with the incoming item.
	Replace
	// KeepExisting discards the incoming item and keeps the stored record.
	KeepExisting
)

func (d Decision) String() string {
	switch d {
	case Create:
		return "create"
	case Replace:
		return "replace"
	case KeepExisting:
		return "keep"
	default:
		return "unknown"
	}
}

// Decide picks what to do with an incoming item. existing is nil when no
// stored record matches the item's id.
//
// The comparison is a strict "after": an incoming timestamp equal to the
// stored one keeps the server version. Ties favoring the server is a policy
// choice, not an accident; it is also what makes replaying an
// already-applied batch a no-op.
func Decide(incoming, existing domain.Entity) Decision {
	if existing == nil {
		return Create
	}
	if incoming.GetUpdatedAt().After(existing.GetUpdatedAt()) {
		return Replace
	}
	return KeepExisting
}
