// Package domain holds the entities served by the API: users and the three
// synchronizable record kinds (tasks, notes, calendar entries).
package domain

import "time"

// Entity is implemented by every synchronizable record kind. The sync engine
// and the stores only ever touch records through this surface; the
// kind-specific fields stay opaque to them.
type Entity interface {
	GetID() string
	SetID(id string)
	GetUserID() string
	SetUserID(id string)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	GetUpdatedAt() time.Time
	SetUpdatedAt(t time.Time)
	Validate() error
}
