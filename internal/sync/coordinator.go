package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ArinDixit06/prod-app/internal/domain"
	"github.com/ArinDixit06/prod-app/internal/store"
)

// ErrMissingUser fails a sync call that arrives without an owner.
var ErrMissingUser = errors.New("user id is required for sync")

// errIDTaken fails an item whose id resolves to another owner's record.
// Client-filed ids live in one namespace, so a collision must never turn
// into a decision against the foreign record.
var errIDTaken = errors.New("id is already in use")

// replaceAttempts bounds how often one item's read-decide-write sequence is
// retried after losing a conditional write to a concurrent batch.
const replaceAttempts = 3

// Coordinator applies sync batches. Collections are processed independently
// and items sequentially in input order; a later item may reference an id
// created earlier in the same batch.
type Coordinator struct {
	stores store.Stores
	log    zerolog.Logger
}

func New(stores store.Stores, log zerolog.Logger) *Coordinator {
	return &Coordinator{stores: stores, log: log}
}

// Batch is one sync call: the owner plus the client-held items per
// collection. Nil slices are empty collections.
type Batch struct {
	UserID        string
	Todos         []*domain.Task
	Notes         []*domain.Note
	CalendarTasks []*domain.CalendarEntry
}

// ItemOutcome is the per-item result, in input order. Record is the
// authoritative post-decision record; on failure it is nil and Err carries
// the reason.
type ItemOutcome struct {
	ID     string
	Record domain.Entity
	Failed bool
	Err    string
}

// Result carries the per-item outcomes and the full post-merge snapshots of
// everything the owner has, touched by this batch or not.
type Result struct {
	TodoOutcomes     []ItemOutcome
	NoteOutcomes     []ItemOutcome
	CalendarOutcomes []ItemOutcome

	Todos         []*domain.Task
	Notes         []*domain.Note
	CalendarTasks []*domain.CalendarEntry
}

// Sync reconciles the batch. One bad item never aborts the batch: its
// failure lands in the outcomes and processing moves on. Only a missing
// owner or a failed snapshot read fails the whole call.
func (c *Coordinator) Sync(ctx context.Context, b Batch) (*Result, error) {
	if b.UserID == "" {
		return nil, ErrMissingUser
	}

	res := &Result{
		TodoOutcomes:     syncCollection(ctx, c, "todo", b.UserID, b.Todos, c.stores.Tasks),
		NoteOutcomes:     syncCollection(ctx, c, "note", b.UserID, b.Notes, c.stores.Notes),
		CalendarOutcomes: syncCollection(ctx, c, "calendar task", b.UserID, b.CalendarTasks, c.stores.Calendar),
	}

	var err error
	if res.Todos, err = c.stores.Tasks.ListByOwner(ctx, b.UserID); err != nil {
		return nil, fmt.Errorf("read todo snapshot: %w", err)
	}
	if res.Notes, err = c.stores.Notes.ListByOwner(ctx, b.UserID); err != nil {
		return nil, fmt.Errorf("read note snapshot: %w", err)
	}
	if res.CalendarTasks, err = c.stores.Calendar.ListByOwner(ctx, b.UserID); err != nil {
		return nil, fmt.Errorf("read calendar snapshot: %w", err)
	}
	return res, nil
}

func syncCollection[T domain.Entity](ctx context.Context, c *Coordinator, kind, userID string, items []T, s store.Store[T]) []ItemOutcome {
	outcomes := make([]ItemOutcome, 0, len(items))
	for _, item := range items {
		rec, err := applyItem(ctx, userID, item, s)
		if err != nil {
			c.log.Warn().Err(err).Str("kind", kind).Str("id", item.GetID()).
				Msg("sync item failed")
			outcomes = append(outcomes, ItemOutcome{
				ID:     item.GetID(),
				Failed: true,
				Err:    err.Error(),
			})
			continue
		}
		outcomes = append(outcomes, ItemOutcome{ID: rec.GetID(), Record: rec})
	}
	return outcomes
}

// applyItem runs one item's read-decide-write sequence. The write is
// conditional on the updatedAt observed by the read; losing that condition
// to a concurrent batch re-runs the sequence so the other batch's write is
// never silently overwritten.
func applyItem[T domain.Entity](ctx context.Context, userID string, item T, s store.Store[T]) (T, error) {
	var zero T
	// Ownership comes from the batch owner, whatever the item claimed.
	item.SetUserID(userID)

	for attempt := 0; ; attempt++ {
		var existing domain.Entity
		var stored T
		if id := item.GetID(); id != "" {
			rec, err := s.Get(ctx, id)
			if err == nil {
				if rec.GetUserID() != userID {
					return zero, errIDTaken
				}
				existing = rec
				stored = rec
			} else if !errors.Is(err, store.ErrNotFound) {
				return zero, err
			}
		}

		switch Decide(item, existing) {
		case Create:
			if err := item.Validate(); err != nil {
				return zero, err
			}
			created, err := s.Create(ctx, item)
			if errors.Is(err, store.ErrConflict) && attempt < replaceAttempts {
				continue // a concurrent batch created this id first
			}
			return created, err
		case Replace:
			if err := item.Validate(); err != nil {
				return zero, err
			}
			updated, err := s.Replace(ctx, item, stored.GetUpdatedAt())
			if (errors.Is(err, store.ErrConflict) || errors.Is(err, store.ErrNotFound)) &&
				attempt < replaceAttempts {
				continue // stale read, re-read and re-decide
			}
			return updated, err
		default:
			return stored, nil
		}
	}
}
