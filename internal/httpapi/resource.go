package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ArinDixit06/prod-app/internal/auth"
	"github.com/ArinDixit06/prod-app/internal/domain"
	"github.com/ArinDixit06/prod-app/internal/store"
)

// resource is the CRUD handler set for one record kind. The three kinds
// only differ in their field set, so one parameterized handler serves all
// of them; patch folds a PUT body onto the stored record, kind by kind.
type resource[T domain.Entity] struct {
	label string
	store store.Store[T]
	blank func() T
	patch func(c *fiber.Ctx, dst T) error
}

func newResource[T domain.Entity](label string, s store.Store[T], blank func() T, patch func(*fiber.Ctx, T) error) *resource[T] {
	return &resource[T]{label: label, store: s, blank: blank, patch: patch}
}

func (r *resource[T]) register(g fiber.Router) {
	g.Get("/", r.list)
	g.Post("/", r.create)
	g.Put("/:id", r.update)
	g.Delete("/:id", r.delete)
}

func (r *resource[T]) list(c *fiber.Ctx) error {
	items, err := r.store.ListByOwner(c.Context(), auth.UserID(c))
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(items)
}

func (r *resource[T]) create(c *fiber.Ctx) error {
	item := r.blank()
	if err := c.BodyParser(item); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	// The server owns identity and clocks on direct writes.
	item.SetID("")
	item.SetUserID(auth.UserID(c))
	item.SetCreatedAt(time.Time{})
	item.SetUpdatedAt(time.Time{})
	if err := item.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	created, err := r.store.Create(c.Context(), item)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// fetchOwned loads the record and checks ownership. A foreign record and a
// missing one are indistinguishable to the caller.
func (r *resource[T]) fetchOwned(c *fiber.Ctx) (T, error) {
	var zero T
	item, err := r.store.Get(c.Context(), c.Params("id"))
	if err != nil {
		return zero, err
	}
	if item.GetUserID() != auth.UserID(c) {
		return zero, store.ErrNotFound
	}
	return item, nil
}

func (r *resource[T]) update(c *fiber.Ctx) error {
	existing, err := r.fetchOwned(c)
	if errors.Is(err, store.ErrNotFound) {
		return respondError(c, fiber.StatusNotFound, r.label+" not found or unauthorized", nil)
	}
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}

	observed := existing.GetUpdatedAt()
	if err := r.patch(c, existing); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := existing.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	// A synced record can carry a future updatedAt; the stamp must still
	// move forward or the edit would lose a later reconciliation.
	now := time.Now().UTC()
	if !now.After(observed) {
		now = observed.Add(time.Millisecond)
	}
	existing.SetUpdatedAt(now)

	updated, err := r.store.Replace(c.Context(), existing, observed)
	if errors.Is(err, store.ErrConflict) {
		return respondError(c, fiber.StatusConflict, r.label+" was modified concurrently, retry", nil)
	}
	if errors.Is(err, store.ErrNotFound) {
		return respondError(c, fiber.StatusNotFound, r.label+" not found or unauthorized", nil)
	}
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(updated)
}

func (r *resource[T]) delete(c *fiber.Ctx) error {
	existing, err := r.fetchOwned(c)
	if errors.Is(err, store.ErrNotFound) {
		return respondError(c, fiber.StatusNotFound, r.label+" not found or unauthorized", nil)
	}
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	if err := r.store.Delete(c.Context(), existing.GetID()); err != nil && !errors.Is(err, store.ErrNotFound) {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(fiber.Map{"msg": r.label + " removed"})
}
