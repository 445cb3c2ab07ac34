package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ArinDixit06/prod-app/internal/domain"
)

// Memory is a mutex-guarded in-memory Store. It mirrors the Postgres
// implementation's semantics, including the conditional replace, so the sync
// engine behaves identically against either.
type Memory[T domain.Entity] struct {
	mu    sync.Mutex
	items map[string]T
	clone func(T) T
}

// NewMemory builds an in-memory store. clone must return an independent copy
// so callers can never mutate stored state through a returned pointer.
func NewMemory[T domain.Entity](clone func(T) T) *Memory[T] {
	return &Memory[T]{
		items: make(map[string]T),
		clone: clone,
	}
}

func (m *Memory[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	return m.clone(item), nil
}

func (m *Memory[T]) ListByOwner(ctx context.Context, userID string) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0)
	for _, item := range m.items {
		if item.GetUserID() == userID {
			out = append(out, m.clone(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].GetCreatedAt().Equal(out[j].GetCreatedAt()) {
			return out[i].GetCreatedAt().Before(out[j].GetCreatedAt())
		}
		return out[i].GetID() < out[j].GetID()
	})
	return out, nil
}

func (m *Memory[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	item = m.clone(item)
	prepareCreate(item, time.Now().UTC())
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.items[item.GetID()]; exists {
		return zero, ErrConflict
	}
	m.items[item.GetID()] = item
	return m.clone(item), nil
}

func (m *Memory[T]) Replace(ctx context.Context, item T, expectedUpdatedAt time.Time) (T, error) {
	var zero T
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.items[item.GetID()]
	if !ok {
		return zero, ErrNotFound
	}
	if !current.GetUpdatedAt().Equal(expectedUpdatedAt) {
		return zero, ErrConflict
	}
	item = m.clone(item)
	// Owner and creation time are immutable once stored.
	item.SetUserID(current.GetUserID())
	item.SetCreatedAt(current.GetCreatedAt())
	m.items[item.GetID()] = item
	return m.clone(item), nil
}

func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// MemoryUsers is the in-memory UserStore.
type MemoryUsers struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (m *MemoryUsers) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	c := *u
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	key := strings.ToLower(c.Email)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}
	m.byID[c.ID] = &c
	m.byEmail[key] = &c
	out := c
	return &out, nil
}

func (m *MemoryUsers) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (m *MemoryUsers) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

// NewMemoryStores wires a full in-memory Stores bundle.
func NewMemoryStores() Stores {
	return Stores{
		Users: NewMemoryUsers(),
		Tasks: NewMemory(func(t *domain.Task) *domain.Task {
			c := *t
			if t.DueDate != nil {
				d := *t.DueDate
				c.DueDate = &d
			}
			return &c
		}),
		Notes: NewMemory(func(n *domain.Note) *domain.Note {
			c := *n
			return &c
		}),
		Calendar: NewMemory(func(e *domain.CalendarEntry) *domain.CalendarEntry {
			c := *e
			return &c
		}),
	}
}
