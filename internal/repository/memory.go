package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fittrack-be/internal/entities"
)

// InMemoryUserRepository stores users in memory for local development and tests.
type InMemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entities.User
}

// NewInMemoryUserRepository constructs an empty repository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{byEmail: make(map[string]entities.User)}
}

// Create implements UserRepository.
func (r *InMemoryUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, ErrDuplicateEmail
	}

	created := *user
	created.ID = uuid.NewString()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	r.byEmail[created.Email] = created

	out := created
	return &out, nil
}

// FindByEmail implements UserRepository.
func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

type storedEntry struct {
	seq   uint64
	entry entities.FitnessEntry
}

// InMemoryFitnessRepository keeps entries in insertion order.
type InMemoryFitnessRepository struct {
	mu      sync.RWMutex
	seq     uint64
	entries []storedEntry
}

// NewInMemoryFitnessRepository constructs an empty repository.
func NewInMemoryFitnessRepository() *InMemoryFitnessRepository {
	return &InMemoryFitnessRepository{}
}

// Insert implements FitnessRepository.
func (r *InMemoryFitnessRepository) Insert(ctx context.Context, entry *entities.FitnessEntry) (*entities.FitnessEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	created := *entry
	created.ID = uuid.NewString()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	r.entries = append(r.entries, storedEntry{seq: r.seq, entry: created})

	out := created
	return &out, nil
}

// ListByEmail implements FitnessRepository.
func (r *InMemoryFitnessRepository) ListByEmail(ctx context.Context, email string) ([]*entities.FitnessEntry, error) {
	return r.collect(func(e entities.FitnessEntry) bool { return e.Email == email }), nil
}

// FindLatest implements FitnessRepository.
func (r *InMemoryFitnessRepository) FindLatest(ctx context.Context, email, entryType string) (*entities.FitnessEntry, error) {
	matches := r.collect(func(e entities.FitnessEntry) bool {
		return e.Email == email && e.Type == entryType
	})
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches[0], nil
}

// collect returns copies of matching entries ordered date desc, then insertion desc.
func (r *InMemoryFitnessRepository) collect(match func(entities.FitnessEntry) bool) []*entities.FitnessEntry {
	r.mu.RLock()
	matched := make([]storedEntry, 0)
	for _, stored := range r.entries {
		if match(stored.entry) {
			matched = append(matched, stored)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].entry.Date != matched[j].entry.Date {
			return matched[i].entry.Date > matched[j].entry.Date
		}
		return matched[i].seq > matched[j].seq
	})

	out := make([]*entities.FitnessEntry, 0, len(matched))
	for i := range matched {
		entry := matched[i].entry
		out = append(out, &entry)
	}
	return out
}
