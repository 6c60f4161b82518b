package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
)

// BudgetHistoryRepository is an append-only, process-lifetime budget history.
// Entries are lost on restart.
type BudgetHistoryRepository struct {
	mu      sync.Mutex
	entries []domain.BudgetEntry
	now     func() time.Time
}

var _ portsrepo.BudgetHistoryRepositoryFacade = (*BudgetHistoryRepository)(nil)

// BudgetHistoryOption configures a BudgetHistoryRepository.
type BudgetHistoryOption func(*BudgetHistoryRepository)

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) BudgetHistoryOption {
	return func(r *BudgetHistoryRepository) {
		r.now = now
	}
}

// NewBudgetHistoryRepository creates an empty history.
func NewBudgetHistoryRepository(opts ...BudgetHistoryOption) *BudgetHistoryRepository {
	r := &BudgetHistoryRepository{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AppendEntry assigns the next sequential ID and a UTC timestamp, then stores
// the entry. Counting and appending happen under one lock so IDs never repeat
// or skip.
func (r *BudgetHistoryRepository) AppendEntry(_ context.Context, entry domain.BudgetEntry) (*domain.BudgetEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = int64(len(r.entries)) + 1
	entry.CreatedAt = r.now().UTC()
	r.entries = append(r.entries, entry)
	return &entry, nil
}

// ListEntriesByEmail returns the entries whose email matches exactly.
func (r *BudgetHistoryRepository) ListEntriesByEmail(_ context.Context, email string) ([]domain.BudgetEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := []domain.BudgetEntry{}
	for _, e := range r.entries {
		if e.Email == email {
			matches = append(matches, e)
		}
	}
	return matches, nil
}
