package repositories

import (
	"context"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
)

// BudgetHistoryWriter appends budget entries.
type BudgetHistoryWriter interface {
	// AppendEntry stores entry, assigning its sequential ID and creation time.
	AppendEntry(ctx context.Context, entry domain.BudgetEntry) (*domain.BudgetEntry, error)
}

// BudgetHistoryReader reads budget entries.
type BudgetHistoryReader interface {
	// ListEntriesByEmail returns the entries recorded for email in insertion order.
	ListEntriesByEmail(ctx context.Context, email string) ([]domain.BudgetEntry, error)
}

// BudgetHistoryRepositoryFacade combines all budget history repository interfaces
type BudgetHistoryRepositoryFacade interface {
	BudgetHistoryWriter
	BudgetHistoryReader
}
