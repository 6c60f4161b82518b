package memory_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	"github.com/SscSPs/wealthsync_backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetHistoryRepository_AppendAssignsIDAndTimestamp(t *testing.T) {
	fixed := time.Date(2025, 3, 4, 5, 6, 7, 0, time.FixedZone("CET", 3600))
	repo := memory.NewBudgetHistoryRepository(memory.WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	first, err := repo.AppendEntry(ctx, domain.BudgetEntry{Email: "a@example.com", Income: 100})
	require.NoError(t, err)
	second, err := repo.AppendEntry(ctx, domain.BudgetEntry{Email: "b@example.com", Income: 200})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, time.UTC, first.CreatedAt.Location())
	assert.True(t, fixed.Equal(first.CreatedAt))
}

func TestBudgetHistoryRepository_ListEntriesByEmail(t *testing.T) {
	repo := memory.NewBudgetHistoryRepository()
	ctx := context.Background()

	for _, e := range []domain.BudgetEntry{
		{Email: "a@example.com", Income: 1},
		{Email: "b@example.com", Income: 2},
		{Email: "a@example.com", Income: 3},
		{Email: "A@example.com", Income: 4},
	} {
		_, err := repo.AppendEntry(ctx, e)
		require.NoError(t, err)
	}

	entries, err := repo.ListEntriesByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, 1.0, entries[0].Income)
	assert.Equal(t, int64(3), entries[1].ID)
	assert.Equal(t, 3.0, entries[1].Income)

	none, err := repo.ListEntriesByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestBudgetHistoryRepository_ConcurrentAppends(t *testing.T) {
	repo := memory.NewBudgetHistoryRepository()
	ctx := context.Background()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.AppendEntry(ctx, domain.BudgetEntry{Email: "load@example.com", Message: fmt.Sprint(i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	entries, err := repo.ListEntriesByEmail(ctx, "load@example.com")
	require.NoError(t, err)
	require.Len(t, entries, n)

	ids := make([]int, 0, n)
	for _, e := range entries {
		ids = append(ids, int(e.ID))
	}
	assert.True(t, sort.IntsAreSorted(ids))
	for i, id := range ids {
		assert.Equal(t, i+1, id)
	}
}
