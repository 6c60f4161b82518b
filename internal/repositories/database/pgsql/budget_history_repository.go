package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wealthsync_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wealthsync_backend/internal/models"
	"github.com/SscSPs/wealthsync_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBudgetHistoryRepository stores budget entries in the budget_entries table.
type PgxBudgetHistoryRepository struct {
	BaseRepository
}

// NewPgxBudgetHistoryRepository creates a budget history repository backed by pool.
func NewPgxBudgetHistoryRepository(pool *pgxpool.Pool) *PgxBudgetHistoryRepository {
	return &PgxBudgetHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetHistoryRepositoryFacade = (*PgxBudgetHistoryRepository)(nil)

// AppendEntry inserts entry. The id sequence and created_at default assign ordering.
func (r *PgxBudgetHistoryRepository) AppendEntry(ctx context.Context, entry domain.BudgetEntry) (*domain.BudgetEntry, error) {
	modelEntry := mapping.ToModelBudgetEntry(entry)

	query := `
		INSERT INTO budget_entries (email, income, expenses, savings, savings_goal, recommended_savings, message, currency_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelEntry.Email,
		modelEntry.Income,
		modelEntry.Expenses,
		modelEntry.Savings,
		modelEntry.SavingsGoal,
		modelEntry.RecommendedSavings,
		modelEntry.Message,
		modelEntry.CurrencyCode,
	).Scan(&modelEntry.ID, &modelEntry.CreatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert budget entry", err)
	}

	saved := mapping.ToDomainBudgetEntry(modelEntry)
	return &saved, nil
}

// ListEntriesByEmail returns the entries for email ordered by id.
func (r *PgxBudgetHistoryRepository) ListEntriesByEmail(ctx context.Context, email string) ([]domain.BudgetEntry, error) {
	query := `
		SELECT id, email, income, expenses, savings, savings_goal, recommended_savings, message, currency_code, created_at
		FROM budget_entries
		WHERE email = $1
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query budget entries", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BudgetEntry])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan budget entries", err)
	}

	return mapping.ToDomainBudgetEntrySlice(modelEntries), nil
}
