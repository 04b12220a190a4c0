package repository

import (
	"context"
	"fmt"

	"statbot/database"
	"statbot/models"

	"github.com/jackc/pgx/v5"
)

// LedgerRepository implements the service.LedgerRepository interface
type LedgerRepository struct {
	q queryable
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *database.DB) *LedgerRepository {
	return &LedgerRepository{q: db.Pool}
}

// newLedgerRepositoryWithTx creates a new ledger repository with a transaction
func newLedgerRepositoryWithTx(tx queryable) *LedgerRepository {
	return &LedgerRepository{q: tx}
}

// Get retrieves a ledger entry by its (ledger, guild, user) key
func (r *LedgerRepository) Get(ctx context.Context, ledger models.LedgerType, guildID, userID int64) (*models.LedgerEntry, error) {
	query := `
		SELECT ledger, guild_id, user_id, value, created_at, updated_at
		FROM ledger_entries
		WHERE ledger = $1 AND guild_id = $2 AND user_id = $3
	`

	var entry models.LedgerEntry
	err := r.q.QueryRow(ctx, query, ledger.String(), guildID, userID).Scan(
		&entry.Ledger,
		&entry.GuildID,
		&entry.UserID,
		&entry.Value,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s entry for user %d in guild %d: %w", ledger, userID, guildID, err)
	}

	return &entry, nil
}

// IncrementValue atomically adds delta to a counter, creating the entry if
// absent, and returns the resulting value. The whole operation is one
// statement so concurrent increments on the same key are serialized by the
// database and neither is lost.
func (r *LedgerRepository) IncrementValue(ctx context.Context, ledger models.LedgerType, guildID, userID, delta int64) (int64, error) {
	query := `
		INSERT INTO ledger_entries (ledger, guild_id, user_id, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ledger, guild_id, user_id)
		DO UPDATE SET value = ledger_entries.value + $4, updated_at = NOW()
		RETURNING value
	`

	var newValue int64
	err := r.q.QueryRow(ctx, query, ledger.String(), guildID, userID, delta).Scan(&newValue)
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s for user %d in guild %d: %w", ledger, userID, guildID, err)
	}

	return newValue, nil
}

// SetValue atomically overwrites a counter, creating the entry if absent
func (r *LedgerRepository) SetValue(ctx context.Context, ledger models.LedgerType, guildID, userID, value int64) error {
	query := `
		INSERT INTO ledger_entries (ledger, guild_id, user_id, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ledger, guild_id, user_id)
		DO UPDATE SET value = $4, updated_at = NOW()
	`

	_, err := r.q.Exec(ctx, query, ledger.String(), guildID, userID, value)
	if err != nil {
		return fmt.Errorf("failed to set %s for user %d in guild %d: %w", ledger, userID, guildID, err)
	}

	return nil
}
