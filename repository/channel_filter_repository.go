package repository

import (
	"context"
	"fmt"

	"statbot/database"
	"statbot/models"

	"github.com/jackc/pgx/v5"
)

// ChannelFilterRepository implements the service.ChannelFilterRepository
// interface. Filters are maintained by external tooling; this repository
// only reads them, and a missing row means every toggle is enabled.
type ChannelFilterRepository struct {
	q queryable
}

// NewChannelFilterRepository creates a new channel filter repository
func NewChannelFilterRepository(db *database.DB) *ChannelFilterRepository {
	return &ChannelFilterRepository{q: db.Pool}
}

// newChannelFilterRepositoryWithTx creates a new channel filter repository with a transaction
func newChannelFilterRepositoryWithTx(tx queryable) *ChannelFilterRepository {
	return &ChannelFilterRepository{q: tx}
}

// GetFilter retrieves the filter for a channel, or nil if none exists
func (r *ChannelFilterRepository) GetFilter(ctx context.Context, channelID int64) (*models.ChannelFilter, error) {
	query := `
		SELECT channel_id, level_ups_enabled
		FROM channel_filters
		WHERE channel_id = $1
	`

	var filter models.ChannelFilter
	err := r.q.QueryRow(ctx, query, channelID).Scan(
		&filter.ChannelID,
		&filter.LevelUpsEnabled,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel filter for channel %d: %w", channelID, err)
	}

	return &filter, nil
}
