package repository

import (
	"context"
	"fmt"

	"statbot/database"
	"statbot/models"

	"github.com/jackc/pgx/v5"
)

// GuildSettingsRepository implements the service.GuildSettingsRepository interface
type GuildSettingsRepository struct {
	q queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// newGuildSettingsRepositoryWithTx creates a new guild settings repository with a transaction
func newGuildSettingsRepositoryWithTx(tx queryable) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: tx}
}

// GetGuildSettings retrieves settings for a guild, or nil if the guild was
// never configured
func (r *GuildSettingsRepository) GetGuildSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	query := `
		SELECT guild_id, levelup_channel_id, welcome_channel_id
		FROM guild_settings
		WHERE guild_id = $1
	`

	var settings models.GuildSettings
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&settings.GuildID,
		&settings.LevelUpChannelID,
		&settings.WelcomeChannelID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings for guild %d: %w", guildID, err)
	}

	return &settings, nil
}

// SetEventChannel sets (non-nil) or clears (nil) the configured channel for
// an event type in a single upsert, creating the settings row if absent.
// Idempotent in both directions.
func (r *GuildSettingsRepository) SetEventChannel(ctx context.Context, guildID int64, event models.EventChannelType, channelID *int64) error {
	column, err := eventChannelColumn(event)
	if err != nil {
		return err
	}

	// column comes from the closed switch below, never from input
	query := fmt.Sprintf(`
		INSERT INTO guild_settings (guild_id, %s)
		VALUES ($1, $2)
		ON CONFLICT (guild_id)
		DO UPDATE SET %s = $2, updated_at = NOW()
	`, column, column)

	if _, err := r.q.Exec(ctx, query, guildID, channelID); err != nil {
		return fmt.Errorf("failed to set %s channel for guild %d: %w", event, guildID, err)
	}

	return nil
}

// eventChannelColumn maps an event type to its guild_settings column
func eventChannelColumn(event models.EventChannelType) (string, error) {
	switch event {
	case models.EventChannelLevelUp:
		return "levelup_channel_id", nil
	case models.EventChannelWelcome:
		return "welcome_channel_id", nil
	default:
		return "", fmt.Errorf("unknown event channel type: %q", event)
	}
}
