package service

import (
	"context"

	"statbot/events"
	"statbot/models"
)

// LedgerRepository defines the interface for counter data access.
// Both mutation methods are upserts: an absent entry is created with a
// starting value of 0 (increment) or the given value (set) in the same
// atomic statement that applies the change.
type LedgerRepository interface {
	// Get retrieves a ledger entry, or nil if none exists
	Get(ctx context.Context, ledger models.LedgerType, guildID, userID int64) (*models.LedgerEntry, error)

	// IncrementValue atomically adds delta to the entry's value, creating
	// the entry at 0 first if absent, and returns the resulting value
	IncrementValue(ctx context.Context, ledger models.LedgerType, guildID, userID, delta int64) (int64, error)

	// SetValue atomically overwrites the entry's value, creating the entry if absent
	SetValue(ctx context.Context, ledger models.LedgerType, guildID, userID, value int64) error
}

// GuildSettingsRepository defines the interface for guild settings data access
type GuildSettingsRepository interface {
	// GetGuildSettings retrieves settings for a guild, or nil if none exist
	GetGuildSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error)

	// SetEventChannel sets (non-nil) or clears (nil) the configured channel
	// for an event type, upserting the settings row if absent
	SetEventChannel(ctx context.Context, guildID int64, event models.EventChannelType, channelID *int64) error
}

// ChannelFilterRepository defines the interface for channel filter lookups.
// Filters are written by external tooling; this module only reads them.
type ChannelFilterRepository interface {
	// GetFilter retrieves the filter for a channel, or nil if none exists
	GetFilter(ctx context.Context, channelID int64) (*models.ChannelFilter, error)
}

// ProgressionService defines the interface for activity-driven xp tracking
type ProgressionService interface {
	// RecordActivity awards one xp for a message in a guild channel unless
	// the channel suppresses level-ups. When the increment crosses a level
	// boundary a LevelUpEvent is published after the write commits.
	RecordActivity(ctx context.Context, guildID, userID, channelID int64) error
}

// StatService defines the interface for privileged ledger mutation
type StatService interface {
	// SetStat atomically overwrites a ledger value; value must be non-negative
	SetStat(ctx context.Context, ledger models.LedgerType, guildID, userID, value int64) error

	// AddStat atomically adds amount (which may be negative) to a ledger
	// value, creating the entry at 0 if absent, and returns the new value
	AddStat(ctx context.Context, ledger models.LedgerType, guildID, userID, amount int64) (int64, error)
}

// GuildSettingsService defines the interface for guild settings operations
type GuildSettingsService interface {
	// GetSettings returns the guild's settings, or default (all channels
	// unset) settings if the guild has never been configured
	GetSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error)

	// SetEventChannel sets or clears the announcement channel for an event type
	SetEventChannel(ctx context.Context, guildID int64, event models.EventChannelType, channelID *int64) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes pending events
	Commit() error

	// Rollback rolls back the transaction and discards pending events
	Rollback() error

	// Repository getters
	LedgerRepository() LedgerRepository
	GuildSettingsRepository() GuildSettingsRepository
	ChannelFilterRepository() ChannelFilterRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
