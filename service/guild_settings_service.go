package service

import (
	"context"
	"fmt"

	"statbot/models"
)

// guildSettingsService implements the GuildSettingsService interface
type guildSettingsService struct {
	uowFactory UnitOfWorkFactory
}

// NewGuildSettingsService creates a new guild settings service
func NewGuildSettingsService(uowFactory UnitOfWorkFactory) GuildSettingsService {
	return &guildSettingsService{
		uowFactory: uowFactory,
	}
}

// GetSettings retrieves the guild's settings. A guild that was never
// configured gets default settings back; no row is created on read.
func (s *guildSettingsService) GetSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	settings, err := uow.GuildSettingsRepository().GetGuildSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if settings == nil {
		settings = &models.GuildSettings{GuildID: guildID}
	}

	return settings, nil
}

// SetEventChannel sets or clears the announcement channel for an event type
func (s *guildSettingsService) SetEventChannel(ctx context.Context, guildID int64, event models.EventChannelType, channelID *int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	if err := uow.GuildSettingsRepository().SetEventChannel(ctx, guildID, event, channelID); err != nil {
		return fmt.Errorf("failed to set %s channel: %w", event, err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
