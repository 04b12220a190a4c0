package service

import (
	"context"
	"fmt"

	"statbot/events"
	"statbot/levels"
	"statbot/models"
)

// progressionService implements the ProgressionService interface
type progressionService struct {
	uowFactory UnitOfWorkFactory
}

// NewProgressionService creates a new progression service
func NewProgressionService(uowFactory UnitOfWorkFactory) ProgressionService {
	return &progressionService{
		uowFactory: uowFactory,
	}
}

// RecordActivity awards one xp for a qualifying message and detects level-ups
func (s *progressionService) RecordActivity(ctx context.Context, guildID, userID, channelID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	// The suppression check runs before any ledger write: a suppressed
	// channel must produce zero side effects, not just zero announcements
	filter, err := uow.ChannelFilterRepository().GetFilter(ctx, channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel filter: %w", err)
	}
	if filter != nil && !filter.LevelUpsEnabled {
		return nil
	}

	// Single atomic increment; no read-modify-write. The store serializes
	// concurrent +1s for the same user, so before = after - 1 is exact.
	after, err := uow.LedgerRepository().IncrementValue(ctx, models.LedgerXP, guildID, userID, 1)
	if err != nil {
		return fmt.Errorf("failed to increment xp: %w", err)
	}
	before := after - 1

	if levels.LevelFromXP(after) > levels.LevelFromXP(before) {
		// Queued on the transactional bus: the announcement only goes out
		// once the xp write is durably committed
		uow.EventBus().Publish(events.LevelUpEvent{
			GuildID:   guildID,
			UserID:    userID,
			ChannelID: channelID,
			NewLevel:  levels.LevelFromXP(after),
			XP:        after,
		})
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
