package service

import (
	"context"
	"fmt"

	"statbot/events"
	"statbot/models"
)

// statService implements the StatService interface
type statService struct {
	uowFactory UnitOfWorkFactory
}

// NewStatService creates a new stat service
func NewStatService(uowFactory UnitOfWorkFactory) StatService {
	return &statService{
		uowFactory: uowFactory,
	}
}

// SetStat atomically overwrites a ledger value for a user
func (s *statService) SetStat(ctx context.Context, ledger models.LedgerType, guildID, userID, value int64) error {
	// Validate before touching the store
	if value < 0 {
		return fmt.Errorf("value must be non-negative, got %d", value)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	if err := uow.LedgerRepository().SetValue(ctx, ledger, guildID, userID, value); err != nil {
		return fmt.Errorf("failed to set %s for user %d: %w", ledger, userID, err)
	}

	uow.EventBus().Publish(events.StatChangeEvent{
		Ledger:   ledger,
		GuildID:  guildID,
		UserID:   userID,
		NewValue: value,
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddStat atomically adds amount to a ledger value for a user.
// Negative amounts are allowed and may drive the value below zero; the
// ledgers carry no floor, matching the set/add commands being exact
// inverses of each other.
func (s *statService) AddStat(ctx context.Context, ledger models.LedgerType, guildID, userID, amount int64) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	newValue, err := uow.LedgerRepository().IncrementValue(ctx, ledger, guildID, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to add to %s for user %d: %w", ledger, userID, err)
	}

	uow.EventBus().Publish(events.StatChangeEvent{
		Ledger:   ledger,
		GuildID:  guildID,
		UserID:   userID,
		NewValue: newValue,
	})

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newValue, nil
}
