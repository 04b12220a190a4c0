package service

import (
	"context"

	"statbot/events"
	"statbot/models"

	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock implementation of LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Get(ctx context.Context, ledger models.LedgerType, guildID, userID int64) (*models.LedgerEntry, error) {
	args := m.Called(ctx, ledger, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) IncrementValue(ctx context.Context, ledger models.LedgerType, guildID, userID, delta int64) (int64, error) {
	args := m.Called(ctx, ledger, guildID, userID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) SetValue(ctx context.Context, ledger models.LedgerType, guildID, userID, value int64) error {
	args := m.Called(ctx, ledger, guildID, userID, value)
	return args.Error(0)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetGuildSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) SetEventChannel(ctx context.Context, guildID int64, event models.EventChannelType, channelID *int64) error {
	args := m.Called(ctx, guildID, event, channelID)
	return args.Error(0)
}

// MockChannelFilterRepository is a mock implementation of ChannelFilterRepository
type MockChannelFilterRepository struct {
	mock.Mock
}

func (m *MockChannelFilterRepository) GetFilter(ctx context.Context, channelID int64) (*models.ChannelFilter, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChannelFilter), args.Error(1)
}

// CapturingEventPublisher records published events for assertions
type CapturingEventPublisher struct {
	Events []events.Event
}

func (p *CapturingEventPublisher) Publish(event events.Event) {
	p.Events = append(p.Events, event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	ledgerRepo        LedgerRepository
	guildSettingsRepo GuildSettingsRepository
	channelFilterRepo ChannelFilterRepository
	eventPublisher    *CapturingEventPublisher
}

// SetRepositories wires the mocked repositories returned by the getters
func (m *MockUnitOfWork) SetRepositories(ledger LedgerRepository, guildSettings GuildSettingsRepository, channelFilter ChannelFilterRepository) {
	m.ledgerRepo = ledger
	m.guildSettingsRepo = guildSettings
	m.channelFilterRepo = channelFilter
	m.eventPublisher = &CapturingEventPublisher{}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) LedgerRepository() LedgerRepository {
	return m.ledgerRepo
}

func (m *MockUnitOfWork) GuildSettingsRepository() GuildSettingsRepository {
	return m.guildSettingsRepo
}

func (m *MockUnitOfWork) ChannelFilterRepository() ChannelFilterRepository {
	return m.channelFilterRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventPublisher
}

// PublishedEvents returns the events captured by the unit of work's bus
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	return m.eventPublisher.Events
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
