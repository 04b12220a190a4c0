package service

import (
	"context"
	"testing"

	"statbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuildSettingsFixture() (*MockUnitOfWorkFactory, *MockUnitOfWork, *MockGuildSettingsRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockSettingsRepo := new(MockGuildSettingsRepository)

	mockUoW.SetRepositories(nil, mockSettingsRepo, nil)
	mockFactory.On("Create").Return(mockUoW)

	return mockFactory, mockUoW, mockSettingsRepo
}

func TestGuildSettingsService_GetSettings_Unconfigured(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockSettingsRepo := newGuildSettingsFixture()

	svc := NewGuildSettingsService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockSettingsRepo.On("GetGuildSettings", ctx, int64(900)).Return(nil, nil)

	settings, err := svc.GetSettings(ctx, 900)

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, int64(900), settings.GuildID)
	assert.False(t, settings.HasLevelUpChannel())
	assert.False(t, settings.HasWelcomeChannel())
}

func TestGuildSettingsService_GetSettings_Configured(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockSettingsRepo := newGuildSettingsFixture()

	svc := NewGuildSettingsService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	channelID := int64(42)
	mockSettingsRepo.On("GetGuildSettings", ctx, int64(900)).Return(&models.GuildSettings{
		GuildID:          900,
		LevelUpChannelID: &channelID,
	}, nil)

	settings, err := svc.GetSettings(ctx, 900)

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.True(t, settings.HasLevelUpChannel())
	assert.Equal(t, int64(42), *settings.LevelUpChannelID)
}

func TestGuildSettingsService_SetEventChannel(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockSettingsRepo := newGuildSettingsFixture()

	svc := NewGuildSettingsService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	channelID := int64(42)
	mockSettingsRepo.On("SetEventChannel", ctx, int64(900), models.EventChannelLevelUp, &channelID).Return(nil)

	err := svc.SetEventChannel(ctx, 900, models.EventChannelLevelUp, &channelID)

	require.NoError(t, err)
	mockSettingsRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestGuildSettingsService_SetEventChannel_Clear(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockSettingsRepo := newGuildSettingsFixture()

	svc := NewGuildSettingsService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockSettingsRepo.On("SetEventChannel", ctx, int64(900), models.EventChannelWelcome, (*int64)(nil)).Return(nil)

	err := svc.SetEventChannel(ctx, 900, models.EventChannelWelcome, nil)

	require.NoError(t, err)
	mockSettingsRepo.AssertExpectations(t)
}
