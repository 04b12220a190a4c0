package repository

import (
	"context"
	"testing"

	"statbot/models"
	"statbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildSettingsRepository_SetEventChannel(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unconfigured guild has no settings", func(t *testing.T) {
		settings, err := repo.GetGuildSettings(ctx, 1000)
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("set creates the settings row", func(t *testing.T) {
		channelID := int64(42)
		err := repo.SetEventChannel(ctx, 1000, models.EventChannelLevelUp, &channelID)
		require.NoError(t, err)

		settings, err := repo.GetGuildSettings(ctx, 1000)
		require.NoError(t, err)
		require.NotNil(t, settings)
		require.NotNil(t, settings.LevelUpChannelID)
		assert.Equal(t, int64(42), *settings.LevelUpChannelID)
		assert.Nil(t, settings.WelcomeChannelID)
	})

	t.Run("event slots are independent", func(t *testing.T) {
		channelID := int64(77)
		err := repo.SetEventChannel(ctx, 1000, models.EventChannelWelcome, &channelID)
		require.NoError(t, err)

		settings, err := repo.GetGuildSettings(ctx, 1000)
		require.NoError(t, err)
		require.NotNil(t, settings)
		require.NotNil(t, settings.LevelUpChannelID)
		assert.Equal(t, int64(42), *settings.LevelUpChannelID)
		require.NotNil(t, settings.WelcomeChannelID)
		assert.Equal(t, int64(77), *settings.WelcomeChannelID)
	})

	t.Run("set then clear round-trips to unset", func(t *testing.T) {
		err := repo.SetEventChannel(ctx, 1000, models.EventChannelLevelUp, nil)
		require.NoError(t, err)

		settings, err := repo.GetGuildSettings(ctx, 1000)
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Nil(t, settings.LevelUpChannelID)
		assert.False(t, settings.HasLevelUpChannel())
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, repo.SetEventChannel(ctx, 1000, models.EventChannelLevelUp, nil))
		require.NoError(t, repo.SetEventChannel(ctx, 1000, models.EventChannelLevelUp, nil))

		settings, err := repo.GetGuildSettings(ctx, 1000)
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Nil(t, settings.LevelUpChannelID)
	})

	t.Run("clear on unconfigured guild creates an empty row", func(t *testing.T) {
		err := repo.SetEventChannel(ctx, 2000, models.EventChannelWelcome, nil)
		require.NoError(t, err)

		settings, err := repo.GetGuildSettings(ctx, 2000)
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Nil(t, settings.LevelUpChannelID)
		assert.Nil(t, settings.WelcomeChannelID)
	})
}

func TestChannelFilterRepository_GetFilter(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewChannelFilterRepository(testDB.DB)
	ctx := context.Background()

	t.Run("absent filter returns nil", func(t *testing.T) {
		filter, err := repo.GetFilter(ctx, 123)
		require.NoError(t, err)
		assert.Nil(t, filter)
	})

	t.Run("reads filter written by external tooling", func(t *testing.T) {
		_, err := testDB.DB.Exec(ctx,
			`INSERT INTO channel_filters (channel_id, level_ups_enabled) VALUES ($1, FALSE)`, 123)
		require.NoError(t, err)

		filter, err := repo.GetFilter(ctx, 123)
		require.NoError(t, err)
		require.NotNil(t, filter)
		assert.Equal(t, int64(123), filter.ChannelID)
		assert.False(t, filter.LevelUpsEnabled)
	})
}
