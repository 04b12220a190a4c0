package models

import "fmt"

// EventChannelType names a configurable announcement channel slot
type EventChannelType string

const (
	EventChannelLevelUp EventChannelType = "levelup"
	EventChannelWelcome EventChannelType = "welcome"
)

// ParseEventChannelType converts a command option value into an EventChannelType
func ParseEventChannelType(s string) (EventChannelType, error) {
	switch EventChannelType(s) {
	case EventChannelLevelUp, EventChannelWelcome:
		return EventChannelType(s), nil
	default:
		return "", fmt.Errorf("unknown event channel type: %q", s)
	}
}

// DisplayName returns the label used in command responses
func (e EventChannelType) DisplayName() string {
	switch e {
	case EventChannelLevelUp:
		return "Level-UPs"
	case EventChannelWelcome:
		return "Welcome"
	}
	return string(e)
}

// GuildSettings represents per-guild configuration settings
type GuildSettings struct {
	GuildID          int64  `db:"guild_id"`
	LevelUpChannelID *int64 `db:"levelup_channel_id"` // Nullable - NULL means announce in the origin channel
	WelcomeChannelID *int64 `db:"welcome_channel_id"` // Nullable - NULL means no welcome messages
}

// HasLevelUpChannel checks if a level-up channel is configured
func (gs *GuildSettings) HasLevelUpChannel() bool {
	return gs.LevelUpChannelID != nil && *gs.LevelUpChannelID > 0
}

// HasWelcomeChannel checks if a welcome channel is configured
func (gs *GuildSettings) HasWelcomeChannel() bool {
	return gs.WelcomeChannelID != nil && *gs.WelcomeChannelID > 0
}

// EventChannel returns the configured channel for the given event type
func (gs *GuildSettings) EventChannel(event EventChannelType) *int64 {
	switch event {
	case EventChannelLevelUp:
		return gs.LevelUpChannelID
	case EventChannelWelcome:
		return gs.WelcomeChannelID
	}
	return nil
}

// SetEventChannel sets or clears the configured channel for the given event type
func (gs *GuildSettings) SetEventChannel(event EventChannelType, channelID *int64) {
	switch event {
	case EventChannelLevelUp:
		gs.LevelUpChannelID = channelID
	case EventChannelWelcome:
		gs.WelcomeChannelID = channelID
	}
}
