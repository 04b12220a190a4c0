package bot

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"statbot/events"
	"statbot/levels"

	"github.com/bwmarrin/discordgo"
)

// handleMessageCreate awards xp for guild messages
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Only human guild messages count toward progression
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	guildID, err := parseSnowflake(m.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", m.GuildID, err)
		return
	}
	userID, err := parseSnowflake(m.Author.ID)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", m.Author.ID, err)
		return
	}
	channelID, err := parseSnowflake(m.ChannelID)
	if err != nil {
		log.Errorf("Error parsing channel ID %s: %v", m.ChannelID, err)
		return
	}

	ctx := context.Background()
	if err := b.progressionService.RecordActivity(ctx, guildID, userID, channelID); err != nil {
		log.Errorf("Error recording activity for user %d in guild %d: %v", userID, guildID, err)
	}
}

// announceLevelUp posts the level-up embed in the guild's configured level-up
// channel, falling back to the channel the triggering message was sent in
func (b *Bot) announceLevelUp(ctx context.Context, event events.LevelUpEvent) error {
	settings, err := b.guildSettingsService.GetSettings(ctx, event.GuildID)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}

	channelID := strconv.FormatInt(event.ChannelID, 10)
	if settings.HasLevelUpChannel() {
		configured := strconv.FormatInt(*settings.LevelUpChannelID, 10)
		if b.isTextChannel(configured) {
			channelID = configured
		}
	}

	remaining := levels.XPForLevel(event.NewLevel+1) - event.XP
	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("<@%d> has reached lvl 🏆**%d**!", event.UserID, event.NewLevel),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Collect ✨%d more xp for lvl 🏆%d", remaining, event.NewLevel+1),
		},
		Color: ColorPrimary,
	}

	if _, err := b.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return fmt.Errorf("failed to send level up announcement to channel %s: %w", channelID, err)
	}
	return nil
}

// isTextChannel reports whether the channel resolves to a guild text channel.
// A configured channel that was deleted or repurposed fails the check, which
// sends the announcement back to its origin channel.
func (b *Bot) isTextChannel(channelID string) bool {
	channel, err := b.session.State.Channel(channelID)
	if err != nil {
		channel, err = b.session.Channel(channelID)
	}
	if err != nil {
		log.Warnf("Failed to resolve configured channel %s: %v", channelID, err)
		return false
	}
	return channel.Type == discordgo.ChannelTypeGuildText
}

// handleMemberJoin greets new members in the guild's configured welcome channel
func (b *Bot) handleMemberJoin(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil || m.User.Bot {
		return
	}

	guildID, err := parseSnowflake(m.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", m.GuildID, err)
		return
	}

	ctx := context.Background()
	settings, err := b.guildSettingsService.GetSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Error getting settings for guild %d: %v", guildID, err)
		return
	}
	if !settings.HasWelcomeChannel() {
		return
	}

	channelID := strconv.FormatInt(*settings.WelcomeChannelID, 10)
	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("Welcome to the server, <@%s>!", m.User.ID),
		Color:       ColorPrimary,
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Errorf("Error sending welcome message to channel %s: %v", channelID, err)
	}
}
