package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"statbot/models"

	"github.com/bwmarrin/discordgo"
)

// setCommand builds the /set command definition, one subcommand per ledger
// plus the channel configuration subcommand
func setCommand() *discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)
	minValue := float64(0)

	options := make([]*discordgo.ApplicationCommandOption, 0, len(models.LedgerTypes)+1)
	for _, ledger := range models.LedgerTypes {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        ledger.String(),
			Description: fmt.Sprintf("Set someone's %s", ledger),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "target",
					Description: fmt.Sprintf("Whose %s to set", ledger),
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "value",
					Description: fmt.Sprintf("What to set the %s to", ledger),
					MinValue:    &minValue,
					Required:    true,
				},
			},
		})
	}

	options = append(options, &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        "channel",
		Description: "Set the channel for an event",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "event",
				Description: "The event",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: models.EventChannelLevelUp.DisplayName(), Value: string(models.EventChannelLevelUp)},
					{Name: models.EventChannelWelcome.DisplayName(), Value: string(models.EventChannelWelcome)},
				},
			},
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "The Channel to set it to. Omit to reset.",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
		},
	})

	return &discordgo.ApplicationCommand{
		Name:                     "set",
		Description:              "Set someone's stats",
		DefaultMemberPermissions: &adminOnly,
		Options:                  options,
	}
}

// addCommand builds the /add command definition, one subcommand per ledger
func addCommand() *discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)

	options := make([]*discordgo.ApplicationCommandOption, 0, len(models.LedgerTypes))
	for _, ledger := range models.LedgerTypes {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        ledger.String(),
			Description: fmt.Sprintf("Add to someone's %s", ledger),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "target",
					Description: fmt.Sprintf("Whose %s to add to", ledger),
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: fmt.Sprintf("How much to add to the %s", ledger),
					Required:    true,
				},
			},
		})
	}

	return &discordgo.ApplicationCommand{
		Name:                     "add",
		Description:              "Add to someone's stats",
		DefaultMemberPermissions: &adminOnly,
		Options:                  options,
	}
}

func (b *Bot) handleSet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.requireAdmin(s, i) {
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	if sub.Name == "channel" {
		b.handleSetChannel(s, i, sub)
		return
	}

	ledger, err := models.ParseLedgerType(sub.Name)
	if err != nil {
		log.Errorf("Unexpected set subcommand %s: %v", sub.Name, err)
		b.respondWithError(s, i, "Unknown stat.")
		return
	}

	var target *discordgo.User
	var value int64
	for _, opt := range sub.Options {
		switch opt.Name {
		case "target":
			target = opt.UserValue(s)
		case "value":
			value = opt.IntValue()
		}
	}

	if target == nil {
		b.respondWithError(s, i, "Invalid target user.")
		return
	}

	guildID, userID, err := parseGuildAndUser(i.GuildID, target.ID)
	if err != nil {
		log.Errorf("Error parsing IDs for set command: %v", err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	ctx := context.Background()
	if err := b.statService.SetStat(ctx, ledger, guildID, userID, value); err != nil {
		log.Errorf("Error setting %s for user %d: %v", ledger, userID, err)
		b.respondWithError(s, i, "Unable to update stat. Please try again.")
		return
	}

	b.respondWithSuccess(s, i, fmt.Sprintf("Set <@%s>'s %s to **%d**", target.ID, ledger, value))
}

func (b *Bot) handleSetChannel(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	var event models.EventChannelType
	var channel *discordgo.Channel
	for _, opt := range sub.Options {
		switch opt.Name {
		case "event":
			parsed, err := models.ParseEventChannelType(opt.StringValue())
			if err != nil {
				log.Errorf("Unexpected event choice: %v", err)
				b.respondWithError(s, i, "Unknown event.")
				return
			}
			event = parsed
		case "channel":
			channel = opt.ChannelValue(s)
		}
	}

	guildID, err := parseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// An omitted channel resets the event back to its default behavior
	var channelID *int64
	if channel != nil {
		id, err := parseSnowflake(channel.ID)
		if err != nil {
			log.Errorf("Error parsing channel ID %s: %v", channel.ID, err)
			b.respondWithError(s, i, "Unable to process request. Please try again.")
			return
		}
		channelID = &id
	}

	ctx := context.Background()
	if err := b.guildSettingsService.SetEventChannel(ctx, guildID, event, channelID); err != nil {
		log.Errorf("Error setting %s channel for guild %d: %v", event, guildID, err)
		b.respondWithError(s, i, "Unable to update channel. Please try again.")
		return
	}

	var message string
	if channel != nil {
		message = fmt.Sprintf("Set **%s** channel to <#%s>", event.DisplayName(), channel.ID)
	} else {
		message = fmt.Sprintf("Reset **%s** channel", event.DisplayName())
	}
	b.respondWithSuccess(s, i, message)
}

func (b *Bot) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.requireAdmin(s, i) {
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	ledger, err := models.ParseLedgerType(sub.Name)
	if err != nil {
		log.Errorf("Unexpected add subcommand %s: %v", sub.Name, err)
		b.respondWithError(s, i, "Unknown stat.")
		return
	}

	var target *discordgo.User
	var amount int64
	for _, opt := range sub.Options {
		switch opt.Name {
		case "target":
			target = opt.UserValue(s)
		case "amount":
			amount = opt.IntValue()
		}
	}

	if target == nil {
		b.respondWithError(s, i, "Invalid target user.")
		return
	}

	guildID, userID, err := parseGuildAndUser(i.GuildID, target.ID)
	if err != nil {
		log.Errorf("Error parsing IDs for add command: %v", err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	ctx := context.Background()
	if _, err := b.statService.AddStat(ctx, ledger, guildID, userID, amount); err != nil {
		log.Errorf("Error adding %d to %s for user %d: %v", amount, ledger, userID, err)
		b.respondWithError(s, i, "Unable to update stat. Please try again.")
		return
	}

	var message string
	if amount >= 0 {
		message = fmt.Sprintf("Added **%s** to <@%s>'s %s", FormatCount(amount), target.ID, ledger)
	} else {
		message = fmt.Sprintf("Removed **%s** from <@%s>'s %s", FormatCount(-amount), target.ID, ledger)
	}
	b.respondWithSuccess(s, i, message)
}

// requireAdmin rejects the interaction unless the invoking member holds the
// administrator permission. Discord enforces DefaultMemberPermissions on the
// client side already; this guards against stale permission overrides.
func (b *Bot) requireAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.Member == nil || i.Member.Permissions&discordgo.PermissionAdministrator == 0 {
		b.respondWithError(s, i, "You need the Administrator permission to use this command.")
		return false
	}
	return true
}
