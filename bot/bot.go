package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"statbot/events"
	"statbot/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config               Config
	session              *discordgo.Session
	progressionService   service.ProgressionService
	statService          service.StatService
	guildSettingsService service.GuildSettingsService
	eventBus             *events.Bus
}

func New(config Config, progressionService service.ProgressionService, statService service.StatService, guildSettingsService service.GuildSettingsService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMembers

	bot := &Bot{
		config:               config,
		session:              dg,
		progressionService:   progressionService,
		statService:          statService,
		guildSettingsService: guildSettingsService,
		eventBus:             eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register gateway event handlers
	dg.AddHandler(bot.handleMessageCreate)
	dg.AddHandler(bot.handleMemberJoin)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Announce level-ups once their xp write has committed
	eventBus.Subscribe(events.EventTypeLevelUp, func(ctx context.Context, event events.Event) {
		levelUp, ok := event.(events.LevelUpEvent)
		if !ok {
			return
		}
		if err := bot.announceLevelUp(ctx, levelUp); err != nil {
			log.Errorf("Failed to announce level up for user %d: %v", levelUp.UserID, err)
		}
	})

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		setCommand(),
		addCommand(),
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "set":
		b.handleSet(s, i)
	case "add":
		b.handleAdd(s, i)
	}
}
