package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Embed colors
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
)

// FormatCount formats a counter value with thousand separators
func FormatCount(value int64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	str := fmt.Sprintf("%d", value)

	n := len(str)
	if n > 3 {
		var result strings.Builder
		for i, digit := range str {
			if i > 0 && (n-i)%3 == 0 {
				result.WriteRune(',')
			}
			result.WriteRune(digit)
		}
		str = result.String()
	}

	if negative {
		return "-" + str
	}
	return str
}

// parseSnowflake converts a Discord snowflake string ID to int64
func parseSnowflake(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// parseGuildAndUser converts the guild and user snowflakes of an interaction
func parseGuildAndUser(guildID, userID string) (int64, int64, error) {
	gid, err := parseSnowflake(guildID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid guild ID %q: %w", guildID, err)
	}
	uid, err := parseSnowflake(userID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid user ID %q: %w", userID, err)
	}
	return gid, uid, nil
}

// respondWithSuccess sends an ephemeral green embed confirmation
func (b *Bot) respondWithSuccess(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Description: message,
					Color:       ColorSuccess,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending success response: %v", err)
	}
}

func (b *Bot) respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending error response: %v", err)
	}
}
