package bot

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"roomwizard/bot/features/about"
	"roomwizard/bot/features/pins"
	"roomwizard/bot/features/rooms"
	"roomwizard/bot/features/settings"
	"roomwizard/service"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	session *discordgo.Session

	pins     *pins.Feature
	rooms    *rooms.Feature
	settings *settings.Feature
	about    *about.Feature

	prefixService service.PrefixService
}

// Services bundles the service layer the bot runs on. The pin and room
// services are constructed by the caller from the session client this
// bot hands out via NewSessionClient.
type Services struct {
	Pins   service.PinService
	Rooms  service.RoomService
	Prefix service.PrefixService
	Audit  service.AuditLogger
}

// NewSession creates the Discord session the service layer and the bot
// share. It does not open the connection yet.
func NewSession(token string) (*discordgo.Session, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent
	return dg, nil
}

func New(session *discordgo.Session, services Services) (*Bot, error) {
	bot := &Bot{
		session:       session,
		pins:          pins.NewFeature(services.Pins, services.Audit),
		rooms:         rooms.NewFeature(services.Rooms, services.Audit),
		settings:      settings.NewFeature(services.Prefix, services.Audit),
		about:         about.NewFeature(),
		prefixService: services.Prefix,
	}

	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleGuildCreate)
	session.AddHandler(bot.handleCommands)
	session.AddHandler(bot.handleReactionAdd)
	session.AddHandler(bot.handleReactionRemove)
	session.AddHandler(bot.handleMessageCreate)

	// Open websocket connection
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		session.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Infof("Logged in as %s, serving %d guilds", r.User.Username, len(r.Guilds))

	if err := s.UpdateWatchStatus(0, "your room"); err != nil {
		log.Errorf("Failed to set presence: %v", err)
	}
}

// handleGuildCreate greets newly joined guilds with the help embed.
// GuildCreate also fires for every guild on connect, so only guilds
// joined within the last minute get the welcome.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.JoinedAt.IsZero() || time.Since(g.JoinedAt) > time.Minute {
		return
	}
	if g.SystemChannelID == "" {
		return
	}

	if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, about.HelpEmbed()); err != nil {
		log.Errorf("Failed to send welcome message to guild %s: %v", g.ID, err)
	}
}

func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" {
		return
	}
	b.pins.HandleReaction(service.ReactionEvent{
		Action:    service.ReactionAdded,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		Emoji:     r.Emoji.Name,
	})
}

func (b *Bot) handleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.GuildID == "" {
		return
	}
	b.pins.HandleReaction(service.ReactionEvent{
		Action:    service.ReactionRemoved,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		Emoji:     r.Emoji.Name,
	})
}
