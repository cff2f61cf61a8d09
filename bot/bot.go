package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"poolbot/bot/common"
	"poolbot/bot/features/bets"
	"poolbot/bot/features/groups"
	"poolbot/events"
	"poolbot/models"
	"poolbot/repository"
	"poolbot/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token      string
	GuildID    string
	QuickPicks []int64
}

type Bot struct {
	config     Config
	session    *discordgo.Session
	bets       *bets.Feature
	groups     *groups.Feature
	guildLinks *repository.GuildLinkRepository
	eventBus   *events.Bus
}

func New(config Config, betService service.BetService, groupService service.GroupService, guildLinks *repository.GuildLinkRepository, betMessages *repository.BetMessageRepository, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:     config,
		session:    dg,
		bets:       bets.NewFeature(betService, guildLinks, betMessages, config.QuickPicks),
		groups:     groups.NewFeature(groupService, guildLinks, eventBus),
		guildLinks: guildLinks,
		eventBus:   eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleInteractions)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Announce bot-originated activity in linked guilds
	eventBus.Subscribe(events.EventTypeBetCreated, bot.announceBetCreated)
	eventBus.Subscribe(events.EventTypeContributionSubmitted, bot.announceContribution)

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) registerCommands() error {
	statusChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "All", Value: string(service.FilterAll)},
		{Name: "Active", Value: string(service.FilterActive)},
		{Name: "Completed", Value: string(service.FilterCompleted)},
		{Name: "Pending", Value: string(service.FilterPending)},
	}
	typeChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: models.TopologySinglePool.Label(), Value: string(models.TopologySinglePool)},
		{Name: models.TopologyTwoSided.Label(), Value: string(models.TopologyTwoSided)},
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "bet",
			Description: "View, list, and create bets",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "Show a bet with its contribute buttons",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Bet ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List this server's group bets",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "filter",
							Description: "Status filter (default: all)",
							Required:    false,
							Choices:     statusChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a bet in this server's group (opens modal)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "Bet type",
							Required:    true,
							Choices:     typeChoices,
						},
					},
				},
			},
		},
		{
			Name:        "group",
			Description: "Manage betting groups and this server's link",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new group",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Group name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "private",
							Description: "Hide the group from search and browse",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join a group by join code",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "Join code",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave a group",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Group ID (defaults to this server's group)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "members",
					Description: "Show this server's group with its members",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "search",
					Description: "Search public groups by name",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "term",
							Description: "Name to search for",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "browse",
					Description: "List public groups",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "link",
					Description: "Link this server to a group",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Group ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel for bet announcements",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unlink",
					Description: "Remove this server's group link",
				},
			},
		},
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
	case "bet":
		b.bets.HandleCommand(s, i)
	case "group":
		b.groups.HandleCommand(s, i)
	}
}

// handleInteractions routes component clicks and modal submissions by custom
// ID prefix
func (b *Bot) handleInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var customID string
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		customID = i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		customID = i.ModalSubmitData().CustomID
	default:
		return
	}

	if strings.HasPrefix(customID, "pool_") {
		b.bets.HandleInteraction(s, i)
	}
}

// announceBetCreated posts new bets to the announce channel of every guild
// linked to the bet's group
func (b *Bot) announceBetCreated(ctx context.Context, event events.Event) {
	created, ok := event.(events.BetCreatedEvent)
	if !ok {
		return
	}

	message := fmt.Sprintf("🎲 New %s bet: **%s**\n-# Use `/bet view id:%s` to contribute.",
		strings.ToLower(created.Topology.Label()), created.Description, created.BetID)
	b.announce(ctx, created.GroupID, message)
}

// announceContribution posts accepted contributions to linked guilds
func (b *Bot) announceContribution(ctx context.Context, event events.Event) {
	contribution, ok := event.(events.ContributionSubmittedEvent)
	if !ok {
		return
	}

	message := fmt.Sprintf("💰 **%s** received a contribution of %s. Pool total is now %s.",
		contribution.Description,
		common.FormatStake(contribution.Quantity, contribution.RewardType),
		common.FormatStake(contribution.NewTotal, contribution.RewardType))
	b.announce(ctx, contribution.GroupID, message)
}

// announce sends a message to every linked guild that has an announce
// channel configured
func (b *Bot) announce(ctx context.Context, groupID, message string) {
	links, err := b.guildLinks.ListByGroup(ctx, groupID)
	if err != nil {
		log.Errorf("Failed to list guild links for group %s: %v", groupID, err)
		return
	}

	for _, link := range links {
		if link.AnnounceChannelID == nil {
			continue
		}
		channelID := strconv.FormatInt(*link.AnnounceChannelID, 10)
		if _, err := b.session.ChannelMessageSend(channelID, message); err != nil {
			log.Errorf("Failed to announce in channel %s: %v", channelID, err)
		}
	}
}
