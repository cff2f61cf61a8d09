package groups

import (
	"poolbot/bot/common"
	"poolbot/events"
	"poolbot/repository"
	"poolbot/service"

	"github.com/bwmarrin/discordgo"
)

// Feature owns the /group command surface: group membership, discovery, and
// the guild-to-group link the rest of the bot resolves through.
type Feature struct {
	groupService service.GroupService
	guildLinks   *repository.GuildLinkRepository
	eventBus     *events.Bus
}

// NewFeature creates a new groups feature instance
func NewFeature(groupService service.GroupService, guildLinks *repository.GuildLinkRepository, eventBus *events.Bus) *Feature {
	return &Feature{
		groupService: groupService,
		guildLinks:   guildLinks,
		eventBus:     eventBus,
	}
}

// HandleCommand handles the /group command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand.")
		return
	}

	switch options[0].Name {
	case "create":
		f.handleGroupCreate(s, i)
	case "join":
		f.handleGroupJoin(s, i)
	case "leave":
		f.handleGroupLeave(s, i)
	case "members":
		f.handleGroupMembers(s, i)
	case "search":
		f.handleGroupSearch(s, i)
	case "browse":
		f.handleGroupBrowse(s, i)
	case "link":
		f.handleGroupLink(s, i)
	case "unlink":
		f.handleGroupUnlink(s, i)
	default:
		common.RespondWithError(s, i, "Unknown subcommand.")
	}
}
