package groups

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"poolbot/api"
	"poolbot/bot/common"
	"poolbot/events"
	"poolbot/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleGroupCreate handles /group create name:<name> private:<bool>
func (f *Feature) handleGroupCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var name string
	var private bool
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		switch opt.Name {
		case "name":
			name = strings.TrimSpace(opt.StringValue())
		case "private":
			private = opt.BoolValue()
		}
	}
	if name == "" {
		common.RespondWithError(s, i, "Please provide a group name.")
		return
	}

	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Failed to defer group create response: %v", err)
		return
	}

	group, err := f.groupService.CreateGroup(ctx, name, private)
	if errors.Is(err, api.ErrUpgradeRequired) {
		common.FollowUpWithError(s, i, "Private groups require a premium plan on the betting service.")
		return
	}
	if err != nil {
		log.Errorf("Failed to create group %q: %v", name, err)
		common.FollowUpWithError(s, i, "Could not create the group. Please try again.")
		return
	}

	embed := createGroupEmbed(group, true)
	if _, err := common.FollowUpWithEmbed(s, i, embed, nil, true); err != nil {
		log.Errorf("Failed to send created group: %v", err)
	}
}

// handleGroupJoin handles /group join code:<join-code>
func (f *Feature) handleGroupJoin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var code string
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		if opt.Name == "code" {
			code = strings.TrimSpace(opt.StringValue())
		}
	}
	if code == "" {
		common.RespondWithError(s, i, "Please provide a join code.")
		return
	}

	err := f.groupService.Join(ctx, code)
	if errors.Is(err, api.ErrNotFound) {
		common.RespondWithError(s, i, "No group matches that join code.")
		return
	}
	if err != nil {
		log.Errorf("Failed to join group with code %q: %v", code, err)
		common.RespondWithError(s, i, "Could not join the group. Please try again.")
		return
	}

	common.RespondWithSuccess(s, i, "Joined the group.", true)
}

// handleGroupLeave handles /group leave id:<group-id>, falling back to the
// guild's linked group when no id is given
func (f *Feature) handleGroupLeave(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var groupID string
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		if opt.Name == "id" {
			groupID = strings.TrimSpace(opt.StringValue())
		}
	}
	if groupID == "" {
		link := f.lookupLink(ctx, i.GuildID)
		if link == nil {
			common.RespondWithError(s, i, "Provide a group ID, or run this in a server linked to a group.")
			return
		}
		groupID = link.GroupID
	}

	err := f.groupService.Leave(ctx, groupID)
	if errors.Is(err, api.ErrNotFound) {
		common.RespondWithError(s, i, "You are not a member of that group.")
		return
	}
	if err != nil {
		log.Errorf("Failed to leave group %s: %v", groupID, err)
		common.RespondWithError(s, i, "Could not leave the group. Please try again.")
		return
	}

	common.RespondWithSuccess(s, i, "Left the group.", true)
}

// handleGroupMembers handles /group members for the guild's linked group
func (f *Feature) handleGroupMembers(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	link := f.lookupLink(ctx, i.GuildID)
	if link == nil {
		common.RespondWithError(s, i, "This server is not linked to a group yet. Use `/group link` first.")
		return
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer group members response: %v", err)
		return
	}

	overview, err := f.groupService.Overview(ctx, link.GroupID)
	if errors.Is(err, api.ErrNotFound) {
		common.FollowUpWithError(s, i, "The linked group no longer exists.")
		return
	}
	if err != nil {
		log.Errorf("Failed to load overview for group %s: %v", link.GroupID, err)
		common.FollowUpWithError(s, i, "Could not load the group. Please try again.")
		return
	}

	embed := createOverviewEmbed(overview, interactionUser(i).ID)
	if _, err := common.FollowUpWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Failed to send group overview: %v", err)
	}
}

// handleGroupSearch handles /group search term:<name>
func (f *Feature) handleGroupSearch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var term string
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		if opt.Name == "term" {
			term = strings.TrimSpace(opt.StringValue())
		}
	}
	if term == "" {
		common.RespondWithError(s, i, "Please provide a search term.")
		return
	}

	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Failed to defer group search response: %v", err)
		return
	}

	results, err := f.groupService.Search(ctx, term)
	if err != nil {
		log.Errorf("Failed to search groups for %q: %v", term, err)
		common.FollowUpWithError(s, i, "Could not search groups. Please try again.")
		return
	}

	embed := createGroupListEmbed(fmt.Sprintf("🔎 Groups matching %q", term), results)
	if _, err := common.FollowUpWithEmbed(s, i, embed, nil, true); err != nil {
		log.Errorf("Failed to send group search results: %v", err)
	}
}

// handleGroupBrowse handles /group browse
func (f *Feature) handleGroupBrowse(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Failed to defer group browse response: %v", err)
		return
	}

	groups, err := f.groupService.Browse(ctx)
	if err != nil {
		log.Errorf("Failed to browse groups: %v", err)
		common.FollowUpWithError(s, i, "Could not load public groups. Please try again.")
		return
	}

	embed := createGroupListEmbed("🌐 Public Groups", groups)
	if _, err := common.FollowUpWithEmbed(s, i, embed, nil, true); err != nil {
		log.Errorf("Failed to send public groups: %v", err)
	}
}

// handleGroupLink handles /group link id:<group-id> channel:<channel>. The
// link is verified against the remote service before it is stored.
func (f *Feature) handleGroupLink(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "This command only works in a server.")
		return
	}

	var groupID string
	var announceChannelID *int64
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		switch opt.Name {
		case "id":
			groupID = strings.TrimSpace(opt.StringValue())
		case "channel":
			channel := opt.ChannelValue(s)
			if channel != nil {
				if parsed, err := strconv.ParseInt(channel.ID, 10, 64); err == nil {
					announceChannelID = &parsed
				}
			}
		}
	}
	if groupID == "" {
		common.RespondWithError(s, i, "Please provide a group ID.")
		return
	}

	group, err := f.groupService.GetGroup(ctx, groupID)
	if errors.Is(err, api.ErrNotFound) {
		common.RespondWithError(s, i, fmt.Sprintf("No group found with ID `%s`.", groupID))
		return
	}
	if err != nil {
		log.Errorf("Failed to verify group %s for linking: %v", groupID, err)
		common.RespondWithError(s, i, "Could not verify the group. Please try again.")
		return
	}

	linkedBy, _ := strconv.ParseInt(interactionUser(i).ID, 10, 64)
	link := &models.GuildLink{
		GuildID:           guildID,
		GroupID:           group.ID,
		AnnounceChannelID: announceChannelID,
		LinkedBy:          linkedBy,
	}
	if err := f.guildLinks.Upsert(ctx, link); err != nil {
		log.Errorf("Failed to store guild link for %d: %v", guildID, err)
		common.RespondWithError(s, i, "Could not save the link. Please try again.")
		return
	}

	f.eventBus.Emit(ctx, events.GroupLinkedEvent{
		GuildID:   guildID,
		GroupID:   group.ID,
		GroupName: group.Name,
	})

	message := fmt.Sprintf("This server is now linked to **%s**.", group.Name)
	if members, err := f.groupService.Members(ctx, group.ID); err == nil {
		message = fmt.Sprintf("This server is now linked to **%s** (%d members).", group.Name, len(members))
	}
	common.RespondWithSuccess(s, i, message, false)
}

// handleGroupUnlink handles /group unlink, removing the link and the bet
// message registry entries that depend on it
func (f *Feature) handleGroupUnlink(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "This command only works in a server.")
		return
	}

	if err := f.guildLinks.Unlink(ctx, guildID); err != nil {
		log.Errorf("Failed to unlink guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Could not unlink this server. Please try again.")
		return
	}

	common.RespondWithSuccess(s, i, "This server is no longer linked to a group.", false)
}

// lookupLink loads the guild's group link, returning nil when the guild is
// not linked or the lookup fails
func (f *Feature) lookupLink(ctx context.Context, guildID string) *models.GuildLink {
	parsed, err := strconv.ParseInt(guildID, 10, 64)
	if err != nil {
		return nil
	}

	link, err := f.guildLinks.GetByGuild(ctx, parsed)
	if err != nil {
		log.Errorf("Failed to look up guild link for %s: %v", guildID, err)
		return nil
	}
	return link
}

// interactionUser returns the invoking user for guild and DM interactions
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
