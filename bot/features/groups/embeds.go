package groups

import (
	"fmt"
	"strings"

	"poolbot/bot/common"
	"poolbot/models"

	"github.com/bwmarrin/discordgo"
)

// createGroupEmbed shows a single group, including its join code for the
// creator's eyes
func createGroupEmbed(group *models.Group, showJoinCode bool) *discordgo.MessageEmbed {
	visibility := "Public"
	if group.IsPrivate {
		visibility = "Private"
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Visibility",
			Value:  visibility,
			Inline: true,
		},
		{
			Name:   "Created",
			Value:  common.FormatDiscordTimestamp(group.CreatedAt, "D"),
			Inline: true,
		},
	}

	if showJoinCode {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Join Code",
			Value:  fmt.Sprintf("`%s`", group.JoinCode),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "👥 " + group.Name,
		Color:  common.ColorPrimary,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Group ID: %s", group.ID)},
	}
}

// createGroupListEmbed shows search or browse results
func createGroupListEmbed(title string, groups []*models.Group) *discordgo.MessageEmbed {
	if len(groups) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No groups found.",
			Color:       common.ColorNeutral,
		}
	}

	var sb strings.Builder
	for _, group := range groups {
		sb.WriteString(fmt.Sprintf("**%s**\n-# `%s`\n\n", group.Name, group.ID))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       common.ColorPrimary,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d groups", len(groups))},
	}
}

// createOverviewEmbed shows a group with its member roster and bet activity.
// viewerID marks whether the requesting user belongs to the group.
func createOverviewEmbed(overview *models.GroupOverview, viewerID string) *discordgo.MessageEmbed {
	var members strings.Builder
	for _, m := range overview.Members {
		members.WriteString(fmt.Sprintf("• %s\n", m.Username))
	}
	if members.Len() == 0 {
		members.WriteString("_no members_")
	}

	stats := models.CollectBetStats(overview.Bets)
	bets := fmt.Sprintf("%d active · %d completed · %d failed · %d pending",
		stats.Active, stats.Completed, stats.Failed, stats.Pending)

	description := ""
	if !overview.HasMember(viewerID) {
		description = "You are not a member of this group. Use `/group join` with its join code."
	}

	return &discordgo.MessageEmbed{
		Title:       "👥 " + overview.Group.Name,
		Description: description,
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("Members (%d)", len(overview.Members)),
				Value:  members.String(),
				Inline: false,
			},
			{
				Name:   fmt.Sprintf("Bets (%d)", stats.Total),
				Value:  bets,
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Group ID: %s", overview.Group.ID)},
	}
}
