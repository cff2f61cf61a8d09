package bets

import (
	"fmt"
	"strings"

	"poolbot/bot/common"
	"poolbot/models"

	"github.com/bwmarrin/discordgo"
)

// createProgressBar generates a visual progress bar using Unicode block characters
func createProgressBar(fraction float64, length int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(float64(length) * fraction)
	if filled > length {
		filled = length
	}

	bar := strings.Repeat("█", filled)
	bar += strings.Repeat("░", length-filled)

	return bar
}

// statusColor maps a bet status to an embed color
func statusColor(status models.BetStatus) int {
	switch status {
	case models.BetStatusActive:
		return common.ColorPrimary
	case models.BetStatusCompleted:
		return common.ColorSuccess
	case models.BetStatusFailed:
		return common.ColorDanger
	case models.BetStatusPending:
		return common.ColorWarning
	default:
		return common.ColorNeutral
	}
}

// statusEmoji maps a bet status to an emoji indicator
func statusEmoji(status models.BetStatus) string {
	switch status {
	case models.BetStatusActive:
		return "🟢"
	case models.BetStatusCompleted:
		return "✅"
	case models.BetStatusFailed:
		return "🔴"
	case models.BetStatusPending:
		return "🟡"
	default:
		return "⚪"
	}
}

// createBetDetailEmbed creates the full detail embed for a bet. Derived
// metrics that cannot be computed render as N/A rather than being hidden.
func createBetDetailEmbed(bet *models.Bet) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  fmt.Sprintf("%s %s", statusEmoji(bet.Status), strings.Title(string(bet.Status))),
			Inline: true,
		},
		{
			Name:   "Type",
			Value:  bet.BetType.Label(),
			Inline: true,
		},
		{
			Name:   "Pool Total",
			Value:  common.FormatStake(bet.CurrentTotal, bet.RewardType),
			Inline: true,
		},
	}

	if bet.BetType.RequiresSideChoice() {
		price, ok := bet.ImpliedPrice()
		liquidity, _ := bet.Liquidity()
		fields = append(fields,
			&discordgo.MessageEmbedField{
				Name:   "Implied Price",
				Value:  common.FormatPercent(price, ok),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "Liquidity",
				Value:  common.FormatQuantity(liquidity),
				Inline: true,
			},
		)
	} else {
		target := "N/A"
		if bet.TargetQuantity != nil {
			target = common.FormatStake(*bet.TargetQuantity, bet.RewardType)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Target",
			Value:  target,
			Inline: true,
		})

		fraction, ok := bet.ProgressFraction()
		progress := "N/A"
		if ok {
			progress = fmt.Sprintf("%s %s", createProgressBar(fraction, 20), common.FormatPercent(fraction, true))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Progress",
			Value:  progress,
			Inline: false,
		})
	}

	deadline := "N/A"
	if bet.VerificationDeadline != nil {
		deadline = common.FormatDiscordTimestamp(*bet.VerificationDeadline, "f")
	}
	fields = append(fields,
		&discordgo.MessageEmbedField{
			Name:   "Witnesses Required",
			Value:  fmt.Sprintf("%d", bet.RequiredWitnesses),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   "Deadline",
			Value:  deadline,
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   "Participants",
			Value:  fmt.Sprintf("%d", len(bet.Participants)),
			Inline: true,
		},
	)

	return &discordgo.MessageEmbed{
		Title:  "🎲 " + bet.Description,
		Color:  statusColor(bet.Status),
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Bet ID: %s", bet.ID)},
	}
}

// createBetListEmbed creates a compact listing of bets with an optional
// filter label in the title
func createBetListEmbed(bets []*models.Bet, filterLabel string) *discordgo.MessageEmbed {
	title := "🎲 Bets"
	if filterLabel != "" && filterLabel != "all" {
		title = fmt.Sprintf("🎲 %s Bets", strings.Title(filterLabel))
	}

	if len(bets) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No bets found.",
			Color:       common.ColorNeutral,
		}
	}

	var sb strings.Builder
	for _, bet := range bets {
		sb.WriteString(fmt.Sprintf("%s **%s**\n", statusEmoji(bet.Status), bet.Description))
		line := fmt.Sprintf("-# %s · pool %s", bet.BetType.Label(), common.FormatStake(bet.CurrentTotal, bet.RewardType))
		if fraction, ok := bet.ProgressFraction(); ok {
			line += fmt.Sprintf(" · %s", common.FormatPercent(fraction, true))
		}
		sb.WriteString(line + "\n")
		sb.WriteString(fmt.Sprintf("-# `%s`\n\n", bet.ID))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       common.ColorPrimary,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d bets", len(bets))},
	}
}

// createCaptureEmbed creates the ephemeral capture prompt embed reflecting
// the current capture state
func createCaptureEmbed(capture *Capture, description, rewardType string) *discordgo.MessageEmbed {
	amount := "_none_"
	if capture.Amount() > 0 {
		amount = common.FormatStake(capture.Amount(), rewardType)
	}

	sideLine := ""
	if capture.Topology().RequiresSideChoice() {
		if side, ok := capture.Side(); ok {
			sideLine = fmt.Sprintf("\n**Side:** %s", strings.Title(string(side)))
		} else {
			sideLine = "\n**Side:** _pick one below_"
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "💰 Contribute",
		Description: fmt.Sprintf("%s\n\n**Amount:** %s%s", description, amount, sideLine),
		Color:       common.ColorPrimary,
	}
}
