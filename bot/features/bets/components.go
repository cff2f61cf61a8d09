package bets

import (
	"fmt"

	"poolbot/bot/common"
	"poolbot/models"

	"github.com/bwmarrin/discordgo"
)

// CreateTriggerComponents creates the contribute buttons attached to a bet
// message. Single-pool bets get one button; two-sided bets get one per side.
func CreateTriggerComponents(bet *models.Bet) []discordgo.MessageComponent {
	if bet.IsTerminal() {
		return nil
	}

	buttons := []discordgo.MessageComponent{}

	if bet.BetType.RequiresSideChoice() {
		buttons = append(buttons,
			discordgo.Button{
				Label:    "👍 Back For",
				Style:    discordgo.SuccessButton,
				CustomID: fmt.Sprintf("pool_open_%s_%s", models.SideFor, bet.ID),
			},
			discordgo.Button{
				Label:    "👎 Back Against",
				Style:    discordgo.DangerButton,
				CustomID: fmt.Sprintf("pool_open_%s_%s", models.SideAgainst, bet.ID),
			},
		)
	} else {
		buttons = append(buttons, discordgo.Button{
			Label:    "💰 Contribute",
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("pool_open_%s_%s", models.SideFor, bet.ID),
		})
	}

	buttons = append(buttons, discordgo.Button{
		Label:    "🔄 Refresh",
		Style:    discordgo.SecondaryButton,
		CustomID: fmt.Sprintf("pool_refresh_%s", bet.ID),
	})

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: buttons,
		},
	}
}

// buildCaptureComponents creates the components of the ephemeral capture
// prompt: quick picks, a custom amount button, side buttons on two-sided
// bets, and submit/cancel. The submit button stays disabled until the
// capture could actually produce a submission.
func buildCaptureComponents(capture *Capture, quickPicks []int64, rewardType string) []discordgo.MessageComponent {
	components := []discordgo.MessageComponent{}

	quickRow := []discordgo.MessageComponent{}
	for _, amount := range quickPicks {
		style := discordgo.SecondaryButton
		if capture.Amount() == amount {
			style = discordgo.PrimaryButton
		}
		quickRow = append(quickRow, discordgo.Button{
			Label:    common.FormatStake(amount, rewardType),
			Style:    style,
			CustomID: fmt.Sprintf("pool_quick_%d", amount),
		})
	}
	quickRow = append(quickRow, discordgo.Button{
		Label:    "✏️ Custom",
		Style:    discordgo.SecondaryButton,
		CustomID: "pool_custom",
	})
	components = append(components, discordgo.ActionsRow{Components: quickRow})

	if capture.Topology().RequiresSideChoice() {
		side, _ := capture.Side()
		forStyle := discordgo.SecondaryButton
		againstStyle := discordgo.SecondaryButton
		if side == models.SideFor {
			forStyle = discordgo.SuccessButton
		}
		if side == models.SideAgainst {
			againstStyle = discordgo.DangerButton
		}
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "👍 For",
					Style:    forStyle,
					CustomID: fmt.Sprintf("pool_side_%s", models.SideFor),
				},
				discordgo.Button{
					Label:    "👎 Against",
					Style:    againstStyle,
					CustomID: fmt.Sprintf("pool_side_%s", models.SideAgainst),
				},
			},
		})
	}

	_, hasSide := capture.Side()
	ready := capture.State() == CaptureOpenSelected && hasSide && capture.Amount() > 0

	components = append(components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "✅ Submit",
				Style:    discordgo.SuccessButton,
				CustomID: "pool_submit",
				Disabled: !ready,
			},
			discordgo.Button{
				Label:    "Cancel",
				Style:    discordgo.SecondaryButton,
				CustomID: "pool_cancel",
			},
		},
	})

	return components
}

// buildAmountModal creates the modal for entering a custom amount
func buildAmountModal(rewardType string) discordgo.InteractionResponseData {
	return discordgo.InteractionResponseData{
		CustomID: "pool_amount_modal",
		Title:    "Custom Amount",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "pool_amount_input",
						Label:       fmt.Sprintf("Amount (%s)", rewardUnit(rewardType)),
						Style:       discordgo.TextInputShort,
						Placeholder: "25",
						Required:    true,
						MinLength:   1,
						MaxLength:   12,
					},
				},
			},
		},
	}
}

// buildCreateBetModal creates the modal behind /bet create. The topology is
// chosen as a command option because modals have no select inputs.
func buildCreateBetModal(topology models.Topology) discordgo.InteractionResponseData {
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "pool_create_description",
					Label:       "What is the bet?",
					Style:       discordgo.TextInputParagraph,
					Placeholder: "Alice runs a sub-20 5k before October",
					Required:    true,
					MinLength:   3,
					MaxLength:   500,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "pool_create_reward",
					Label:       "Reward type",
					Style:       discordgo.TextInputShort,
					Placeholder: "pushups",
					Required:    true,
					MaxLength:   50,
				},
			},
		},
	}

	if !topology.RequiresSideChoice() {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "pool_create_target",
					Label:       "Target quantity",
					Style:       discordgo.TextInputShort,
					Placeholder: "100",
					Required:    true,
					MaxLength:   12,
				},
			},
		})
	}

	components = append(components,
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "pool_create_witnesses",
					Label:       "Required witnesses",
					Style:       discordgo.TextInputShort,
					Placeholder: "1",
					Required:    false,
					MaxLength:   3,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "pool_create_deadline",
					Label:       "Verification deadline (days from now)",
					Style:       discordgo.TextInputShort,
					Placeholder: "7",
					Required:    false,
					MaxLength:   4,
				},
			},
		},
	)

	return discordgo.InteractionResponseData{
		CustomID:   fmt.Sprintf("pool_create_modal_%s", topology),
		Title:      fmt.Sprintf("New %s Bet", topology.Label()),
		Components: components,
	}
}

// rewardUnit returns the unit shown in labels for a reward type
func rewardUnit(rewardType string) string {
	if rewardType == "" {
		return "units"
	}
	return rewardType
}
