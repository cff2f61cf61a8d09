package bets

import (
	"strings"
	"time"

	"poolbot/bot/common"
	"poolbot/repository"
	"poolbot/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature owns the bet presentation surface: the /bet command, the bet
// detail and list embeds, and the contribution capture flow behind the
// contribute buttons.
type Feature struct {
	betService  service.BetService
	guildLinks  *repository.GuildLinkRepository
	betMessages *repository.BetMessageRepository
	quickPicks  []int64
}

// NewFeature creates the bets feature and starts the capture session cleanup loop
func NewFeature(betService service.BetService, guildLinks *repository.GuildLinkRepository, betMessages *repository.BetMessageRepository, quickPicks []int64) *Feature {
	f := &Feature{
		betService:  betService,
		guildLinks:  guildLinks,
		betMessages: betMessages,
		quickPicks:  quickPicks,
	}

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			cleanupSessions()
		}
	}()

	return f
}

// HandleCommand handles the /bet command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand.")
		return
	}

	switch options[0].Name {
	case "view":
		f.handleBetView(s, i)
	case "list":
		f.handleBetList(s, i)
	case "create":
		f.handleBetCreate(s, i)
	default:
		common.RespondWithError(s, i, "Unknown subcommand.")
	}
}

// HandleInteraction handles contribute buttons and modals
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		f.handleComponentInteraction(s, i)
	case discordgo.InteractionModalSubmit:
		f.handleModalSubmit(s, i)
	default:
		log.Warnf("Unknown interaction type in bets: %v", i.Type)
	}
}

// handleComponentInteraction routes button clicks based on custom ID
func (f *Feature) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, "pool_open_"):
		f.handleCaptureOpen(s, i, customID)
	case strings.HasPrefix(customID, "pool_refresh_"):
		f.handleRefresh(s, i, strings.TrimPrefix(customID, "pool_refresh_"))
	case strings.HasPrefix(customID, "pool_quick_"):
		f.handleQuickPick(s, i, strings.TrimPrefix(customID, "pool_quick_"))
	case strings.HasPrefix(customID, "pool_side_"):
		f.handleSideSelect(s, i, strings.TrimPrefix(customID, "pool_side_"))
	case customID == "pool_custom":
		f.handleCustomAmount(s, i)
	case customID == "pool_submit":
		f.handleSubmit(s, i)
	case customID == "pool_cancel":
		f.handleCancel(s, i)
	}
}

// handleModalSubmit routes modal submissions based on custom ID
func (f *Feature) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.ModalSubmitData().CustomID

	switch {
	case customID == "pool_amount_modal":
		f.handleAmountModal(s, i)
	case strings.HasPrefix(customID, "pool_create_modal_"):
		f.handleCreateModal(s, i, strings.TrimPrefix(customID, "pool_create_modal_"))
	}
}
