package bets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"poolbot/api"
	"poolbot/bot/common"
	"poolbot/models"
	"poolbot/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleBetView handles /bet view id:<bet-id>. A missing bet and a transport
// failure get distinct messages.
func (f *Feature) handleBetView(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var betID string
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		if opt.Name == "id" {
			betID = strings.TrimSpace(opt.StringValue())
		}
	}
	if betID == "" {
		common.RespondWithError(s, i, "Please provide a bet ID.")
		return
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer bet view response: %v", err)
		return
	}

	bet, err := f.betService.GetBet(ctx, betID)
	if errors.Is(err, api.ErrNotFound) {
		common.FollowUpWithError(s, i, fmt.Sprintf("No bet found with ID `%s`.", betID))
		return
	}
	if err != nil {
		log.Errorf("Failed to load bet %s: %v", betID, err)
		common.FollowUpWithError(s, i, "Could not load the bet. Please try again.")
		return
	}

	embed := createBetDetailEmbed(bet)
	components := CreateTriggerComponents(bet)

	msg, err := common.FollowUpWithEmbed(s, i, embed, components, false)
	if err != nil {
		log.Errorf("Failed to send bet view: %v", err)
		return
	}

	f.recordBetMessage(ctx, msg, i.GuildID, bet.ID)
}

// handleBetList handles /bet list filter:<status>
func (f *Feature) handleBetList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	filter := service.FilterAll
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		if opt.Name == "filter" {
			filter = service.StatusFilter(opt.StringValue())
		}
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer bet list response: %v", err)
		return
	}

	// List the linked group's bets; with no link in place, fall back to all
	// active bets across groups.
	var bets []*models.Bet
	link, err := f.linkedGroup(ctx, i.GuildID)
	if err == nil {
		bets, err = f.betService.ListGroupBets(ctx, link.GroupID, filter, 50, 0)
	} else {
		bets, err = f.betService.ListActiveBets(ctx)
		if err == nil {
			bets = service.FilterBets(bets, filter)
		}
	}
	if err != nil {
		log.Errorf("Failed to list bets: %v", err)
		common.FollowUpWithError(s, i, "Could not load bets. Please try again.")
		return
	}

	embed := createBetListEmbed(bets, string(filter))
	if _, err := common.FollowUpWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Failed to send bet list: %v", err)
	}
}

// handleBetCreate handles /bet create type:<topology> by opening the create modal
func (f *Feature) handleBetCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var topology models.Topology
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		if opt.Name == "type" {
			topology = models.Topology(opt.StringValue())
		}
	}
	if !topology.Valid() {
		common.RespondWithError(s, i, "Unknown bet type.")
		return
	}

	if _, err := f.linkedGroup(ctx, i.GuildID); err != nil {
		common.RespondWithError(s, i, err.Error())
		return
	}

	modal := buildCreateBetModal(topology)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &modal,
	})
	if err != nil {
		log.Errorf("Failed to show create bet modal: %v", err)
	}
}

// handleCaptureOpen opens a capture prompt for the side encoded in the
// custom ID, format: pool_open_<side>_<bet-id>
func (f *Feature) handleCaptureOpen(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	parts := strings.SplitN(strings.TrimPrefix(customID, "pool_open_"), "_", 2)
	if len(parts) != 2 {
		common.RespondWithError(s, i, "Invalid contribute button.")
		return
	}
	side := models.Side(parts[0])
	betID := parts[1]

	bet, err := f.betService.GetBet(ctx, betID)
	if errors.Is(err, api.ErrNotFound) {
		common.RespondWithError(s, i, "This bet no longer exists.")
		return
	}
	if err != nil {
		log.Errorf("Failed to load bet %s for capture: %v", betID, err)
		common.RespondWithError(s, i, "Could not load the bet. Please try again.")
		return
	}
	if !bet.IsActive() {
		common.RespondWithError(s, i, "This bet is no longer accepting contributions.")
		return
	}

	userID, err := strconv.ParseInt(interactionUser(i).ID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process your request.")
		return
	}

	capture := NewCapture(bet.ID, bet.BetType, nil)
	capture.OpenFor(side)

	session := &captureSession{
		UserID:      userID,
		Capture:     capture,
		ChannelID:   i.ChannelID,
		GuildID:     i.GuildID,
		Description: bet.Description,
		RewardType:  bet.RewardType,
	}
	if i.Message != nil {
		session.MessageID = i.Message.ID
	}
	saveCaptureSession(session)

	embed := createCaptureEmbed(capture, bet.Description, bet.RewardType)
	components := buildCaptureComponents(capture, f.quickPicks, bet.RewardType)
	if err := common.RespondWithEmbed(s, i, embed, components, true); err != nil {
		log.Errorf("Failed to open capture prompt: %v", err)
	}
}

// handleRefresh re-fetches a bet and updates the message in place
func (f *Feature) handleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate, betID string) {
	ctx := context.Background()

	bet, err := f.betService.GetBet(ctx, betID)
	if errors.Is(err, api.ErrNotFound) {
		common.RespondWithError(s, i, "This bet no longer exists.")
		return
	}
	if err != nil {
		log.Errorf("Failed to refresh bet %s: %v", betID, err)
		common.RespondWithError(s, i, "Could not refresh the bet. Please try again.")
		return
	}

	embed := createBetDetailEmbed(bet)
	components := CreateTriggerComponents(bet)
	if err := common.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Errorf("Failed to update bet message: %v", err)
	}
}

// handleQuickPick sets the capture amount from a preset button. Picking a
// preset overwrites any previous amount.
func (f *Feature) handleQuickPick(s *discordgo.Session, i *discordgo.InteractionCreate, raw string) {
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Invalid amount.")
		return
	}

	session := f.activeSession(s, i)
	if session == nil {
		return
	}

	session.Capture.SetAmount(amount)
	saveCaptureSession(session)
	f.updateCapturePrompt(s, i, session)
}

// handleSideSelect sets or overwrites the side on a two-sided capture
func (f *Feature) handleSideSelect(s *discordgo.Session, i *discordgo.InteractionCreate, raw string) {
	session := f.activeSession(s, i)
	if session == nil {
		return
	}

	session.Capture.SelectSide(models.Side(raw))
	saveCaptureSession(session)
	f.updateCapturePrompt(s, i, session)
}

// handleCustomAmount opens the custom amount modal
func (f *Feature) handleCustomAmount(s *discordgo.Session, i *discordgo.InteractionCreate) {
	session := f.activeSession(s, i)
	if session == nil {
		return
	}

	modal := buildAmountModal(session.RewardType)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &modal,
	})
	if err != nil {
		log.Errorf("Failed to show amount modal: %v", err)
	}
}

// handleAmountModal applies the custom amount from the modal to the capture
func (f *Feature) handleAmountModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	session := f.activeSession(s, i)
	if session == nil {
		return
	}

	var raw string
	for _, comp := range i.ModalSubmitData().Components {
		row := comp.(*discordgo.ActionsRow)
		for _, inner := range row.Components {
			input := inner.(*discordgo.TextInput)
			if input.CustomID == "pool_amount_input" {
				raw = strings.TrimSpace(input.Value)
			}
		}
	}

	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount <= 0 {
		common.RespondWithError(s, i, "Please enter a positive whole number.")
		return
	}

	session.Capture.SetAmount(amount)
	saveCaptureSession(session)
	f.updateCapturePrompt(s, i, session)
}

// handleSubmit finalizes the capture and submits the contribution. The
// capture guard makes an unready submit a no-op, so a stale click cannot
// double-submit.
func (f *Feature) handleSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	session := f.activeSession(s, i)
	if session == nil {
		return
	}

	betID := session.Capture.BetID()
	submission, ok := session.Capture.Submit()
	if !ok {
		f.updateCapturePrompt(s, i, session)
		return
	}

	// Acknowledge immediately with the buttons removed so a second click
	// has nothing to land on while the request is in flight.
	pending := &discordgo.MessageEmbed{
		Title:       "⏳ Submitting...",
		Description: session.Description,
		Color:       common.ColorNeutral,
	}
	if err := common.UpdateComponentMessage(s, i, pending, []discordgo.MessageComponent{}); err != nil {
		log.Errorf("Failed to acknowledge submit: %v", err)
		return
	}

	bet, err := f.betService.Contribute(ctx, betID, submission)
	if err != nil {
		f.editCaptureResult(s, i, &discordgo.MessageEmbed{
			Title:       "❌ Contribution Failed",
			Description: contributeErrorMessage(err),
			Color:       common.ColorDanger,
		})
		return
	}

	deleteCaptureSession(session.UserID)

	placed := fmt.Sprintf("You put %s toward the goal.", common.FormatStake(submission.Amount, bet.RewardType))
	if bet.BetType.RequiresSideChoice() {
		placed = fmt.Sprintf("You put %s on **%s**.",
			common.FormatStake(submission.Amount, bet.RewardType),
			strings.Title(string(submission.Side)))
	}

	f.editCaptureResult(s, i, &discordgo.MessageEmbed{
		Title: "✅ Contribution Accepted",
		Description: fmt.Sprintf("%s\nPool total is now %s.",
			placed, common.FormatStake(bet.CurrentTotal, bet.RewardType)),
		Color: common.ColorSuccess,
	})

	f.refreshBetMessages(ctx, s, bet)
}

// handleCancel discards the capture without submitting
func (f *Feature) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, err := strconv.ParseInt(interactionUser(i).ID, 10, 64)
	if err == nil {
		if session := getCaptureSession(userID); session != nil {
			session.Capture.Close()
			deleteCaptureSession(userID)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: "Contribution cancelled.",
		Color: common.ColorNeutral,
	}
	if err := common.UpdateComponentMessage(s, i, embed, []discordgo.MessageComponent{}); err != nil {
		log.Errorf("Failed to cancel capture prompt: %v", err)
	}
}

// handleCreateModal handles the create bet modal submission
func (f *Feature) handleCreateModal(s *discordgo.Session, i *discordgo.InteractionCreate, topologyRaw string) {
	ctx := context.Background()

	topology := models.Topology(topologyRaw)
	if !topology.Valid() {
		common.RespondWithError(s, i, "Unknown bet type.")
		return
	}

	link, err := f.linkedGroup(ctx, i.GuildID)
	if err != nil {
		common.RespondWithError(s, i, err.Error())
		return
	}

	var description, reward, targetRaw, witnessesRaw, deadlineRaw string
	for _, comp := range i.ModalSubmitData().Components {
		row := comp.(*discordgo.ActionsRow)
		for _, inner := range row.Components {
			input := inner.(*discordgo.TextInput)
			value := strings.TrimSpace(input.Value)
			switch input.CustomID {
			case "pool_create_description":
				description = value
			case "pool_create_reward":
				reward = value
			case "pool_create_target":
				targetRaw = value
			case "pool_create_witnesses":
				witnessesRaw = value
			case "pool_create_deadline":
				deadlineRaw = value
			}
		}
	}

	req := api.CreateBetRequest{
		CreatorID:   interactionUser(i).ID,
		GroupID:     link.GroupID,
		Description: description,
		RewardType:  reward,
		Topology:    topology,
	}

	if targetRaw != "" {
		target, err := strconv.ParseInt(targetRaw, 10, 64)
		if err != nil || target <= 0 {
			common.RespondWithError(s, i, "Target quantity must be a positive whole number.")
			return
		}
		req.TargetQuantity = target
	}

	if witnessesRaw != "" {
		witnesses, err := strconv.Atoi(witnessesRaw)
		if err != nil || witnesses < 0 {
			common.RespondWithError(s, i, "Witnesses must be a non-negative whole number.")
			return
		}
		req.RequiredWitnesses = witnesses
	}

	if deadlineRaw != "" {
		days, err := strconv.Atoi(deadlineRaw)
		if err != nil || days <= 0 {
			common.RespondWithError(s, i, "Deadline must be a positive number of days.")
			return
		}
		deadline := time.Now().AddDate(0, 0, days)
		req.VerificationDeadline = &deadline
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer bet create response: %v", err)
		return
	}

	bet, err := f.betService.CreateBet(ctx, req)
	if err != nil {
		log.Errorf("Failed to create bet: %v", err)
		common.FollowUpWithError(s, i, "Could not create the bet. Please try again.")
		return
	}

	embed := createBetDetailEmbed(bet)
	components := CreateTriggerComponents(bet)
	msg, err := common.FollowUpWithEmbed(s, i, embed, components, false)
	if err != nil {
		log.Errorf("Failed to send created bet: %v", err)
		return
	}

	f.recordBetMessage(ctx, msg, i.GuildID, bet.ID)
}

// activeSession resolves the requesting user's capture session, responding
// with an error when it has expired
func (f *Feature) activeSession(s *discordgo.Session, i *discordgo.InteractionCreate) *captureSession {
	userID, err := strconv.ParseInt(interactionUser(i).ID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process your request.")
		return nil
	}

	session := getCaptureSession(userID)
	if session == nil {
		common.RespondWithError(s, i, "This prompt has expired. Press the contribute button on the bet again.")
		return nil
	}
	return session
}

// updateCapturePrompt re-renders the ephemeral capture prompt in place
func (f *Feature) updateCapturePrompt(s *discordgo.Session, i *discordgo.InteractionCreate, session *captureSession) {
	embed := createCaptureEmbed(session.Capture, session.Description, session.RewardType)
	components := buildCaptureComponents(session.Capture, f.quickPicks, session.RewardType)
	if err := common.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Errorf("Failed to update capture prompt: %v", err)
	}
}

// editCaptureResult replaces the capture prompt with a final result embed
func (f *Feature) editCaptureResult(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if err := common.UpdateMessage(s, i, embed, []discordgo.MessageComponent{}); err != nil {
		log.Errorf("Failed to edit capture result: %v", err)
	}
}

// recordBetMessage registers a message as displaying a bet so later
// contributions can refresh it. Registry failures are logged, not surfaced.
func (f *Feature) recordBetMessage(ctx context.Context, msg *discordgo.Message, guildID, betID string) {
	messageID, err := strconv.ParseInt(msg.ID, 10, 64)
	if err != nil {
		return
	}
	channelID, err := strconv.ParseInt(msg.ChannelID, 10, 64)
	if err != nil {
		return
	}
	parsedGuildID, _ := strconv.ParseInt(guildID, 10, 64)

	record := &models.BetMessage{
		MessageID: messageID,
		ChannelID: channelID,
		GuildID:   parsedGuildID,
		BetID:     betID,
	}
	if err := f.betMessages.Record(ctx, record); err != nil {
		log.Errorf("Failed to record bet message %s: %v", msg.ID, err)
	}
}

// refreshBetMessages pushes the bet's latest state to every message
// registered for it
func (f *Feature) refreshBetMessages(ctx context.Context, s *discordgo.Session, bet *models.Bet) {
	messages, err := f.betMessages.GetByBet(ctx, bet.ID)
	if err != nil {
		log.Errorf("Failed to look up messages for bet %s: %v", bet.ID, err)
		return
	}

	embed := createBetDetailEmbed(bet)
	components := CreateTriggerComponents(bet)
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	for _, msg := range messages {
		_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    strconv.FormatInt(msg.ChannelID, 10),
			ID:         strconv.FormatInt(msg.MessageID, 10),
			Embeds:     &[]*discordgo.MessageEmbed{embed},
			Components: &components,
		})
		if err != nil {
			log.Errorf("Failed to refresh bet message %d: %v", msg.MessageID, err)
		}
	}
}

// linkedGroup loads the guild's group link, returning a user-facing error
// when the guild is not linked
func (f *Feature) linkedGroup(ctx context.Context, guildID string) (*models.GuildLink, error) {
	parsed, err := strconv.ParseInt(guildID, 10, 64)
	if err != nil {
		return nil, errors.New("This command only works in a server.")
	}

	link, err := f.guildLinks.GetByGuild(ctx, parsed)
	if err != nil {
		log.Errorf("Failed to look up guild link for %s: %v", guildID, err)
		return nil, errors.New("Could not look up this server's group. Please try again.")
	}
	if link == nil {
		return nil, errors.New("This server is not linked to a group yet. Use `/group link` first.")
	}
	return link, nil
}

// contributeErrorMessage maps a contribution failure to a user-facing message
func contributeErrorMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrNotFound):
		return "This bet no longer exists."
	case errors.Is(err, api.ErrUnauthorized):
		return "The betting service rejected the bot's credentials. Please tell an admin."
	default:
		return err.Error()
	}
}

// interactionUser returns the invoking user for guild and DM interactions
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
