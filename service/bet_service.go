package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"poolbot/api"
	"poolbot/events"
	"poolbot/models"
)

// betService implements the BetService interface against the remote API
type betService struct {
	bets     BetsAPI
	eventBus *events.Bus
}

// NewBetService creates a new bet service
func NewBetService(bets BetsAPI, eventBus *events.Bus) BetService {
	return &betService{
		bets:     bets,
		eventBus: eventBus,
	}
}

// GetBet loads one bet's current state from the remote service
func (s *betService) GetBet(ctx context.Context, betID string) (*models.Bet, error) {
	bet, err := s.bets.GetBet(ctx, betID)
	if err != nil {
		return nil, err
	}
	return bet, nil
}

// Contribute validates the submission, posts it, then re-fetches the bet.
// The returned bet is always the server's post-contribution state.
func (s *betService) Contribute(ctx context.Context, betID string, submission models.ContributionSubmission) (*models.Bet, error) {
	// Fetch first so validation runs against the bet's actual topology
	bet, err := s.bets.GetBet(ctx, betID)
	if err != nil {
		return nil, err
	}

	if !bet.IsActive() {
		return nil, fmt.Errorf("bet is %s and no longer accepts contributions", bet.Status)
	}
	if err := submission.Validate(bet.BetType); err != nil {
		return nil, err
	}

	if err := s.bets.Contribute(ctx, api.ContributionRequest{
		BetID:    betID,
		BetSide:  submission.Side,
		Quantity: submission.Amount,
	}); err != nil {
		return nil, fmt.Errorf("failed to submit contribution: %w", err)
	}

	// Re-fetch for the authoritative total. If the re-fetch fails the
	// contribution still went through; surface the fetch error rather than
	// guessing at the new total.
	updated, err := s.bets.GetBet(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("contribution accepted but refresh failed: %w", err)
	}

	log.WithFields(log.Fields{
		"betID":    betID,
		"side":     submission.Side,
		"quantity": submission.Amount,
		"total":    updated.CurrentTotal,
	}).Info("Contribution submitted")

	s.eventBus.Emit(ctx, events.ContributionSubmittedEvent{
		BetID:       betID,
		GroupID:     updated.GroupID,
		Description: updated.Description,
		Side:        submission.Side,
		Quantity:    submission.Amount,
		NewTotal:    updated.CurrentTotal,
		RewardType:  updated.RewardType,
	})

	return updated, nil
}

// CreateBet creates a bet after checking the creation fields
func (s *betService) CreateBet(ctx context.Context, req api.CreateBetRequest) (*models.Bet, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("bet description is required")
	}
	if !req.Topology.Valid() {
		return nil, fmt.Errorf("unknown bet topology %q", req.Topology)
	}
	if req.Topology == models.TopologySinglePool && req.TargetQuantity <= 0 {
		return nil, fmt.Errorf("a %s bet requires a positive target quantity", models.TopologySinglePool.Label())
	}
	if req.RequiredWitnesses < 0 {
		return nil, fmt.Errorf("required witnesses cannot be negative")
	}
	if req.VerificationDeadline != nil && !req.VerificationDeadline.After(time.Now()) {
		return nil, fmt.Errorf("verification deadline must be in the future")
	}

	bet, err := s.bets.CreateBet(ctx, req)
	if err != nil {
		return nil, err
	}

	if bet.VerificationDeadline != nil && bet.VerificationDeadline.Before(time.Now()) {
		log.WithField("betID", bet.ID).Warn("Remote service accepted a bet with a past verification deadline")
	}

	s.eventBus.Emit(ctx, events.BetCreatedEvent{
		BetID:       bet.ID,
		GroupID:     bet.GroupID,
		Description: bet.Description,
		Topology:    bet.BetType,
	})

	return bet, nil
}

// ListGroupBets fetches a group's bets and applies the client-side status
// filter. limit and offset are handed to the remote service untouched.
func (s *betService) ListGroupBets(ctx context.Context, groupID string, filter StatusFilter, limit, offset int) ([]*models.Bet, error) {
	bets, err := s.bets.ListGroupBets(ctx, groupID, limit, offset)
	if err != nil {
		return nil, err
	}
	return FilterBets(bets, filter), nil
}

// ListActiveBets fetches all active bets across groups
func (s *betService) ListActiveBets(ctx context.Context) ([]*models.Bet, error) {
	return s.bets.ListActiveBets(ctx)
}

// FilterBets applies a status filter to a bet list. Exact match after case
// folding; FilterAll and the empty filter pass everything through.
func FilterBets(bets []*models.Bet, filter StatusFilter) []*models.Bet {
	if filter == "" || filter == FilterAll {
		return bets
	}

	want := strings.ToLower(string(filter))
	filtered := make([]*models.Bet, 0, len(bets))
	for _, bet := range bets {
		if strings.ToLower(string(bet.Status)) == want {
			filtered = append(filtered, bet)
		}
	}
	return filtered
}
