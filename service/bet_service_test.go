package service

import (
	"context"
	"errors"
	"testing"

	"poolbot/api"
	"poolbot/events"
	"poolbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeBet(total int64) *models.Bet {
	return &models.Bet{
		ID:           "bet-1",
		GroupID:      "group-1",
		Description:  "100 pushups by Friday",
		BetType:      models.TopologyTwoSided,
		RewardType:   "pushups",
		CurrentTotal: total,
		Status:       models.BetStatusActive,
	}
}

func TestBetService_Contribute_ReturnsRefetchedState(t *testing.T) {
	ctx := context.Background()
	mockBets := new(MockBetsAPI)
	service := NewBetService(mockBets, events.NewBus())

	before := activeBet(40)
	after := activeBet(90)

	mockBets.On("GetBet", ctx, "bet-1").Return(before, nil).Once()
	mockBets.On("Contribute", ctx, api.ContributionRequest{
		BetID:    "bet-1",
		BetSide:  models.SideFor,
		Quantity: 50,
	}).Return(nil)
	mockBets.On("GetBet", ctx, "bet-1").Return(after, nil).Once()

	bet, err := service.Contribute(ctx, "bet-1", models.ContributionSubmission{
		Amount: 50,
		Side:   models.SideFor,
	})

	require.NoError(t, err)
	// The total comes from the re-fetch, not from adding locally
	assert.Equal(t, int64(90), bet.CurrentTotal)
	mockBets.AssertExpectations(t)
}

func TestBetService_Contribute_RejectsInactiveBet(t *testing.T) {
	ctx := context.Background()
	mockBets := new(MockBetsAPI)
	service := NewBetService(mockBets, events.NewBus())

	closed := activeBet(40)
	closed.Status = models.BetStatusCompleted
	mockBets.On("GetBet", ctx, "bet-1").Return(closed, nil).Once()

	_, err := service.Contribute(ctx, "bet-1", models.ContributionSubmission{
		Amount: 10,
		Side:   models.SideFor,
	})

	require.Error(t, err)
	mockBets.AssertNotCalled(t, "Contribute")
}

func TestBetService_Contribute_RejectsInvalidSubmission(t *testing.T) {
	ctx := context.Background()
	mockBets := new(MockBetsAPI)
	service := NewBetService(mockBets, events.NewBus())

	tests := []struct {
		name       string
		submission models.ContributionSubmission
	}{
		{"zero amount", models.ContributionSubmission{Amount: 0, Side: models.SideFor}},
		{"negative amount", models.ContributionSubmission{Amount: -5, Side: models.SideFor}},
		{"missing side", models.ContributionSubmission{Amount: 10}},
		{"unknown side", models.ContributionSubmission{Amount: 10, Side: "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBets.On("GetBet", ctx, "bet-1").Return(activeBet(0), nil).Once()

			_, err := service.Contribute(ctx, "bet-1", tt.submission)

			require.Error(t, err)
			mockBets.AssertNotCalled(t, "Contribute")
		})
	}
}

func TestBetService_Contribute_SubmitFailureSurfaced(t *testing.T) {
	ctx := context.Background()
	mockBets := new(MockBetsAPI)
	service := NewBetService(mockBets, events.NewBus())

	mockBets.On("GetBet", ctx, "bet-1").Return(activeBet(40), nil).Once()
	mockBets.On("Contribute", ctx, api.ContributionRequest{
		BetID:    "bet-1",
		BetSide:  models.SideAgainst,
		Quantity: 10,
	}).Return(errors.New("boom"))

	_, err := service.Contribute(ctx, "bet-1", models.ContributionSubmission{
		Amount: 10,
		Side:   models.SideAgainst,
	})

	require.Error(t, err)
	// Only the pre-fetch ran; no second fetch after a failed submit
	mockBets.AssertNumberOfCalls(t, "GetBet", 1)
}

func TestBetService_CreateBet_Validation(t *testing.T) {
	ctx := context.Background()
	mockBets := new(MockBetsAPI)
	service := NewBetService(mockBets, events.NewBus())

	tests := []struct {
		name string
		req  api.CreateBetRequest
	}{
		{"empty description", api.CreateBetRequest{Topology: models.TopologyTwoSided}},
		{"unknown topology", api.CreateBetRequest{Description: "x", Topology: "sideways"}},
		{"single pool without target", api.CreateBetRequest{Description: "x", Topology: models.TopologySinglePool}},
		{"negative witnesses", api.CreateBetRequest{Description: "x", Topology: models.TopologyTwoSided, RequiredWitnesses: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateBet(ctx, tt.req)
			require.Error(t, err)
		})
	}
	mockBets.AssertNotCalled(t, "CreateBet")
}

func TestBetService_ListGroupBets_AppliesFilter(t *testing.T) {
	ctx := context.Background()
	mockBets := new(MockBetsAPI)
	service := NewBetService(mockBets, events.NewBus())

	all := []*models.Bet{
		{ID: "a", Status: models.BetStatusActive},
		{ID: "b", Status: models.BetStatusCompleted},
		{ID: "c", Status: models.BetStatusActive},
	}
	mockBets.On("ListGroupBets", ctx, "group-1", 50, 0).Return(all, nil)

	bets, err := service.ListGroupBets(ctx, "group-1", FilterActive, 50, 0)

	require.NoError(t, err)
	require.Len(t, bets, 2)
	assert.Equal(t, "a", bets[0].ID)
	assert.Equal(t, "c", bets[1].ID)
}

func TestFilterBets(t *testing.T) {
	bets := []*models.Bet{
		{ID: "a", Status: models.BetStatusActive},
		{ID: "b", Status: models.BetStatusPending},
		{ID: "c", Status: "ACTIVE"},
		{ID: "d", Status: "archived"},
	}

	t.Run("all passes everything through", func(t *testing.T) {
		assert.Len(t, FilterBets(bets, FilterAll), 4)
		assert.Len(t, FilterBets(bets, ""), 4)
	})

	t.Run("matching is case folded and exact", func(t *testing.T) {
		active := FilterBets(bets, FilterActive)
		require.Len(t, active, 2)
		assert.Equal(t, "a", active[0].ID)
		assert.Equal(t, "c", active[1].ID)
	})

	t.Run("unknown statuses only match all", func(t *testing.T) {
		assert.Empty(t, FilterBets(bets, FilterCompleted))
		assert.Len(t, FilterBets(bets, StatusFilter("archived")), 1)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Empty(t, FilterBets(nil, FilterActive))
	})
}
