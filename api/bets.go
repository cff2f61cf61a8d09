package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"poolbot/models"
)

// ContributionRequest is the wire form of a stake submission
type ContributionRequest struct {
	BetID    string      `json:"bet_id"`
	BetSide  models.Side `json:"bet_side"`
	Quantity int64       `json:"quantity"`
}

// CreateBetRequest carries the fields for creating a bet in a group. The
// topology picks the creation route; it is not part of the body.
type CreateBetRequest struct {
	CreatorID            string          `json:"creator_id"`
	GroupID              string          `json:"group_id"`
	Description          string          `json:"description"`
	RewardType           string          `json:"reward_type"`
	TargetQuantity       int64           `json:"target_quantity,omitempty"`
	RequiredWitnesses    int             `json:"required_witnesses"`
	VerificationDeadline *time.Time      `json:"verification_deadline,omitempty"`
	Topology             models.Topology `json:"-"`
}

// GetBet fetches one bet's current state. Returns ErrNotFound for an
// unknown id.
func (c *Client) GetBet(ctx context.Context, betID string) (*models.Bet, error) {
	var bet models.Bet
	if err := c.do(ctx, http.MethodGet, "/api/bets/"+url.PathEscape(betID), nil, nil, &bet); err != nil {
		return nil, err
	}
	return &bet, nil
}

// Contribute submits a stake toward one side of a bet. The response body is
// the server's view of the bet at submission time; callers re-fetch for the
// authoritative post-contribution state.
func (c *Client) Contribute(ctx context.Context, req ContributionRequest) error {
	return c.do(ctx, http.MethodPost, "/api/bets/contribute", nil, req, nil)
}

// CreateBet creates a bet in a group. The remote service splits the create
// route per topology.
func (c *Client) CreateBet(ctx context.Context, req CreateBetRequest) (*models.Bet, error) {
	var path string
	switch req.Topology {
	case models.TopologySinglePool:
		path = "/api/bets/one-to-many"
	case models.TopologyTwoSided:
		path = "/api/bets/many-to-many"
	default:
		return nil, fmt.Errorf("unknown bet topology %q", req.Topology)
	}

	var bet models.Bet
	if err := c.do(ctx, http.MethodPost, path, nil, req, &bet); err != nil {
		return nil, err
	}
	return &bet, nil
}

// ListGroupBets fetches the bets of a group, newest first. limit and offset
// are passed through to the service untouched; zero values omit them.
func (c *Client) ListGroupBets(ctx context.Context, groupID string, limit, offset int) ([]*models.Bet, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var bets []*models.Bet
	if err := c.do(ctx, http.MethodGet, "/api/bets/group/"+url.PathEscape(groupID), query, nil, &bets); err != nil {
		return nil, err
	}
	return bets, nil
}

// ListActiveBets fetches all currently active bets across groups
func (c *Client) ListActiveBets(ctx context.Context) ([]*models.Bet, error) {
	var bets []*models.Bet
	if err := c.do(ctx, http.MethodGet, "/api/bets/active", nil, nil, &bets); err != nil {
		return nil, err
	}
	return bets, nil
}
