package service

import (
	"context"

	"poolbot/api"
	"poolbot/models"
)

// BetsAPI defines the remote bet operations the services depend on
type BetsAPI interface {
	// GetBet fetches one bet's current state
	GetBet(ctx context.Context, betID string) (*models.Bet, error)

	// Contribute submits a stake toward one side of a bet
	Contribute(ctx context.Context, req api.ContributionRequest) error

	// CreateBet creates a bet in a group
	CreateBet(ctx context.Context, req api.CreateBetRequest) (*models.Bet, error)

	// ListGroupBets fetches the bets of a group
	ListGroupBets(ctx context.Context, groupID string, limit, offset int) ([]*models.Bet, error)

	// ListActiveBets fetches all active bets
	ListActiveBets(ctx context.Context) ([]*models.Bet, error)
}

// GroupsAPI defines the remote group operations the services depend on
type GroupsAPI interface {
	// GetGroup fetches one group
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// GetGroupMembers fetches the member list of a group
	GetGroupMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error)

	// CreateGroup creates a new group
	CreateGroup(ctx context.Context, req api.CreateGroupRequest) (*models.Group, error)

	// JoinGroup joins a group by its join code
	JoinGroup(ctx context.Context, joinCode string) error

	// LeaveGroup leaves a group
	LeaveGroup(ctx context.Context, groupID string) error

	// SearchGroups searches public groups by name
	SearchGroups(ctx context.Context, term string) ([]*models.Group, error)

	// PublicGroups lists all public groups
	PublicGroups(ctx context.Context) ([]*models.Group, error)
}

// StatusFilter selects bets by status client-side. Matching is an exact
// string comparison after case folding; unknown statuses only match All.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
	FilterPending   StatusFilter = "pending"
)

// BetService defines the bet-facing operations the presentation layer uses
type BetService interface {
	// GetBet loads one bet's current state from the remote service
	GetBet(ctx context.Context, betID string) (*models.Bet, error)

	// Contribute validates and submits a contribution, then re-fetches the
	// bet so the returned state is the server's, never a local increment
	Contribute(ctx context.Context, betID string, submission models.ContributionSubmission) (*models.Bet, error)

	// CreateBet creates a bet in a group
	CreateBet(ctx context.Context, req api.CreateBetRequest) (*models.Bet, error)

	// ListGroupBets fetches a group's bets and applies the status filter
	ListGroupBets(ctx context.Context, groupID string, filter StatusFilter, limit, offset int) ([]*models.Bet, error)

	// ListActiveBets fetches all active bets across groups
	ListActiveBets(ctx context.Context) ([]*models.Bet, error)
}

// GroupService defines the group-facing operations the presentation layer uses
type GroupService interface {
	// GetGroup loads one group
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// Members loads a group's member list
	Members(ctx context.Context, groupID string) ([]*models.GroupMember, error)

	// Overview loads a group with its members and bets in parallel; if any
	// fetch fails the whole overview fails and partial results are discarded
	Overview(ctx context.Context, groupID string) (*models.GroupOverview, error)

	// CreateGroup creates a new group
	CreateGroup(ctx context.Context, name string, private bool) (*models.Group, error)

	// Join joins a group by join code
	Join(ctx context.Context, joinCode string) error

	// Leave leaves a group
	Leave(ctx context.Context, groupID string) error

	// Search searches public groups by name
	Search(ctx context.Context, term string) ([]*models.Group, error)

	// Browse lists all public groups
	Browse(ctx context.Context) ([]*models.Group, error)
}
