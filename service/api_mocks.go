package service

import (
	"context"

	"poolbot/api"
	"poolbot/models"

	"github.com/stretchr/testify/mock"
)

// MockBetsAPI is a mock implementation of BetsAPI
type MockBetsAPI struct {
	mock.Mock
}

func (m *MockBetsAPI) GetBet(ctx context.Context, betID string) (*models.Bet, error) {
	args := m.Called(ctx, betID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetsAPI) Contribute(ctx context.Context, req api.ContributionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBetsAPI) CreateBet(ctx context.Context, req api.CreateBetRequest) (*models.Bet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetsAPI) ListGroupBets(ctx context.Context, groupID string, limit, offset int) ([]*models.Bet, error) {
	args := m.Called(ctx, groupID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

func (m *MockBetsAPI) ListActiveBets(ctx context.Context) ([]*models.Bet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

// MockGroupsAPI is a mock implementation of GroupsAPI
type MockGroupsAPI struct {
	mock.Mock
}

func (m *MockGroupsAPI) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupsAPI) GetGroupMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GroupMember), args.Error(1)
}

func (m *MockGroupsAPI) CreateGroup(ctx context.Context, req api.CreateGroupRequest) (*models.Group, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupsAPI) JoinGroup(ctx context.Context, joinCode string) error {
	args := m.Called(ctx, joinCode)
	return args.Error(0)
}

func (m *MockGroupsAPI) LeaveGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockGroupsAPI) SearchGroups(ctx context.Context, term string) ([]*models.Group, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Group), args.Error(1)
}

func (m *MockGroupsAPI) PublicGroups(ctx context.Context) ([]*models.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Group), args.Error(1)
}
