package service

import (
	"context"
	"errors"
	"testing"

	"poolbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGroupService_Overview_Success(t *testing.T) {
	mockGroups := new(MockGroupsAPI)
	mockBets := new(MockBetsAPI)
	service := NewGroupService(mockGroups, mockBets)

	group := &models.Group{ID: "group-1", Name: "Runners"}
	members := []*models.GroupMember{{UserID: "u1", Username: "alice"}}
	bets := []*models.Bet{{ID: "bet-1", Status: models.BetStatusActive}}

	mockGroups.On("GetGroup", mock.Anything, "group-1").Return(group, nil)
	mockGroups.On("GetGroupMembers", mock.Anything, "group-1").Return(members, nil)
	mockBets.On("ListGroupBets", mock.Anything, "group-1", 0, 0).Return(bets, nil)

	overview, err := service.Overview(context.Background(), "group-1")

	require.NoError(t, err)
	assert.Equal(t, group, overview.Group)
	assert.Equal(t, members, overview.Members)
	assert.Equal(t, bets, overview.Bets)
}

func TestGroupService_Overview_AnyFailureFailsTheWhole(t *testing.T) {
	mockGroups := new(MockGroupsAPI)
	mockBets := new(MockBetsAPI)
	service := NewGroupService(mockGroups, mockBets)

	group := &models.Group{ID: "group-1", Name: "Runners"}

	mockGroups.On("GetGroup", mock.Anything, "group-1").Return(group, nil)
	mockGroups.On("GetGroupMembers", mock.Anything, "group-1").Return(nil, errors.New("members unavailable"))
	mockBets.On("ListGroupBets", mock.Anything, "group-1", 0, 0).Return([]*models.Bet{}, nil)

	overview, err := service.Overview(context.Background(), "group-1")

	require.Error(t, err)
	// No partial overview leaks out
	assert.Nil(t, overview)
}

func TestGroupService_CreateGroup_RequiresName(t *testing.T) {
	mockGroups := new(MockGroupsAPI)
	service := NewGroupService(mockGroups, new(MockBetsAPI))

	_, err := service.CreateGroup(context.Background(), "", false)

	require.Error(t, err)
	mockGroups.AssertNotCalled(t, "CreateGroup")
}

func TestGroupService_Join_RequiresCode(t *testing.T) {
	mockGroups := new(MockGroupsAPI)
	service := NewGroupService(mockGroups, new(MockBetsAPI))

	err := service.Join(context.Background(), "")

	require.Error(t, err)
	mockGroups.AssertNotCalled(t, "JoinGroup")
}
