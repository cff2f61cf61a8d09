package service

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"poolbot/api"
	"poolbot/models"
)

// groupService implements the GroupService interface against the remote API
type groupService struct {
	groups GroupsAPI
	bets   BetsAPI
}

// NewGroupService creates a new group service
func NewGroupService(groups GroupsAPI, bets BetsAPI) GroupService {
	return &groupService{
		groups: groups,
		bets:   bets,
	}
}

// GetGroup loads one group
func (s *groupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.groups.GetGroup(ctx, groupID)
}

// Members loads a group's member list
func (s *groupService) Members(ctx context.Context, groupID string) ([]*models.GroupMember, error) {
	return s.groups.GetGroupMembers(ctx, groupID)
}

// Overview fetches group, members, and bets in parallel. The three calls are
// joined; if any one fails the aggregate fails and partial results are
// discarded, so the caller never renders a half-loaded view.
func (s *groupService) Overview(ctx context.Context, groupID string) (*models.GroupOverview, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		overview models.GroupOverview
		wg       sync.WaitGroup
		errs     = make(chan error, 3)
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		group, err := s.groups.GetGroup(ctx, groupID)
		if err != nil {
			errs <- fmt.Errorf("failed to fetch group: %w", err)
			cancel()
			return
		}
		overview.Group = group
	}()
	go func() {
		defer wg.Done()
		members, err := s.groups.GetGroupMembers(ctx, groupID)
		if err != nil {
			errs <- fmt.Errorf("failed to fetch members: %w", err)
			cancel()
			return
		}
		overview.Members = members
	}()
	go func() {
		defer wg.Done()
		bets, err := s.bets.ListGroupBets(ctx, groupID, 0, 0)
		if err != nil {
			errs <- fmt.Errorf("failed to fetch bets: %w", err)
			cancel()
			return
		}
		overview.Bets = bets
	}()
	wg.Wait()

	select {
	case err := <-errs:
		return nil, err
	default:
	}

	return &overview, nil
}

// CreateGroup creates a new group
func (s *groupService) CreateGroup(ctx context.Context, name string, private bool) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}
	return s.groups.CreateGroup(ctx, api.CreateGroupRequest{
		Name:      name,
		IsPrivate: private,
	})
}

// Join joins a group by join code
func (s *groupService) Join(ctx context.Context, joinCode string) error {
	if joinCode == "" {
		return fmt.Errorf("join code is required")
	}
	if err := s.groups.JoinGroup(ctx, joinCode); err != nil {
		return err
	}
	log.WithField("joinCode", joinCode).Info("Joined group")
	return nil
}

// Leave leaves a group
func (s *groupService) Leave(ctx context.Context, groupID string) error {
	return s.groups.LeaveGroup(ctx, groupID)
}

// Search searches public groups by name
func (s *groupService) Search(ctx context.Context, term string) ([]*models.Group, error) {
	return s.groups.SearchGroups(ctx, term)
}

// Browse lists all public groups
func (s *groupService) Browse(ctx context.Context) ([]*models.Group, error) {
	return s.groups.PublicGroups(ctx)
}
