package api

import (
	"context"
	"net/http"
	"net/url"

	"poolbot/models"
)

// CreateGroupRequest carries the fields for creating a group
type CreateGroupRequest struct {
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

// GetGroup fetches one group. Returns ErrNotFound for an unknown id.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	var group models.Group
	if err := c.do(ctx, http.MethodGet, "/api/groups/"+url.PathEscape(groupID), nil, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroupMembers fetches the member list of a group
func (c *Client) GetGroupMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error) {
	var members []*models.GroupMember
	if err := c.do(ctx, http.MethodGet, "/api/groups/"+url.PathEscape(groupID)+"/members", nil, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CreateGroup creates a new group. A 403 surfaces as ErrUpgradeRequired when
// the caller's plan does not allow more groups.
func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	var group models.Group
	if err := c.do(ctx, http.MethodPost, "/api/groups/", nil, req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// JoinGroup joins the group identified by its join code
func (c *Client) JoinGroup(ctx context.Context, joinCode string) error {
	return c.do(ctx, http.MethodPost, "/api/groups/"+url.PathEscape(joinCode)+"/join", nil, nil, nil)
}

// LeaveGroup removes the caller's membership from a group
func (c *Client) LeaveGroup(ctx context.Context, groupID string) error {
	return c.do(ctx, http.MethodDelete, "/api/groups/"+url.PathEscape(groupID)+"/leave", nil, nil, nil)
}

// SearchGroups searches public groups by name
func (c *Client) SearchGroups(ctx context.Context, term string) ([]*models.Group, error) {
	query := url.Values{}
	if term != "" {
		query.Set("q", term)
	}

	var groups []*models.Group
	if err := c.do(ctx, http.MethodGet, "/api/groups/search", query, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// PublicGroups lists all public groups
func (c *Client) PublicGroups(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	if err := c.do(ctx, http.MethodGet, "/api/groups/public", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
