package models

import (
	"time"
)

// Group represents a betting group as returned by the remote service
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	JoinCode  string    `json:"join_code"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupMember represents a user's membership in a group
type GroupMember struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joined_at"`
}

// GroupOverview combines a group with its members and bets, fetched together.
// It is a snapshot: either every part loaded or the whole overview failed.
type GroupOverview struct {
	Group   *Group
	Members []*GroupMember
	Bets    []*Bet
}

// HasMember checks whether the given user id appears in the member list.
// Membership is binary and drives which actions are exposed.
func (o *GroupOverview) HasMember(userID string) bool {
	for _, m := range o.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// ActiveBets returns only the bets still accepting contributions
func (o *GroupOverview) ActiveBets() []*Bet {
	var active []*Bet
	for _, bet := range o.Bets {
		if bet.IsActive() {
			active = append(active, bet)
		}
	}
	return active
}
