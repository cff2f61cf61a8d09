package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupOverview_HasMember(t *testing.T) {
	overview := &GroupOverview{
		Members: []*GroupMember{
			{UserID: "u1", Username: "alice"},
			{UserID: "u2", Username: "bob"},
		},
	}

	assert.True(t, overview.HasMember("u1"))
	assert.True(t, overview.HasMember("u2"))
	assert.False(t, overview.HasMember("u3"))
	assert.False(t, (&GroupOverview{}).HasMember("u1"))
}

func TestGroupOverview_ActiveBets(t *testing.T) {
	overview := &GroupOverview{
		Bets: []*Bet{
			{ID: "a", Status: BetStatusActive},
			{ID: "b", Status: BetStatusCompleted},
			{ID: "c", Status: BetStatusActive},
			{ID: "d", Status: BetStatusPending},
		},
	}

	active := overview.ActiveBets()
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "c", active[1].ID)
}
