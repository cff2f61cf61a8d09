package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopology_Valid(t *testing.T) {
	assert.True(t, TopologySinglePool.Valid())
	assert.True(t, TopologyTwoSided.Valid())
	assert.False(t, Topology("").Valid())
	assert.False(t, Topology("three_way").Valid())
}

func TestTopology_Sides(t *testing.T) {
	assert.Equal(t, []Side{SideFor}, TopologySinglePool.Sides())
	assert.Equal(t, []Side{SideFor, SideAgainst}, TopologyTwoSided.Sides())
}

func TestTopology_FixedSide(t *testing.T) {
	side, ok := TopologySinglePool.FixedSide()
	require.True(t, ok)
	assert.Equal(t, SideFor, side)

	_, ok = TopologyTwoSided.FixedSide()
	assert.False(t, ok)
}

func TestTopology_RequiresSideChoice(t *testing.T) {
	assert.False(t, TopologySinglePool.RequiresSideChoice())
	assert.True(t, TopologyTwoSided.RequiresSideChoice())
}

func TestTopology_AllowsSide(t *testing.T) {
	assert.True(t, TopologySinglePool.AllowsSide(SideFor))
	assert.False(t, TopologySinglePool.AllowsSide(SideAgainst))
	assert.True(t, TopologyTwoSided.AllowsSide(SideFor))
	assert.True(t, TopologyTwoSided.AllowsSide(SideAgainst))
	assert.False(t, TopologyTwoSided.AllowsSide(Side("maybe")))
}

func TestContributionSubmission_Validate(t *testing.T) {
	tests := []struct {
		name       string
		submission ContributionSubmission
		topology   Topology
		wantErr    bool
	}{
		{"valid single pool", ContributionSubmission{Amount: 10, Side: SideFor}, TopologySinglePool, false},
		{"valid two sided against", ContributionSubmission{Amount: 10, Side: SideAgainst}, TopologyTwoSided, false},
		{"zero amount", ContributionSubmission{Amount: 0, Side: SideFor}, TopologySinglePool, true},
		{"negative amount", ContributionSubmission{Amount: -1, Side: SideFor}, TopologySinglePool, true},
		{"missing side", ContributionSubmission{Amount: 10}, TopologyTwoSided, true},
		{"against on single pool", ContributionSubmission{Amount: 10, Side: SideAgainst}, TopologySinglePool, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.submission.Validate(tt.topology)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
