package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestBet_ProgressFraction(t *testing.T) {
	t.Run("halfway", func(t *testing.T) {
		bet := &Bet{CurrentTotal: 50, TargetQuantity: int64Ptr(100)}
		fraction, ok := bet.ProgressFraction()
		require.True(t, ok)
		assert.Equal(t, 0.5, fraction)
	})

	t.Run("clamped above target", func(t *testing.T) {
		bet := &Bet{CurrentTotal: 150, TargetQuantity: int64Ptr(100)}
		fraction, ok := bet.ProgressFraction()
		require.True(t, ok)
		assert.Equal(t, 1.0, fraction)
	})

	t.Run("no target means no progress, not NaN", func(t *testing.T) {
		bet := &Bet{CurrentTotal: 50}
		fraction, ok := bet.ProgressFraction()
		assert.False(t, ok)
		assert.False(t, math.IsNaN(fraction))
	})

	t.Run("zero target is treated as unset", func(t *testing.T) {
		bet := &Bet{CurrentTotal: 50, TargetQuantity: int64Ptr(0)}
		_, ok := bet.ProgressFraction()
		assert.False(t, ok)
	})
}

func TestBet_ImpliedPrice(t *testing.T) {
	bet := &Bet{CurrentTotal: 150, TargetQuantity: int64Ptr(100)}
	price, ok := bet.ImpliedPrice()
	require.True(t, ok)
	// Unlike progress, the implied price is not clamped
	assert.Equal(t, 1.5, price)

	bet.TargetQuantity = nil
	_, ok = bet.ImpliedPrice()
	assert.False(t, ok)
}

func TestBet_Liquidity(t *testing.T) {
	bet := &Bet{CurrentTotal: 30, TargetQuantity: int64Ptr(100)}
	liquidity, ok := bet.Liquidity()
	require.True(t, ok)
	assert.Equal(t, int64(70), liquidity)

	bet.TargetQuantity = nil
	_, ok = bet.Liquidity()
	assert.False(t, ok)
}

func TestBet_Lifecycle(t *testing.T) {
	assert.True(t, (&Bet{Status: BetStatusActive}).IsActive())
	assert.False(t, (&Bet{Status: BetStatusPending}).IsActive())

	assert.True(t, (&Bet{Status: BetStatusCompleted}).IsTerminal())
	assert.True(t, (&Bet{Status: BetStatusFailed}).IsTerminal())
	assert.False(t, (&Bet{Status: BetStatusActive}).IsTerminal())
	assert.False(t, (&Bet{Status: BetStatusPending}).IsTerminal())
}

func TestCollectBetStats(t *testing.T) {
	bets := []*Bet{
		{Status: BetStatusActive},
		{Status: BetStatusActive},
		{Status: BetStatusCompleted},
		{Status: BetStatusFailed},
		{Status: BetStatusPending},
	}

	stats := CollectBetStats(bets)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Pending)
}
