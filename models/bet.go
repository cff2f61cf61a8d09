package models

import (
	"time"
)

// BetStatus represents the lifecycle state of a bet. The remote service owns
// the status; completed and failed are terminal.
type BetStatus string

const (
	BetStatusActive    BetStatus = "active"
	BetStatusCompleted BetStatus = "completed"
	BetStatusFailed    BetStatus = "failed"
	BetStatusPending   BetStatus = "pending"
)

// Bet represents a wager as returned by the remote service. All fields are
// server-owned; the bot never mutates a bet locally.
type Bet struct {
	ID                   string     `json:"id"`
	GroupID              string     `json:"group_id"`
	CreatorID            string     `json:"creator_id"`
	Description          string     `json:"description"`
	BetType              Topology   `json:"bet_type"`
	RewardType           string     `json:"reward_type"`
	TargetQuantity       *int64     `json:"target_quantity"`
	CurrentTotal         int64      `json:"current_total"`
	Status               BetStatus  `json:"status"`
	RequiredWitnesses    int        `json:"required_witnesses"`
	VerificationDeadline *time.Time `json:"verification_deadline"`
	Participants         []string   `json:"participants,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// IsActive checks whether the bet still accepts contributions
func (b *Bet) IsActive() bool {
	return b.Status == BetStatusActive
}

// IsTerminal checks whether the bet has reached a final state
func (b *Bet) IsTerminal() bool {
	return b.Status == BetStatusCompleted || b.Status == BetStatusFailed
}

// ProgressFraction returns the accumulated stake as a fraction of the target,
// clamped to [0, 1]. ok is false for open-ended bets with no target.
func (b *Bet) ProgressFraction() (float64, bool) {
	if b.TargetQuantity == nil || *b.TargetQuantity <= 0 {
		return 0, false
	}
	fraction := float64(b.CurrentTotal) / float64(*b.TargetQuantity)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fraction, true
}

// ImpliedPrice returns current_total / target_quantity unclamped. ok is false
// when no target is set.
func (b *Bet) ImpliedPrice() (float64, bool) {
	if b.TargetQuantity == nil || *b.TargetQuantity <= 0 {
		return 0, false
	}
	return float64(b.CurrentTotal) / float64(*b.TargetQuantity), true
}

// Liquidity returns the remaining quantity until the target is reached. ok is
// false when no target is set.
func (b *Bet) Liquidity() (int64, bool) {
	if b.TargetQuantity == nil || *b.TargetQuantity <= 0 {
		return 0, false
	}
	return *b.TargetQuantity - b.CurrentTotal, true
}

// BetStats summarizes a list of bets for display
type BetStats struct {
	Total     int
	Active    int
	Completed int
	Failed    int
	Pending   int
}

// CollectBetStats tallies bets by status
func CollectBetStats(bets []*Bet) BetStats {
	var stats BetStats
	stats.Total = len(bets)
	for _, bet := range bets {
		switch bet.Status {
		case BetStatusActive:
			stats.Active++
		case BetStatusCompleted:
			stats.Completed++
		case BetStatusFailed:
			stats.Failed++
		case BetStatusPending:
			stats.Pending++
		}
	}
	return stats
}
