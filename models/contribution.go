package models

import (
	"fmt"
)

// ContributionSubmission is a single user's validated stake toward one side
// of a bet. It is ephemeral: built by the capture flow, handed to the
// contribute call, never persisted locally.
type ContributionSubmission struct {
	Amount int64
	Side   Side
}

// Validate checks the submission against the bet's topology
func (c ContributionSubmission) Validate(topology Topology) error {
	if c.Amount <= 0 {
		return fmt.Errorf("contribution amount must be positive, got %d", c.Amount)
	}
	if c.Side == "" {
		return fmt.Errorf("contribution side is required")
	}
	if !topology.AllowsSide(c.Side) {
		return fmt.Errorf("side %q is not valid for a %s bet", c.Side, topology)
	}
	return nil
}
