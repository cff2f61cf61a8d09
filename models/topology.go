package models

// Topology represents the settlement topology of a bet. It is fixed at
// creation and never changes. All topology-dependent branching goes through
// the methods below so the raw strings stay in one place.
type Topology string

const (
	// TopologySinglePool is a single-sided contribution pool: one challenge,
	// many contributors, everyone on the same fixed side.
	TopologySinglePool Topology = "one_to_many"

	// TopologyTwoSided is a two-sided proposition requiring an explicit
	// for/against choice from each contributor.
	TopologyTwoSided Topology = "many_to_many"
)

// Side identifies which side of a bet a contribution backs
type Side string

const (
	SideFor     Side = "for"
	SideAgainst Side = "against"
)

// Valid checks whether the topology is one of the two known cases
func (t Topology) Valid() bool {
	return t == TopologySinglePool || t == TopologyTwoSided
}

// Sides returns the sides a contributor can take for this topology
func (t Topology) Sides() []Side {
	if t == TopologySinglePool {
		return []Side{SideFor}
	}
	return []Side{SideFor, SideAgainst}
}

// RequiresSideChoice reports whether the user must explicitly pick a side
// before submitting a contribution
func (t Topology) RequiresSideChoice() bool {
	return t == TopologyTwoSided
}

// FixedSide returns the implicit side for single-pool bets. ok is false for
// two-sided bets, where the side must be chosen.
func (t Topology) FixedSide() (Side, bool) {
	if t == TopologySinglePool {
		return SideFor, true
	}
	return "", false
}

// AllowsSide checks whether the given side is meaningful for this topology
func (t Topology) AllowsSide(side Side) bool {
	for _, s := range t.Sides() {
		if s == side {
			return true
		}
	}
	return false
}

// Label returns a human-readable name for the topology
func (t Topology) Label() string {
	if t == TopologySinglePool {
		return "One vs Many"
	}
	return "Team vs Team"
}
