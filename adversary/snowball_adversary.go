// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adversary

import (
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/snow/consensus/snowball"
)

// liveLimit is the iteration count BREAK_LIVENESS and BREAK_SAFETY
// switch behavior at (spec.md §4.7; original_source/snowball/adversary.py
// hardcodes 100_000).
const liveLimit = 100000

// Snapshot is the read-only view of every honest participant's state
// a Snowball adversary needs to pick an answer. It must never be used
// to mutate honest state (spec.md §5 contract).
type Snapshot interface {
	// Color returns the current color of the honest participant with
	// the given id, or snowball.Unknown if undetermined.
	Color(id ids.ID) snowball.Color
	// IsFinished reports whether the participant has converged.
	IsFinished(id ids.ID) bool
	// HonestIDs returns every honest participant id, in a fixed
	// deterministic order (ascending id).
	HonestIDs() []ids.ID
}

// SnowballAdversary answers queries according to a fixed Strategy,
// shared across every Byzantine slot (spec.md §4.7).
type SnowballAdversary struct {
	Strategy Strategy
	Oracle   ActionOracle
}

// NewSnowballAdversary returns an adversary fixed to strategy. oracle
// may be nil unless strategy is RL.
func NewSnowballAdversary(strategy Strategy, oracle ActionOracle) *SnowballAdversary {
	return &SnowballAdversary{Strategy: strategy, Oracle: oracle}
}

// lessFrequentColor returns whichever of Red/Blue is currently held by
// fewer honest participants, ties favoring Blue — the TRY_BALANCE
// primitive reused by several strategies.
func lessFrequentColor(snap Snapshot) snowball.Color {
	var red, blue int
	for _, id := range snap.HonestIDs() {
		switch snap.Color(id) {
		case snowball.Red:
			red++
		case snowball.Blue:
			blue++
		}
	}
	if red < blue {
		return snowball.Red
	}
	return snowball.Blue
}

// RespondToQuery answers a Snowball query from participant fromID,
// who proposed queryColor, under the adversary's fixed strategy
// (spec.md §4.7). A nil *snowball.Color return represents ⊥ (timeout).
func (a *SnowballAdversary) RespondToQuery(fromID ids.ID, queryColor snowball.Color, snap Snapshot, iteration int) *snowball.Color {
	switch a.Strategy {
	case TryBalance:
		return colorPtr(lessFrequentColor(snap))

	case IncreaseConfidence:
		return colorPtr(queryColor)

	case EqualSplit:
		return colorPtr(splitByParity(fromID))

	case NonAnswer:
		least := lessFrequentColor(snap)
		if least == queryColor {
			return colorPtr(queryColor)
		}
		return nil

	case BreakLiveness:
		if iteration < liveLimit {
			return colorPtr(lessFrequentColor(snap))
		}
		return colorPtr(queryColor)

	case BreakSafety:
		return a.breakSafety(fromID, snap, iteration)

	case RL:
		if a.Oracle == nil {
			panic("adversary: RL strategy requires a non-nil ActionOracle")
		}
		red, err := a.Oracle.PickAction(snap, fromID)
		if err != nil {
			panic(err)
		}
		if red {
			return colorPtr(snowball.Red)
		}
		return colorPtr(snowball.Blue)

	default:
		panic("adversary: unknown strategy")
	}
}

func splitByParity(fromID ids.ID) snowball.Color {
	if fromID%2 == 0 {
		return snowball.Red
	}
	return snowball.Blue
}

// breakSafety partitions the network by from_id mod 200 for the first
// liveLimit iterations; afterwards it holds a shifted split until any
// of the first ten honest participants converges, then answers
// always-true to flip remaining laggards (original_source/snowball/
// adversary.py's BREAK_SAFETY, spec.md §4.7).
func (a *SnowballAdversary) breakSafety(fromID ids.ID, snap Snapshot, iteration int) *snowball.Color {
	if iteration < liveLimit {
		return colorPtr(modSplit(fromID, 200, 100))
	}

	firstTen := snap.HonestIDs()
	if len(firstTen) > 10 {
		firstTen = firstTen[:10]
	}
	for _, id := range firstTen {
		if snap.IsFinished(id) {
			return colorPtr(snowball.Red)
		}
	}
	return colorPtr(modSplit(fromID, 200, 110))
}

func modSplit(fromID ids.ID, mod, threshold uint64) snowball.Color {
	if uint64(fromID)%mod >= threshold {
		return snowball.Red
	}
	return snowball.Blue
}

func colorPtr(c snowball.Color) *snowball.Color { return &c }
