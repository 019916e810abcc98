// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adversary

import (
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/snow/consensus/snowball"
)

// ActionOracle is consulted by the RL strategy in place of the
// trained policy network, which is explicitly out of scope for this
// module (spec.md §1/§6). It reports which color to vote for fromID.
type ActionOracle interface {
	PickAction(snapshot Snapshot, fromID ids.ID) (red bool, err error)
}

// InProcessOracle is a deterministic stand-in usable in tests and
// small runs without spawning an out-of-process policy server. It
// always sides with the less-frequent color, the same primitive
// TRY_BALANCE uses.
type InProcessOracle struct{}

// PickAction implements ActionOracle.
func (InProcessOracle) PickAction(snapshot Snapshot, fromID ids.ID) (bool, error) {
	return lessFrequentColor(snapshot) == snowball.Red, nil
}
