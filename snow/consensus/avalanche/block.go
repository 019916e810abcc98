// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avalanche

import (
	"fmt"

	"github.com/ava-labs/avasim/ids"
)

// GenesisID is the well-known id of the genesis block, present in
// every participant's store from initialization (spec.md §3).
const GenesisID = ids.GenesisID

// Block is a vertex in the DAG: either a Transaction or a no-op
// (Body == nil). Accepted is a monotone latch — once true it never
// becomes false (spec.md §3 invariant).
type Block struct {
	ID       ids.ID
	Body     *Transaction
	Parents  []ids.ID
	Accepted bool
}

// IsNoOp reports whether this block carries no transaction.
func (b *Block) IsNoOp() bool { return b.Body == nil }

// clone returns a copy of b with Accepted reset to false — the shape
// a peer hands over during Sync, matching original_source/avalanche.py's
// Block.fromblock (the reference implementation deep-copies; this
// module shares immutable block bodies by reference instead, per
// spec.md §9, since acceptance status here lives on the copy itself
// and parents/body are never mutated after construction).
func (b *Block) clone() *Block {
	parents := make([]ids.ID, len(b.Parents))
	copy(parents, b.Parents)
	return &Block{
		ID:       b.ID,
		Body:     b.Body,
		Parents:  parents,
		Accepted: false,
	}
}

// NewGenesis returns the well-known genesis block. It counts as
// accepted for traversal-pruning purposes from the moment it exists
// in a participant's store (spec.md §3), rather than waiting for a
// first acceptance pass to discover it trivially qualifies.
func NewGenesis() *Block {
	return &Block{ID: GenesisID, Body: nil, Parents: nil, Accepted: true}
}

func (b *Block) String() string {
	kind := "NoOp"
	if !b.IsNoOp() {
		kind = "TX"
	}
	return fmt.Sprintf("Block(%s,%s,parents=%d,accepted=%t)", kind, b.ID, len(b.Parents), b.Accepted)
}
