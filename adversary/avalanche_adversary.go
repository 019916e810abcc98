// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adversary

import (
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/logging"
	"github.com/ava-labs/avasim/snow/consensus/avalanche"
)

// ParentSelector is the subset of avalanche.Store the adversary needs
// to pick parents for its forked blocks.
type ParentSelector interface {
	Select() []ids.ID
}

// HonestTarget is one honest participant the adversary can push a
// forked block to, mirroring spec.md §4.2's Sync contract.
type HonestTarget interface {
	Sync(id ids.ID, peer avalanche.Peer)
}

// AvalancheAdversary synthesizes a single fork of conflicting blocks
// at the first scheduler tick and perfectly splits it across the
// honest population, then never grants a chit again (spec.md §4.7,
// grounded on original_source/adversarial.py's Adversary).
type AvalancheAdversary struct {
	selfID    ids.ID
	store     *avalanche.Store
	selector  ParentSelector
	log       *logging.EventLog
	rng       idGenerator
	started   bool
	conflicts int
}

// idGenerator draws fresh ids for synthesized senders/receivers/
// transactions, kept as an injected seam so the scheduler's RNG
// stream stays the single source of randomness (spec.md §5).
type idGenerator interface {
	NextID() ids.ID
}

// NewAvalancheAdversary returns an adversary with its own DAG store
// (so its parent selector sees only what it has itself synthesized),
// per original_source/adversarial.py treating the adversary as its
// own BasicNode.
func NewAvalancheAdversary(selfID ids.ID, log *logging.EventLog, gen idGenerator) *AvalancheAdversary {
	store := avalanche.NewStore(selfID, log)
	return &AvalancheAdversary{
		selfID:   selfID,
		store:    store,
		selector: store,
		log:      log,
		rng:      gen,
	}
}

// Query always withholds a chit: the adversary never grants votes to
// honest queriers (spec.md §4.7).
func (a *AvalancheAdversary) Query(ids.ID) bool { return false }

// ConflictCount returns the number of forks synthesized so far (at
// most one, per spec.md §4.7).
func (a *AvalancheAdversary) ConflictCount() int { return a.conflicts }

// GetBlock implements avalanche.Peer so honest participants can Sync
// the adversary's forked blocks and their ancestry.
func (a *AvalancheAdversary) GetBlock(id ids.ID) (*avalanche.Block, bool) {
	return a.store.GetBlock(id)
}

// Step runs one adversary tick. On the very first call it synthesizes
// a conflicting pair of blocks sharing a sender and parents, logs the
// fork, and gossips one side of the split to each honest participant
// by even/odd index (spec.md §4.7). Subsequent calls are no-ops. It
// reports whether this call was the one that injected the fork, so
// callers can drive a forks-injected counter without polling
// ConflictCount themselves.
func (a *AvalancheAdversary) Step(honest []HonestTarget) bool {
	if a.started {
		return false
	}
	a.started = true

	parents := a.selector.Select()
	sender := a.rng.NextID()

	tx0 := &avalanche.Transaction{ID: a.rng.NextID(), Sender: sender, Receiver: a.rng.NextID()}
	tx1 := &avalanche.Transaction{ID: a.rng.NextID(), Sender: sender, Receiver: a.rng.NextID()}

	blk0 := &avalanche.Block{ID: tx0.ID, Body: tx0, Parents: parents}
	blk1 := &avalanche.Block{ID: tx1.ID, Body: tx1, Parents: parents}

	if a.log != nil {
		a.log.LogCreateBlock(a.selfID, blk0.ID, blk0.Parents)
		a.log.LogCreateBlock(a.selfID, blk1.ID, blk1.Parents)
		a.log.LogCreateConflict(a.selfID, blk0.ID, blk1.ID)
	}
	a.conflicts++

	a.store.OnReceive(blk0)
	a.store.OnReceive(blk1)

	for i, target := range honest {
		if i%2 == 0 {
			target.Sync(blk0.ID, a)
		} else {
			target.Sync(blk1.ID, a)
		}
	}
	return true
}
