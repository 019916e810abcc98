// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package engine drives both protocols' participants and the global
// scheduler loop (spec.md §4.5/§4.6/§4.8), wiring the snowball/
// snowstorm/avalanche packages to a concrete run configuration.
package engine

import (
	"github.com/ava-labs/avasim/config"
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/logging"
	"github.com/ava-labs/avasim/snow/consensus/avalanche"
	"github.com/ava-labs/avasim/utils/sampler"
)

// PeerQuerier is what an Avalanche node exposes to peers sampling it:
// block retrieval (for Sync) and the strongly-preferred vote
// (spec.md §4.2/§4.3 "onQuery").
type PeerQuerier interface {
	avalanche.Peer
	Query(id ids.ID) bool
}

// AvalancheParticipant is one honest node's Avalanche state: its DAG
// store plus the configuration and RNG stream driving step() (spec.md
// §4.5, grounded on original_source/avalanche.py's BasicNode).
type AvalancheParticipant struct {
	SelfID ids.ID
	index  int
	store  *avalanche.Store
	cfg    config.Avalanche
	rng    *sampler.Source
	peers  []PeerQuerier // shared slice: honest participants followed by the adversary, indexed like original_source/avalanche.py's self.participants
}

// NewAvalancheParticipant returns a participant seeded with its own
// genesis-only store. peers and index are filled in by
// NewAvalancheRun once every node (including the adversary slot) is
// constructed.
func NewAvalancheParticipant(selfID ids.ID, cfg config.Avalanche, rng *sampler.Source, log *logging.EventLog) *AvalancheParticipant {
	return &AvalancheParticipant{
		SelfID: selfID,
		store:  avalanche.NewStore(selfID, log),
		cfg:    cfg,
		rng:    rng,
	}
}

// GetBlock implements avalanche.Peer.
func (p *AvalancheParticipant) GetBlock(id ids.ID) (*avalanche.Block, bool) {
	return p.store.GetBlock(id)
}

// Sync implements avalanche.Peer's sibling capability for the
// scheduler driving step 2 of spec.md §4.5: pull id's ancestry from
// peer into this participant's own store.
func (p *AvalancheParticipant) Sync(id ids.ID, peer avalanche.Peer) {
	p.store.Sync(id, peer)
}

// Query implements PeerQuerier: "onQuery" answers with whether the
// referenced block is strongly preferred (spec.md §4.3).
func (p *AvalancheParticipant) Query(id ids.ID) bool {
	block, ok := p.store.Block(id)
	if !ok {
		panic("engine: queried for a block not yet known locally")
	}
	return p.store.IsStronglyPreferred(block)
}

// Step runs one invocation of spec.md §4.5's four-step loop. It
// reports the number of queries issued, chits granted in response, and
// blocks newly accepted, so callers can feed a metrics collector
// without this package importing one.
func (p *AvalancheParticipant) Step() (pollsIssued, chitsGranted, newlyAccepted int) {
	if p.rng.Float64() < p.cfg.TransactionSpawn {
		p.spawnTransaction()
	}

	block, ok := p.store.DequeuePending()
	if !ok {
		return 0, 0, 0
	}

	success := p.cfg.Success()
	peers := p.samplePeers()

	value := 0
	for _, idx := range peers {
		peer := p.peers[idx]
		p.store.Sync(block.ID, peer)
		pollsIssued++
		if peer.Query(block.ID) {
			value++
			chitsGranted++
		}
		if value >= success {
			break
		}
	}

	if value >= success {
		p.store.RecordSuccess(block)
		newlyAccepted = len(p.store.AcceptPass(p.cfg.Beta1, p.cfg.Beta2))
	}
	return pollsIssued, chitsGranted, newlyAccepted
}

// samplePeers draws k peer indices from [0, n) excluding this
// participant's own index, via utils/sampler's unbiased sample
// (spec.md §4.5 step 2, §5 reproducibility).
func (p *AvalancheParticipant) samplePeers() []int {
	return p.rng.Sample(len(p.peers), p.cfg.K, p.index)
}

// spawnTransaction synthesizes a new transaction. With probability
// ConflictTransactionSpawn (and at least one known sender already in
// the local conflict registry), the sender is reused to deliberately
// create a conflict; otherwise a fresh random sender is drawn.
func (p *AvalancheParticipant) spawnTransaction() {
	sender := ids.ID(p.rng.Uint64())
	if p.rng.Float64() < p.cfg.ConflictTransactionSpawn {
		if existing, ok := p.pickExistingSender(); ok {
			sender = existing
		}
	}

	tx := &avalanche.Transaction{
		ID:       ids.ID(p.rng.Uint64()),
		Sender:   sender,
		Receiver: ids.ID(p.rng.Uint64()),
	}
	block := &avalanche.Block{
		ID:      tx.ID,
		Body:    tx,
		Parents: p.store.Select(),
	}
	p.store.LogCreate(block)
}

func (p *AvalancheParticipant) pickExistingSender() (ids.ID, bool) {
	senders := p.store.Conflicts().Senders()
	if len(senders) == 0 {
		return ids.Empty, false
	}
	return senders[p.rng.Intn(len(senders))], true
}
