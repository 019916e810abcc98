// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avalanche

import (
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/logging"
	"github.com/ava-labs/avasim/snow/consensus/snowstorm"
)

// Peer is the minimal capability Sync needs from another participant:
// fetching a block by id. The returned block always has Accepted
// reset to false (spec.md §4.2: "peer supplies a fresh copy").
type Peer interface {
	GetBlock(id ids.ID) (*Block, bool)
}

// Store is a participant's local view of the DAG: the block set,
// parent edges (recovered from each block's Parents field), the
// roots/frontier, and the conflict registry those blocks'
// transactions are registered against (spec.md §3 "DAG store").
type Store struct {
	selfID ids.ID
	log    *logging.EventLog

	blocks    map[ids.ID]*Block
	roots     ids.Set
	conflicts *snowstorm.Registry
	pending   []*Block
}

// NewStore returns a store pre-seeded with the genesis block, as
// spec'd in spec.md §3.
func NewStore(selfID ids.ID, log *logging.EventLog) *Store {
	s := &Store{
		selfID:    selfID,
		log:       log,
		blocks:    make(map[ids.ID]*Block),
		roots:     ids.NewSet(16),
		conflicts: snowstorm.NewRegistry(),
	}
	s.admit(NewGenesis(), false)
	return s
}

// Conflicts exposes the conflict registry for voting predicates and
// the parent selector.
func (s *Store) Conflicts() *snowstorm.Registry { return s.conflicts }

// Block looks up a block by id.
func (s *Store) Block(id ids.ID) (*Block, bool) {
	b, ok := s.blocks[id]
	return b, ok
}

// GetBlock implements Peer: it returns a copy of the locally known
// block with Accepted reset to false, for handing to a syncing peer.
func (s *Store) GetBlock(id ids.ID) (*Block, bool) {
	b, ok := s.blocks[id]
	if !ok {
		return nil, false
	}
	return b.clone(), true
}

// Roots returns the current set of block ids with no known children
// (spec.md §3 invariant: roots = {b | no known block lists b as
// parent}).
func (s *Store) Roots() ids.Set { return s.roots }

// Len returns the number of blocks known locally.
func (s *Store) Len() int { return len(s.blocks) }

// admit is the shared admission path for OnReceive/Sync. logReceive
// controls whether this admission is logged as a Receive-Block event
// (local generation logs Create-Block separately, at the call site).
func (s *Store) admit(block *Block, logReceive bool) {
	if _, known := s.blocks[block.ID]; known {
		return // OnReceive must be idempotent (spec.md §8).
	}

	for _, parentID := range block.Parents {
		if _, ok := s.blocks[parentID]; !ok {
			panic("avalanche: block admitted before its parent is known")
		}
	}

	s.blocks[block.ID] = block

	if block.Body != nil {
		s.conflicts.Admit(block.Body.Sender, block.Body.ID)
		s.pending = append(s.pending, block)
	}

	for _, parentID := range block.Parents {
		s.roots.Remove(parentID)
	}
	s.roots.Add(block.ID)

	if logReceive && s.log != nil {
		s.log.LogReceiveBlock(s.selfID, block.ID, block.Parents)
	}
}

// OnReceive admits a block learned from outside Sync's recursive
// parent-walk (e.g. directly handed a fully-resolved block). It is a
// no-op if the block is already known (spec.md §4.2/§8 idempotence).
func (s *Store) OnReceive(block *Block) {
	s.admit(block, true)
}

// Sync recursively pulls id's ancestry from peer before admitting id
// itself, guaranteeing that after Sync(id, peer) returns, every
// ancestor of id is locally known (spec.md §4.2 contract). It is
// idempotent: if id is already known, it returns immediately.
func (s *Store) Sync(id ids.ID, peer Peer) {
	if _, known := s.blocks[id]; known {
		return
	}

	block, ok := peer.GetBlock(id)
	if !ok {
		panic("avalanche: sync target not found on peer")
	}

	for _, parentID := range block.Parents {
		s.Sync(parentID, peer)
	}

	s.admit(block, true)
}

// DequeuePending removes and returns the oldest block awaiting a
// query round, FIFO, as in the reference implementation's
// pending_blocks queue (spec.md §4.5 step 2).
func (s *Store) DequeuePending() (*Block, bool) {
	if len(s.pending) == 0 {
		return nil, false
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	return b, true
}

// HasPending reports whether a block is waiting to be queried.
func (s *Store) HasPending() bool { return len(s.pending) > 0 }

// LogCreate records local transaction generation as a Create-Block
// event, then admits the block (spec.md §6).
func (s *Store) LogCreate(block *Block) {
	if s.log != nil {
		s.log.LogCreateBlock(s.selfID, block.ID, block.Parents)
	}
	s.admit(block, false)
}

// DAGHead performs a depth-first traversal of the sub-DAG reachable
// from block, pruned at accepted ancestors (spec.md §4.2): it yields
// block first, then each undecided ancestor exactly once.
func (s *Store) DAGHead(block *Block) []*Block {
	visited := ids.NewSet(8)
	visited.Add(block.ID)
	stack := []*Block{block}
	order := make([]*Block, 0, 8)

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		order = append(order, cur)

		for _, parentID := range cur.Parents {
			parent, ok := s.blocks[parentID]
			if !ok {
				panic("avalanche: ancestor missing from store during DAGHead traversal")
			}
			if parent.Accepted || visited.Contains(parentID) {
				continue
			}
			visited.Add(parentID)
			stack = append(stack, parent)
		}
	}
	return order
}

// TopologicalSort returns known blocks in an order where each block
// appears before its parents (children-first), by walking from Roots
// and decrementing in-degree counts over parent edges (spec.md §4.2).
// The walk does not descend past accepted blocks: an accepted block is
// listed, but a block with an accepted child is not, so the accepted
// region behind the first accepted block on each path is left out.
func (s *Store) TopologicalSort() []*Block {
	order := make([]*Block, 0, len(s.blocks))
	degree := make(map[ids.ID]int, len(s.blocks))

	for _, b := range s.blocks {
		for _, parentID := range b.Parents {
			degree[parentID]++
		}
	}

	for _, rootID := range s.roots.List() {
		order = append(order, s.blocks[rootID])
	}

	for i := 0; i < len(order); i++ {
		block := order[i]
		if block.Accepted {
			continue
		}
		for _, parentID := range block.Parents {
			degree[parentID]--
			if degree[parentID] == 0 {
				order = append(order, s.blocks[parentID])
			}
		}
	}

	return order
}
