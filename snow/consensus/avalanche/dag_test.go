// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avalanche

import (
	"testing"

	"github.com/ava-labs/avasim/ids"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(1, nil)
}

func txBlock(id ids.ID, sender ids.ID, parents ...ids.ID) *Block {
	return &Block{
		ID:      id,
		Body:    &Transaction{ID: id, Sender: sender, Receiver: 999},
		Parents: parents,
	}
}

func TestNewStoreSeedsGenesis(t *testing.T) {
	require := require.New(t)
	s := newTestStore()

	require.Equal(1, s.Len())
	b, ok := s.Block(GenesisID)
	require.True(ok)
	require.True(b.Accepted)
	require.True(s.Roots().Contains(GenesisID))
}

func TestOnReceiveIsIdempotent(t *testing.T) {
	require := require.New(t)
	s := newTestStore()
	b := txBlock(10, 1, GenesisID)

	s.OnReceive(b)
	require.Equal(2, s.Len())
	s.OnReceive(b)
	require.Equal(2, s.Len(), "re-receiving a known block must be a no-op")
}

func TestOnReceiveUpdatesRoots(t *testing.T) {
	require := require.New(t)
	s := newTestStore()
	s.OnReceive(txBlock(10, 1, GenesisID))

	require.False(s.Roots().Contains(GenesisID), "genesis now has a child")
	require.True(s.Roots().Contains(ids.ID(10)))
}

func TestOnReceivePanicsOnUnknownParent(t *testing.T) {
	s := newTestStore()
	require.Panics(t, func() {
		s.OnReceive(txBlock(10, 1, ids.ID(777)))
	})
}

type fakePeer struct {
	blocks map[ids.ID]*Block
}

func (f *fakePeer) GetBlock(id ids.ID) (*Block, bool) {
	b, ok := f.blocks[id]
	if !ok {
		return nil, false
	}
	return b.clone(), true
}

func TestSyncPullsFullAncestry(t *testing.T) {
	require := require.New(t)

	peer := &fakePeer{blocks: map[ids.ID]*Block{GenesisID: NewGenesis()}}
	peer.blocks[10] = txBlock(10, 1, GenesisID)
	peer.blocks[11] = txBlock(11, 2, ids.ID(10))

	s := newTestStore()
	s.Sync(ids.ID(11), peer)

	require.Equal(3, s.Len())
	_, ok := s.Block(ids.ID(10))
	require.True(ok, "Sync must pull intermediate ancestors too")
}

func TestDAGHeadPrunesAtAccepted(t *testing.T) {
	require := require.New(t)
	s := newTestStore()

	a := txBlock(10, 1, GenesisID)
	s.OnReceive(a)
	a.Accepted = true

	b := txBlock(11, 2, ids.ID(10))
	s.OnReceive(b)

	head := s.DAGHead(b)
	require.Len(head, 1, "accepted ancestor 10 must be pruned from the traversal")
	require.Equal(ids.ID(11), head[0].ID)
}

func TestTopologicalSortIsChildrenFirst(t *testing.T) {
	require := require.New(t)
	s := newTestStore()

	s.OnReceive(txBlock(10, 1, GenesisID))
	s.OnReceive(txBlock(11, 2, ids.ID(10)))

	order := s.TopologicalSort()
	require.Equal(ids.ID(11), order[0].ID)

	pos := make(map[ids.ID]int, len(order))
	for i, b := range order {
		pos[b.ID] = i
	}
	require.Less(pos[ids.ID(11)], pos[ids.ID(10)])
	require.Less(pos[ids.ID(10)], pos[GenesisID])
}

func TestDequeuePendingIsFIFO(t *testing.T) {
	require := require.New(t)
	s := newTestStore()

	s.OnReceive(txBlock(10, 1, GenesisID))
	s.OnReceive(txBlock(11, 2, GenesisID))

	first, ok := s.DequeuePending()
	require.True(ok)
	require.Equal(ids.ID(10), first.ID)

	second, ok := s.DequeuePending()
	require.True(ok)
	require.Equal(ids.ID(11), second.ID)

	_, ok = s.DequeuePending()
	require.False(ok)
}
