// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adversary

import (
	"testing"

	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/snow/consensus/avalanche"
	"github.com/stretchr/testify/require"
)

type sequentialIDs struct{ next uint64 }

func (s *sequentialIDs) NextID() ids.ID {
	s.next++
	return ids.ID(s.next)
}

type fakeHonest struct {
	store  *avalanche.Store
	synced []ids.ID
}

func newFakeHonest(id ids.ID) *fakeHonest {
	return &fakeHonest{store: avalanche.NewStore(id, nil)}
}

func (h *fakeHonest) Sync(id ids.ID, peer avalanche.Peer) {
	h.store.Sync(id, peer)
	h.synced = append(h.synced, id)
}

func TestAvalancheAdversaryForksOnFirstStepOnly(t *testing.T) {
	require := require.New(t)
	a := NewAvalancheAdversary(ids.ID(0), nil, &sequentialIDs{})

	h0 := newFakeHonest(1)
	h1 := newFakeHonest(2)
	h2 := newFakeHonest(3)
	targets := []HonestTarget{h0, h1, h2}

	a.Step(targets)
	require.Equal(1, a.conflicts)
	require.Len(h0.synced, 1)
	require.Len(h1.synced, 1)
	require.Len(h2.synced, 1)
	require.NotEqual(h0.synced[0], h1.synced[0], "even/odd indices must receive different sides of the fork")
	require.Equal(h0.synced[0], h2.synced[0], "both even indices receive the same side")

	a.Step(targets)
	require.Equal(1, a.conflicts, "a second Step call must be a no-op")
}

func TestAvalancheAdversaryNeverGrantsChits(t *testing.T) {
	a := NewAvalancheAdversary(ids.ID(0), nil, &sequentialIDs{})
	require.False(t, a.Query(ids.ID(42)))
}
