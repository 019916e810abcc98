// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avalanche

import (
	"testing"

	"github.com/ava-labs/avasim/ids"
	"github.com/stretchr/testify/require"
)

func TestSelectAtStartupReturnsGenesis(t *testing.T) {
	s := newTestStore()
	require.Equal(t, []ids.ID{GenesisID}, s.Select())
}

func TestSelectIncludesUncontestedTx(t *testing.T) {
	require := require.New(t)
	s := newTestStore()
	s.OnReceive(txBlock(10, 1, GenesisID))

	parents := s.Select()
	require.ElementsMatch([]ids.ID{ids.ID(10)}, parents, "genesis must be pruned, its child supersedes it")
}

func TestSelectExcludesUnpreferredBlock(t *testing.T) {
	require := require.New(t)
	s := newTestStore()

	a := txBlock(10, 1, GenesisID)
	b := txBlock(11, 1, GenesisID)
	s.OnReceive(a)
	s.OnReceive(b)

	cell, _ := s.Conflicts().Get(1)
	cell.RecordSuccess(10)
	cell.RecordSuccess(10)

	parents := s.Select()
	require.Contains(parents, ids.ID(10))
	require.NotContains(parents, ids.ID(11))
}

func TestSelectRetreatsWhenStrictGateYieldsNothing(t *testing.T) {
	require := require.New(t)
	s := newTestStore()

	a := txBlock(10, 1, GenesisID)
	b := txBlock(11, 1, GenesisID)
	s.OnReceive(a)
	s.OnReceive(b)

	parents := s.Select()
	require.Contains(parents, ids.ID(10), "strict gate excludes both contested txs, relaxed gate admits the incumbent")
}
