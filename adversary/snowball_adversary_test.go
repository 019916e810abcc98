// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adversary

import (
	"testing"

	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/snow/consensus/snowball"
	"github.com/stretchr/testify/require"
)

type fakeSnapshot struct {
	colors   map[ids.ID]snowball.Color
	finished map[ids.ID]bool
	order    []ids.ID
}

func (f *fakeSnapshot) Color(id ids.ID) snowball.Color { return f.colors[id] }
func (f *fakeSnapshot) IsFinished(id ids.ID) bool      { return f.finished[id] }
func (f *fakeSnapshot) HonestIDs() []ids.ID            { return f.order }

func balancedSnapshot() *fakeSnapshot {
	return &fakeSnapshot{
		colors: map[ids.ID]snowball.Color{1: snowball.Blue, 2: snowball.Blue, 3: snowball.Red},
		order:  []ids.ID{1, 2, 3},
	}
}

func TestTryBalanceAnswersLessFrequentColor(t *testing.T) {
	a := NewSnowballAdversary(TryBalance, nil)
	resp := a.RespondToQuery(5, snowball.Blue, balancedSnapshot(), 0)
	require.NotNil(t, resp)
	require.Equal(t, snowball.Red, *resp, "red trails 1-2, adversary should pick red")
}

func TestIncreaseConfidenceEchoesCaller(t *testing.T) {
	a := NewSnowballAdversary(IncreaseConfidence, nil)
	resp := a.RespondToQuery(5, snowball.Red, balancedSnapshot(), 0)
	require.Equal(t, snowball.Red, *resp)
}

func TestEqualSplitByParity(t *testing.T) {
	a := NewSnowballAdversary(EqualSplit, nil)
	require.Equal(t, snowball.Red, *a.RespondToQuery(4, snowball.Blue, balancedSnapshot(), 0))
	require.Equal(t, snowball.Blue, *a.RespondToQuery(5, snowball.Blue, balancedSnapshot(), 0))
}

func TestNonAnswerTimesOutWhenAgainstCaller(t *testing.T) {
	a := NewSnowballAdversary(NonAnswer, nil)
	snap := balancedSnapshot() // less frequent = red

	require.Nil(t, a.RespondToQuery(5, snowball.Blue, snap, 0), "caller proposed blue, least-frequent is red: timeout")
	resp := a.RespondToQuery(5, snowball.Red, snap, 0)
	require.NotNil(t, resp)
	require.Equal(t, snowball.Red, *resp)
}

func TestBreakLivenessSwitchesAfterLimit(t *testing.T) {
	a := NewSnowballAdversary(BreakLiveness, nil)
	snap := balancedSnapshot()

	require.Equal(t, snowball.Red, *a.RespondToQuery(5, snowball.Blue, snap, liveLimit-1))
	require.Equal(t, snowball.Blue, *a.RespondToQuery(5, snowball.Blue, snap, liveLimit))
}

func TestBreakSafetySplitsBeforeLimit(t *testing.T) {
	a := NewSnowballAdversary(BreakSafety, nil)
	snap := balancedSnapshot()

	require.Equal(t, snowball.Blue, *a.RespondToQuery(50, snowball.Blue, snap, 0))
	require.Equal(t, snowball.Red, *a.RespondToQuery(150, snowball.Blue, snap, 0))
}

func TestBreakSafetyFlipsLaggardsOnceAnyOfFirstTenFinish(t *testing.T) {
	snap := &fakeSnapshot{
		colors:   map[ids.ID]snowball.Color{1: snowball.Blue},
		finished: map[ids.ID]bool{1: true},
		order:    []ids.ID{1, 2, 3},
	}
	a := NewSnowballAdversary(BreakSafety, nil)
	require.Equal(t, snowball.Red, *a.RespondToQuery(50, snowball.Blue, snap, liveLimit))
}

func TestInProcessOracleBalancesLikeTryBalance(t *testing.T) {
	o := InProcessOracle{}
	red, err := o.PickAction(balancedSnapshot(), 5)
	require.NoError(t, err)
	require.True(t, red)
}
