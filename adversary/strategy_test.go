// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adversary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStrategyRoundTrips(t *testing.T) {
	require := require.New(t)
	for _, s := range []Strategy{TryBalance, IncreaseConfidence, EqualSplit, NonAnswer, BreakLiveness, BreakSafety, RL} {
		parsed, err := ParseStrategy(s.String())
		require.NoError(err)
		require.Equal(s, parsed)
	}
}

func TestParseStrategyRejectsUnknown(t *testing.T) {
	_, err := ParseStrategy("NOT_A_STRATEGY")
	require.Error(t, err)
}
