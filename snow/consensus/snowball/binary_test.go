// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func redResponses(n int) []Response {
	out := make([]Response, n)
	red := Red
	for i := range out {
		out[i] = &red
	}
	return out
}

func TestParticipantStartsUnknown(t *testing.T) {
	require := require.New(t)
	p := NewParticipant(Parameters{K: 10, Alpha: 0.8, Beta: 5})
	require.Equal(Unknown, p.Color())
	require.False(p.IsFinished())
}

func TestRespondToQuerySetsInitialColor(t *testing.T) {
	require := require.New(t)
	p := NewParticipant(Parameters{K: 10, Alpha: 0.8, Beta: 5})
	got := p.RespondToQuery(Red)
	require.Equal(Red, got)
	require.Equal(Red, p.Color())

	// A later query does not change an already-formed preference.
	got = p.RespondToQuery(Blue)
	require.Equal(Red, got)
}

func TestPollNoOpBeforeColorFormed(t *testing.T) {
	require := require.New(t)
	p := NewParticipant(Parameters{K: 10, Alpha: 0.8, Beta: 5})
	advanced := p.Poll(redResponses(10))
	require.False(advanced)
	require.Equal(0, p.Count())
}

func TestPollConvergesAfterBetaConsecutiveWins(t *testing.T) {
	require := require.New(t)
	p := NewParticipant(Parameters{K: 10, Alpha: 0.8, Beta: 5})
	p.SetColor(Blue)

	// The first Red win switches lastcolor and resets the streak to 0,
	// so reaching count == Beta takes Beta+1 consecutive wins.
	for i := 0; i < 6; i++ {
		advanced := p.Poll(redResponses(10))
		require.True(advanced)
	}

	require.Equal(Red, p.Color())
	require.True(p.IsFinished())
	require.Equal(5, p.Count())
}

func TestPollResetsCountBelowThreshold(t *testing.T) {
	require := require.New(t)
	p := NewParticipant(Parameters{K: 10, Alpha: 0.8, Beta: 5})
	p.SetColor(Blue)

	require.True(p.Poll(redResponses(10)))
	require.Equal(0, p.Count(), "first Red win switches lastcolor and resets the streak")
	require.True(p.Poll(redResponses(10)))
	require.Equal(1, p.Count())

	// A round with no color reaching quorum resets the counter but
	// keeps the current color preference untouched.
	split := make([]Response, 10)
	for i := range split {
		c := Color(i % 2)
		split[i] = &c
	}
	advanced := p.Poll(split)
	require.False(advanced)
	require.Equal(0, p.Count())
	require.Equal(Red, p.Color())
}

func TestNilResponsesAreIgnoredNotCounted(t *testing.T) {
	require := require.New(t)
	p := NewParticipant(Parameters{K: 4, Alpha: 0.8, Beta: 5})
	p.SetColor(Blue)

	responses := redResponses(3)
	responses = append(responses, nil) // simulated timeout
	advanced := p.Poll(responses)
	require.False(advanced, "3 of 4 votes is below ceil(4*0.8)=4")
}

func TestConfidenceInvariant(t *testing.T) {
	require := require.New(t)
	p := NewParticipant(Parameters{K: 10, Alpha: 0.8, Beta: 100})
	p.SetColor(Blue)
	for i := 0; i < 3; i++ {
		p.Poll(redResponses(10))
	}
	require.Equal(p.d[Red]-p.d[Blue], p.Confidence())
}
