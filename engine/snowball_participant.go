// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/snow/consensus/snowball"
)

// SnowballParticipant pairs an honest node's binary-agreement state
// with its identity in the population (spec.md §4.6).
type SnowballParticipant struct {
	ID          ids.ID
	participant *snowball.Participant
}

// NewSnowballParticipant returns a participant with no preference yet.
func NewSnowballParticipant(id ids.ID, params snowball.Parameters) *SnowballParticipant {
	return &SnowballParticipant{ID: id, participant: snowball.NewParticipant(params)}
}

// Color returns the current preference.
func (p *SnowballParticipant) Color() snowball.Color { return p.participant.Color() }

// IsFinished reports convergence (beta consecutive successes).
func (p *SnowballParticipant) IsFinished() bool { return p.participant.IsFinished() }

// RespondToQuery answers an incoming query, honest participants
// ignore fromID (spec.md §4.6).
func (p *SnowballParticipant) RespondToQuery(_ ids.ID, color snowball.Color) snowball.Response {
	c := p.participant.RespondToQuery(color)
	return &c
}

// Poll runs one iteration given the responses collected from a
// k-sample of peers (spec.md §4.6 steps 1-4).
func (p *SnowballParticipant) Poll(responses []snowball.Response) bool {
	return p.participant.Poll(responses)
}

// SetColor seeds the participant's initial color (spec.md §6/§9 Open
// Question (c)).
func (p *SnowballParticipant) SetColor(c snowball.Color) { p.participant.SetColor(c) }
