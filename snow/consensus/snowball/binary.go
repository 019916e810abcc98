// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snowball implements the single-decision binary agreement
// protocol (spec.md §3/§4.6): per-participant preference/counter/
// confidence state, queried and updated by the engine's scheduler.
package snowball

import "fmt"

// Color is the binary value participants vote over. Unknown
// represents the ⊥ (bottom) state: no preference formed yet, or a
// query response standing in for a simulated timeout.
type Color int8

const (
	Unknown Color = -1
	Blue    Color = 0
	Red     Color = 1
)

// Response is a peer's answer to a query: a color, or nil standing in
// for ⊥ (timeout) — a legal response, not an error (spec.md §4.6/§7).
type Response = *Color

// Participant is one node's binary-agreement state machine
// (spec.md §3): color/lastcolor/d[0]/d[1]/count, plus the
// alpha/beta/k parameters it was configured with.
type Participant struct {
	params Parameters

	color     Color
	lastcolor Color
	d         [2]int
	count     int
}

// NewParticipant returns a participant with no preference yet
// (color == Unknown), as spec'd in spec.md §4.6.
func NewParticipant(params Parameters) *Participant {
	return &Participant{params: params, color: Unknown, lastcolor: Unknown}
}

// Color returns the participant's current preference. It is Unknown
// until the first query is received or seeded via SetColor.
func (p *Participant) Color() Color { return p.color }

// SetColor seeds the participant's initial color directly, used by
// the engine to apply the `balance`-derived initial split
// (spec.md §6/§9 Open Question (c)) without going through a query.
func (p *Participant) SetColor(c Color) {
	p.color = c
	p.lastcolor = c
}

// Count returns the current consecutive-success counter.
func (p *Participant) Count() int { return p.count }

// Confidence is |d[1] - d[0]|, invariant d[color] >= d[!color]
// (spec.md §3).
func (p *Participant) Confidence() int {
	diff := p.d[Red] - p.d[Blue]
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// IsFinished reports whether this participant has reached beta
// consecutive successes (spec.md §4.6).
func (p *Participant) IsFinished() bool { return p.count >= p.params.Beta }

// RespondToQuery answers an incoming query with the participant's
// current color, adopting the caller's color as its own initial
// preference if none has formed yet (spec.md §4.6: "Initial color = ⊥;
// first incoming query sets it to the query's color").
func (p *Participant) RespondToQuery(queryColor Color) Color {
	if p.color == Unknown {
		p.color = queryColor
	}
	return p.color
}

// Poll runs one iteration of the protocol given the responses
// collected from a k-sample of peers (spec.md §4.6 steps 1-4). It is
// a no-op, returning false, if the participant has no preference yet
// or has already finished.
func (p *Participant) Poll(responses []Response) (advanced bool) {
	if p.color == Unknown || p.IsFinished() {
		return false
	}

	tally := map[Color]int{Blue: 0, Red: 0}
	for _, r := range responses {
		if r != nil {
			tally[*r]++
		}
	}

	threshold := p.params.Threshold()
	winner := Unknown
	// Deterministic tie-break order (Blue before Red) mirrors the
	// reference implementation's dict-iteration order for the
	// (practically unreachable, since alpha > 0.5) case where both
	// colors could cross the threshold in the same round.
	for _, c := range [2]Color{Blue, Red} {
		if tally[c] >= threshold {
			winner = c
			break
		}
	}

	if winner == Unknown {
		p.count = 0
		return false
	}

	p.d[winner]++
	if p.d[winner] > p.d[p.color] {
		p.color = winner
	}

	if winner == p.lastcolor {
		p.count++
	} else {
		p.count = 0
		p.lastcolor = winner
	}
	return true
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Color(%d)", int8(c))
	}
}
