// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/utils/sampler"
)

// Scheduler is the global single-threaded loop shared by both
// protocols (spec.md §4.8): each tick draws a participant uniformly
// from the honest population, runs the pre-step hook (typically the
// adversary's own per-tick behavior), then that participant's step.
type Scheduler struct {
	rng     *sampler.Source
	honest  []ids.ID
	preStep func(u ids.ID)
	step    func(u ids.ID)
}

// NewScheduler returns a scheduler over the given honest participant
// ids. honest is copied so the caller's slice may be reused.
func NewScheduler(rng *sampler.Source, honest []ids.ID, preStep func(u ids.ID), step func(u ids.ID)) *Scheduler {
	cp := make([]ids.ID, len(honest))
	copy(cp, honest)
	return &Scheduler{rng: rng, honest: cp, preStep: preStep, step: step}
}

// Tick draws one honest participant uniformly, runs pre-step then
// step, and returns the chosen id.
func (s *Scheduler) Tick() ids.ID {
	idx := s.rng.Intn(len(s.honest))
	u := s.honest[idx]
	if s.preStep != nil {
		s.preStep(u)
	}
	s.step(u)
	return u
}

// RemoveHonest drops u from the eligible pool, used when a Snowball
// participant finishes (spec.md §4.6 "is finished").
func (s *Scheduler) RemoveHonest(u ids.ID) {
	for i, id := range s.honest {
		if id == u {
			s.honest = append(s.honest[:i], s.honest[i+1:]...)
			return
		}
	}
}

// Remaining returns the number of honest participants still eligible
// to be drawn.
func (s *Scheduler) Remaining() int { return len(s.honest) }

// Run ticks until done reports true, returning the total tick count.
// It panics if the honest pool is ever exhausted before done is
// satisfied, since that represents a configuration/logic error rather
// than a reachable runtime state.
func (s *Scheduler) Run(done func(iteration int) bool) int {
	iteration := 0
	for {
		if len(s.honest) == 0 {
			panic("engine: scheduler ran out of honest participants before termination")
		}
		s.Tick()
		iteration++
		if done(iteration) {
			return iteration
		}
	}
}
