// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"github.com/ava-labs/avasim/adversary"
	"github.com/ava-labs/avasim/config"
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/metrics"
	"github.com/ava-labs/avasim/snow/consensus/snowball"
	"github.com/ava-labs/avasim/utils/sampler"
)

// SnowballRun drives a single binary-agreement experiment over
// cfg.NumParticipants ids [0, NumParticipants): ids [0, honestCount)
// are honest, [honestCount, NumParticipants) share the adversary
// instance (original_source/snowball/protocol.py's SnowballProtocol).
type SnowballRun struct {
	cfg       config.Snowball
	rng       *sampler.Source
	honest    map[ids.ID]*SnowballParticipant
	honestIDs []ids.ID // ascending, mutated copy lives in the scheduler
	adv       *adversary.SnowballAdversary
	advIDs    ids.Set
	scheduler *Scheduler
	iteration int
	metrics   *metrics.Metrics
}

// SetMetrics attaches a Prometheus collector set; passing nil (the
// default) disables metric recording entirely.
func (r *SnowballRun) SetMetrics(m *metrics.Metrics) { r.metrics = m }

// NewSnowballRun constructs the population, seeds every honest
// participant's initial color from a single RNG draw per participant
// in id order (spec.md §9 Open Question (c)), and wires the
// scheduler.
func NewSnowballRun(cfg config.Snowball, rng *sampler.Source, strategy adversary.Strategy, oracle adversary.ActionOracle) *SnowballRun {
	honestCount := cfg.HonestCount()
	params := snowball.Parameters{K: cfg.K, Alpha: cfg.Alpha, Beta: cfg.Beta}

	run := &SnowballRun{
		cfg:    cfg,
		rng:    rng,
		honest: make(map[ids.ID]*SnowballParticipant, honestCount),
		advIDs: ids.NewSet(cfg.NumParticipants - honestCount),
	}

	honestIDs := make([]ids.ID, 0, honestCount)
	for i := 0; i < honestCount; i++ {
		id := ids.ID(i)
		p := NewSnowballParticipant(id, params)
		if rng.Float64() > cfg.Balance {
			p.SetColor(snowball.Red)
		} else {
			p.SetColor(snowball.Blue)
		}
		run.honest[id] = p
		honestIDs = append(honestIDs, id)
	}
	run.honestIDs = honestIDs

	for i := honestCount; i < cfg.NumParticipants; i++ {
		run.advIDs.Add(ids.ID(i))
	}
	if run.advIDs.Len() > 0 {
		run.adv = adversary.NewSnowballAdversary(strategy, oracle)
	}

	run.scheduler = NewScheduler(rng, honestIDs, nil, run.step)
	return run
}

// Color implements adversary.Snapshot.
func (r *SnowballRun) Color(id ids.ID) snowball.Color {
	if p, ok := r.honest[id]; ok {
		return p.Color()
	}
	return snowball.Unknown
}

// IsFinished implements adversary.Snapshot.
func (r *SnowballRun) IsFinished(id ids.ID) bool {
	if p, ok := r.honest[id]; ok {
		return p.IsFinished()
	}
	return false
}

// HonestIDs implements adversary.Snapshot: every honest id, ascending.
func (r *SnowballRun) HonestIDs() []ids.ID {
	out := make([]ids.ID, len(r.honestIDs))
	copy(out, r.honestIDs)
	return out
}

func (r *SnowballRun) step(u ids.ID) {
	r.iteration++
	participant := r.honest[u]
	if participant.IsFinished() {
		return
	}

	peerIdxs := r.rng.Sample(r.cfg.NumParticipants, r.cfg.K, int(u))
	color := participant.Color()

	responses := make([]snowball.Response, len(peerIdxs))
	for i, idx := range peerIdxs {
		target := ids.ID(idx)
		if r.advIDs.Contains(target) {
			responses[i] = r.adv.RespondToQuery(u, color, r, r.iteration)
			continue
		}
		responses[i] = r.honest[target].RespondToQuery(u, color)
	}

	if r.metrics != nil {
		r.metrics.PollsIssued.Add(float64(len(responses)))
		chits := 0
		for _, resp := range responses {
			if resp != nil && *resp == color {
				chits++
			}
		}
		r.metrics.ChitsGranted.Add(float64(chits))
	}

	participant.Poll(responses)
	if participant.IsFinished() {
		r.scheduler.RemoveHonest(u)
	}
	if r.metrics != nil && r.consensusReached() {
		r.metrics.ConsensusReached.Set(1)
	}
}

// consensusReached reports whether every remaining unfinished honest
// participant shares a single color (spec.md §4.6 termination clause).
func (r *SnowballRun) consensusReached() bool {
	seen := -1
	for _, id := range r.honestIDs {
		p := r.honest[id]
		if p.IsFinished() {
			continue
		}
		c := int(p.Color())
		if seen == -1 {
			seen = c
		} else if seen != c {
			return false
		}
	}
	return true
}

// Run ticks the scheduler until termination: every honest participant
// finished, remaining unfinished participants converged on one color,
// or the iteration cap is reached (spec.md §4.6/§4.8). It returns the
// number of ticks executed and whether consensus (rather than the
// iteration cap) ended the run.
func (r *SnowballRun) Run() (ticks int, converged bool) {
	iterationCap := r.cfg.TopIterations()
	n := r.scheduler.Run(func(iteration int) bool {
		if r.scheduler.Remaining() == 0 {
			converged = true
			return true
		}
		if r.consensusReached() {
			converged = true
			return true
		}
		return iteration >= iterationCap
	})
	return n, converged
}
