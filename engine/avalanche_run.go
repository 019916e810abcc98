// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"github.com/ava-labs/avasim/adversary"
	"github.com/ava-labs/avasim/config"
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/logging"
	"github.com/ava-labs/avasim/metrics"
	"github.com/ava-labs/avasim/utils/sampler"
)

// AvalancheRun drives an open-ended Avalanche experiment over
// cfg.NodeCount ids [0, NodeCount): ids [0, honestCount) are honest,
// the rest share the fork adversary (original_source/adversarial.py's
// AvalancheMaster).
type AvalancheRun struct {
	cfg       config.Avalanche
	rng       *sampler.Source
	honest    map[ids.ID]*AvalancheParticipant
	honestIDs []ids.ID
	adv       *adversary.AvalancheAdversary
	advIDs    ids.Set
	scheduler *Scheduler
	metrics   *metrics.Metrics
}

type seqIDGen struct{ rng *sampler.Source }

func (g seqIDGen) NextID() ids.ID { return ids.ID(g.rng.Uint64()) }

// NewAvalancheRun constructs the population and wires every honest
// participant's peer slice (spec.md §4.5) plus the adversary's fork
// targets (spec.md §4.7).
func NewAvalancheRun(cfg config.Avalanche, rng *sampler.Source, log *logging.EventLog) *AvalancheRun {
	honestCount := cfg.HonestCount()

	run := &AvalancheRun{
		cfg:    cfg,
		rng:    rng,
		honest: make(map[ids.ID]*AvalancheParticipant, honestCount),
		advIDs: ids.NewSet(cfg.NodeCount - honestCount),
	}

	peers := make([]PeerQuerier, cfg.NodeCount)
	honestIDs := make([]ids.ID, 0, honestCount)
	for i := 0; i < honestCount; i++ {
		id := ids.ID(i)
		p := NewAvalancheParticipant(id, cfg, rng, log)
		run.honest[id] = p
		honestIDs = append(honestIDs, id)
		peers[i] = p
	}
	run.honestIDs = honestIDs

	if honestCount < cfg.NodeCount {
		run.adv = adversary.NewAvalancheAdversary(ids.ID(honestCount), log, seqIDGen{rng})
		for i := honestCount; i < cfg.NodeCount; i++ {
			run.advIDs.Add(ids.ID(i))
			peers[i] = run.adv
		}
	}

	for _, p := range run.honest {
		p.index = int(p.SelfID)
		p.peers = peers
	}

	run.scheduler = NewScheduler(rng, honestIDs, run.preStep, run.step)
	return run
}

// honestTargets adapts this run's honest participants to the
// adversary.HonestTarget capability its fork injection needs.
func (r *AvalancheRun) honestTargets() []adversary.HonestTarget {
	out := make([]adversary.HonestTarget, len(r.honestIDs))
	for i, id := range r.honestIDs {
		out[i] = r.honest[id]
	}
	return out
}

func (r *AvalancheRun) preStep(ids.ID) {
	if r.adv == nil {
		return
	}
	forked := r.adv.Step(r.honestTargets())
	if forked && r.metrics != nil {
		r.metrics.ForksInjected.Inc()
	}
}

func (r *AvalancheRun) step(u ids.ID) {
	polls, chits, accepted := r.honest[u].Step()
	if r.metrics == nil {
		return
	}
	r.metrics.PollsIssued.Add(float64(polls))
	r.metrics.ChitsGranted.Add(float64(chits))
	r.metrics.AcceptedBlocks.Add(float64(accepted))
}

// SetMetrics attaches a Prometheus collector set; passing nil (the
// default) disables metric recording entirely.
func (r *AvalancheRun) SetMetrics(m *metrics.Metrics) { r.metrics = m }

// Tick runs one scheduler tick and returns the chosen honest
// participant's id. The Avalanche protocol has no built-in
// termination (spec.md §4.8): callers drive the loop externally,
// typically by iteration count or accepted-block count.
func (r *AvalancheRun) Tick() ids.ID { return r.scheduler.Tick() }

// AcceptedCount returns the number of accepted blocks known to
// participant id's local store (including genesis), a common stopping
// signal for batch harnesses.
func (r *AvalancheRun) AcceptedCount(id ids.ID) int {
	store := r.honest[id].store
	seen, stack, accepted := ids.NewSet(store.Len()), store.Roots().List(), 0
	for len(stack) > 0 {
		b, _ := store.Block(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		if seen.Contains(b.ID) {
			continue
		}
		seen.Add(b.ID)
		if b.Accepted {
			accepted++
		}
		stack = append(stack, b.Parents...)
	}
	return accepted
}
