// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics registers Prometheus collectors for a running
// simulation, mirroring the teacher's metrics.Initialize(namespace,
// registerer) pattern (snow/engine/snowman/block/meter_vm.go).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every collector threaded through an engine run.
type Metrics struct {
	AcceptedBlocks   prometheus.Counter
	PollsIssued      prometheus.Counter
	ChitsGranted     prometheus.Counter
	ConsensusReached prometheus.Gauge
	ForksInjected    prometheus.Counter
}

// Initialize registers every collector under namespace on registerer,
// matching the teacher's errs.Add(registerer.Register(...)) batching
// style in meter_vm.go.
func (m *Metrics) Initialize(namespace string, registerer prometheus.Registerer) error {
	m.AcceptedBlocks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accepted_blocks",
		Help:      "Number of blocks that have crossed an acceptance threshold.",
	})
	m.PollsIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "polls_issued",
		Help:      "Number of query rounds issued to peer samples.",
	})
	m.ChitsGranted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chits_granted",
		Help:      "Number of positive query responses received.",
	})
	m.ConsensusReached = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "consensus_reached",
		Help:      "1 if the current run has reached consensus, 0 otherwise.",
	})
	m.ForksInjected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forks_injected",
		Help:      "Number of conflicting block pairs synthesized by the adversary.",
	})

	collectors := []prometheus.Collector{
		m.AcceptedBlocks,
		m.PollsIssued,
		m.ChitsGranted,
		m.ConsensusReached,
		m.ForksInjected,
	}
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}
	return nil
}
