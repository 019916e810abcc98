// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import "fmt"

// Parameters bundles the safety/liveness knobs of the binary
// agreement protocol (spec.md §6, Snowball configuration).
type Parameters struct {
	// K is the sample size queried on every iteration.
	K int
	// Alpha is the quorum fraction; a color wins a round once it
	// collects at least ceil(K*Alpha) votes.
	Alpha float64
	// Beta is the consecutive-success threshold at which a
	// participant is considered finished.
	Beta int
}

// Valid returns an error describing the first parameter that violates
// the protocol's safety requirements. Configuration errors are fatal
// at startup (spec.md §7), never raised mid-run.
func (p Parameters) Valid() error {
	switch {
	case p.K <= 0:
		return fmt.Errorf("snowball: k must be positive, got %d", p.K)
	case p.Alpha <= 0.5 || p.Alpha > 1:
		return fmt.Errorf("snowball: alpha must be in (0.5, 1], got %f", p.Alpha)
	case p.Beta <= 0:
		return fmt.Errorf("snowball: beta must be positive, got %d", p.Beta)
	default:
		return nil
	}
}

// Threshold returns the minimum vote count a color needs to win a
// round: ceil(K * Alpha).
func (p Parameters) Threshold() int {
	t := int(p.Alpha * float64(p.K))
	if float64(t) < p.Alpha*float64(p.K) {
		t++
	}
	return t
}
