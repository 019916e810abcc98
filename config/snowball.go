// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads simulation parameters from pflag-bound viper
// instances, mirroring the teacher's config.BuildFlagSet /
// config.BuildViper split (flare-foundation-go-flare/avalanchego/
// main/main.go).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Snowball holds every field spec.md §6 lists for the single-decision
// protocol.
type Snowball struct {
	NumParticipants   int
	AdversaryPercent  float64
	Alpha             float64
	Beta              int
	K                 int
	AdversaryStrategy string
	Balance           float64
	PartIterations    int
	NetName           string
	Record            bool
}

// SnowballFromViper populates a Snowball config from v, using the
// keys registered by BuildSnowballFlagSet.
func SnowballFromViper(v *viper.Viper) Snowball {
	return Snowball{
		NumParticipants:   v.GetInt("num_participants"),
		AdversaryPercent:  v.GetFloat64("adversary_percent"),
		Alpha:             v.GetFloat64("snowball_alpha"),
		Beta:              v.GetInt("snowball_beta"),
		K:                 v.GetInt("snowball_k"),
		AdversaryStrategy: v.GetString("adversary_strategy"),
		Balance:           v.GetFloat64("balance"),
		PartIterations:    v.GetInt("part_iterations"),
		NetName:           v.GetString("net_name"),
		Record:            v.GetBool("record"),
	}
}

// Validate checks the invariants spec.md §7 requires fatal at
// startup: sample size smaller than the population, probabilities in
// range, positive counters.
func (c Snowball) Validate() error {
	if c.NumParticipants <= c.K {
		return fmt.Errorf("config: num_participants (%d) must exceed snowball_k (%d)", c.NumParticipants, c.K)
	}
	if c.Alpha <= 0.5 || c.Alpha > 1 {
		return fmt.Errorf("config: snowball_alpha must be in (0.5, 1], got %v", c.Alpha)
	}
	if c.Beta <= 0 {
		return fmt.Errorf("config: snowball_beta must be positive, got %d", c.Beta)
	}
	if c.K <= 0 {
		return fmt.Errorf("config: snowball_k must be positive, got %d", c.K)
	}
	if c.AdversaryPercent < 0 || c.AdversaryPercent >= 1 {
		return fmt.Errorf("config: adversary_percent must be in [0, 1), got %v", c.AdversaryPercent)
	}
	if c.Balance < 0 || c.Balance > 1 {
		return fmt.Errorf("config: balance must be in [0, 1], got %v", c.Balance)
	}
	if c.PartIterations <= 0 {
		return fmt.Errorf("config: part_iterations must be positive, got %d", c.PartIterations)
	}
	return nil
}

// AdversaryCount is floor(NumParticipants * AdversaryPercent)
// (spec.md §6).
func (c Snowball) AdversaryCount() int {
	return int(float64(c.NumParticipants) * c.AdversaryPercent)
}

// HonestCount is NumParticipants minus AdversaryCount.
func (c Snowball) HonestCount() int {
	return c.NumParticipants - c.AdversaryCount()
}

// TopIterations is the scheduler's global iteration cap
// (original_source/snowball/protocol.py: part_iterations * num_participants).
func (c Snowball) TopIterations() int {
	return c.PartIterations * c.NumParticipants
}
