// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Avalanche holds every field spec.md §6 lists for the DAG-structured
// multi-decision protocol.
type Avalanche struct {
	NodeCount                int
	ByzantinePercent         float64
	K                        int
	Alpha                    float64
	Beta1                    int
	Beta2                    int
	TransactionSpawn         float64
	ConflictTransactionSpawn float64
}

// AvalancheFromViper populates an Avalanche config from v, using the
// keys registered by BuildAvalancheFlagSet.
func AvalancheFromViper(v *viper.Viper) Avalanche {
	return Avalanche{
		NodeCount:                v.GetInt("node_count"),
		ByzantinePercent:         v.GetFloat64("byzantine_percent"),
		K:                        v.GetInt("k"),
		Alpha:                    v.GetFloat64("alpha"),
		Beta1:                    v.GetInt("beta1"),
		Beta2:                    v.GetInt("beta2"),
		TransactionSpawn:         v.GetFloat64("transaction_spawn"),
		ConflictTransactionSpawn: v.GetFloat64("conflict_transaction_spawn"),
	}
}

// Validate checks the invariants spec.md §7 requires fatal at startup.
func (c Avalanche) Validate() error {
	if c.NodeCount <= c.K {
		return fmt.Errorf("config: node_count (%d) must exceed k (%d)", c.NodeCount, c.K)
	}
	if c.Alpha <= 0.5 || c.Alpha > 1 {
		return fmt.Errorf("config: alpha must be in (0.5, 1], got %v", c.Alpha)
	}
	if c.Beta1 <= 0 || c.Beta2 <= 0 {
		return fmt.Errorf("config: beta1/beta2 must be positive, got %d/%d", c.Beta1, c.Beta2)
	}
	if c.ByzantinePercent < 0 || c.ByzantinePercent >= 1 {
		return fmt.Errorf("config: byzantine_percent must be in [0, 1), got %v", c.ByzantinePercent)
	}
	if c.TransactionSpawn < 0 || c.TransactionSpawn > 1 {
		return fmt.Errorf("config: transaction_spawn must be in [0, 1], got %v", c.TransactionSpawn)
	}
	if c.ConflictTransactionSpawn < 0 || c.ConflictTransactionSpawn > 1 {
		return fmt.Errorf("config: conflict_transaction_spawn must be in [0, 1], got %v", c.ConflictTransactionSpawn)
	}
	return nil
}

// Success is round(K * Alpha), the chit threshold (spec.md §6).
func (c Avalanche) Success() int {
	return int(float64(c.K)*c.Alpha + 0.5)
}

// ByzantineCount is floor(NodeCount * ByzantinePercent).
func (c Avalanche) ByzantineCount() int {
	return int(float64(c.NodeCount) * c.ByzantinePercent)
}

// HonestCount is NodeCount minus ByzantineCount.
func (c Avalanche) HonestCount() int {
	return c.NodeCount - c.ByzantineCount()
}
