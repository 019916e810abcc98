// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/ava-labs/avasim/adversary"
	"github.com/spf13/cobra"
)

// experimentCmd runs batches of simulations against the configured
// adversary_strategy, the "experiment" action of
// original_source/snowball/run.py (its --no_plt path: this module
// never implements the matplotlib visualization, spec.md §1).
func experimentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "experiment",
		Short: "Run repeated simulations and print per-run outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := bindFlags(cmd)
			if err != nil {
				return err
			}
			strategy, err := adversary.ParseStrategy(v.GetString("adversary_strategy"))
			if err != nil {
				return err
			}
			return runProtocol(cmd, v, strategy, nil)
		},
	}
}
