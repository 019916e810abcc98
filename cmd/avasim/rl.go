// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/ava-labs/avasim/adversary"
	"github.com/spf13/cobra"
)

// rlCmd runs simulations with the RL adversary strategy, dispatching
// every adversarial decision to an out-of-process policy server over
// the go-plugin/gRPC boundary (adversary.DialOracle), the runtime
// counterpart of original_source/snowball/run.py's "rl" subparser
// (whose --rl_updates/--discount instead configure the training loop
// this module does not implement, spec.md §1).
func rlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rl",
		Short: "Run simulations using an external RL policy oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := bindFlags(cmd)
			if err != nil {
				return err
			}

			binaryPath := v.GetString("oracle-binary")
			if binaryPath == "" {
				return fmt.Errorf("rl: --oracle-binary is required")
			}

			oracle, cleanup, err := adversary.DialOracle(binaryPath)
			if err != nil {
				return err
			}
			defer cleanup()

			return runProtocol(cmd, v, adversary.RL, oracle)
		},
	}
	cmd.Flags().String("oracle-binary", "", "path to an out-of-process binary speaking the oracle gRPC protocol")
	cmd.Flags().Int("rl_updates", 1024, "accepted for CLI parity with the training loop (out of scope)")
	cmd.Flags().Float64("discount", 0.99, "accepted for CLI parity with the training loop (out of scope)")
	return cmd
}
