// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// learningCmd mirrors original_source/snowball/run.py's "learning"
// subparser (--create_dataset/--train_supervised/--num_epochs). This
// module accepts the CLI surface but does not implement a training
// pipeline: the policy network itself is out of scope (spec.md §1);
// only its runtime oracle boundary (adversary.ActionOracle, the "rl"
// subcommand) is part of this module.
func learningCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learning",
		Short: "Accepted for CLI parity; training a policy network is out of scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("learning: training pipelines are out of scope for this module; " +
				"use 'rl' to drive an already-trained policy served out-of-process via --oracle-binary")
		},
	}
	cmd.Flags().Bool("create_dataset", false, "accepted for CLI parity; not implemented")
	cmd.Flags().Bool("train_supervised", false, "accepted for CLI parity; not implemented")
	cmd.Flags().Int("num_epochs", 32, "accepted for CLI parity; not implemented")
	return cmd
}
