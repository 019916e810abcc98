// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command avasim runs Snowball and Avalanche consensus simulations,
// grounded on luxfi-consensus/cmd/consensus/main.go's cobra root
// command and original_source/snowball/run.py's three argparse
// subparsers (experiment, learning, rl).
package main

import (
	"github.com/ava-labs/avasim/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "avasim",
	Short: "Byzantine-fault-tolerant consensus simulator",
	Long: `avasim runs repeated Snowball (binary agreement) and Avalanche
(DAG-structured multi-decision) consensus simulations against a
configurable population of honest and Byzantine participants.`,
}

func init() {
	rootCmd.PersistentFlags().String("protocol", "snowball", "protocol to simulate: snowball or avalanche")
	rootCmd.PersistentFlags().Int64("seed", 1, "RNG seed for this invocation")
	rootCmd.PersistentFlags().Int("runs", 1, "number of independent runs")
	rootCmd.PersistentFlags().Int("ticks", 50000, "scheduler tick budget per run, for --protocol avalanche (no built-in termination)")
	rootCmd.PersistentFlags().String("log-level", "INFO", "FATAL, ERROR, WARN, INFO, DEBUG, or VERBO")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for the rotating event log (defaults to ~/.avasim/logs)")
	rootCmd.PersistentFlags().Bool("serve-api", false, "serve the /health, /metrics, /events HTTP surface while running")
	rootCmd.PersistentFlags().String("api-addr", "127.0.0.1:8080", "address for --serve-api")

	for _, cmd := range []*cobra.Command{experimentCmd(), learningCmd(), rlCmd()} {
		cmd.Flags().AddFlagSet(config.BuildSnowballFlagSet())
		cmd.Flags().AddFlagSet(config.BuildAvalancheFlagSet())
		rootCmd.AddCommand(cmd)
	}
}
