// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BuildSnowballFlagSet registers every Snowball configuration key as a
// pflag, mirroring the teacher's config.BuildFlagSet.
func BuildSnowballFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("snowball", pflag.ContinueOnError)
	fs.Int("num_participants", 1000, "total number of participants")
	fs.Float64("adversary_percent", 0.2, "fraction of participants that are Byzantine")
	fs.Float64("snowball_alpha", 0.8, "quorum threshold")
	fs.Int("snowball_beta", 120, "consecutive-success threshold")
	fs.Int("snowball_k", 10, "sample size")
	fs.String("adversary_strategy", "TRY_BALANCE", "Byzantine strategy")
	fs.Float64("balance", 0.5, "initial color split point")
	fs.Int("part_iterations", 1000, "per-participant iteration budget")
	fs.String("net_name", "nn", "RL policy network name")
	fs.Bool("record", false, "record per-iteration query/vote history")
	return fs
}

// BuildAvalancheFlagSet registers every Avalanche configuration key as
// a pflag.
func BuildAvalancheFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("avalanche", pflag.ContinueOnError)
	fs.Int("node_count", 100, "total number of participants")
	fs.Float64("byzantine_percent", 0.0, "fraction of participants that are Byzantine")
	fs.Int("k", 8, "sample size")
	fs.Float64("alpha", 0.6, "quorum threshold")
	fs.Int("beta1", 10, "safe early-commitment threshold")
	fs.Int("beta2", 10, "consecutive-success threshold")
	fs.Float64("transaction_spawn", 0.001, "probability of spawning a transaction per step")
	fs.Float64("conflict_transaction_spawn", 0.001, "probability of spawning a conflicting transaction per step")
	return fs
}

// BuildViper binds fs and args into a fresh viper instance, mirroring
// the teacher's config.BuildViper(fs, os.Args[1:]).
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// DefaultLogDir resolves ~/.avasim/logs, mirroring the teacher's
// resolution of its default data directory via go-homedir.
func DefaultLogDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".avasim", "logs"), nil
}
