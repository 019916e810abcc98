// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnowballFromViperDefaults(t *testing.T) {
	require := require.New(t)
	fs := BuildSnowballFlagSet()
	v, err := BuildViper(fs, nil)
	require.NoError(err)

	cfg := SnowballFromViper(v)
	require.NoError(cfg.Validate())
	require.Equal(1000, cfg.NumParticipants)
	require.Equal(200, cfg.AdversaryCount())
	require.Equal(800, cfg.HonestCount())
}

func TestSnowballValidateRejectsBadK(t *testing.T) {
	cfg := Snowball{NumParticipants: 5, K: 10, Alpha: 0.8, Beta: 10, PartIterations: 1}
	require.Error(t, cfg.Validate())
}

func TestAvalancheFromViperDefaults(t *testing.T) {
	require := require.New(t)
	fs := BuildAvalancheFlagSet()
	v, err := BuildViper(fs, nil)
	require.NoError(err)

	cfg := AvalancheFromViper(v)
	require.NoError(cfg.Validate())
	require.Equal(5, cfg.Success(), "round(8*0.6) == 5")
}

func TestAvalancheValidateRejectsBadAlpha(t *testing.T) {
	cfg := Avalanche{NodeCount: 100, K: 8, Alpha: 0.3, Beta1: 1, Beta2: 1}
	require.Error(t, cfg.Validate())
}

func TestDefaultLogDirEndsInAvasimLogs(t *testing.T) {
	dir, err := DefaultLogDir()
	require.NoError(t, err)
	require.Contains(t, dir, ".avasim")
}
