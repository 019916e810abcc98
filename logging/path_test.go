// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextLogPathOnEmptyDirStartsAtOne(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, filepath.Join(dir, "run-1.log"), NextLogPath(dir, "run"))
}

func TestNextLogPathSkipsExistingIDs(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	for _, n := range []int{1, 2, 3} {
		f, err := os.Create(filepath.Join(dir, "run-"+strconv.Itoa(n)+".log"))
		require.NoError(err)
		f.Close()
	}

	require.Equal(filepath.Join(dir, "run-4.log"), NextLogPath(dir, "run"))
}

func TestEnsureDirCreatesNested(t *testing.T) {
	require := require.New(t)
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(err)
	require.True(info.IsDir())
}
