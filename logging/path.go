// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"os"
	"path/filepath"
)

// NextLogPath picks the next free "<dir>/<prefix>-<n>.log" file id by
// probing exponentially for an upper bound on the first free id, then
// binary-searching down to it. This is grounded verbatim on
// original_source/logger.py's find_id(): when multiple processes
// share a log directory (spec.md §5, batch sweeps), each picks a
// distinct id this way; races between processes landing on the same
// id are acceptable — rare and non-fatal for the core.
func NextLogPath(dir, prefix string) string {
	exists := func(n int) bool {
		_, err := os.Stat(filepath.Join(dir, fmt.Sprintf("%s-%d.log", prefix, n)))
		return err == nil
	}

	lo, hi := 0, 1
	for exists(hi) {
		hi *= 2
	}
	for lo+1 < hi {
		mid := (lo + hi) >> 1
		if exists(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%d.log", prefix, hi))
}

// EnsureDir creates dir (and any parents) if it doesn't already
// exist, matching the Python original's best-effort os.mkdir.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
