// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snowstorm implements the Avalanche conflict set: a Snowball
// cell per UTXO (transaction sender), tracking which transaction is
// currently preferred among those that conflict (spec.md §3).
package snowstorm

import "github.com/ava-labs/avasim/ids"

// Cell is the per-sender conflict-set state described in spec.md §3.
// Prefer a record over a class with methods, per spec.md §9 — a Cell
// exposes its fields directly; Registry creates cells and admits
// transactions to them, and RecordSuccess below applies a vote.
type Cell struct {
	// Pref is the id of the currently preferred transaction.
	Pref ids.ID
	// Last is the id of the most recent transaction to win a chit
	// under this cell.
	Last ids.ID
	// Cnt is the consecutive-success counter for Last.
	Cnt int
	// Confidence maps tx id -> accumulated successful-vote count.
	Confidence map[ids.ID]int
}

// newCell creates a cell whose first observed transaction is txID,
// per spec.md §3 ("initial: the first transaction observed with that
// sender").
func newCell(txID ids.ID) *Cell {
	return &Cell{
		Pref:       txID,
		Last:       txID,
		Cnt:        0,
		Confidence: map[ids.ID]int{txID: 0},
	}
}

// Size returns the number of distinct tx ids ever admitted to the
// cell (spec.md §3: "size: number of distinct tx-ids ever admitted").
func (c *Cell) Size() int { return len(c.Confidence) }

// admit registers txID with the cell if it hasn't been seen yet. A
// transaction may be reissued without causing a new conflict
// (original_source/avalanche.py's Snowball.add).
func (c *Cell) admit(txID ids.ID) {
	if _, ok := c.Confidence[txID]; !ok {
		c.Confidence[txID] = 0
	}
}

// RecordSuccess increments txID's confidence, updates Pref if it now
// strictly exceeds the incumbent's confidence (ties favor the
// incumbent, spec.md §3 invariant), and updates the (Last, Cnt)
// streak (spec.md §4.5 step 3).
func (c *Cell) RecordSuccess(txID ids.ID) {
	c.Confidence[txID]++
	if c.Confidence[txID] > c.Confidence[c.Pref] {
		c.Pref = txID
	}

	if txID != c.Last {
		c.Last = txID
		c.Cnt = 0
	} else {
		c.Cnt++
	}
}
