// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowstorm

import (
	"sort"

	"github.com/ava-labs/avasim/ids"
)

// Registry maps a transaction's sender (the UTXO conflict key,
// spec.md §3) to its Snowball cell. Cells are created lazily on first
// observation and are never deleted (spec.md §3 lifecycles).
type Registry struct {
	cells map[ids.ID]*Cell
}

// NewRegistry returns an empty conflict registry.
func NewRegistry() *Registry {
	return &Registry{cells: make(map[ids.ID]*Cell)}
}

// Admit registers transaction txID under sender's cell, creating the
// cell if this is the first transaction observed for that sender.
// Returns the cell so callers (the DAG store, on admission) don't need
// a second lookup.
func (r *Registry) Admit(sender, txID ids.ID) *Cell {
	cell, ok := r.cells[sender]
	if !ok {
		cell = newCell(txID)
		r.cells[sender] = cell
		return cell
	}
	cell.admit(txID)
	return cell
}

// Get returns the cell for sender, and whether it exists. A cell only
// exists once at least one transaction with that sender has been
// admitted.
func (r *Registry) Get(sender ids.ID) (*Cell, bool) {
	cell, ok := r.cells[sender]
	return cell, ok
}

// Len returns the number of distinct senders (conflict sets) tracked.
func (r *Registry) Len() int { return len(r.cells) }

// Senders returns every sender with a cell currently tracked, sorted
// ascending for deterministic indexing (spec.md §5 reproducibility —
// Go's map iteration order is randomized per-process, so an unsorted
// slice would break bit-exact replay across runs). Used to
// deliberately reissue a transaction under an existing sender to
// synthesize a conflict (engine's conflict_transaction_spawn).
func (r *Registry) Senders() []ids.ID {
	out := make([]ids.ID, 0, len(r.cells))
	for sender := range r.cells {
		out = append(out, sender)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
