// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package avalanche implements the DAG-structured multi-decision
// consensus engine (spec.md §2/§3/§4.2-§4.4): the block store, voting
// predicates, and parent selector layered on top of snowstorm's
// per-sender conflict cells.
package avalanche

import "github.com/ava-labs/avasim/ids"

// Transaction is the payload a Block may carry. Sender acts as the
// UTXO conflict key: two transactions conflict iff they share a
// Sender (spec.md §3).
type Transaction struct {
	ID       ids.ID
	Sender   ids.ID
	Receiver ids.ID
}
