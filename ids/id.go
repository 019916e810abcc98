// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ids defines the identifier type shared by every consensus
// package. Identifiers are 64-bit integers drawn from a seeded PRNG
// rather than cryptographic hashes — this module makes no claim of
// cryptographic security (see the module's non-goals).
package ids

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
)

// ID is an opaque 64-bit identifier. Collisions are assumed
// negligible; a caller that detects one should treat it as a fatal
// invariant violation rather than attempt to recover from it.
type ID uint64

// Empty is the zero-value ID. It is never a legal identifier for a
// transaction or block produced by the RNG; GenesisID overlaps with it
// by convention.
var Empty ID

// GenesisID is the well-known identifier of the genesis block, present
// in every participant's store from initialization.
const GenesisID ID = 0

// String renders the ID as a base58-encoded token, matching the
// convention used for opaque identifiers throughout the consensus
// packages.
func (id ID) String() string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	return base58.Encode(buf[:])
}

// Less provides a total order over IDs, used where a deterministic
// iteration order over a set of IDs is required (e.g. stable logging).
func (id ID) Less(other ID) bool { return id < other }
