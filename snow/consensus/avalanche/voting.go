// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avalanche

// IsPreferred reports whether block's transaction is the current
// incumbent of its conflict cell (spec.md §4.3). No-op blocks are
// always preferred: they carry no transaction, so they cannot lose a
// conflict.
func (s *Store) IsPreferred(block *Block) bool {
	if block.IsNoOp() {
		return true
	}
	cell, ok := s.conflicts.Get(block.Body.Sender)
	if !ok {
		return true
	}
	return cell.Pref == block.Body.ID
}

// IsStronglyPreferred reports whether block and every undecided
// ancestor in its DAGHead are all preferred (spec.md §4.3). An
// already-accepted block is trivially strongly preferred; one that
// fails IsPreferred itself cannot be.
func (s *Store) IsStronglyPreferred(block *Block) bool {
	if block.Accepted {
		return true
	}
	if !s.IsPreferred(block) {
		return false
	}
	for _, ancestor := range s.DAGHead(block) {
		if !s.IsPreferred(ancestor) {
			return false
		}
	}
	return true
}

// IsAccepted reports whether block meets either Avalanche acceptance
// rule (spec.md §4.3):
//
//   - the consecutive-success rule: block's cell has recorded beta2
//     consecutive successes for block's transaction, or
//   - the safe early-commitment rule: block's transaction has no
//     competitor (no-op, or its cell's size is 1), its confidence has
//     reached beta1, and every parent is already accepted.
//
// Acceptance is monotone: once true for a block it is never
// re-checked to become false (the Accepted field is a one-way latch
// set by the caller once this returns true).
func (s *Store) IsAccepted(block *Block, beta1, beta2 int) bool {
	if block.Accepted {
		return true
	}
	if block.IsNoOp() {
		return s.parentsAccepted(block)
	}

	cell, ok := s.conflicts.Get(block.Body.Sender)
	if !ok {
		return false
	}

	if cell.Last == block.Body.ID && cell.Cnt >= beta2 {
		return true
	}

	if cell.Size() == 1 && cell.Confidence[block.Body.ID] >= beta1 && s.parentsAccepted(block) {
		return true
	}

	return false
}

func (s *Store) parentsAccepted(block *Block) bool {
	for _, parentID := range block.Parents {
		parent, ok := s.blocks[parentID]
		if !ok {
			panic("avalanche: unresolved parent during acceptance check")
		}
		if !parent.Accepted {
			return false
		}
	}
	return true
}
