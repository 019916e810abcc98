// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avalanche

// RecordSuccess applies a successful query round for block: every
// transaction-carrying block in block's DAGHead gets its conflict
// cell's confidence/pref/streak updated, mirroring the teacher's
// batched "grant a chit to the whole frontier" step (spec.md §4.5
// step 3).
func (s *Store) RecordSuccess(block *Block) {
	for _, b := range s.DAGHead(block) {
		if b.IsNoOp() {
			continue
		}
		cell, ok := s.conflicts.Get(b.Body.Sender)
		if !ok {
			panic("avalanche: tx block has no conflict cell")
		}
		cell.RecordSuccess(b.Body.ID)
	}
}

// AcceptPass re-evaluates acceptance for every block TopologicalSort
// lists, in parents-first order (the reverse of that list), flipping the
// Accepted latch and logging each new acceptance (spec.md §4.5
// step 4). It returns the blocks newly accepted during this pass.
func (s *Store) AcceptPass(beta1, beta2 int) []*Block {
	order := s.TopologicalSort()

	var newlyAccepted []*Block
	for i := len(order) - 1; i >= 0; i-- {
		block := order[i]
		if block.Accepted {
			continue
		}
		if s.IsAccepted(block, beta1, beta2) {
			block.Accepted = true
			newlyAccepted = append(newlyAccepted, block)
			if s.log != nil {
				s.log.LogAcceptBlock(s.selfID, block.ID)
			}
		}
	}
	return newlyAccepted
}
