// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avalanche

import "github.com/ava-labs/avasim/ids"

// Select returns a set of block ids, each strongly preferred and none
// an ancestor of another member, for use as parents of a freshly
// synthesized block (spec.md §4.4). The result is never empty: genesis
// is returned when nothing else qualifies.
//
// The walk runs over the reverse of TopologicalSort (parents first, so
// a block's parents are decided before the block itself) twice if
// needed: the first pass applies the strict
// eligibility gate (cell size 1, or positive confidence); if that
// yields nothing beyond genesis, a second pass relaxes the gate to
// admit any strongly-preferred block regardless of confidence. This
// full retreat (rather than falling straight back to the bare-genesis
// fallback) strengthens liveness without weakening the postcondition:
// every admitted block still passes the same strongly-preferred and
// non-ancestor checks, just against a relaxed eligibility test.
func (s *Store) Select() []ids.ID {
	order := s.TopologicalSort()

	if parents := s.selectPass(order, true); len(parents) > 1 || (len(parents) == 1 && parents[0] != GenesisID) {
		return parents
	}
	return s.selectPass(order, false)
}

func (s *Store) selectPass(order []*Block, strictEligibility bool) []ids.ID {
	stronglyPreferred := ids.NewSet(len(order))
	parents := ids.NewSet(4)

	for i := len(order) - 1; i >= 0; i-- {
		block := order[i]
		switch {
		case block.Accepted:
			stronglyPreferred.Add(block.ID)
			parents.Add(block.ID)

		case !s.IsPreferred(block):
			continue

		case s.allParentsIn(block, stronglyPreferred):
			stronglyPreferred.Add(block.ID)
			if s.eligible(block, strictEligibility) {
				for _, parentID := range block.Parents {
					parents.Remove(parentID)
				}
				parents.Add(block.ID)
			}
		}
	}

	return parents.List()
}

func (s *Store) allParentsIn(block *Block, set ids.Set) bool {
	for _, parentID := range block.Parents {
		if !set.Contains(parentID) {
			return false
		}
	}
	return true
}

// eligible reports whether block may join the parents set. No-op
// blocks are always eligible. Transaction blocks are eligible under
// the strict gate only when their cell has no competitor (size 1) or
// positive confidence; the relaxed gate admits any strongly-preferred
// transaction block.
func (s *Store) eligible(block *Block, strict bool) bool {
	if block.IsNoOp() {
		return true
	}
	if !strict {
		return true
	}
	cell, ok := s.conflicts.Get(block.Body.Sender)
	if !ok {
		return true
	}
	return cell.Size() == 1 || cell.Confidence[block.Body.ID] > 0
}
