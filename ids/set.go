// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import "sort"

// Set is a set of IDs. The zero value is an empty, usable set.
type Set map[ID]struct{}

// NewSet returns a new set preallocated to hold size elements.
func NewSet(size int) Set {
	if size < 0 {
		size = 0
	}
	return make(Set, size)
}

// Add inserts id into the set.
func (s Set) Add(id ID) { s[id] = struct{}{} }

// Remove deletes id from the set. No-op if absent.
func (s Set) Remove(id ID) { delete(s, id) }

// Contains reports whether id is a member of the set.
func (s Set) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of elements in the set.
func (s Set) Len() int { return len(s) }

// Clear empties the set in place.
func (s Set) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// List returns the set's members in ascending order, so that callers
// needing a deterministic iteration order (e.g. the event log) don't
// depend on Go's randomized map iteration.
func (s Set) List() []ID {
	list := make([]ID, 0, len(s))
	for id := range s {
		list = append(list, id)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Union adds every member of other into s.
func (s Set) Union(other Set) {
	for id := range other {
		s[id] = struct{}{}
	}
}
