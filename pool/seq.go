// File: pool/seq.go
// Author: momentics <momentics@gmail.com>
//
// Range-over-func adapters and small sequence helpers over the in-use
// slots, for composition with the iter and slices packages.

package pool

import "iter"

// All returns a sequence of (index, value) pairs over the in-use slots
// in ascending index order. The pool must not be mutated structurally
// during iteration.
func (p *Fixed[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for pos := range p.slots {
			if !p.slots[pos].inUse {
				continue
			}
			if !yield(pos, &p.slots[pos].obj) {
				return
			}
		}
	}
}

// Values returns a sequence of the in-use values in ascending index
// order.
func (p *Fixed[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for pos := range p.slots {
			if !p.slots[pos].inUse {
				continue
			}
			if !yield(&p.slots[pos].obj) {
				return
			}
		}
	}
}

// Find returns the index and value of the first in-use slot satisfying
// pred, or ok == false when none does.
func (p *Fixed[T]) Find(pred func(*T) bool) (pos int, obj *T, ok bool) {
	for i, v := range p.All() {
		if pred(v) {
			return i, v, true
		}
	}
	return 0, nil, false
}

// Count returns the number of in-use slots satisfying pred.
func (p *Fixed[T]) Count(pred func(*T) bool) int {
	n := 0
	for _, v := range p.All() {
		if pred(v) {
			n++
		}
	}
	return n
}
