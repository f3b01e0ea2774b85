// File: pool/iterator.go
// Author: momentics <momentics@gmail.com>
//
// Forward iterator over the in-use slots of a Fixed pool. Free slots
// are skipped transparently; traversal is in ascending index order.

package pool

// Iterator is a non-owning forward cursor over the in-use slots of a
// Fixed pool. Iterators are plain comparable values: two iterators are
// equal iff they reference the same pool, position and value, so end
// iterators of distinct pools never compare equal. The zero Iterator
// references no pool and equals only another zero Iterator.
//
// Mutating the pool structurally (Use*, UnUse, Replace*) invalidates
// outstanding iterators; the result of advancing or dereferencing one
// afterwards is unspecified.
type Iterator[T any] struct {
	pool *Fixed[T]
	pos  int
	obj  *T
}

// Begin returns an iterator at the first in-use slot, or End() when no
// slot is in use.
func (p *Fixed[T]) Begin() Iterator[T] {
	it := Iterator[T]{pool: p}
	it.skipFree()
	return it
}

// End returns the sentinel iterator one past the last slot.
func (p *Fixed[T]) End() Iterator[T] {
	return Iterator[T]{pool: p, pos: len(p.slots)}
}

// Next returns the iterator advanced to the following in-use slot.
// Advancing the end sentinel or a zero iterator returns it unchanged.
//
//	for it := p.Begin(); it != p.End(); it = it.Next() {
//		use(it.Value())
//	}
func (it Iterator[T]) Next() Iterator[T] {
	if it.pool == nil || it.pos >= len(it.pool.slots) {
		return it
	}
	it.pos++
	it.skipFree()
	return it
}

// Value returns the value at the current position, or nil at the end
// sentinel. The pointer stays valid for the pool's lifetime.
func (it Iterator[T]) Value() *T {
	return it.obj
}

// Index returns the current slot index; equals the pool size at the end
// sentinel.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Done reports whether the iterator has no further in-use slot.
func (it Iterator[T]) Done() bool {
	return it.obj == nil
}

// skipFree advances to the nearest in-use slot at or after pos, or to
// the end sentinel.
func (it *Iterator[T]) skipFree() {
	n := len(it.pool.slots)
	for it.pos < n && !it.pool.slots[it.pos].inUse {
		it.pos++
	}
	if it.pos < n {
		it.obj = &it.pool.slots[it.pos].obj
	} else {
		it.pos = n
		it.obj = nil
	}
}
