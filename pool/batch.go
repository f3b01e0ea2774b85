// Package pool — batched slot acquisition without extra bookkeeping in
// the core.
// Author: momentics <momentics@gmail.com>
//
// Batch records the slots acquired through it so a burst of activations
// can be released with a single call. NOT thread-safe; no allocation
// after construction while Len stays within the initial capacity.

package pool

// Batch tracks slot indices acquired from one Fixed pool.
type Batch[T any] struct {
	pool    *Fixed[T]
	indices []int
}

// NewBatch creates a batch over p with room for capacity indices.
func NewBatch[T any](p *Fixed[T], capacity int) *Batch[T] {
	return &Batch[T]{
		pool:    p,
		indices: make([]int, 0, capacity),
	}
}

// UseNext activates the next free slot and records it in the batch.
func (b *Batch[T]) UseNext() (*T, error) {
	pos, obj, err := b.pool.UseNext()
	if err != nil {
		return nil, err
	}
	b.indices = append(b.indices, pos)
	return obj, nil
}

// UseNextReplaceValue activates the next free slot with value v and
// records it in the batch.
func (b *Batch[T]) UseNextReplaceValue(v T) (*T, error) {
	pos, obj, err := b.pool.UseNextReplaceValue(v)
	if err != nil {
		return nil, err
	}
	b.indices = append(b.indices, pos)
	return obj, nil
}

// Len returns the number of slots recorded in the batch.
func (b *Batch[T]) Len() int {
	return len(b.indices)
}

// Indices returns the recorded slot indices in acquisition order.
// The slice is owned by the batch and valid until the next UseNext or
// ReleaseAll.
func (b *Batch[T]) Indices() []int {
	return b.indices
}

// ReleaseAll frees every recorded slot and resets the batch. Slots the
// caller already released individually are skipped.
func (b *Batch[T]) ReleaseAll() {
	for _, pos := range b.indices {
		_ = b.pool.UnUse(pos)
	}
	b.indices = b.indices[:0]
}
