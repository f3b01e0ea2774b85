// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/slotpool/api"

// SlotPool is a trivial map-backed stub pool for testing consumers of
// api.SlotPool. It keeps none of the real pool's fill-order guarantees.
type SlotPool[T any] struct {
	size int
	used map[int]*T
}

var _ api.SlotPool[int] = (*SlotPool[int])(nil)

// NewSlotPool creates a stub pool with the given number of slots.
func NewSlotPool[T any](size int) *SlotPool[T] {
	return &SlotPool[T]{size: size, used: make(map[int]*T)}
}

func (f *SlotPool[T]) Size() int  { return f.size }
func (f *SlotPool[T]) InUse() int { return len(f.used) }

func (f *SlotPool[T]) IsInUse(pos int) bool {
	_, ok := f.used[pos]
	return ok
}

func (f *SlotPool[T]) Use(pos int) (*T, error) {
	if pos < 0 || pos >= f.size {
		return nil, api.ErrOutOfRange
	}
	if _, ok := f.used[pos]; ok {
		return nil, api.ErrAlreadyInUse
	}
	obj := new(T)
	f.used[pos] = obj
	return obj, nil
}

func (f *SlotPool[T]) UseNext() (int, *T, error) {
	for pos := 0; pos < f.size; pos++ {
		if _, ok := f.used[pos]; !ok {
			obj := new(T)
			f.used[pos] = obj
			return pos, obj, nil
		}
	}
	return 0, nil, api.ErrFull
}

func (f *SlotPool[T]) Get(pos int) (*T, error) {
	if pos < 0 || pos >= f.size {
		return nil, api.ErrOutOfRange
	}
	obj, ok := f.used[pos]
	if !ok {
		return nil, api.ErrNotInUse
	}
	return obj, nil
}

func (f *SlotPool[T]) UnUse(pos int) error {
	if pos < 0 || pos >= f.size {
		return api.ErrOutOfRange
	}
	if _, ok := f.used[pos]; !ok {
		return api.ErrAlreadyUnused
	}
	delete(f.used, pos)
	return nil
}
