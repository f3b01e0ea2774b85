// File: pool/fixed.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity slot pool. Slots are pre-constructed at creation and
// flipped between free and in-use states explicitly; a linear wraparound
// scan from a cached hint keeps front-to-back fill order without a
// free-list. Failed operations leave the pool unchanged.

package pool

import (
	"golang.org/x/sys/cpu"

	"github.com/momentics/slotpool/api"
)

// slot is one storage cell: the usage flag plus an always-valid value.
type slot[T any] struct {
	inUse bool
	obj   T
}

// Fixed is a fixed-capacity pool of T with explicit slot activation.
// Capacity is set once at construction; no allocation happens afterwards.
// Not thread-safe.
type Fixed[T any] struct {
	construct func() T
	nextIdx   int
	inUse     int
	_         cpu.CacheLinePad // hot/cold separation
	slots     []slot[T]
}

var _ api.SlotPool[struct{}] = (*Fixed[struct{}])(nil)

// New creates a pool of capacity slots, each holding the zero value of T.
// Panics if capacity is negative.
func New[T any](capacity int) *Fixed[T] {
	return NewWith[T](capacity, nil)
}

// NewWith creates a pool of capacity slots, each initialized from the
// construct factory. The factory is also the source for every later
// no-argument reconstruction (UnUse, Replace, UseNextReplace); a nil
// factory means the zero value of T. Panics if capacity is negative.
func NewWith[T any](capacity int, construct func() T) *Fixed[T] {
	if capacity < 0 {
		panic("slotpool: negative capacity")
	}
	p := &Fixed[T]{
		construct: construct,
		slots:     make([]slot[T], capacity),
	}
	if construct != nil {
		for pos := range p.slots {
			p.slots[pos].obj = construct()
		}
	}
	return p
}

// Size returns the total number of slots.
func (p *Fixed[T]) Size() int {
	return len(p.slots)
}

// InUse returns the number of slots currently in use.
func (p *Fixed[T]) InUse() int {
	return p.inUse
}

// At returns the value at pos without bounds or usage checks.
// The caller must guarantee 0 <= pos < Size(); use Get when safety is
// required.
func (p *Fixed[T]) At(pos int) *T {
	return &p.slots[pos].obj
}

// Use marks the slot at pos as in use and returns the stored value.
// The value is not reconstructed. Returns ErrOutOfRange or
// ErrAlreadyInUse.
func (p *Fixed[T]) Use(pos int) (*T, error) {
	if pos < 0 || pos >= len(p.slots) {
		return nil, api.ErrOutOfRange
	}
	if p.slots[pos].inUse {
		return nil, api.ErrAlreadyInUse
	}
	p.slots[pos].inUse = true
	p.updateNextIdx()
	p.inUse++
	return &p.slots[pos].obj, nil
}

// UseNext marks the next free slot as in use and returns its index and
// value. The search scans forward from the cached hint, wrapping around
// the pool exactly once. Returns ErrFull when no free slot remains.
func (p *Fixed[T]) UseNext() (int, *T, error) {
	pos, ok := p.findFree()
	if !ok {
		return 0, nil, api.ErrFull
	}
	p.slots[pos].inUse = true
	p.updateNextIdx()
	p.inUse++
	return pos, &p.slots[pos].obj, nil
}

// UseNextReplace is UseNext with the slot value reconstructed from the
// pool's construction contract before the slot is flagged in use, so the
// caller receives a fresh value instead of leftover state.
func (p *Fixed[T]) UseNextReplace() (int, *T, error) {
	pos, ok := p.findFree()
	if !ok {
		return 0, nil, api.ErrFull
	}
	p.rebuild(pos)
	p.slots[pos].inUse = true
	p.inUse++
	p.updateNextIdx()
	return pos, &p.slots[pos].obj, nil
}

// UseNextReplaceValue is UseNext with the slot value replaced by v
// before the slot is flagged in use.
func (p *Fixed[T]) UseNextReplaceValue(v T) (int, *T, error) {
	pos, ok := p.findFree()
	if !ok {
		return 0, nil, api.ErrFull
	}
	p.slots[pos].obj = v
	p.slots[pos].inUse = true
	p.inUse++
	p.updateNextIdx()
	return pos, &p.slots[pos].obj, nil
}

// Get returns the value at pos if the slot is in use.
// Returns ErrOutOfRange or ErrNotInUse. Safe alternative to At.
func (p *Fixed[T]) Get(pos int) (*T, error) {
	if pos < 0 || pos >= len(p.slots) {
		return nil, api.ErrOutOfRange
	}
	if !p.slots[pos].inUse {
		return nil, api.ErrNotInUse
	}
	return &p.slots[pos].obj, nil
}

// IsInUse reports whether the slot at pos is in use.
// Out-of-range positions report false rather than erroring.
func (p *Fixed[T]) IsInUse(pos int) bool {
	if pos < 0 || pos >= len(p.slots) {
		return false
	}
	return p.slots[pos].inUse
}

// UnUse marks the slot at pos as free and reconstructs its value from
// the pool's construction contract, discarding any mutation made while
// the slot was in use. Returns ErrOutOfRange or ErrAlreadyUnused.
func (p *Fixed[T]) UnUse(pos int) error {
	if pos < 0 || pos >= len(p.slots) {
		return api.ErrOutOfRange
	}
	if !p.slots[pos].inUse {
		return api.ErrAlreadyUnused
	}
	p.slots[pos].inUse = false
	p.rebuild(pos)
	p.inUse--
	return nil
}

// UnUseValue is UnUse with the slot value rebuilt as v instead of the
// construction contract.
func (p *Fixed[T]) UnUseValue(pos int, v T) error {
	if pos < 0 || pos >= len(p.slots) {
		return api.ErrOutOfRange
	}
	if !p.slots[pos].inUse {
		return api.ErrAlreadyUnused
	}
	p.slots[pos].inUse = false
	p.slots[pos].obj = v
	p.inUse--
	return nil
}

// Replace reconstructs the value at pos from the pool's construction
// contract and leaves the slot free, regardless of its prior state.
// A slot that was in use is released, keeping InUse consistent with the
// flags. Returns ErrOutOfRange only.
func (p *Fixed[T]) Replace(pos int) error {
	if pos < 0 || pos >= len(p.slots) {
		return api.ErrOutOfRange
	}
	if p.slots[pos].inUse {
		p.inUse--
	}
	p.slots[pos].inUse = false
	p.rebuild(pos)
	return nil
}

// ReplaceValue is Replace with the slot value rebuilt as v.
func (p *Fixed[T]) ReplaceValue(pos int, v T) error {
	if pos < 0 || pos >= len(p.slots) {
		return api.ErrOutOfRange
	}
	if p.slots[pos].inUse {
		p.inUse--
	}
	p.slots[pos].inUse = false
	p.slots[pos].obj = v
	return nil
}

// rebuild resets the value at pos per the construction contract.
func (p *Fixed[T]) rebuild(pos int) {
	if p.construct != nil {
		p.slots[pos].obj = p.construct()
		return
	}
	var zero T
	p.slots[pos].obj = zero
}

// findFree returns the first free slot found by a forward scan from the
// hint, wrapping around the pool exactly once.
func (p *Fixed[T]) findFree() (int, bool) {
	n := len(p.slots)
	for pos, idx := p.nextIdx, 0; idx < n; pos, idx = (pos+1)%n, idx+1 {
		if !p.slots[pos].inUse {
			return pos, true
		}
	}
	return 0, false
}

// updateNextIdx moves the hint to the next free slot; unchanged when the
// pool is full.
func (p *Fixed[T]) updateNextIdx() {
	if pos, ok := p.findFree(); ok {
		p.nextIdx = pos
	}
}
