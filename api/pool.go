// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract slot pool API: fixed-capacity storage with explicit
// activation and release of individual slots.

package api

// SlotPool is the minimal contract of a fixed-capacity slot pool.
// Slots are addressed by index in [0, Size()); each is either free or
// in use. Implementations perform no allocation after construction.
type SlotPool[T any] interface {
	// Size returns the total number of slots.
	Size() int

	// InUse returns the number of slots currently in use.
	InUse() int

	// IsInUse reports whether the slot at pos is in use.
	// Out-of-range positions report false.
	IsInUse(pos int) bool

	// Use marks the slot at pos as in use and returns its value.
	Use(pos int) (*T, error)

	// UseNext marks the next free slot as in use and returns its
	// index and value.
	UseNext() (int, *T, error)

	// Get returns the value at pos if the slot is in use.
	Get(pos int) (*T, error)

	// UnUse marks the slot at pos as free and resets its value.
	UnUse(pos int) error
}
