// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity slot pool with explicit lifetime control.
// All slots are constructed once up front; Use/UnUse flip slots between
// free and in-use without any allocation, and free slots keep holding a
// valid value ready for reuse. Single-threaded: callers driving the pool
// from multiple goroutines must wrap the whole pool in their own mutex,
// because the search hint and in-use counter span slot operations.
// See fixed.go, iterator.go, batch.go for implementation details.
package pool
