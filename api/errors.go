// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy for slot pool operations. Every fallible operation
// returns one of the sentinel errors below; no recoverable condition
// panics.

package api

// ErrorCode identifies a specific pool error condition.
type ErrorCode uint8

const (
	// CodeOutOfRange — index outside pool bounds.
	CodeOutOfRange ErrorCode = iota
	// CodeAlreadyInUse — attempting to activate an occupied slot.
	CodeAlreadyInUse
	// CodeNotInUse — accessing a slot that is not active.
	CodeNotInUse
	// CodeAlreadyUnused — releasing a slot that is already free.
	CodeAlreadyUnused
	// CodeFull — no free slot remains after a full wraparound scan.
	CodeFull
)

// String returns the fixed human-readable description for the code,
// e.g. for logging.
func (c ErrorCode) String() string {
	switch c {
	case CodeOutOfRange:
		return "index out of range"
	case CodeAlreadyInUse:
		return "slot already in use"
	case CodeNotInUse:
		return "slot is not in use"
	case CodeAlreadyUnused:
		return "slot already unused"
	case CodeFull:
		return "pool is full"
	default:
		return "unknown pool error"
	}
}

// Error is a pool error with a stable code and fixed message.
type Error struct {
	Code ErrorCode
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Code.String()
}

// Sentinel errors returned by pool operations. Compare with errors.Is.
var (
	ErrOutOfRange    = &Error{Code: CodeOutOfRange}
	ErrAlreadyInUse  = &Error{Code: CodeAlreadyInUse}
	ErrNotInUse      = &Error{Code: CodeNotInUse}
	ErrAlreadyUnused = &Error{Code: CodeAlreadyUnused}
	ErrFull          = &Error{Code: CodeFull}
)
