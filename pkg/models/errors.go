package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every backend. CLI and HTTP mappers translate
// these to exit codes and status codes; they never parse error text.
var (
	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when creating a duplicate entity,
	// including evidence overwrite attempts.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidArgument is returned when caller-supplied input is rejected.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExpired is returned when the caller's own lease or reservation
	// has already expired.
	ErrExpired = errors.New("lease expired")

	// ErrNotHeldByAgent is returned when refreshing or releasing a lease
	// the caller does not hold.
	ErrNotHeldByAgent = errors.New("lease not held by agent")

	// ErrUnknownChannel is returned when sending to an unregistered
	// escalation channel.
	ErrUnknownChannel = errors.New("unknown escalation channel")

	// ErrQuotaExceeded is returned when a task budget is exhausted.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrTimeout is returned when a deadline elapsed while waiting on the
	// store, including exhausted transaction retries.
	ErrTimeout = errors.New("operation timed out")

	// ErrReadOnly is returned for writes after the runtime degraded to
	// read-only mode following a fatal store error.
	ErrReadOnly = errors.New("runtime is read-only")
)

// IllegalTransitionError reports a task state-machine violation: either the
// (from, to) pair is not in the legal table, or the observed state differed
// from the expected one.
type IllegalTransitionError struct {
	TaskID   string
	From     TaskState
	To       TaskState
	Observed TaskState // zero when the pair itself is illegal
}

func (e *IllegalTransitionError) Error() string {
	if e.Observed != "" && e.Observed != e.From {
		return fmt.Sprintf("illegal transition for task %s: expected state %s, observed %s", e.TaskID, e.From, e.Observed)
	}
	return fmt.Sprintf("illegal transition for task %s: %s -> %s", e.TaskID, e.From, e.To)
}

// LeaseConflictError reports a failed task-lease acquisition because another
// agent currently holds the lease.
type LeaseConflictError struct {
	TaskID    string
	Holder    string
	ExpiresAt int64
}

func (e *LeaseConflictError) Error() string {
	return fmt.Sprintf("task %s is leased by %s until %d", e.TaskID, e.Holder, e.ExpiresAt)
}

// FileLeasedError reports a failed file-reservation acquisition. It carries
// the holding agent and expiry so the caller can wait or escalate without
// parsing the message.
type FileLeasedError struct {
	Path      string
	Holder    string
	ExpiresAt int64
}

func (e *FileLeasedError) Error() string {
	return fmt.Sprintf("file %s is reserved by %s until %d", e.Path, e.Holder, e.ExpiresAt)
}

// TransientError wraps a store failure the caller may retry (contention,
// serialization failure, lock timeout).
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return fmt.Sprintf("transient store error: %v", e.Err) }
func (e *TransientError) Unwrap() error { return e.Err }

// FatalError wraps a store failure that requires operator intervention
// (schema mismatch, IO failure, corruption). The runtime degrades to
// read-only when it observes one.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return fmt.Sprintf("fatal store error: %v", e.Err) }
func (e *FatalError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable store contention.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsFatal reports whether err is an unrecoverable store failure.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
