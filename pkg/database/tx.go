package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openmaf/maf/ent"
	"github.com/openmaf/maf/pkg/models"
)

const (
	// txMaxAttempts bounds WithTx retries on contention.
	txMaxAttempts = 5
	// txBaseBackoff is the first retry delay; doubles per attempt with jitter.
	txBaseBackoff = 20 * time.Millisecond
)

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error. Serialization failures and deadlocks are retried with
// exponential backoff up to txMaxAttempts; exhaustion surfaces as Timeout.
// Non-transient failures propagate unmodified.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	backoff := txBaseBackoff

	for attempt := 1; ; attempt++ {
		err := runInTx(ctx, client, fn)
		if err == nil {
			return nil
		}
		if !IsTransientError(err) || attempt >= txMaxAttempts {
			if IsTransientError(err) {
				slog.Warn("Transaction retries exhausted", "attempts", attempt, "error", err)
				return fmt.Errorf("%w: %v", models.ErrTimeout, err)
			}
			return err
		}

		// Jittered exponential backoff before the next attempt.
		delay := backoff + time.Duration(rand.Int64N(int64(backoff)))
		backoff *= 2

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", models.ErrTimeout, ctx.Err())
		case <-time.After(delay):
		}
	}
}

func runInTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return classify(fmt.Errorf("failed to start transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return classify(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}

// Transient pg error classes: serialization failure, deadlock, lock timeout.
var transientPgCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

// Fatal pg error classes: schema or data corruption the caller must stop on.
var fatalPgClasses = map[string]bool{
	"42": true, // syntax error / undefined table or column (schema mismatch)
	"53": true, // insufficient resources
	"58": true, // system error (IO)
	"XX": true, // internal error / data corruption
}

// classify wraps a store error as Transient or Fatal based on its
// PostgreSQL error code; anything unrecognized passes through unchanged.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if transientPgCodes[pgErr.Code] {
			return &models.TransientError{Err: err}
		}
		if len(pgErr.Code) >= 2 && fatalPgClasses[pgErr.Code[:2]] {
			return &models.FatalError{Err: err}
		}
	}
	return err
}

// IsTransientError reports whether err is retryable store contention.
func IsTransientError(err error) bool {
	if models.IsTransient(err) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && transientPgCodes[pgErr.Code]
}

// IsFatalError reports whether err is an unrecoverable store failure.
func IsFatalError(err error) bool {
	if models.IsFatal(err) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && fatalPgClasses[pgErr.Code[:2]]
}
