package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

const (
	defaultBackoffBase = 50 * time.Millisecond
	// lock_timeout 0 disables the timeout, so a nearly spent deadline still gets a floor
	minLockTimeout = 10 * time.Millisecond
)

type Options struct {
	MaxRetries  int
	LockTimeout time.Duration
	BackoffBase time.Duration
}

func OptionsFromConfig(cfg config.BookingConfig) Options {
	return Options{
		MaxRetries:  cfg.MaxRetries,
		LockTimeout: cfg.LockTimeout,
		BackoffBase: defaultBackoffBase,
	}
}

// TxBeginner is the slice of *pgxpool.Pool the unit of work depends on.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	db   TxBeginner
	q    *sqlc.Queries
	opts Options
}

func NewPostgresUoW(db TxBeginner, q *sqlc.Queries, opts Options) *PostgresUoW {
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = defaultBackoffBase
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &PostgresUoW{
		db:   db,
		q:    q,
		opts: opts,
	}
}

// ReadCommitted is enough here: the room row lock taken inside fn orders
// competing writers, and each one re-reads committed bookings after the lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.opts.MaxRetries
	contended := false

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.db.BeginTx(ctx, options)
		if err != nil {
			return giveUp(ctx, errs.Mark(err, shared.ErrTransactionBegin), contended)
		}

		err = setLockTimeout(ctx, pgxTx, u.attemptLockTimeout(ctx, attempt))
		if err == nil {
			err = fn(ctx, newPgTx(pgxTx, u.q))
			if err == nil {
				if err = pgxTx.Commit(ctx); err == nil {
					return nil
				}
				err = errs.Mark(err, shared.ErrTransactionCommit)
			}
		}

		// rollback must not inherit a cancelled ctx or the connection is discarded
		rollbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		if rollbackErr := pgxTx.Rollback(rollbackCtx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}
		cancel()

		if !isRetryableError(err) {
			return giveUp(ctx, err, contended)
		}
		contended = true
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, shared.ErrRetriesExhausted)
		}

		waitTime := calculateBackoff(attempt, u.opts.BackoffBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return giveUp(ctx, errs.Wrapf(ctx.Err(), "waiting to retry after %v", err), contended)
		case <-time.After(waitTime):
		}
	}

	return shared.ErrRetriesExhausted
}

// giveUp attributes a deadline that expires while retrying a contended lock to
// the contention rather than to the store.
func giveUp(ctx context.Context, err error, contended bool) error {
	if contended && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errs.Mark(err, shared.ErrRetriesExhausted)
	}
	return err
}

// attemptLockTimeout bounds one lock wait so that the attempts still left,
// together with their backoff, fit before the context deadline.
func (u *PostgresUoW) attemptLockTimeout(ctx context.Context, attempt int) time.Duration {
	timeout := u.opts.LockTimeout
	deadline, ok := ctx.Deadline()
	if !ok {
		return timeout
	}

	attemptsLeft := time.Duration(u.opts.MaxRetries - attempt + 1)
	share := (time.Until(deadline) - backoffBudget(attempt, u.opts.MaxRetries, u.opts.BackoffBase)) / attemptsLeft
	share = max(share, minLockTimeout)
	if timeout <= 0 || share < timeout {
		return share
	}
	return timeout
}

// SET LOCAL cannot take bind parameters, set_config(..., true) is its equivalent.
func setLockTimeout(ctx context.Context, tx pgx.Tx, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}
	ms := strconv.FormatInt(max(timeout.Milliseconds(), 1), 10) + "ms"
	_, err := tx.Exec(ctx, "SELECT set_config('lock_timeout', $1, true)", ms)
	return err
}

// backoffBudget is the longest the waits between attempts from and to can take.
func backoffBudget(from, to int, base time.Duration) time.Duration {
	var total time.Duration
	for attempt := from; attempt < to; attempt++ {
		wait := base << attempt
		total += wait + wait/2
	}
	return total
}

// calculateBackoff doubles base per attempt and adds up to 50% jitter so
// guests who collided on one room do not retry in lockstep.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	if half := int64(wait / 2); half > 0 {
		wait += time.Duration(rand.Int64N(half))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	roomRepo    shared.RoomRepository
	bookingRepo shared.BookingRepository
}

func newPgTx(dbtx sqlc.DBTX, q *sqlc.Queries) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.q)
	}
	return t.roomRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q)
	}
	return t.bookingRepo
}
