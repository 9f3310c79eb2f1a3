//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"lock timeout", &pgconn.PgError{Code: "55P03"}, true},
		{"wrapped by repository", infra.WrapRepoErr("lock room", &pgconn.PgError{Code: "55P03"}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 50 * time.Millisecond
	for attempt := range 4 {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/2)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.BookingConfig{MaxRetries: 3, LockTimeout: 2 * time.Second})
	assert.Equal(t, 3, opts.MaxRetries)
	assert.Equal(t, 2*time.Second, opts.LockTimeout)
	assert.Equal(t, defaultBackoffBase, opts.BackoffBase)
}

type fakeTx struct {
	pgx.Tx
	lockTimeouts *[]string
	commitErr    error
	committed    bool
	rolledBack   bool
}

func (t *fakeTx) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	*t.lockTimeouts = append(*t.lockTimeouts, args[0].(string))
	return pgconn.NewCommandTag("SELECT 1"), nil
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	beginErr     error
	commitErrs   []error
	txs          []*fakeTx
	lockTimeouts []string
}

func (b *fakeBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{lockTimeouts: &b.lockTimeouts}
	if n := len(b.txs); n < len(b.commitErrs) {
		tx.commitErr = b.commitErrs[n]
	}
	b.txs = append(b.txs, tx)
	return tx, nil
}

// failing returns fn that fails with failures in order and succeeds afterwards.
func failing(calls *int, failures ...error) func(context.Context, shared.Tx) error {
	return func(context.Context, shared.Tx) error {
		*calls++
		if *calls <= len(failures) {
			return failures[*calls-1]
		}
		return nil
	}
}

var (
	lockNotAvailable = &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"}
	serialization    = &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
)

func TestPostgresUoW_Within(t *testing.T) {
	opts := Options{MaxRetries: 2, LockTimeout: time.Second, BackoffBase: time.Millisecond}

	t.Run("retries lock timeout and serialization failure then commits", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, opts)
		calls := 0

		err := u.Within(context.Background(), failing(&calls, lockNotAvailable, serialization))

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		require.Len(t, db.txs, 3)
		assert.True(t, db.txs[0].rolledBack)
		assert.True(t, db.txs[1].rolledBack)
		assert.True(t, db.txs[2].committed)
		assert.Equal(t, []string{"1000ms", "1000ms", "1000ms"}, db.lockTimeouts)
	})

	t.Run("exhausts retries", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, opts)
		calls := 0

		err := u.Within(context.Background(), failing(&calls, lockNotAvailable, lockNotAvailable, lockNotAvailable))

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrRetriesExhausted))
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "55P03", pgErr.Code)
		assert.Equal(t, 3, calls)
		for _, tx := range db.txs {
			assert.True(t, tx.rolledBack)
			assert.False(t, tx.committed)
		}
	})

	t.Run("business error is returned without retry", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, opts)
		calls := 0

		err := u.Within(context.Background(), failing(&calls, booking.ErrRoomUnavailable))

		assert.ErrorIs(t, err, booking.ErrRoomUnavailable)
		assert.False(t, errs.Is(err, shared.ErrRetriesExhausted))
		assert.Equal(t, 1, calls)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].rolledBack)
	})

	t.Run("non-retryable database error is returned without retry", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, opts)
		calls := 0
		unique := &pgconn.PgError{Code: "23505"}

		err := u.Within(context.Background(), failing(&calls, unique))

		assert.ErrorIs(t, err, unique)
		assert.Equal(t, 1, calls)
	})

	t.Run("begin failure", func(t *testing.T) {
		db := &fakeBeginner{beginErr: errors.New("dial tcp: connection refused")}
		u := NewPostgresUoW(db, nil, opts)
		calls := 0

		err := u.Within(context.Background(), failing(&calls))

		assert.True(t, errs.Is(err, shared.ErrTransactionBegin))
		assert.Equal(t, 0, calls)
	})

	t.Run("commit failure is marked and not retried", func(t *testing.T) {
		db := &fakeBeginner{commitErrs: []error{errors.New("conn closed")}}
		u := NewPostgresUoW(db, nil, opts)
		calls := 0

		err := u.Within(context.Background(), failing(&calls))

		assert.True(t, errs.Is(err, shared.ErrTransactionCommit))
		assert.Equal(t, 1, calls)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].rolledBack)
	})

	t.Run("serialization failure at commit is retried", func(t *testing.T) {
		db := &fakeBeginner{commitErrs: []error{serialization}}
		u := NewPostgresUoW(db, nil, opts)
		calls := 0

		err := u.Within(context.Background(), failing(&calls))

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.True(t, db.txs[1].committed)
	})

	t.Run("cancellation during backoff", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, Options{MaxRetries: 3, LockTimeout: time.Second, BackoffBase: time.Hour})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		calls := 0

		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			cancel()
			return lockNotAvailable
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, errs.Is(err, shared.ErrRetriesExhausted))
		assert.Equal(t, 1, calls)
	})

	t.Run("deadline during backoff after contention counts as exhausted retries", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, Options{MaxRetries: 3, LockTimeout: time.Second, BackoffBase: time.Hour})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		calls := 0

		err := u.Within(ctx, failing(&calls, lockNotAvailable))

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, errs.Is(err, shared.ErrRetriesExhausted))
		assert.Equal(t, 1, calls)
	})

	t.Run("deadline without contention is not a conflict", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, opts)
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()
		<-ctx.Done()
		calls := 0

		err := u.Within(ctx, func(ctx context.Context, _ shared.Tx) error {
			calls++
			return ctx.Err()
		})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, errs.Is(err, shared.ErrRetriesExhausted))
		assert.Equal(t, 1, calls)
	})
}

func TestPostgresUoW_LockTimeout(t *testing.T) {
	t.Run("fixed without a deadline", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, Options{MaxRetries: 3, LockTimeout: 5 * time.Second})
		calls := 0

		require.NoError(t, u.Within(context.Background(), failing(&calls)))
		assert.Equal(t, []string{"5000ms"}, db.lockTimeouts)
	})

	t.Run("disabled without a deadline", func(t *testing.T) {
		db := &fakeBeginner{}
		u := NewPostgresUoW(db, nil, Options{MaxRetries: 3})
		calls := 0

		require.NoError(t, u.Within(context.Background(), failing(&calls)))
		assert.Empty(t, db.lockTimeouts)
	})

	t.Run("every attempt fits before the deadline", func(t *testing.T) {
		db := &fakeBeginner{}
		opts := Options{MaxRetries: 3, LockTimeout: 5 * time.Second, BackoffBase: 50 * time.Millisecond}
		u := NewPostgresUoW(db, nil, opts)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		calls := 0

		require.NoError(t, u.Within(ctx, failing(&calls)))
		require.Len(t, db.lockTimeouts, 1)

		first, err := time.ParseDuration(db.lockTimeouts[0])
		require.NoError(t, err)
		assert.Positive(t, first)
		budget := time.Duration(opts.MaxRetries+1)*first + backoffBudget(0, opts.MaxRetries, opts.BackoffBase)
		assert.LessOrEqual(t, budget, 2*time.Second)
	})

	t.Run("floor when the deadline is nearly spent", func(t *testing.T) {
		u := NewPostgresUoW(&fakeBeginner{}, nil, Options{MaxRetries: 3, LockTimeout: time.Second})
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()

		assert.Equal(t, minLockTimeout, u.attemptLockTimeout(ctx, 0))
	})
}

func TestBackoffBudget(t *testing.T) {
	base := 50 * time.Millisecond
	// 50+100+200 plus half of each as jitter ceiling
	assert.Equal(t, 525*time.Millisecond, backoffBudget(0, 3, base))
	assert.Equal(t, 300*time.Millisecond, backoffBudget(2, 3, base))
	assert.Zero(t, backoffBudget(3, 3, base))
}
