//go:build unit

package infra

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want RepositoryErrorKind
	}{
		{"nil", nil, KindDBFailure},
		{"unique", &pgconn.PgError{Code: "23505"}, KindDuplicateKey},
		{"foreign key", &pgconn.PgError{Code: "23503"}, KindForeignKeyViolated},
		{"serialization", &pgconn.PgError{Code: "40001"}, KindConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, KindConflict},
		{"lock timeout", &pgconn.PgError{Code: "55P03"}, KindConflict},
		{"statement canceled", &pgconn.PgError{Code: "57014"}, KindUnavailable},
		{"connection failure", &pgconn.PgError{Code: "08006"}, KindUnavailable},
		{"syntax error", &pgconn.PgError{Code: "42601"}, KindDBFailure},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), KindUnavailable},
		{"canceled", context.Canceled, KindUnavailable},
		{"plain", errors.New("boom"), KindDBFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"}

	err := WrapRepoErr("insert booking", cause)
	assert.True(t, IsKind(err, KindDuplicateKey))
	assert.Contains(t, err.Error(), "insert booking")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr), "cause stays reachable")

	forced := WrapRepoErr("room not found", cause, KindNotFound)
	assert.True(t, IsKind(forced, KindNotFound))
	assert.False(t, IsKind(errors.New("x"), KindNotFound))
}
